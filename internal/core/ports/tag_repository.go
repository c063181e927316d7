package ports

import (
	"context"

	"github.com/bloghub/blog-api/internal/core/domain"
)

// TagRepository defines the interface for tag persistence.
type TagRepository interface {
	FindByID(ctx context.Context, id string) (*domain.Tag, error)
	// FindByIDs resolves a set of tag ids; any id that does not resolve
	// yields domain.ErrTagNotFound.
	FindByIDs(ctx context.Context, ids []string) ([]domain.Tag, error)
	FindAll(ctx context.Context) ([]domain.Tag, error)
	Create(ctx context.Context, tag *domain.Tag) (*domain.Tag, error)
	Update(ctx context.Context, tag *domain.Tag) (*domain.Tag, error)
	Delete(ctx context.Context, id string) error
}
