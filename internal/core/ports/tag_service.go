package ports

import (
	"context"

	"github.com/bloghub/blog-api/internal/core/domain"
)

// TagService defines use-case operations for tags. Reads are public;
// mutations are admin-only.
type TagService interface {
	Get(ctx context.Context, id string) (*domain.Tag, error)
	List(ctx context.Context) ([]domain.Tag, error)
	Create(ctx context.Context, name string) (*domain.Tag, error)
	Update(ctx context.Context, id, name string) (*domain.Tag, error)
	Delete(ctx context.Context, id string) error
}
