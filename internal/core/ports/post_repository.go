package ports

import (
	"context"

	"github.com/bloghub/blog-api/internal/core/domain"
)

// PostRepository defines the interface for post persistence.
type PostRepository interface {
	FindByID(ctx context.Context, id string) (*domain.Post, error)
	FindAll(ctx context.Context) ([]domain.Post, error)
	FindByAuthorID(ctx context.Context, authorID string) ([]domain.Post, error)
	Create(ctx context.Context, post *domain.Post) (*domain.Post, error)
	Update(ctx context.Context, post *domain.Post) (*domain.Post, error)
	Delete(ctx context.Context, id string) error
}
