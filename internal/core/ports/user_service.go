package ports

import (
	"context"

	"github.com/bloghub/blog-api/internal/core/domain"
)

// UserService exposes admin-only user management views.
type UserService interface {
	GetByID(ctx context.Context, id string) (*domain.User, error)
	List(ctx context.Context) ([]domain.User, error)
}
