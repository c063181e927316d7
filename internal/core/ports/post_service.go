package ports

import (
	"context"

	"github.com/bloghub/blog-api/internal/core/domain"
)

// CreatePostInput carries the data needed to create a post. The author is
// never part of the input; it is always the resolved caller.
type CreatePostInput struct {
	Title   string
	Content string
	TagIDs  []string
}

// UpdatePostInput carries the replacement title, content, and tag set.
type UpdatePostInput struct {
	Title   string
	Content string
	TagIDs  []string
}

// PostService defines use-case operations for posts. Every operation resolves
// the caller through the AuthorizationService before touching state.
type PostService interface {
	// List returns all posts for admins and the caller's own posts otherwise.
	List(ctx context.Context) ([]domain.Post, error)
	Get(ctx context.Context, id string) (*domain.Post, error)
	Create(ctx context.Context, input CreatePostInput) (*domain.Post, error)
	Update(ctx context.Context, id string, input UpdatePostInput) (*domain.Post, error)
	Delete(ctx context.Context, id string) error
}
