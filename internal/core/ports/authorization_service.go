package ports

import (
	"context"

	"github.com/bloghub/blog-api/internal/core/domain"
)

// AuthorizationService enforces the two access policies used across business
// operations. Both checks are read-only and side-effect-free with respect to
// domain state; calling them repeatedly yields the same result as long as the
// underlying user/post records are unchanged.
type AuthorizationService interface {
	// CurrentUser resolves the caller from the request context. A missing
	// principal and a principal that no longer maps to a user record both
	// surface as domain.ErrAccessDenied.
	CurrentUser(ctx context.Context) (*domain.User, error)

	// RequireAdmin fails with domain.ErrAccessDenied unless the caller
	// resolves and holds the ADMIN role.
	RequireAdmin(ctx context.Context) (*domain.User, error)

	// RequireOwnerOrAdmin resolves the caller first (ErrAccessDenied when
	// unauthenticated), then loads the post (ErrPostNotFound when missing),
	// then grants admins unconditionally and owners by author identity.
	// Posts without an author are accessible to admins only. The evaluation
	// order is part of the contract: an unauthenticated caller probing a
	// bad post id learns "access denied", not "not found".
	RequireOwnerOrAdmin(ctx context.Context, postID string) (*domain.User, *domain.Post, error)
}
