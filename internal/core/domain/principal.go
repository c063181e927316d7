package domain

import "context"

// Principal is the request-scoped identity established by the identity
// middleware after token validation. It is never persisted and lives exactly
// as long as the request context it travels in.
type Principal struct {
	UserID   string
	Username string
	Role     string
}

// IsAdmin reports whether the principal carries the ADMIN role.
func (p *Principal) IsAdmin() bool {
	return p != nil && p.Role == RoleAdmin
}

type principalKey struct{}

// WithPrincipal returns a context carrying the authenticated principal.
func WithPrincipal(ctx context.Context, p *Principal) context.Context {
	return context.WithValue(ctx, principalKey{}, p)
}

// PrincipalFromContext extracts the authenticated principal, if any.
// Authorization checks receive identity exclusively through this mechanism;
// there is no process-wide security context.
func PrincipalFromContext(ctx context.Context) (*Principal, bool) {
	p, ok := ctx.Value(principalKey{}).(*Principal)
	return p, ok && p != nil
}
