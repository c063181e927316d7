package ports

import "github.com/bloghub/blog-api/internal/core/domain"

// TokenService issues and validates the signed bearer tokens used for
// authentication. Tokens are stateless: nothing is stored server-side and a
// token dies implicitly at expiry.
type TokenService interface {
	// Issue produces a signed token binding the user's username as subject.
	Issue(user *domain.User) (string, error)
	// Validate verifies signature and expiry and returns the subject.
	// Failure kinds are distinguishable with errors.Is against the jwt/v5
	// sentinels, but callers treat every failure the same way: the request
	// simply stays unauthenticated.
	Validate(token string) (string, error)
	// MatchesPrincipal re-checks a valid token against the resolved user,
	// guarding against stale tokens referencing a renamed or deleted account.
	MatchesPrincipal(token string, user *domain.User) bool
}
