package service

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"

	"github.com/bloghub/blog-api/internal/metrics"
	"github.com/bloghub/blog-api/internal/core/domain"
	"github.com/bloghub/blog-api/internal/core/ports"
)

// AuditTrail abstracts the asynchronous audit sink (the queue dispatcher).
// Record must never block the request path.
type AuditTrail interface {
	Record(event domain.AuditEvent)
}

// AuthorizationService enforces the admin-only and owner-or-admin policies.
// Identity arrives exclusively through the request context; there is no
// process-wide security context to consult.
type AuthorizationService struct {
	users ports.UserRepository
	posts ports.PostRepository
	audit AuditTrail
	log   zerolog.Logger
}

func NewAuthorizationService(users ports.UserRepository, posts ports.PostRepository, audit AuditTrail, log zerolog.Logger) *AuthorizationService {
	return &AuthorizationService{users: users, posts: posts, audit: audit, log: log}
}

// CurrentUser resolves the caller from the context principal. An absent
// principal and a principal whose account no longer exists both surface as
// ErrAccessDenied so responses never reveal which case occurred. Any other
// lookup failure propagates unwrapped.
func (s *AuthorizationService) CurrentUser(ctx context.Context) (*domain.User, error) {
	p, ok := domain.PrincipalFromContext(ctx)
	if !ok || p.Username == "" {
		return nil, domain.ErrAccessDenied
	}

	user, err := s.users.FindByUsername(ctx, p.Username)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			s.log.Warn().Str("username", p.Username).Msg("principal no longer resolves to a user")
			return nil, domain.ErrAccessDenied
		}
		return nil, err
	}
	return user, nil
}

// RequireAdmin fails with ErrAccessDenied unless the caller resolves and
// holds the ADMIN role.
func (s *AuthorizationService) RequireAdmin(ctx context.Context) (*domain.User, error) {
	user, err := s.CurrentUser(ctx)
	if err != nil {
		s.record("admin", "", nil, domain.AuditDenied, "unauthenticated")
		metrics.AuthzDecisionsTotal.WithLabelValues("admin", domain.AuditDenied).Inc()
		return nil, err
	}

	if !user.IsAdmin() {
		s.log.Info().Str("username", user.Username).Msg("admin check denied")
		s.record("admin", "", user, domain.AuditDenied, "not admin")
		metrics.AuthzDecisionsTotal.WithLabelValues("admin", domain.AuditDenied).Inc()
		return nil, domain.ErrAccessDenied
	}

	s.record("admin", "", user, domain.AuditGranted, "")
	metrics.AuthzDecisionsTotal.WithLabelValues("admin", domain.AuditGranted).Inc()
	return user, nil
}

// RequireOwnerOrAdmin enforces the post mutation policy. Evaluation order is
// fixed: resolve caller, load post, admin wins, then ownership. A post whose
// author is unset is admin-only, since ownership cannot be established.
func (s *AuthorizationService) RequireOwnerOrAdmin(ctx context.Context, postID string) (*domain.User, *domain.Post, error) {
	user, err := s.CurrentUser(ctx)
	if err != nil {
		s.record("owner_or_admin", postID, nil, domain.AuditDenied, "unauthenticated")
		metrics.AuthzDecisionsTotal.WithLabelValues("owner_or_admin", domain.AuditDenied).Inc()
		return nil, nil, err
	}

	post, err := s.posts.FindByID(ctx, postID)
	if err != nil {
		return nil, nil, err
	}

	if user.IsAdmin() {
		s.record("owner_or_admin", postID, user, domain.AuditGranted, "admin")
		metrics.AuthzDecisionsTotal.WithLabelValues("owner_or_admin", domain.AuditGranted).Inc()
		return user, post, nil
	}

	if !post.HasAuthor() {
		s.log.Warn().Str("post_id", postID).Str("username", user.Username).Msg("post has no author, non-admin access denied")
		s.record("owner_or_admin", postID, user, domain.AuditDenied, "author unset")
		metrics.AuthzDecisionsTotal.WithLabelValues("owner_or_admin", domain.AuditDenied).Inc()
		return nil, nil, domain.ErrAccessDenied
	}

	if !post.IsAuthoredBy(user) {
		s.log.Info().Str("post_id", postID).Str("username", user.Username).Msg("caller is neither author nor admin")
		s.record("owner_or_admin", postID, user, domain.AuditDenied, "not owner")
		metrics.AuthzDecisionsTotal.WithLabelValues("owner_or_admin", domain.AuditDenied).Inc()
		return nil, nil, domain.ErrAccessDenied
	}

	s.record("owner_or_admin", postID, user, domain.AuditGranted, "owner")
	metrics.AuthzDecisionsTotal.WithLabelValues("owner_or_admin", domain.AuditGranted).Inc()
	return user, post, nil
}

func (s *AuthorizationService) record(policy, resource string, user *domain.User, decision, reason string) {
	if s.audit == nil {
		return
	}
	event := domain.AuditEvent{
		Action:    policy,
		Resource:  resource,
		Decision:  decision,
		Reason:    reason,
		Timestamp: time.Now().UTC(),
	}
	if user != nil {
		event.Username = user.Username
	}
	s.audit.Record(event)
}
