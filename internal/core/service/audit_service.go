package service

import (
	"context"

	"github.com/bloghub/blog-api/internal/core/domain"
	"github.com/bloghub/blog-api/internal/core/ports"
)

const defaultAuditLimit = 100

// AuditService exposes the persisted audit trail to admins.
type AuditService struct {
	events ports.AuditRepository
	authz  ports.AuthorizationService
}

func NewAuditService(events ports.AuditRepository, authz ports.AuthorizationService) *AuditService {
	return &AuditService{events: events, authz: authz}
}

// Recent returns up to limit audit events, newest first. Admin-only.
func (s *AuditService) Recent(ctx context.Context, limit int) ([]domain.AuditEvent, error) {
	if _, err := s.authz.RequireAdmin(ctx); err != nil {
		return nil, err
	}

	if limit <= 0 || limit > 1000 {
		limit = defaultAuditLimit
	}
	return s.events.FindRecent(ctx, limit)
}
