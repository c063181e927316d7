package ports

import (
	"context"

	"github.com/bloghub/blog-api/internal/core/domain"
)

// AuditService exposes the persisted security audit trail to admins.
type AuditService interface {
	Recent(ctx context.Context, limit int) ([]domain.AuditEvent, error)
}
