package ports

import (
	"context"

	"github.com/bloghub/blog-api/internal/core/domain"
)

// AuditRepository defines the interface for the security audit trail.
type AuditRepository interface {
	Insert(ctx context.Context, event *domain.AuditEvent) error
	// FindRecent returns up to limit events, newest first.
	FindRecent(ctx context.Context, limit int) ([]domain.AuditEvent, error)
}
