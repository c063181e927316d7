package ports

import (
	"context"

	"github.com/bloghub/blog-api/internal/core/domain"
)

// SaveMessageInput carries a translation to create or update.
type SaveMessageInput struct {
	ID     string
	Key    string
	Locale string
	Value  string
}

// LocalizationService resolves translated messages with caching and locale
// fallback. Reads are public; mutations are admin-only and evict the cache.
type LocalizationService interface {
	// GetMessage returns the translation for (key, locale), falling back to
	// the default locale and finally to the key itself.
	GetMessage(ctx context.Context, key, locale string) string
	AllMessages(ctx context.Context, locale string) (map[string]string, error)
	SaveMessage(ctx context.Context, input SaveMessageInput) (*domain.Message, error)
	DeleteMessage(ctx context.Context, id string) error
}
