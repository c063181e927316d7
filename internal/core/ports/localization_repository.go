package ports

import (
	"context"

	"github.com/bloghub/blog-api/internal/core/domain"
)

// LocalizationRepository defines the interface for translation persistence.
type LocalizationRepository interface {
	FindByID(ctx context.Context, id string) (*domain.Message, error)
	FindByKeyAndLocale(ctx context.Context, key, locale string) (*domain.Message, error)
	FindByLocale(ctx context.Context, locale string) ([]domain.Message, error)
	ExistsByKeyAndLocale(ctx context.Context, key, locale string) (bool, error)
	// Save inserts when the message has no id, updates otherwise.
	Save(ctx context.Context, msg *domain.Message) (*domain.Message, error)
	Delete(ctx context.Context, id string) error
}
