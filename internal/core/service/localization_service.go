package service

import (
	"context"
	"errors"

	"github.com/rs/zerolog"

	"github.com/bloghub/blog-api/internal/metrics"
	"github.com/bloghub/blog-api/internal/core/domain"
	"github.com/bloghub/blog-api/internal/core/ports"
)

// LocalizationCache abstracts the message cache (Redis). A failing cache
// degrades to store reads; it never fails a request.
type LocalizationCache interface {
	GetMessage(ctx context.Context, locale, key string) (string, bool, error)
	SetMessage(ctx context.Context, locale, key, value string) error
	GetAll(ctx context.Context, locale string) (map[string]string, bool, error)
	SetAll(ctx context.Context, locale string, messages map[string]string) error
	Invalidate(ctx context.Context, locale string) error
	// InvalidateAll drops every cached entry across all locales. Needed when
	// a default-locale message changes: its value may be cached as a
	// fallback under any other locale.
	InvalidateAll(ctx context.Context) error
}

// LocalizationService resolves translated messages with caching and fallback
// to the default locale. Mutations are admin-only and evict the cache.
type LocalizationService struct {
	messages ports.LocalizationRepository
	cache    LocalizationCache
	authz    ports.AuthorizationService
	log      zerolog.Logger
}

func NewLocalizationService(messages ports.LocalizationRepository, cache LocalizationCache, authz ports.AuthorizationService, log zerolog.Logger) *LocalizationService {
	return &LocalizationService{messages: messages, cache: cache, authz: authz, log: log}
}

// GetMessage resolves the translation for (key, locale). Resolution order:
// cache, store, default-locale store, and finally the key itself, so a
// missing translation renders as its key rather than an error.
func (s *LocalizationService) GetMessage(ctx context.Context, key, locale string) string {
	if locale == "" {
		locale = domain.DefaultLocale
	}

	if s.cache != nil {
		value, ok, err := s.cache.GetMessage(ctx, locale, key)
		switch {
		case err != nil:
			metrics.LocalizationCacheTotal.WithLabelValues("error").Inc()
			s.log.Warn().Err(err).Str("key", key).Str("locale", locale).Msg("message cache read failed, falling back to store")
		case ok:
			metrics.LocalizationCacheTotal.WithLabelValues("hit").Inc()
			return value
		default:
			metrics.LocalizationCacheTotal.WithLabelValues("miss").Inc()
		}
	}

	value := s.lookup(ctx, key, locale)

	if s.cache != nil {
		if err := s.cache.SetMessage(ctx, locale, key, value); err != nil {
			s.log.Warn().Err(err).Str("key", key).Str("locale", locale).Msg("message cache write failed")
		}
	}
	return value
}

// AllMessages returns the full key→value map for a locale.
func (s *LocalizationService) AllMessages(ctx context.Context, locale string) (map[string]string, error) {
	if locale == "" {
		locale = domain.DefaultLocale
	}

	if s.cache != nil {
		cached, ok, err := s.cache.GetAll(ctx, locale)
		if err != nil {
			metrics.LocalizationCacheTotal.WithLabelValues("error").Inc()
			s.log.Warn().Err(err).Str("locale", locale).Msg("message cache read failed, falling back to store")
		} else if ok {
			metrics.LocalizationCacheTotal.WithLabelValues("hit").Inc()
			return cached, nil
		} else {
			metrics.LocalizationCacheTotal.WithLabelValues("miss").Inc()
		}
	}

	stored, err := s.messages.FindByLocale(ctx, locale)
	if err != nil {
		return nil, err
	}

	result := make(map[string]string, len(stored))
	for _, m := range stored {
		result[m.Key] = m.Value
	}

	if s.cache != nil && len(result) > 0 {
		if err := s.cache.SetAll(ctx, locale, result); err != nil {
			s.log.Warn().Err(err).Str("locale", locale).Msg("message cache write failed")
		}
	}
	return result, nil
}

// SaveMessage creates or updates a translation and evicts the affected
// locale from the cache. Admin-only.
func (s *LocalizationService) SaveMessage(ctx context.Context, input ports.SaveMessageInput) (*domain.Message, error) {
	if _, err := s.authz.RequireAdmin(ctx); err != nil {
		return nil, err
	}

	msg := &domain.Message{
		ID:     input.ID,
		Key:    input.Key,
		Locale: input.Locale,
		Value:  input.Value,
	}

	saved, err := s.messages.Save(ctx, msg)
	if err != nil {
		return nil, err
	}

	s.evict(ctx, saved.Locale)
	return saved, nil
}

// DeleteMessage removes a translation and evicts its locale. Admin-only.
func (s *LocalizationService) DeleteMessage(ctx context.Context, id string) error {
	if _, err := s.authz.RequireAdmin(ctx); err != nil {
		return err
	}

	msg, err := s.messages.FindByID(ctx, id)
	if err != nil {
		return err
	}

	if err := s.messages.Delete(ctx, id); err != nil {
		return err
	}

	s.evict(ctx, msg.Locale)
	return nil
}

func (s *LocalizationService) lookup(ctx context.Context, key, locale string) string {
	msg, err := s.messages.FindByKeyAndLocale(ctx, key, locale)
	if err == nil {
		return msg.Value
	}
	if !errors.Is(err, domain.ErrMessageNotFound) {
		s.log.Error().Err(err).Str("key", key).Str("locale", locale).Msg("message lookup failed")
		return key
	}

	if locale != domain.DefaultLocale {
		fallback, err := s.messages.FindByKeyAndLocale(ctx, key, domain.DefaultLocale)
		if err == nil {
			return fallback.Value
		}
	}
	return key
}

func (s *LocalizationService) evict(ctx context.Context, locale string) {
	if s.cache == nil {
		return
	}
	// Default-locale values are cached under whichever locale requested them
	// as a fallback, so a default-locale mutation must clear every locale.
	if locale == domain.DefaultLocale {
		if err := s.cache.InvalidateAll(ctx); err != nil {
			s.log.Warn().Err(err).Msg("message cache eviction failed")
		}
		return
	}
	if err := s.cache.Invalidate(ctx, locale); err != nil {
		s.log.Warn().Err(err).Str("locale", locale).Msg("message cache eviction failed")
	}
}
