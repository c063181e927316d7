package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const defaultCacheTTL = time.Hour

// LocalizationCache caches translated messages in Redis.
// Key formats: i18n:msg:<locale>:<key> for single messages,
// i18n:all:<locale> (a hash) for full-locale snapshots.
type LocalizationCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewLocalizationCache creates a LocalizationCache wrapping the given Redis
// client. A non-positive ttl falls back to one hour.
func NewLocalizationCache(client *redis.Client, ttl time.Duration) *LocalizationCache {
	if ttl <= 0 {
		ttl = defaultCacheTTL
	}
	return &LocalizationCache{client: client, ttl: ttl}
}

// GetMessage returns the cached translation for (locale, key). The second
// return value reports whether the key was present.
func (c *LocalizationCache) GetMessage(ctx context.Context, locale, key string) (string, bool, error) {
	value, err := c.client.Get(ctx, c.messageKey(locale, key)).Result()
	if errors.Is(err, redis.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("cache get: %w", err)
	}
	return value, true, nil
}

// SetMessage stores the translation for (locale, key), expiring after the
// configured TTL.
func (c *LocalizationCache) SetMessage(ctx context.Context, locale, key, value string) error {
	return c.client.Set(ctx, c.messageKey(locale, key), value, c.ttl).Err()
}

// GetAll returns the cached full key→value map for a locale.
func (c *LocalizationCache) GetAll(ctx context.Context, locale string) (map[string]string, bool, error) {
	values, err := c.client.HGetAll(ctx, c.localeKey(locale)).Result()
	if err != nil {
		return nil, false, fmt.Errorf("cache hgetall: %w", err)
	}
	if len(values) == 0 {
		return nil, false, nil
	}
	return values, true, nil
}

// SetAll stores the full key→value map for a locale as a hash, expiring
// after the configured TTL.
func (c *LocalizationCache) SetAll(ctx context.Context, locale string, messages map[string]string) error {
	if len(messages) == 0 {
		return nil
	}
	key := c.localeKey(locale)
	pipe := c.client.TxPipeline()
	pipe.Del(ctx, key)
	pipe.HSet(ctx, key, messages)
	pipe.Expire(ctx, key, c.ttl)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("cache hset: %w", err)
	}
	return nil
}

// Invalidate drops every cached entry for a locale, both the full-locale
// hash and the per-message keys.
func (c *LocalizationCache) Invalidate(ctx context.Context, locale string) error {
	if err := c.client.Del(ctx, c.localeKey(locale)).Err(); err != nil {
		return fmt.Errorf("cache del: %w", err)
	}

	pattern := c.messageKey(locale, "*")
	iter := c.client.Scan(ctx, 0, pattern, 0).Iterator()
	for iter.Next(ctx) {
		if err := c.client.Del(ctx, iter.Val()).Err(); err != nil {
			return fmt.Errorf("cache del: %w", err)
		}
	}
	if err := iter.Err(); err != nil {
		return fmt.Errorf("cache scan: %w", err)
	}
	return nil
}

// InvalidateAll drops every cached entry across all locales. Used when the
// default locale changes, since its values may sit under other locales'
// per-message keys as fallbacks.
func (c *LocalizationCache) InvalidateAll(ctx context.Context) error {
	iter := c.client.Scan(ctx, 0, "i18n:*", 0).Iterator()
	for iter.Next(ctx) {
		if err := c.client.Del(ctx, iter.Val()).Err(); err != nil {
			return fmt.Errorf("cache del: %w", err)
		}
	}
	if err := iter.Err(); err != nil {
		return fmt.Errorf("cache scan: %w", err)
	}
	return nil
}

func (c *LocalizationCache) messageKey(locale, key string) string {
	return fmt.Sprintf("i18n:msg:%s:%s", locale, key)
}

func (c *LocalizationCache) localeKey(locale string) string {
	return fmt.Sprintf("i18n:all:%s", locale)
}
