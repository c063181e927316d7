package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const defaultPingTimeout = 5 * time.Second

// Config captures the settings for the Redis connection backing the
// localization cache.
type Config struct {
	Addr string
	DB   int
	// PingTimeout bounds the startup connectivity check. Zero means the
	// default of five seconds.
	PingTimeout time.Duration
}

// Connect builds a Redis client and verifies connectivity before returning
// it. Runtime cache failures are tolerated by the callers; a dead Redis at
// startup is not.
func Connect(ctx context.Context, cfg Config) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr: cfg.Addr,
		DB:   cfg.DB,
	})

	timeout := cfg.PingTimeout
	if timeout <= 0 {
		timeout = defaultPingTimeout
	}
	pingCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("redis ping: %w", err)
	}
	return client, nil
}
