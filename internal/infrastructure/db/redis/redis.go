package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const pingTimeout = 5 * time.Second

// Config holds the connection settings for the dedup store.
type Config struct {
	Addr     string
	Password string
	DB       int
	// PoolSize caps the client's connection pool. Zero keeps the client default.
	PoolSize int
	// Timeout bounds the connectivity check. Zero means pingTimeout.
	Timeout time.Duration
}

// Connect builds a Redis client and proves connectivity with a single ping
// so a bad address fails at startup instead of on the first dedup check.
func Connect(ctx context.Context, cfg Config) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
		PoolSize: cfg.PoolSize,
	})

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = pingTimeout
	}
	pingCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("redis ping: %w", err)
	}

	return client, nil
}
