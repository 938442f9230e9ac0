// Package redis provides Redis-backed implementations of the caching
// and catalog state ports
package redis

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/vatika/v1/internal/infrastructure/config"
)

// NewClient creates a Redis client from configuration and verifies
// connectivity with a ping
func NewClient(ctx context.Context, cfg *config.Config) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:         cfg.RedisAddr(),
		Password:     cfg.Redis.Password,
		DB:           cfg.Redis.Database,
		DialTimeout:  cfg.Redis.DialTimeout,
		ReadTimeout:  cfg.Redis.ReadTimeout,
		WriteTimeout: cfg.Redis.WriteTimeout,
		PoolSize:     cfg.Redis.PoolSize,
	})

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}

	return client, nil
}
