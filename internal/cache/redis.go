package cache

import (
	"context"
	"fmt"
	"time"

	"mathdrill/internal/config"

	"github.com/redis/go-redis/v9"
)

// NewRedisClient creates a Redis client and pings the server.
// It returns nil, nil when no address is configured, which disables caching.
func NewRedisClient(ctx context.Context, redisCfg config.RedisConfig) (*redis.Client, error) {
	if redisCfg.Address == "" {
		return nil, nil
	}

	// ContextTimeoutEnabled lets the cache adapter's per-call deadlines reach socket reads
	client := redis.NewClient(&redis.Options{
		Addr:                  redisCfg.Address,
		Password:              redisCfg.Password,
		DB:                    redisCfg.DB,
		DialTimeout:           2 * time.Second,
		ContextTimeoutEnabled: true,
	})

	pingCtx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to connect to Redis at %s: %w", redisCfg.Address, err)
	}

	return client, nil
}
