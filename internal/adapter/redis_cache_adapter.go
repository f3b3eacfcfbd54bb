package adapter

import (
	"context"
	"errors"
	"fmt"
	"time"

	"mathdrill/internal/domain"

	"github.com/redis/go-redis/v9"
)

// DefaultCacheOpTimeout bounds a single Redis round trip. Topic reads fall
// back to the database on any cache error, so a slow server costs at most this.
const DefaultCacheOpTimeout = 500 * time.Millisecond

// RedisCacheAdapter implements domain.Cache on a go-redis client
type RedisCacheAdapter struct {
	client    redis.Cmdable
	opTimeout time.Duration
}

var _ domain.Cache = (*RedisCacheAdapter)(nil)

// NewRedisCacheAdapter wraps a connected client with DefaultCacheOpTimeout
func NewRedisCacheAdapter(client redis.Cmdable) domain.Cache {
	return NewRedisCacheAdapterWithTimeout(client, DefaultCacheOpTimeout)
}

// NewRedisCacheAdapterWithTimeout wraps client; a non-positive timeout disables the bound
func NewRedisCacheAdapterWithTimeout(client redis.Cmdable, opTimeout time.Duration) *RedisCacheAdapter {
	return &RedisCacheAdapter{client: client, opTimeout: opTimeout}
}

func (r *RedisCacheAdapter) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if r.opTimeout <= 0 {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, r.opTimeout)
}

func (r *RedisCacheAdapter) Get(ctx context.Context, key string) (string, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	val, err := r.client.Get(ctx, key).Result()
	switch {
	case errors.Is(err, redis.Nil):
		return "", domain.ErrCacheMiss
	case err != nil:
		return "", fmt.Errorf("redis get %s: %w", key, err)
	}
	return val, nil
}

func (r *RedisCacheAdapter) Set(ctx context.Context, key string, value string, ttl time.Duration) error {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	if err := r.client.Set(ctx, key, value, ttl).Err(); err != nil {
		return fmt.Errorf("redis set %s: %w", key, err)
	}
	return nil
}

func (r *RedisCacheAdapter) Delete(ctx context.Context, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	if err := r.client.Del(ctx, keys...).Err(); err != nil {
		return fmt.Errorf("redis del %v: %w", keys, err)
	}
	return nil
}

// Ping is used by the health endpoint
func (r *RedisCacheAdapter) Ping(ctx context.Context) error {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()
	return r.client.Ping(ctx).Err()
}
