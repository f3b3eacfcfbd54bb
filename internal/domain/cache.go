package domain

import (
	"context"
	"errors"
	"time"
)

// ErrCacheMiss is returned by Cache.Get when the key is absent or expired
var ErrCacheMiss = errors.New("cache: key not found")

// Cache is a string key/value store with expiry. Every caller treats it as
// optional: any error other than ErrCacheMiss means "read from the database".
type Cache interface {
	Get(ctx context.Context, key string) (string, error)
	// Set stores value for ttl; a zero ttl keeps it until deleted
	Set(ctx context.Context, key string, value string, ttl time.Duration) error
	// Delete removes keys; absent keys are ignored
	Delete(ctx context.Context, keys ...string) error
	Ping(ctx context.Context) error
}

// TransactionManager runs fn inside a database transaction carried by ctx
type TransactionManager interface {
	WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}
