package service

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"mathdrill/internal/cache"
	"mathdrill/internal/domain"
	"mathdrill/internal/logger"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

// topicCache is a read-through cache for topic reads. A nil cache disables
// caching, and cache failures fall back to the loader.
type topicCache struct {
	cache   domain.Cache
	ttl     time.Duration
	sfGroup singleflight.Group
}

func newTopicCache(c domain.Cache, ttl time.Duration) *topicCache {
	return &topicCache{cache: c, ttl: ttl}
}

// getOrLoad returns the cached value for key, or calls load once per key
// across concurrent callers and stores its result.
func getOrLoad[T any](ctx context.Context, tc *topicCache, key string, load func(ctx context.Context) (T, error)) (T, error) {
	var zero T
	if tc == nil || tc.cache == nil {
		return load(ctx)
	}

	if cached, err := tc.cache.Get(ctx, key); err == nil {
		var v T
		if jsonErr := json.Unmarshal([]byte(cached), &v); jsonErr == nil {
			return v, nil
		}
		logger.Get().Warn("Failed to decode cached topic data", zap.String("cacheKey", key))
	} else if !errors.Is(err, domain.ErrCacheMiss) {
		logger.Get().Warn("Topic cache read failed", zap.String("cacheKey", key), zap.Error(err))
	}

	res, err, _ := tc.sfGroup.Do(key, func() (interface{}, error) {
		v, loadErr := load(ctx)
		if loadErr != nil {
			return nil, loadErr
		}
		if data, jsonErr := json.Marshal(v); jsonErr == nil {
			if setErr := tc.cache.Set(ctx, key, string(data), tc.ttl); setErr != nil {
				logger.Get().Warn("Topic cache write failed", zap.String("cacheKey", key), zap.Error(setErr))
			}
		}
		return v, nil
	})
	if err != nil {
		return zero, err
	}
	return res.(T), nil
}

// invalidate drops the list key and the given topic keys
func (tc *topicCache) invalidate(ctx context.Context, topicIDs ...string) {
	if tc == nil || tc.cache == nil {
		return
	}
	keys := []string{cache.TopicListKey()}
	for _, id := range topicIDs {
		keys = append(keys, cache.TopicKey(id))
	}
	if err := tc.cache.Delete(ctx, keys...); err != nil {
		logger.Get().Warn("Topic cache invalidation failed", zap.Strings("keys", keys), zap.Error(err))
	}
}
