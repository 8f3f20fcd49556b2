package cache

import (
	"context"
	"encoding/json"
	"time"
)

const (
	ExpiryDefaultInMemory = 30 * time.Minute
	ExpiryDefaultRedis    = 5 * time.Minute
)

// Cache is the interface both backends implement. It holds computed
// financial reports under landlord-scoped keys with a TTL from config;
// payment creation invalidates a landlord's entries via DeleteByPrefix.
type Cache interface {
	Get(ctx context.Context, key string) (interface{}, bool)
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration)
	Delete(ctx context.Context, key string)
	DeleteByPrefix(ctx context.Context, prefix string)
}

// UnmarshalCacheValue attempts to convert a cache value to the specified
// type. It handles both the in-memory cache (which stores actual objects)
// and the Redis cache (which stores JSON strings).
func UnmarshalCacheValue[T any](value interface{}) (*T, bool) {
	if value == nil {
		return nil, false
	}

	// Direct type assertion first, for the in-memory cache.
	if typed, ok := value.(*T); ok {
		return typed, true
	}

	// JSON string for the Redis cache.
	if str, ok := value.(string); ok {
		var result T
		if err := json.Unmarshal([]byte(str), &result); err == nil {
			return &result, true
		}
	}

	return nil, false
}
