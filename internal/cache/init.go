package cache

import (
	"github.com/Mzimagas/mzima-homes-rental-app-sub015/internal/config"
	"github.com/Mzimagas/mzima-homes-rental-app-sub015/internal/logger"
)

// CacheType represents the type of cache to use
type CacheType string

const (
	// CacheTypeInMemory represents an in-memory cache
	CacheTypeInMemory CacheType = "inmemory"

	// CacheTypeRedis represents a Redis-backed cache
	CacheTypeRedis CacheType = "redis"
)

// Initialize builds the cache backend named by the configuration, falling
// back to in-memory for unknown types.
func Initialize(cfg *config.Configuration, log *logger.Logger) Cache {
	log.Infow("initializing cache", "type", cfg.Cache.Type)

	switch CacheType(cfg.Cache.Type) {
	case CacheTypeRedis:
		return NewRedisCache(cfg, log)
	case CacheTypeInMemory:
		fallthrough
	default:
		return NewInMemoryCache(log)
	}
}
