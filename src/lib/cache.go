package lib

import (
	"context"
	"encoding/json"
	"time"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"

	"github.com/trailmates/trailmates-server/src/config"
)

// Cache is a thin JSON wrapper over redis. A nil Cache (or one whose
// connection failed) behaves as a permanent miss, so callers never have to
// special-case a missing redis.
type Cache struct {
	rdb *redis.Client
}

// ConnectCache dials redis. Failure is not fatal: the cache degrades to
// miss-only and the caller keeps the direct query path.
func ConnectCache(cfg *config.RedisConfig) *Cache {
	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.Db,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	if err := rdb.Ping(ctx).Err(); err != nil {
		zap.L().Warn("redis unavailable, caching disabled", zap.Error(err))
		return &Cache{}
	}

	zap.L().Info("connected to redis", zap.String("addr", cfg.Addr))
	return &Cache{rdb: rdb}
}

// GetJSON unmarshals the cached value into dest. Returns false on miss or
// any redis/decoding failure.
func (c *Cache) GetJSON(ctx context.Context, key string, dest interface{}) bool {
	if c == nil || c.rdb == nil {
		return false
	}
	raw, err := c.rdb.Get(ctx, key).Result()
	if err != nil {
		if err != redis.Nil {
			zap.L().Warn("cache get failed", zap.String("key", key), zap.Error(err))
		}
		return false
	}
	if err := json.Unmarshal([]byte(raw), dest); err != nil {
		zap.L().Warn("cache decode failed", zap.String("key", key), zap.Error(err))
		return false
	}
	return true
}

// SetJSON stores value under key with a TTL. Failures are logged and
// swallowed; the cache is best-effort.
func (c *Cache) SetJSON(ctx context.Context, key string, value interface{}, ttl time.Duration) {
	if c == nil || c.rdb == nil {
		return
	}
	raw, err := json.Marshal(value)
	if err != nil {
		zap.L().Warn("cache encode failed", zap.String("key", key), zap.Error(err))
		return
	}
	if err := c.rdb.Set(ctx, key, raw, ttl).Err(); err != nil {
		zap.L().Warn("cache set failed", zap.String("key", key), zap.Error(err))
	}
}

// Delete drops a key, used to invalidate per-user suggestions after writes.
func (c *Cache) Delete(ctx context.Context, key string) {
	if c == nil || c.rdb == nil {
		return
	}
	if err := c.rdb.Del(ctx, key).Err(); err != nil {
		zap.L().Warn("cache delete failed", zap.String("key", key), zap.Error(err))
	}
}
