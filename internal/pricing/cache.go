package pricing

import (
	"context"
	"encoding/json"
	"time"

	"go.uber.org/zap"

	"github.com/citycab/taxi-dispatch/pkg/logger"
	"github.com/citycab/taxi-dispatch/pkg/redis"
)

const (
	priceConfigCacheKey = "pricing:config"
	priceConfigCacheTTL = 5 * time.Minute
)

// RedisCache caches the price configuration in Redis. Cache misses and Redis
// failures both fall through to the database.
type RedisCache struct {
	client *redis.Client
}

// NewRedisCache creates a Redis-backed price config cache
func NewRedisCache(client *redis.Client) *RedisCache {
	return &RedisCache{client: client}
}

// GetPriceConfig returns the cached config and whether it was present
func (c *RedisCache) GetPriceConfig(ctx context.Context) (*PriceConfig, bool) {
	raw, err := c.client.GetString(ctx, priceConfigCacheKey)
	if err != nil {
		return nil, false
	}

	cfg := &PriceConfig{}
	if err := json.Unmarshal([]byte(raw), cfg); err != nil {
		logger.WithContext(ctx).Warn("discarding malformed cached price config", zap.Error(err))
		return nil, false
	}

	return cfg, true
}

// SetPriceConfig stores the config with a TTL
func (c *RedisCache) SetPriceConfig(ctx context.Context, cfg *PriceConfig) {
	raw, err := json.Marshal(cfg)
	if err != nil {
		return
	}
	if err := c.client.SetWithExpiration(ctx, priceConfigCacheKey, raw, priceConfigCacheTTL); err != nil {
		logger.WithContext(ctx).Warn("failed to cache price config", zap.Error(err))
	}
}

// Invalidate drops the cached config after an admin overwrite
func (c *RedisCache) Invalidate(ctx context.Context) {
	if err := c.client.Delete(ctx, priceConfigCacheKey); err != nil {
		logger.WithContext(ctx).Warn("failed to invalidate price config cache", zap.Error(err))
	}
}
