package spoonacular

import (
	"context"
	"errors"
	"time"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

// ResponseCache stores raw provider response bodies. Failures degrade to
// cache misses.
type ResponseCache interface {
	Get(ctx context.Context, key string) ([]byte, bool)
	Set(ctx context.Context, key string, body []byte)
}

type noCache struct{}

func (noCache) Get(context.Context, string) ([]byte, bool) { return nil, false }
func (noCache) Set(context.Context, string, []byte)        {}

type redisCache struct {
	rdb    *redis.Client
	ttl    time.Duration
	logger *zap.Logger
}

func NewRedisCache(rdb *redis.Client, ttl time.Duration, logger *zap.Logger) ResponseCache {
	return &redisCache{rdb: rdb, ttl: ttl, logger: logger}
}

func (c *redisCache) Get(ctx context.Context, key string) ([]byte, bool) {
	body, err := c.rdb.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false
	}
	if err != nil {
		c.logger.Warn("provider cache read failed", zap.String("key", key), zap.Error(err))
		return nil, false
	}
	return body, true
}

func (c *redisCache) Set(ctx context.Context, key string, body []byte) {
	if err := c.rdb.Set(ctx, key, body, c.ttl).Err(); err != nil {
		c.logger.Warn("provider cache write failed", zap.String("key", key), zap.Error(err))
	}
}
