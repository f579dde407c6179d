package contentful

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

// Cache stores raw upstream bodies for their revalidate window.
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, bool)
	Set(ctx context.Context, key string, body []byte, ttl time.Duration)
}

type noopCache struct{}

func (noopCache) Get(context.Context, string) ([]byte, bool)            { return nil, false }
func (noopCache) Set(context.Context, string, []byte, time.Duration) {}

// RedisCache keeps bodies in Redis. Redis errors are logged and treated as misses.
type RedisCache struct {
	rdb *redis.Client
}

// NewRedisCache returns nil when rdb is nil, which the client treats as no cache.
func NewRedisCache(rdb *redis.Client) Cache {
	if rdb == nil {
		return nil
	}
	return &RedisCache{rdb: rdb}
}

func (c *RedisCache) Get(ctx context.Context, key string) ([]byte, bool) {
	body, err := c.rdb.Get(ctx, key).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			log.Warn().Err(err).Str("key", key).Msg("Contentful cache read failed")
		}
		return nil, false
	}
	return body, true
}

func (c *RedisCache) Set(ctx context.Context, key string, body []byte, ttl time.Duration) {
	if err := c.rdb.Set(ctx, key, body, ttl).Err(); err != nil {
		log.Warn().Err(err).Str("key", key).Msg("Contentful cache write failed")
	}
}
