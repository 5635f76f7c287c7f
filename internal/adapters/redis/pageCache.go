package redis

import (
	"context"
	"errors"
	"time"

	"github.com/go-redis/redis/v8"
)

// PageCacheRedis stores rendered page bodies in redis, expiry handled by the
// server's key TTL.
type PageCacheRedis struct {
	Client *redis.Client
}

func NewPageCacheRedis(client *redis.Client) *PageCacheRedis {
	return &PageCacheRedis{Client: client}
}

func (c *PageCacheRedis) Get(ctx context.Context, key string) ([]byte, bool, error) {
	body, err := c.Client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return body, true, nil
}

func (c *PageCacheRedis) Put(ctx context.Context, key string, body []byte, ttl time.Duration) error {
	return c.Client.Set(ctx, key, body, ttl).Err()
}

func (c *PageCacheRedis) Flush(ctx context.Context) error {
	return c.Client.FlushDB(ctx).Err()
}
