package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/nairobell/feed/internal/datasources"
	"github.com/redis/go-redis/v9"
)

var _ datasources.Cache = (*Cache)(nil)

// Cache stores values under a common key prefix so several deployments can
// share one Redis database.
type Cache struct {
	client *redis.Client
	prefix string
}

// Connect opens a client from a redis:// URL and checks it responds.
func Connect(ctx context.Context, uri string) (*redis.Client, error) {
	opts, err := redis.ParseURL(uri)
	if err != nil {
		return nil, fmt.Errorf("parsing redis URL: %w", err)
	}

	client := redis.NewClient(opts)
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("checking redis connection: %w", err)
	}
	return client, nil
}

func New(client *redis.Client, prefix string) *Cache {
	return &Cache{client: client, prefix: prefix}
}

func (c *Cache) Get(ctx context.Context, key string) ([]byte, error) {
	val, err := c.client.Get(ctx, c.prefix+key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, datasources.ErrCacheMiss
	}
	if err != nil {
		return nil, fmt.Errorf("getting cache key [%s]: %w", key, err)
	}
	return val, nil
}

// Set stores value for ttl. A non-positive ttl stores nothing, since an
// entry without expiry would never be refreshed.
func (c *Cache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if ttl <= 0 {
		return nil
	}
	if err := c.client.Set(ctx, c.prefix+key, value, ttl).Err(); err != nil {
		return fmt.Errorf("setting cache key [%s]: %w", key, err)
	}
	return nil
}

// DeletePrefix removes every key starting with the given prefix.
func (c *Cache) DeletePrefix(ctx context.Context, prefix string) (int64, error) {
	var deleted int64
	iter := c.client.Scan(ctx, 0, c.prefix+prefix+"*", 100).Iterator()
	for iter.Next(ctx) {
		n, err := c.client.Del(ctx, iter.Val()).Result()
		if err != nil {
			return deleted, fmt.Errorf("deleting cache key [%s]: %w", iter.Val(), err)
		}
		deleted += n
	}
	if err := iter.Err(); err != nil {
		return deleted, fmt.Errorf("scanning cache keys: %w", err)
	}
	return deleted, nil
}
