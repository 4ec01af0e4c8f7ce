package datasources

import (
	"context"
	"errors"
	"time"
)

var ErrCacheMiss = errors.New("cache miss")

// Cache stores opaque values with an expiry. Get returns ErrCacheMiss for
// absent or expired keys.
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
}

// NullCache stores nothing.
type NullCache struct{}

var _ Cache = NullCache{}

func (NullCache) Get(_ context.Context, _ string) ([]byte, error) {
	return nil, ErrCacheMiss
}

func (NullCache) Set(_ context.Context, _ string, _ []byte, _ time.Duration) error {
	return nil
}

// CacheInvalidator drops every cached value whose key starts with prefix.
type CacheInvalidator interface {
	DeletePrefix(ctx context.Context, prefix string) (int64, error)
}

var _ CacheInvalidator = NullCache{}

func (NullCache) DeletePrefix(_ context.Context, _ string) (int64, error) {
	return 0, nil
}
