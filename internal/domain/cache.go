package domain

import (
	"context"
	"errors"
	"time"
)

var ErrCacheMiss = errors.New("cache miss")

// CacheRepository is a JSON value cache
type CacheRepository interface {
	// Get decodes the cached value into dest, returning ErrCacheMiss when absent
	Get(ctx context.Context, key string, dest interface{}) error
	Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error
	Delete(ctx context.Context, keys ...string) error
	// DeleteByPattern removes every key matching a glob pattern
	DeleteByPattern(ctx context.Context, pattern string) error
}
