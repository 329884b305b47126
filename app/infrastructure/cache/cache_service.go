package cache

import (
	"context"
	"errors"
	"time"

	"github.com/go-redsync/redsync/v4"
)

// ErrCacheMiss is returned by Get when the key does not exist.
var ErrCacheMiss = errors.New("cache: key not found")

// CacheService defines the interface for cache operations
type CacheService interface {
	// Set stores a string value in cache with an expiration time; zero means no expiry
	Set(ctx context.Context, key string, value string, expiration time.Duration) error

	// Get retrieves a string value from cache
	Get(ctx context.Context, key string) (string, error)

	// Unlink removes a key from cache asynchronously (non-blocking)
	Unlink(ctx context.Context, key string) error

	// Redlock distributed locking functions
	NewMutex(name string, options ...redsync.Option) *redsync.Mutex
}
