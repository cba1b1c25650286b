package cache

import (
	"context"
	"time"
)

// KeyValueStore abstracts the shared key-value store used for the
// availability cache and the booking period lock. Implementations must
// surface ErrCacheUnavailable on connectivity failures so callers can
// degrade instead of failing the request.
type KeyValueStore interface {
	// Get retrieves the value for a key. Returns found=false when the key
	// does not exist or has expired.
	//
	// Possible errors:
	// - ErrCacheUnavailable: If the store cannot be reached
	Get(ctx context.Context, key string) (value string, found bool, err error)

	// SetWithTTL stores a value that expires after ttl
	//
	// Possible errors:
	// - ErrCacheUnavailable: If the store cannot be reached
	SetWithTTL(ctx context.Context, key, value string, ttl time.Duration) error

	// SetIfAbsentWithTTL stores the value only when the key does not already
	// exist. Returns acquired=true when this call created the key.
	//
	// Possible errors:
	// - ErrCacheUnavailable: If the store cannot be reached
	SetIfAbsentWithTTL(ctx context.Context, key, value string, ttl time.Duration) (acquired bool, err error)

	// Delete removes a key; deleting a missing key is not an error
	//
	// Possible errors:
	// - ErrCacheUnavailable: If the store cannot be reached
	Delete(ctx context.Context, keys ...string) error

	// DeletePattern removes every key matching a glob-style pattern
	//
	// Possible errors:
	// - ErrCacheUnavailable: If the store cannot be reached
	DeletePattern(ctx context.Context, pattern string) error

	// Ping verifies connectivity to the store
	//
	// Possible errors:
	// - ErrCacheUnavailable: If the store cannot be reached
	Ping(ctx context.Context) error
}
