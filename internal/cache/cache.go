package cache

import (
	"context"
	"time"
)

// Cache is a small key/value contract for JSON-serializable values.
type Cache interface {
	// Get unmarshals the cached value into dest. found is false on a miss and
	// dest is left untouched.
	Get(ctx context.Context, key string, dest any) (found bool, err error)

	// Set stores value under key for ttl.
	Set(ctx context.Context, key string, value any, ttl time.Duration) error

	// Delete removes keys. Missing keys are ignored.
	Delete(ctx context.Context, keys ...string) error

	// Ping checks the connection.
	Ping(ctx context.Context) error
}
