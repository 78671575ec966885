package providers

import (
	"context"
	"time"
)

// CacheProvider defines a key/value store with expiry
type CacheProvider interface {
	// Get retrieves a value. A missing key yields a NOT_FOUND AppError.
	Get(ctx context.Context, key string) ([]byte, error)

	// Set stores a value. A zero ttl keeps it until deleted.
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error

	// Delete removes a value
	Delete(ctx context.Context, key string) error
}
