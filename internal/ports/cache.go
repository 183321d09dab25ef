package ports

import (
	"context"
	"time"
)

// CacheStore persists opaque values under well-known keys.
// The board stores its whole collection as a single value.
type CacheStore interface {
	// Get returns the value for key; ok is false when nothing is stored
	Get(ctx context.Context, key string) (value []byte, ok bool, err error)

	// Put replaces the value stored under key
	Put(ctx context.Context, key string, value []byte) error
}

// CacheTimestamps is implemented by stores that know when a key was last written
type CacheTimestamps interface {
	UpdatedAt(ctx context.Context, key string) (updatedAt time.Time, ok bool, err error)
}
