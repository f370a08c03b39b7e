package storage

import "context"

// KV defines the interface for the persistent key-value slot backing the
// alert store. One key holds one serialized blob; every write replaces
// the whole value. There are no transactions and no schema versioning.
type KV interface {
	// Get retrieves the value stored under key. The second return value
	// reports whether the key was present.
	Get(ctx context.Context, key string) (string, bool, error)

	// Set stores value under key, overwriting any prior content
	Set(ctx context.Context, key, value string) error

	// Delete removes the value stored under key, if any
	Delete(ctx context.Context, key string) error
}
