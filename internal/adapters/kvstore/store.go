// Package kvstore defines the persistent key-value store interface and its
// backends. Values are opaque JSON blobs; callers own the encoding.
package kvstore

import "context"

// Store provides read/write access to string-keyed JSON state.
type Store interface {
	// Get returns the value stored under key.
	// Returns ErrKeyNotFound if the key is absent.
	Get(ctx context.Context, key string) ([]byte, error)

	// Set stores value under key, replacing any existing value.
	Set(ctx context.Context, key string, value []byte) error

	// Delete removes key. Deleting an absent key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases backend resources.
	Close() error
}
