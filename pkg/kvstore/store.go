// Package kvstore persists whole-snapshot values under a single namespaced
// key. Every repository mutation rewrites the complete value, so a backend
// only has to promise that one Save is atomic: readers see either the prior
// snapshot or the new one, never a partial write.
package kvstore

import "context"

// Store is a one-key snapshot store.
type Store interface {
	// Load returns the stored value. found is false when the key has never
	// been written, which callers treat as an empty snapshot, not an error.
	Load(ctx context.Context, key string) (data []byte, found bool, err error)

	// Save atomically replaces the stored value.
	Save(ctx context.Context, key string, data []byte) error

	Close() error
}
