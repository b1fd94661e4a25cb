// Package session provides the durable per-user key-value store backing
// quiz conversations.
package session

import "context"

// Store is the key-value contract the quiz engine runs on. Keys hold either
// a plain string value or a hash of named fields; counter keys are plain
// strings incremented atomically. Implementations must keep data across
// process restarts to be used in production (MemoryStore is for tests and
// local runs).
type Store interface {
	// Get returns the string value at key; ok is false when the key is absent.
	Get(ctx context.Context, key string) (value string, ok bool, err error)
	// Set stores a string value at key.
	Set(ctx context.Context, key, value string) error
	// SetFields stores all given hash fields at key in one operation:
	// either every field is written or none is.
	SetFields(ctx context.Context, key string, fields map[string]string) error
	// GetField returns one hash field at key; ok is false when the key or
	// the field is absent.
	GetField(ctx context.Context, key, field string) (value string, ok bool, err error)
	// Incr increments the integer at key by one, creating it as 0 first,
	// and returns the new value.
	Incr(ctx context.Context, key string) (int64, error)
	// Delete removes key. Deleting an absent key is not an error.
	Delete(ctx context.Context, key string) error
}
