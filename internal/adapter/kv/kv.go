// Package kv defines the key-value persistence contract the engine stores its
// records in. Backends live in sibling packages (memory, postgres, redis,
// sqlite); each Set replaces the whole value of one key atomically.
package kv

import (
	"context"
	"strings"
)

// Store is the minimal get/set/list contract every backend implements.
type Store interface {
	// Get returns the value stored under key. ok is false when the key is absent.
	Get(ctx context.Context, key string) (value []byte, ok bool, err error)
	// Set stores value under key, replacing any previous value.
	Set(ctx context.Context, key string, value []byte) error
	// ListKeysByPrefix returns every key starting with prefix in ascending order.
	ListKeysByPrefix(ctx context.Context, prefix string) ([]string, error)
}

// Pinger is implemented by backends that can report their liveness.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Separator joins key segments.
const Separator = "/"

// Key joins segments into a single key.
func Key(segments ...string) string {
	return strings.Join(segments, Separator)
}

// Prefix joins segments and appends a trailing separator so that listing
// "users/u1/" never matches "users/u10/...".
func Prefix(segments ...string) string {
	return Key(segments...) + Separator
}

// LastSegment returns the final segment of a key.
func LastSegment(key string) string {
	if i := strings.LastIndex(key, Separator); i >= 0 {
		return key[i+len(Separator):]
	}
	return key
}
