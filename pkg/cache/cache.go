// Package cache provides two in-memory key-value containers: an LRUCache
// bounded by entry count and a TTLCache bounded by entry age. Both implement
// the same mutable-mapping contract so they can replace an unbounded map
// wherever entries must be reclaimed automatically.
//
// Neither container is safe for concurrent use; callers that share a cache
// across goroutines must guard it with their own mutex.
package cache

import "errors"

// ErrNotFound is returned by Get and Delete when a key is absent, or, for
// the TTLCache, when its entry has expired.
var ErrNotFound = errors.New("key not found")

type Cache[K comparable, V any] interface {
	// Set inserts or overwrites the value for key. It never fails.
	Set(key K, value V)
	// Get retrieves the value for key, or ErrNotFound if the key is absent.
	Get(key K) (V, error)
	// GetOrDefault retrieves the value for key, or def if the key is absent.
	GetOrDefault(key K, def V) V
	// Delete removes the entry for key. Returns ErrNotFound if the key is absent.
	Delete(key K) error
	// Contains reports whether key has a live entry.
	Contains(key K) bool
	// Len returns the current number of live entries.
	Len() int
	// Keys returns a snapshot of the live keys. Each call produces a fresh slice.
	Keys() []K
	// String renders the live entries for debugging. The format is not stable.
	String() string
}
