package cache

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"k8s.io/utils/clock"
)

// DefaultTTL is a reasonable TTLCache lifetime for callers without a
// freshness requirement of their own.
const DefaultTTL = 60 * time.Second

type ttlEntry[V any] struct {
	value    V
	storedAt time.Time
}

// TTLCache is an unbounded cache whose entries expire a fixed duration after
// insertion. Expiry is purely lazy: no timers run, and stale entries are
// removed only when some operation examines them. Get and Contains evict just
// the queried key; Len, Keys and String sweep the whole cache first, so their
// results never include stale entries. An entry aged exactly ttl is still
// live. Re-setting a key restamps it, starting a fresh ttl window.
type TTLCache[K comparable, V any] struct {
	ttl   time.Duration
	clock clock.PassiveClock
	items map[K]ttlEntry[V]
}

var _ Cache[string, int] = (*TTLCache[string, int])(nil)

// NewTTL creates a TTLCache whose entries live for ttl after each Set.
func NewTTL[K comparable, V any](ttl time.Duration) (*TTLCache[K, V], error) {
	return NewTTLWithClock[K, V](ttl, clock.RealClock{})
}

// NewTTLWithClock is NewTTL with an injected clock, for tests that need to
// control the passage of time.
func NewTTLWithClock[K comparable, V any](ttl time.Duration, clk clock.PassiveClock) (*TTLCache[K, V], error) {
	if ttl <= 0 {
		return nil, errors.New("ttl must be positive")
	}
	return &TTLCache[K, V]{
		ttl:   ttl,
		clock: clk,
		items: make(map[K]ttlEntry[V]),
	}, nil
}

// Set implements [Cache]. The entry's lifetime starts now, whether or not
// the key was already present.
func (t *TTLCache[K, V]) Set(key K, value V) {
	t.items[key] = ttlEntry[V]{value: value, storedAt: t.clock.Now()}
}

// Get implements [Cache]. An expired entry is removed and reported as
// ErrNotFound.
func (t *TTLCache[K, V]) Get(key K) (V, error) {
	entry, exists := t.items[key]
	if exists {
		if t.clock.Now().Sub(entry.storedAt) <= t.ttl {
			return entry.value, nil
		}
		delete(t.items, key)
	}
	var zero V
	return zero, fmt.Errorf("%w: %v", ErrNotFound, key)
}

// GetOrDefault implements [Cache]. def is returned for absent and expired
// keys alike.
func (t *TTLCache[K, V]) GetOrDefault(key K, def V) V {
	value, err := t.Get(key)
	if err != nil {
		return def
	}
	return value
}

// Delete implements [Cache]. A present entry is removed even if it has
// already expired.
func (t *TTLCache[K, V]) Delete(key K) error {
	if _, exists := t.items[key]; !exists {
		return fmt.Errorf("%w: %v", ErrNotFound, key)
	}
	delete(t.items, key)
	return nil
}

// Contains implements [Cache]. An expired entry is removed as a side effect
// of the check.
func (t *TTLCache[K, V]) Contains(key K) bool {
	entry, exists := t.items[key]
	if !exists {
		return false
	}
	if t.clock.Now().Sub(entry.storedAt) > t.ttl {
		delete(t.items, key)
		return false
	}
	return true
}

// Len implements [Cache]. All expired entries are swept out first.
func (t *TTLCache[K, V]) Len() int {
	t.expire()
	return len(t.items)
}

// Keys implements [Cache]. All expired entries are swept out first; the
// order of the remaining keys is unspecified.
func (t *TTLCache[K, V]) Keys() []K {
	t.expire()
	keys := make([]K, 0, len(t.items))
	for key := range t.items {
		keys = append(keys, key)
	}
	return keys
}

// String implements [Cache]. All expired entries are swept out first.
func (t *TTLCache[K, V]) String() string {
	t.expire()
	var sb strings.Builder
	sb.WriteString("TTLCache{")
	first := true
	for key, entry := range t.items {
		if !first {
			sb.WriteString(", ")
		}
		first = false
		fmt.Fprintf(&sb, "%v: %v", key, entry.value)
	}
	sb.WriteString("}")
	return sb.String()
}

// expire removes every stale entry. The clock is read once so a single sweep
// judges all entries against the same instant.
func (t *TTLCache[K, V]) expire() {
	now := t.clock.Now()
	for key, entry := range t.items {
		if now.Sub(entry.storedAt) > t.ttl {
			delete(t.items, key)
		}
	}
}
