package cache

import (
	"errors"
	"fmt"
	"strings"
)

// DefaultMaxSize is a reasonable LRUCache capacity for callers without a
// sizing requirement of their own.
const DefaultMaxSize = 100

type lruNode[K comparable, V any] struct {
	key   K
	value V
	prev  *lruNode[K, V]
	next  *lruNode[K, V]
}

// LRUCache is a fixed-capacity cache that evicts the least recently used
// entry on overflow. Every Get and Set of a key counts as a use. Recency is
// kept in a doubly-linked list with sentinel head and tail nodes (head.next
// is the MRU entry, tail.prev the LRU entry) and a hashmap indexes the nodes,
// so promotion and eviction are O(1).
type LRUCache[K comparable, V any] struct {
	maxSize int
	items   map[K]*lruNode[K, V]
	head    *lruNode[K, V]
	tail    *lruNode[K, V]
}

var _ Cache[string, int] = (*LRUCache[string, int])(nil)

// NewLRU creates an LRUCache holding at most maxSize entries.
func NewLRU[K comparable, V any](maxSize int) (*LRUCache[K, V], error) {
	if maxSize <= 0 {
		return nil, errors.New("max size must be positive")
	}
	lru := LRUCache[K, V]{
		maxSize: maxSize,
		items:   make(map[K]*lruNode[K, V], maxSize),
		head:    &lruNode[K, V]{},
		tail:    &lruNode[K, V]{},
	}
	lru.head.next = lru.tail
	lru.tail.prev = lru.head
	return &lru, nil
}

// Set implements [Cache]. If key is already present its value is replaced
// and the entry becomes the most recently used; otherwise the least recently
// used entry is evicted first if the cache is full.
func (l *LRUCache[K, V]) Set(key K, value V) {
	if node, exists := l.items[key]; exists {
		node.value = value
		l.moveToFront(node)
		return
	}
	if len(l.items) >= l.maxSize {
		lru := l.tail.prev
		l.unlink(lru)
		delete(l.items, lru.key)
	}
	node := &lruNode[K, V]{key: key, value: value}
	l.pushFront(node)
	l.items[key] = node
}

// Get implements [Cache]. A hit promotes the entry to most recently used.
func (l *LRUCache[K, V]) Get(key K) (V, error) {
	node, exists := l.items[key]
	if !exists {
		var zero V
		return zero, fmt.Errorf("%w: %v", ErrNotFound, key)
	}
	l.moveToFront(node)
	return node.value, nil
}

// GetOrDefault implements [Cache]. A hit promotes the entry to most recently
// used; a miss returns def.
func (l *LRUCache[K, V]) GetOrDefault(key K, def V) V {
	value, err := l.Get(key)
	if err != nil {
		return def
	}
	return value
}

// Delete implements [Cache].
func (l *LRUCache[K, V]) Delete(key K) error {
	node, exists := l.items[key]
	if !exists {
		return fmt.Errorf("%w: %v", ErrNotFound, key)
	}
	l.unlink(node)
	delete(l.items, key)
	return nil
}

// Contains implements [Cache]. Unlike Get it does not promote the entry.
func (l *LRUCache[K, V]) Contains(key K) bool {
	_, exists := l.items[key]
	return exists
}

// Len implements [Cache].
func (l *LRUCache[K, V]) Len() int {
	return len(l.items)
}

// Keys implements [Cache]. Keys are ordered least to most recently used.
func (l *LRUCache[K, V]) Keys() []K {
	keys := make([]K, 0, len(l.items))
	for node := l.tail.prev; node != l.head; node = node.prev {
		keys = append(keys, node.key)
	}
	return keys
}

// String implements [Cache]. Entries are rendered least to most recently used.
func (l *LRUCache[K, V]) String() string {
	var sb strings.Builder
	sb.WriteString("LRUCache{")
	for node := l.tail.prev; node != l.head; node = node.prev {
		if node != l.tail.prev {
			sb.WriteString(", ")
		}
		fmt.Fprintf(&sb, "%v: %v", node.key, node.value)
	}
	sb.WriteString("}")
	return sb.String()
}

func (l *LRUCache[K, V]) moveToFront(node *lruNode[K, V]) {
	l.unlink(node)
	l.pushFront(node)
}

func (l *LRUCache[K, V]) unlink(node *lruNode[K, V]) {
	node.prev.next = node.next
	node.next.prev = node.prev
}

func (l *LRUCache[K, V]) pushFront(node *lruNode[K, V]) {
	node.next = l.head.next
	node.prev = l.head
	l.head.next.prev = node
	l.head.next = node
}
