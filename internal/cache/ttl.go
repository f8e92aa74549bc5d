// Package cache provides a process-wide, size-bounded cache whose entries
// expire a fixed time after they were stored. Time is read from an injected
// clock so expiry is testable without sleeping.
package cache

import (
	"fmt"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/jonboulle/clockwork"
)

type entry[V any] struct {
	value     V
	expiresAt time.Time
}

// TTL is a concurrency-safe cache. Entries are never refreshed on read; a
// stored value is served unchanged until it expires, which bounds staleness
// to the TTL. A non-positive TTL disables caching.
type TTL[K comparable, V any] struct {
	clock clockwork.Clock
	ttl   time.Duration
	store *lru.Cache[K, entry[V]]
}

// New creates a TTL cache holding at most size entries.
func New[K comparable, V any](size int, ttl time.Duration, clock clockwork.Clock) (*TTL[K, V], error) {
	store, err := lru.New[K, entry[V]](size)
	if err != nil {
		return nil, fmt.Errorf("create lru store: %w", err)
	}
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	return &TTL[K, V]{clock: clock, ttl: ttl, store: store}, nil
}

// Get returns the value stored under key if it has not expired.
func (c *TTL[K, V]) Get(key K) (V, bool) {
	e, ok := c.store.Get(key)
	if !ok {
		var zero V
		return zero, false
	}
	if !c.clock.Now().Before(e.expiresAt) {
		c.store.Remove(key)
		var zero V
		return zero, false
	}
	return e.value, true
}

// Set stores value under key for the cache TTL.
func (c *TTL[K, V]) Set(key K, value V) {
	if c.ttl <= 0 {
		return
	}
	c.store.Add(key, entry[V]{value: value, expiresAt: c.clock.Now().Add(c.ttl)})
}

// Clear drops every entry.
func (c *TTL[K, V]) Clear() {
	c.store.Purge()
}

// Len returns the number of stored entries, including expired ones not yet
// evicted.
func (c *TTL[K, V]) Len() int {
	return c.store.Len()
}
