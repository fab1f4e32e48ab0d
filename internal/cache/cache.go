// Package cache provides the time-bounded fetch cache used by the GitHub
// client. Entries are keyed by request URL and hold the raw response body.
//
// Entries are never evicted. A stale entry is a miss and is overwritten by
// the next Put for the same key. Concurrent misses for one key are not
// coalesced, so two callers may both fetch; GET requests are idempotent.
package cache

import (
	"sync"
	"time"

	"github.com/jonboulle/clockwork"
)

// DefaultTTL is used when a non-positive TTL is configured
const DefaultTTL = 15 * time.Minute

// Entry is a single cached response body
type Entry struct {
	Key      string
	Value    []byte
	StoredAt time.Time
}

// Cache is a TTL cache private to one client instance
type Cache struct {
	mu      sync.RWMutex
	entries map[string]Entry
	ttl     time.Duration
	clock   clockwork.Clock
}

// New creates an empty cache. A nil clock uses the real clock.
func New(ttl time.Duration, clock clockwork.Clock) *Cache {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	if clock == nil {
		clock = clockwork.NewRealClock()
	}

	return &Cache{
		entries: make(map[string]Entry),
		ttl:     ttl,
		clock:   clock,
	}
}

// Get returns the cached value for key while it is younger than the TTL
func (c *Cache) Get(key string) ([]byte, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	entry, ok := c.entries[key]
	if !ok {
		return nil, false
	}
	if c.clock.Since(entry.StoredAt) >= c.ttl {
		return nil, false
	}

	return entry.Value, true
}

// Put stores value under key, replacing any previous entry
func (c *Cache) Put(key string, value []byte) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries[key] = Entry{
		Key:      key,
		Value:    value,
		StoredAt: c.clock.Now(),
	}
}

// Len returns the number of stored entries, stale ones included
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}

// TTL returns the configured time-to-live
func (c *Cache) TTL() time.Duration {
	return c.ttl
}
