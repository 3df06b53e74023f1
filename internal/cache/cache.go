package cache

import (
	"fmt"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"
)

// Cache is a bounded response cache keyed by request URI. Entries are valid
// while now - StoredAt < ttl; the least recently used entry is evicted once
// the capacity is reached.
type Cache struct {
	entries *lru.Cache[string, Entry]
	ttl     time.Duration
	now     func() time.Time
}

type Entry struct {
	Payload  []byte
	StoredAt time.Time
}

type Option func(*Cache)

// WithClock replaces time.Now, used by tests to step over the TTL.
func WithClock(now func() time.Time) Option {
	return func(c *Cache) {
		c.now = now
	}
}

func New(ttl time.Duration, maxEntries int, opts ...Option) (*Cache, error) {
	if ttl <= 0 {
		return nil, fmt.Errorf("ttl must be positive, got %s", ttl)
	}

	entries, err := lru.New[string, Entry](maxEntries)
	if err != nil {
		return nil, fmt.Errorf("create lru: %w", err)
	}

	c := &Cache{
		entries: entries,
		ttl:     ttl,
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// Get returns the payload stored under key if it is still fresh. Stale
// entries are dropped on the way out.
func (c *Cache) Get(key string) ([]byte, bool) {
	entry, ok := c.entries.Get(key)
	if !ok {
		return nil, false
	}
	if !c.fresh(entry, c.now()) {
		c.entries.Remove(key)
		return nil, false
	}
	return entry.Payload, true
}

func (c *Cache) Set(key string, payload []byte) {
	c.entries.Add(key, Entry{Payload: payload, StoredAt: c.now()})
}

// Sweep removes every expired entry and returns how many were dropped.
func (c *Cache) Sweep() int {
	now := c.now()
	removed := 0
	for _, key := range c.entries.Keys() {
		entry, ok := c.entries.Peek(key)
		if !ok || c.fresh(entry, now) {
			continue
		}
		if c.entries.Remove(key) {
			removed++
		}
	}
	return removed
}

func (c *Cache) Len() int {
	return c.entries.Len()
}

func (c *Cache) TTL() time.Duration {
	return c.ttl
}

func (c *Cache) fresh(e Entry, now time.Time) bool {
	return now.Sub(e.StoredAt) < c.ttl
}
