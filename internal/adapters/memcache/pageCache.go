// Package memcache is the in-process page cache backend, used when no redis
// server is configured and by the test suite.
package memcache

import (
	"context"
	"sync"
	"time"
)

type entry struct {
	body      []byte
	expiresAt time.Time
}

// PageCacheMemory is a map-backed cache with per-entry TTL. Reads past the
// deadline miss; the janitor worker reclaims dead entries in the background.
// The clock is injectable so expiry is testable without sleeping.
type PageCacheMemory struct {
	mu      sync.Mutex
	entries map[string]entry
	now     func() time.Time
}

func NewPageCacheMemory() *PageCacheMemory {
	return &PageCacheMemory{
		entries: make(map[string]entry),
		now:     time.Now,
	}
}

// SetClock replaces the time source. Tests only.
func (c *PageCacheMemory) SetClock(now func() time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = now
}

func (c *PageCacheMemory) Get(ctx context.Context, key string) ([]byte, bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	e, ok := c.entries[key]
	if !ok {
		return nil, false, nil
	}
	if !c.now().Before(e.expiresAt) {
		delete(c.entries, key)
		return nil, false, nil
	}
	body := make([]byte, len(e.body))
	copy(body, e.body)
	return body, true, nil
}

func (c *PageCacheMemory) Put(ctx context.Context, key string, body []byte, ttl time.Duration) error {
	stored := make([]byte, len(body))
	copy(stored, body)
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[key] = entry{body: stored, expiresAt: c.now().Add(ttl)}
	return nil
}

func (c *PageCacheMemory) Flush(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = make(map[string]entry)
	return nil
}

// Sweep drops expired entries and reports how many were removed.
func (c *PageCacheMemory) Sweep() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	removed := 0
	now := c.now()
	for key, e := range c.entries {
		if !now.Before(e.expiresAt) {
			delete(c.entries, key)
			removed++
		}
	}
	return removed
}
