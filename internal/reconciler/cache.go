package reconciler

import (
	"filplus/pkg/domain"
	"sync"
)

// Cache maps applications to the fingerprint of the allocator file last
// applied to them. It is bounded: once capacity entries are held, new
// applications are refused until Retain frees room. Fingerprints are not
// persisted, so a restart reprocesses every application once.
type Cache struct {
	capacity int

	// mu protects entries.
	mu      sync.Mutex
	entries map[domain.ApplicationID]string
}

// NewCache returns an empty Cache holding at most capacity entries.
func NewCache(capacity int) *Cache {
	return &Cache{
		capacity: capacity,
		entries:  make(map[domain.ApplicationID]string),
	}
}

// Get returns the cached fingerprint of id and whether one is known.
func (c *Cache) Get(id domain.ApplicationID) (string, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	fingerprint, ok := c.entries[id]

	return fingerprint, ok
}

// Set records fingerprint for id. It returns false when id is not cached yet
// and the cache is full.
func (c *Cache) Set(id domain.ApplicationID, fingerprint string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, ok := c.entries[id]; !ok && len(c.entries) >= c.capacity {
		return false
	}
	c.entries[id] = fingerprint

	return true
}

// Retain drops every entry whose application is not in ids and returns the
// number of dropped entries.
func (c *Cache) Retain(ids []domain.ApplicationID) int {
	keep := make(map[domain.ApplicationID]struct{}, len(ids))
	for _, id := range ids {
		keep[id] = struct{}{}
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	dropped := 0
	for id := range c.entries {
		if _, ok := keep[id]; !ok {
			delete(c.entries, id)
			dropped++
		}
	}

	return dropped
}

// Len returns the number of cached fingerprints.
func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	return len(c.entries)
}

// Capacity returns the maximum number of cached fingerprints.
func (c *Cache) Capacity() int { return c.capacity }
