package search

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"
	"sync"
)

// Cache is an in-memory, append-only store of search results keyed by query
// hash. It lives for the lifetime of the process; queries form a small,
// bounded per-run set so no eviction is needed. Safe for concurrent use.
// Concurrent writers for the same key race harmlessly to the same value,
// since results are pure given the query string.
type Cache struct {
	mu      sync.RWMutex
	entries map[string][]Result
}

func NewCache() *Cache {
	return &Cache{entries: make(map[string][]Result)}
}

func (c *Cache) Get(key string) ([]Result, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	results, ok := c.entries[key]
	return results, ok
}

func (c *Cache) Set(key string, results []Result) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[key] = results
}

// Clear drops all entries. Used for test isolation; normal flow never
// invalidates.
func (c *Cache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = make(map[string][]Result)
}

// QueryKey returns the cache key for a query: a stable hash of the
// whitespace-normalized query text.
func QueryKey(query string) string {
	sum := sha256.Sum256([]byte(strings.TrimSpace(query)))
	return hex.EncodeToString(sum[:])
}
