package api

import (
	lru "github.com/hashicorp/golang-lru/v2"
)

// DefaultCacheSize is the number of response bodies kept per run
const DefaultCacheSize = 100

// Cache is a read-through cache of response bodies keyed by request path.
// Entries are never invalidated; a run is short enough that a mutation
// followed by a read of the same path does not happen in practice.
type Cache struct {
	entries *lru.Cache[string, string]
}

// NewCache returns an LRU cache holding at most size bodies
func NewCache(size int) *Cache {
	if size < 1 {
		size = 1
	}
	// lru.New only fails for a non-positive size
	entries, _ := lru.New[string, string](size)
	return &Cache{entries: entries}
}

// GetOrFetch returns the stored body for key, or calls fetch and stores its
// result. Failed fetches are not stored. hit reports whether fetch was skipped.
func (c *Cache) GetOrFetch(key string, fetch func() (string, error)) (body string, hit bool, err error) {
	if cached, ok := c.entries.Get(key); ok {
		return cached, true, nil
	}
	body, err = fetch()
	if err != nil {
		return "", false, err
	}
	c.entries.Add(key, body)
	return body, false, nil
}

// Contains reports whether key is cached without touching its recency
func (c *Cache) Contains(key string) bool {
	return c.entries.Contains(key)
}

func (c *Cache) Len() int {
	return c.entries.Len()
}
