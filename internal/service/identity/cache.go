// Package identity resolves lookup keys to display names.
package identity

import "sync"

// Cache maps lookup keys to resolved names for the life of the process.
// The first write for a key wins; later writes are ignored.
type Cache struct {
	mu    sync.RWMutex
	names map[string]string
}

func NewCache() *Cache {
	return &Cache{
		names: make(map[string]string),
	}
}

func (c *Cache) Get(key string) (string, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	name, ok := c.names[key]
	return name, ok
}

// Put stores name under key unless the key is already present. It reports
// whether the name was stored.
func (c *Cache) Put(key, name string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, ok := c.names[key]; ok {
		return false
	}
	c.names[key] = name
	return true
}

func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return len(c.names)
}

// Synthetic is the name used when no source could resolve key.
func Synthetic(key string) string {
	return "User" + key
}
