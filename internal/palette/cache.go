package palette

import "sync"

// Resolver resolves a palette name to a ramp.
type Resolver interface {
	Resolve(name string) *Ramp
}

// Cache is a concurrency-safe palette cache. Names that are not indexed,
// or that fail to decode, resolve to the default ramp.
type Cache struct {
	mu       sync.RWMutex
	items    map[string]*Ramp
	index    *Index
	fallback *Ramp
}

// NewCache creates a cache backed by index.
func NewCache(index *Index) *Cache {
	return &Cache{
		items:    make(map[string]*Ramp),
		index:    index,
		fallback: Default(),
	}
}

func (c *Cache) Resolve(name string) *Ramp {
	path, ok := c.index.ResolvePath(name)
	if !ok {
		return c.fallback
	}

	c.mu.RLock()
	if r, exists := c.items[path]; exists {
		c.mu.RUnlock()
		return r
	}
	c.mu.RUnlock()

	r, err := Load(path)
	if err != nil {
		r = c.fallback
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if existing, exists := c.items[path]; exists {
		return existing
	}
	c.items[path] = r
	return r
}
