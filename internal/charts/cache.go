package charts

import (
	"fmt"

	lru "github.com/hashicorp/golang-lru"

	"github.com/Dan9191/econosfera/internal/models"
)

// DefaultCacheSize bounds the number of distinct chart requests kept in memory
const DefaultCacheSize = 512

// Cache memoizes generated series by request key
type Cache struct {
	entries *lru.Cache
}

// NewCache creates a chart cache holding up to size entries
func NewCache(size int) (*Cache, error) {
	if size <= 0 {
		size = DefaultCacheSize
	}
	entries, err := lru.New(size)
	if err != nil {
		return nil, fmt.Errorf("failed to create chart cache: %w", err)
	}
	return &Cache{entries: entries}, nil
}

// Get returns the cached series for key, building and storing them on a miss.
// The bool reports whether the value came from the cache.
func (c *Cache) Get(key string, build func() []models.Series) ([]models.Series, bool) {
	if v, ok := c.entries.Get(key); ok {
		return v.([]models.Series), true
	}
	series := build()
	c.entries.Add(key, series)
	return series, false
}

// Len reports the number of cached requests
func (c *Cache) Len() int {
	return c.entries.Len()
}

// Key builds a cache key from a chart name and its parameters
func Key(name string, params any) string {
	return fmt.Sprintf("%s:%+v", name, params)
}
