package projection

import (
	"fmt"
	"sync/atomic"

	lru "github.com/hashicorp/golang-lru"

	"github.com/ulysse71/milky-way/internal/astro"
	"github.com/ulysse71/milky-way/internal/catalog"
)

type cacheKey struct {
	cat    *catalog.Catalog
	frame  astro.Frame
	cutoff float64
}

// Cache memoizes projections by catalog, frame and cutoff.
type Cache struct {
	lru    *lru.Cache
	hits   atomic.Int64
	misses atomic.Int64
}

// NewCache returns a cache holding up to size projections.
func NewCache(size int) (*Cache, error) {
	c, err := lru.New(size)
	if err != nil {
		return nil, fmt.Errorf("projection cache: %w", err)
	}
	return &Cache{lru: c}, nil
}

// Project returns the cached projection or computes and stores it. Callers
// must not modify the returned slice.
func (c *Cache) Project(cat *catalog.Catalog, f astro.Frame, cutoff float64) []Point {
	key := cacheKey{cat: cat, frame: f, cutoff: cutoff}
	if v, ok := c.lru.Get(key); ok {
		c.hits.Add(1)
		return v.([]Point)
	}
	c.misses.Add(1)
	pts := Project(cat, f, cutoff)
	c.lru.Add(key, pts)
	return pts
}

// Len returns the number of cached projections.
func (c *Cache) Len() int {
	return c.lru.Len()
}

// Stats returns hit and miss counts.
func (c *Cache) Stats() (hits, misses int64) {
	return c.hits.Load(), c.misses.Load()
}

// Purge drops every cached projection.
func (c *Cache) Purge() {
	c.lru.Purge()
}
