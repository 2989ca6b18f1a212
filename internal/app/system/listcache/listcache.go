// internal/app/system/listcache/listcache.go

// Package listcache is a small read-through cache for paged listings. Keys
// must cover every parameter that shapes the page (page number, size, sort);
// paging.PageSpec.Key() produces such keys. Writes that change the listed
// collection call Purge.
package listcache

import (
	lru "github.com/hashicorp/golang-lru/v2"
)

// DefaultSize is the entry cap used when the configured size is not positive.
const DefaultSize = 256

// Cache holds up to a fixed number of pages, evicting the least recently
// used. Safe for concurrent use.
type Cache[V any] struct {
	lru *lru.Cache[string, V]
}

// New returns a cache bounded to size entries.
func New[V any](size int) (*Cache[V], error) {
	if size <= 0 {
		size = DefaultSize
	}
	c, err := lru.New[string, V](size)
	if err != nil {
		return nil, err
	}
	return &Cache[V]{lru: c}, nil
}

// GetOrLoad returns the cached value for key, calling load on a miss and
// storing its result. Load errors are returned without caching.
func (c *Cache[V]) GetOrLoad(key string, load func() (V, error)) (V, error) {
	if v, ok := c.lru.Get(key); ok {
		return v, nil
	}
	v, err := load()
	if err != nil {
		return v, err
	}
	c.lru.Add(key, v)
	return v, nil
}

// Purge drops every cached page. Called after any write to the listed
// collection.
func (c *Cache[V]) Purge() {
	c.lru.Purge()
}

// Len reports the number of cached pages.
func (c *Cache[V]) Len() int {
	return c.lru.Len()
}
