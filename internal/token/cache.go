package token

import (
	"fmt"

	"github.com/maypok86/otter"
)

// DefaultCacheCapacity is the default cache cost capacity in bytes of
// cached text.
const DefaultCacheCapacity = 64 * 1024 * 1024

// CachedCounter wraps a Counter with a size-bounded cache keyed by the text
// itself. Window extraction re-counts the same full file text once per
// match, so the cache turns those repeats into lookups.
type CachedCounter struct {
	inner Counter
	cache otter.Cache[string, int]
}

// NewCachedCounter creates a caching wrapper around inner. capacity is the
// maximum total bytes of cached text; DefaultCacheCapacity is used when it
// is not positive.
func NewCachedCounter(inner Counter, capacity int) (*CachedCounter, error) {
	if capacity <= 0 {
		capacity = DefaultCacheCapacity
	}

	cache, err := otter.MustBuilder[string, int](capacity).
		Cost(func(key string, value int) uint32 {
			if len(key) == 0 {
				return 1
			}
			return uint32(len(key))
		}).
		Build()
	if err != nil {
		return nil, fmt.Errorf("failed to build token cache: %w", err)
	}

	return &CachedCounter{
		inner: inner,
		cache: cache,
	}, nil
}

// Count returns the token count for text, serving repeated texts from the
// cache.
func (c *CachedCounter) Count(text string) int {
	if count, ok := c.cache.Get(text); ok {
		return count
	}
	count := c.inner.Count(text)
	c.cache.Set(text, count)
	return count
}

// Close releases cache resources.
func (c *CachedCounter) Close() {
	c.cache.Close()
}
