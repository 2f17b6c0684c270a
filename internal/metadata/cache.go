package metadata

import (
	"time"

	"photoframe/internal/metrics"

	lru "github.com/hashicorp/golang-lru/v2"
)

// DefaultCacheSize bounds the cache when no explicit size is configured.
const DefaultCacheSize = 10000

// cacheKey identifies one resolution result. The mtime component makes
// invalidation implicit: modifying (or touching) a file yields a new key,
// and the stale entry ages out through the LRU policy.
type cacheKey struct {
	path    string
	mtimeNS int64
}

// Cache memoizes Resolver results in a bounded LRU. It is safe for
// concurrent use; two goroutines racing on a missing key may both compute
// it, which is harmless because resolution is idempotent.
type Cache struct {
	resolver *Resolver
	entries  *lru.Cache[cacheKey, Record]
}

// NewCache creates a cache over resolver holding at most size entries.
// Non-positive sizes fall back to DefaultCacheSize.
func NewCache(resolver *Resolver, size int) (*Cache, error) {
	if size <= 0 {
		size = DefaultCacheSize
	}
	entries, err := lru.New[cacheKey, Record](size)
	if err != nil {
		return nil, err
	}
	return &Cache{resolver: resolver, entries: entries}, nil
}

// Get returns the record for (path, mtime), resolving and storing it on a
// miss. A hit performs no file I/O.
func (c *Cache) Get(path string, mtime time.Time) Record {
	key := cacheKey{path: path, mtimeNS: mtime.UnixNano()}

	if rec, ok := c.entries.Get(key); ok {
		metrics.MetadataCacheHits.Inc()
		return rec
	}

	metrics.MetadataCacheMisses.Inc()
	rec := c.resolver.Resolve(path, mtime)
	c.entries.Add(key, rec)
	return rec
}

// Len returns the number of cached records.
func (c *Cache) Len() int {
	return c.entries.Len()
}
