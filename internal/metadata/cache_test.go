package metadata

import (
	"fmt"
	"sync"
	"sync/atomic"
	"testing"
	"time"
)

// countingResolver returns a resolver whose extraction is counted, so
// tests can prove a cache hit performed no decode work.
func countingResolver(calls *atomic.Int64) *Resolver {
	return NewResolver("").WithExtract(func(string) (time.Time, bool) {
		calls.Add(1)
		return time.Date(2020, 1, 2, 3, 4, 5, 0, time.UTC), true
	})
}

func TestCacheHitSkipsResolution(t *testing.T) {
	t.Parallel()

	var calls atomic.Int64
	cache, err := NewCache(countingResolver(&calls), 10)
	if err != nil {
		t.Fatalf("NewCache: %v", err)
	}

	mtime := time.Unix(1700000000, 0)
	first := cache.Get("/media/photo.jpg", mtime)
	second := cache.Get("/media/photo.jpg", mtime)

	if calls.Load() != 1 {
		t.Fatalf("expected 1 extraction for two lookups, got %d", calls.Load())
	}
	if first != second {
		t.Errorf("records differ between lookups: %+v vs %+v", first, second)
	}
	if cache.Len() != 1 {
		t.Errorf("expected 1 cached entry, got %d", cache.Len())
	}
}

func TestCacheMtimeChangeInvalidates(t *testing.T) {
	t.Parallel()

	var calls atomic.Int64
	cache, err := NewCache(countingResolver(&calls), 10)
	if err != nil {
		t.Fatalf("NewCache: %v", err)
	}

	cache.Get("/media/photo.jpg", time.Unix(1700000000, 0))
	cache.Get("/media/photo.jpg", time.Unix(1700000001, 0))

	if calls.Load() != 2 {
		t.Fatalf("expected a fresh resolution after mtime change, got %d calls", calls.Load())
	}
	// The stale entry stays until evicted; it is simply never consulted
	// for the new mtime.
	if cache.Len() != 2 {
		t.Errorf("expected 2 entries (old plus new), got %d", cache.Len())
	}
}

func TestCacheBoundedLRU(t *testing.T) {
	t.Parallel()

	var calls atomic.Int64
	cache, err := NewCache(countingResolver(&calls), 3)
	if err != nil {
		t.Fatalf("NewCache: %v", err)
	}

	mtime := time.Unix(1700000000, 0)
	for i := 0; i < 5; i++ {
		cache.Get(fmt.Sprintf("/media/photo-%d.jpg", i), mtime)
	}

	if cache.Len() != 3 {
		t.Fatalf("expected cache bounded at 3 entries, got %d", cache.Len())
	}

	// The oldest entries were evicted, so looking them up resolves again.
	before := calls.Load()
	cache.Get("/media/photo-0.jpg", mtime)
	if calls.Load() != before+1 {
		t.Error("expected evicted entry to be recomputed")
	}

	// The most recent entry is still cached.
	before = calls.Load()
	cache.Get("/media/photo-4.jpg", mtime)
	if calls.Load() != before {
		t.Error("expected recent entry to remain cached")
	}
}

func TestCacheDefaultSize(t *testing.T) {
	t.Parallel()

	var calls atomic.Int64
	cache, err := NewCache(countingResolver(&calls), 0)
	if err != nil {
		t.Fatalf("NewCache: %v", err)
	}
	if cache.Len() != 0 {
		t.Fatalf("expected empty cache, got %d", cache.Len())
	}
}

func TestCacheConcurrentLookups(t *testing.T) {
	t.Parallel()

	var calls atomic.Int64
	cache, err := NewCache(countingResolver(&calls), 100)
	if err != nil {
		t.Fatalf("NewCache: %v", err)
	}

	mtime := time.Unix(1700000000, 0)
	var wg sync.WaitGroup
	for g := 0; g < 8; g++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < 50; i++ {
				rec := cache.Get(fmt.Sprintf("/media/photo-%d.jpg", i%10), mtime)
				if rec.DateSource != SourceEXIF {
					t.Errorf("unexpected source %s", rec.DateSource)
				}
			}
		}()
	}
	wg.Wait()

	if cache.Len() != 10 {
		t.Errorf("expected 10 distinct entries, got %d", cache.Len())
	}
}
