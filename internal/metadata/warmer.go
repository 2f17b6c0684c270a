package metadata

import (
	"context"
	"os"
	"sync"
	"time"

	"photoframe/internal/index"
	"photoframe/internal/logging"
	"photoframe/internal/workers"
)

// Warm pre-resolves metadata for every indexed file so the first viewer
// does not pay decode latency. It runs with an I/O-sized worker pool and
// stops early when ctx is cancelled. Files that vanished since indexing
// are skipped; they will 404 at request time anyway.
func Warm(ctx context.Context, ix *index.Index, cache *Cache) {
	start := time.Now()
	count := ix.Len()
	if count == 0 {
		return
	}

	jobs := make(chan string)
	var wg sync.WaitGroup

	poolSize := workers.ForIO(16)
	for i := 0; i < poolSize; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for path := range jobs {
				info, err := os.Stat(path)
				if err != nil {
					continue
				}
				cache.Get(path, info.ModTime())
			}
		}()
	}

	warmed := 0
	for i := 0; i < count; i++ {
		path, err := ix.Get(i)
		if err != nil {
			break
		}
		select {
		case <-ctx.Done():
			close(jobs)
			wg.Wait()
			logging.Info("metadata warm-up cancelled after %d/%d files", warmed, count)
			return
		case jobs <- path:
			warmed++
		}
	}
	close(jobs)
	wg.Wait()

	logging.Info("metadata warm-up complete: %d file(s) in %v", warmed, time.Since(start))
}
