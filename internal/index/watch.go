package index

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"

	"photoframe/internal/logging"
	"photoframe/internal/metrics"

	"github.com/fsnotify/fsnotify"
)

// Watcher observes the media tree for changes made after the index was
// built. The index itself never changes during a run, so all the watcher
// does is log the drift and count it, giving operators a signal that a
// restart would pick up new or removed files.
type Watcher struct {
	root    string
	watcher *fsnotify.Watcher
}

// NewWatcher creates a drift watcher over every directory under root.
func NewWatcher(root string) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	err = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return nil
		}
		if d.IsDir() {
			if err := fsw.Add(path); err != nil {
				logging.Debug("drift watcher: cannot watch %s: %v", path, err)
			}
		}
		return nil
	})
	if err != nil {
		fsw.Close()
		return nil, err
	}

	return &Watcher{root: root, watcher: fsw}, nil
}

// Run consumes events until ctx is cancelled.
func (dw *Watcher) Run(ctx context.Context) {
	defer dw.watcher.Close()

	for {
		select {
		case <-ctx.Done():
			return
		case event, ok := <-dw.watcher.Events:
			if !ok {
				return
			}
			dw.handle(event)
		case err, ok := <-dw.watcher.Errors:
			if !ok {
				return
			}
			logging.Warn("drift watcher error: %v", err)
		}
	}
}

func (dw *Watcher) handle(event fsnotify.Event) {
	if event.Op&(fsnotify.Create|fsnotify.Remove|fsnotify.Rename) == 0 {
		return
	}

	metrics.IndexDriftEvents.Inc()
	logging.Info("media tree changed after startup (%s %s); restart to reindex",
		event.Op, event.Name)

	// New subdirectories need their own watch to keep coverage.
	if event.Op&fsnotify.Create != 0 {
		if info, err := os.Stat(event.Name); err == nil && info.IsDir() {
			if err := dw.watcher.Add(event.Name); err != nil {
				logging.Debug("drift watcher: cannot watch %s: %v", event.Name, err)
			}
		}
	}
}
