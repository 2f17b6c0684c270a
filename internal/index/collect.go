package index

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"

	"photoframe/internal/logging"
	"photoframe/internal/mediatypes"
)

// InvalidRootError indicates the media root does not exist or is not a
// directory. It is fatal at startup: serving an empty or wrong index is
// worse than refusing to start.
type InvalidRootError struct {
	Root string
	Err  error
}

func (e *InvalidRootError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("not a directory: %s: %v", e.Root, e.Err)
	}
	return fmt.Sprintf("not a directory: %s", e.Root)
}

func (e *InvalidRootError) Unwrap() error { return e.Err }

// Collect walks root recursively and returns the canonical absolute paths of
// every regular file, sorted lexicographically. Unless allFiles is set, only
// files with a supported image extension are included.
//
// Paths are canonicalized (absolute, symlinks resolved) before sorting so
// the ordering is deterministic across runs on an unchanged filesystem.
func Collect(root string, allFiles bool) ([]string, error) {
	info, err := os.Stat(root)
	if err != nil {
		return nil, &InvalidRootError{Root: root, Err: err}
	}
	if !info.IsDir() {
		return nil, &InvalidRootError{Root: root}
	}

	var collected []string
	err = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			// Unreadable subtree: skip it rather than abort the index.
			logging.Warn("skipping %s: %v", path, err)
			if d != nil && d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		if !d.Type().IsRegular() {
			return nil
		}
		if !allFiles && !mediatypes.IsImage(path) {
			return nil
		}
		canonical, err := canonicalize(path)
		if err != nil {
			logging.Warn("skipping %s: %v", path, err)
			return nil
		}
		collected = append(collected, canonical)
		return nil
	})
	if err != nil {
		return nil, &InvalidRootError{Root: root, Err: err}
	}

	sort.Strings(collected)
	return collected, nil
}

// canonicalize resolves symlinks and returns the absolute form of path.
func canonicalize(path string) (string, error) {
	resolved, err := filepath.EvalSymlinks(path)
	if err != nil {
		return "", err
	}
	return filepath.Abs(resolved)
}
