package index

import "fmt"

// OutOfRangeError indicates a lookup outside [0, Len). It carries the
// offending index so request handlers can echo it back to the client.
type OutOfRangeError struct {
	Index int
	Count int
}

func (e *OutOfRangeError) Error() string {
	return fmt.Sprintf("index out of range: %d", e.Index)
}

// Index is the immutable ordered file list built once at startup.
// It is safe for concurrent readers; there are no writers after Build.
type Index struct {
	paths []string
}

// Build collects root and wraps the result in an Index.
func Build(root string, allFiles bool) (*Index, error) {
	paths, err := Collect(root, allFiles)
	if err != nil {
		return nil, err
	}
	return &Index{paths: paths}, nil
}

// FromPaths constructs an Index from an already-sorted path list.
// Intended for tests and cache warm-up tooling.
func FromPaths(paths []string) *Index {
	return &Index{paths: paths}
}

// Get returns the path at position i.
func (ix *Index) Get(i int) (string, error) {
	if i < 0 || i >= len(ix.paths) {
		return "", &OutOfRangeError{Index: i, Count: len(ix.paths)}
	}
	return ix.paths[i], nil
}

// Len returns the number of indexed files.
func (ix *Index) Len() int {
	return len(ix.paths)
}
