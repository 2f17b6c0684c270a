// Package metadata derives a "date taken" for indexed files and memoizes
// the result.
//
// Resolution runs a fixed fallback chain: the batch-scan override marker
// wins outright, then embedded EXIF capture time, then the file's
// modification time. The resolver never fails; the worst case is a record
// with an unknown source and no date. Records are cached in a bounded LRU
// keyed by (path, mtime), so touching or rewriting a file invalidates its
// entry implicitly.
package metadata
