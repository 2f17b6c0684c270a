package metadata

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"photoframe/internal/logging"
	"photoframe/internal/mediatypes"
	"photoframe/internal/metrics"

	"github.com/rwcarlsen/goexif/exif"
)

// Source identifies how a record's date was derived.
type Source string

const (
	// SourceEXIF means the date came from embedded capture-time metadata.
	SourceEXIF Source = "exif"
	// SourceFileMtime means the date is the file's modification time.
	SourceFileMtime Source = "file-mtime"
	// SourceOverride means the path matched the batch-scan marker and the
	// embedded metadata was deliberately not consulted.
	SourceOverride Source = "override"
	// SourceUnknown means no date could be derived at all.
	SourceUnknown Source = "unknown"
)

// exifTimeLayout is the textual pattern EXIF date fields use. Only the
// first 19 characters of a field are parsed; trailing subsecond or
// timezone data is ignored and the value is interpreted as UTC.
const exifTimeLayout = "2006:01:02 15:04:05"

// overrideSentinel is the fixed date reported for batch-scanned files,
// whose embedded dates reflect scan time rather than capture time.
var overrideSentinel = time.Unix(0, 0).UTC()

// Record is the derived metadata for one file. DateTaken is an RFC 3339
// UTC string, empty when no date could be derived.
type Record struct {
	Filename   string
	DateTaken  string
	DateSource Source
}

// ExtractFunc reads embedded capture-time metadata from the file at path.
// It reports ok=false for any absence, parse failure or I/O failure; those
// are soft failures that fall through to the mtime fallback.
type ExtractFunc func(path string) (time.Time, bool)

// Resolver derives metadata records. It is pure for a given (path, mtime)
// pair and never returns an error.
type Resolver struct {
	overrideMarker string
	extract        ExtractFunc
}

// NewResolver returns a resolver using EXIF extraction. overrideMarker is
// the path substring that forces the override classification; empty
// disables the rule.
func NewResolver(overrideMarker string) *Resolver {
	return &Resolver{
		overrideMarker: overrideMarker,
		extract:        ExtractEXIFDate,
	}
}

// WithExtract replaces the extraction function. Used by tests to count or
// stub out decode calls.
func (r *Resolver) WithExtract(fn ExtractFunc) *Resolver {
	r.extract = fn
	return r
}

// Resolve derives the metadata record for path with modification time
// mtime. The fallback chain is: override marker, embedded capture time,
// mtime, unknown.
func (r *Resolver) Resolve(path string, mtime time.Time) Record {
	rec := Record{Filename: filepath.Base(path)}

	if r.overrideMarker != "" && strings.Contains(path, r.overrideMarker) {
		rec.DateTaken = formatUTC(overrideSentinel)
		rec.DateSource = SourceOverride
		metrics.MetadataResolves.WithLabelValues(string(SourceOverride)).Inc()
		return rec
	}

	if mediatypes.IsImage(path) {
		if taken, ok := r.extract(path); ok {
			rec.DateTaken = formatUTC(taken)
			rec.DateSource = SourceEXIF
			metrics.MetadataResolves.WithLabelValues(string(SourceEXIF)).Inc()
			return rec
		}
	}

	if !mtime.IsZero() {
		rec.DateTaken = formatUTC(mtime)
		rec.DateSource = SourceFileMtime
		metrics.MetadataResolves.WithLabelValues(string(SourceFileMtime)).Inc()
		return rec
	}

	rec.DateSource = SourceUnknown
	metrics.MetadataResolves.WithLabelValues(string(SourceUnknown)).Inc()
	return rec
}

// ExtractEXIFDate opens path and searches the three EXIF date fields in
// priority order: DateTimeOriginal, DateTime, DateTimeDigitized. The first
// present, parseable value wins.
func ExtractEXIFDate(path string) (time.Time, bool) {
	f, err := os.Open(path)
	if err != nil {
		logging.Debug("exif: open %s: %v", path, err)
		return time.Time{}, false
	}
	defer f.Close()

	x, err := exif.Decode(f)
	if err != nil {
		logging.Debug("exif: decode %s: %v", path, err)
		return time.Time{}, false
	}

	for _, field := range []exif.FieldName{exif.DateTimeOriginal, exif.DateTime, exif.DateTimeDigitized} {
		tag, err := x.Get(field)
		if err != nil {
			continue
		}
		val, err := tag.StringVal()
		if err != nil || val == "" {
			continue
		}
		if taken, ok := ParseEXIFTime(val); ok {
			return taken, true
		}
	}
	return time.Time{}, false
}

// ParseEXIFTime parses an EXIF date string, truncated to its first 19
// characters, as a UTC timestamp.
func ParseEXIFTime(val string) (time.Time, bool) {
	if len(val) > len(exifTimeLayout) {
		val = val[:len(exifTimeLayout)]
	}
	t, err := time.ParseInLocation(exifTimeLayout, val, time.UTC)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// formatUTC renders t as RFC 3339 with an explicit zero-offset marker.
func formatUTC(t time.Time) string {
	return t.UTC().Format("2006-01-02T15:04:05Z")
}
