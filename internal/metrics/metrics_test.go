package metrics

import "testing"

func TestInitializeMetrics(t *testing.T) {
	// Pre-population must not panic and must cover every date source the
	// resolver can emit.
	InitializeMetrics()

	for _, source := range []string{"exif", "file-mtime", "override", "unknown"} {
		MetadataResolves.WithLabelValues(source).Add(0)
	}
	for _, state := range []string{"on", "off", "default"} {
		ScreenStateReads.WithLabelValues(state).Add(0)
	}
}
