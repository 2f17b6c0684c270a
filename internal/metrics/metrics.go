package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// HTTP metrics
var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "photoframe_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "photoframe_http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)

	HTTPRequestsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "photoframe_http_requests_in_flight",
			Help: "Number of HTTP requests currently being processed",
		},
	)
)

// Index metrics
var (
	IndexSize = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "photoframe_index_size",
			Help: "Number of files in the startup index",
		},
	)

	IndexDriftEvents = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "photoframe_index_drift_events_total",
			Help: "Filesystem changes observed in the media tree after the index was built",
		},
	)
)

// Metadata metrics
var (
	MetadataCacheHits = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "photoframe_metadata_cache_hits_total",
			Help: "Metadata lookups served from the cache",
		},
	)

	MetadataCacheMisses = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "photoframe_metadata_cache_misses_total",
			Help: "Metadata lookups that required resolution",
		},
	)

	MetadataResolves = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "photoframe_metadata_resolves_total",
			Help: "Metadata resolutions by date source",
		},
		[]string{"source"},
	)
)

// Screen state metrics
var (
	ScreenStateReads = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "photoframe_screen_state_reads_total",
			Help: "Screen state file reads by observed state",
		},
		[]string{"state"},
	)
)

// InitializeMetrics pre-populates expected label combinations so every
// metric is exported from the first Prometheus scrape.
// Call this once at startup.
func InitializeMetrics() {
	for _, source := range []string{"exif", "file-mtime", "override", "unknown"} {
		MetadataResolves.WithLabelValues(source)
	}
	for _, state := range []string{"on", "off", "default"} {
		ScreenStateReads.WithLabelValues(state)
	}
}
