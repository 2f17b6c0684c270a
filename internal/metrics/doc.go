// Package metrics defines the Prometheus metrics exported by the
// photoframe server.
package metrics
