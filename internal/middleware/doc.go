// Package middleware provides HTTP middleware for the photoframe server.
//
// It includes:
//   - Request logging with configurable health-check filtering
//   - Prometheus request metrics with path normalization
package middleware
