// Package workers sizes worker pools for background tasks such as the
// metadata cache warm-up.
package workers
