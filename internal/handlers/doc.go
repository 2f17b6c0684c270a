// Package handlers translates HTTP requests into index, metadata cache and
// screen state lookups.
//
// All index-addressed routes share the startup-built index, so a given
// index refers to the same file for the life of the process. Out-of-range
// indices and files that vanished after indexing both surface as 404;
// metadata and screen-state resolution never produce a 5xx.
package handlers
