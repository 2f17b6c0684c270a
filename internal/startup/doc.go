// Package startup loads and validates configuration for the photoframe
// server and the motion daemon.
//
// Values come from environment variables (via cleanenv) and may be
// overridden by CLI flags before Finalize is called.
package startup
