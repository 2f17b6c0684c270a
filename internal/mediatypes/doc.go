// Package mediatypes defines the supported image extensions and their MIME
// types for the slideshow index.
package mediatypes
