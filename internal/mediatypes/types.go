package mediatypes

import (
	"mime"
	"path/filepath"
	"strings"
)

// ImageExtensions maps lowercase file extensions to whether they are
// supported image formats. Only files with these extensions are indexed
// unless all-files mode is enabled.
var ImageExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".gif":  true,
	".webp": true,
	".bmp":  true,
	".tiff": true,
	".svg":  true,
}

// MimeTypes maps file extensions to their MIME types for the extensions the
// platform mime database may not know about.
var MimeTypes = map[string]string{
	".jpg":  "image/jpeg",
	".jpeg": "image/jpeg",
	".png":  "image/png",
	".gif":  "image/gif",
	".webp": "image/webp",
	".bmp":  "image/bmp",
	".tiff": "image/tiff",
	".svg":  "image/svg+xml",
}

// IsImage reports whether path has a supported image extension.
// The check is case-insensitive.
func IsImage(path string) bool {
	return ImageExtensions[strings.ToLower(filepath.Ext(path))]
}

// ContentType returns the MIME type inferred from the extension of path,
// falling back to application/octet-stream when nothing matches.
func ContentType(path string) string {
	ext := strings.ToLower(filepath.Ext(path))
	if mt, ok := MimeTypes[ext]; ok {
		return mt
	}
	if mt := mime.TypeByExtension(ext); mt != "" {
		return mt
	}
	return "application/octet-stream"
}
