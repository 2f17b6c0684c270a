package handlers

import (
	"fmt"
	"net/http"
	"os"
	"path/filepath"

	"photoframe/internal/logging"
	"photoframe/internal/mediatypes"
)

// GetFile serves the raw bytes of the file at the requested index with a
// MIME type inferred from its extension. Responses carry a no-store cache
// policy so rotating slideshows always fetch fresh bytes. A file that
// vanished after indexing is a 404; its index is never reassigned.
func (h *Handlers) GetFile(w http.ResponseWriter, r *http.Request) {
	_, path, ok := h.indexedPath(w, r)
	if !ok {
		return
	}

	f, err := os.Open(path)
	if err != nil {
		logging.Warn("indexed file unavailable: %s: %v", path, err)
		http.Error(w, fmt.Sprintf("file not found: %s", filepath.Base(path)), http.StatusNotFound)
		return
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		http.Error(w, fmt.Sprintf("file not found: %s", filepath.Base(path)), http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", mediatypes.ContentType(path))
	w.Header().Set("Cache-Control", "no-store, max-age=0")
	http.ServeContent(w, r, filepath.Base(path), info.ModTime(), f)
}
