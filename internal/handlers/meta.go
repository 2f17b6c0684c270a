package handlers

import (
	"fmt"
	"net/http"
	"os"
	"path/filepath"

	"photoframe/internal/metadata"
)

// MetaResponse is the /meta/{index} payload. DateTaken is null when no
// date could be derived.
type MetaResponse struct {
	Index      int             `json:"index"`
	Filename   string          `json:"filename"`
	DateTaken  *string         `json:"date_taken"`
	DateSource metadata.Source `json:"date_source"`
}

// GetMeta returns the derived metadata for the file at the requested
// index. Resolution goes through the cache, so repeated requests for an
// unchanged file perform no decode I/O.
func (h *Handlers) GetMeta(w http.ResponseWriter, r *http.Request) {
	i, path, ok := h.indexedPath(w, r)
	if !ok {
		return
	}

	info, err := os.Stat(path)
	if err != nil {
		http.Error(w, fmt.Sprintf("file not found: %s", filepath.Base(path)), http.StatusNotFound)
		return
	}

	rec := h.cache.Get(path, info.ModTime())

	resp := MetaResponse{
		Index:      i,
		Filename:   rec.Filename,
		DateSource: rec.DateSource,
	}
	if rec.DateTaken != "" {
		resp.DateTaken = &rec.DateTaken
	}
	writeJSON(w, resp)
}
