package handlers

import "net/http"

// LoadNextResponse is the /should_load_next payload.
type LoadNextResponse struct {
	LoadNext bool `json:"load_next"`
}

// ShouldLoadNext reports whether the slideshow should keep advancing,
// sourced from the screen state file the motion daemon maintains.
func (h *Handlers) ShouldLoadNext(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, LoadNextResponse{LoadNext: h.state.Read()})
}
