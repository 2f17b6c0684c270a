package handlers

import "net/http"

// HealthResponse is the /healthz payload.
type HealthResponse struct {
	OK    bool `json:"ok"`
	Count int  `json:"count"`
}

// CountResponse is the /count payload.
type CountResponse struct {
	Count int `json:"count"`
}

// HealthCheck reports liveness and the index size.
func (h *Handlers) HealthCheck(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, HealthResponse{OK: true, Count: h.index.Len()})
}

// GetCount returns the number of indexed files.
func (h *Handlers) GetCount(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, CountResponse{Count: h.index.Len()})
}
