package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"photoframe/internal/index"
	"photoframe/internal/logging"

	"github.com/gorilla/mux"
)

// writeJSON encodes v as JSON and writes it to the response writer.
// Encoding errors are logged; there is nothing else to do for them in a
// handler context.
func writeJSON(w http.ResponseWriter, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logging.Error("failed to encode JSON response: %v", err)
	}
}

// indexedPath parses the index route variable and resolves it through the
// file index. On failure it writes a 404 carrying the offending index and
// returns ok=false.
func (h *Handlers) indexedPath(w http.ResponseWriter, r *http.Request) (int, string, bool) {
	raw := mux.Vars(r)["index"]
	i, err := strconv.Atoi(raw)
	if err != nil {
		http.Error(w, fmt.Sprintf("index out of range: %s", raw), http.StatusNotFound)
		return 0, "", false
	}

	path, err := h.index.Get(i)
	if err != nil {
		var oor *index.OutOfRangeError
		if errors.As(err, &oor) {
			http.Error(w, oor.Error(), http.StatusNotFound)
		} else {
			http.Error(w, "not found", http.StatusNotFound)
		}
		return 0, "", false
	}
	return i, path, true
}
