package handlers

import (
	"embed"
	"html/template"
	"net/http"

	"photoframe/internal/logging"
)

//go:embed templates/index.html
var templateFS embed.FS

var indexTemplate = template.Must(template.ParseFS(templateFS, "templates/index.html"))

type pageData struct {
	Count      int
	IntervalMS int
}

// IndexPage renders the slideshow page, parameterized by the index size
// and the client refresh interval.
func (h *Handlers) IndexPage(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	data := pageData{
		Count:      h.index.Len(),
		IntervalMS: h.intervalMS,
	}
	if err := indexTemplate.Execute(w, data); err != nil {
		logging.Error("failed to render index page: %v", err)
	}
}
