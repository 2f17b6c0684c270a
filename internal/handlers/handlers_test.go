package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"photoframe/internal/index"
	"photoframe/internal/metadata"
	"photoframe/internal/screen"

	"github.com/gorilla/mux"
)

// newTestRouter wires the handler set the same way main does.
func newTestRouter(h *Handlers) *mux.Router {
	r := mux.NewRouter()
	r.HandleFunc("/healthz", h.HealthCheck).Methods("GET")
	r.HandleFunc("/count", h.GetCount).Methods("GET")
	r.HandleFunc("/file/{index}", h.GetFile).Methods("GET")
	r.HandleFunc("/meta/{index}", h.GetMeta).Methods("GET")
	r.HandleFunc("/should_load_next", h.ShouldLoadNext).Methods("GET")
	r.HandleFunc("/", h.IndexPage).Methods("GET")
	return r
}

// scenario is the standard three-file fixture: one file under the
// override marker, one with embedded capture time, one with neither.
type scenario struct {
	router    *mux.Router
	state     *screen.StateFile
	exifPath  string
	plainPath string
}

func newScenario(t *testing.T) *scenario {
	t.Helper()

	dir := t.TempDir()
	mtime := time.Unix(1700000000, 0)

	mustWrite := func(name string) string {
		path := filepath.Join(dir, name)
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			t.Fatalf("mkdir: %v", err)
		}
		if err := os.WriteFile(path, []byte("image-bytes-"+name), 0o644); err != nil {
			t.Fatalf("write: %v", err)
		}
		if err := os.Chtimes(path, mtime, mtime); err != nil {
			t.Fatalf("chtimes: %v", err)
		}
		return path
	}

	// The index stores canonical paths; resolve the fixtures the same way
	// so the extractor stub can match on equality.
	canon := func(path string) string {
		resolved, err := filepath.EvalSymlinks(path)
		if err != nil {
			t.Fatalf("eval symlinks: %v", err)
		}
		return resolved
	}

	override := canon(mustWrite("batch-scan/scan-001.jpg"))
	exifed := canon(mustWrite("camera/holiday.jpg"))
	plain := canon(mustWrite("camera/plain.jpg"))

	ix, err := index.Build(dir, false)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if ix.Len() != 3 {
		t.Fatalf("expected 3 indexed files, got %d", ix.Len())
	}

	// Embedded capture time exists only for the holiday shot. The
	// override file also claims one to prove the marker wins.
	resolver := metadata.NewResolver("batch-scan").WithExtract(func(path string) (time.Time, bool) {
		if path == exifed || path == override {
			return time.Date(2020, 1, 2, 3, 4, 5, 0, time.UTC), true
		}
		return time.Time{}, false
	})
	cache, err := metadata.NewCache(resolver, 100)
	if err != nil {
		t.Fatalf("NewCache: %v", err)
	}

	state := screen.NewStateFile(filepath.Join(t.TempDir(), "screen-state"))
	h := New(ix, cache, state, 3000)

	return &scenario{
		router:    newTestRouter(h),
		state:     state,
		exifPath:  exifed,
		plainPath: plain,
	}
}

func (s *scenario) get(t *testing.T, path string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest("GET", path, nil)
	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)
	return rec
}

func decodeJSON(t *testing.T, rec *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	if ct := rec.Header().Get("Content-Type"); !strings.HasPrefix(ct, "application/json") {
		t.Fatalf("expected JSON content type, got %q", ct)
	}
	if err := json.Unmarshal(rec.Body.Bytes(), v); err != nil {
		t.Fatalf("decode body %q: %v", rec.Body.String(), err)
	}
}

func TestHealthz(t *testing.T) {
	t.Parallel()

	s := newScenario(t)
	rec := s.get(t, "/healthz")

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var body struct {
		OK    bool `json:"ok"`
		Count int  `json:"count"`
	}
	decodeJSON(t, rec, &body)
	if !body.OK || body.Count != 3 {
		t.Errorf("unexpected payload: %+v", body)
	}
}

func TestCount(t *testing.T) {
	t.Parallel()

	s := newScenario(t)
	rec := s.get(t, "/count")

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var body struct {
		Count int `json:"count"`
	}
	decodeJSON(t, rec, &body)
	if body.Count != 3 {
		t.Errorf("expected count 3, got %d", body.Count)
	}
}

func TestGetFile(t *testing.T) {
	t.Parallel()

	s := newScenario(t)
	rec := s.get(t, "/file/0")

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if got := rec.Header().Get("Cache-Control"); got != "no-store, max-age=0" {
		t.Errorf("Cache-Control = %q", got)
	}
	if got := rec.Header().Get("Content-Type"); got != "image/jpeg" {
		t.Errorf("Content-Type = %q", got)
	}
	if !strings.HasPrefix(rec.Body.String(), "image-bytes-") {
		t.Errorf("unexpected body: %q", rec.Body.String())
	}
}

func TestGetFileNotFound(t *testing.T) {
	t.Parallel()

	s := newScenario(t)

	tests := []struct {
		name string
		path string
		want string
	}{
		{"index beyond count", "/file/3", "index out of range: 3"},
		{"large index", "/file/999", "index out of range: 999"},
		{"negative index", "/file/-1", "index out of range: -1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := s.get(t, tt.path)
			if rec.Code != http.StatusNotFound {
				t.Fatalf("expected 404, got %d", rec.Code)
			}
			if !strings.Contains(rec.Body.String(), tt.want) {
				t.Errorf("body %q does not mention %q", rec.Body.String(), tt.want)
			}
		})
	}
}

func TestGetFileVanished(t *testing.T) {
	t.Parallel()

	s := newScenario(t)

	// Delete an indexed file; its index must 404 without renumbering the
	// rest.
	if err := os.Remove(s.plainPath); err != nil {
		t.Fatalf("remove: %v", err)
	}

	rec := s.get(t, "/file/2")
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404 for vanished file, got %d", rec.Code)
	}

	// Other indices are unaffected.
	if rec := s.get(t, "/file/0"); rec.Code != http.StatusOK {
		t.Errorf("expected 200 for surviving index, got %d", rec.Code)
	}
	if rec := s.get(t, "/count"); !strings.Contains(rec.Body.String(), "3") {
		t.Errorf("count must not shrink: %s", rec.Body.String())
	}
}

type metaBody struct {
	Index      int     `json:"index"`
	Filename   string  `json:"filename"`
	DateTaken  *string `json:"date_taken"`
	DateSource string  `json:"date_source"`
}

func TestGetMetaScenario(t *testing.T) {
	t.Parallel()

	s := newScenario(t)

	// Index order is lexicographic on the canonical paths:
	// 0 batch-scan/scan-001.jpg, 1 camera/holiday.jpg, 2 camera/plain.jpg.
	tests := []struct {
		name       string
		path       string
		wantIndex  int
		wantSource string
		wantDate   string
	}{
		{"override file", "/meta/0", 0, "override", "1970-01-01T00:00:00Z"},
		{"exif file", "/meta/1", 1, "exif", "2020-01-02T03:04:05Z"},
		{"mtime fallback", "/meta/2", 2, "file-mtime", "2023-11-14T22:13:20Z"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := s.get(t, tt.path)
			if rec.Code != http.StatusOK {
				t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
			}
			var body metaBody
			decodeJSON(t, rec, &body)
			if body.Index != tt.wantIndex {
				t.Errorf("index = %d, want %d", body.Index, tt.wantIndex)
			}
			if body.DateSource != tt.wantSource {
				t.Errorf("date_source = %q, want %q", body.DateSource, tt.wantSource)
			}
			if body.DateTaken == nil || *body.DateTaken != tt.wantDate {
				t.Errorf("date_taken = %v, want %q", body.DateTaken, tt.wantDate)
			}
			if body.Filename == "" {
				t.Error("filename missing")
			}
		})
	}
}

func TestGetMetaNotFound(t *testing.T) {
	t.Parallel()

	s := newScenario(t)

	rec := s.get(t, "/meta/42")
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "42") {
		t.Errorf("body %q does not carry the offending index", rec.Body.String())
	}
}

func TestGetMetaInvalidation(t *testing.T) {
	t.Parallel()

	s := newScenario(t)

	rec := s.get(t, "/meta/2")
	var before metaBody
	decodeJSON(t, rec, &before)

	// Rewrite the file with a newer mtime; the next lookup must reflect
	// the new mtime, not the cached record.
	newMtime := time.Unix(1700009999, 0)
	if err := os.WriteFile(s.plainPath, []byte("new content"), 0o644); err != nil {
		t.Fatalf("rewrite: %v", err)
	}
	if err := os.Chtimes(s.plainPath, newMtime, newMtime); err != nil {
		t.Fatalf("chtimes: %v", err)
	}

	rec = s.get(t, "/meta/2")
	var after metaBody
	decodeJSON(t, rec, &after)

	if after.DateTaken == nil || *after.DateTaken == *before.DateTaken {
		t.Errorf("metadata not refreshed after mtime change: %v", after.DateTaken)
	}
}

func TestShouldLoadNext(t *testing.T) {
	t.Parallel()

	s := newScenario(t)

	tests := []struct {
		name  string
		setup func(t *testing.T)
		want  bool
	}{
		{"no state file", func(*testing.T) {}, true},
		{"screen on", func(t *testing.T) {
			if err := s.state.Write(true); err != nil {
				t.Fatal(err)
			}
		}, true},
		{"screen off", func(t *testing.T) {
			if err := s.state.Write(false); err != nil {
				t.Fatal(err)
			}
		}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setup(t)
			rec := s.get(t, "/should_load_next")
			if rec.Code != http.StatusOK {
				t.Fatalf("expected 200, got %d", rec.Code)
			}
			var body struct {
				LoadNext bool `json:"load_next"`
			}
			decodeJSON(t, rec, &body)
			if body.LoadNext != tt.want {
				t.Errorf("load_next = %v, want %v", body.LoadNext, tt.want)
			}
		})
	}
}

func TestIndexPage(t *testing.T) {
	t.Parallel()

	s := newScenario(t)
	rec := s.get(t, "/")

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); !strings.HasPrefix(ct, "text/html") {
		t.Fatalf("Content-Type = %q", ct)
	}
	body := rec.Body.String()
	if !strings.Contains(body, "/file/0") {
		t.Error("page does not reference the first image")
	}
	if !strings.Contains(body, "3000") {
		t.Error("page does not carry the refresh interval")
	}
}

func TestMetaCacheHitServesSameRecord(t *testing.T) {
	t.Parallel()

	s := newScenario(t)

	first := s.get(t, "/meta/1")
	second := s.get(t, "/meta/1")

	if first.Body.String() != second.Body.String() {
		t.Errorf("repeated metadata lookups differ:\n%s\n%s",
			first.Body.String(), second.Body.String())
	}
}
