package static

import (
	"log/slog"
	"net/http"
	"os"
	"path"
	"strings"
)

// Handler serves the browser build of the editor: the HTML shell, the Go
// wasm module and its JS loader.
type Handler struct {
	dir string // directory holding index.html and the wasm build
}

// NewHandler creates a handler serving files from dir.
func NewHandler(dir string) *Handler {
	if _, err := os.Stat(dir); err != nil {
		slog.Warn("web dir not readable", "error", err, "dir", dir)
	}
	return &Handler{dir: dir}
}

// Serve returns an http.Handler that serves the web directory with caching
// headers. The shell and the wasm module change on every build, so they are
// revalidated; everything else may be cached for an hour.
func (h *Handler) Serve() http.Handler {
	fs := http.FileServer(http.Dir(h.dir))
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		name := path.Clean(r.URL.Path)
		switch {
		case name == "/" || strings.HasSuffix(name, ".html"):
			w.Header().Set("Cache-Control", "no-cache")
		case strings.HasSuffix(name, ".wasm"):
			w.Header().Set("Content-Type", "application/wasm")
			w.Header().Set("Cache-Control", "no-cache")
		default:
			w.Header().Set("Cache-Control", "public, max-age=3600")
		}
		fs.ServeHTTP(w, r)
	})
}
