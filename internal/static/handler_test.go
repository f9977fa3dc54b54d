package static

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
)

func TestServe(t *testing.T) {
	dir := t.TempDir()
	files := map[string]string{
		"index.html":    "<canvas id=\"overlay\"></canvas>",
		"grayramp.wasm": "\x00asm",
		"wasm_exec.js":  "// loader",
	}
	for name, body := range files {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(body), 0o644); err != nil {
			t.Fatal(err)
		}
	}
	h := NewHandler(dir).Serve()

	tests := []struct {
		path        string
		status      int
		cache       string
		contentType string
	}{
		{"/", http.StatusOK, "no-cache", "text/html; charset=utf-8"},
		{"/grayramp.wasm", http.StatusOK, "no-cache", "application/wasm"},
		{"/wasm_exec.js", http.StatusOK, "public, max-age=3600", ""},
		{"/missing.png", http.StatusNotFound, "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, tt.path, nil))
			if rec.Code != tt.status {
				t.Fatalf("status = %d, want %d", rec.Code, tt.status)
			}
			if got := rec.Header().Get("Cache-Control"); tt.cache != "" && got != tt.cache {
				t.Errorf("Cache-Control = %q, want %q", got, tt.cache)
			}
			if tt.contentType != "" && rec.Header().Get("Content-Type") != tt.contentType {
				t.Errorf("Content-Type = %q, want %q", rec.Header().Get("Content-Type"), tt.contentType)
			}
		})
	}
}
