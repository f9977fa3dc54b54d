package main

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/grayramp/grayramp/internal/config"
)

func TestRouter(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "index.html"), []byte("<canvas></canvas>"), 0o644); err != nil {
		t.Fatal(err)
	}
	r := newRouter(&config.Config{
		WebDir:         dir,
		AllowedOrigins: []string{"http://localhost:3000"},
	})

	tests := []struct {
		name       string
		method     string
		path       string
		origin     string
		wantStatus int
		wantAllow  string
	}{
		{"health", http.MethodGet, "/health", "", http.StatusOK, ""},
		{"health preflight", http.MethodOptions, "/health", "http://localhost:3000", http.StatusNoContent, "http://localhost:3000"},
		{"static preflight", http.MethodOptions, "/grayramp.wasm", "http://localhost:3000", http.StatusNoContent, "http://localhost:3000"},
		{"preflight from other origin", http.MethodOptions, "/health", "http://evil.example", http.StatusNoContent, ""},
		{"index", http.MethodGet, "/", "http://localhost:3000", http.StatusOK, "http://localhost:3000"},
		{"health rejects post", http.MethodPost, "/health", "", http.StatusMethodNotAllowed, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.path, nil)
			if tt.origin != "" {
				req.Header.Set("Origin", tt.origin)
			}
			rec := httptest.NewRecorder()
			r.ServeHTTP(rec, req)
			if rec.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d", rec.Code, tt.wantStatus)
			}
			if got := rec.Header().Get("Access-Control-Allow-Origin"); got != tt.wantAllow {
				t.Errorf("allow origin = %q, want %q", got, tt.wantAllow)
			}
		})
	}
}
