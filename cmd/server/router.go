package main

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/grayramp/grayramp/internal/config"
	mw "github.com/grayramp/grayramp/internal/middleware"
	"github.com/grayramp/grayramp/internal/static"
)

// newRouter wires the middleware and routes. Every route accepts OPTIONS so
// preflight requests reach the CORS middleware.
func newRouter(cfg *config.Config) *mux.Router {
	r := mux.NewRouter()

	// Global middleware
	r.Use(mw.Recovery)
	r.Use(mw.Logger)
	r.Use(mw.CORS(cfg.AllowedOrigins))

	// Health check
	r.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	}).Methods("GET", "OPTIONS")

	// Browser build: index.html, wasm_exec.js, grayramp.wasm
	r.PathPrefix("/").Handler(static.NewHandler(cfg.WebDir).Serve()).Methods("GET", "HEAD", "OPTIONS")

	return r
}
