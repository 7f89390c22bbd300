// Package main starts an HTTP server that serves a sample netlist as JSON,
// graph and hierarchy views of it, and the prebuilt frontend with
// single-page-app fallback.
package main

import (
	"log"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/netviz/core/cmd/api/middleware"
	"github.com/netviz/core/internal/config"
	"github.com/netviz/core/internal/handlers"
	"github.com/netviz/core/internal/static"
)

func newRouter(cfg *config.Config) http.Handler {
	files := static.NewResponder(cfg.StaticDir, cfg.IndexFile)

	mux := http.NewServeMux()
	mux.Handle("/health", &handlers.Health{IndexPath: filepath.Join(cfg.StaticDir, cfg.IndexFile)})
	mux.HandleFunc("/api/netlist", handlers.NetlistHandler)
	mux.HandleFunc("/api/netlist/graph", handlers.GraphHandler)
	mux.HandleFunc("/api/netlist/hierarchy", handlers.HierarchyHandler)
	mux.HandleFunc("/api/graph", handlers.ConvertHandler)
	mux.HandleFunc("/{$}", files.ServeRoot)
	mux.HandleFunc("/", files.ServeFile)

	return middleware.Chain(mux,
		middleware.RequestID,
		middleware.Logger,
		middleware.Cors(cfg.AllowedOrigin),
	)
}

func main() {
	log.SetOutput(os.Stdout)

	cfg := config.Load()

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           newRouter(cfg),
		ReadHeaderTimeout: 10 * time.Second,
	}

	log.Printf("Starting server on http://localhost:%s", cfg.Port)
	log.Printf("API available at http://localhost:%s/api/netlist", cfg.Port)
	log.Printf("Frontend served from %s", cfg.StaticDir)
	log.Fatal(srv.ListenAndServe())
}
