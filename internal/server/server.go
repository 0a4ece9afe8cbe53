// Package server exposes the gateway routes as a plain HTTP service for
// local development and container deploys.
package server

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/connectingthedots/contact-api/internal/gateway"
	"github.com/connectingthedots/contact-api/pkg/logging"
)

// Config holds server dependencies.
type Config struct {
	Logger  *logging.Logger
	Gateway *gateway.Handler

	// Metrics, when set, is mounted at /metrics.
	Metrics http.Handler
}

// New creates the HTTP handler: middleware, /metrics, and the gateway
// adapter for everything else.
func New(cfg Config) http.Handler {
	r := chi.NewRouter()

	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Recoverer)
	if cfg.Logger != nil {
		r.Use(RequestLogger(cfg.Logger))
	}

	if cfg.Metrics != nil {
		r.Handle("/metrics", cfg.Metrics)
	}
	r.Handle("/*", NewAdapter(cfg.Gateway))

	return r
}
