// Package api - Thin, deterministic API layer
// The API is only responsible for input ingestion, engine orchestration and
// output serialization. It never performs pricing logic.
package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"freelance-rate/core/engine"
	"freelance-rate/core/share"
)

// Options configures the API server
type Options struct {
	// Version is reported by /version and in response metadata
	Version string

	// SharePhone receives the share link messages
	SharePhone string

	// ShareBaseURL is the click-to-chat endpoint
	ShareBaseURL string
}

// Server is the API server
type Server struct {
	engine *engine.Engine
	opts   Options
	logger *zap.Logger
	router *chi.Mux
}

// NewServer creates a new API server around eng
func NewServer(eng *engine.Engine, opts Options, logger *zap.Logger) *Server {
	if logger == nil {
		logger = zap.NewNop()
	}
	if opts.ShareBaseURL == "" {
		opts.ShareBaseURL = share.DefaultBaseURL
	}

	s := &Server{
		engine: eng,
		opts:   opts,
		logger: logger,
	}
	s.router = s.setupRouter()
	return s
}

// setupRouter registers all API routes and middleware
func (s *Server) setupRouter() *chi.Mux {
	r := chi.NewRouter()

	r.Use(RequestID)
	r.Use(Logger(s.logger))

	r.Route("/api", func(r chi.Router) {
		// Core endpoints
		r.Post("/quote", s.handleQuote)
		r.Get("/tiers", s.handleTiers)
		r.Get("/countries", s.handleCountries)

		// Supporting endpoints
		r.Get("/health", s.handleHealth)
		r.Get("/version", s.handleVersion)
	})

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		s.writeError(w, r, http.StatusNotFound, ErrorDetail{
			Code:    "ROUTE_NOT_FOUND",
			Message: http.StatusText(http.StatusNotFound),
		})
	})

	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		s.writeError(w, r, http.StatusMethodNotAllowed, ErrorDetail{
			Code:    "METHOD_NOT_ALLOWED",
			Message: http.StatusText(http.StatusMethodNotAllowed),
		})
	})

	return r
}

// ServeHTTP implements http.Handler
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}
