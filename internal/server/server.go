// Package server implements the chainscope HTTP graph service.
//
// The service exposes rendered transaction graphs over HTTP so dashboards
// and compliance tools can embed them directly:
//
//	GET /healthz
//	GET /v1/trace/{chain}/{address}/graph.png
//	GET /v1/trace/{chain}/{address}/graph.svg
//	GET /v1/trace/{chain}/{address}/graph.json
//	GET /v1/trace/{chain}/{address}/graph.dot
//	GET /v1/trace/{chain}/{address}/graph.dot.svg
//	GET /v1/trace/{chain}/{address}/risk
//
// Rendering parameters (width, height, scale, refresh) are passed as query
// parameters.
package server

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/chainscope/chainscope/pkg/buildinfo"
	"github.com/chainscope/chainscope/pkg/pipeline"
)

// Config holds server configuration.
type Config struct {
	Port   int
	Logger *log.Logger
	Runner *pipeline.Runner
}

// Server wraps the chi router and the underlying http.Server.
type Server struct {
	router *chi.Mux
	server *http.Server
	logger *log.Logger
	runner *pipeline.Runner
}

// New creates a new HTTP server.
func New(cfg Config) *Server {
	logger := cfg.Logger
	if logger == nil {
		logger = log.Default()
	}

	s := &Server{
		router: chi.NewRouter(),
		logger: logger,
		runner: cfg.Runner,
	}

	s.setupMiddleware()
	s.setupRoutes()

	s.server = &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      s.router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	return s
}

// Handler returns the router for testing.
func (s *Server) Handler() http.Handler {
	return s.router
}

func (s *Server) setupMiddleware() {
	s.router.Use(middleware.Recoverer)
	s.router.Use(middleware.RequestID)
	s.router.Use(middleware.RealIP)
	s.router.Use(s.loggingMiddleware)
	s.router.Use(middleware.Timeout(60 * time.Second))
}

func (s *Server) setupRoutes() {
	s.router.Get("/healthz", s.handleHealth)

	s.router.Route("/v1/trace/{chain}/{address}", func(r chi.Router) {
		r.Get("/graph.png", s.handleGraph(pipeline.FormatPNG, "image/png"))
		r.Get("/graph.svg", s.handleGraph(pipeline.FormatSVG, "image/svg+xml"))
		r.Get("/graph.json", s.handleGraph(pipeline.FormatJSON, "application/json"))
		r.Get("/graph.dot", s.handleGraph(pipeline.FormatDOT, "text/vnd.graphviz"))
		r.Get("/graph.dot.svg", s.handleGraph(pipeline.FormatDOTSVG, "image/svg+xml"))
		r.Get("/risk", s.handleRisk)
	})
}

// loggingMiddleware logs each request with method, path, status, and duration.
func (s *Server) loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

		next.ServeHTTP(ww, r)

		s.logger.Info("request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.Status(),
			"bytes", ww.BytesWritten(),
			"duration", time.Since(start).Round(time.Millisecond))
	})
}

// Start begins listening. It blocks until the server stops.
func (s *Server) Start() error {
	s.logger.Info("server listening", "addr", s.server.Addr, "version", buildinfo.Version, "commit", buildinfo.Commit)
	if err := s.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// Shutdown gracefully stops the server.
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("server shutting down")
	return s.server.Shutdown(ctx)
}
