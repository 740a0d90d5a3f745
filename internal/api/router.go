// Package api provides the HTTP API layer for the Decision Critic server.
package api

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"decision-critic/internal/api/handlers"
	"decision-critic/internal/api/middleware"
	"decision-critic/internal/api/response"
	"decision-critic/internal/config"
	"decision-critic/internal/engine"
	"decision-critic/internal/logging"
)

const version = "1.0.0"

// Router represents the main API router.
type Router struct {
	cfg    *config.Config
	mux    *chi.Mux
	engine *engine.Engine
	logger logging.Logger
}

// NewRouter creates a new API router with middleware and routes.
func NewRouter(cfg *config.Config, eng *engine.Engine, logger logging.Logger) *Router {
	r := &Router{
		cfg:    cfg,
		mux:    chi.NewRouter(),
		engine: eng,
		logger: logger,
	}

	r.setupMiddleware()
	r.setupRoutes()

	return r
}

// Handler returns the HTTP handler.
func (r *Router) Handler() http.Handler {
	return r.mux
}

// setupMiddleware configures the middleware stack.
func (r *Router) setupMiddleware() {
	r.mux.Use(chimiddleware.Recoverer)
	r.mux.Use(chimiddleware.Timeout(time.Duration(r.cfg.Server.WriteTimeout) * time.Second))

	loggingMiddleware := middleware.NewLoggingMiddleware(r.logger)
	r.mux.Use(loggingMiddleware.Handler())
}

// setupRoutes configures all API routes.
func (r *Router) setupRoutes() {
	healthHandler := handlers.NewHealthHandler(version)
	analyzeHandler := handlers.NewAnalyzeHandler(r.cfg, r.engine, r.logger)

	r.mux.Get("/health", healthHandler.Health)

	r.mux.Route("/api/v1", func(api chi.Router) {
		api.Post("/analyze", analyzeHandler.Analyze)
		api.Get("/analyze/modes", analyzeHandler.Modes)
	})

	r.mux.NotFound(func(w http.ResponseWriter, req *http.Request) {
		response.WriteError(w, http.StatusNotFound, response.ErrorCodeNotFound,
			"endpoint not found", req.URL.Path)
	})
	r.mux.MethodNotAllowed(func(w http.ResponseWriter, req *http.Request) {
		response.WriteError(w, http.StatusMethodNotAllowed, response.ErrorCodeMethodNotAllowed,
			"method not allowed", req.Method)
	})
}
