// Package apiserver provides the JSON API HTTP server
package apiserver

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/vatika/v1/internal/infrastructure/ai"
	"github.com/vatika/v1/internal/infrastructure/config"
	"github.com/vatika/v1/internal/infrastructure/http/handlers"
	"github.com/vatika/v1/internal/infrastructure/http/middleware"
	"github.com/vatika/v1/internal/infrastructure/monitoring"
	"github.com/vatika/v1/internal/ports/inbound"
	appErrors "github.com/vatika/v1/pkg/errors"
)

// Server is the JSON API HTTP server for the plant catalog
type Server struct {
	config   *config.Config
	logger   *zap.Logger
	server   *http.Server
	router   *chi.Mux
	catalog  inbound.CatalogService
	recipes  inbound.RecipeService
	aiHealth *ai.HealthChecker
	metrics  *monitoring.Metrics
}

// NewServer creates a new API server instance
func NewServer(
	cfg *config.Config,
	log *zap.Logger,
	catalog inbound.CatalogService,
	recipes inbound.RecipeService,
	aiHealth *ai.HealthChecker,
	metrics *monitoring.Metrics,
) *Server {
	server := &Server{
		config:   cfg,
		logger:   log.Named("http"),
		catalog:  catalog,
		recipes:  recipes,
		aiHealth: aiHealth,
		metrics:  metrics,
	}

	server.router = server.setupRoutes()
	server.server = &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:      server.router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	return server
}

// setupRoutes configures the JSON API routes
func (s *Server) setupRoutes() *chi.Mux {
	r := chi.NewRouter()

	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.Logger(s.logger))
	r.Use(chimiddleware.Recoverer)
	r.Use(middleware.Security())
	if s.config.Server.EnableCORS {
		r.Use(middleware.CORS())
	}
	r.Use(chimiddleware.Timeout(30 * time.Second))
	r.Use(middleware.Metrics(s.metrics))
	r.Use(middleware.JSONOnly())

	r.Get("/health", s.handleHealthCheck)
	r.Get("/health/ai", s.handleAIHealthCheck)
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/api/v1", func(r chi.Router) {
		s.setupAPIV1Routes(r)
	})

	return r
}

// setupAPIV1Routes configures API v1 endpoints
func (s *Server) setupAPIV1Routes(r chi.Router) {
	plantH := handlers.NewPlantHandlers(s.catalog, s.metrics, s.logger)
	recipeH := handlers.NewRecipeHandlers(s.recipes, s.metrics, s.logger)

	r.Route("/plants", func(r chi.Router) {
		r.Get("/", plantH.ListPlants)
		r.Get("/search", plantH.SearchPlants)
		r.Get("/recommendations", plantH.Recommendations)
		r.Post("/reload", plantH.Reload)

		r.Route("/daily", func(r chi.Router) {
			r.Get("/", plantH.DailyPlant)
			r.Post("/rotate", plantH.RotateDaily)
		})

		r.Route("/facets", func(r chi.Router) {
			r.Get("/{type}", plantH.FacetValues)
			r.Get("/{type}/{value}", plantH.FilterByFacet)
		})

		r.Route("/bookmarks", func(r chi.Router) {
			r.Get("/", plantH.ListBookmarks)
			r.Post("/", plantH.AddBookmark)
			r.Delete("/{id}", plantH.RemoveBookmark)
		})

		r.Get("/{id}", plantH.GetPlant)
		r.Get("/{id}/insights", recipeH.PlantInsights)
	})

	r.Route("/recipes", func(r chi.Router) {
		r.Get("/", recipeH.ListRecipes)
		r.Post("/", recipeH.SaveRecipes)
		r.Patch("/", recipeH.SetBookmark)
		r.Post("/generate", recipeH.GenerateRecipes)
	})
}

// handleHealthCheck reports service and catalog readiness
func (s *Server) handleHealthCheck(w http.ResponseWriter, r *http.Request) {
	status := "healthy"
	catalogReady := true
	httpStatus := http.StatusOK

	if _, err := s.catalog.ListPlants(r.Context()); err != nil {
		if appErrors.Is(err, appErrors.CodeCatalogNotReady) {
			status = "starting"
			catalogReady = false
			httpStatus = http.StatusServiceUnavailable
		} else {
			status = "degraded"
			catalogReady = false
		}
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(httpStatus)
	fmt.Fprintf(w,
		`{"status":%q,"catalog_ready":%t,"version":%q,"timestamp":%d}`,
		status, catalogReady, s.config.App.Version, time.Now().Unix(),
	)
}

// handleAIHealthCheck probes the generation providers
func (s *Server) handleAIHealthCheck(w http.ResponseWriter, r *http.Request) {
	status := s.aiHealth.CheckHealth(r.Context())

	httpStatus := http.StatusOK
	if status.Overall == "critical" {
		httpStatus = http.StatusServiceUnavailable
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(httpStatus)
	if err := json.NewEncoder(w).Encode(status); err != nil {
		s.logger.Error("Failed to encode health status", zap.Error(err))
	}
}

// Start begins listening for HTTP requests
func (s *Server) Start() error {
	s.logger.Info("Starting API server", zap.String("addr", s.server.Addr))
	if err := s.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("server failed: %w", err)
	}
	return nil
}

// Shutdown gracefully stops the server
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("Shutting down API server")
	return s.server.Shutdown(ctx)
}

// Router exposes the configured router, mainly for tests
func (s *Server) Router() http.Handler {
	return s.router
}
