package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/vatika/v1/internal/domain/plant"
	"github.com/vatika/v1/internal/infrastructure/monitoring"
	"github.com/vatika/v1/internal/ports/inbound"
	appErrors "github.com/vatika/v1/pkg/errors"
)

// PlantHandlers handles catalog REST API requests
type PlantHandlers struct {
	catalog inbound.CatalogService
	metrics *monitoring.Metrics
	logger  *zap.Logger
}

// NewPlantHandlers creates a new plant handlers instance
func NewPlantHandlers(
	catalog inbound.CatalogService,
	metrics *monitoring.Metrics,
	logger *zap.Logger,
) *PlantHandlers {
	return &PlantHandlers{
		catalog: catalog,
		metrics: metrics,
		logger:  logger,
	}
}

// ListPlants handles GET /api/v1/plants
func (h *PlantHandlers) ListPlants(w http.ResponseWriter, r *http.Request) {
	plants, err := h.catalog.ListPlants(r.Context())
	if err != nil {
		writeError(w, h.logger, err)
		return
	}

	writeJSON(w, h.logger, http.StatusOK, APIResponse{
		Success: true,
		Data:    plants,
	})
}

// GetPlant handles GET /api/v1/plants/{id}
func (h *PlantHandlers) GetPlant(w http.ResponseWriter, r *http.Request) {
	plantID := chi.URLParam(r, "id")

	dto, err := h.catalog.GetPlant(r.Context(), plantID)
	if err != nil {
		writeError(w, h.logger, err)
		return
	}

	writeJSON(w, h.logger, http.StatusOK, APIResponse{
		Success: true,
		Data:    dto,
	})
}

// SearchPlants handles GET /api/v1/plants/search?q=
func (h *PlantHandlers) SearchPlants(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("q")

	plants, err := h.catalog.SearchPlants(r.Context(), query)
	if err != nil {
		writeError(w, h.logger, err)
		return
	}

	h.metrics.RecordSearch("text", len(plants))

	writeJSON(w, h.logger, http.StatusOK, APIResponse{
		Success: true,
		Data:    plants,
	})
}

// FacetValues handles GET /api/v1/plants/facets/{type}
func (h *PlantHandlers) FacetValues(w http.ResponseWriter, r *http.Request) {
	facet, err := plant.ParseFacetType(chi.URLParam(r, "type"))
	if err != nil {
		writeError(w, h.logger, appErrors.NewBadRequestError("unknown facet type"))
		return
	}

	values, err := h.catalog.FacetValues(r.Context(), facet)
	if err != nil {
		writeError(w, h.logger, err)
		return
	}

	writeJSON(w, h.logger, http.StatusOK, APIResponse{
		Success: true,
		Data:    values,
	})
}

// FilterByFacet handles GET /api/v1/plants/facets/{type}/{value}
func (h *PlantHandlers) FilterByFacet(w http.ResponseWriter, r *http.Request) {
	facet, err := plant.ParseFacetType(chi.URLParam(r, "type"))
	if err != nil {
		writeError(w, h.logger, appErrors.NewBadRequestError("unknown facet type"))
		return
	}
	value := chi.URLParam(r, "value")

	plants, err := h.catalog.FilterByFacet(r.Context(), facet, value)
	if err != nil {
		writeError(w, h.logger, err)
		return
	}

	h.metrics.RecordSearch("facet", len(plants))

	writeJSON(w, h.logger, http.StatusOK, APIResponse{
		Success: true,
		Data:    plants,
	})
}

// Recommendations handles GET /api/v1/plants/recommendations?condition=
func (h *PlantHandlers) Recommendations(w http.ResponseWriter, r *http.Request) {
	condition := r.URL.Query().Get("condition")
	if condition == "" {
		writeError(w, h.logger, appErrors.NewBadRequestError("condition query parameter is required"))
		return
	}

	recs, err := h.catalog.RecommendForCondition(r.Context(), condition)
	if err != nil {
		writeError(w, h.logger, err)
		return
	}

	h.metrics.RecordRecommendation("condition")

	writeJSON(w, h.logger, http.StatusOK, APIResponse{
		Success: true,
		Data:    recs,
	})
}

// DailyPlant handles GET /api/v1/plants/daily
func (h *PlantHandlers) DailyPlant(w http.ResponseWriter, r *http.Request) {
	dto, err := h.catalog.DailyPlant(r.Context())
	if err != nil {
		writeError(w, h.logger, err)
		return
	}

	writeJSON(w, h.logger, http.StatusOK, APIResponse{
		Success: true,
		Data:    dto,
	})
}

// RotateDaily handles POST /api/v1/plants/daily/rotate
func (h *PlantHandlers) RotateDaily(w http.ResponseWriter, r *http.Request) {
	force := r.URL.Query().Get("force") == "true"

	var dto *inbound.PlantDTO
	var err error
	if force {
		dto, err = h.catalog.ForceRotate(r.Context())
	} else {
		dto, err = h.catalog.RotateDaily(r.Context())
	}
	if err != nil {
		writeError(w, h.logger, err)
		return
	}

	h.metrics.RecordRotation()

	writeJSON(w, h.logger, http.StatusOK, APIResponse{
		Success: true,
		Data:    dto,
		Message: "Daily plant rotated",
	})
}

// bookmarkRequest is the body for POST /api/v1/plants/bookmarks
type bookmarkRequest struct {
	UserID  string `json:"user_id" validate:"required"`
	PlantID string `json:"plant_id" validate:"required"`
}

// AddBookmark handles POST /api/v1/plants/bookmarks
func (h *PlantHandlers) AddBookmark(w http.ResponseWriter, r *http.Request) {
	var req bookmarkRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, h.logger, err)
		return
	}

	if err := h.catalog.AddBookmark(r.Context(), req.UserID, req.PlantID); err != nil {
		writeError(w, h.logger, err)
		return
	}

	h.metrics.RecordBookmark("add")

	writeJSON(w, h.logger, http.StatusCreated, APIResponse{
		Success: true,
		Message: "Plant bookmarked",
	})
}

// RemoveBookmark handles DELETE /api/v1/plants/bookmarks/{id}?userId=
func (h *PlantHandlers) RemoveBookmark(w http.ResponseWriter, r *http.Request) {
	userID := r.URL.Query().Get("userId")
	if userID == "" {
		writeError(w, h.logger, appErrors.NewBadRequestError("userId query parameter is required"))
		return
	}
	plantID := chi.URLParam(r, "id")

	if err := h.catalog.RemoveBookmark(r.Context(), userID, plantID); err != nil {
		writeError(w, h.logger, err)
		return
	}

	h.metrics.RecordBookmark("remove")

	writeJSON(w, h.logger, http.StatusOK, APIResponse{
		Success: true,
		Message: "Bookmark removed",
	})
}

// ListBookmarks handles GET /api/v1/plants/bookmarks?userId=
func (h *PlantHandlers) ListBookmarks(w http.ResponseWriter, r *http.Request) {
	userID := r.URL.Query().Get("userId")
	if userID == "" {
		writeError(w, h.logger, appErrors.NewBadRequestError("userId query parameter is required"))
		return
	}

	plants, err := h.catalog.ListBookmarks(r.Context(), userID)
	if err != nil {
		writeError(w, h.logger, err)
		return
	}

	writeJSON(w, h.logger, http.StatusOK, APIResponse{
		Success: true,
		Data:    plants,
	})
}

// Reload handles POST /api/v1/plants/reload
func (h *PlantHandlers) Reload(w http.ResponseWriter, r *http.Request) {
	if err := h.catalog.Reload(r.Context()); err != nil {
		h.metrics.RecordCatalogReload(false)
		writeError(w, h.logger, err)
		return
	}

	h.metrics.RecordCatalogReload(true)

	writeJSON(w, h.logger, http.StatusOK, APIResponse{
		Success: true,
		Message: "Catalog reloaded",
	})
}
