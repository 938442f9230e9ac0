package handlers

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/vatika/v1/internal/infrastructure/monitoring"
	"github.com/vatika/v1/internal/ports/inbound"
	appErrors "github.com/vatika/v1/pkg/errors"
)

// RecipeHandlers handles herbal recipe REST API requests
type RecipeHandlers struct {
	recipes inbound.RecipeService
	metrics *monitoring.Metrics
	logger  *zap.Logger
}

// NewRecipeHandlers creates a new recipe handlers instance
func NewRecipeHandlers(
	recipes inbound.RecipeService,
	metrics *monitoring.Metrics,
	logger *zap.Logger,
) *RecipeHandlers {
	return &RecipeHandlers{
		recipes: recipes,
		metrics: metrics,
		logger:  logger,
	}
}

// ListRecipes handles GET /api/v1/recipes?userId=
func (h *RecipeHandlers) ListRecipes(w http.ResponseWriter, r *http.Request) {
	userID := r.URL.Query().Get("userId")
	if userID == "" {
		writeError(w, h.logger, appErrors.NewBadRequestError("userId query parameter is required"))
		return
	}

	recipes, err := h.recipes.ListRecipes(r.Context(), userID)
	if err != nil {
		writeError(w, h.logger, err)
		return
	}

	writeJSON(w, h.logger, http.StatusOK, APIResponse{
		Success: true,
		Data:    recipes,
	})
}

// generateRequest is the body for POST /api/v1/recipes/generate
type generateRequest struct {
	UserID      string `json:"user_id" validate:"required"`
	Symptoms    string `json:"symptoms"`
	Conditions  string `json:"conditions"`
	Allergies   string `json:"allergies"`
	Preferences string `json:"preferences"`
}

// GenerateRecipes handles POST /api/v1/recipes/generate
func (h *RecipeHandlers) GenerateRecipes(w http.ResponseWriter, r *http.Request) {
	var req generateRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, h.logger, err)
		return
	}

	start := time.Now()
	result, err := h.recipes.GenerateRecipes(r.Context(), inbound.GenerateRecipesCommand{
		UserID:      req.UserID,
		Symptoms:    req.Symptoms,
		Conditions:  req.Conditions,
		Allergies:   req.Allergies,
		Preferences: req.Preferences,
	})
	if err != nil {
		h.metrics.RecordGeneration("none", false, time.Since(start))
		writeError(w, h.logger, err)
		return
	}

	h.metrics.RecordGeneration(result.Provider, true, time.Since(start))

	writeJSON(w, h.logger, http.StatusOK, APIResponse{
		Success: true,
		Data:    result,
	})
}

// saveRequest is the body for POST /api/v1/recipes
type saveRequest struct {
	UserID      string                `json:"user_id" validate:"required"`
	Recipes     []inbound.RecipeInput `json:"recipes" validate:"required,min=1,dive"`
	Symptoms    string                `json:"symptoms"`
	Conditions  string                `json:"conditions"`
	Allergies   string                `json:"allergies"`
	Preferences string                `json:"preferences"`
}

// SaveRecipes handles POST /api/v1/recipes
func (h *RecipeHandlers) SaveRecipes(w http.ResponseWriter, r *http.Request) {
	var req saveRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, h.logger, err)
		return
	}

	recipes, err := h.recipes.SaveRecipes(r.Context(), inbound.SaveRecipesCommand{
		UserID:      req.UserID,
		Recipes:     req.Recipes,
		Symptoms:    req.Symptoms,
		Conditions:  req.Conditions,
		Allergies:   req.Allergies,
		Preferences: req.Preferences,
	})
	if err != nil {
		writeError(w, h.logger, err)
		return
	}

	writeJSON(w, h.logger, http.StatusCreated, APIResponse{
		Success: true,
		Data:    recipes,
		Message: "Recipes saved",
	})
}

// bookmarkToggleRequest is the body for PATCH /api/v1/recipes
type bookmarkToggleRequest struct {
	RecipeID   string `json:"recipe_id" validate:"required,uuid"`
	Bookmarked bool   `json:"bookmarked"`
}

// SetBookmark handles PATCH /api/v1/recipes
func (h *RecipeHandlers) SetBookmark(w http.ResponseWriter, r *http.Request) {
	var req bookmarkToggleRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, h.logger, err)
		return
	}

	recipeID, err := uuid.Parse(req.RecipeID)
	if err != nil {
		writeError(w, h.logger, appErrors.NewBadRequestError("invalid recipe id"))
		return
	}

	dto, err := h.recipes.SetRecipeBookmark(r.Context(), recipeID, req.Bookmarked)
	if err != nil {
		writeError(w, h.logger, err)
		return
	}

	writeJSON(w, h.logger, http.StatusOK, APIResponse{
		Success: true,
		Data:    dto,
	})
}

// PlantInsights handles GET /api/v1/plants/{id}/insights
func (h *RecipeHandlers) PlantInsights(w http.ResponseWriter, r *http.Request) {
	plantID := chi.URLParam(r, "id")

	insights, err := h.recipes.PlantInsights(r.Context(), plantID)
	if err != nil {
		writeError(w, h.logger, err)
		return
	}

	writeJSON(w, h.logger, http.StatusOK, APIResponse{
		Success: true,
		Data:    insights,
	})
}
