// Package inbound defines the interfaces for inbound ports (primary/driving adapters)
// These are the interfaces that the application exposes to the outside world
package inbound

import (
	"context"

	"github.com/vatika/v1/internal/domain/plant"
)

// CatalogService defines the use cases for the plant catalog.
// This is the primary port that HTTP handlers and other driving adapters use.
type CatalogService interface {
	// Catalog lifecycle
	Reload(ctx context.Context) error

	// Queries
	ListPlants(ctx context.Context) ([]PlantDTO, error)
	GetPlant(ctx context.Context, plantID string) (*PlantDTO, error)
	SearchPlants(ctx context.Context, query string) ([]PlantDTO, error)
	FilterByFacet(ctx context.Context, facet plant.FacetType, value string) ([]PlantDTO, error)
	FacetValues(ctx context.Context, facet plant.FacetType) ([]FacetValueDTO, error)

	// Recommendations
	RecommendForCondition(ctx context.Context, condition string) ([]RecommendationDTO, error)
	RecommendForSymptoms(ctx context.Context, symptomsText, conditionsText string) ([]RecommendationDTO, error)

	// Bookmarks
	AddBookmark(ctx context.Context, userID, plantID string) error
	RemoveBookmark(ctx context.Context, userID, plantID string) error
	IsBookmarked(ctx context.Context, userID, plantID string) (bool, error)
	ListBookmarks(ctx context.Context, userID string) ([]PlantDTO, error)

	// Daily featured plant
	DailyPlant(ctx context.Context) (*PlantDTO, error)
	RotateDaily(ctx context.Context) (*PlantDTO, error)
	ForceRotate(ctx context.Context) (*PlantDTO, error)
}

// PlantDTO is the data transfer object for catalog plants
type PlantDTO struct {
	ID             string   `json:"id"`
	Name           string   `json:"name"`
	ScientificName string   `json:"scientific_name"`
	Description    string   `json:"description"`
	Uses           []string `json:"uses"`
	Regions        []string `json:"regions"`
	Conditions     []string `json:"conditions"`
	Category       []string `json:"category,omitempty"`
}

// FacetValueDTO describes one facet value and how many plants carry it
type FacetValueDTO struct {
	Value string `json:"value"`
	Count int    `json:"count"`
}

// RecommendationDTO is a ranked association between a queried condition
// and a candidate plant
type RecommendationDTO struct {
	PlantID          string `json:"plant_id"`
	PlantName        string `json:"plant_name"`
	ConditionMatched string `json:"condition_matched"`
	Effectiveness    int    `json:"effectiveness,omitempty"`
	UsageNotes       string `json:"usage_notes,omitempty"`
}
