package inbound

import (
	"context"

	"github.com/google/uuid"
)

// RecipeService defines the use cases for herbal recipe management
type RecipeService interface {
	// Commands
	GenerateRecipes(ctx context.Context, cmd GenerateRecipesCommand) (*GenerationResult, error)
	SaveRecipes(ctx context.Context, cmd SaveRecipesCommand) ([]RecipeDTO, error)
	SetRecipeBookmark(ctx context.Context, recipeID uuid.UUID, bookmarked bool) (*RecipeDTO, error)

	// Queries
	ListRecipes(ctx context.Context, userID string) ([]RecipeDTO, error)

	// AI plant insights (supplemental generation, not recommendation)
	PlantInsights(ctx context.Context, plantID string) (*PlantInsightsDTO, error)
}

// GenerateRecipesCommand contains the requirements for recipe generation.
// At least one of Symptoms or Conditions must be provided.
type GenerateRecipesCommand struct {
	UserID      string
	Symptoms    string
	Conditions  string
	Allergies   string
	Preferences string
}

// SaveRecipesCommand persists externally supplied recipes for a user
type SaveRecipesCommand struct {
	UserID      string
	Recipes     []RecipeInput
	Symptoms    string
	Conditions  string
	Allergies   string
	Preferences string
}

// RecipeInput is the incoming shape of a recipe to save
type RecipeInput struct {
	Name         string   `json:"name"`
	Description  string   `json:"description,omitempty"`
	Ingredients  []string `json:"ingredients"`
	Instructions []string `json:"instructions"`
	Benefits     []string `json:"benefits"`
	Warnings     []string `json:"warnings,omitempty"`
}

// RecipeDTO is the data transfer object for herbal recipes
type RecipeDTO struct {
	ID              uuid.UUID `json:"id"`
	UserID          string    `json:"user_id"`
	Name            string    `json:"name"`
	Description     string    `json:"description,omitempty"`
	Ingredients     []string  `json:"ingredients"`
	Instructions    []string  `json:"instructions"`
	Benefits        []string  `json:"benefits"`
	Warnings        []string  `json:"warnings,omitempty"`
	Symptoms        string    `json:"symptoms,omitempty"`
	Conditions      string    `json:"conditions,omitempty"`
	Allergies       string    `json:"allergies,omitempty"`
	Preferences     string    `json:"preferences,omitempty"`
	Category        string    `json:"category,omitempty"`
	PreparationTime string    `json:"preparation_time,omitempty"`
	MedicinalUses   []string  `json:"medicinal_uses,omitempty"`
	Dosage          string    `json:"dosage,omitempty"`
	IsBookmarked    bool      `json:"is_bookmarked"`
	GeneratedBy     string    `json:"generated_by,omitempty"`
	CreatedAt       string    `json:"created_at"`
	UpdatedAt       string    `json:"updated_at"`
}

// GenerationResult carries the generated recipes plus provenance
type GenerationResult struct {
	Recipes []RecipeDTO `json:"recipes"`

	// Provider that produced the recipes, or "sample" when every
	// configured provider failed and the built-in samples were used
	Provider string `json:"provider"`

	// Candidate plants from the recommendation matcher that seeded
	// the generation prompt
	CandidatePlants []RecommendationDTO `json:"candidate_plants,omitempty"`
}

// PlantInsightsDTO is the AI-generated deep-dive for a single plant
type PlantInsightsDTO struct {
	PlantID            string   `json:"plant_id"`
	TraditionalUses    []string `json:"traditional_uses"`
	ScientificResearch []string `json:"scientific_research"`
	Methods            []string `json:"preparation_methods"`
	Dosage             string   `json:"dosage"`
	Precautions        []string `json:"precautions"`
	Interactions       []string `json:"interactions"`
	HistoricalUse      string   `json:"historical_use"`
	ModernApplications []string `json:"modern_applications"`
	Provider           string   `json:"provider"`
}
