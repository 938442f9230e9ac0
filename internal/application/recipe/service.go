// Package recipe provides the application layer for herbal recipe
// generation and management. Generation delegates to a provider chain;
// when every provider fails the built-in sample recipes are returned so
// the user always gets a usable answer.
package recipe

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/vatika/v1/internal/domain/recipe"
	"github.com/vatika/v1/internal/ports/inbound"
	"github.com/vatika/v1/internal/ports/outbound"
	"github.com/vatika/v1/pkg/errors"
	"go.uber.org/zap"
)

// sampleProvider is the provenance marker used when generation fell back
// to the built-in sample recipes
const sampleProvider = "sample"

// insightsTTL bounds how long a plant insights response stays cached
const insightsTTL = 24 * time.Hour

// Service implements the herbal recipe use cases
type Service struct {
	recipeRepo outbound.RecipeRepository
	catalog    inbound.CatalogService
	generator  outbound.TextGenerator
	cache      outbound.CacheRepository
	logger     *zap.Logger
}

// NewService creates a new recipe service. The generator is expected to be
// the provider fallback chain, not a single provider.
func NewService(
	recipeRepo outbound.RecipeRepository,
	catalog inbound.CatalogService,
	generator outbound.TextGenerator,
	cache outbound.CacheRepository,
	logger *zap.Logger,
) *Service {
	return &Service{
		recipeRepo: recipeRepo,
		catalog:    catalog,
		generator:  generator,
		cache:      cache,
		logger:     logger.Named("recipe-service"),
	}
}

var _ inbound.RecipeService = (*Service)(nil)

// GenerateRecipes produces herbal recipes for the user's requirements.
// Candidate plants from the recommendation matcher seed the prompt; the
// matching itself stays deterministic and provider-independent.
func (s *Service) GenerateRecipes(ctx context.Context, cmd inbound.GenerateRecipesCommand) (*inbound.GenerationResult, error) {
	if cmd.UserID == "" {
		return nil, errors.NewBadRequestError("User ID is required")
	}
	if strings.TrimSpace(cmd.Symptoms) == "" && strings.TrimSpace(cmd.Conditions) == "" {
		return nil, errors.NewBadRequestError("Please provide either symptoms or conditions")
	}

	s.logger.Info("Generating recipes",
		zap.String("user_id", cmd.UserID),
	)

	candidates, err := s.catalog.RecommendForSymptoms(ctx, cmd.Symptoms, cmd.Conditions)
	if err != nil && !errors.Is(err, errors.CodeCatalogNotReady) {
		return nil, err
	}

	prompt := buildRecipePrompt(cmd, candidates)

	parsed, provider := s.generateAndParse(ctx, prompt)

	entities := make([]*recipe.Recipe, 0, len(parsed))
	for _, raw := range parsed {
		entity, err := recipe.New(cmd.UserID, raw.Name, raw.Ingredients, raw.Instructions, raw.Benefits)
		if err != nil {
			s.logger.Warn("Skipping malformed generated recipe",
				zap.String("name", raw.Name),
				zap.Error(err),
			)
			continue
		}
		entity.SetDescription(raw.Description)
		entity.SetWarnings(raw.Warnings)
		entity.SetRequirements(cmd.Symptoms, cmd.Conditions, cmd.Allergies, cmd.Preferences)
		entity.SetDetails(raw.Category, raw.PreparationTime, raw.Dosage, raw.MedicinalUses)
		entity.SetGeneratedBy(provider)

		if err := s.recipeRepo.Create(ctx, entity); err != nil {
			return nil, errors.NewDatabaseError("create recipe", err)
		}
		entities = append(entities, entity)
	}

	if len(entities) == 0 {
		return nil, errors.NewGenerationFailedError(nil)
	}

	s.logger.Info("Recipes generated",
		zap.String("provider", provider),
		zap.Int("count", len(entities)),
	)

	return &inbound.GenerationResult{
		Recipes:         entitiesToDTOs(entities),
		Provider:        provider,
		CandidatePlants: candidates,
	}, nil
}

// generateAndParse runs the provider chain and parses its output,
// degrading to the sample recipes when the chain fails or returns an
// unusable shape
func (s *Service) generateAndParse(ctx context.Context, prompt string) ([]generatedRecipe, string) {
	raw, err := s.generator.Generate(ctx, prompt)
	if err != nil {
		s.logger.Warn("All generation providers failed, using sample recipes", zap.Error(err))
		return sampleRecipes(), sampleProvider
	}

	parsed, err := parseGeneratedRecipes(raw)
	if err != nil {
		s.logger.Warn("Generated content failed to parse, using sample recipes", zap.Error(err))
		return sampleRecipes(), sampleProvider
	}

	return parsed, s.generator.Name()
}

// SaveRecipes persists externally supplied recipes for a user
func (s *Service) SaveRecipes(ctx context.Context, cmd inbound.SaveRecipesCommand) ([]inbound.RecipeDTO, error) {
	if cmd.UserID == "" {
		return nil, errors.NewBadRequestError("User ID is required")
	}
	if len(cmd.Recipes) == 0 {
		return nil, errors.NewBadRequestError("At least one recipe is required")
	}

	entities := make([]*recipe.Recipe, 0, len(cmd.Recipes))
	for _, input := range cmd.Recipes {
		entity, err := recipe.New(cmd.UserID, input.Name, input.Ingredients, input.Instructions, input.Benefits)
		if err != nil {
			return nil, errors.NewValidationError(err.Error()).WithCause(err)
		}
		entity.SetDescription(input.Description)
		entity.SetWarnings(input.Warnings)
		entity.SetRequirements(cmd.Symptoms, cmd.Conditions, cmd.Allergies, cmd.Preferences)

		if err := s.recipeRepo.Create(ctx, entity); err != nil {
			return nil, errors.NewDatabaseError("create recipe", err)
		}
		entities = append(entities, entity)
	}

	return entitiesToDTOs(entities), nil
}

// ListRecipes returns the user's recipes, newest first
func (s *Service) ListRecipes(ctx context.Context, userID string) ([]inbound.RecipeDTO, error) {
	if userID == "" {
		return nil, errors.NewBadRequestError("User ID is required")
	}

	entities, err := s.recipeRepo.FindByUser(ctx, userID)
	if err != nil {
		return nil, errors.NewDatabaseError("find recipes", err)
	}

	return entitiesToDTOs(entities), nil
}

// SetRecipeBookmark updates a recipe's bookmark flag
func (s *Service) SetRecipeBookmark(ctx context.Context, recipeID uuid.UUID, bookmarked bool) (*inbound.RecipeDTO, error) {
	entity, err := s.recipeRepo.FindByID(ctx, recipeID)
	if err != nil {
		return nil, errors.Wrap(err, "find recipe")
	}

	entity.SetBookmarked(bookmarked)

	if err := s.recipeRepo.Update(ctx, entity); err != nil {
		return nil, errors.NewDatabaseError("update recipe", err)
	}

	dto := entityToDTO(entity)
	return &dto, nil
}

// PlantInsights generates an AI deep-dive for one catalog plant.
// Responses are cached per plant since the content is stable.
func (s *Service) PlantInsights(ctx context.Context, plantID string) (*inbound.PlantInsightsDTO, error) {
	p, err := s.catalog.GetPlant(ctx, plantID)
	if err != nil {
		return nil, err
	}

	cacheKey := "vatika:insights:" + p.ID
	if s.cache != nil {
		if data, err := s.cache.Get(ctx, cacheKey); err == nil {
			var cached inbound.PlantInsightsDTO
			if err := json.Unmarshal(data, &cached); err == nil {
				return &cached, nil
			}
		}
	}

	raw, err := s.generator.Generate(ctx, buildInsightsPrompt(p.Name, p.ScientificName))
	if err != nil {
		return nil, errors.NewGenerationFailedError(err)
	}

	insights, err := parseInsights(raw)
	if err != nil {
		return nil, errors.NewGenerationFailedError(err)
	}

	insights.PlantID = plantID
	insights.Provider = s.generator.Name()

	if s.cache != nil {
		if data, err := json.Marshal(insights); err == nil {
			if err := s.cache.Set(ctx, cacheKey, data, insightsTTL); err != nil {
				s.logger.Debug("Failed to cache plant insights", zap.Error(err))
			}
		}
	}

	return insights, nil
}
