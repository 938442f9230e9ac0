package gorm

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/vatika/v1/internal/domain/recipe"
	"github.com/vatika/v1/internal/ports/outbound"
	appErrors "github.com/vatika/v1/pkg/errors"
)

// recipeRepository implements outbound.RecipeRepository using GORM
type recipeRepository struct {
	db *gorm.DB
}

// NewRecipeRepository creates a new GORM-backed recipe repository
func NewRecipeRepository(db *gorm.DB) outbound.RecipeRepository {
	return &recipeRepository{db: db}
}

// Create persists a new recipe
func (r *recipeRepository) Create(ctx context.Context, rec *recipe.Recipe) error {
	if err := r.db.WithContext(ctx).Create(RecipeToModel(rec)).Error; err != nil {
		return appErrors.NewDatabaseError("create recipe", err)
	}
	return nil
}

// Update persists changes to an existing recipe
func (r *recipeRepository) Update(ctx context.Context, rec *recipe.Recipe) error {
	result := r.db.WithContext(ctx).
		Model(&RecipeModel{}).
		Where("id = ?", rec.ID()).
		Updates(RecipeToModel(rec))
	if result.Error != nil {
		return appErrors.NewDatabaseError("update recipe", result.Error)
	}
	if result.RowsAffected == 0 {
		return appErrors.NewRecipeNotFoundError(rec.ID().String())
	}
	return nil
}

// FindByID retrieves a recipe by its identifier
func (r *recipeRepository) FindByID(ctx context.Context, id uuid.UUID) (*recipe.Recipe, error) {
	var model RecipeModel
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, appErrors.NewRecipeNotFoundError(id.String())
		}
		return nil, appErrors.NewDatabaseError("find recipe", err)
	}

	return ModelToRecipe(&model), nil
}

// FindByUser retrieves a user's recipes, newest first
func (r *recipeRepository) FindByUser(ctx context.Context, userID string) ([]*recipe.Recipe, error) {
	var models []RecipeModel
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&models).Error
	if err != nil {
		return nil, appErrors.NewDatabaseError("list recipes", err)
	}

	recipes := make([]*recipe.Recipe, 0, len(models))
	for i := range models {
		recipes = append(recipes, ModelToRecipe(&models[i]))
	}

	return recipes, nil
}
