package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/google/uuid"

	"github.com/vatika/v1/internal/domain/recipe"
	"github.com/vatika/v1/internal/ports/outbound"
	appErrors "github.com/vatika/v1/pkg/errors"
)

// RecipeRepository is an in-memory outbound.RecipeRepository
type RecipeRepository struct {
	mu      sync.RWMutex
	byID    map[uuid.UUID]*recipe.Recipe
	ordered []uuid.UUID
}

// NewRecipeRepository creates an empty in-memory recipe repository
func NewRecipeRepository() *RecipeRepository {
	return &RecipeRepository{
		byID: make(map[uuid.UUID]*recipe.Recipe),
	}
}

var _ outbound.RecipeRepository = (*RecipeRepository)(nil)

// Create stores a new recipe
func (r *RecipeRepository) Create(ctx context.Context, rec *recipe.Recipe) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.byID[rec.ID()] = rec
	r.ordered = append(r.ordered, rec.ID())
	return nil
}

// Update replaces a stored recipe
func (r *RecipeRepository) Update(ctx context.Context, rec *recipe.Recipe) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byID[rec.ID()]; !ok {
		return appErrors.NewRecipeNotFoundError(rec.ID().String())
	}
	r.byID[rec.ID()] = rec
	return nil
}

// FindByID retrieves a recipe by its identifier
func (r *RecipeRepository) FindByID(ctx context.Context, id uuid.UUID) (*recipe.Recipe, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	rec, ok := r.byID[id]
	if !ok {
		return nil, appErrors.NewRecipeNotFoundError(id.String())
	}
	return rec, nil
}

// FindByUser retrieves a user's recipes, newest first
func (r *RecipeRepository) FindByUser(ctx context.Context, userID string) ([]*recipe.Recipe, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var recipes []*recipe.Recipe
	for _, id := range r.ordered {
		rec := r.byID[id]
		if rec.UserID() == userID {
			recipes = append(recipes, rec)
		}
	}

	sort.SliceStable(recipes, func(i, j int) bool {
		return recipes[i].CreatedAt().After(recipes[j].CreatedAt())
	})

	return recipes, nil
}
