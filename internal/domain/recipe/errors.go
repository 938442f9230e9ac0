package recipe

import "errors"

// Domain errors for herbal recipe operations

var (
	ErrEmptyUserID    = errors.New("recipe must belong to a user")
	ErrEmptyName      = errors.New("recipe name must not be empty")
	ErrNoIngredients  = errors.New("recipe must have at least one ingredient")
	ErrNoInstructions = errors.New("recipe must have at least one instruction")
	ErrNoBenefits     = errors.New("recipe must list at least one benefit")
	ErrNoRequirements = errors.New("either symptoms or conditions must be provided")
	ErrRecipeNotFound = errors.New("recipe not found")
)
