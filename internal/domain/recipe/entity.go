// Package recipe contains the domain logic for AI-generated herbal recipes.
package recipe

import (
	"time"

	"github.com/google/uuid"
)

// Recipe represents a medicinal herbal recipe generated for a user.
// Recipes are produced by the generation pipeline from the user's
// symptoms and conditions, then persisted per user.
type Recipe struct {
	id     uuid.UUID
	userID string

	name        string
	description string

	ingredients  []string
	instructions []string
	benefits     []string
	warnings     []string

	// The requirements the recipe was generated from
	symptoms    string
	conditions  string
	allergies   string
	preferences string

	category        string
	preparationTime string
	medicinalUses   []string
	dosage          string

	bookmarked bool

	// Which provider produced it; empty for manually saved recipes
	generatedBy string

	createdAt time.Time
	updatedAt time.Time
}

// New creates a new Recipe with validation
func New(userID, name string, ingredients, instructions, benefits []string) (*Recipe, error) {
	if userID == "" {
		return nil, ErrEmptyUserID
	}
	if name == "" {
		return nil, ErrEmptyName
	}
	if len(ingredients) == 0 {
		return nil, ErrNoIngredients
	}
	if len(instructions) == 0 {
		return nil, ErrNoInstructions
	}
	if len(benefits) == 0 {
		return nil, ErrNoBenefits
	}

	now := time.Now()
	return &Recipe{
		id:           uuid.New(),
		userID:       userID,
		name:         name,
		ingredients:  ingredients,
		instructions: instructions,
		benefits:     benefits,
		createdAt:    now,
		updatedAt:    now,
	}, nil
}

// ID returns the recipe's unique identifier
func (r *Recipe) ID() uuid.UUID { return r.id }

// UserID returns the owning user's identifier
func (r *Recipe) UserID() string { return r.userID }

// Name returns the recipe name
func (r *Recipe) Name() string { return r.name }

// Description returns the recipe description
func (r *Recipe) Description() string { return r.description }

// Ingredients returns the ingredient list
func (r *Recipe) Ingredients() []string { return r.ingredients }

// Instructions returns the preparation steps
func (r *Recipe) Instructions() []string { return r.instructions }

// Benefits returns the claimed health benefits
func (r *Recipe) Benefits() []string { return r.benefits }

// Warnings returns contraindication warnings
func (r *Recipe) Warnings() []string { return r.warnings }

// Symptoms returns the symptom text the recipe was generated from
func (r *Recipe) Symptoms() string { return r.symptoms }

// Conditions returns the condition text the recipe was generated from
func (r *Recipe) Conditions() string { return r.conditions }

// Allergies returns the allergy constraints
func (r *Recipe) Allergies() string { return r.allergies }

// Preferences returns the user preferences
func (r *Recipe) Preferences() string { return r.preferences }

// Category returns the recipe category
func (r *Recipe) Category() string { return r.category }

// PreparationTime returns the human-readable preparation time
func (r *Recipe) PreparationTime() string { return r.preparationTime }

// MedicinalUses returns the medicinal use tags
func (r *Recipe) MedicinalUses() []string { return r.medicinalUses }

// Dosage returns the dosage guidance
func (r *Recipe) Dosage() string { return r.dosage }

// IsBookmarked reports whether the user bookmarked the recipe
func (r *Recipe) IsBookmarked() bool { return r.bookmarked }

// GeneratedBy returns the provider name that produced the recipe
func (r *Recipe) GeneratedBy() string { return r.generatedBy }

// CreatedAt returns when the recipe was created
func (r *Recipe) CreatedAt() time.Time { return r.createdAt }

// UpdatedAt returns when the recipe was last updated
func (r *Recipe) UpdatedAt() time.Time { return r.updatedAt }

// SetDescription sets the recipe description
func (r *Recipe) SetDescription(description string) {
	r.description = description
	r.touch()
}

// SetWarnings replaces the warning list
func (r *Recipe) SetWarnings(warnings []string) {
	r.warnings = warnings
	r.touch()
}

// SetRequirements records the generation requirements the recipe answers
func (r *Recipe) SetRequirements(symptoms, conditions, allergies, preferences string) {
	r.symptoms = symptoms
	r.conditions = conditions
	r.allergies = allergies
	r.preferences = preferences
	r.touch()
}

// SetDetails sets the optional descriptive fields
func (r *Recipe) SetDetails(category, preparationTime, dosage string, medicinalUses []string) {
	r.category = category
	r.preparationTime = preparationTime
	r.dosage = dosage
	r.medicinalUses = medicinalUses
	r.touch()
}

// SetGeneratedBy records the provider that produced the recipe
func (r *Recipe) SetGeneratedBy(provider string) {
	r.generatedBy = provider
}

// SetBookmarked sets the bookmark flag. Setting the current value is a no-op.
func (r *Recipe) SetBookmarked(bookmarked bool) {
	if r.bookmarked == bookmarked {
		return
	}
	r.bookmarked = bookmarked
	r.touch()
}

func (r *Recipe) touch() {
	r.updatedAt = time.Now()
}

// Reconstitute rebuilds a Recipe from persisted state. Intended for
// repository mappers only; it bypasses creation-time validation.
func Reconstitute(
	id uuid.UUID,
	userID, name, description string,
	ingredients, instructions, benefits, warnings []string,
	symptoms, conditions, allergies, preferences string,
	category, preparationTime, dosage string,
	medicinalUses []string,
	bookmarked bool,
	generatedBy string,
	createdAt, updatedAt time.Time,
) *Recipe {
	return &Recipe{
		id:              id,
		userID:          userID,
		name:            name,
		description:     description,
		ingredients:     ingredients,
		instructions:    instructions,
		benefits:        benefits,
		warnings:        warnings,
		symptoms:        symptoms,
		conditions:      conditions,
		allergies:       allergies,
		preferences:     preferences,
		category:        category,
		preparationTime: preparationTime,
		dosage:          dosage,
		medicinalUses:   medicinalUses,
		bookmarked:      bookmarked,
		generatedBy:     generatedBy,
		createdAt:       createdAt,
		updatedAt:       updatedAt,
	}
}
