package plant

import "errors"

// Domain errors for plant catalog operations

var (
	// Entity validation errors
	ErrEmptyID              = errors.New("plant id must not be empty")
	ErrEmptyName            = errors.New("plant name must not be empty")
	ErrEmptyScientificName  = errors.New("plant scientific name must not be empty")
	ErrDuplicateTag         = errors.New("facet tag already exists on plant")
	ErrEmptyCondition       = errors.New("remedy condition must not be empty")
	ErrInvalidFacetType     = errors.New("unknown facet type")
	ErrInvalidEffectiveness = errors.New("effectiveness must be between 1 and 5")

	// Catalog errors
	ErrPlantNotFound = errors.New("plant not found")
	ErrDuplicateID   = errors.New("duplicate plant id in catalog")
	ErrEmptyCatalog  = errors.New("catalog contains no plants")
)
