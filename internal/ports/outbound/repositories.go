// Package outbound defines the interfaces for outbound ports (secondary/driven adapters)
// These are the interfaces that the application uses to interact with external systems
package outbound

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/vatika/v1/internal/domain/plant"
	"github.com/vatika/v1/internal/domain/recipe"
)

// PlantRepository defines the interface for plant catalog persistence.
// The catalog treats the storage engine as opaque: it only ever pulls the
// full denormalized collection and pushes full replacements.
type PlantRepository interface {
	// FetchAll returns every plant in stable insertion order
	FetchAll(ctx context.Context) ([]*plant.Plant, error)

	// ReplaceAll atomically replaces the stored collection
	ReplaceAll(ctx context.Context, plants []*plant.Plant) error

	// Count returns the number of stored plants; used to decide seeding
	Count(ctx context.Context) (int64, error)
}

// BookmarkStore defines durable per-user bookmark persistence
type BookmarkStore interface {
	Add(ctx context.Context, userID, plantID string) error
	Remove(ctx context.Context, userID, plantID string) error
	List(ctx context.Context, userID string) ([]string, error)
}

// FeaturedStore persists the daily-featured plant pointer across restarts
type FeaturedStore interface {
	// Load returns the featured plant id and the calendar date it was
	// selected on; ok is false when nothing has been stored yet
	Load(ctx context.Context) (plantID string, rotatedOn string, ok bool, err error)

	// Save stores the pointer and its selection date atomically
	Save(ctx context.Context, plantID string, rotatedOn string) error
}

// RecipeRepository defines the interface for herbal recipe persistence
type RecipeRepository interface {
	Create(ctx context.Context, rec *recipe.Recipe) error
	Update(ctx context.Context, rec *recipe.Recipe) error
	FindByID(ctx context.Context, id uuid.UUID) (*recipe.Recipe, error)

	// FindByUser returns the user's recipes, newest first
	FindByUser(ctx context.Context, userID string) ([]*recipe.Recipe, error)
}

// CacheRepository defines the interface for caching operations
type CacheRepository interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	Exists(ctx context.Context, key string) (bool, error)
}

// TextGenerator is the opaque text-generation capability. Implementations
// wrap a single provider; fallback between providers is the chain's concern.
type TextGenerator interface {
	// Name identifies the provider for logging and diagnostics
	Name() string

	// Generate produces raw text for the prompt. Implementations must
	// honor context cancellation and their configured timeout.
	Generate(ctx context.Context, prompt string) (string, error)
}
