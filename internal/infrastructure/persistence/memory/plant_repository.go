// Package memory provides in-memory implementations of the outbound
// persistence ports. Used for tests and for running without a database.
package memory

import (
	"context"
	"sync"

	"github.com/vatika/v1/internal/domain/plant"
	"github.com/vatika/v1/internal/ports/outbound"
)

// PlantRepository is an in-memory outbound.PlantRepository
type PlantRepository struct {
	mu     sync.RWMutex
	plants []*plant.Plant

	// FetchErr, when set, is returned by FetchAll. Lets tests exercise
	// load-failure paths.
	FetchErr error
}

// NewPlantRepository creates an empty in-memory plant repository
func NewPlantRepository() *PlantRepository {
	return &PlantRepository{}
}

var _ outbound.PlantRepository = (*PlantRepository)(nil)

// FetchAll returns the stored plants in insertion order
func (r *PlantRepository) FetchAll(ctx context.Context) ([]*plant.Plant, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if r.FetchErr != nil {
		return nil, r.FetchErr
	}

	out := make([]*plant.Plant, len(r.plants))
	copy(out, r.plants)
	return out, nil
}

// ReplaceAll swaps the stored collection
func (r *PlantRepository) ReplaceAll(ctx context.Context, plants []*plant.Plant) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.plants = make([]*plant.Plant, len(plants))
	copy(r.plants, plants)
	return nil
}

// Count returns the number of stored plants
func (r *PlantRepository) Count(ctx context.Context) (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return int64(len(r.plants)), nil
}
