package memory

import (
	"context"
	"sync"

	"github.com/vatika/v1/internal/ports/outbound"
)

// FeaturedStore is an in-memory outbound.FeaturedStore
type FeaturedStore struct {
	mu        sync.RWMutex
	plantID   string
	rotatedOn string
	stored    bool
}

// NewFeaturedStore creates an empty in-memory featured-plant store
func NewFeaturedStore() *FeaturedStore {
	return &FeaturedStore{}
}

var _ outbound.FeaturedStore = (*FeaturedStore)(nil)

// Load returns the stored featured pointer, if any
func (s *FeaturedStore) Load(ctx context.Context) (string, string, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.plantID, s.rotatedOn, s.stored, nil
}

// Save stores the featured pointer and its selection date
func (s *FeaturedStore) Save(ctx context.Context, plantID, rotatedOn string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.plantID = plantID
	s.rotatedOn = rotatedOn
	s.stored = true
	return nil
}
