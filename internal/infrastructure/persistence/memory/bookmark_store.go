package memory

import (
	"context"
	"sync"

	"github.com/vatika/v1/internal/ports/outbound"
)

// BookmarkStore is an in-memory outbound.BookmarkStore.
// Bookmark order per user is preserved.
type BookmarkStore struct {
	mu      sync.RWMutex
	byUser  map[string][]string
	present map[string]map[string]struct{}
}

// NewBookmarkStore creates an empty in-memory bookmark store
func NewBookmarkStore() *BookmarkStore {
	return &BookmarkStore{
		byUser:  make(map[string][]string),
		present: make(map[string]map[string]struct{}),
	}
}

var _ outbound.BookmarkStore = (*BookmarkStore)(nil)

// Add records a bookmark; re-adding is a no-op
func (s *BookmarkStore) Add(ctx context.Context, userID, plantID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	set, ok := s.present[userID]
	if !ok {
		set = make(map[string]struct{})
		s.present[userID] = set
	}
	if _, dup := set[plantID]; dup {
		return nil
	}

	set[plantID] = struct{}{}
	s.byUser[userID] = append(s.byUser[userID], plantID)
	return nil
}

// Remove deletes a bookmark; removing an absent one is a no-op
func (s *BookmarkStore) Remove(ctx context.Context, userID, plantID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	set, ok := s.present[userID]
	if !ok {
		return nil
	}
	if _, exists := set[plantID]; !exists {
		return nil
	}

	delete(set, plantID)
	ids := s.byUser[userID]
	for i, id := range ids {
		if id == plantID {
			s.byUser[userID] = append(ids[:i], ids[i+1:]...)
			break
		}
	}
	return nil
}

// List returns the user's bookmarked plant ids in bookmark order
func (s *BookmarkStore) List(ctx context.Context, userID string) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ids := s.byUser[userID]
	out := make([]string, len(ids))
	copy(out, ids)
	return out, nil
}
