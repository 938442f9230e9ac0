package catalog

import (
	"context"

	"github.com/vatika/v1/internal/domain/plant"
	"github.com/vatika/v1/internal/ports/inbound"
	"github.com/vatika/v1/pkg/errors"
	"go.uber.org/zap"
)

// AddBookmark records a bookmark for the user. Adding an id that is
// already bookmarked is a no-op. Mutations for the same user are
// serialized through a per-user lock stripe so concurrent add/remove
// requests cannot lose updates.
func (s *Service) AddBookmark(ctx context.Context, userID, plantID string) error {
	snap, err := s.snapshotOrNotReady()
	if err != nil {
		return err
	}
	if _, ok := snap.byID[plantID]; !ok {
		return errors.NewPlantNotFoundError(plantID)
	}

	mu := s.userStripe(userID)
	mu.Lock()
	defer mu.Unlock()

	if err := s.bookmarks.Add(ctx, userID, plantID); err != nil {
		return errors.NewDatabaseError("add bookmark", err)
	}

	s.publish(plant.PlantBookmarkedEvent{
		UserID:       userID,
		PlantID:      plantID,
		BookmarkedAt: s.now(),
	})

	s.logger.Debug("Bookmark added",
		zap.String("user_id", userID),
		zap.String("plant_id", plantID),
	)

	return nil
}

// RemoveBookmark removes a bookmark for the user. Removing an id that is
// not bookmarked is a no-op, not an error.
func (s *Service) RemoveBookmark(ctx context.Context, userID, plantID string) error {
	if _, err := s.snapshotOrNotReady(); err != nil {
		return err
	}

	mu := s.userStripe(userID)
	mu.Lock()
	defer mu.Unlock()

	if err := s.bookmarks.Remove(ctx, userID, plantID); err != nil {
		return errors.NewDatabaseError("remove bookmark", err)
	}

	s.publish(plant.PlantUnbookmarkedEvent{
		UserID:    userID,
		PlantID:   plantID,
		RemovedAt: s.now(),
	})

	return nil
}

// IsBookmarked reports whether the user has bookmarked the plant
func (s *Service) IsBookmarked(ctx context.Context, userID, plantID string) (bool, error) {
	ids, err := s.bookmarks.List(ctx, userID)
	if err != nil {
		return false, errors.NewDatabaseError("list bookmarks", err)
	}
	for _, id := range ids {
		if id == plantID {
			return true, nil
		}
	}
	return false, nil
}

// ListBookmarks returns the user's bookmarked plants. Bookmarks pointing
// at ids no longer present in the catalog are skipped.
func (s *Service) ListBookmarks(ctx context.Context, userID string) ([]inbound.PlantDTO, error) {
	snap, err := s.snapshotOrNotReady()
	if err != nil {
		return nil, err
	}

	ids, err := s.bookmarks.List(ctx, userID)
	if err != nil {
		return nil, errors.NewDatabaseError("list bookmarks", err)
	}

	dtos := make([]inbound.PlantDTO, 0, len(ids))
	for _, id := range ids {
		if p, ok := snap.byID[id]; ok {
			dtos = append(dtos, plantToDTO(p))
		}
	}
	return dtos, nil
}
