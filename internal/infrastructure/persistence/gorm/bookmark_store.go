package gorm

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/vatika/v1/internal/ports/outbound"
	appErrors "github.com/vatika/v1/pkg/errors"
)

// bookmarkStore implements outbound.BookmarkStore using GORM
type bookmarkStore struct {
	db *gorm.DB
}

// NewBookmarkStore creates a new GORM-backed bookmark store
func NewBookmarkStore(db *gorm.DB) outbound.BookmarkStore {
	return &bookmarkStore{db: db}
}

// Add records a bookmark. Re-adding an existing bookmark is a no-op.
func (s *bookmarkStore) Add(ctx context.Context, userID, plantID string) error {
	model := BookmarkModel{UserID: userID, PlantID: plantID}
	err := s.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&model).Error
	if err != nil {
		return appErrors.NewDatabaseError("add bookmark", err)
	}
	return nil
}

// Remove deletes a bookmark. Removing an absent bookmark is a no-op.
func (s *bookmarkStore) Remove(ctx context.Context, userID, plantID string) error {
	err := s.db.WithContext(ctx).
		Where("user_id = ? AND plant_id = ?", userID, plantID).
		Delete(&BookmarkModel{}).Error
	if err != nil {
		return appErrors.NewDatabaseError("remove bookmark", err)
	}
	return nil
}

// List returns the user's bookmarked plant ids in bookmark order
func (s *bookmarkStore) List(ctx context.Context, userID string) ([]string, error) {
	var plantIDs []string
	err := s.db.WithContext(ctx).
		Model(&BookmarkModel{}).
		Where("user_id = ?", userID).
		Order("id ASC").
		Pluck("plant_id", &plantIDs).Error
	if err != nil {
		return nil, appErrors.NewDatabaseError("list bookmarks", err)
	}
	return plantIDs, nil
}
