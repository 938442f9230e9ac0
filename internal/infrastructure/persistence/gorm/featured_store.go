package gorm

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/vatika/v1/internal/ports/outbound"
	appErrors "github.com/vatika/v1/pkg/errors"
)

// featuredRowID pins the pointer to a single row
const featuredRowID = 1

// featuredStore implements outbound.FeaturedStore using GORM
type featuredStore struct {
	db *gorm.DB
}

// NewFeaturedStore creates a new GORM-backed featured-plant store
func NewFeaturedStore(db *gorm.DB) outbound.FeaturedStore {
	return &featuredStore{db: db}
}

// Load returns the persisted featured pointer, if any
func (s *featuredStore) Load(ctx context.Context) (string, string, bool, error) {
	var model FeaturedModel
	err := s.db.WithContext(ctx).Where("id = ?", featuredRowID).First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", "", false, nil
		}
		return "", "", false, appErrors.NewDatabaseError("load featured plant", err)
	}

	return model.PlantID, model.RotatedOn, true, nil
}

// Save upserts the featured pointer and its selection date
func (s *featuredStore) Save(ctx context.Context, plantID, rotatedOn string) error {
	model := FeaturedModel{ID: featuredRowID, PlantID: plantID, RotatedOn: rotatedOn}
	err := s.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			DoUpdates: clause.AssignmentColumns([]string{"plant_id", "rotated_on", "updated_at"}),
		}).
		Create(&model).Error
	if err != nil {
		return appErrors.NewDatabaseError("save featured plant", err)
	}
	return nil
}
