package gorm

import (
	"context"

	"gorm.io/gorm"

	"github.com/vatika/v1/internal/domain/plant"
	"github.com/vatika/v1/internal/ports/outbound"
	appErrors "github.com/vatika/v1/pkg/errors"
)

// plantRepository implements outbound.PlantRepository using GORM
type plantRepository struct {
	db *gorm.DB
}

// NewPlantRepository creates a new GORM-backed plant repository
func NewPlantRepository(db *gorm.DB) outbound.PlantRepository {
	return &plantRepository{db: db}
}

// FetchAll returns every stored plant in insertion order
func (r *plantRepository) FetchAll(ctx context.Context) ([]*plant.Plant, error) {
	var models []PlantModel
	if err := r.db.WithContext(ctx).Order("position ASC").Find(&models).Error; err != nil {
		return nil, appErrors.NewDatabaseError("fetch plants", err)
	}

	plants := make([]*plant.Plant, 0, len(models))
	for i := range models {
		p, err := ModelToPlant(&models[i])
		if err != nil {
			return nil, appErrors.NewDatabaseError("decode plant", err)
		}
		plants = append(plants, p)
	}

	return plants, nil
}

// ReplaceAll swaps the stored collection for the given plants in one
// transaction, preserving the slice order as the new insertion order
func (r *plantRepository) ReplaceAll(ctx context.Context, plants []*plant.Plant) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&PlantModel{}).Error; err != nil {
			return err
		}
		for i, p := range plants {
			if err := tx.Create(PlantToModel(p, i)).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return appErrors.NewDatabaseError("replace plants", err)
	}

	return nil
}

// Count returns the number of stored plants
func (r *plantRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&PlantModel{}).Count(&count).Error; err != nil {
		return 0, appErrors.NewDatabaseError("count plants", err)
	}
	return count, nil
}
