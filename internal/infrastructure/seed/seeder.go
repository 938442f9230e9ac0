package seed

import (
	"context"

	"go.uber.org/zap"

	"github.com/vatika/v1/internal/ports/outbound"
)

// Seeder populates an empty plant store with the built-in dataset
type Seeder struct {
	repo   outbound.PlantRepository
	logger *zap.Logger
}

// NewSeeder creates a new seeder
func NewSeeder(repo outbound.PlantRepository, logger *zap.Logger) *Seeder {
	return &Seeder{
		repo:   repo,
		logger: logger.Named("seed"),
	}
}

// Run seeds the store when it holds no plants. Stores with existing
// data are left untouched.
func (s *Seeder) Run(ctx context.Context) error {
	count, err := s.repo.Count(ctx)
	if err != nil {
		return err
	}
	if count > 0 {
		s.logger.Debug("plant store already populated", zap.Int64("count", count))
		return nil
	}

	plants, err := Plants()
	if err != nil {
		return err
	}

	if err := s.repo.ReplaceAll(ctx, plants); err != nil {
		return err
	}

	s.logger.Info("seeded plant store", zap.Int("plants", len(plants)))
	return nil
}
