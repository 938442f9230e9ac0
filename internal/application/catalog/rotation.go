package catalog

import (
	"context"
	"time"

	"github.com/vatika/v1/internal/domain/plant"
	"github.com/vatika/v1/internal/ports/inbound"
	"github.com/vatika/v1/pkg/errors"
	"go.uber.org/zap"
)

// Calendar-day comparison uses a fixed reference zone so "a new day" is
// unambiguous regardless of server locale.
const rotationDateLayout = "2006-01-02"

func rotationDate(now time.Time) string {
	return now.UTC().Format(rotationDateLayout)
}

// initRotation restores the featured pointer from durable storage, or
// performs the first rotation when nothing is stored yet. Called under
// loadMu after each successful load.
func (s *Service) initRotation(ctx context.Context, snap *snapshot) error {
	s.rotMu.Lock()
	defer s.rotMu.Unlock()

	if s.featuredID != "" {
		return nil
	}

	if s.featured != nil {
		plantID, rotatedOn, ok, err := s.featured.Load(ctx)
		if err != nil {
			return err
		}
		if ok {
			if _, exists := snap.byID[plantID]; exists {
				s.featuredID = plantID
				s.rotatedOn = rotatedOn
				return nil
			}
		}
	}

	_, err := s.rotateLocked(ctx, snap, s.now(), false)
	return err
}

// DailyPlant returns the currently featured plant. When a catalog
// replacement dropped the featured plant, a fresh rotation happens here
// instead of reporting it missing.
func (s *Service) DailyPlant(ctx context.Context) (*inbound.PlantDTO, error) {
	snap, err := s.snapshotOrNotReady()
	if err != nil {
		return nil, err
	}

	s.rotMu.Lock()
	featuredID := s.featuredID
	s.rotMu.Unlock()

	p, ok := snap.byID[featuredID]
	if !ok {
		return s.rotate(ctx, s.now(), false)
	}

	dto := plantToDTO(p)
	return &dto, nil
}

// RotateDaily selects a new featured plant when the calendar date has
// changed since the last rotation. Calling it again on the same date is a
// no-op that returns the already selected plant. The new selection always
// differs from the previous one when the catalog has more than one plant.
func (s *Service) RotateDaily(ctx context.Context) (*inbound.PlantDTO, error) {
	return s.rotate(ctx, s.now(), false)
}

// ForceRotate is the user-triggered override: it always selects a new
// featured plant (excluding the current one) and updates the marker
// regardless of date.
func (s *Service) ForceRotate(ctx context.Context) (*inbound.PlantDTO, error) {
	return s.rotate(ctx, s.now(), true)
}

func (s *Service) rotate(ctx context.Context, now time.Time, force bool) (*inbound.PlantDTO, error) {
	snap, err := s.snapshotOrNotReady()
	if err != nil {
		return nil, err
	}

	s.rotMu.Lock()
	defer s.rotMu.Unlock()

	today := rotationDate(now)
	if !force && s.rotatedOn == today && s.featuredID != "" {
		if p, ok := snap.byID[s.featuredID]; ok {
			dto := plantToDTO(p)
			return &dto, nil
		}
	}

	p, err := s.rotateLocked(ctx, snap, now, force)
	if err != nil {
		return nil, err
	}

	dto := plantToDTO(p)
	return &dto, nil
}

// rotateLocked picks a new featured plant, excluding the previous pick
// when more than one plant exists, and persists marker and selection
// together. Caller holds rotMu.
func (s *Service) rotateLocked(ctx context.Context, snap *snapshot, now time.Time, force bool) (*plant.Plant, error) {
	if len(snap.plants) == 0 {
		return nil, errors.NewValidationError(plant.ErrEmptyCatalog.Error())
	}

	previous := s.featuredID

	pool := snap.plants
	if len(snap.plants) > 1 && previous != "" {
		pool = make([]*plant.Plant, 0, len(snap.plants)-1)
		for _, p := range snap.plants {
			if p.ID() != previous {
				pool = append(pool, p)
			}
		}
	}

	selected := pool[s.intn(len(pool))]
	today := rotationDate(now)

	s.featuredID = selected.ID()
	s.rotatedOn = today

	if s.featured != nil {
		if err := s.featured.Save(ctx, selected.ID(), today); err != nil {
			s.logger.Warn("Failed to persist featured plant", zap.Error(err))
		}
	}

	s.publish(plant.DailyPlantRotatedEvent{
		PreviousID: previous,
		PlantID:    selected.ID(),
		Forced:     force,
		RotatedAt:  now,
	})

	s.logger.Info("Daily plant rotated",
		zap.String("previous", previous),
		zap.String("selected", selected.ID()),
		zap.Bool("forced", force),
	)

	return selected, nil
}
