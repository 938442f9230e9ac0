// Package catalog provides the application layer for the plant catalog:
// the entity store, facet indexing, search, recommendation matching and
// the bookmark and daily-rotation state.
package catalog

import (
	"context"
	"hash/fnv"
	"math/rand"
	"sync"
	"sync/atomic"
	"time"

	"github.com/vatika/v1/internal/domain/plant"
	"github.com/vatika/v1/internal/domain/shared"
	"github.com/vatika/v1/internal/ports/inbound"
	"github.com/vatika/v1/internal/ports/outbound"
	"github.com/vatika/v1/pkg/errors"
	"go.uber.org/zap"
)

// bookmarkStripes bounds the number of per-user mutexes. Mutations for the
// same user always hit the same stripe, serializing add/remove races.
const bookmarkStripes = 64

// Service implements the catalog use cases over an atomically swapped
// in-memory snapshot of the plant collection.
type Service struct {
	plantRepo outbound.PlantRepository
	bookmarks outbound.BookmarkStore
	featured  outbound.FeaturedStore
	events    shared.EventDispatcher
	logger    *zap.Logger

	// loadMu serializes Load/Reload; reads go through the atomic pointer
	// and never block behind a load.
	loadMu sync.Mutex
	snap   atomic.Pointer[snapshot]

	// rotation state, guarded by rotMu
	rotMu      sync.Mutex
	featuredID string
	rotatedOn  string // calendar date in the reference zone, "" until initialized

	userLocks [bookmarkStripes]sync.Mutex

	now  func() time.Time
	intn func(n int) int
}

// Option configures a Service
type Option func(*Service)

// WithClock overrides the wall clock, for tests
func WithClock(now func() time.Time) Option {
	return func(s *Service) { s.now = now }
}

// WithRand overrides the rotation selector, for tests
func WithRand(intn func(n int) int) Option {
	return func(s *Service) { s.intn = intn }
}

// NewService creates a new catalog service
func NewService(
	plantRepo outbound.PlantRepository,
	bookmarks outbound.BookmarkStore,
	featured outbound.FeaturedStore,
	events shared.EventDispatcher,
	logger *zap.Logger,
	opts ...Option,
) *Service {
	s := &Service{
		plantRepo: plantRepo,
		bookmarks: bookmarks,
		featured:  featured,
		events:    events,
		logger:    logger.Named("catalog-service"),
		now:       time.Now,
		intn:      rand.New(rand.NewSource(time.Now().UnixNano())).Intn,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

var _ inbound.CatalogService = (*Service)(nil)

// Load replaces the full catalog. Validation is all-or-nothing: any invalid
// plant rejects the batch and the prior snapshot stays queryable. The facet
// index is built before the swap, so a caller that issues Load followed by
// any query observes the fully built index.
func (s *Service) Load(ctx context.Context, plants []*plant.Plant) error {
	s.loadMu.Lock()
	defer s.loadMu.Unlock()

	snap, err := buildSnapshot(plants)
	if err != nil {
		s.logger.Warn("Catalog load rejected", zap.Error(err))
		return errors.NewValidationError(err.Error()).WithCause(err)
	}

	s.snap.Store(snap)

	s.logger.Info("Catalog loaded",
		zap.Int("plants", len(plants)),
	)

	s.publish(plant.CatalogReplacedEvent{
		PlantCount: len(plants),
		ReplacedAt: s.now(),
	})

	if err := s.initRotation(ctx, snap); err != nil {
		s.logger.Warn("Daily plant initialization failed", zap.Error(err))
	}

	return nil
}

// Reload pulls the collection from the persistence collaborator and loads
// it. On fetch failure the last-good snapshot is retained: stale catalog
// data is preferred over an empty catalog. The caller controls timeout and
// cancellation through ctx.
func (s *Service) Reload(ctx context.Context) error {
	plants, err := s.plantRepo.FetchAll(ctx)
	if err != nil {
		if s.snap.Load() != nil {
			s.logger.Warn("Catalog refresh failed, keeping last-good snapshot", zap.Error(err))
			return nil
		}
		return errors.NewDatabaseError("fetch plants", err)
	}

	return s.Load(ctx, plants)
}

// snapshotOrNotReady returns the current snapshot, or the NotReady error
// when no load has ever completed
func (s *Service) snapshotOrNotReady() (*snapshot, error) {
	snap := s.snap.Load()
	if snap == nil {
		return nil, errors.NewCatalogNotReadyError()
	}
	return snap, nil
}

// ListPlants returns the full catalog in insertion order
func (s *Service) ListPlants(ctx context.Context) ([]inbound.PlantDTO, error) {
	snap, err := s.snapshotOrNotReady()
	if err != nil {
		return nil, err
	}
	return plantsToDTOs(snap.plants), nil
}

// GetPlant returns a single plant by id
func (s *Service) GetPlant(ctx context.Context, plantID string) (*inbound.PlantDTO, error) {
	snap, err := s.snapshotOrNotReady()
	if err != nil {
		return nil, err
	}

	p, ok := snap.byID[plantID]
	if !ok {
		return nil, errors.NewPlantNotFoundError(plantID)
	}

	dto := plantToDTO(p)
	return &dto, nil
}

// publish dispatches a domain event, logging failures instead of
// propagating them
func (s *Service) publish(event shared.DomainEvent) {
	if s.events == nil {
		return
	}
	if err := s.events.Dispatch(event); err != nil {
		s.logger.Error("Failed to dispatch event",
			zap.String("event", event.EventName()),
			zap.Error(err),
		)
	}
}

// userStripe returns the lock serializing bookmark mutations for a user
func (s *Service) userStripe(userID string) *sync.Mutex {
	h := fnv.New32a()
	h.Write([]byte(userID))
	return &s.userLocks[h.Sum32()%bookmarkStripes]
}
