package plant

import "time"

// Domain events for catalog state changes

// CatalogReplacedEvent is raised when the full plant collection is swapped
type CatalogReplacedEvent struct {
	PlantCount int
	ReplacedAt time.Time
}

func (e CatalogReplacedEvent) EventName() string     { return "catalog.replaced" }
func (e CatalogReplacedEvent) OccurredAt() time.Time { return e.ReplacedAt }

// PlantBookmarkedEvent is raised when a user bookmarks a plant
type PlantBookmarkedEvent struct {
	UserID       string
	PlantID      string
	BookmarkedAt time.Time
}

func (e PlantBookmarkedEvent) EventName() string     { return "plant.bookmarked" }
func (e PlantBookmarkedEvent) OccurredAt() time.Time { return e.BookmarkedAt }

// PlantUnbookmarkedEvent is raised when a user removes a bookmark
type PlantUnbookmarkedEvent struct {
	UserID    string
	PlantID   string
	RemovedAt time.Time
}

func (e PlantUnbookmarkedEvent) EventName() string     { return "plant.unbookmarked" }
func (e PlantUnbookmarkedEvent) OccurredAt() time.Time { return e.RemovedAt }

// DailyPlantRotatedEvent is raised when the featured plant changes
type DailyPlantRotatedEvent struct {
	PreviousID string
	PlantID    string
	Forced     bool
	RotatedAt  time.Time
}

func (e DailyPlantRotatedEvent) EventName() string     { return "plant.daily-rotated" }
func (e DailyPlantRotatedEvent) OccurredAt() time.Time { return e.RotatedAt }
