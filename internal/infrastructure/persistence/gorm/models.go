// Package gorm provides GORM model definitions and repositories for the
// plant catalog and herbal recipes
package gorm

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// PlantModel represents the GORM model for catalog plants.
// Facet arrays are stored as JSON columns, mirroring the denormalized
// document shape the catalog works with.
type PlantModel struct {
	ID             string `gorm:"type:varchar(100);primaryKey"`
	Name           string `gorm:"type:varchar(255);not null;index"`
	ScientificName string `gorm:"type:varchar(255);not null"`
	Description    string `gorm:"type:text"`

	Uses       StringSlice `gorm:"type:json"`
	Regions    StringSlice `gorm:"type:json"`
	Conditions StringSlice `gorm:"type:json"`
	Category   StringSlice `gorm:"type:json"`

	Remedies RemedySlice `gorm:"type:json"`

	// Position preserves catalog insertion order across round-trips
	Position int `gorm:"not null;index"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName returns the table name for plants
func (PlantModel) TableName() string { return "plants" }

// RemedyRecord is the stored shape of a condition-specific remedy entry
type RemedyRecord struct {
	Condition     string `json:"condition"`
	Effectiveness int    `json:"effectiveness,omitempty"`
	UsageNotes    string `json:"usage_notes,omitempty"`
}

// RecipeModel represents the GORM model for herbal recipes
type RecipeModel struct {
	ID     uuid.UUID `gorm:"type:char(36);primaryKey"`
	UserID string    `gorm:"type:varchar(100);not null;index"`

	Name        string `gorm:"type:varchar(255);not null"`
	Description string `gorm:"type:text"`

	Ingredients  StringSlice `gorm:"type:json"`
	Instructions StringSlice `gorm:"type:json"`
	Benefits     StringSlice `gorm:"type:json"`
	Warnings     StringSlice `gorm:"type:json"`

	Symptoms    string `gorm:"type:text"`
	Conditions  string `gorm:"type:text"`
	Allergies   string `gorm:"type:text"`
	Preferences string `gorm:"type:text"`

	Category        string      `gorm:"type:varchar(100)"`
	PreparationTime string      `gorm:"type:varchar(100)"`
	MedicinalUses   StringSlice `gorm:"type:json"`
	Dosage          string      `gorm:"type:text"`

	IsBookmarked bool   `gorm:"default:false"`
	GeneratedBy  string `gorm:"type:varchar(50)"`

	CreatedAt time.Time `gorm:"index"`
	UpdatedAt time.Time
}

// TableName returns the table name for recipes
func (RecipeModel) TableName() string { return "recipes" }

// BookmarkModel represents a durable per-user plant bookmark
type BookmarkModel struct {
	ID      uint   `gorm:"primaryKey;autoIncrement"`
	UserID  string `gorm:"type:varchar(100);not null;uniqueIndex:idx_bookmark_user_plant"`
	PlantID string `gorm:"type:varchar(100);not null;uniqueIndex:idx_bookmark_user_plant"`

	CreatedAt time.Time
}

// TableName returns the table name for bookmarks
func (BookmarkModel) TableName() string { return "plant_bookmarks" }

// FeaturedModel stores the daily-featured plant pointer. A single row
// (ID = 1) holds the current selection.
type FeaturedModel struct {
	ID        uint   `gorm:"primaryKey"`
	PlantID   string `gorm:"type:varchar(100);not null"`
	RotatedOn string `gorm:"type:varchar(10);not null"`

	UpdatedAt time.Time
}

// TableName returns the table name for the featured pointer
func (FeaturedModel) TableName() string { return "featured_plant" }

// StringSlice is a []string stored as a JSON column
type StringSlice []string

// Value implements driver.Valuer
func (s StringSlice) Value() (driver.Value, error) {
	if s == nil {
		return "[]", nil
	}
	data, err := json.Marshal(s)
	if err != nil {
		return nil, fmt.Errorf("marshal string slice: %w", err)
	}
	return string(data), nil
}

// Scan implements sql.Scanner
func (s *StringSlice) Scan(value interface{}) error {
	if value == nil {
		*s = nil
		return nil
	}

	var data []byte
	switch v := value.(type) {
	case []byte:
		data = v
	case string:
		data = []byte(v)
	default:
		return fmt.Errorf("unsupported type for string slice: %T", value)
	}

	return json.Unmarshal(data, s)
}

// RemedySlice is a []RemedyRecord stored as a JSON column
type RemedySlice []RemedyRecord

// Value implements driver.Valuer
func (r RemedySlice) Value() (driver.Value, error) {
	if r == nil {
		return "[]", nil
	}
	data, err := json.Marshal(r)
	if err != nil {
		return nil, fmt.Errorf("marshal remedies: %w", err)
	}
	return string(data), nil
}

// Scan implements sql.Scanner
func (r *RemedySlice) Scan(value interface{}) error {
	if value == nil {
		*r = nil
		return nil
	}

	var data []byte
	switch v := value.(type) {
	case []byte:
		data = v
	case string:
		data = []byte(v)
	default:
		return fmt.Errorf("unsupported type for remedies: %T", value)
	}

	return json.Unmarshal(data, r)
}
