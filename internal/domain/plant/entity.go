// Package plant contains the core domain logic for the medicinal plant catalog.
// This follows Domain-Driven Design principles with rich domain models.
package plant

import (
	"github.com/vatika/v1/internal/domain/shared"
)

// Plant represents a catalog entry for a medicinal plant.
// The id is a stable slug (e.g. "ashwagandha") and is immutable after creation.
type Plant struct {
	shared.AggregateRoot

	id             string
	name           string
	scientificName string
	description    string

	// Facet tags. Uses preserve insertion order; all tags are unique
	// within a plant under case-insensitive comparison.
	uses       []string
	regions    []string
	conditions []string
	category   []string

	// Condition-specific effectiveness and usage notes, keyed by the
	// normalized condition tag.
	remedies map[string]Remedy
}

// New creates a new Plant with validation
func New(id, name, scientificName, description string) (*Plant, error) {
	if NormalizeTag(id) == "" {
		return nil, ErrEmptyID
	}
	if name == "" {
		return nil, ErrEmptyName
	}
	if scientificName == "" {
		return nil, ErrEmptyScientificName
	}

	return &Plant{
		id:             id,
		name:           name,
		scientificName: scientificName,
		description:    description,
		remedies:       make(map[string]Remedy),
	}, nil
}

// ID returns the plant's unique identifier
func (p *Plant) ID() string {
	return p.id
}

// Name returns the plant's display name
func (p *Plant) Name() string {
	return p.name
}

// ScientificName returns the plant's scientific name
func (p *Plant) ScientificName() string {
	return p.scientificName
}

// Description returns the plant's description
func (p *Plant) Description() string {
	return p.description
}

// Uses returns the plant's therapeutic use tags in insertion order
func (p *Plant) Uses() []string {
	return p.uses
}

// Regions returns the plant's native region tags
func (p *Plant) Regions() []string {
	return p.regions
}

// Conditions returns the condition tags this plant treats
func (p *Plant) Conditions() []string {
	return p.conditions
}

// Category returns the plant's classification tags
func (p *Plant) Category() []string {
	return p.category
}

// Tags returns the tags for a given facet dimension
func (p *Plant) Tags(facet FacetType) []string {
	switch facet {
	case FacetRegion:
		return p.regions
	case FacetCondition:
		return p.conditions
	case FacetUse:
		return p.uses
	case FacetCategory:
		return p.category
	default:
		return nil
	}
}

// AddUse appends a therapeutic use tag, rejecting case-insensitive duplicates
func (p *Plant) AddUse(tag string) error {
	return appendTag(&p.uses, tag)
}

// AddRegion appends a native region tag
func (p *Plant) AddRegion(tag string) error {
	return appendTag(&p.regions, tag)
}

// AddCondition appends a treated-condition tag
func (p *Plant) AddCondition(tag string) error {
	return appendTag(&p.conditions, tag)
}

// AddCategory appends a classification tag
func (p *Plant) AddCategory(tag string) error {
	return appendTag(&p.category, tag)
}

// SetRemedy records condition-specific effectiveness and usage notes.
// The condition is added to the condition facet if not already present.
func (p *Plant) SetRemedy(remedy Remedy) error {
	if err := remedy.Validate(); err != nil {
		return err
	}

	key := NormalizeTag(remedy.Condition)
	if !containsTag(p.conditions, remedy.Condition) {
		p.conditions = append(p.conditions, remedy.Condition)
	}
	p.remedies[key] = remedy

	return nil
}

// Remedy looks up the remedy entry for a condition, if one was recorded.
// Lookup is case-insensitive.
func (p *Plant) Remedy(condition string) (Remedy, bool) {
	remedy, ok := p.remedies[NormalizeTag(condition)]
	return remedy, ok
}

// Remedies returns all recorded remedy entries keyed by normalized condition
func (p *Plant) Remedies() map[string]Remedy {
	out := make(map[string]Remedy, len(p.remedies))
	for key, remedy := range p.remedies {
		out[key] = remedy
	}
	return out
}

// Effectiveness returns the explicit effectiveness score for a condition,
// or zero when the plant carries no score for it
func (p *Plant) Effectiveness(condition string) int {
	if remedy, ok := p.Remedy(condition); ok {
		return remedy.Effectiveness
	}
	return 0
}

// Validate re-checks all entity invariants. Used at the catalog load
// boundary so invalid shapes never enter the index.
func (p *Plant) Validate() error {
	if NormalizeTag(p.id) == "" {
		return ErrEmptyID
	}
	if p.name == "" {
		return ErrEmptyName
	}
	if p.scientificName == "" {
		return ErrEmptyScientificName
	}

	for _, tags := range [][]string{p.uses, p.regions, p.conditions, p.category} {
		seen := make(map[string]struct{}, len(tags))
		for _, tag := range tags {
			key := NormalizeTag(tag)
			if _, dup := seen[key]; dup {
				return ErrDuplicateTag
			}
			seen[key] = struct{}{}
		}
	}

	for _, remedy := range p.remedies {
		if err := remedy.Validate(); err != nil {
			return err
		}
	}

	return nil
}

// appendTag appends a tag to a facet slice, preserving order and
// rejecting case-insensitive duplicates
func appendTag(tags *[]string, tag string) error {
	if containsTag(*tags, tag) {
		return ErrDuplicateTag
	}
	*tags = append(*tags, tag)
	return nil
}

// containsTag reports whether the slice already holds the tag,
// compared case-insensitively
func containsTag(tags []string, tag string) bool {
	key := NormalizeTag(tag)
	for _, existing := range tags {
		if NormalizeTag(existing) == key {
			return true
		}
	}
	return false
}
