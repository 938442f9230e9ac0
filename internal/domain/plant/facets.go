package plant

import "strings"

// FacetType identifies a categorical tag dimension usable for filtering.
type FacetType string

const (
	FacetRegion    FacetType = "region"
	FacetCondition FacetType = "condition"
	FacetUse       FacetType = "use"
	FacetCategory  FacetType = "category"
)

// AllFacetTypes lists every facet dimension in a fixed order.
// Index construction iterates this order so index content is deterministic.
var AllFacetTypes = []FacetType{FacetRegion, FacetCondition, FacetUse, FacetCategory}

// ParseFacetType parses a facet type from its string form
func ParseFacetType(s string) (FacetType, error) {
	switch FacetType(strings.ToLower(strings.TrimSpace(s))) {
	case FacetRegion:
		return FacetRegion, nil
	case FacetCondition:
		return FacetCondition, nil
	case FacetUse:
		return FacetUse, nil
	case FacetCategory:
		return FacetCategory, nil
	default:
		return "", ErrInvalidFacetType
	}
}

// NormalizeTag produces the canonical form used for facet comparison.
// All facet matching is case-insensitive.
func NormalizeTag(tag string) string {
	return strings.ToLower(strings.TrimSpace(tag))
}

// Remedy associates a plant with a condition it is known to treat.
// Effectiveness is optional; zero means unscored, otherwise 1 (weak) to 5 (strong).
type Remedy struct {
	Condition     string
	Effectiveness int
	UsageNotes    string
}

// Validate validates the remedy
func (r Remedy) Validate() error {
	if NormalizeTag(r.Condition) == "" {
		return ErrEmptyCondition
	}
	if r.Effectiveness < 0 || r.Effectiveness > 5 {
		return ErrInvalidEffectiveness
	}
	return nil
}
