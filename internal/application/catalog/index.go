package catalog

import (
	"github.com/vatika/v1/internal/domain/plant"
)

// facetIndex maps facet type -> normalized facet value -> plant ids.
// Ids within a value keep catalog insertion order.
type facetIndex map[plant.FacetType]map[string][]string

// snapshot is an immutable view of the loaded catalog. The service swaps
// whole snapshots so readers never observe a store/index mismatch.
type snapshot struct {
	plants []*plant.Plant
	byID   map[string]*plant.Plant
	order  map[string]int
	index  facetIndex
}

// buildSnapshot validates the collection and derives the facet index.
// It is a pure function of its input: the same plants in the same order
// always produce identical index content.
func buildSnapshot(plants []*plant.Plant) (*snapshot, error) {
	byID := make(map[string]*plant.Plant, len(plants))
	order := make(map[string]int, len(plants))

	for i, p := range plants {
		if err := p.Validate(); err != nil {
			return nil, err
		}
		if _, dup := byID[p.ID()]; dup {
			return nil, plant.ErrDuplicateID
		}
		byID[p.ID()] = p
		order[p.ID()] = i
	}

	index := make(facetIndex, len(plant.AllFacetTypes))
	for _, facet := range plant.AllFacetTypes {
		index[facet] = make(map[string][]string)
	}

	for _, p := range plants {
		for _, facet := range plant.AllFacetTypes {
			for _, tag := range p.Tags(facet) {
				key := plant.NormalizeTag(tag)
				index[facet][key] = append(index[facet][key], p.ID())
			}
		}
	}

	return &snapshot{
		plants: plants,
		byID:   byID,
		order:  order,
		index:  index,
	}, nil
}

// lookup returns the plant ids tagged with the facet value.
// Unknown values are a normal no-match case and yield nil.
func (s *snapshot) lookup(facet plant.FacetType, value string) []string {
	values, ok := s.index[facet]
	if !ok {
		return nil
	}
	return values[plant.NormalizeTag(value)]
}
