package catalog

import (
	"context"
	"sort"
	"strings"

	"github.com/vatika/v1/internal/domain/plant"
	"github.com/vatika/v1/internal/ports/inbound"
)

// SearchPlants runs a case-insensitive substring search over name,
// scientific name, description and the use/condition tags.
//
// An empty or whitespace-only query returns an empty result rather than
// the whole catalog: the search box suppresses results until the user
// types something. Matches on name or scientific name rank above matches
// found only in the description or tags; within each band the catalog
// insertion order is kept, so output is stable across identical calls.
func (s *Service) SearchPlants(ctx context.Context, query string) ([]inbound.PlantDTO, error) {
	snap, err := s.snapshotOrNotReady()
	if err != nil {
		return nil, err
	}

	term := strings.ToLower(strings.TrimSpace(query))
	if term == "" {
		return []inbound.PlantDTO{}, nil
	}

	var nameMatches, tagMatches []*plant.Plant
	for _, p := range snap.plants {
		switch {
		case strings.Contains(strings.ToLower(p.Name()), term),
			strings.Contains(strings.ToLower(p.ScientificName()), term):
			nameMatches = append(nameMatches, p)
		case strings.Contains(strings.ToLower(p.Description()), term),
			anyTagContains(p.Uses(), term),
			anyTagContains(p.Conditions(), term):
			tagMatches = append(tagMatches, p)
		}
	}

	return plantsToDTOs(append(nameMatches, tagMatches...)), nil
}

// FilterByFacet returns the plants tagged with the facet value. Unknown
// values yield an empty result, not an error.
func (s *Service) FilterByFacet(ctx context.Context, facet plant.FacetType, value string) ([]inbound.PlantDTO, error) {
	snap, err := s.snapshotOrNotReady()
	if err != nil {
		return nil, err
	}

	ids := snap.lookup(facet, value)
	dtos := make([]inbound.PlantDTO, 0, len(ids))
	for _, id := range ids {
		dtos = append(dtos, plantToDTO(snap.byID[id]))
	}
	return dtos, nil
}

// FacetValues lists the distinct values of a facet dimension with their
// plant counts, sorted alphabetically. Drives the region and condition
// grouping pages.
func (s *Service) FacetValues(ctx context.Context, facet plant.FacetType) ([]inbound.FacetValueDTO, error) {
	snap, err := s.snapshotOrNotReady()
	if err != nil {
		return nil, err
	}

	values := snap.index[facet]
	dtos := make([]inbound.FacetValueDTO, 0, len(values))
	for value, ids := range values {
		dtos = append(dtos, inbound.FacetValueDTO{Value: value, Count: len(ids)})
	}
	sort.Slice(dtos, func(i, j int) bool { return dtos[i].Value < dtos[j].Value })

	return dtos, nil
}

// anyTagContains reports whether any tag contains the lowercase term
func anyTagContains(tags []string, term string) bool {
	for _, tag := range tags {
		if strings.Contains(strings.ToLower(tag), term) {
			return true
		}
	}
	return false
}
