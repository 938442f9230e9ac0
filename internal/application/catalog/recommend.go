package catalog

import (
	"context"
	"sort"
	"strings"

	"github.com/vatika/v1/internal/domain/plant"
	"github.com/vatika/v1/internal/ports/inbound"
)

// candidate accumulates ranking signals for one plant during matching
type candidate struct {
	plant         *plant.Plant
	effectiveness int
	tagMatches    int
	condition     string
	usageNotes    string
}

// RecommendForCondition returns plants treating the condition, ranked by
// explicit effectiveness score (descending), then by the number of
// matching condition and use tags, then by catalog insertion order.
// The ordering is stable and reproducible for identical catalog state.
func (s *Service) RecommendForCondition(ctx context.Context, condition string) ([]inbound.RecommendationDTO, error) {
	snap, err := s.snapshotOrNotReady()
	if err != nil {
		return nil, err
	}

	key := plant.NormalizeTag(condition)
	if key == "" {
		return []inbound.RecommendationDTO{}, nil
	}

	candidates := make([]candidate, 0)
	for _, id := range snap.lookup(plant.FacetCondition, condition) {
		p := snap.byID[id]
		c := candidate{
			plant:         p,
			effectiveness: p.Effectiveness(condition),
			tagMatches:    exactTagMatches(p, key),
			condition:     displayTag(p.Conditions(), key),
		}
		if remedy, ok := p.Remedy(condition); ok {
			c.usageNotes = remedy.UsageNotes
		}
		candidates = append(candidates, c)
	}

	s.rank(snap, candidates)
	return candidatesToDTOs(candidates), nil
}

// RecommendForSymptoms tokenizes the free-text symptoms and conditions,
// matches the tokens against known condition and use facet values by
// case-insensitive substring containment, unions the candidate sets and
// applies the same ranking as RecommendForCondition. No match anywhere is
// a valid outcome and yields an empty, non-error result.
func (s *Service) RecommendForSymptoms(ctx context.Context, symptomsText, conditionsText string) ([]inbound.RecommendationDTO, error) {
	snap, err := s.snapshotOrNotReady()
	if err != nil {
		return nil, err
	}

	tokens := tokenize(symptomsText + " " + conditionsText)
	if len(tokens) == 0 {
		return []inbound.RecommendationDTO{}, nil
	}

	matched := matchedTerms(snap, tokens)

	byPlant := make(map[string]*candidate)
	var order []string
	for _, term := range matched {
		for _, id := range snap.index[term.facet][term.value] {
			p := snap.byID[id]
			c, ok := byPlant[id]
			if !ok {
				c = &candidate{plant: p}
				byPlant[id] = c
				order = append(order, id)
			}
			c.tagMatches++
			if term.facet == plant.FacetCondition {
				if c.condition == "" {
					c.condition = displayTag(p.Conditions(), term.value)
				}
				if eff := p.Effectiveness(term.value); eff > c.effectiveness {
					c.effectiveness = eff
					if remedy, ok := p.Remedy(term.value); ok {
						c.usageNotes = remedy.UsageNotes
					}
				}
			}
		}
	}

	candidates := make([]candidate, 0, len(order))
	for _, id := range order {
		candidates = append(candidates, *byPlant[id])
	}

	s.rank(snap, candidates)
	return candidatesToDTOs(candidates), nil
}

// rank sorts candidates by effectiveness desc, tag match count desc,
// catalog insertion order
func (s *Service) rank(snap *snapshot, candidates []candidate) {
	sort.SliceStable(candidates, func(i, j int) bool {
		a, b := candidates[i], candidates[j]
		if a.effectiveness != b.effectiveness {
			return a.effectiveness > b.effectiveness
		}
		if a.tagMatches != b.tagMatches {
			return a.tagMatches > b.tagMatches
		}
		return snap.order[a.plant.ID()] < snap.order[b.plant.ID()]
	})
}

// facetTerm is a known facet value matched from free text
type facetTerm struct {
	facet plant.FacetType
	value string // normalized
}

// matchedTerms returns the known condition/use facet values containing any
// of the tokens, in deterministic (sorted) order
func matchedTerms(snap *snapshot, tokens []string) []facetTerm {
	var terms []facetTerm
	for _, facet := range []plant.FacetType{plant.FacetCondition, plant.FacetUse} {
		values := make([]string, 0, len(snap.index[facet]))
		for value := range snap.index[facet] {
			values = append(values, value)
		}
		sort.Strings(values)

		for _, value := range values {
			for _, tok := range tokens {
				if strings.Contains(value, tok) || strings.Contains(tok, value) {
					terms = append(terms, facetTerm{facet: facet, value: value})
					break
				}
			}
		}
	}
	return terms
}

// tokenize splits free text into lowercase candidate terms, dropping
// fragments too short to match meaningfully
func tokenize(text string) []string {
	fields := strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !('a' <= r && r <= 'z' || '0' <= r && r <= '9')
	})

	seen := make(map[string]struct{}, len(fields))
	tokens := make([]string, 0, len(fields))
	for _, f := range fields {
		if len(f) < 3 {
			continue
		}
		if _, dup := seen[f]; dup {
			continue
		}
		seen[f] = struct{}{}
		tokens = append(tokens, f)
	}
	return tokens
}

// exactTagMatches counts condition and use tags equal to the normalized term
func exactTagMatches(p *plant.Plant, key string) int {
	count := 0
	for _, tag := range p.Conditions() {
		if plant.NormalizeTag(tag) == key {
			count++
		}
	}
	for _, tag := range p.Uses() {
		if plant.NormalizeTag(tag) == key {
			count++
		}
	}
	return count
}

// displayTag returns the original-cased tag matching the normalized key
func displayTag(tags []string, key string) string {
	for _, tag := range tags {
		if plant.NormalizeTag(tag) == key {
			return tag
		}
	}
	return key
}

func candidatesToDTOs(candidates []candidate) []inbound.RecommendationDTO {
	dtos := make([]inbound.RecommendationDTO, 0, len(candidates))
	for _, c := range candidates {
		dtos = append(dtos, inbound.RecommendationDTO{
			PlantID:          c.plant.ID(),
			PlantName:        c.plant.Name(),
			ConditionMatched: c.condition,
			Effectiveness:    c.effectiveness,
			UsageNotes:       c.usageNotes,
		})
	}
	return dtos
}
