package recipe

import (
	"encoding/json"
	"errors"
	"strings"

	"github.com/vatika/v1/internal/ports/inbound"
)

var (
	errNoJSON    = errors.New("no JSON object found in generated content")
	errNoRecipes = errors.New("generated content contains no recipes")
)

// generatedRecipe is the closed contract a provider must produce per
// recipe. Single strings where arrays are expected are tolerated, since
// models get this wrong routinely.
type generatedRecipe struct {
	Name            string      `json:"name"`
	Description     string      `json:"description"`
	Ingredients     stringSlice `json:"ingredients"`
	Instructions    stringSlice `json:"instructions"`
	Benefits        stringSlice `json:"benefits"`
	Warnings        stringSlice `json:"warnings"`
	Category        string      `json:"category"`
	PreparationTime string      `json:"preparation_time"`
	MedicinalUses   stringSlice `json:"medicinal_uses"`
	Dosage          string      `json:"dosage"`
}

type recipeEnvelope struct {
	Recipes []generatedRecipe `json:"recipes"`
}

// stringSlice unmarshals either a JSON array of strings or a bare string
type stringSlice []string

func (s *stringSlice) UnmarshalJSON(data []byte) error {
	var many []string
	if err := json.Unmarshal(data, &many); err == nil {
		*s = many
		return nil
	}

	var one string
	if err := json.Unmarshal(data, &one); err != nil {
		return err
	}
	if one != "" {
		*s = []string{one}
	}
	return nil
}

// parseGeneratedRecipes extracts the recipe envelope from raw provider
// output. Providers wrap JSON in prose or code fences often enough that a
// bracket-scan fallback is required before giving up.
func parseGeneratedRecipes(raw string) ([]generatedRecipe, error) {
	payload, err := extractJSON(raw)
	if err != nil {
		return nil, err
	}

	var envelope recipeEnvelope
	if err := json.Unmarshal(payload, &envelope); err == nil && len(envelope.Recipes) > 0 {
		return envelope.Recipes, nil
	}

	// Some providers return a bare array instead of the envelope
	var bare []generatedRecipe
	if err := json.Unmarshal(payload, &bare); err == nil && len(bare) > 0 {
		return bare, nil
	}

	// Or a single recipe object
	var single generatedRecipe
	if err := json.Unmarshal(payload, &single); err == nil && single.Name != "" {
		return []generatedRecipe{single}, nil
	}

	return nil, errNoRecipes
}

// parsedInsights mirrors the insights prompt's JSON contract
type parsedInsights struct {
	TraditionalUses    stringSlice `json:"traditionalUses"`
	ScientificResearch stringSlice `json:"scientificResearch"`
	Preparation        struct {
		Methods     stringSlice `json:"methods"`
		Dosage      string      `json:"dosage"`
		Precautions stringSlice `json:"precautions"`
	} `json:"preparation"`
	Interactions       stringSlice `json:"interactions"`
	HistoricalUse      string      `json:"historicalUse"`
	ModernApplications stringSlice `json:"modernApplications"`
}

func parseInsights(raw string) (*inbound.PlantInsightsDTO, error) {
	payload, err := extractJSON(raw)
	if err != nil {
		return nil, err
	}

	var parsed parsedInsights
	if err := json.Unmarshal(payload, &parsed); err != nil {
		return nil, err
	}

	return &inbound.PlantInsightsDTO{
		TraditionalUses:    parsed.TraditionalUses,
		ScientificResearch: parsed.ScientificResearch,
		Methods:            parsed.Preparation.Methods,
		Dosage:             parsed.Preparation.Dosage,
		Precautions:        parsed.Preparation.Precautions,
		Interactions:       parsed.Interactions,
		HistoricalUse:      parsed.HistoricalUse,
		ModernApplications: parsed.ModernApplications,
	}, nil
}

// extractJSON returns the first top-level JSON object or array in the
// text, tolerating code fences and surrounding prose
func extractJSON(raw string) ([]byte, error) {
	text := strings.TrimSpace(raw)
	if strings.HasPrefix(text, "```") {
		text = strings.TrimPrefix(text, "```json")
		text = strings.TrimPrefix(text, "```")
		if end := strings.LastIndex(text, "```"); end >= 0 {
			text = text[:end]
		}
		text = strings.TrimSpace(text)
	}

	start := strings.IndexAny(text, "{[")
	if start < 0 {
		return nil, errNoJSON
	}

	open := text[start]
	closer := byte('}')
	if open == '[' {
		closer = ']'
	}

	depth := 0
	inString := false
	for i := start; i < len(text); i++ {
		c := text[i]
		switch {
		case inString:
			if c == '\\' {
				i++
			} else if c == '"' {
				inString = false
			}
		case c == '"':
			inString = true
		case c == open:
			depth++
		case c == closer:
			depth--
			if depth == 0 {
				return []byte(text[start : i+1]), nil
			}
		}
	}

	return nil, errNoJSON
}
