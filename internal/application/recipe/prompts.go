package recipe

import (
	"fmt"
	"strings"

	"github.com/vatika/v1/internal/ports/inbound"
)

// maxPromptCandidates bounds how many matched plants are listed in the
// generation prompt
const maxPromptCandidates = 5

// buildRecipePrompt assembles the herbalist prompt for recipe generation.
// The expected JSON shape is spelled out verbatim so weaker models still
// return something parseable.
func buildRecipePrompt(cmd inbound.GenerateRecipesCommand, candidates []inbound.RecommendationDTO) string {
	var b strings.Builder

	b.WriteString("Generate 3 medicinal herbal recipes based on the following requirements:\n")
	if cmd.Symptoms != "" {
		fmt.Fprintf(&b, "Symptoms: %s\n", cmd.Symptoms)
	}
	if cmd.Conditions != "" {
		fmt.Fprintf(&b, "Medical Conditions: %s\n", cmd.Conditions)
	}
	if cmd.Allergies != "" {
		fmt.Fprintf(&b, "Allergies/Sensitivities: %s\n", cmd.Allergies)
	}
	if cmd.Preferences != "" {
		fmt.Fprintf(&b, "Preferences: %s\n", cmd.Preferences)
	}

	if len(candidates) > 0 {
		b.WriteString("\nPrefer these catalog plants where appropriate:\n")
		for i, c := range candidates {
			if i == maxPromptCandidates {
				break
			}
			fmt.Fprintf(&b, "- %s (for %s)\n", c.PlantName, c.ConditionMatched)
		}
	}

	b.WriteString(`
The recipes must be safe and suitable for these conditions. Include relevant
warnings about potential interactions or contraindications.

Return ONLY a JSON object in this exact format, no other text:
{
  "recipes": [
    {
      "name": "Recipe Name",
      "description": "Brief description",
      "ingredients": ["ingredient 1", "ingredient 2"],
      "instructions": ["step 1", "step 2"],
      "benefits": ["benefit 1", "benefit 2"],
      "warnings": ["warning 1", "warning 2"],
      "category": "Teas",
      "preparation_time": "10 minutes",
      "medicinal_uses": ["use 1", "use 2"],
      "dosage": "dosage information"
    }
  ]
}`)

	return b.String()
}

// buildInsightsPrompt assembles the plant deep-dive prompt
func buildInsightsPrompt(name, scientificName string) string {
	return fmt.Sprintf(`Provide insights about %s (%s) in this exact JSON format:
{
  "traditionalUses": ["use1", "use2"],
  "scientificResearch": ["finding1", "finding2"],
  "preparation": {
    "methods": ["method1", "method2"],
    "dosage": "dosage information",
    "precautions": ["precaution1", "precaution2"]
  },
  "interactions": ["interaction1", "interaction2"],
  "historicalUse": "brief history",
  "modernApplications": ["application1", "application2"]
}

Remember: Return ONLY the JSON object, no other text.`, name, scientificName)
}
