package recipe

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseGeneratedRecipes(t *testing.T) {
	t.Run("Envelope", func(t *testing.T) {
		raw := `{"recipes":[{"name":"Ginger Tonic","ingredients":["Ginger"],"instructions":["Steep"],"benefits":["Digestion"]}]}`

		recipes, err := parseGeneratedRecipes(raw)
		require.NoError(t, err)
		require.Len(t, recipes, 1)
		assert.Equal(t, "Ginger Tonic", recipes[0].Name)
		assert.Equal(t, []string{"Ginger"}, []string(recipes[0].Ingredients))
	})

	t.Run("BareArray", func(t *testing.T) {
		raw := `[{"name":"A"},{"name":"B"}]`

		recipes, err := parseGeneratedRecipes(raw)
		require.NoError(t, err)
		require.Len(t, recipes, 2)
		assert.Equal(t, "B", recipes[1].Name)
	})

	t.Run("SingleObject", func(t *testing.T) {
		raw := `{"name":"Lone Remedy","ingredients":["Herb"]}`

		recipes, err := parseGeneratedRecipes(raw)
		require.NoError(t, err)
		require.Len(t, recipes, 1)
		assert.Equal(t, "Lone Remedy", recipes[0].Name)
	})

	t.Run("CodeFencedWithProse", func(t *testing.T) {
		raw := "Here are your recipes!\n```json\n{\"recipes\":[{\"name\":\"Fenced\"}]}\n```\nEnjoy."

		recipes, err := parseGeneratedRecipes(raw)
		require.NoError(t, err)
		require.Len(t, recipes, 1)
		assert.Equal(t, "Fenced", recipes[0].Name)
	})

	t.Run("ProseAroundObject", func(t *testing.T) {
		raw := `Sure thing. {"recipes":[{"name":"Buried"}]} Hope that helps.`

		recipes, err := parseGeneratedRecipes(raw)
		require.NoError(t, err)
		require.Len(t, recipes, 1)
		assert.Equal(t, "Buried", recipes[0].Name)
	})

	t.Run("BracesInsideStrings", func(t *testing.T) {
		raw := `{"recipes":[{"name":"Tricky","description":"contains } and { inside"}]}`

		recipes, err := parseGeneratedRecipes(raw)
		require.NoError(t, err)
		require.Len(t, recipes, 1)
		assert.Equal(t, "contains } and { inside", recipes[0].Description)
	})

	t.Run("NoJSON_Errors", func(t *testing.T) {
		_, err := parseGeneratedRecipes("I am sorry, I cannot help with that.")
		assert.ErrorIs(t, err, errNoJSON)
	})

	t.Run("EmptyEnvelope_Errors", func(t *testing.T) {
		_, err := parseGeneratedRecipes(`{"recipes":[]}`)
		assert.ErrorIs(t, err, errNoRecipes)
	})
}

func TestStringSliceTolerance(t *testing.T) {
	t.Run("BareStringBecomesSingleElement", func(t *testing.T) {
		raw := `{"name":"Loose","ingredients":"Just one herb","benefits":["Calm"]}`

		recipes, err := parseGeneratedRecipes(raw)
		require.NoError(t, err)
		require.Len(t, recipes, 1)
		assert.Equal(t, []string{"Just one herb"}, []string(recipes[0].Ingredients))
	})

	t.Run("EmptyStringStaysEmpty", func(t *testing.T) {
		raw := `{"name":"Sparse","warnings":""}`

		recipes, err := parseGeneratedRecipes(raw)
		require.NoError(t, err)
		assert.Empty(t, recipes[0].Warnings)
	})
}

func TestParseInsights(t *testing.T) {
	raw := "```json\n" + `{
  "traditionalUses": ["Sleep rituals"],
  "scientificResearch": ["Small trials on sleep latency"],
  "preparation": {
    "methods": ["Tea", "Tincture"],
    "dosage": "1 cup before bed",
    "precautions": ["Drowsiness"]
  },
  "interactions": ["Sedatives"],
  "historicalUse": "Used since antiquity.",
  "modernApplications": ["Sleep support"]
}` + "\n```"

	insights, err := parseInsights(raw)
	require.NoError(t, err)

	assert.Equal(t, []string{"Sleep rituals"}, insights.TraditionalUses)
	assert.Equal(t, []string{"Tea", "Tincture"}, insights.Methods)
	assert.Equal(t, "1 cup before bed", insights.Dosage)
	assert.Equal(t, []string{"Drowsiness"}, insights.Precautions)
	assert.Equal(t, "Used since antiquity.", insights.HistoricalUse)
}
