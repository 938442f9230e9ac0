package gorm

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vatika/v1/internal/domain/plant"
	"github.com/vatika/v1/internal/domain/recipe"
)

func TestPlantModelRoundTrip(t *testing.T) {
	original, err := plant.New("turmeric", "Turmeric", "Curcuma longa", "A golden spice root.")
	require.NoError(t, err)
	require.NoError(t, original.AddUse("Anti-inflammatory"))
	require.NoError(t, original.AddRegion("India"))
	require.NoError(t, original.AddCategory("Culinary herbs"))
	require.NoError(t, original.SetRemedy(plant.Remedy{
		Condition: "Inflammation", Effectiveness: 5, UsageNotes: "With black pepper.",
	}))
	require.NoError(t, original.SetRemedy(plant.Remedy{
		Condition: "Arthritis", Effectiveness: 4,
	}))

	model := PlantToModel(original, 7)
	assert.Equal(t, 7, model.Position)

	// Remedy records are stored sorted by condition for a stable column
	require.Len(t, model.Remedies, 2)
	assert.Equal(t, "Arthritis", model.Remedies[0].Condition)
	assert.Equal(t, "Inflammation", model.Remedies[1].Condition)

	restored, err := ModelToPlant(model)
	require.NoError(t, err)

	assert.Equal(t, original.ID(), restored.ID())
	assert.Equal(t, original.ScientificName(), restored.ScientificName())
	assert.Equal(t, original.Uses(), restored.Uses())
	assert.Equal(t, original.Category(), restored.Category())
	assert.ElementsMatch(t, original.Conditions(), restored.Conditions())

	remedy, ok := restored.Remedy("Inflammation")
	require.True(t, ok)
	assert.Equal(t, 5, remedy.Effectiveness)
	assert.Equal(t, "With black pepper.", remedy.UsageNotes)
}

func TestModelToPlantRejectsCorruptRow(t *testing.T) {
	_, err := ModelToPlant(&PlantModel{ID: "ghost"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "ghost")
}

func TestRecipeModelRoundTrip(t *testing.T) {
	original, err := recipe.New("user-1", "Ginger Decoction",
		[]string{"Ginger root"}, []string{"Simmer for ten minutes"}, []string{"Eases nausea"})
	require.NoError(t, err)
	original.SetDescription("A warming digestive remedy.")
	original.SetRequirements("nausea", "", "", "no caffeine")
	original.SetDetails("Decoctions", "15 minutes", "1 cup after meals", []string{"Digestive Aid"})
	original.SetGeneratedBy("openai")
	original.SetBookmarked(true)

	restored := ModelToRecipe(RecipeToModel(original))

	assert.Equal(t, original.ID(), restored.ID())
	assert.Equal(t, original.Name(), restored.Name())
	assert.Equal(t, original.Ingredients(), restored.Ingredients())
	assert.Equal(t, original.Symptoms(), restored.Symptoms())
	assert.Equal(t, original.Preferences(), restored.Preferences())
	assert.Equal(t, original.Dosage(), restored.Dosage())
	assert.Equal(t, original.GeneratedBy(), restored.GeneratedBy())
	assert.True(t, restored.IsBookmarked())
}
