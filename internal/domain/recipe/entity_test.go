package recipe

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

// RecipeTestSuite provides a test suite for the Recipe entity
type RecipeTestSuite struct {
	suite.Suite
}

func (suite *RecipeTestSuite) validRecipe() *Recipe {
	r, err := New(
		"user-1",
		"Calming Herbal Tea",
		[]string{"1 tsp chamomile flowers", "1 cup hot water"},
		[]string{"Steep for 5 minutes", "Strain and serve"},
		[]string{"Promotes relaxation"},
	)
	require.NoError(suite.T(), err)
	return r
}

func (suite *RecipeTestSuite) TestRecipeCreation() {
	suite.Run("ValidRecipe_ShouldCreateSuccessfully", func() {
		r := suite.validRecipe()

		assert.Equal(suite.T(), "user-1", r.UserID())
		assert.Equal(suite.T(), "Calming Herbal Tea", r.Name())
		assert.False(suite.T(), r.IsBookmarked())
		assert.NotZero(suite.T(), r.ID())
		assert.NotZero(suite.T(), r.CreatedAt())
	})

	suite.Run("EmptyUserID_ShouldReturnError", func() {
		_, err := New("", "Tea", []string{"water"}, []string{"boil"}, []string{"hydration"})
		assert.Equal(suite.T(), ErrEmptyUserID, err)
	})

	suite.Run("EmptyName_ShouldReturnError", func() {
		_, err := New("user-1", "", []string{"water"}, []string{"boil"}, []string{"hydration"})
		assert.Equal(suite.T(), ErrEmptyName, err)
	})

	suite.Run("MissingIngredients_ShouldReturnError", func() {
		_, err := New("user-1", "Tea", nil, []string{"boil"}, []string{"hydration"})
		assert.Equal(suite.T(), ErrNoIngredients, err)
	})

	suite.Run("MissingInstructions_ShouldReturnError", func() {
		_, err := New("user-1", "Tea", []string{"water"}, nil, []string{"hydration"})
		assert.Equal(suite.T(), ErrNoInstructions, err)
	})

	suite.Run("MissingBenefits_ShouldReturnError", func() {
		_, err := New("user-1", "Tea", []string{"water"}, []string{"boil"}, nil)
		assert.Equal(suite.T(), ErrNoBenefits, err)
	})
}

func (suite *RecipeTestSuite) TestBookmarking() {
	suite.Run("SetBookmarked_UpdatesFlagAndTimestamp", func() {
		r := suite.validRecipe()
		before := r.UpdatedAt()

		r.SetBookmarked(true)

		assert.True(suite.T(), r.IsBookmarked())
		assert.True(suite.T(), !r.UpdatedAt().Before(before))
	})

	suite.Run("SetBookmarked_SameValue_IsNoOp", func() {
		r := suite.validRecipe()
		r.SetBookmarked(true)
		stamp := r.UpdatedAt()

		r.SetBookmarked(true)

		assert.Equal(suite.T(), stamp, r.UpdatedAt())
	})
}

func (suite *RecipeTestSuite) TestRequirements() {
	r := suite.validRecipe()

	r.SetRequirements("headache, fatigue", "Migraine", "none", "tea only")
	r.SetDetails("Tea", "10 minutes", "One cup daily", []string{"Relaxation"})
	r.SetGeneratedBy("openai")

	assert.Equal(suite.T(), "headache, fatigue", r.Symptoms())
	assert.Equal(suite.T(), "Migraine", r.Conditions())
	assert.Equal(suite.T(), "Tea", r.Category())
	assert.Equal(suite.T(), "openai", r.GeneratedBy())
}

func TestRecipeTestSuite(t *testing.T) {
	suite.Run(t, new(RecipeTestSuite))
}
