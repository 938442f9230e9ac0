package plant

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

// PlantTestSuite provides a test suite for the Plant entity
type PlantTestSuite struct {
	suite.Suite
}

func (suite *PlantTestSuite) TestPlantCreation() {
	suite.Run("ValidPlant_ShouldCreateSuccessfully", func() {
		p, err := New("ashwagandha", "Ashwagandha", "Withania somnifera", "An adaptogenic herb.")

		require.NoError(suite.T(), err)
		require.NotNil(suite.T(), p)

		assert.Equal(suite.T(), "ashwagandha", p.ID())
		assert.Equal(suite.T(), "Ashwagandha", p.Name())
		assert.Equal(suite.T(), "Withania somnifera", p.ScientificName())
		assert.Empty(suite.T(), p.Uses())
	})

	suite.Run("EmptyID_ShouldReturnError", func() {
		p, err := New("  ", "Ashwagandha", "Withania somnifera", "")

		assert.Nil(suite.T(), p)
		assert.Equal(suite.T(), ErrEmptyID, err)
	})

	suite.Run("EmptyName_ShouldReturnError", func() {
		p, err := New("ashwagandha", "", "Withania somnifera", "")

		assert.Nil(suite.T(), p)
		assert.Equal(suite.T(), ErrEmptyName, err)
	})

	suite.Run("EmptyScientificName_ShouldReturnError", func() {
		p, err := New("ashwagandha", "Ashwagandha", "", "")

		assert.Nil(suite.T(), p)
		assert.Equal(suite.T(), ErrEmptyScientificName, err)
	})
}

func (suite *PlantTestSuite) TestFacetTags() {
	suite.Run("TagsPreserveInsertionOrder", func() {
		p, err := New("turmeric", "Turmeric", "Curcuma longa", "")
		require.NoError(suite.T(), err)

		require.NoError(suite.T(), p.AddUse("Anti-inflammatory"))
		require.NoError(suite.T(), p.AddUse("Antioxidant"))
		require.NoError(suite.T(), p.AddUse("Pain Relief"))

		assert.Equal(suite.T(), []string{"Anti-inflammatory", "Antioxidant", "Pain Relief"}, p.Uses())
	})

	suite.Run("DuplicateTag_CaseInsensitive_ShouldReturnError", func() {
		p, err := New("turmeric", "Turmeric", "Curcuma longa", "")
		require.NoError(suite.T(), err)

		require.NoError(suite.T(), p.AddCondition("Arthritis"))
		err = p.AddCondition("ARTHRITIS")

		assert.Equal(suite.T(), ErrDuplicateTag, err)
		assert.Len(suite.T(), p.Conditions(), 1)
	})

	suite.Run("TagsByFacetType", func() {
		p, err := New("ginger", "Ginger", "Zingiber officinale", "")
		require.NoError(suite.T(), err)

		require.NoError(suite.T(), p.AddRegion("Asia"))
		require.NoError(suite.T(), p.AddCondition("Nausea"))
		require.NoError(suite.T(), p.AddCategory("Spices"))

		assert.Equal(suite.T(), []string{"Asia"}, p.Tags(FacetRegion))
		assert.Equal(suite.T(), []string{"Nausea"}, p.Tags(FacetCondition))
		assert.Equal(suite.T(), []string{"Spices"}, p.Tags(FacetCategory))
		assert.Nil(suite.T(), p.Tags(FacetType("bogus")))
	})
}

func (suite *PlantTestSuite) TestRemedies() {
	suite.Run("SetRemedy_AddsConditionFacet", func() {
		p, err := New("valerian-root", "Valerian Root", "Valeriana officinalis", "")
		require.NoError(suite.T(), err)

		err = p.SetRemedy(Remedy{Condition: "Insomnia", Effectiveness: 5, UsageNotes: "Before bed."})
		require.NoError(suite.T(), err)

		assert.Contains(suite.T(), p.Conditions(), "Insomnia")
		assert.Equal(suite.T(), 5, p.Effectiveness("insomnia"))

		remedy, ok := p.Remedy("INSOMNIA")
		require.True(suite.T(), ok)
		assert.Equal(suite.T(), "Before bed.", remedy.UsageNotes)
	})

	suite.Run("SetRemedy_ExistingCondition_NoDuplicateFacet", func() {
		p, err := New("chamomile", "Chamomile", "Matricaria chamomilla", "")
		require.NoError(suite.T(), err)
		require.NoError(suite.T(), p.AddCondition("Anxiety"))

		err = p.SetRemedy(Remedy{Condition: "anxiety", Effectiveness: 4})
		require.NoError(suite.T(), err)

		assert.Len(suite.T(), p.Conditions(), 1)
		assert.Equal(suite.T(), 4, p.Effectiveness("Anxiety"))
	})

	suite.Run("InvalidEffectiveness_ShouldReturnError", func() {
		p, err := New("chamomile", "Chamomile", "Matricaria chamomilla", "")
		require.NoError(suite.T(), err)

		err = p.SetRemedy(Remedy{Condition: "Anxiety", Effectiveness: 6})
		assert.Equal(suite.T(), ErrInvalidEffectiveness, err)
	})

	suite.Run("UnsetEffectiveness_IsZero", func() {
		p, err := New("senna", "Senna", "Senna alexandrina", "")
		require.NoError(suite.T(), err)
		require.NoError(suite.T(), p.AddCondition("Constipation"))

		assert.Equal(suite.T(), 0, p.Effectiveness("Constipation"))
	})
}

func (suite *PlantTestSuite) TestValidate() {
	suite.Run("ValidPlant_ShouldPass", func() {
		p, err := New("garlic", "Garlic", "Allium sativum", "")
		require.NoError(suite.T(), err)
		require.NoError(suite.T(), p.AddUse("Immune Support"))

		assert.NoError(suite.T(), p.Validate())
	})
}

func TestPlantTestSuite(t *testing.T) {
	suite.Run(t, new(PlantTestSuite))
}

func TestNormalizeTag(t *testing.T) {
	assert.Equal(t, "stress relief", NormalizeTag("  Stress Relief "))
	assert.Equal(t, "", NormalizeTag("   "))
}

func TestParseFacetType(t *testing.T) {
	for _, name := range []string{"region", "condition", "use", "category"} {
		facet, err := ParseFacetType(name)
		require.NoError(t, err)
		assert.Equal(t, name, string(facet))
	}

	_, err := ParseFacetType("color")
	assert.Equal(t, ErrInvalidFacetType, err)
}
