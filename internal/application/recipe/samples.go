package recipe

// sampleRecipes returns the built-in fallback recipes served when every
// generation provider is unavailable. Kept intentionally small and safe:
// common herbs, conservative dosages.
func sampleRecipes() []generatedRecipe {
	return []generatedRecipe{
		{
			Name:        "Calming Herbal Tea Blend",
			Description: "A soothing blend of calming herbs to help with stress and anxiety.",
			Ingredients: []string{
				"2 parts Chamomile flowers",
				"1 part Lavender buds",
				"1 part Lemon Balm leaves",
				"1/2 part Passionflower",
				"Honey to taste (optional)",
			},
			Instructions: []string{
				"Combine all dried herbs in a clean jar",
				"Use 1-2 teaspoons of blend per cup of hot water",
				"Steep for 5-10 minutes",
				"Strain and add honey if desired",
				"Drink 1-2 cups daily, especially before bedtime",
			},
			Benefits: []string{
				"Promotes relaxation",
				"Helps improve sleep quality",
				"Eases mild anxiety",
			},
			Warnings: []string{
				"Avoid if allergic to plants in the daisy family",
				"Consult a doctor if pregnant or nursing",
			},
			Category:        "Teas",
			PreparationTime: "5-10 minutes",
			MedicinalUses:   []string{"Stress Relief", "Sleep Aid", "Anxiety Relief"},
		},
		{
			Name:        "Immune Boost Infusion",
			Description: "An echinacea and ginger infusion for immune support during cold season.",
			Ingredients: []string{
				"1 tablespoon dried Echinacea root",
				"1 teaspoon freshly grated Ginger",
				"1 slice of Lemon",
				"Honey to taste",
			},
			Instructions: []string{
				"Simmer the echinacea root in 2 cups of water for 10 minutes",
				"Add the ginger and simmer 5 more minutes",
				"Strain into a cup",
				"Add lemon and honey",
			},
			Benefits: []string{
				"Supports immune function",
				"Soothes sore throat",
			},
			Warnings: []string{
				"Not for continuous long-term use",
				"Avoid with autoimmune conditions unless cleared by a doctor",
			},
			Category:        "Infusions",
			PreparationTime: "20 minutes",
			MedicinalUses:   []string{"Immune Support", "Cold & Flu Relief"},
		},
		{
			Name:        "Digestive Peppermint Tonic",
			Description: "A peppermint tonic that settles the stomach after meals.",
			Ingredients: []string{
				"1 tablespoon dried Peppermint leaves",
				"1/2 teaspoon Fennel seeds",
				"1 cup hot water",
			},
			Instructions: []string{
				"Lightly crush the fennel seeds",
				"Steep peppermint and fennel in hot water for 7 minutes",
				"Strain and sip slowly after meals",
			},
			Benefits: []string{
				"Eases bloating and indigestion",
				"Relieves mild nausea",
			},
			Warnings: []string{
				"May worsen acid reflux in some people",
			},
			Category:        "Teas",
			PreparationTime: "10 minutes",
			MedicinalUses:   []string{"Digestive Aid", "Nausea Relief"},
		},
	}
}
