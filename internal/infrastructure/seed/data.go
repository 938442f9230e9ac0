// Package seed carries the built-in medicinal plant dataset and loads
// it into empty stores at startup
package seed

import (
	"github.com/vatika/v1/internal/domain/plant"
)

// plantRecord is the raw shape of one built-in catalog entry
type plantRecord struct {
	id             string
	name           string
	scientificName string
	description    string
	uses           []string
	regions        []string
	conditions     []string
	category       []string
	remedies       []plant.Remedy
}

var records = []plantRecord{
	{
		id:             "ashwagandha",
		name:           "Ashwagandha",
		scientificName: "Withania somnifera",
		description:    "A powerful adaptogenic herb known for its stress-reducing and immune-boosting properties.",
		uses:           []string{"Stress Relief", "Immune Support", "Sleep Aid", "Energy Boost"},
		regions:        []string{"India", "North Africa", "Middle East"},
		conditions:     []string{"Anxiety", "Insomnia", "Stress", "Fatigue"},
		category:       []string{"Adaptogenic herbs", "Ayurvedic"},
		remedies: []plant.Remedy{
			{Condition: "Stress", Effectiveness: 5, UsageNotes: "300-500mg root extract daily, best taken with meals."},
			{Condition: "Anxiety", Effectiveness: 4, UsageNotes: "Consistent daily use for several weeks shows the strongest effect."},
		},
	},
	{
		id:             "turmeric",
		name:           "Turmeric",
		scientificName: "Curcuma longa",
		description:    "A vibrant spice with potent anti-inflammatory and antioxidant effects.",
		uses:           []string{"Anti-inflammatory", "Antioxidant", "Pain Relief", "Digestive Aid"},
		regions:        []string{"India", "Southeast Asia"},
		conditions:     []string{"Arthritis", "Inflammation", "Digestive Issues", "Skin Conditions"},
		category:       []string{"Spices", "Ayurvedic"},
		remedies: []plant.Remedy{
			{Condition: "Inflammation", Effectiveness: 5, UsageNotes: "Combine with black pepper to improve curcumin absorption."},
			{Condition: "Arthritis", Effectiveness: 4, UsageNotes: "500mg curcumin extract twice daily with food."},
		},
	},
	{
		id:             "ginger",
		name:           "Ginger",
		scientificName: "Zingiber officinale",
		description:    "A warming spice with anti-nausea and digestive benefits.",
		uses:           []string{"Nausea Relief", "Digestive Aid", "Anti-inflammatory", "Pain Relief"},
		regions:        []string{"Asia"},
		conditions:     []string{"Nausea", "Digestive Upset", "Motion Sickness", "Arthritis"},
		category:       []string{"Spices", "Ayurvedic"},
		remedies: []plant.Remedy{
			{Condition: "Nausea", Effectiveness: 5, UsageNotes: "Fresh ginger tea or 250mg capsules up to four times daily."},
		},
	},
	{
		id:             "garlic",
		name:           "Garlic",
		scientificName: "Allium sativum",
		description:    "A pungent bulb with antimicrobial and cardiovascular benefits.",
		uses:           []string{"Immune Support", "Cardiovascular Health", "Antimicrobial", "Anti-inflammatory"},
		regions:        []string{"Worldwide"},
		conditions:     []string{"High Blood Pressure", "Infections", "High Cholesterol", "Colds"},
		category:       []string{"Culinary herbs", "Traditional medicine"},
		remedies: []plant.Remedy{
			{Condition: "High Blood Pressure", Effectiveness: 3, UsageNotes: "Aged garlic extract daily; allow several weeks for effect."},
		},
	},
	{
		id:             "echinacea",
		name:           "Echinacea",
		scientificName: "Echinacea purpurea",
		description:    "A popular herb for boosting the immune system and fighting off colds and flu.",
		uses:           []string{"Immune Support", "Cold & Flu Relief", "Wound Healing"},
		regions:        []string{"North America"},
		conditions:     []string{"Colds", "Flu", "Infections", "Wounds"},
		category:       []string{"Immune herbs", "Native American medicine"},
		remedies: []plant.Remedy{
			{Condition: "Colds", Effectiveness: 4, UsageNotes: "Start at the first sign of symptoms; tincture or tea every few hours."},
		},
	},
	{
		id:             "peppermint",
		name:           "Peppermint",
		scientificName: "Mentha piperita",
		description:    "A refreshing herb that can soothe digestive issues and relieve headaches.",
		uses:           []string{"Digestive Aid", "Headache Relief", "Muscle Relaxant", "Decongestant"},
		regions:        []string{"Europe", "North America"},
		conditions:     []string{"Indigestion", "Headaches", "Muscle Pain", "Congestion"},
		category:       []string{"Aromatic herbs", "Essential oils"},
		remedies: []plant.Remedy{
			{Condition: "Indigestion", Effectiveness: 4, UsageNotes: "Tea after meals, or enteric-coated oil capsules for IBS-type symptoms."},
		},
	},
	{
		id:             "lavender",
		name:           "Lavender",
		scientificName: "Lavandula angustifolia",
		description:    "A fragrant herb known for its calming and relaxing properties.",
		uses:           []string{"Relaxation", "Sleep Aid", "Anxiety Relief", "Skin Healing"},
		regions:        []string{"Mediterranean"},
		conditions:     []string{"Anxiety", "Insomnia", "Stress", "Skin Irritation"},
		category:       []string{"Aromatic herbs", "Essential oils"},
		remedies: []plant.Remedy{
			{Condition: "Anxiety", Effectiveness: 3, UsageNotes: "Aromatherapy or tea before bed."},
		},
	},
	{
		id:             "chamomile",
		name:           "Chamomile",
		scientificName: "Matricaria chamomilla",
		description:    "A gentle herb with calming and anti-inflammatory effects.",
		uses:           []string{"Relaxation", "Sleep Aid", "Digestive Aid", "Anti-inflammatory"},
		regions:        []string{"Europe", "Asia", "North America"},
		conditions:     []string{"Anxiety", "Insomnia", "Digestive Upset", "Skin Irritation"},
		category:       []string{"Calming herbs", "Traditional medicine"},
		remedies: []plant.Remedy{
			{Condition: "Insomnia", Effectiveness: 4, UsageNotes: "One cup of strong tea 30 minutes before bed."},
			{Condition: "Anxiety", Effectiveness: 4, UsageNotes: "Two to three cups of tea daily."},
		},
	},
	{
		id:             "aloe-vera",
		name:           "Aloe Vera",
		scientificName: "Aloe barbadensis miller",
		description:    "A succulent plant known for its soothing and healing properties, especially for skin.",
		uses:           []string{"Skin Healing", "Wound Healing", "Digestive Aid", "Moisturizer"},
		regions:        []string{"Africa", "Mediterranean"},
		conditions:     []string{"Burns", "Sunburn", "Skin Irritation", "Constipation"},
		category:       []string{"Succulents", "Skin healing"},
		remedies: []plant.Remedy{
			{Condition: "Burns", Effectiveness: 5, UsageNotes: "Apply fresh gel directly to minor burns several times daily."},
		},
	},
	{
		id:             "milk-thistle",
		name:           "Milk Thistle",
		scientificName: "Silybum marianum",
		description:    "An herb traditionally used to support liver health.",
		uses:           []string{"Liver Support", "Detoxification", "Antioxidant"},
		regions:        []string{"Europe", "Mediterranean"},
		conditions:     []string{"Liver Disease", "Detoxification", "High Cholesterol"},
		category:       []string{"Liver herbs", "European herbs"},
	},
	{
		id:             "ginseng",
		name:           "Ginseng",
		scientificName: "Panax ginseng",
		description:    "A root known for its energy-boosting and cognitive-enhancing properties.",
		uses:           []string{"Energy Boost", "Cognitive Enhancement", "Immune Support", "Anti-inflammatory"},
		regions:        []string{"Asia"},
		conditions:     []string{"Fatigue", "Cognitive Decline", "Weak Immune System", "Inflammation"},
		category:       []string{"Adaptogenic herbs", "Traditional Chinese Medicine"},
		remedies: []plant.Remedy{
			{Condition: "Fatigue", Effectiveness: 4, UsageNotes: "200-400mg standardized extract in the morning."},
		},
	},
	{
		id:             "licorice-root",
		name:           "Licorice Root",
		scientificName: "Glycyrrhiza glabra",
		description:    "A sweet root with anti-inflammatory and immune-boosting properties. Use with caution.",
		uses:           []string{"Anti-inflammatory", "Immune Support", "Digestive Aid", "Sore Throat Relief"},
		regions:        []string{"Europe", "Asia"},
		conditions:     []string{"Inflammation", "Digestive Issues", "Sore Throat", "Adrenal Fatigue"},
		category:       []string{"Root herbs", "Traditional medicine"},
	},
	{
		id:             "valerian-root",
		name:           "Valerian Root",
		scientificName: "Valeriana officinalis",
		description:    "A root used as a natural sleep aid and to reduce anxiety.",
		uses:           []string{"Sleep Aid", "Anxiety Relief", "Muscle Relaxant"},
		regions:        []string{"Europe", "Asia"},
		conditions:     []string{"Insomnia", "Anxiety", "Muscle Spasms"},
		category:       []string{"Sleep herbs", "European herbs"},
		remedies: []plant.Remedy{
			{Condition: "Insomnia", Effectiveness: 5, UsageNotes: "400-600mg root extract an hour before bed. Avoid combining with sedatives."},
		},
	},
	{
		id:             "st-johns-wort",
		name:           "St. John's Wort",
		scientificName: "Hypericum perforatum",
		description:    "An herb traditionally used to treat mild to moderate depression. Can interact with medications.",
		uses:           []string{"Mood Support", "Nerve Pain Relief", "Wound Healing"},
		regions:        []string{"Europe", "Asia", "North America"},
		conditions:     []string{"Depression", "Nerve Pain", "Wounds"},
		category:       []string{"Mood herbs", "European herbs"},
	},
	{
		id:             "calendula",
		name:           "Calendula",
		scientificName: "Calendula officinalis",
		description:    "A flower known for its skin-healing and anti-inflammatory properties.",
		uses:           []string{"Skin Healing", "Anti-inflammatory", "Wound Healing"},
		regions:        []string{"Mediterranean"},
		conditions:     []string{"Skin Irritation", "Wounds", "Burns", "Eczema"},
		category:       []string{"Skin herbs", "Flower herbs"},
	},
	{
		id:             "dandelion",
		name:           "Dandelion",
		scientificName: "Taraxacum officinale",
		description:    "A common 'weed' with diuretic and liver-supporting properties.",
		uses:           []string{"Diuretic", "Liver Support", "Digestive Aid", "Nutrient Source"},
		regions:        []string{"Worldwide"},
		conditions:     []string{"Fluid Retention", "Liver Congestion", "Digestive Issues"},
		category:       []string{"Wild herbs", "Traditional medicine"},
	},
	{
		id:             "hawthorn",
		name:           "Hawthorn",
		scientificName: "Crataegus spp.",
		description:    "A shrub with berries used to support cardiovascular health.",
		uses:           []string{"Cardiovascular Health", "Blood Pressure Regulation", "Antioxidant"},
		regions:        []string{"Europe", "North America"},
		conditions:     []string{"High Blood Pressure", "Heart Failure", "Arrhythmia"},
		category:       []string{"Heart herbs", "Berry herbs"},
	},
	{
		id:             "senna",
		name:           "Senna",
		scientificName: "Senna alexandrina",
		description:    "A powerful laxative herb. Use with caution and only for short-term constipation.",
		uses:           []string{"Laxative"},
		regions:        []string{"Africa", "Asia"},
		conditions:     []string{"Constipation"},
		category:       []string{"Digestive herbs", "Traditional medicine"},
	},
	{
		id:             "psyllium",
		name:           "Psyllium",
		scientificName: "Plantago ovata",
		description:    "A source of soluble fiber used to promote bowel regularity and lower cholesterol.",
		uses:           []string{"Fiber Supplement", "Laxative", "Cholesterol Reduction"},
		regions:        []string{"India", "Mediterranean"},
		conditions:     []string{"Constipation", "High Cholesterol", "Irritable Bowel Syndrome (IBS)"},
		category:       []string{"Fiber herbs", "Digestive herbs"},
	},
}

// Plants builds the built-in catalog as domain entities in dataset order
func Plants() ([]*plant.Plant, error) {
	plants := make([]*plant.Plant, 0, len(records))
	for _, record := range records {
		p, err := plant.New(record.id, record.name, record.scientificName, record.description)
		if err != nil {
			return nil, err
		}

		for _, tag := range record.uses {
			if err := p.AddUse(tag); err != nil {
				return nil, err
			}
		}
		for _, tag := range record.regions {
			if err := p.AddRegion(tag); err != nil {
				return nil, err
			}
		}
		for _, tag := range record.conditions {
			if err := p.AddCondition(tag); err != nil {
				return nil, err
			}
		}
		for _, tag := range record.category {
			if err := p.AddCategory(tag); err != nil {
				return nil, err
			}
		}
		for _, remedy := range record.remedies {
			if err := p.SetRemedy(remedy); err != nil {
				return nil, err
			}
		}

		plants = append(plants, p)
	}

	return plants, nil
}
