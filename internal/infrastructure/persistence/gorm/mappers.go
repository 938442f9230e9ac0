package gorm

import (
	"fmt"
	"sort"
	"time"

	"github.com/vatika/v1/internal/domain/plant"
	"github.com/vatika/v1/internal/domain/recipe"
)

// PlantToModel converts a plant domain entity to a GORM model
func PlantToModel(p *plant.Plant, position int) *PlantModel {
	remedies := p.Remedies()
	records := make(RemedySlice, 0, len(remedies))
	for _, remedy := range remedies {
		records = append(records, RemedyRecord{
			Condition:     remedy.Condition,
			Effectiveness: remedy.Effectiveness,
			UsageNotes:    remedy.UsageNotes,
		})
	}
	sort.Slice(records, func(i, j int) bool {
		return records[i].Condition < records[j].Condition
	})

	return &PlantModel{
		ID:             p.ID(),
		Name:           p.Name(),
		ScientificName: p.ScientificName(),
		Description:    p.Description(),
		Uses:           StringSlice(p.Uses()),
		Regions:        StringSlice(p.Regions()),
		Conditions:     StringSlice(p.Conditions()),
		Category:       StringSlice(p.Category()),
		Remedies:       records,
		Position:       position,
	}
}

// ModelToPlant converts a GORM model back to a plant domain entity
func ModelToPlant(model *PlantModel) (*plant.Plant, error) {
	p, err := plant.New(model.ID, model.Name, model.ScientificName, model.Description)
	if err != nil {
		return nil, fmt.Errorf("plant %q: %w", model.ID, err)
	}

	for _, tag := range model.Uses {
		if err := p.AddUse(tag); err != nil {
			return nil, fmt.Errorf("plant %q use %q: %w", model.ID, tag, err)
		}
	}
	for _, tag := range model.Regions {
		if err := p.AddRegion(tag); err != nil {
			return nil, fmt.Errorf("plant %q region %q: %w", model.ID, tag, err)
		}
	}
	for _, tag := range model.Conditions {
		if err := p.AddCondition(tag); err != nil {
			return nil, fmt.Errorf("plant %q condition %q: %w", model.ID, tag, err)
		}
	}
	for _, tag := range model.Category {
		if err := p.AddCategory(tag); err != nil {
			return nil, fmt.Errorf("plant %q category %q: %w", model.ID, tag, err)
		}
	}

	for _, record := range model.Remedies {
		remedy := plant.Remedy{
			Condition:     record.Condition,
			Effectiveness: record.Effectiveness,
			UsageNotes:    record.UsageNotes,
		}
		if err := p.SetRemedy(remedy); err != nil {
			return nil, fmt.Errorf("plant %q remedy %q: %w", model.ID, record.Condition, err)
		}
	}

	return p, nil
}

// RecipeToModel converts a recipe domain entity to a GORM model
func RecipeToModel(r *recipe.Recipe) *RecipeModel {
	return &RecipeModel{
		ID:              r.ID(),
		UserID:          r.UserID(),
		Name:            r.Name(),
		Description:     r.Description(),
		Ingredients:     StringSlice(r.Ingredients()),
		Instructions:    StringSlice(r.Instructions()),
		Benefits:        StringSlice(r.Benefits()),
		Warnings:        StringSlice(r.Warnings()),
		Symptoms:        r.Symptoms(),
		Conditions:      r.Conditions(),
		Allergies:       r.Allergies(),
		Preferences:     r.Preferences(),
		Category:        r.Category(),
		PreparationTime: r.PreparationTime(),
		MedicinalUses:   StringSlice(r.MedicinalUses()),
		Dosage:          r.Dosage(),
		IsBookmarked:    r.IsBookmarked(),
		GeneratedBy:     r.GeneratedBy(),
		CreatedAt:       r.CreatedAt(),
		UpdatedAt:       r.UpdatedAt(),
	}
}

// ModelToRecipe converts a GORM model back to a recipe domain entity
func ModelToRecipe(model *RecipeModel) *recipe.Recipe {
	createdAt := model.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now()
	}
	updatedAt := model.UpdatedAt
	if updatedAt.IsZero() {
		updatedAt = createdAt
	}

	return recipe.Reconstitute(
		model.ID,
		model.UserID, model.Name, model.Description,
		model.Ingredients, model.Instructions, model.Benefits, model.Warnings,
		model.Symptoms, model.Conditions, model.Allergies, model.Preferences,
		model.Category, model.PreparationTime, model.Dosage,
		model.MedicinalUses,
		model.IsBookmarked,
		model.GeneratedBy,
		createdAt, updatedAt,
	)
}
