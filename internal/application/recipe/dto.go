package recipe

import (
	"time"

	"github.com/vatika/v1/internal/domain/recipe"
	"github.com/vatika/v1/internal/ports/inbound"
)

func entityToDTO(r *recipe.Recipe) inbound.RecipeDTO {
	return inbound.RecipeDTO{
		ID:              r.ID(),
		UserID:          r.UserID(),
		Name:            r.Name(),
		Description:     r.Description(),
		Ingredients:     r.Ingredients(),
		Instructions:    r.Instructions(),
		Benefits:        r.Benefits(),
		Warnings:        r.Warnings(),
		Symptoms:        r.Symptoms(),
		Conditions:      r.Conditions(),
		Allergies:       r.Allergies(),
		Preferences:     r.Preferences(),
		Category:        r.Category(),
		PreparationTime: r.PreparationTime(),
		MedicinalUses:   r.MedicinalUses(),
		Dosage:          r.Dosage(),
		IsBookmarked:    r.IsBookmarked(),
		GeneratedBy:     r.GeneratedBy(),
		CreatedAt:       r.CreatedAt().Format(time.RFC3339),
		UpdatedAt:       r.UpdatedAt().Format(time.RFC3339),
	}
}

func entitiesToDTOs(recipes []*recipe.Recipe) []inbound.RecipeDTO {
	dtos := make([]inbound.RecipeDTO, 0, len(recipes))
	for _, r := range recipes {
		dtos = append(dtos, entityToDTO(r))
	}
	return dtos
}
