package catalog

import (
	"github.com/vatika/v1/internal/domain/plant"
	"github.com/vatika/v1/internal/ports/inbound"
)

func plantToDTO(p *plant.Plant) inbound.PlantDTO {
	return inbound.PlantDTO{
		ID:             p.ID(),
		Name:           p.Name(),
		ScientificName: p.ScientificName(),
		Description:    p.Description(),
		Uses:           p.Uses(),
		Regions:        p.Regions(),
		Conditions:     p.Conditions(),
		Category:       p.Category(),
	}
}

func plantsToDTOs(plants []*plant.Plant) []inbound.PlantDTO {
	dtos := make([]inbound.PlantDTO, 0, len(plants))
	for _, p := range plants {
		dtos = append(dtos, plantToDTO(p))
	}
	return dtos
}
