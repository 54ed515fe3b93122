package mapper

import plantsdomain "github.com/m4rkovic/succulent-shop/internal/domains/plants/domain"

// Plant is the transport-layer representation of a plant.
type Plant struct {
	ID          int64  `json:"id,omitempty"`
	Name        string `json:"name"`
	Color       string `json:"color,omitempty"`
	Description string `json:"description,omitempty"`
}

// FromDomainPlant converts a domain plant to the transport representation.
func FromDomainPlant(plant *plantsdomain.Plant) Plant {
	if plant == nil {
		return Plant{}
	}
	return Plant{
		ID:          plant.ID,
		Name:        plant.Name,
		Color:       plant.Color,
		Description: plant.Description,
	}
}

// FromDomainPlantList maps a slice of domain plants to transport plants.
// A nil input yields an empty slice.
func FromDomainPlantList(plants []*plantsdomain.Plant) []Plant {
	result := make([]Plant, 0, len(plants))
	for _, plant := range plants {
		result = append(result, FromDomainPlant(plant))
	}
	return result
}
