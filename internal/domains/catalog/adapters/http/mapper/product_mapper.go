package mapper

import (
	catalogtypes "github.com/m4rkovic/succulent-shop/internal/domains/catalog/application/types"
	"github.com/m4rkovic/succulent-shop/internal/domains/catalog/domain"
)

// Product is the flat transport representation of a catalog item. Enum
// attributes travel as strings and the pot/tool split collapses into the
// isPot discriminator, preserving the historical wire contract.
type Product struct {
	ID          int64    `json:"id,omitempty"`
	Name        string   `json:"productName"`
	Description string   `json:"productDesc,omitempty"`
	Price       *float64 `json:"price,omitempty"`
	ProductType string   `json:"productType,omitempty"`
	IsPot       bool     `json:"isPot"`
	PotSize     string   `json:"potSize,omitempty"`
	PotType     string   `json:"potType,omitempty"`
	PotNumber   int      `json:"potNumber,omitempty"`
	ToolType    string   `json:"toolType,omitempty"`
	PlantID     *int64   `json:"plantId,omitempty"`
}

// MutationProduct captures inbound payloads for create/update flows while
// preserving field presence: a nil pointer means the attribute was absent.
type MutationProduct struct {
	ID          int64    `json:"id,omitempty"`
	Name        *string  `json:"productName,omitempty"`
	Description *string  `json:"productDesc,omitempty"`
	Price       *float64 `json:"price,omitempty"`
	ProductType *string  `json:"productType,omitempty"`
	IsPot       *bool    `json:"isPot,omitempty"`
	PotSize     *string  `json:"potSize,omitempty"`
	PotType     *string  `json:"potType,omitempty"`
	PotNumber   *int     `json:"potNumber,omitempty"`
	ToolType    *string  `json:"toolType,omitempty"`
	PlantID     *int64   `json:"plantId,omitempty"`
}

// ToMutationInput converts a transport mutation into the application command
// shape, cloning pointers so transport buffers are never aliased.
func ToMutationInput(model MutationProduct) catalogtypes.ProductMutationInput {
	return catalogtypes.ProductMutationInput{
		ID:          model.ID,
		Name:        cloneString(model.Name),
		Description: cloneString(model.Description),
		Price:       cloneFloat(model.Price),
		ProductType: cloneString(model.ProductType),
		IsPot:       cloneBool(model.IsPot),
		PotSize:     cloneString(model.PotSize),
		PotType:     cloneString(model.PotType),
		PotNumber:   cloneInt(model.PotNumber),
		ToolType:    cloneString(model.ToolType),
		PlantID:     cloneInt64(model.PlantID),
	}
}

// FromDomainProduct projects a product aggregate onto the flat transport
// shape. Unset enums become empty strings and the variant collapses into the
// discriminator plus its attribute set.
func FromDomainProduct(p *domain.Product) Product {
	if p == nil {
		return Product{}
	}
	price := p.Price
	out := Product{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Price:       &price,
		ProductType: string(p.Type),
		IsPot:       p.IsPot(),
		PlantID:     cloneInt64(p.PlantID),
	}
	if p.Pot != nil {
		out.PotSize = string(p.Pot.Size)
		out.PotType = string(p.Pot.Type)
		out.PotNumber = p.Pot.Number
	}
	if p.Tool != nil {
		out.ToolType = string(p.Tool.Type)
	}
	return out
}

// FromDomainProductList maps a slice of aggregates to transport products.
// A nil input yields an empty slice, not an error.
func FromDomainProductList(list []*domain.Product) []Product {
	result := make([]Product, 0, len(list))
	for _, p := range list {
		result = append(result, FromDomainProduct(p))
	}
	return result
}

// ToMutationFromProduct reinterprets a full transport product as a mutation,
// used when callers submit complete representations to the create flow.
func ToMutationFromProduct(model Product) MutationProduct {
	mutation := MutationProduct{ID: model.ID, Price: cloneFloat(model.Price), PlantID: cloneInt64(model.PlantID)}
	isPot := model.IsPot
	mutation.IsPot = &isPot
	if model.Name != "" {
		name := model.Name
		mutation.Name = &name
	}
	if model.Description != "" {
		desc := model.Description
		mutation.Description = &desc
	}
	if model.ProductType != "" {
		pt := model.ProductType
		mutation.ProductType = &pt
	}
	if model.PotSize != "" {
		size := model.PotSize
		mutation.PotSize = &size
	}
	if model.PotType != "" {
		potType := model.PotType
		mutation.PotType = &potType
	}
	if model.IsPot {
		number := model.PotNumber
		mutation.PotNumber = &number
	}
	if model.ToolType != "" {
		toolType := model.ToolType
		mutation.ToolType = &toolType
	}
	return mutation
}

func cloneString(value *string) *string {
	if value == nil {
		return nil
	}
	copy := *value
	return &copy
}

func cloneFloat(value *float64) *float64 {
	if value == nil {
		return nil
	}
	copy := *value
	return &copy
}

func cloneBool(value *bool) *bool {
	if value == nil {
		return nil
	}
	copy := *value
	return &copy
}

func cloneInt(value *int) *int {
	if value == nil {
		return nil
	}
	copy := *value
	return &copy
}

func cloneInt64(value *int64) *int64 {
	if value == nil {
		return nil
	}
	copy := *value
	return &copy
}
