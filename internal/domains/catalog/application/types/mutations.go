// Package types holds the presence-preserving command shapes for the catalog
// use cases. Pointer fields distinguish an absent attribute from an
// explicitly supplied one, giving partial updates PATCH semantics instead of
// blank-string probing.
package types

// ProductMutationInput captures inbound product payloads for create and
// update flows. Enum attributes stay strings here; parsing happens in the
// application layer so every call site shares one validation path.
type ProductMutationInput struct {
	ID          int64
	Name        *string
	Description *string
	Price       *float64
	ProductType *string
	IsPot       *bool
	PotSize     *string
	PotType     *string
	PotNumber   *int
	ToolType    *string
	PlantID     *int64
}

// CreateProductInput wraps a mutation used to build a new product.
type CreateProductInput struct {
	ProductMutationInput
}

// UpdateProductInput wraps a mutation merged into an existing product.
type UpdateProductInput struct {
	ProductMutationInput
}
