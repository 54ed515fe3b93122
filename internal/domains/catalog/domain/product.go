package domain

import (
	"errors"
	"strings"
)

var (
	ErrEmptyName       = errors.New("product name is required")
	ErrInvalidPrice    = errors.New("product price must not be negative")
	ErrVariantConflict = errors.New("product cannot be both a pot and a tool")
	ErrIncompletePot   = errors.New("pot products require a size and a type")
	ErrNotAPot         = errors.New("product is not a pot")
	ErrNotATool        = errors.New("product is not a tool")
)

// PotDetails carries the attribute set meaningful only for pot products.
// Size and Type may be unset when the catalog runs in lenient mode.
type PotDetails struct {
	Size   PotSize
	Type   PotType
	Number int
}

// ToolDetails carries the attribute set meaningful only for tool products.
type ToolDetails struct {
	Type ToolType
}

// Product is a catalog item. The Pot/Tool pointers form a tagged variant: at
// most one is non-nil, replacing the flat record with an isPot discriminator
// flag guarding nullable columns.
type Product struct {
	ID          int64
	Name        string
	Description string
	Price       float64
	Type        ProductType
	PlantID     *int64
	Pot         *PotDetails
	Tool        *ToolDetails
}

// NewProduct validates the shared invariants and builds a plain product with
// no variant attached.
func NewProduct(id int64, name string) (*Product, error) {
	p := &Product{ID: id}
	if err := p.Rename(name); err != nil {
		return nil, err
	}
	return p, nil
}

// Rename mutates the product name ensuring it stays non-blank.
func (p *Product) Rename(name string) error {
	if strings.TrimSpace(name) == "" {
		return ErrEmptyName
	}
	p.Name = name
	return nil
}

// UpdateDescription replaces the free-form description.
func (p *Product) UpdateDescription(desc string) {
	p.Description = desc
}

// UpdatePrice stores the price, rejecting negative values.
func (p *Product) UpdatePrice(price float64) error {
	if price < 0 {
		return ErrInvalidPrice
	}
	p.Price = price
	return nil
}

// UpdateType sets the catalog category.
func (p *Product) UpdateType(t ProductType) {
	p.Type = t
}

// AttachPlant links the product to a plant by identifier; nil detaches.
func (p *Product) AttachPlant(id *int64) {
	if id == nil {
		p.PlantID = nil
		return
	}
	value := *id
	p.PlantID = &value
}

// MakePot attaches pot details. Fails when the product already is a tool.
func (p *Product) MakePot(details PotDetails) error {
	if p.Tool != nil {
		return ErrVariantConflict
	}
	copy := details
	p.Pot = &copy
	return nil
}

// MakeTool attaches tool details. Fails when the product already is a pot.
func (p *Product) MakeTool(details ToolDetails) error {
	if p.Pot != nil {
		return ErrVariantConflict
	}
	copy := details
	p.Tool = &copy
	return nil
}

// IsPot reports whether the pot variant is attached.
func (p *Product) IsPot() bool {
	return p.Pot != nil
}

// ValidatePot enforces the pot attribute requirement. In lenient mode a pot
// with missing size or type is tolerated, matching the historically observed
// behavior; strict mode rejects it.
func (p *Product) ValidatePot(strict bool) error {
	if p.Pot == nil || !strict {
		return nil
	}
	if p.Pot.Size == "" || p.Pot.Type == "" {
		return ErrIncompletePot
	}
	return nil
}
