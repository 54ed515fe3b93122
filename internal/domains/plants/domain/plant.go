package domain

import (
	"errors"
	"strings"
)

var ErrEmptyName = errors.New("plant name is required")

// Plant is a referenced catalog collaborator. Products link to plants by
// identifier; the plant itself carries only descriptive attributes.
type Plant struct {
	ID          int64
	Name        string
	Color       string
	Description string
}

// NewPlant validates and builds a plant.
func NewPlant(name, color, description string) (*Plant, error) {
	if strings.TrimSpace(name) == "" {
		return nil, ErrEmptyName
	}
	return &Plant{Name: name, Color: color, Description: description}, nil
}
