package ports

import (
	"context"
	"errors"
)

// ErrPlantNotFound indicates a product referenced a plant that does not exist.
var ErrPlantNotFound = errors.New("plant not found")

// PlantResolver checks plant references against the plants collaborator. The
// catalog never owns plants; it only needs to know a reference resolves.
type PlantResolver interface {
	Resolve(ctx context.Context, id int64) error
}
