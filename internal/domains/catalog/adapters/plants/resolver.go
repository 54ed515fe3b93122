// Package plants adapts the plants context onto the catalog's PlantResolver
// port so product mutations can verify plant references.
package plants

import (
	"context"
	"errors"
	"fmt"

	catalogports "github.com/m4rkovic/succulent-shop/internal/domains/catalog/ports"
	plantsports "github.com/m4rkovic/succulent-shop/internal/domains/plants/ports"
)

var _ catalogports.PlantResolver = (*Resolver)(nil)

// Resolver answers plant existence checks against the plants service.
type Resolver struct {
	plants plantsports.Service
}

func NewResolver(plants plantsports.Service) *Resolver {
	return &Resolver{plants: plants}
}

func (r *Resolver) Resolve(ctx context.Context, id int64) error {
	if r.plants == nil {
		return catalogports.ErrPlantNotFound
	}
	if _, err := r.plants.GetByID(ctx, id); err != nil {
		if errors.Is(err, plantsports.ErrNotFound) {
			return fmt.Errorf("%w: id %d", catalogports.ErrPlantNotFound, id)
		}
		return err
	}
	return nil
}
