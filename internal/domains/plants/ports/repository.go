package ports

import (
	"context"
	"errors"

	"github.com/m4rkovic/succulent-shop/internal/domains/plants/domain"
)

// ErrNotFound signals the plant does not exist.
var ErrNotFound = errors.New("plant not found")

// Repository abstracts plant persistence.
type Repository interface {
	Save(ctx context.Context, plant *domain.Plant) (*domain.Plant, error)
	GetByID(ctx context.Context, id int64) (*domain.Plant, error)
	List(ctx context.Context) ([]*domain.Plant, error)
	Delete(ctx context.Context, id int64) error
}

// Service exposes the plant use cases to adapters.
type Service interface {
	Create(ctx context.Context, name, color, description string) (*domain.Plant, error)
	GetByID(ctx context.Context, id int64) (*domain.Plant, error)
	List(ctx context.Context) ([]*domain.Plant, error)
	Delete(ctx context.Context, id int64) error
}
