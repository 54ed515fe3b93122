package ports

import (
	"context"
	"errors"

	"github.com/m4rkovic/succulent-shop/internal/domains/catalog/domain"
)

var ErrNotFound = errors.New("product not found")

// Repository persists product aggregates.
type Repository interface {
	Save(ctx context.Context, product *domain.Product) (*domain.Product, error)
	GetByID(ctx context.Context, id int64) (*domain.Product, error)
	Delete(ctx context.Context, id int64) error
	List(ctx context.Context) ([]*domain.Product, error)
}
