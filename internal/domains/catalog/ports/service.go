package ports

import (
	"context"

	"github.com/m4rkovic/succulent-shop/internal/domains/catalog/application/types"
	"github.com/m4rkovic/succulent-shop/internal/domains/catalog/domain"
)

// Service exposes the catalog use cases to adapters.
type Service interface {
	CreateProduct(ctx context.Context, input types.CreateProductInput) (*domain.Product, error)
	UpdateProduct(ctx context.Context, input types.UpdateProductInput) (*domain.Product, error)
	GetByID(ctx context.Context, id int64) (*domain.Product, error)
	List(ctx context.Context) ([]*domain.Product, error)
	Delete(ctx context.Context, id int64) error
}
