package ports

import (
	"context"

	"github.com/m4rkovic/succulent-shop/internal/domains/orders/domain"
)

// PlaceOrderInput carries the order creation payload. IdempotencyKey is
// optional; when present, retried placements replay the original result.
type PlaceOrderInput struct {
	UserID         int64
	ProductIDs     []int64
	IdempotencyKey string
}

// Service exposes the order lifecycle use cases to adapters.
type Service interface {
	PlaceOrder(ctx context.Context, input PlaceOrderInput) (*domain.Order, error)
	GetByID(ctx context.Context, id int64) (*domain.Order, error)
	List(ctx context.Context) ([]*domain.Order, error)
	ListByUser(ctx context.Context, userID int64) ([]*domain.Order, error)
	UpdateStatus(ctx context.Context, id int64, status string) (*domain.Order, error)
	Delete(ctx context.Context, id int64) error
}
