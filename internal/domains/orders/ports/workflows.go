package ports

import (
	"context"

	"github.com/m4rkovic/succulent-shop/internal/domains/orders/domain"
)

// WorkflowOrchestrator starts the order placement flow, either inline or on a
// durable execution backend.
type WorkflowOrchestrator interface {
	PlaceOrder(ctx context.Context, input PlaceOrderInput) (*domain.Order, error)
}
