package mapper

import (
	"time"

	ordersdomain "github.com/m4rkovic/succulent-shop/internal/domains/orders/domain"
)

// Order is the transport-layer representation of an order.
type Order struct {
	ID         int64     `json:"id"`
	UserID     int64     `json:"userId"`
	ProductIDs []int64   `json:"productsIds"`
	Reference  string    `json:"reference,omitempty"`
	Status     string    `json:"status"`
	CreatedAt  time.Time `json:"createdAt,omitempty"`
}

// PlaceOrderRequest captures the creation payload.
type PlaceOrderRequest struct {
	UserID     int64   `json:"userId"`
	ProductIDs []int64 `json:"productsIds"`
}

// UpdateStatusRequest captures the status transition payload.
type UpdateStatusRequest struct {
	Status string `json:"status"`
}

// FromDomainOrder converts a domain order to the transport representation.
func FromDomainOrder(order *ordersdomain.Order) Order {
	if order == nil {
		return Order{}
	}
	return Order{
		ID:         order.ID,
		UserID:     order.UserID,
		ProductIDs: append([]int64{}, order.ProductIDs...),
		Reference:  order.Reference,
		Status:     string(order.Status),
		CreatedAt:  order.CreatedAt,
	}
}

// FromDomainOrderList maps a slice of domain orders to transport orders.
// A nil input yields an empty slice.
func FromDomainOrderList(orders []*ordersdomain.Order) []Order {
	result := make([]Order, 0, len(orders))
	for _, order := range orders {
		result = append(result, FromDomainOrder(order))
	}
	return result
}
