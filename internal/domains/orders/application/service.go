package application

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/m4rkovic/succulent-shop/internal/domains/orders/domain"
	"github.com/m4rkovic/succulent-shop/internal/domains/orders/ports"
)

// Service orchestrates the order lifecycle use cases.
type Service struct {
	repo        ports.Repository
	idempotency ports.IdempotencyStore
	now         func() time.Time
}

// Option customizes the service construction.
type Option func(*Service)

// WithIdempotencyStore enables replay-safe order placement.
func WithIdempotencyStore(store ports.IdempotencyStore) Option {
	return func(s *Service) {
		s.idempotency = store
	}
}

// WithClock overrides the time source for deterministic testing.
func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		if now != nil {
			s.now = now
		}
	}
}

// NewService wires the orders service with its dependencies.
func NewService(repo ports.Repository, opts ...Option) *Service {
	s := &Service{repo: repo, now: time.Now}
	for _, opt := range opts {
		if opt != nil {
			opt(s)
		}
	}
	return s
}

// PlaceOrder validates the creation input and persists a new order in the
// ORDERED status. Validation happens before any write; invalid input persists
// nothing. When an idempotency key is supplied, retries replay the original
// order and mismatched payloads fail with ports.ErrIdempotencyConflict.
func (s *Service) PlaceOrder(ctx context.Context, input ports.PlaceOrderInput) (*domain.Order, error) {
	if input.IdempotencyKey != "" && s.idempotency != nil {
		return s.placeOrderIdempotent(ctx, input)
	}
	return s.placeOrder(ctx, input)
}

func (s *Service) placeOrder(ctx context.Context, input ports.PlaceOrderInput) (*domain.Order, error) {
	order, err := domain.NewOrder(input.UserID, input.ProductIDs)
	if err != nil {
		return nil, mapError(err)
	}
	order.Reference = uuid.NewString()
	order.CreatedAt = s.now().UTC()
	return s.repo.Save(ctx, order)
}

func (s *Service) placeOrderIdempotent(ctx context.Context, input ports.PlaceOrderInput) (*domain.Order, error) {
	hash, err := FingerprintPlaceOrder(input)
	if err != nil {
		return nil, err
	}
	if record, err := s.idempotency.Get(ctx, input.IdempotencyKey); err != nil {
		return nil, err
	} else if record != nil {
		if record.RequestHash != hash {
			return nil, ports.ErrIdempotencyConflict
		}
		return s.repo.GetByID(ctx, record.OrderID)
	}
	order, err := s.placeOrder(ctx, input)
	if err != nil {
		return nil, err
	}
	record := ports.IdempotencyRecord{
		Key:         input.IdempotencyKey,
		RequestHash: hash,
		OrderID:     order.ID,
	}
	if _, err := s.idempotency.Save(ctx, record); err != nil {
		return nil, err
	}
	return order, nil
}

// GetByID loads a single order.
func (s *Service) GetByID(ctx context.Context, id int64) (*domain.Order, error) {
	return s.repo.GetByID(ctx, id)
}

// List returns all orders.
func (s *Service) List(ctx context.Context) ([]*domain.Order, error) {
	return s.repo.List(ctx)
}

// ListByUser returns the orders owned by a user.
func (s *Service) ListByUser(ctx context.Context, userID int64) ([]*domain.Order, error) {
	return s.repo.ListByUser(ctx, userID)
}

// UpdateStatus parses the status code and moves the order to it. Unknown
// codes and transitions out of terminal statuses are rejected before the
// order is written back.
func (s *Service) UpdateStatus(ctx context.Context, id int64, status string) (*domain.Order, error) {
	parsed, err := domain.ParseStatus(status)
	if err != nil {
		return nil, mapError(err)
	}
	order, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := order.TransitionTo(parsed); err != nil {
		return nil, mapError(err)
	}
	return s.repo.Save(ctx, order)
}

// Delete removes an order permanently.
func (s *Service) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}

var _ ports.Service = (*Service)(nil)
