package application

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/m4rkovic/succulent-shop/internal/domains/orders/domain"
	"github.com/m4rkovic/succulent-shop/internal/domains/orders/ports"
)

type fakeOrderRepo struct {
	orders map[int64]*domain.Order
	nextID int64
}

func newFakeOrderRepo() *fakeOrderRepo {
	return &fakeOrderRepo{orders: map[int64]*domain.Order{}}
}

func (f *fakeOrderRepo) Save(_ context.Context, order *domain.Order) (*domain.Order, error) {
	clone := *order
	if clone.ID == 0 {
		f.nextID++
		clone.ID = f.nextID
	}
	f.orders[clone.ID] = &clone
	saved := clone
	return &saved, nil
}

func (f *fakeOrderRepo) GetByID(_ context.Context, id int64) (*domain.Order, error) {
	if o, ok := f.orders[id]; ok {
		clone := *o
		return &clone, nil
	}
	return nil, ports.ErrNotFound
}

func (f *fakeOrderRepo) Delete(_ context.Context, id int64) error {
	if _, ok := f.orders[id]; !ok {
		return ports.ErrNotFound
	}
	delete(f.orders, id)
	return nil
}

func (f *fakeOrderRepo) List(_ context.Context) ([]*domain.Order, error) {
	var list []*domain.Order
	for _, o := range f.orders {
		clone := *o
		list = append(list, &clone)
	}
	return list, nil
}

func (f *fakeOrderRepo) ListByUser(_ context.Context, userID int64) ([]*domain.Order, error) {
	var list []*domain.Order
	for _, o := range f.orders {
		if o.UserID == userID {
			clone := *o
			list = append(list, &clone)
		}
	}
	return list, nil
}

type fakeIdempotencyStore struct {
	records map[string]ports.IdempotencyRecord
}

func newFakeIdempotencyStore() *fakeIdempotencyStore {
	return &fakeIdempotencyStore{records: map[string]ports.IdempotencyRecord{}}
}

func (f *fakeIdempotencyStore) Get(_ context.Context, key string) (*ports.IdempotencyRecord, error) {
	if rec, ok := f.records[key]; ok {
		clone := rec
		return &clone, nil
	}
	return nil, nil
}

func (f *fakeIdempotencyStore) Save(_ context.Context, record ports.IdempotencyRecord) (*ports.IdempotencyRecord, error) {
	if existing, ok := f.records[record.Key]; ok {
		clone := existing
		if existing.RequestHash != record.RequestHash || existing.OrderID != record.OrderID {
			return &clone, ports.ErrIdempotencyConflict
		}
		return &clone, nil
	}
	f.records[record.Key] = record
	saved := record
	return &saved, nil
}

func TestPlaceOrder_CreatesOrderedOrder(t *testing.T) {
	repo := newFakeOrderRepo()
	svc := NewService(repo)

	order, err := svc.PlaceOrder(context.Background(), ports.PlaceOrderInput{UserID: 7, ProductIDs: []int64{1, 2}})
	require.NoError(t, err)
	require.NotZero(t, order.ID)
	require.Equal(t, int64(7), order.UserID)
	require.Equal(t, domain.StatusOrdered, order.Status)
	require.NotEmpty(t, order.Reference)
	require.False(t, order.CreatedAt.IsZero())
}

func TestPlaceOrder_InvalidInputPersistsNothing(t *testing.T) {
	repo := newFakeOrderRepo()
	svc := NewService(repo)

	_, err := svc.PlaceOrder(context.Background(), ports.PlaceOrderInput{UserID: 0, ProductIDs: []int64{1}})
	require.ErrorIs(t, err, ErrInvalidOrderData)

	_, err = svc.PlaceOrder(context.Background(), ports.PlaceOrderInput{UserID: 7})
	require.ErrorIs(t, err, ErrInvalidOrderData)

	require.Empty(t, repo.orders)
}

func TestPlaceOrder_IdempotentReplay(t *testing.T) {
	repo := newFakeOrderRepo()
	svc := NewService(repo, WithIdempotencyStore(newFakeIdempotencyStore()))

	input := ports.PlaceOrderInput{UserID: 7, ProductIDs: []int64{2, 1}, IdempotencyKey: "key-1"}
	first, err := svc.PlaceOrder(context.Background(), input)
	require.NoError(t, err)

	// Same key, same payload (order of ids is irrelevant): replay.
	replay, err := svc.PlaceOrder(context.Background(), ports.PlaceOrderInput{UserID: 7, ProductIDs: []int64{1, 2}, IdempotencyKey: "key-1"})
	require.NoError(t, err)
	require.Equal(t, first.ID, replay.ID)
	require.Len(t, repo.orders, 1)

	// Same key, different payload: conflict.
	_, err = svc.PlaceOrder(context.Background(), ports.PlaceOrderInput{UserID: 8, ProductIDs: []int64{1}, IdempotencyKey: "key-1"})
	require.ErrorIs(t, err, ports.ErrIdempotencyConflict)
}

func TestUpdateStatus_RoundTrip(t *testing.T) {
	repo := newFakeOrderRepo()
	svc := NewService(repo)

	order, err := svc.PlaceOrder(context.Background(), ports.PlaceOrderInput{UserID: 7, ProductIDs: []int64{1, 2}})
	require.NoError(t, err)

	updated, err := svc.UpdateStatus(context.Background(), order.ID, "shipped")
	require.NoError(t, err)
	require.Equal(t, domain.StatusShipped, updated.Status)

	loaded, err := svc.GetByID(context.Background(), order.ID)
	require.NoError(t, err)
	require.Equal(t, domain.StatusShipped, loaded.Status)
}

func TestUpdateStatus_UnknownOrder(t *testing.T) {
	svc := NewService(newFakeOrderRepo())
	_, err := svc.UpdateStatus(context.Background(), 404, "SHIPPED")
	require.ErrorIs(t, err, ports.ErrNotFound)
}

func TestUpdateStatus_InvalidCode(t *testing.T) {
	repo := newFakeOrderRepo()
	svc := NewService(repo)

	order, err := svc.PlaceOrder(context.Background(), ports.PlaceOrderInput{UserID: 7, ProductIDs: []int64{1}})
	require.NoError(t, err)

	_, err = svc.UpdateStatus(context.Background(), order.ID, "TELEPORTED")
	require.ErrorIs(t, err, ErrInvalidStatus)
}

func TestUpdateStatus_TerminalOrderRejected(t *testing.T) {
	repo := newFakeOrderRepo()
	svc := NewService(repo)

	order, err := svc.PlaceOrder(context.Background(), ports.PlaceOrderInput{UserID: 7, ProductIDs: []int64{1}})
	require.NoError(t, err)
	_, err = svc.UpdateStatus(context.Background(), order.ID, "CANCELED")
	require.NoError(t, err)

	_, err = svc.UpdateStatus(context.Background(), order.ID, "PROCESSING")
	require.ErrorIs(t, err, ErrInvalidTransition)
}

func TestDelete_ThenGetFailsNotFound(t *testing.T) {
	repo := newFakeOrderRepo()
	svc := NewService(repo)

	order, err := svc.PlaceOrder(context.Background(), ports.PlaceOrderInput{UserID: 7, ProductIDs: []int64{1}})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(context.Background(), order.ID))
	_, err = svc.GetByID(context.Background(), order.ID)
	require.ErrorIs(t, err, ports.ErrNotFound)

	require.ErrorIs(t, svc.Delete(context.Background(), order.ID), ports.ErrNotFound)
}

func TestListByUser_FiltersOwner(t *testing.T) {
	repo := newFakeOrderRepo()
	svc := NewService(repo)

	_, err := svc.PlaceOrder(context.Background(), ports.PlaceOrderInput{UserID: 7, ProductIDs: []int64{1}})
	require.NoError(t, err)
	_, err = svc.PlaceOrder(context.Background(), ports.PlaceOrderInput{UserID: 8, ProductIDs: []int64{2}})
	require.NoError(t, err)

	mine, err := svc.ListByUser(context.Background(), 7)
	require.NoError(t, err)
	require.Len(t, mine, 1)
	require.Equal(t, int64(7), mine[0].UserID)

	all, err := svc.List(context.Background())
	require.NoError(t, err)
	require.Len(t, all, 2)
}
