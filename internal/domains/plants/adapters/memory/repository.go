package memory

import (
	"context"
	"errors"
	"sync"

	"github.com/m4rkovic/succulent-shop/internal/domains/plants/domain"
	"github.com/m4rkovic/succulent-shop/internal/domains/plants/ports"
)

var _ ports.Repository = (*Repository)(nil)

// Repository is an in-memory plant store for development and tests.
type Repository struct {
	mu     sync.RWMutex
	plants map[int64]*domain.Plant
	nextID int64
}

func NewRepository() *Repository {
	return &Repository{plants: map[int64]*domain.Plant{}}
}

func (r *Repository) Save(_ context.Context, plant *domain.Plant) (*domain.Plant, error) {
	if plant == nil {
		return nil, errors.New("plant is nil")
	}
	clone := *plant
	r.mu.Lock()
	defer r.mu.Unlock()
	if clone.ID == 0 {
		r.nextID++
		clone.ID = r.nextID
	} else if clone.ID > r.nextID {
		r.nextID = clone.ID
	}
	r.plants[clone.ID] = &clone
	result := clone
	return &result, nil
}

func (r *Repository) GetByID(_ context.Context, id int64) (*domain.Plant, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	plant, ok := r.plants[id]
	if !ok {
		return nil, ports.ErrNotFound
	}
	clone := *plant
	return &clone, nil
}

func (r *Repository) List(_ context.Context) ([]*domain.Plant, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	list := make([]*domain.Plant, 0, len(r.plants))
	for _, plant := range r.plants {
		clone := *plant
		list = append(list, &clone)
	}
	return list, nil
}

func (r *Repository) Delete(_ context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.plants[id]; !ok {
		return ports.ErrNotFound
	}
	delete(r.plants, id)
	return nil
}
