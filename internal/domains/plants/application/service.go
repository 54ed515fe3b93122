package application

import (
	"context"

	"github.com/m4rkovic/succulent-shop/internal/domains/plants/domain"
	"github.com/m4rkovic/succulent-shop/internal/domains/plants/ports"
)

var _ ports.Service = (*Service)(nil)

// Service implements the plant use cases.
type Service struct {
	repo ports.Repository
}

func NewService(repo ports.Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) Create(ctx context.Context, name, color, description string) (*domain.Plant, error) {
	plant, err := domain.NewPlant(name, color, description)
	if err != nil {
		return nil, err
	}
	return s.repo.Save(ctx, plant)
}

func (s *Service) GetByID(ctx context.Context, id int64) (*domain.Plant, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) List(ctx context.Context) ([]*domain.Plant, error) {
	return s.repo.List(ctx)
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}
