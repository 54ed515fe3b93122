package application

import (
	"context"
	"strings"

	"github.com/m4rkovic/succulent-shop/internal/domains/catalog/application/types"
	"github.com/m4rkovic/succulent-shop/internal/domains/catalog/domain"
	"github.com/m4rkovic/succulent-shop/internal/domains/catalog/ports"
)

// Service orchestrates the catalog use cases. It owns the translation between
// loosely-typed mutation inputs and the strongly-typed product aggregate,
// including the plant reference resolution and partial-update merging.
type Service struct {
	repo      ports.Repository
	plants    ports.PlantResolver
	strictPot bool
}

// Option customizes the service construction.
type Option func(*Service)

// WithStrictPotValidation makes pot products require both a size and a type.
// The default is lenient: a pot with missing attributes is tolerated.
func WithStrictPotValidation() Option {
	return func(s *Service) {
		s.strictPot = true
	}
}

// NewService wires the catalog service with its dependencies.
func NewService(repo ports.Repository, plants ports.PlantResolver, opts ...Option) *Service {
	s := &Service{repo: repo, plants: plants}
	for _, opt := range opts {
		if opt != nil {
			opt(s)
		}
	}
	return s
}

// CreateProduct builds a new product aggregate from the mutation and persists it.
func (s *Service) CreateProduct(ctx context.Context, input types.CreateProductInput) (*domain.Product, error) {
	product, err := s.buildProductFromMutation(ctx, input.ProductMutationInput)
	if err != nil {
		return nil, mapError(err)
	}
	if err := product.ValidatePot(s.strictPot); err != nil {
		return nil, mapError(err)
	}
	return s.repo.Save(ctx, product)
}

// UpdateProduct merges the mutation into an existing product. Only attributes
// present in the input overwrite stored state; absent attributes are no-ops.
func (s *Service) UpdateProduct(ctx context.Context, input types.UpdateProductInput) (*domain.Product, error) {
	product, err := s.repo.GetByID(ctx, input.ID)
	if err != nil {
		return nil, err
	}
	if err := s.applyPartialMutation(ctx, product, input.ProductMutationInput); err != nil {
		return nil, mapError(err)
	}
	if err := product.ValidatePot(s.strictPot); err != nil {
		return nil, mapError(err)
	}
	return s.repo.Save(ctx, product)
}

// GetByID loads a single product.
func (s *Service) GetByID(ctx context.Context, id int64) (*domain.Product, error) {
	return s.repo.GetByID(ctx, id)
}

// List returns all catalog products.
func (s *Service) List(ctx context.Context) ([]*domain.Product, error) {
	return s.repo.List(ctx)
}

// Delete removes a product.
func (s *Service) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}

func (s *Service) buildProductFromMutation(ctx context.Context, input types.ProductMutationInput) (*domain.Product, error) {
	if !present(input.Name) {
		return nil, domain.ErrEmptyName
	}
	product, err := domain.NewProduct(input.ID, *input.Name)
	if err != nil {
		return nil, err
	}
	if present(input.Description) {
		product.UpdateDescription(*input.Description)
	}
	if input.Price != nil {
		if err := product.UpdatePrice(*input.Price); err != nil {
			return nil, err
		}
	}
	if present(input.ProductType) {
		parsed, err := domain.ParseProductType(*input.ProductType)
		if err != nil {
			return nil, err
		}
		product.UpdateType(parsed)
	}

	isPot := input.IsPot != nil && *input.IsPot
	if isPot {
		details := domain.PotDetails{}
		// Pot attributes are honored only when supplied; in lenient mode a
		// pot may be created without them.
		if present(input.PotSize) {
			if details.Size, err = domain.ParsePotSize(*input.PotSize); err != nil {
				return nil, err
			}
		}
		if present(input.PotType) {
			if details.Type, err = domain.ParsePotType(*input.PotType); err != nil {
				return nil, err
			}
		}
		if input.PotNumber != nil {
			details.Number = *input.PotNumber
		}
		if err := product.MakePot(details); err != nil {
			return nil, err
		}
	}
	if present(input.ToolType) {
		parsed, err := domain.ParseToolType(*input.ToolType)
		if err != nil {
			return nil, err
		}
		if err := product.MakeTool(domain.ToolDetails{Type: parsed}); err != nil {
			return nil, err
		}
	}

	if input.PlantID != nil {
		if err := s.resolvePlant(ctx, product, *input.PlantID); err != nil {
			return nil, err
		}
	}
	return product, nil
}

func (s *Service) applyPartialMutation(ctx context.Context, product *domain.Product, input types.ProductMutationInput) error {
	if present(input.Name) {
		if err := product.Rename(*input.Name); err != nil {
			return err
		}
	}
	if present(input.Description) {
		product.UpdateDescription(*input.Description)
	}
	if present(input.ProductType) {
		parsed, err := domain.ParseProductType(*input.ProductType)
		if err != nil {
			return err
		}
		product.UpdateType(parsed)
	}
	if present(input.PotSize) {
		if product.Pot == nil {
			return domain.ErrNotAPot
		}
		parsed, err := domain.ParsePotSize(*input.PotSize)
		if err != nil {
			return err
		}
		product.Pot.Size = parsed
	}
	if present(input.PotType) {
		if product.Pot == nil {
			return domain.ErrNotAPot
		}
		parsed, err := domain.ParsePotType(*input.PotType)
		if err != nil {
			return err
		}
		product.Pot.Type = parsed
	}
	// The pot number is overwritten only when the patch itself marks the
	// product as a pot, mirroring the historical update contract.
	if input.IsPot != nil && *input.IsPot && input.PotNumber != nil {
		if product.Pot == nil {
			return domain.ErrNotAPot
		}
		product.Pot.Number = *input.PotNumber
	}
	if present(input.ToolType) {
		if product.Tool == nil {
			return domain.ErrNotATool
		}
		parsed, err := domain.ParseToolType(*input.ToolType)
		if err != nil {
			return err
		}
		product.Tool.Type = parsed
	}
	if input.Price != nil {
		if err := product.UpdatePrice(*input.Price); err != nil {
			return err
		}
	}
	if input.PlantID != nil {
		if err := s.resolvePlant(ctx, product, *input.PlantID); err != nil {
			return err
		}
	}
	return nil
}

func (s *Service) resolvePlant(ctx context.Context, product *domain.Product, plantID int64) error {
	if s.plants == nil {
		return ports.ErrPlantNotFound
	}
	if err := s.plants.Resolve(ctx, plantID); err != nil {
		return err
	}
	product.AttachPlant(&plantID)
	return nil
}

func present(value *string) bool {
	return value != nil && strings.TrimSpace(*value) != ""
}

var _ ports.Service = (*Service)(nil)
