package application

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m4rkovic/succulent-shop/internal/domains/catalog/application/types"
	"github.com/m4rkovic/succulent-shop/internal/domains/catalog/domain"
	"github.com/m4rkovic/succulent-shop/internal/domains/catalog/ports"
)

type fakeProductRepo struct {
	products map[int64]*domain.Product
	nextID   int64
}

func newFakeProductRepo() *fakeProductRepo {
	return &fakeProductRepo{products: map[int64]*domain.Product{}}
}

func (r *fakeProductRepo) Save(_ context.Context, product *domain.Product) (*domain.Product, error) {
	clone := *product
	if clone.ID == 0 {
		r.nextID++
		clone.ID = r.nextID
	}
	r.products[clone.ID] = &clone
	return &clone, nil
}

func (r *fakeProductRepo) GetByID(_ context.Context, id int64) (*domain.Product, error) {
	product, ok := r.products[id]
	if !ok {
		return nil, ports.ErrNotFound
	}
	clone := *product
	if product.Pot != nil {
		pot := *product.Pot
		clone.Pot = &pot
	}
	if product.Tool != nil {
		tool := *product.Tool
		clone.Tool = &tool
	}
	return &clone, nil
}

func (r *fakeProductRepo) Delete(_ context.Context, id int64) error {
	if _, ok := r.products[id]; !ok {
		return ports.ErrNotFound
	}
	delete(r.products, id)
	return nil
}

func (r *fakeProductRepo) List(_ context.Context) ([]*domain.Product, error) {
	list := make([]*domain.Product, 0, len(r.products))
	for _, product := range r.products {
		list = append(list, product)
	}
	return list, nil
}

type fakePlantResolver struct {
	known map[int64]bool
}

func (r *fakePlantResolver) Resolve(_ context.Context, id int64) error {
	if !r.known[id] {
		return ports.ErrPlantNotFound
	}
	return nil
}

func strPtr(v string) *string { return &v }

func floatPtr(v float64) *float64 { return &v }

func boolPtr(v bool) *bool { return &v }

func intPtr(v int) *int { return &v }

func int64Ptr(v int64) *int64 { return &v }

func potMutation() types.ProductMutationInput {
	return types.ProductMutationInput{
		Name:        strPtr("Terracotta classic"),
		Description: strPtr("A weathered terracotta pot"),
		Price:       floatPtr(12.5),
		ProductType: strPtr("pot"),
		IsPot:       boolPtr(true),
		PotSize:     strPtr("medium"),
		PotType:     strPtr("terracotta"),
		PotNumber:   intPtr(3),
	}
}

func TestService_CreateProduct_Pot(t *testing.T) {
	svc := NewService(newFakeProductRepo(), nil)

	created, err := svc.CreateProduct(context.Background(), types.CreateProductInput{ProductMutationInput: potMutation()})
	require.NoError(t, err)

	assert.NotZero(t, created.ID)
	assert.Equal(t, "Terracotta classic", created.Name)
	assert.Equal(t, domain.ProductTypePot, created.Type)
	require.NotNil(t, created.Pot)
	assert.Equal(t, domain.PotSizeMedium, created.Pot.Size)
	assert.Equal(t, domain.PotTypeTerracotta, created.Pot.Type)
	assert.Equal(t, 3, created.Pot.Number)
	assert.Nil(t, created.Tool)
}

func TestService_CreateProduct_Tool(t *testing.T) {
	svc := NewService(newFakeProductRepo(), nil)

	created, err := svc.CreateProduct(context.Background(), types.CreateProductInput{ProductMutationInput: types.ProductMutationInput{
		Name:        strPtr("Garden hoe"),
		Price:       floatPtr(19.9),
		ProductType: strPtr("TOOL"),
		ToolType:    strPtr("hoe"),
	}})
	require.NoError(t, err)

	require.NotNil(t, created.Tool)
	assert.Equal(t, domain.ToolTypeHoe, created.Tool.Type)
	assert.Nil(t, created.Pot)
}

func TestService_CreateProduct_RequiresName(t *testing.T) {
	svc := NewService(newFakeProductRepo(), nil)

	_, err := svc.CreateProduct(context.Background(), types.CreateProductInput{ProductMutationInput: types.ProductMutationInput{
		Name: strPtr("   "),
	}})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidInput)
	assert.ErrorIs(t, err, domain.ErrEmptyName)
}

func TestService_CreateProduct_UnknownEnum(t *testing.T) {
	svc := NewService(newFakeProductRepo(), nil)

	mutation := potMutation()
	mutation.PotType = strPtr("porcelain")
	_, err := svc.CreateProduct(context.Background(), types.CreateProductInput{ProductMutationInput: mutation})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidInput)
	assert.ErrorIs(t, err, domain.ErrUnknownEnumValue)
}

func TestService_CreateProduct_VariantConflict(t *testing.T) {
	svc := NewService(newFakeProductRepo(), nil)

	mutation := potMutation()
	mutation.ToolType = strPtr("bucket")
	_, err := svc.CreateProduct(context.Background(), types.CreateProductInput{ProductMutationInput: mutation})
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrVariantConflict)
}

func TestService_CreateProduct_PlantReference(t *testing.T) {
	resolver := &fakePlantResolver{known: map[int64]bool{7: true}}
	svc := NewService(newFakeProductRepo(), resolver)

	created, err := svc.CreateProduct(context.Background(), types.CreateProductInput{ProductMutationInput: types.ProductMutationInput{
		Name:        strPtr("Echeveria"),
		ProductType: strPtr("PLANT"),
		PlantID:     int64Ptr(7),
	}})
	require.NoError(t, err)
	require.NotNil(t, created.PlantID)
	assert.Equal(t, int64(7), *created.PlantID)

	_, err = svc.CreateProduct(context.Background(), types.CreateProductInput{ProductMutationInput: types.ProductMutationInput{
		Name:    strPtr("Echeveria"),
		PlantID: int64Ptr(99),
	}})
	assert.ErrorIs(t, err, ports.ErrPlantNotFound)
}

func TestService_UpdateProduct_NameOnlyPatch(t *testing.T) {
	repo := newFakeProductRepo()
	svc := NewService(repo, nil)

	created, err := svc.CreateProduct(context.Background(), types.CreateProductInput{ProductMutationInput: potMutation()})
	require.NoError(t, err)

	updated, err := svc.UpdateProduct(context.Background(), types.UpdateProductInput{ProductMutationInput: types.ProductMutationInput{
		ID:   created.ID,
		Name: strPtr("Terracotta deluxe"),
	}})
	require.NoError(t, err)

	assert.Equal(t, "Terracotta deluxe", updated.Name)
	assert.Equal(t, created.Description, updated.Description)
	assert.Equal(t, created.Price, updated.Price)
	require.NotNil(t, updated.Pot)
	assert.Equal(t, *created.Pot, *updated.Pot)
}

func TestService_UpdateProduct_PotAttrsRequirePotVariant(t *testing.T) {
	repo := newFakeProductRepo()
	svc := NewService(repo, nil)

	created, err := svc.CreateProduct(context.Background(), types.CreateProductInput{ProductMutationInput: types.ProductMutationInput{
		Name:     strPtr("Garden hoe"),
		ToolType: strPtr("HOE"),
	}})
	require.NoError(t, err)

	_, err = svc.UpdateProduct(context.Background(), types.UpdateProductInput{ProductMutationInput: types.ProductMutationInput{
		ID:      created.ID,
		PotSize: strPtr("LARGE"),
	}})
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrNotAPot)
}

func TestService_UpdateProduct_PotNumberGatedByDiscriminator(t *testing.T) {
	repo := newFakeProductRepo()
	svc := NewService(repo, nil)

	created, err := svc.CreateProduct(context.Background(), types.CreateProductInput{ProductMutationInput: potMutation()})
	require.NoError(t, err)

	// Without isPot in the patch the number is ignored.
	updated, err := svc.UpdateProduct(context.Background(), types.UpdateProductInput{ProductMutationInput: types.ProductMutationInput{
		ID:        created.ID,
		PotNumber: intPtr(42),
	}})
	require.NoError(t, err)
	assert.Equal(t, 3, updated.Pot.Number)

	updated, err = svc.UpdateProduct(context.Background(), types.UpdateProductInput{ProductMutationInput: types.ProductMutationInput{
		ID:        created.ID,
		IsPot:     boolPtr(true),
		PotNumber: intPtr(42),
	}})
	require.NoError(t, err)
	assert.Equal(t, 42, updated.Pot.Number)
}

func TestService_UpdateProduct_NotFound(t *testing.T) {
	svc := NewService(newFakeProductRepo(), nil)

	_, err := svc.UpdateProduct(context.Background(), types.UpdateProductInput{ProductMutationInput: types.ProductMutationInput{
		ID:   404,
		Name: strPtr("ghost"),
	}})
	assert.ErrorIs(t, err, ports.ErrNotFound)
}

func TestService_StrictPotValidation(t *testing.T) {
	lenient := NewService(newFakeProductRepo(), nil)
	strict := NewService(newFakeProductRepo(), nil, WithStrictPotValidation())

	incomplete := types.ProductMutationInput{
		Name:  strPtr("Bare pot"),
		IsPot: boolPtr(true),
	}

	_, err := lenient.CreateProduct(context.Background(), types.CreateProductInput{ProductMutationInput: incomplete})
	require.NoError(t, err)

	_, err = strict.CreateProduct(context.Background(), types.CreateProductInput{ProductMutationInput: incomplete})
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrIncompletePot)
}

func TestService_DeleteThenGet(t *testing.T) {
	repo := newFakeProductRepo()
	svc := NewService(repo, nil)

	created, err := svc.CreateProduct(context.Background(), types.CreateProductInput{ProductMutationInput: potMutation()})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(context.Background(), created.ID))
	_, err = svc.GetByID(context.Background(), created.ID)
	assert.ErrorIs(t, err, ports.ErrNotFound)
	assert.ErrorIs(t, svc.Delete(context.Background(), created.ID), ports.ErrNotFound)
}
