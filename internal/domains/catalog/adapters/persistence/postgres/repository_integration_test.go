//go:build integration

package postgres

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/m4rkovic/succulent-shop/internal/domains/catalog/domain"
	"github.com/m4rkovic/succulent-shop/internal/domains/catalog/ports"
	"github.com/m4rkovic/succulent-shop/internal/platform/migrations"
)

func setupCatalogPostgresContainer(t *testing.T) (*gorm.DB, func()) {
	ctx := context.Background()

	pgContainer, err := tcpostgres.RunContainer(ctx,
		testcontainers.WithImage("postgres:15-alpine"),
		tcpostgres.WithDatabase("succulent_shop_test"),
		tcpostgres.WithUsername("test"),
		tcpostgres.WithPassword("test"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	require.NoError(t, err)

	dsn, err := pgContainer.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	require.NoError(t, err)

	err = migrations.Run(db)
	require.NoError(t, err)

	cleanup := func() {
		sqlDB, _ := db.DB()
		if sqlDB != nil {
			sqlDB.Close()
		}
		pgContainer.Terminate(ctx)
	}

	return db, cleanup
}

func newTestPot(t *testing.T) *domain.Product {
	t.Helper()
	product, err := domain.NewProduct(0, "Terracotta classic")
	require.NoError(t, err)
	product.UpdateDescription("A weathered terracotta pot")
	require.NoError(t, product.UpdatePrice(12.5))
	product.UpdateType(domain.ProductTypePot)
	require.NoError(t, product.MakePot(domain.PotDetails{
		Size:   domain.PotSizeMedium,
		Type:   domain.PotTypeTerracotta,
		Number: 3,
	}))
	return product
}

func TestRepository_SaveAndGetByID_RestoresVariant(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	db, cleanup := setupCatalogPostgresContainer(t)
	defer cleanup()
	repo := NewRepository(db)
	ctx := context.Background()

	saved, err := repo.Save(ctx, newTestPot(t))
	require.NoError(t, err)
	require.NotZero(t, saved.ID)

	loaded, err := repo.GetByID(ctx, saved.ID)
	require.NoError(t, err)
	assert.Equal(t, "Terracotta classic", loaded.Name)
	assert.Equal(t, domain.ProductTypePot, loaded.Type)
	require.NotNil(t, loaded.Pot)
	assert.Equal(t, domain.PotSizeMedium, loaded.Pot.Size)
	assert.Equal(t, domain.PotTypeTerracotta, loaded.Pot.Type)
	assert.Equal(t, 3, loaded.Pot.Number)
	assert.Nil(t, loaded.Tool)
}

func TestRepository_SaveToolProduct(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	db, cleanup := setupCatalogPostgresContainer(t)
	defer cleanup()
	repo := NewRepository(db)
	ctx := context.Background()

	product, err := domain.NewProduct(0, "Garden hoe")
	require.NoError(t, err)
	product.UpdateType(domain.ProductTypeTool)
	require.NoError(t, product.MakeTool(domain.ToolDetails{Type: domain.ToolTypeHoe}))

	saved, err := repo.Save(ctx, product)
	require.NoError(t, err)

	loaded, err := repo.GetByID(ctx, saved.ID)
	require.NoError(t, err)
	require.NotNil(t, loaded.Tool)
	assert.Equal(t, domain.ToolTypeHoe, loaded.Tool.Type)
	assert.Nil(t, loaded.Pot)
}

func TestRepository_SaveMergesUpdates(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	db, cleanup := setupCatalogPostgresContainer(t)
	defer cleanup()
	repo := NewRepository(db)
	ctx := context.Background()

	saved, err := repo.Save(ctx, newTestPot(t))
	require.NoError(t, err)

	require.NoError(t, saved.Rename("Terracotta deluxe"))
	saved.Pot.Number = 5
	updated, err := repo.Save(ctx, saved)
	require.NoError(t, err)
	assert.Equal(t, "Terracotta deluxe", updated.Name)
	assert.Equal(t, 5, updated.Pot.Number)

	all, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestRepository_DeleteRemovesProduct(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	db, cleanup := setupCatalogPostgresContainer(t)
	defer cleanup()
	repo := NewRepository(db)
	ctx := context.Background()

	saved, err := repo.Save(ctx, newTestPot(t))
	require.NoError(t, err)

	require.NoError(t, repo.Delete(ctx, saved.ID))
	_, err = repo.GetByID(ctx, saved.ID)
	assert.ErrorIs(t, err, ports.ErrNotFound)
	assert.ErrorIs(t, repo.Delete(ctx, saved.ID), ports.ErrNotFound)
}
