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

	"github.com/m4rkovic/succulent-shop/internal/domains/orders/domain"
	"github.com/m4rkovic/succulent-shop/internal/domains/orders/ports"
	"github.com/m4rkovic/succulent-shop/internal/platform/migrations"
)

func setupOrdersPostgresContainer(t *testing.T) (*gorm.DB, func()) {
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

func newTestOrder(t *testing.T, userID int64, productIDs ...int64) *domain.Order {
	t.Helper()
	order, err := domain.NewOrder(userID, productIDs)
	require.NoError(t, err)
	order.Reference = "ref-" + t.Name()
	order.CreatedAt = time.Now().UTC()
	return order
}

func TestRepository_SaveAndGetByID(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	db, cleanup := setupOrdersPostgresContainer(t)
	defer cleanup()
	repo := NewRepository(db)
	ctx := context.Background()

	saved, err := repo.Save(ctx, newTestOrder(t, 7, 1, 2))
	require.NoError(t, err)
	require.NotZero(t, saved.ID)

	loaded, err := repo.GetByID(ctx, saved.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(7), loaded.UserID)
	assert.Equal(t, []int64{1, 2}, loaded.ProductIDs)
	assert.Equal(t, domain.StatusOrdered, loaded.Status)
}

func TestRepository_SaveUpdatesStatus(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	db, cleanup := setupOrdersPostgresContainer(t)
	defer cleanup()
	repo := NewRepository(db)
	ctx := context.Background()

	saved, err := repo.Save(ctx, newTestOrder(t, 7, 1))
	require.NoError(t, err)

	require.NoError(t, saved.TransitionTo(domain.StatusShipped))
	updated, err := repo.Save(ctx, saved)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusShipped, updated.Status)

	loaded, err := repo.GetByID(ctx, saved.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusShipped, loaded.Status)
}

func TestRepository_ListByUser(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	db, cleanup := setupOrdersPostgresContainer(t)
	defer cleanup()
	repo := NewRepository(db)
	ctx := context.Background()

	_, err := repo.Save(ctx, newTestOrder(t, 7, 1))
	require.NoError(t, err)

	other := newTestOrder(t, 8, 2)
	other.Reference += "-other"
	_, err = repo.Save(ctx, other)
	require.NoError(t, err)

	mine, err := repo.ListByUser(ctx, 7)
	require.NoError(t, err)
	require.Len(t, mine, 1)
	assert.Equal(t, int64(7), mine[0].UserID)

	all, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestRepository_DeleteRemovesOrder(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	db, cleanup := setupOrdersPostgresContainer(t)
	defer cleanup()
	repo := NewRepository(db)
	ctx := context.Background()

	saved, err := repo.Save(ctx, newTestOrder(t, 7, 1))
	require.NoError(t, err)

	require.NoError(t, repo.Delete(ctx, saved.ID))
	_, err = repo.GetByID(ctx, saved.ID)
	assert.ErrorIs(t, err, ports.ErrNotFound)
	assert.ErrorIs(t, repo.Delete(ctx, saved.ID), ports.ErrNotFound)
}
