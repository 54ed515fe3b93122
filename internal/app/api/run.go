package api

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	goredis "github.com/go-redis/redis/v8"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
	"go.temporal.io/sdk/client"
	temporalotel "go.temporal.io/sdk/contrib/opentelemetry"
	workerlog "go.temporal.io/sdk/log"
	"gorm.io/gorm"

	shopserver "github.com/m4rkovic/succulent-shop/server"

	catalogmemory "github.com/m4rkovic/succulent-shop/internal/domains/catalog/adapters/memory"
	catalogobs "github.com/m4rkovic/succulent-shop/internal/domains/catalog/adapters/observability"
	catalogpostgres "github.com/m4rkovic/succulent-shop/internal/domains/catalog/adapters/persistence/postgres"
	catalogplants "github.com/m4rkovic/succulent-shop/internal/domains/catalog/adapters/plants"
	catalogapp "github.com/m4rkovic/succulent-shop/internal/domains/catalog/application"
	catalogports "github.com/m4rkovic/succulent-shop/internal/domains/catalog/ports"

	ordersmemory "github.com/m4rkovic/succulent-shop/internal/domains/orders/adapters/memory"
	ordersobs "github.com/m4rkovic/succulent-shop/internal/domains/orders/adapters/observability"
	orderspostgres "github.com/m4rkovic/succulent-shop/internal/domains/orders/adapters/persistence/postgres"
	ordersredis "github.com/m4rkovic/succulent-shop/internal/domains/orders/adapters/redis"
	ordersworkflows "github.com/m4rkovic/succulent-shop/internal/domains/orders/adapters/workflows"
	ordersapp "github.com/m4rkovic/succulent-shop/internal/domains/orders/application"
	ordersports "github.com/m4rkovic/succulent-shop/internal/domains/orders/ports"

	plantsmemory "github.com/m4rkovic/succulent-shop/internal/domains/plants/adapters/memory"
	plantspostgres "github.com/m4rkovic/succulent-shop/internal/domains/plants/adapters/persistence/postgres"
	plantsapp "github.com/m4rkovic/succulent-shop/internal/domains/plants/application"
	plantsports "github.com/m4rkovic/succulent-shop/internal/domains/plants/ports"

	platformmigrations "github.com/m4rkovic/succulent-shop/internal/platform/migrations"
	platformobservability "github.com/m4rkovic/succulent-shop/internal/platform/observability"
	platformpostgres "github.com/m4rkovic/succulent-shop/internal/platform/postgres"
)

// Run boots the shop HTTP API with observability, repositories, and workflows wired.
func Run(ctx context.Context) error {
	const serviceName = "succulent-shop-api"
	instruments, shutdown, err := platformobservability.Init(ctx, serviceName)
	if err != nil {
		return fmt.Errorf("failed to initialize observability: %w", err)
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := shutdown(shutdownCtx); err != nil {
			instruments.Logger.Error("failed to shutdown observability", slog.String("error", err.Error()))
		}
	}()
	logger := instruments.Logger

	cfg, err := LoadConfig()
	if err != nil {
		return err
	}

	db, cleanupDB := platformpostgres.Open(ctx, cfg.PostgresDSN, logger)
	defer cleanupDB()
	if db != nil {
		if err := platformmigrations.Run(db); err != nil {
			return fmt.Errorf("failed to run migrations: %w", err)
		}
	}

	plantService := plantsapp.NewService(buildPlantRepository(db, logger))

	catalogOpts := []catalogapp.Option{}
	if cfg.StrictPotValidation {
		catalogOpts = append(catalogOpts, catalogapp.WithStrictPotValidation())
	}
	coreCatalogService := catalogapp.NewService(buildProductRepository(db, logger), catalogplants.NewResolver(plantService), catalogOpts...)
	catalogService := catalogobs.New(
		coreCatalogService,
		catalogobs.WithLogger(logger),
		catalogobs.WithTracer(instruments.Tracer("internal.catalog.application")),
		catalogobs.WithMeter(instruments.Meter("internal.catalog.application")),
	)

	idempotencyStore, cleanupRedis := buildIdempotencyStore(ctx, cfg, logger)
	defer cleanupRedis()
	coreOrderService := ordersapp.NewService(buildOrderRepository(db, logger), ordersapp.WithIdempotencyStore(idempotencyStore))
	orderService := ordersobs.New(
		coreOrderService,
		ordersobs.WithLogger(logger),
		ordersobs.WithTracer(instruments.Tracer("internal.orders.application")),
		ordersobs.WithMeter(instruments.Meter("internal.orders.application")),
	)

	var orderWorkflows ordersports.WorkflowOrchestrator = ordersworkflows.NewInlineOrderWorkflows(orderService)
	if temporalClient, err := connectTemporalClient(cfg, instruments); err != nil {
		logger.Warn("Temporal workflows unavailable, placing orders inline", slog.String("error", err.Error()))
	} else {
		defer temporalClient.Close()
		orderWorkflows = ordersworkflows.NewTemporalOrderWorkflows(temporalClient)
		logger.Info("Temporal workflows enabled", slog.String("namespace", cfg.TemporalNamespace))
	}

	handlers := shopserver.ApiHandleFunctions{
		OrderAPI:   shopserver.NewOrderAPI(orderService, orderWorkflows),
		ProductAPI: shopserver.NewProductAPI(catalogService),
		PlantAPI:   shopserver.NewPlantAPI(plantService),
	}

	engine := gin.Default()
	engine.Use(otelgin.Middleware(serviceName))
	router := shopserver.NewRouterWithGinEngine(engine, handlers)
	addr := ":" + cfg.Port
	logger.Info("shop API listening", slog.String("addr", addr))
	if err := router.Run(addr); err != nil {
		logger.Error("shop API server exited", slog.String("addr", addr), slog.String("error", err.Error()))
		return err
	}
	return nil
}

func buildOrderRepository(db *gorm.DB, logger *slog.Logger) ordersports.Repository {
	if db == nil {
		return ordersmemory.NewRepository()
	}
	logger.Info("order repository configured with postgres")
	return orderspostgres.NewRepository(db)
}

func buildProductRepository(db *gorm.DB, logger *slog.Logger) catalogports.Repository {
	if db == nil {
		return catalogmemory.NewRepository()
	}
	logger.Info("product repository configured with postgres")
	return catalogpostgres.NewRepository(db)
}

func buildPlantRepository(db *gorm.DB, logger *slog.Logger) plantsports.Repository {
	if db == nil {
		return plantsmemory.NewRepository()
	}
	logger.Info("plant repository configured with postgres")
	return plantspostgres.NewRepository(db)
}

func buildIdempotencyStore(ctx context.Context, cfg Config, logger *slog.Logger) (ordersports.IdempotencyStore, func()) {
	if cfg.RedisAddr == "" {
		logger.Warn("REDIS_ADDR not set, using in-memory idempotency store")
		return ordersmemory.NewIdempotencyStore(), func() {}
	}
	client := goredis.NewClient(&goredis.Options{Addr: cfg.RedisAddr})
	pingCtx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		logger.Warn("failed to connect to redis, using in-memory idempotency store", slog.String("error", err.Error()))
		_ = client.Close()
		return ordersmemory.NewIdempotencyStore(), func() {}
	}
	logger.Info("idempotency store configured with redis", slog.String("addr", cfg.RedisAddr))
	return ordersredis.NewIdempotencyStore(client, ordersredis.DefaultTTL), func() { _ = client.Close() }
}

func connectTemporalClient(cfg Config, instruments *platformobservability.Instruments) (client.Client, error) {
	if cfg.TemporalDisabled {
		return nil, errors.New("temporal disabled via configuration")
	}
	tracerOptions := temporalotel.TracerOptions{}
	if instruments != nil {
		tracerOptions.Tracer = instruments.Tracer("temporal-client")
	}
	tracingInterceptor, err := temporalotel.NewTracingInterceptor(tracerOptions)
	if err != nil {
		return nil, err
	}
	logger := workerlog.NewStructuredLogger(effectiveLogger(instruments))
	options := client.Options{
		HostPort:  cfg.TemporalAddress,
		Namespace: cfg.TemporalNamespace,
		Logger:    logger,
	}
	options.Interceptors = append(options.Interceptors, tracingInterceptor)
	return client.Dial(options)
}

func effectiveLogger(instruments *platformobservability.Instruments) *slog.Logger {
	if instruments != nil && instruments.Logger != nil {
		return instruments.Logger
	}
	return slog.New(slog.NewTextHandler(os.Stdout, nil))
}
