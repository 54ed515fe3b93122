package observability

import (
	"context"
	"log/slog"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
	nooptrace "go.opentelemetry.io/otel/trace/noop"

	catalogtypes "github.com/m4rkovic/succulent-shop/internal/domains/catalog/application/types"
	catalogdomain "github.com/m4rkovic/succulent-shop/internal/domains/catalog/domain"
	catalogports "github.com/m4rkovic/succulent-shop/internal/domains/catalog/ports"
)

const tracerName = "github.com/m4rkovic/succulent-shop/internal/domains/catalog/adapters/observability/service"

// Service decorates the catalog service with tracing, logging, and metrics.
type Service struct {
	inner   catalogports.Service
	tracer  trace.Tracer
	logger  *slog.Logger
	metrics serviceMetrics
}

type Option func(*Service)

func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) {
		s.logger = logger
	}
}

func WithTracer(tr trace.Tracer) Option {
	return func(s *Service) {
		s.tracer = tr
	}
}

func WithMeter(m metric.Meter) Option {
	return func(s *Service) {
		s.metrics = newServiceMetrics(m)
	}
}

// New wraps the core catalog service.
func New(inner catalogports.Service, opts ...Option) catalogports.Service {
	s := &Service{
		inner:   inner,
		tracer:  nooptrace.NewTracerProvider().Tracer(tracerName),
		metrics: newServiceMetrics(nil),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(s)
		}
	}
	if s.tracer == nil {
		s.tracer = nooptrace.NewTracerProvider().Tracer(tracerName)
	}
	return s
}

func (s *Service) CreateProduct(ctx context.Context, input catalogtypes.CreateProductInput) (*catalogdomain.Product, error) {
	ctx, span := s.tracer.Start(ctx, "ProductService.CreateProduct",
		trace.WithAttributes(attribute.String("product.name", derefString(input.Name))))
	defer span.End()

	s.logInfo(ctx, "creating product", slog.String("product.name", derefString(input.Name)))
	result, err := s.inner.CreateProduct(ctx, input)
	if err != nil {
		return nil, s.handleError(ctx, span, err, "failed to create product", slog.String("product.name", derefString(input.Name)))
	}
	s.metrics.recordCreated(ctx, result.Type)
	s.logInfo(ctx, "product created", slog.Int64("product.id", result.ID), slog.String("product.type", string(result.Type)))
	return result, nil
}

func (s *Service) UpdateProduct(ctx context.Context, input catalogtypes.UpdateProductInput) (*catalogdomain.Product, error) {
	ctx, span := s.tracer.Start(ctx, "ProductService.UpdateProduct",
		trace.WithAttributes(attribute.Int64("product.id", input.ID)))
	defer span.End()

	s.logInfo(ctx, "updating product", slog.Int64("product.id", input.ID))
	result, err := s.inner.UpdateProduct(ctx, input)
	if err != nil {
		return nil, s.handleError(ctx, span, err, "failed to update product", slog.Int64("product.id", input.ID))
	}
	s.metrics.recordUpdated(ctx, result.Type)
	s.logInfo(ctx, "product updated", slog.Int64("product.id", result.ID))
	return result, nil
}

func (s *Service) GetByID(ctx context.Context, id int64) (*catalogdomain.Product, error) {
	ctx, span := s.tracer.Start(ctx, "ProductService.GetByID", trace.WithAttributes(attribute.Int64("product.id", id)))
	defer span.End()

	result, err := s.inner.GetByID(ctx, id)
	if err != nil {
		return nil, s.handleError(ctx, span, err, "failed to load product", slog.Int64("product.id", id))
	}
	return result, nil
}

func (s *Service) List(ctx context.Context) ([]*catalogdomain.Product, error) {
	ctx, span := s.tracer.Start(ctx, "ProductService.List")
	defer span.End()

	result, err := s.inner.List(ctx)
	if err != nil {
		return nil, s.handleError(ctx, span, err, "failed to list products")
	}
	span.SetAttributes(attribute.Int("product.count", len(result)))
	return result, nil
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	ctx, span := s.tracer.Start(ctx, "ProductService.Delete", trace.WithAttributes(attribute.Int64("product.id", id)))
	defer span.End()

	s.logInfo(ctx, "deleting product", slog.Int64("product.id", id))
	if err := s.inner.Delete(ctx, id); err != nil {
		return s.handleError(ctx, span, err, "failed to delete product", slog.Int64("product.id", id))
	}
	s.metrics.recordDeleted(ctx)
	s.logInfo(ctx, "product deleted", slog.Int64("product.id", id))
	return nil
}

func (s *Service) logInfo(ctx context.Context, msg string, attrs ...slog.Attr) {
	if s.logger == nil {
		return
	}
	s.logger.LogAttrs(ctx, slog.LevelInfo, msg, attrs...)
}

func (s *Service) logError(ctx context.Context, msg string, err error, attrs ...slog.Attr) {
	if s.logger == nil {
		return
	}
	if err != nil {
		attrs = append(attrs, slog.String("error", err.Error()))
	}
	s.logger.LogAttrs(ctx, slog.LevelError, msg, attrs...)
}

func (s *Service) handleError(ctx context.Context, span trace.Span, err error, msg string, attrs ...slog.Attr) error {
	if span != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	s.logError(ctx, msg, err, attrs...)
	return err
}

func derefString(value *string) string {
	if value == nil {
		return ""
	}
	return *value
}

type serviceMetrics struct {
	productsCreated metric.Int64Counter
	productsUpdated metric.Int64Counter
	productsDeleted metric.Int64Counter
}

func newServiceMetrics(m metric.Meter) serviceMetrics {
	if m == nil {
		return serviceMetrics{}
	}
	productsCreated, _ := m.Int64Counter("catalog.service.created", metric.WithDescription("Number of products created"))
	productsUpdated, _ := m.Int64Counter("catalog.service.updated", metric.WithDescription("Number of products updated"))
	productsDeleted, _ := m.Int64Counter("catalog.service.deleted", metric.WithDescription("Number of products deleted"))
	return serviceMetrics{productsCreated: productsCreated, productsUpdated: productsUpdated, productsDeleted: productsDeleted}
}

func (m serviceMetrics) recordCreated(ctx context.Context, productType catalogdomain.ProductType) {
	if m.productsCreated != nil {
		m.productsCreated.Add(ctx, 1, metric.WithAttributes(attribute.String("product.type", string(productType))))
	}
}

func (m serviceMetrics) recordUpdated(ctx context.Context, productType catalogdomain.ProductType) {
	if m.productsUpdated != nil {
		m.productsUpdated.Add(ctx, 1, metric.WithAttributes(attribute.String("product.type", string(productType))))
	}
}

func (m serviceMetrics) recordDeleted(ctx context.Context) {
	if m.productsDeleted != nil {
		m.productsDeleted.Add(ctx, 1)
	}
}

var _ catalogports.Service = (*Service)(nil)
