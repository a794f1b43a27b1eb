package otel

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetricgrpc"
	"go.opentelemetry.io/otel/metric"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/resource"
	semconv "go.opentelemetry.io/otel/semconv/v1.24.0"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	"github.com/emiliopalmerini/momacolors/internal/ports"
)

const serviceName = "moma"

// ErrDisabled is returned by NewExporter when export is not configured.
var ErrDisabled = errors.New("OTEL exporter is disabled or endpoint not configured")

// Exporter exports derivation metrics to an OTEL Collector.
type Exporter struct {
	provider     *sdkmetric.MeterProvider
	meter        metric.Meter
	derivations  metric.Int64Counter
	errorsTotal  metric.Int64Counter
	colorsHist   metric.Int64Histogram
	durationHist metric.Float64Histogram
}

// NewExporter creates a new OTEL metrics exporter.
func NewExporter(ctx context.Context, cfg Config, version string) (*Exporter, error) {
	if !cfg.Enabled || cfg.Endpoint == "" {
		return nil, ErrDisabled
	}

	opts := []otlpmetricgrpc.Option{
		otlpmetricgrpc.WithEndpoint(cfg.Endpoint),
	}
	if cfg.Insecure {
		opts = append(opts, otlpmetricgrpc.WithDialOption(grpc.WithTransportCredentials(insecure.NewCredentials())))
		opts = append(opts, otlpmetricgrpc.WithInsecure())
	}

	exp, err := otlpmetricgrpc.New(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("creating OTLP exporter: %w", err)
	}

	res, err := resource.New(ctx,
		resource.WithAttributes(
			semconv.ServiceName(serviceName),
			semconv.ServiceVersion(version),
			semconv.ServiceInstanceID(uuid.NewString()),
		),
	)
	if err != nil {
		return nil, fmt.Errorf("creating resource: %w", err)
	}

	provider := sdkmetric.NewMeterProvider(
		sdkmetric.WithReader(sdkmetric.NewPeriodicReader(exp)),
		sdkmetric.WithResource(res),
	)
	otel.SetMeterProvider(provider)

	e, err := newExporter(provider)
	if err != nil {
		_ = provider.Shutdown(ctx)
		return nil, err
	}
	return e, nil
}

// newExporter registers the instruments on provider. Split out so tests can
// use a manual reader instead of an OTLP endpoint.
func newExporter(provider *sdkmetric.MeterProvider) (*Exporter, error) {
	meter := provider.Meter(serviceName)

	derivations, err := meter.Int64Counter(
		"moma_derivations_total",
		metric.WithDescription("Total number of color derivations"),
		metric.WithUnit("{derivation}"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating derivations counter: %w", err)
	}

	errorsTotal, err := meter.Int64Counter(
		"moma_derivation_errors_total",
		metric.WithDescription("Total number of failed color derivations"),
		metric.WithUnit("{derivation}"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating errors counter: %w", err)
	}

	colorsHist, err := meter.Int64Histogram(
		"moma_colors_per_derivation",
		metric.WithDescription("Number of colors produced per derivation"),
		metric.WithUnit("{color}"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating colors histogram: %w", err)
	}

	durationHist, err := meter.Float64Histogram(
		"moma_derivation_duration_seconds",
		metric.WithDescription("Time spent deriving colors"),
		metric.WithUnit("s"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating duration histogram: %w", err)
	}

	return &Exporter{
		provider:     provider,
		meter:        meter,
		derivations:  derivations,
		errorsTotal:  errorsTotal,
		colorsHist:   colorsHist,
		durationHist: durationHist,
	}, nil
}

// RecordDerivation records one derivation.
func (e *Exporter) RecordDerivation(ctx context.Context, m *ports.DerivationMetrics) error {
	attrs := []attribute.KeyValue{
		attribute.String("palette", m.Palette),
		attribute.String("brew", m.Brew),
		attribute.Int("direction", m.Direction),
	}

	if m.ErrorKind != "" {
		attrs = append(attrs, attribute.String("error_kind", m.ErrorKind))
		e.errorsTotal.Add(ctx, 1, metric.WithAttributes(attrs...))
		return nil
	}

	opt := metric.WithAttributes(attrs...)
	e.derivations.Add(ctx, 1, opt)
	e.colorsHist.Record(ctx, int64(m.Colors), opt)
	e.durationHist.Record(ctx, m.Duration.Seconds(), opt)

	return nil
}

// Close shuts down the exporter and flushes any pending metrics.
func (e *Exporter) Close(ctx context.Context) error {
	return e.provider.Shutdown(ctx)
}
