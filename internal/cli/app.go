package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/emiliopalmerini/momacolors/internal/adapters/logger"
	"github.com/emiliopalmerini/momacolors/internal/adapters/otel"
	"github.com/emiliopalmerini/momacolors/internal/catalog"
	"github.com/emiliopalmerini/momacolors/internal/infrastructure/config"
	"github.com/emiliopalmerini/momacolors/internal/ports"
	"github.com/emiliopalmerini/momacolors/internal/registry"
)

// AppContext holds all shared dependencies for CLI commands.
type AppContext struct {
	Config  *config.Config
	Logger  ports.Logger
	Metrics ports.MetricsExporter
	Catalog *catalog.Service
	sync    func() error
}

// NewAppContext loads configuration and wires the catalog with its logger
// and metrics exporter. Metrics fall back to a no-op exporter when OTLP is
// disabled or unreachable.
func NewAppContext(ctx context.Context) (*AppContext, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	if logLevel != "" {
		cfg.LogLevel = logLevel
	}

	zl, err := logger.New(cfg.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("failed to create logger: %w", err)
	}

	var metrics ports.MetricsExporter
	exporter, err := otel.NewExporter(ctx, cfg.Otel, Version())
	switch {
	case err == nil:
		metrics = exporter
	case errors.Is(err, otel.ErrDisabled):
		metrics = otel.NewNoOpExporter()
	default:
		zl.Error("metrics exporter unavailable, continuing without metrics", "error", err)
		metrics = otel.NewNoOpExporter()
	}

	return &AppContext{
		Config:  cfg,
		Logger:  zl,
		Metrics: metrics,
		Catalog: catalog.NewService(registry.Default(), zl, metrics),
		sync:    zl.Sync,
	}, nil
}

// Close flushes metrics and buffered log entries.
func (a *AppContext) Close(ctx context.Context) error {
	var errs []error
	if a.Metrics != nil {
		if err := a.Metrics.Close(ctx); err != nil {
			errs = append(errs, fmt.Errorf("failed to close metrics exporter: %w", err))
		}
	}
	if a.sync != nil {
		// Syncing stderr fails on some terminals; nothing useful to report.
		_ = a.sync()
	}
	return errors.Join(errs...)
}

// withApp runs fn with a fresh AppContext and closes it afterwards.
func withApp(ctx context.Context, fn func(*AppContext) error) error {
	app, err := NewAppContext(ctx)
	if err != nil {
		return err
	}
	runErr := fn(app)
	if err := app.Close(context.WithoutCancel(ctx)); err != nil && runErr == nil {
		return err
	}
	return runErr
}
