package ports

import (
	"context"
	"time"
)

// MetricsExporter exports derivation metrics to an external observability system.
type MetricsExporter interface {
	// RecordDerivation records one color or colormap derivation.
	RecordDerivation(ctx context.Context, m *DerivationMetrics) error
	// Close shuts down the exporter and flushes any pending metrics.
	Close(ctx context.Context) error
}

// DerivationMetrics describes a single derivation call.
type DerivationMetrics struct {
	Palette   string
	Brew      string
	Direction int
	Colors    int
	// ErrorKind is empty on success.
	ErrorKind string
	Duration  time.Duration
}
