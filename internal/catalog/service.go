// Package catalog is the application layer over the palette registry and the
// derivation engine.
package catalog

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/emiliopalmerini/momacolors/internal/domain"
	"github.com/emiliopalmerini/momacolors/internal/ports"
)

// Service derives colors and colormaps from named palettes.
type Service struct {
	registry ports.PaletteRegistry
	logger   ports.Logger
	metrics  ports.MetricsExporter
}

// NewService creates a new catalog service
func NewService(registry ports.PaletteRegistry, logger ports.Logger, metrics ports.MetricsExporter) *Service {
	return &Service{
		registry: registry,
		logger:   logger,
		metrics:  metrics,
	}
}

// Palettes returns listing info for every palette matching f, sorted by name.
func (s *Service) Palettes(f domain.Filter) ([]PaletteInfo, error) {
	names, err := s.registry.List(f)
	if err != nil {
		return nil, err
	}
	out := make([]PaletteInfo, 0, len(names))
	for _, name := range names {
		p, err := s.registry.Get(name)
		if err != nil {
			return nil, err
		}
		out = append(out, infoFrom(p))
	}
	return out, nil
}

// Palette returns listing info for one palette. A reversed name resolves to
// the underlying palette.
func (s *Service) Palette(name string) (PaletteInfo, error) {
	p, _, err := s.registry.Resolve(name)
	if err != nil {
		return PaletteInfo{}, err
	}
	return infoFrom(p), nil
}

// Colors derives a color sequence from the named palette.
func (s *Service) Colors(ctx context.Context, name string, opts domain.BrewOptions) ([]string, error) {
	cm, err := s.Colormap(ctx, name, opts)
	if err != nil {
		return nil, err
	}
	return cm.Colors, nil
}

// Colormap derives a colormap from the named palette. A name ending in the
// reversed suffix flips the requested direction.
func (s *Service) Colormap(ctx context.Context, name string, opts domain.BrewOptions) (domain.Colormap, error) {
	start := time.Now()
	d := s.derive(name, opts)
	s.record(ctx, name, opts, d, time.Since(start))
	return d.colormap, d.err
}

// derivation is the outcome of one derive call. palette and direction are
// only set once resolution succeeded.
type derivation struct {
	colormap  domain.Colormap
	palette   string
	direction domain.Direction
	err       error
}

func (s *Service) derive(name string, opts domain.BrewOptions) derivation {
	if opts.Direction == 0 {
		opts.Direction = domain.Forward
	}
	if err := opts.Direction.Validate(); err != nil {
		return derivation{err: err}
	}
	p, implied, err := s.registry.Resolve(name)
	if err != nil {
		return derivation{err: err}
	}
	opts.Direction *= implied
	cm, err := domain.DeriveColormap(p, opts)
	return derivation{colormap: cm, palette: p.Name, direction: opts.Direction, err: err}
}

// AllColormaps derives one colormap per palette matching f, in name order.
func (s *Service) AllColormaps(ctx context.Context, opts domain.BrewOptions, f domain.Filter) ([]domain.Colormap, error) {
	names, err := s.registry.List(f)
	if err != nil {
		if ErrorKind(err) == "internal" {
			s.logger.Error("failed to list palettes", "error", err)
		} else {
			s.logger.Debug("no palettes match filter", "error", err)
		}
		return nil, err
	}
	out := make([]domain.Colormap, 0, len(names))
	for _, name := range names {
		cm, err := s.Colormap(ctx, name, opts)
		if err != nil {
			return nil, fmt.Errorf("failed to derive %s: %w", name, err)
		}
		out = append(out, cm)
	}
	return out, nil
}

// Metric labels for values that did not resolve. Requested names and brew
// strings come from callers and must not become attribute values.
const (
	unknownLabel = "unknown"
	autoLabel    = "auto"
)

func (s *Service) record(ctx context.Context, name string, opts domain.BrewOptions, d derivation, elapsed time.Duration) {
	m := &ports.DerivationMetrics{
		Palette:   d.palette,
		Brew:      brewLabel(opts.Brew),
		Direction: int(d.direction),
		Colors:    d.colormap.N(),
		Duration:  elapsed,
	}
	if m.Palette == "" {
		m.Palette = unknownLabel
	}
	if d.err != nil {
		m.ErrorKind = ErrorKind(d.err)
		if m.ErrorKind == "internal" {
			s.logger.Error("derivation failed", "palette", name, "error", d.err)
		} else {
			s.logger.Debug("derivation rejected", "palette", name, "kind", m.ErrorKind, "error", d.err)
		}
	} else {
		s.logger.Debug("derived colormap", "palette", name, "colormap", d.colormap.Name, "colors", d.colormap.N(), "brew", m.Brew)
	}
	if merr := s.metrics.RecordDerivation(ctx, m); merr != nil {
		s.logger.Error("failed to record metrics", "error", merr)
	}
}

func brewLabel(b domain.BrewType) string {
	switch b {
	case domain.BrewAuto:
		return autoLabel
	case domain.BrewDiscrete, domain.BrewContinuous:
		return string(b)
	default:
		return unknownLabel
	}
}

// ErrorKind returns a short label for a derivation error, for metrics and
// API responses.
func ErrorKind(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, domain.ErrUnknownPalette):
		return "unknown_palette"
	case errors.Is(err, domain.ErrInvalidDirection):
		return "invalid_direction"
	case errors.Is(err, domain.ErrUnknownBrewType):
		return "unknown_brew_type"
	case errors.Is(err, domain.ErrEmptySelection):
		return "empty_selection"
	case errors.Is(err, domain.ErrInvalidCount):
		return "invalid_count"
	case errors.Is(err, domain.ErrInvalidPalette):
		return "invalid_palette"
	default:
		return "internal"
	}
}
