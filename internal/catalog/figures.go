package catalog

import (
	"context"

	"github.com/emiliopalmerini/momacolors/internal/domain"
)

// Figure describes one preview image: either every palette matching Filter,
// labeled one per row, or a single palette drawn as a plain swatch.
type Figure struct {
	Name string
	// Palette selects a single-palette figure; empty means all palettes
	// matching Filter.
	Palette string
	Filter  domain.Filter
	Options domain.BrewOptions
}

// Labeled reports whether the figure draws colormap names.
func (f Figure) Labeled() bool {
	return f.Palette == ""
}

// StandardFigures is the preview image set published with the palettes.
func StandardFigures() []Figure {
	yes := domain.Ptr(true)
	return []Figure{
		{Name: "colormaps"},
		{Name: "sequential", Filter: domain.Filter{Sequential: yes}},
		{Name: "sequential_256", Filter: domain.Filter{Sequential: yes}, Options: domain.BrewOptions{N: 256}},
		{Name: "diverging_256", Filter: domain.Filter{Diverging: yes}, Options: domain.BrewOptions{N: 256}},
		{Name: "colorblind_6", Filter: domain.Filter{ColorblindFriendly: yes}, Options: domain.BrewOptions{N: 6, Brew: domain.BrewContinuous}},
		{Name: "colorblind_6_discrete", Filter: domain.Filter{ColorblindFriendly: yes}, Options: domain.BrewOptions{N: 6, Brew: domain.BrewDiscrete}},
		{Name: "colorblind_6_continuous", Filter: domain.Filter{ColorblindFriendly: yes}, Options: domain.BrewOptions{N: 6, Brew: domain.BrewContinuous}},
		{Name: "abbott", Palette: "Abbott"},
		{Name: "abbott_20", Palette: "Abbott", Options: domain.BrewOptions{N: 20}},
		{Name: "abbott_20_discrete", Palette: "Abbott", Options: domain.BrewOptions{N: 20, Brew: domain.BrewDiscrete}},
		{Name: "abbott_reversed", Palette: "Abbott", Options: domain.BrewOptions{Direction: domain.Reverse}},
		{Name: "abbott_4", Palette: "Abbott", Options: domain.BrewOptions{N: 4}},
		{Name: "abbott_4_override", Palette: "Abbott", Options: domain.BrewOptions{N: 4, OverrideOrder: true}},
	}
}

// FigureColormaps derives the colormaps drawn by fig.
func (s *Service) FigureColormaps(ctx context.Context, fig Figure) ([]domain.Colormap, error) {
	if fig.Palette == "" {
		return s.AllColormaps(ctx, fig.Options, fig.Filter)
	}
	cm, err := s.Colormap(ctx, fig.Palette, fig.Options)
	if err != nil {
		return nil, err
	}
	return []domain.Colormap{cm}, nil
}
