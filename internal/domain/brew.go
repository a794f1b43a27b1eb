package domain

import (
	"fmt"
	"math"
)

// Direction is the traversal order of a palette's colors.
type Direction int

const (
	Forward Direction = 1
	Reverse Direction = -1
)

// Validate fails with ErrInvalidDirection unless d is Forward or Reverse.
func (d Direction) Validate() error {
	if d != Forward && d != Reverse {
		return fmt.Errorf("%w: must be -1 or 1, not %d", ErrInvalidDirection, int(d))
	}
	return nil
}

// BrewType selects how colors are derived from a palette.
type BrewType string

const (
	// BrewAuto infers the brew: continuous when more colors are requested
	// than the palette holds, discrete otherwise.
	BrewAuto       BrewType = ""
	BrewDiscrete   BrewType = "discrete"
	BrewContinuous BrewType = "continuous"
)

// ParseBrewType accepts "", "auto", "discrete" and "continuous".
func ParseBrewType(s string) (BrewType, error) {
	switch BrewType(s) {
	case BrewAuto, "auto":
		return BrewAuto, nil
	case BrewDiscrete, BrewContinuous:
		return BrewType(s), nil
	default:
		return "", fmt.Errorf("%w %q", ErrUnknownBrewType, s)
	}
}

// BrewOptions controls DeriveColors. The zero value derives the palette's
// own colors, forward, with the brew inferred.
type BrewOptions struct {
	// N is the number of colors to derive; 0 means the palette size.
	N             int
	Brew          BrewType
	Direction     Direction // 0 means Forward
	OverrideOrder bool
}

func (o BrewOptions) direction() Direction {
	if o.Direction == 0 {
		return Forward
	}
	return o.Direction
}

// DiscreteBrew returns n colors taken from the base colors without
// interpolation.
//
// Whole passes over the palette come first. The remaining colors are a
// prefix of the palette when overrideOrder is set or at least one whole
// pass was emitted; otherwise they are the colors ranked 1..remainder by
// priority, kept in storage order.
func DiscreteBrew(p Palette, n int, dir Direction, overrideOrder bool) ([]string, error) {
	if err := dir.Validate(); err != nil {
		return nil, err
	}
	if n < 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidCount, n)
	}
	k := p.NumColors()
	if k == 0 {
		return nil, fmt.Errorf("%w: %s: no colors", ErrInvalidPalette, p.Name)
	}

	rounds, remainder := n/k, n%k
	ordered := p.Colors
	if dir == Reverse {
		ordered = reversed(p.Colors)
	}

	colors := make([]string, 0, n)
	for i := 0; i < rounds; i++ {
		colors = append(colors, ordered...)
	}

	if overrideOrder || rounds > 0 {
		return append(colors, ordered[:remainder]...), nil
	}

	picked := make([]string, 0, remainder)
	for i, rank := range p.Order {
		if rank >= 1 && rank <= remainder {
			picked = append(picked, p.Colors[i])
		}
	}
	if dir == Reverse {
		picked = reversed(picked)
	}
	return append(colors, picked...), nil
}

// ContinuousBrew returns n colors sampled evenly from the piecewise-linear
// gradient through the base colors. The first and last samples are the
// first and last base colors.
func ContinuousBrew(p Palette, n int, dir Direction) ([]string, error) {
	if err := dir.Validate(); err != nil {
		return nil, err
	}
	if n < 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidCount, n)
	}
	stops := make([]RGBA, p.NumColors())
	for i, h := range p.Colors {
		c, err := ParseHex(h)
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %v", ErrInvalidPalette, p.Name, err)
		}
		stops[i] = c
	}
	if len(stops) == 0 {
		return nil, fmt.Errorf("%w: %s: no colors", ErrInvalidPalette, p.Name)
	}

	colors := make([]string, n)
	for i := range colors {
		x := 0.0
		if n > 1 {
			x = float64(i) / float64(n-1)
		}
		colors[i] = gradientAt(stops, x).Hex()
	}
	if dir == Reverse {
		colors = reversed(colors)
	}
	return colors, nil
}

// gradientAt maps x in [0, 1] onto evenly spaced stops.
func gradientAt(stops []RGBA, x float64) RGBA {
	last := len(stops) - 1
	if last == 0 {
		return stops[0]
	}
	ip, fr := math.Modf(x * float64(last))
	i := int(ip)
	if i >= last {
		return stops[last]
	}
	return stops[i].Lerp(stops[i+1], fr)
}

// DeriveColors produces exactly opts.N colors from p, or fails outright.
func DeriveColors(p Palette, opts BrewOptions) ([]string, error) {
	dir := opts.direction()
	if err := dir.Validate(); err != nil {
		return nil, err
	}
	n := opts.N
	if n == 0 {
		n = p.NumColors()
	}
	if n < 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidCount, n)
	}

	brew := opts.Brew
	if brew == BrewAuto {
		brew = BrewDiscrete
		if n > p.NumColors() {
			brew = BrewContinuous
		}
	}

	switch brew {
	case BrewDiscrete:
		return DiscreteBrew(p, n, dir, opts.OverrideOrder)
	case BrewContinuous:
		return ContinuousBrew(p, n, dir)
	default:
		return nil, fmt.Errorf("%w %q", ErrUnknownBrewType, string(brew))
	}
}

// DeriveColormap wraps DeriveColors with the palette name, suffixed with
// ReversedSuffix for the reverse direction.
func DeriveColormap(p Palette, opts BrewOptions) (Colormap, error) {
	colors, err := DeriveColors(p, opts)
	if err != nil {
		return Colormap{}, err
	}
	return Colormap{Name: p.ColormapName(opts.direction()), Colors: colors}, nil
}

func reversed[T any](s []T) []T {
	out := make([]T, len(s))
	for i, v := range s {
		out[len(s)-1-i] = v
	}
	return out
}
