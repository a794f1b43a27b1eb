package domain

import (
	"fmt"
	"strings"
)

// ReversedSuffix marks a palette name as requesting the reversed variant.
const ReversedSuffix = "_r"

// Category names used for listings.
const (
	CategorySequential  = "sequential"
	CategoryDiverging   = "diverging"
	CategoryQualitative = "qualitative"
)

// Palette is a named, ordered set of base colors plus metadata.
//
// Order[i] is the priority rank (1 = most important) of Colors[i] and is used
// when fewer colors than the palette holds are requested.
type Palette struct {
	Name               string
	Colors             []string
	Order              []int
	ColorblindFriendly bool
	Sequential         bool
	Diverging          bool
}

// NumColors returns the number of base colors.
func (p Palette) NumColors() int {
	return len(p.Colors)
}

// Category returns "sequential", "diverging" or "qualitative".
func (p Palette) Category() string {
	switch {
	case p.Sequential:
		return CategorySequential
	case p.Diverging:
		return CategoryDiverging
	default:
		return CategoryQualitative
	}
}

// Clone returns a deep copy so the caller may not alias the registry table.
func (p Palette) Clone() Palette {
	c := p
	c.Colors = append([]string(nil), p.Colors...)
	c.Order = append([]int(nil), p.Order...)
	return c
}

// Validate checks the palette invariants: at least one parseable color, a
// priority order that is a permutation of 1..NumColors, and flags that are
// not both sequential and diverging.
func (p Palette) Validate() error {
	if p.Name == "" {
		return fmt.Errorf("%w: empty name", ErrInvalidPalette)
	}
	if strings.HasSuffix(p.Name, ReversedSuffix) {
		return fmt.Errorf("%w: %s: name ends with reserved suffix %q", ErrInvalidPalette, p.Name, ReversedSuffix)
	}
	k := len(p.Colors)
	if k == 0 {
		return fmt.Errorf("%w: %s: no colors", ErrInvalidPalette, p.Name)
	}
	for _, c := range p.Colors {
		if _, err := ParseHex(c); err != nil {
			return fmt.Errorf("%w: %s: %v", ErrInvalidPalette, p.Name, err)
		}
	}
	if len(p.Order) != k {
		return fmt.Errorf("%w: %s: order has %d entries, want %d", ErrInvalidPalette, p.Name, len(p.Order), k)
	}
	seen := make([]bool, k+1)
	for _, rank := range p.Order {
		if rank < 1 || rank > k || seen[rank] {
			return fmt.Errorf("%w: %s: order %v is not a permutation of 1..%d", ErrInvalidPalette, p.Name, p.Order, k)
		}
		seen[rank] = true
	}
	if p.Sequential && p.Diverging {
		return fmt.Errorf("%w: %s: both sequential and diverging", ErrInvalidPalette, p.Name)
	}
	return nil
}

// ColormapName returns the palette name with the reversal marker appended
// when dir is Reverse.
func (p Palette) ColormapName(dir Direction) string {
	if dir == Reverse {
		return p.Name + ReversedSuffix
	}
	return p.Name
}
