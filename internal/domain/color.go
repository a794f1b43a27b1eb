package domain

import (
	"fmt"
	"image/color"
	"strconv"

	"github.com/lucasb-eyer/go-colorful"
)

// RGBA is a color with channels in [0, 1] and straight (non-premultiplied) alpha.
// RGB channels are carried by go-colorful so blending and hex formatting
// follow its conventions.
type RGBA struct {
	colorful.Color
	A float64
}

// ParseHex parses "#rgb", "#rrggbb" or "#rrggbbaa". Colors without an alpha
// component are fully opaque.
func ParseHex(s string) (RGBA, error) {
	switch len(s) {
	case 4, 7:
		c, err := colorful.Hex(s)
		if err != nil {
			return RGBA{}, fmt.Errorf("parse color %q: %w", s, err)
		}
		return RGBA{Color: c, A: 1}, nil
	case 9:
		c, err := colorful.Hex(s[:7])
		if err != nil {
			return RGBA{}, fmt.Errorf("parse color %q: %w", s, err)
		}
		a, err := strconv.ParseUint(s[7:], 16, 8)
		if err != nil {
			return RGBA{}, fmt.Errorf("parse alpha of %q: %w", s, err)
		}
		return RGBA{Color: c, A: float64(a) / 255}, nil
	default:
		return RGBA{}, fmt.Errorf("parse color %q: not a hex color", s)
	}
}

// MustParseHex is like ParseHex but panics on malformed input.
func MustParseHex(s string) RGBA {
	c, err := ParseHex(s)
	if err != nil {
		panic(err)
	}
	return c
}

// Hex formats the color as lowercase "#rrggbb", or "#rrggbbaa" when the color
// is not fully opaque.
func (c RGBA) Hex() string {
	h := c.Clamped().Hex()
	if a := to8(c.A); a != 255 {
		h += fmt.Sprintf("%02x", a)
	}
	return h
}

// Lerp linearly interpolates every channel, alpha included, between c (t=0)
// and d (t=1).
func (c RGBA) Lerp(d RGBA, t float64) RGBA {
	return RGBA{
		Color: c.Color.BlendRgb(d.Color, t),
		A:     c.A + t*(d.A-c.A),
	}
}

// Lightness returns the CIE L* of the color scaled to [0,1], ignoring alpha.
func (c RGBA) Lightness() float64 {
	l, _, _ := c.Clamped().Lab()
	return l
}

// NRGBA converts to an 8-bit image/color value.
func (c RGBA) NRGBA() color.NRGBA {
	r, g, b := c.Clamped().RGB255()
	return color.NRGBA{R: r, G: g, B: b, A: to8(c.A)}
}

// RGBA implements color.Color with the alpha channel honored.
func (c RGBA) RGBA() (r, g, b, a uint32) {
	return c.NRGBA().RGBA()
}

func to8(v float64) uint8 {
	if v <= 0 {
		return 0
	}
	if v >= 1 {
		return 255
	}
	return uint8(v*255 + 0.5)
}
