// Package render draws colormap previews: one labeled swatch per row, with
// each colormap's colors laid out as equal-width cells.
package render

import (
	"errors"
	"fmt"
	"math"

	"github.com/emiliopalmerini/momacolors/internal/domain"
	"github.com/emiliopalmerini/momacolors/internal/ports"
)

// ErrNothingToRender is returned when Render is given no colormaps.
var ErrNothingToRender = errors.New("no colormaps to render")

// Figure geometry in inches.
const (
	figureWidth  = 6.4
	rowHeight    = 0.22
	rowGapFrac   = 0.1
	topMargin    = 0.35
	bottomMargin = 0.15
	labelLeft    = 0.2
	labelRight   = 0.99
	labelPad     = 0.01
	fontPoints   = 10

	// An unlabeled single swatch uses the default axes placement.
	swatchHeight = 0.72
	swatchLeft   = 0.125
	swatchRight  = 0.9
	swatchBottom = 0.11
	swatchTop    = 0.88
)

// DefaultDPI is the pixel density used when a renderer leaves it unset.
const DefaultDPI = 100

type rect struct {
	X, Y, W, H float64
}

type layout struct {
	Width, Height float64
	Rows          []rect
	// LabelX is where labels end; labels are right-aligned against it.
	LabelX   float64
	FontSize float64
	Labeled  bool
}

// newLayout computes the pixel geometry for rows swatches at dpi.
func newLayout(rows int, dpi float64, labeled bool) layout {
	if !labeled && rows == 1 {
		w, h := figureWidth*dpi, swatchHeight*dpi
		return layout{
			Width:  w,
			Height: h,
			Rows: []rect{{
				X: swatchLeft * w,
				Y: (1 - swatchTop) * h,
				W: (swatchRight - swatchLeft) * w,
				H: (swatchTop - swatchBottom) * h,
			}},
		}
	}

	n := float64(rows)
	figh := topMargin + bottomMargin + (n+(n-1)*rowGapFrac)*rowHeight
	w := figureWidth * dpi
	l := layout{
		Width:    w,
		Height:   figh * dpi,
		Rows:     make([]rect, rows),
		LabelX:   (labelLeft - labelPad*(labelRight-labelLeft)) * w,
		FontSize: fontPoints * dpi / 72,
		Labeled:  labeled,
	}
	for i := range l.Rows {
		l.Rows[i] = rect{
			X: labelLeft * w,
			Y: (topMargin + float64(i)*rowHeight*(1+rowGapFrac)) * dpi,
			W: (labelRight - labelLeft) * w,
			H: rowHeight * dpi,
		}
	}
	return l
}

// cells splits r into n equal-width pixel columns. Adjacent cells share
// edges so rounding never leaves gaps.
func (r rect) cells(n int) [][2]int {
	out := make([][2]int, n)
	cw := r.W / float64(n)
	for i := range out {
		x0 := int(math.Round(r.X + float64(i)*cw))
		x1 := int(math.Round(r.X + float64(i+1)*cw))
		if x1 <= x0 {
			x1 = x0 + 1
		}
		out[i] = [2]int{x0, x1}
	}
	return out
}

func decodeAll(cmaps []domain.Colormap) ([][]domain.RGBA, error) {
	if len(cmaps) == 0 {
		return nil, ErrNothingToRender
	}
	out := make([][]domain.RGBA, len(cmaps))
	for i, cm := range cmaps {
		cs, err := cm.RGBA()
		if err != nil {
			return nil, fmt.Errorf("failed to decode colormap %s: %w", cm.Name, err)
		}
		out[i] = cs
	}
	return out, nil
}

// ForFormat returns the image renderer for "svg" or "png". An unlabeled
// renderer draws a single colormap as a plain swatch figure.
func ForFormat(format string, labeled bool) (ports.Renderer, error) {
	switch format {
	case "svg":
		return &SVGRenderer{DPI: DefaultDPI, Labeled: labeled}, nil
	case "png":
		return &PNGRenderer{DPI: DefaultDPI, Labeled: labeled}, nil
	default:
		return nil, fmt.Errorf("unsupported image format %q (want svg or png)", format)
	}
}
