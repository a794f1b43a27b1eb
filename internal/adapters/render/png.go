package render

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"
	"math"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/emiliopalmerini/momacolors/internal/domain"
)

// PNGRenderer writes previews as PNG images. Labels use the fixed 7x13
// bitmap face, so they do not scale with DPI.
type PNGRenderer struct {
	DPI     float64
	Labeled bool
}

func NewPNGRenderer() *PNGRenderer {
	return &PNGRenderer{DPI: DefaultDPI, Labeled: true}
}

func (r *PNGRenderer) Format() string      { return "png" }
func (r *PNGRenderer) ContentType() string { return "image/png" }

func (r *PNGRenderer) Render(w io.Writer, cmaps []domain.Colormap) error {
	img, err := r.Draw(cmaps)
	if err != nil {
		return err
	}
	if err := png.Encode(w, img); err != nil {
		return fmt.Errorf("failed to encode png: %w", err)
	}
	return nil
}

// Draw renders the preview into an in-memory image.
func (r *PNGRenderer) Draw(cmaps []domain.Colormap) (*image.NRGBA, error) {
	decoded, err := decodeAll(cmaps)
	if err != nil {
		return nil, err
	}
	dpi := r.DPI
	if dpi <= 0 {
		dpi = DefaultDPI
	}
	l := newLayout(len(cmaps), dpi, r.Labeled)

	img := image.NewNRGBA(image.Rect(0, 0, int(math.Ceil(l.Width)), int(math.Ceil(l.Height))))
	draw.Draw(img, img.Bounds(), image.NewUniform(color.White), image.Point{}, draw.Src)

	face := basicfont.Face7x13
	for i, row := range l.Rows {
		y0, y1 := int(math.Round(row.Y)), int(math.Round(row.Y+row.H))
		for j, c := range row.cells(len(decoded[i])) {
			cell := image.Rect(c[0], y0, c[1], y1)
			draw.Draw(img, cell, image.NewUniform(decoded[i][j]), image.Point{}, draw.Over)
		}
		if l.Labeled {
			d := &font.Drawer{Dst: img, Src: image.Black, Face: face}
			width := d.MeasureString(cmaps[i].Name)
			mid := (y0 + y1) / 2
			d.Dot = fixed.Point26_6{
				X: fixed.I(int(math.Round(l.LabelX))) - width,
				Y: fixed.I(mid + face.Ascent/2 - 1),
			}
			d.DrawString(cmaps[i].Name)
		}
	}
	return img, nil
}
