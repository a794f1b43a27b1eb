package render

import (
	"fmt"
	"io"
	"math"

	svg "github.com/ajstarks/svgo"

	"github.com/emiliopalmerini/momacolors/internal/domain"
)

// SVGRenderer writes previews as SVG documents.
type SVGRenderer struct {
	DPI float64
	// Labeled draws each colormap's name left of its swatch. A single
	// unlabeled colormap gets a plain swatch figure.
	Labeled bool
}

func NewSVGRenderer() *SVGRenderer {
	return &SVGRenderer{DPI: DefaultDPI, Labeled: true}
}

func (r *SVGRenderer) Format() string      { return "svg" }
func (r *SVGRenderer) ContentType() string { return "image/svg+xml" }

func (r *SVGRenderer) Render(w io.Writer, cmaps []domain.Colormap) error {
	decoded, err := decodeAll(cmaps)
	if err != nil {
		return err
	}
	dpi := r.DPI
	if dpi <= 0 {
		dpi = DefaultDPI
	}
	l := newLayout(len(cmaps), dpi, r.Labeled)

	canvas := svg.New(w)
	canvas.Start(int(math.Ceil(l.Width)), int(math.Ceil(l.Height)))
	canvas.Rect(0, 0, int(math.Ceil(l.Width)), int(math.Ceil(l.Height)), "fill:#ffffff")
	for i, row := range l.Rows {
		y, h := int(math.Round(row.Y)), int(math.Round(row.H))
		canvas.Group(fmt.Sprintf(`id="%s"`, cmaps[i].Name))
		for j, c := range row.cells(len(decoded[i])) {
			canvas.Rect(c[0], y, c[1]-c[0], h, fillStyle(decoded[i][j]))
		}
		canvas.Gend()
		if l.Labeled {
			canvas.Text(int(math.Round(l.LabelX)), y+h/2, cmaps[i].Name,
				fmt.Sprintf("text-anchor:end;dominant-baseline:central;font-family:sans-serif;font-size:%.1fpx;fill:#000000", l.FontSize))
		}
	}
	canvas.End()
	return nil
}

func fillStyle(c domain.RGBA) string {
	style := "fill:" + c.Clamped().Hex()
	if c.A < 1 {
		style += fmt.Sprintf(";fill-opacity:%.3f", c.A)
	}
	return style
}
