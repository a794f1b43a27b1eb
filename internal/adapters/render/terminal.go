package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/emiliopalmerini/momacolors/internal/domain"
)

// DefaultTerminalWidth is the number of swatch columns per colormap.
const DefaultTerminalWidth = 64

// TerminalRenderer prints swatches with true-color background cells.
type TerminalRenderer struct {
	// Width is the number of columns per swatch. Colors are stretched or
	// sampled to fit, like an image scaled to a fixed axis width.
	Width   int
	Labeled bool
	// ForceColor emits true-color escapes even when w is not a terminal.
	ForceColor bool
}

func NewTerminalRenderer() *TerminalRenderer {
	return &TerminalRenderer{Width: DefaultTerminalWidth, Labeled: true}
}

func (r *TerminalRenderer) Format() string      { return "txt" }
func (r *TerminalRenderer) ContentType() string { return "text/plain; charset=utf-8" }

func (r *TerminalRenderer) Render(w io.Writer, cmaps []domain.Colormap) error {
	decoded, err := decodeAll(cmaps)
	if err != nil {
		return err
	}

	lr := lipgloss.NewRenderer(w)
	if r.ForceColor {
		lr.SetColorProfile(termenv.TrueColor)
	}
	width := r.Width
	if width <= 0 {
		width = DefaultTerminalWidth
	}

	labelWidth := 0
	if r.Labeled {
		for _, cm := range cmaps {
			labelWidth = max(labelWidth, lipgloss.Width(cm.Name))
		}
	}
	label := lr.NewStyle().Width(labelWidth).Align(lipgloss.Right).MarginRight(1)

	for i, cm := range cmaps {
		var b strings.Builder
		if r.Labeled {
			b.WriteString(label.Render(cm.Name))
		}
		b.WriteString(Swatch(lr, decoded[i], width))
		if _, err := fmt.Fprintln(w, b.String()); err != nil {
			return fmt.Errorf("failed to write swatch: %w", err)
		}
	}
	return nil
}

// Swatch renders colors as width background-colored cells. Column j shows
// color j*len(colors)/width.
func Swatch(lr *lipgloss.Renderer, colors []domain.RGBA, width int) string {
	if len(colors) == 0 || width <= 0 {
		return ""
	}
	var b strings.Builder
	run, start := 0, -1
	flush := func(end int) {
		if start < 0 {
			return
		}
		cell := lr.NewStyle().Background(lipgloss.Color(colors[run].Clamped().Hex()))
		b.WriteString(cell.Render(strings.Repeat(" ", end-start)))
	}
	for j := 0; j < width; j++ {
		idx := j * len(colors) / width
		if idx != run || start < 0 {
			flush(j)
			run, start = idx, j
		}
	}
	flush(width)
	return b.String()
}
