package render

import (
	"bytes"
	"errors"
	"image"
	"image/png"
	"math"
	"strings"
	"testing"

	"github.com/emiliopalmerini/momacolors/internal/domain"
)

var testMaps = []domain.Colormap{
	{Name: "Abbott", Colors: []string{"#950404", "#e04b28", "#c38961", "#9f5630"}},
	{Name: "Ernst_r", Colors: []string{"#191f40", "#e8e79a"}},
}

func TestNewLayout_FigureHeight(t *testing.T) {
	tests := []struct {
		rows int
		want float64
	}{
		{1, 72},
		{3, 120.4},
		{35, 50 + (35+3.4)*22},
	}
	for _, tt := range tests {
		l := newLayout(tt.rows, 100, true)
		if math.Abs(l.Height-tt.want) > 1e-9 {
			t.Errorf("rows=%d: height = %v, want %v", tt.rows, l.Height, tt.want)
		}
		if l.Width != 640 {
			t.Errorf("rows=%d: width = %v, want 640", tt.rows, l.Width)
		}
		if len(l.Rows) != tt.rows {
			t.Errorf("rows=%d: got %d row rects", tt.rows, len(l.Rows))
		}
	}
}

func TestNewLayout_SingleSwatch(t *testing.T) {
	l := newLayout(1, 100, false)
	if math.Abs(l.Height-72) > 1e-9 || l.Labeled {
		t.Errorf("unexpected single swatch layout: %+v", l)
	}
	if l.Rows[0].X != 80 {
		t.Errorf("swatch x = %v, want 80", l.Rows[0].X)
	}
}

func TestRect_CellsCoverRow(t *testing.T) {
	r := rect{X: 128, W: 505.6}
	for _, n := range []int{1, 3, 8, 256, 1000} {
		cells := r.cells(n)
		if len(cells) != n {
			t.Fatalf("n=%d: got %d cells", n, len(cells))
		}
		if cells[0][0] != 128 || cells[n-1][1] != int(math.Round(128+505.6)) {
			t.Errorf("n=%d: cells span %d..%d", n, cells[0][0], cells[n-1][1])
		}
		for i := 1; i < n; i++ {
			if cells[i][0] > cells[i-1][1] {
				t.Errorf("n=%d: gap between cell %d and %d", n, i-1, i)
			}
		}
	}
}

func TestSVGRenderer(t *testing.T) {
	var buf bytes.Buffer
	if err := NewSVGRenderer().Render(&buf, testMaps); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	out := buf.String()

	if !strings.HasPrefix(out, "<?xml") || !strings.Contains(out, "</svg>") {
		t.Errorf("not an svg document:\n%s", out)
	}
	for _, want := range []string{"fill:#950404", "fill:#9f5630", "fill:#191f40", ">Abbott</text>", ">Ernst_r</text>"} {
		if !strings.Contains(out, want) {
			t.Errorf("svg missing %q", want)
		}
	}
	// background + 4 + 2 cells
	if got := strings.Count(out, "<rect"); got != 7 {
		t.Errorf("got %d rects, want 7", got)
	}
}

func TestSVGRenderer_Transparency(t *testing.T) {
	var buf bytes.Buffer
	cm := []domain.Colormap{{Name: "fade", Colors: []string{"#ff000080"}}}
	if err := NewSVGRenderer().Render(&buf, cm); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(buf.String(), "fill:#ff0000;fill-opacity:0.502") {
		t.Errorf("expected fill-opacity, got:\n%s", buf.String())
	}
}

func TestPNGRenderer(t *testing.T) {
	var buf bytes.Buffer
	r := NewPNGRenderer()
	if err := r.Render(&buf, testMaps); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	img, err := png.Decode(&buf)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	b := img.Bounds()
	if b.Dx() != 640 || b.Dy() != int(math.Ceil(newLayout(2, 100, true).Height)) {
		t.Errorf("unexpected bounds %v", b)
	}

	l := newLayout(2, 100, true)
	first := l.Rows[0]
	px := img.At(int(first.X)+5, int(first.Y+first.H/2))
	r8, g8, b8, _ := px.RGBA()
	if r8>>8 != 0x95 || g8>>8 != 0x04 || b8>>8 != 0x04 {
		t.Errorf("first cell pixel = %v, want #950404", px)
	}
}

func TestPNGRenderer_Unlabeled(t *testing.T) {
	r := &PNGRenderer{DPI: 50}
	img, err := r.Draw(testMaps[:1])
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if img.Bounds() != image.Rect(0, 0, 320, 36) {
		t.Errorf("unexpected bounds %v", img.Bounds())
	}
}

func TestTerminalRenderer(t *testing.T) {
	var buf bytes.Buffer
	r := &TerminalRenderer{Width: 8, Labeled: true, ForceColor: true}
	if err := r.Render(&buf, testMaps); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d:\n%s", len(lines), buf.String())
	}
	if !strings.Contains(lines[0], " Abbott") || !strings.Contains(lines[1], "Ernst_r") {
		t.Errorf("labels missing:\n%s", buf.String())
	}
	if !strings.Contains(lines[0], "48;2;149;4;4") {
		t.Errorf("expected true-color background for #950404:\n%q", lines[0])
	}
}

func TestRender_Empty(t *testing.T) {
	var buf bytes.Buffer
	if err := NewSVGRenderer().Render(&buf, nil); !errors.Is(err, ErrNothingToRender) {
		t.Errorf("svg: expected ErrNothingToRender, got %v", err)
	}
	if err := NewPNGRenderer().Render(&buf, nil); !errors.Is(err, ErrNothingToRender) {
		t.Errorf("png: expected ErrNothingToRender, got %v", err)
	}
	if err := NewTerminalRenderer().Render(&buf, nil); !errors.Is(err, ErrNothingToRender) {
		t.Errorf("terminal: expected ErrNothingToRender, got %v", err)
	}
}

func TestForFormat(t *testing.T) {
	for _, f := range []string{"svg", "png"} {
		r, err := ForFormat(f, true)
		if err != nil {
			t.Fatalf("ForFormat(%q): %v", f, err)
		}
		if r.Format() != f {
			t.Errorf("ForFormat(%q).Format() = %s", f, r.Format())
		}
	}
	if _, err := ForFormat("gif", true); err == nil {
		t.Error("expected error for gif")
	}
}
