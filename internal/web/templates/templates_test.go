package templates

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
)

func TestGallery_EscapesText(t *testing.T) {
	var buf bytes.Buffer
	page := GalleryPage{
		Title:    "Palettes",
		Filter:   "all palettes",
		Palettes: []PaletteCard{{Name: `<b>"x"</b>`, Colors: []string{"#000000"}, Category: "qualitative"}},
	}
	if err := Gallery(page).Render(context.Background(), &buf); err != nil {
		t.Fatalf("Render: %v", err)
	}
	out := buf.String()
	if strings.Contains(out, "<b>") {
		t.Error("palette name was not escaped")
	}
	if !strings.Contains(out, "&lt;b&gt;") {
		t.Errorf("escaped name missing from output")
	}
	if !strings.HasSuffix(out, "</html>") {
		t.Error("page was not closed")
	}
}

func TestPaletteDetail(t *testing.T) {
	var buf bytes.Buffer
	page := PalettePage{
		Palette: PaletteCard{Name: "Abbott", Colors: []string{"#950404", "#e04b28"}, Category: "qualitative"},
		Order:   []int{1, 2},
		N:       4,
		Brew:    "continuous",
		Reverse: true,
		Derived: []DerivedRow{{Label: "Abbott_r", Colors: []string{"#e04b28", "#950404"}}},
	}
	if err := PaletteDetail(page).Render(context.Background(), &buf); err != nil {
		t.Fatalf("Render: %v", err)
	}
	out := buf.String()
	for _, want := range []string{
		"1, 2",
		`value="4"`,
		`<option value="continuous" selected>`,
		` checked>`,
		"brew=continuous",
		"direction=-1",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q", want)
		}
	}
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errWrite }

var errWrite = errors.New("write failed")

func TestRender_PropagatesWriteError(t *testing.T) {
	err := ErrorPage("oops", "boom").Render(context.Background(), failingWriter{})
	if !errors.Is(err, errWrite) {
		t.Errorf("err = %v, want write error", err)
	}
}
