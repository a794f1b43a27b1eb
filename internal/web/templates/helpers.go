package templates

import (
	"fmt"
	"io"
	"net/url"
	"strconv"

	"github.com/a-h/templ"
)

// writer collects the first write error so page bodies stay linear.
type writer struct {
	w   io.Writer
	err error
}

func (w *writer) raw(s string) {
	if w.err != nil {
		return
	}
	_, w.err = io.WriteString(w.w, s)
}

func (w *writer) text(s string) {
	w.raw(templ.EscapeString(s))
}

func (w *writer) rawf(format string, args ...any) {
	w.raw(fmt.Sprintf(format, args...))
}

func paletteURL(name string) string {
	return "/palettes/" + url.PathEscape(name)
}

func imageURL(name string, n int, brew string, reverse bool) string {
	q := url.Values{}
	q.Set("format", "svg")
	if n > 0 {
		q.Set("n", strconv.Itoa(n))
	}
	if brew != "" {
		q.Set("brew", brew)
	}
	if reverse {
		q.Set("direction", "-1")
	}
	return "/api/palettes/" + url.PathEscape(name) + "/image?" + q.Encode()
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}

// swatch writes a flex strip of color cells.
func (w *writer) swatch(colors []string, height int) {
	w.rawf(`<div class="swatch" style="height:%dpx">`, height)
	for _, c := range colors {
		w.rawf(`<span class="cell" title="%s" style="background:%s"></span>`,
			templ.EscapeString(c), templ.EscapeString(c))
	}
	w.raw(`</div>`)
}
