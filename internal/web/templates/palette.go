package templates

import (
	"context"
	"io"
	"strconv"

	"github.com/a-h/templ"
)

// PaletteDetail shows one palette, its metadata and a set of derived colormaps.
func PaletteDetail(page PalettePage) templ.Component {
	body := templ.ComponentFunc(func(_ context.Context, out io.Writer) error {
		w := &writer{w: out}
		p := page.Palette
		w.raw(`<h2>`)
		w.text(p.Name)
		w.raw(`</h2>`)
		w.swatch(p.Colors, 48)

		w.raw(`<table>`)
		w.raw(`<tr><td>Colors</td><td>`)
		w.text(strconv.Itoa(len(p.Colors)))
		w.raw(`</td></tr><tr><td>Category</td><td>`)
		w.text(p.Category)
		w.raw(`</td></tr><tr><td>Colorblind friendly</td><td>`)
		w.text(yesNo(p.ColorblindFriendly))
		w.raw(`</td></tr><tr><td>Priority order</td><td>`)
		for i, o := range page.Order {
			if i > 0 {
				w.raw(", ")
			}
			w.text(strconv.Itoa(o))
		}
		w.raw(`</td></tr></table>`)

		w.rawf(`<form method="get" action="%s">`, templ.EscapeString(paletteURL(p.Name)))
		w.raw(`<label>n <input type="number" min="0" name="n" value="`)
		if page.N > 0 {
			w.text(strconv.Itoa(page.N))
		}
		w.raw(`"></label><label>brew <select name="brew">`)
		for _, b := range []string{"", "discrete", "continuous"} {
			label := b
			if label == "" {
				label = "auto"
			}
			sel := ""
			if b == page.Brew {
				sel = " selected"
			}
			w.rawf(`<option value="%s"%s>%s</option>`, b, sel, label)
		}
		w.raw(`</select></label><label><input type="checkbox" name="direction" value="-1"`)
		if page.Reverse {
			w.raw(` checked`)
		}
		w.raw(`> reversed</label><button type="submit">Derive</button></form>`)

		if page.Error != "" {
			w.raw(`<p class="error">`)
			w.text(page.Error)
			w.raw(`</p>`)
			return w.err
		}
		for _, row := range page.Derived {
			w.raw(`<h3>`)
			w.text(row.Label)
			w.raw(`</h3>`)
			w.swatch(row.Colors, 36)
			w.raw(`<div class="meta">`)
			for i, c := range row.Colors {
				if i > 0 {
					w.raw(" ")
				}
				w.text(c)
			}
			w.raw(`</div>`)
		}
		w.rawf(`<p><a href="%s">SVG preview</a></p>`,
			templ.EscapeString(imageURL(p.Name, page.N, page.Brew, page.Reverse)))
		return w.err
	})
	return Layout(page.Palette.Name, body)
}
