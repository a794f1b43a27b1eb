package templates

import (
	"context"
	"io"

	"github.com/a-h/templ"
)

// Gallery lists every palette as a clickable swatch card.
func Gallery(page GalleryPage) templ.Component {
	body := templ.ComponentFunc(func(_ context.Context, out io.Writer) error {
		w := &writer{w: out}
		w.raw(`<form method="get" action="/">`)
		w.raw(`<label><input type="checkbox" name="sequential" value="true"> sequential</label>`)
		w.raw(`<label><input type="checkbox" name="diverging" value="true"> diverging</label>`)
		w.raw(`<label><input type="checkbox" name="colorblind" value="true"> colorblind friendly</label>`)
		w.raw(`<button type="submit">Filter</button></form>`)
		w.raw(`<h2>`)
		w.text(page.Filter)
		w.raw(`</h2>`)
		if page.Error != "" {
			w.raw(`<p class="error">`)
			w.text(page.Error)
			w.raw(`</p>`)
			return w.err
		}
		w.raw(`<div class="grid">`)
		for _, p := range page.Palettes {
			w.rawf(`<a class="card" href="%s">`, templ.EscapeString(paletteURL(p.Name)))
			w.raw(`<h3>`)
			w.text(p.Name)
			w.raw(`</h3>`)
			w.swatch(p.Colors, 28)
			w.raw(`<div class="meta">`)
			w.text(p.Category)
			if p.ColorblindFriendly {
				w.raw(` &middot; colorblind friendly`)
			}
			w.raw(`</div></a>`)
		}
		w.raw(`</div>`)
		return w.err
	})
	return Layout(page.Title, body)
}
