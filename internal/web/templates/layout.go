package templates

import (
	"context"
	"io"

	"github.com/a-h/templ"
)

const styles = `
body { font-family: system-ui, sans-serif; margin: 2rem; background: #fafafa; color: #222; }
header a { color: inherit; text-decoration: none; }
.grid { display: grid; grid-template-columns: repeat(auto-fill, minmax(280px, 1fr)); gap: 1rem; }
.card { background: #fff; border: 1px solid #ddd; border-radius: 6px; padding: .75rem; }
.card h3 { margin: 0 0 .5rem; font-size: 1rem; }
.swatch { display: flex; width: 100%; border-radius: 3px; overflow: hidden; }
.cell { flex: 1; }
.meta { color: #666; font-size: .8rem; margin-top: .4rem; }
.error { color: #b00020; }
form { margin: 1rem 0; display: flex; gap: .75rem; align-items: center; }
table { border-collapse: collapse; }
td { padding: .3rem .6rem; }
`

// Layout wraps body in the common page shell.
func Layout(title string, body templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, out io.Writer) error {
		w := &writer{w: out}
		w.raw(`<!DOCTYPE html><html lang="en"><head><meta charset="utf-8">`)
		w.raw(`<meta name="viewport" content="width=device-width, initial-scale=1">`)
		w.raw(`<title>`)
		w.text(title)
		w.raw(` - moma</title><style>`)
		w.raw(styles)
		w.raw(`</style></head><body><header><h1><a href="/">moma</a></h1></header><main>`)
		if w.err != nil {
			return w.err
		}
		if err := body.Render(ctx, out); err != nil {
			return err
		}
		w.raw(`</main></body></html>`)
		return w.err
	})
}

// ErrorPage shows a single error message.
func ErrorPage(title, message string) templ.Component {
	body := templ.ComponentFunc(func(_ context.Context, out io.Writer) error {
		w := &writer{w: out}
		w.raw(`<h2>`)
		w.text(title)
		w.raw(`</h2><p class="error">`)
		w.text(message)
		w.raw(`</p><p><a href="/">Back to all palettes</a></p>`)
		return w.err
	})
	return Layout(title, body)
}
