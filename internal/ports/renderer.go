package ports

import (
	"io"

	"github.com/emiliopalmerini/momacolors/internal/domain"
)

// Renderer draws colormaps as a preview figure with one swatch per row.
type Renderer interface {
	Render(w io.Writer, cmaps []domain.Colormap) error
	// Format is the file extension without the dot, e.g. "svg".
	Format() string
	ContentType() string
}
