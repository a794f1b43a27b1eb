package ports

import "github.com/emiliopalmerini/momacolors/internal/domain"

// PaletteRegistry resolves palette names to palettes.
type PaletteRegistry interface {
	// Resolve looks up name, honoring the reversed-name suffix, and returns
	// the palette with the direction the name implies.
	Resolve(name string) (domain.Palette, domain.Direction, error)
	// Get looks up the palette stored under exactly name.
	Get(name string) (domain.Palette, error)
	// List returns sorted names of palettes matching the filter, or
	// domain.ErrEmptySelection.
	List(f domain.Filter) ([]string, error)
	// Names returns all palette names, sorted.
	Names() []string
}
