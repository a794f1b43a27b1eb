// Package registry holds the immutable table of named palettes.
package registry

import (
	"fmt"
	"sort"
	"strings"

	"github.com/emiliopalmerini/momacolors/internal/domain"
)

// Registry maps palette names to palettes. It is built once and never
// modified, so it is safe for concurrent use.
type Registry struct {
	palettes map[string]domain.Palette
	names    []string
}

// New validates every palette and builds a registry from them.
func New(palettes ...domain.Palette) (*Registry, error) {
	r := &Registry{
		palettes: make(map[string]domain.Palette, len(palettes)),
		names:    make([]string, 0, len(palettes)),
	}
	for _, p := range palettes {
		if err := p.Validate(); err != nil {
			return nil, err
		}
		if _, dup := r.palettes[p.Name]; dup {
			return nil, fmt.Errorf("%w: duplicate name %q", domain.ErrInvalidPalette, p.Name)
		}
		r.palettes[p.Name] = p.Clone()
		r.names = append(r.names, p.Name)
	}
	sort.Strings(r.names)
	return r, nil
}

// Default returns a registry holding the built-in palettes.
func Default() *Registry {
	r, err := New(builtin...)
	if err != nil {
		panic(fmt.Sprintf("registry: built-in palettes are invalid: %v", err))
	}
	return r
}

// Len returns the number of palettes.
func (r *Registry) Len() int {
	return len(r.names)
}

// Names returns every palette name in lexicographic order.
func (r *Registry) Names() []string {
	return append([]string(nil), r.names...)
}

// Get returns the palette stored under exactly name.
func (r *Registry) Get(name string) (domain.Palette, error) {
	p, ok := r.palettes[name]
	if !ok {
		return domain.Palette{}, fmt.Errorf("%w %q", domain.ErrUnknownPalette, name)
	}
	return p.Clone(), nil
}

// Resolve looks up name, stripping a trailing "_r". The returned direction
// is Reverse when the suffix was present and Forward otherwise.
func (r *Registry) Resolve(name string) (domain.Palette, domain.Direction, error) {
	dir := domain.Forward
	if base, ok := strings.CutSuffix(name, domain.ReversedSuffix); ok {
		name, dir = base, domain.Reverse
	}
	p, err := r.Get(name)
	if err != nil {
		return domain.Palette{}, 0, err
	}
	return p, dir, nil
}

// List returns the sorted names of palettes matching f. It fails with
// ErrEmptySelection when nothing matches.
func (r *Registry) List(f domain.Filter) ([]string, error) {
	var names []string
	for _, name := range r.names {
		if f.Matches(r.palettes[name]) {
			names = append(names, name)
		}
	}
	if len(names) == 0 {
		return nil, domain.ErrEmptySelection
	}
	return names, nil
}
