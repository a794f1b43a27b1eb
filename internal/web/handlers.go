package web

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/emiliopalmerini/momacolors/internal/catalog"
	"github.com/emiliopalmerini/momacolors/internal/domain"
	"github.com/emiliopalmerini/momacolors/internal/util"
	"github.com/emiliopalmerini/momacolors/internal/web/templates"
)

func (s *Server) handleGallery(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	page := templates.GalleryPage{Title: "Palettes"}

	f, err := filterFrom(r.URL.Query())
	if err == nil {
		page.Filter = util.FormatFilter(f)
		var palettes []catalog.PaletteInfo
		palettes, err = s.catalog.Palettes(f)
		for _, p := range palettes {
			page.Palettes = append(page.Palettes, cardFrom(p))
		}
	}
	status := http.StatusOK
	if err != nil {
		page.Error = err.Error()
		status = statusFor(err)
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_ = templates.Gallery(page).Render(ctx, w)
}

func (s *Server) handlePalettePage(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	name := chi.URLParam(r, "name")
	info, err := s.catalog.Palette(name)
	if err != nil {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.WriteHeader(statusFor(err))
		_ = templates.ErrorPage("Not found", err.Error()).Render(ctx, w)
		return
	}

	page := templates.PalettePage{
		Palette: cardFrom(info),
		Order:   info.Order,
	}
	status := http.StatusOK
	opts, err := brewOptions(r.URL.Query(), s.cfg.MaxColors)
	if err == nil {
		// The page links by base name, so a reversed name becomes a direction.
		if opts.Direction == 0 {
			opts.Direction = domain.Forward
		}
		if strings.HasSuffix(name, domain.ReversedSuffix) {
			opts.Direction *= domain.Reverse
		}
		page.N = opts.N
		page.Brew = string(opts.Brew)
		page.Reverse = opts.Direction == domain.Reverse
		page.Derived, err = s.derivedRows(r, info.Name, opts)
	}
	if err != nil {
		page.Error = err.Error()
		status = statusFor(err)
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_ = templates.PaletteDetail(page).Render(ctx, w)
}

// derivedRows shows the requested derivation, plus discrete and continuous
// variants when the brew type was left on auto.
func (s *Server) derivedRows(r *http.Request, name string, opts domain.BrewOptions) ([]templates.DerivedRow, error) {
	variants := []domain.BrewOptions{opts}
	if opts.Brew == domain.BrewAuto {
		d, c := opts, opts
		d.Brew, c.Brew = domain.BrewDiscrete, domain.BrewContinuous
		variants = append(variants, d, c)
	}
	rows := make([]templates.DerivedRow, 0, len(variants))
	for _, v := range variants {
		cm, err := s.catalog.Colormap(r.Context(), name, v)
		if err != nil {
			return nil, err
		}
		brew := string(v.Brew)
		if brew == "" {
			brew = "auto"
		}
		rows = append(rows, templates.DerivedRow{
			Label:  fmt.Sprintf("%s (%s, %d colors)", cm.Name, brew, cm.N()),
			Colors: cm.Colors,
		})
	}
	return rows, nil
}

func cardFrom(p catalog.PaletteInfo) templates.PaletteCard {
	return templates.PaletteCard{
		Name:               p.Name,
		Colors:             p.Colors,
		Category:           p.Category,
		ColorblindFriendly: p.ColorblindFriendly,
	}
}
