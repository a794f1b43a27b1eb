package web

import (
	"bytes"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/emiliopalmerini/momacolors/internal/adapters/render"
	"github.com/emiliopalmerini/momacolors/internal/domain"
)

type colorsResponse struct {
	Palette string   `json:"palette"`
	Colors  []string `json:"colors"`
}

func (s *Server) handleAPIPalettes(w http.ResponseWriter, r *http.Request) {
	f, err := filterFrom(r.URL.Query())
	if err != nil {
		s.writeError(w, err)
		return
	}
	palettes, err := s.catalog.Palettes(f)
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, palettes)
}

func (s *Server) handleAPIPalette(w http.ResponseWriter, r *http.Request) {
	info, err := s.catalog.Palette(chi.URLParam(r, "name"))
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, info)
}

func (s *Server) handleAPIColors(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")
	opts, err := brewOptions(r.URL.Query(), s.cfg.MaxColors)
	if err != nil {
		s.writeError(w, err)
		return
	}
	colors, err := s.catalog.Colors(r.Context(), name, opts)
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, colorsResponse{Palette: name, Colors: colors})
}

func (s *Server) handleAPIPaletteImage(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	opts, err := brewOptions(q, s.cfg.MaxColors)
	if err != nil {
		s.writeError(w, err)
		return
	}
	cm, err := s.catalog.Colormap(r.Context(), chi.URLParam(r, "name"), opts)
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.writeImage(w, q.Get("format"), false, []domain.Colormap{cm})
}

func (s *Server) handleAPIColormaps(w http.ResponseWriter, r *http.Request) {
	cmaps, ok := s.colormaps(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, cmaps)
}

func (s *Server) handleAPIColormapsImage(w http.ResponseWriter, r *http.Request) {
	cmaps, ok := s.colormaps(w, r)
	if !ok {
		return
	}
	s.writeImage(w, r.URL.Query().Get("format"), true, cmaps)
}

func (s *Server) colormaps(w http.ResponseWriter, r *http.Request) ([]domain.Colormap, bool) {
	q := r.URL.Query()
	opts, err := brewOptions(q, s.cfg.MaxColors)
	if err != nil {
		s.writeError(w, err)
		return nil, false
	}
	f, err := filterFrom(q)
	if err != nil {
		s.writeError(w, err)
		return nil, false
	}
	cmaps, err := s.catalog.AllColormaps(r.Context(), opts, f)
	if err != nil {
		s.writeError(w, err)
		return nil, false
	}
	return cmaps, true
}

// writeImage renders into a buffer first so a render failure can still
// produce a JSON error.
func (s *Server) writeImage(w http.ResponseWriter, format string, labeled bool, cmaps []domain.Colormap) {
	if format == "" {
		format = "svg"
	}
	renderer, err := render.ForFormat(format, labeled)
	if err != nil {
		s.writeError(w, errors.Join(errBadRequest, err))
		return
	}
	var buf bytes.Buffer
	if err := renderer.Render(&buf, cmaps); err != nil {
		s.writeError(w, err)
		return
	}
	w.Header().Set("Content-Type", renderer.ContentType())
	w.WriteHeader(http.StatusOK)
	_, _ = buf.WriteTo(w)
}
