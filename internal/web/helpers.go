package web

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/url"

	"github.com/emiliopalmerini/momacolors/internal/catalog"
	"github.com/emiliopalmerini/momacolors/internal/domain"
	"github.com/emiliopalmerini/momacolors/internal/util"
)

// errBadRequest marks query parsing failures that have no domain sentinel.
var errBadRequest = errors.New("bad request")

// brewOptions reads n, brew, direction and override from the query.
func brewOptions(q url.Values, maxColors int) (domain.BrewOptions, error) {
	n, err := util.ParseCount(q.Get("n"), maxColors)
	if err != nil {
		return domain.BrewOptions{}, err
	}
	brew, err := domain.ParseBrewType(q.Get("brew"))
	if err != nil {
		return domain.BrewOptions{}, err
	}
	dir, err := util.ParseDirection(q.Get("direction"))
	if err != nil {
		return domain.BrewOptions{}, err
	}
	override, err := util.ParseTriState(q.Get("override"))
	if err != nil {
		return domain.BrewOptions{}, errors.Join(errBadRequest, err)
	}
	return domain.BrewOptions{
		N:             n,
		Brew:          brew,
		Direction:     dir,
		OverrideOrder: override != nil && *override,
	}, nil
}

// filterFrom reads the sequential, diverging and colorblind query parameters.
func filterFrom(q url.Values) (domain.Filter, error) {
	var f domain.Filter
	var err error
	if f.Sequential, err = util.ParseTriState(q.Get("sequential")); err != nil {
		return f, errors.Join(errBadRequest, err)
	}
	if f.Diverging, err = util.ParseTriState(q.Get("diverging")); err != nil {
		return f, errors.Join(errBadRequest, err)
	}
	if f.ColorblindFriendly, err = util.ParseTriState(q.Get("colorblind")); err != nil {
		return f, errors.Join(errBadRequest, err)
	}
	return f, nil
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, domain.ErrUnknownPalette), errors.Is(err, domain.ErrEmptySelection):
		return http.StatusNotFound
	case errors.Is(err, errBadRequest),
		errors.Is(err, domain.ErrInvalidDirection),
		errors.Is(err, domain.ErrUnknownBrewType),
		errors.Is(err, domain.ErrInvalidCount):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

type errorResponse struct {
	Error string `json:"error"`
	Kind  string `json:"kind,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func (s *Server) writeError(w http.ResponseWriter, err error) {
	status := statusFor(err)
	if status == http.StatusInternalServerError {
		s.logger.Error("request failed", "error", err)
	}
	resp := errorResponse{Error: err.Error()}
	if !errors.Is(err, errBadRequest) {
		resp.Kind = catalog.ErrorKind(err)
	}
	writeJSON(w, status, resp)
}
