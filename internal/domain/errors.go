package domain

import "errors"

// Caller input errors. They are always wrapped with context, so test with errors.Is.
var (
	ErrUnknownPalette   = errors.New("unknown palette")
	ErrInvalidDirection = errors.New("invalid direction")
	ErrUnknownBrewType  = errors.New("unknown brew type")
	ErrEmptySelection   = errors.New("no palettes match the specified criteria")
	ErrInvalidCount     = errors.New("invalid color count")
	ErrInvalidPalette   = errors.New("invalid palette")
)
