package util

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/emiliopalmerini/momacolors/internal/domain"
)

// ParseDirection accepts "1", "+1", "forward", "-1" and "reverse". An empty
// string is Forward.
func ParseDirection(s string) (domain.Direction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "1", "+1", "forward", "fwd":
		return domain.Forward, nil
	case "-1", "reverse", "reversed", "rev":
		return domain.Reverse, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", domain.ErrInvalidDirection, s)
	}
	d := domain.Direction(n)
	return d, d.Validate()
}

// ParseTriState parses an optional boolean. "", "any" and "all" mean unset.
func ParseTriState(s string) (*bool, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "any", "all":
		return nil, nil
	case "yes", "y", "on":
		return domain.Ptr(true), nil
	case "no", "n", "off":
		return domain.Ptr(false), nil
	}
	b, err := strconv.ParseBool(s)
	if err != nil {
		return nil, fmt.Errorf("invalid boolean %q", s)
	}
	return &b, nil
}

// ParseCount parses a color count. An empty string is 0, meaning the
// palette size. A limit <= 0 disables the upper bound.
func ParseCount(s string, limit int) (int, error) {
	if strings.TrimSpace(s) == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not a number", domain.ErrInvalidCount, s)
	}
	if n < 0 {
		return 0, fmt.Errorf("%w: %d is negative", domain.ErrInvalidCount, n)
	}
	if limit > 0 && n > limit {
		return 0, fmt.Errorf("%w: %d exceeds the limit of %d", domain.ErrInvalidCount, n, limit)
	}
	return n, nil
}

// FormatFilter describes a filter for headings, e.g. "sequential, colorblind friendly".
func FormatFilter(f domain.Filter) string {
	var parts []string
	add := func(v *bool, yes, no string) {
		if v == nil {
			return
		}
		if *v {
			parts = append(parts, yes)
		} else {
			parts = append(parts, no)
		}
	}
	add(f.Sequential, "sequential", "not sequential")
	add(f.Diverging, "diverging", "not diverging")
	add(f.ColorblindFriendly, "colorblind friendly", "not colorblind friendly")
	if len(parts) == 0 {
		return "all palettes"
	}
	return strings.Join(parts, ", ")
}
