package domain

import "strings"

// Colormap is a derived color sequence with a presentation name.
type Colormap struct {
	Name   string   `json:"name"`
	Colors []string `json:"colors"`
}

// N returns the number of colors in the colormap.
func (c Colormap) N() int {
	return len(c.Colors)
}

// IsReversed reports whether the name carries the reversal marker.
func (c Colormap) IsReversed() bool {
	return strings.HasSuffix(c.Name, ReversedSuffix)
}

// Reversed returns the colormap with its colors in opposite order and the
// reversal marker toggled on the name.
func (c Colormap) Reversed() Colormap {
	name := c.Name + ReversedSuffix
	if c.IsReversed() {
		name = strings.TrimSuffix(c.Name, ReversedSuffix)
	}
	return Colormap{Name: name, Colors: reversed(c.Colors)}
}

// RGBA decodes every color for renderers.
func (c Colormap) RGBA() ([]RGBA, error) {
	out := make([]RGBA, len(c.Colors))
	for i, h := range c.Colors {
		v, err := ParseHex(h)
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}
