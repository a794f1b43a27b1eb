package catalog

import "github.com/emiliopalmerini/momacolors/internal/domain"

// PaletteInfo is the listing view of a palette.
type PaletteInfo struct {
	Name               string   `json:"name"`
	Colors             []string `json:"colors"`
	Order              []int    `json:"order"`
	NumColors          int      `json:"num_colors"`
	Category           string   `json:"category"`
	Sequential         bool     `json:"sequential"`
	Diverging          bool     `json:"diverging"`
	ColorblindFriendly bool     `json:"colorblind_friendly"`
}

func infoFrom(p domain.Palette) PaletteInfo {
	return PaletteInfo{
		Name:               p.Name,
		Colors:             p.Colors,
		Order:              p.Order,
		NumColors:          p.NumColors(),
		Category:           p.Category(),
		Sequential:         p.Sequential,
		Diverging:          p.Diverging,
		ColorblindFriendly: p.ColorblindFriendly,
	}
}
