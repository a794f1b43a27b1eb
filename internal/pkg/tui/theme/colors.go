package theme

import "github.com/charmbracelet/lipgloss"

// Accent colors taken from the Abbott palette
var (
	Crimson = lipgloss.Color("#950404")
	Coral   = lipgloss.Color("#e04b28")
	Sand    = lipgloss.Color("#c38961")
	Teal    = lipgloss.Color("#007d82")
	Pine    = lipgloss.Color("#388f30")

	// Neutrals
	White    = lipgloss.Color("#FFFFFF")
	Gray400  = lipgloss.Color("#9CA3AF")
	Gray500  = lipgloss.Color("#6B7280")
	Gray600  = lipgloss.Color("#525252")
	Gray700  = lipgloss.Color("#374151")
	Charcoal = lipgloss.Color("#111827")

	// Semantic colors
	Success = Pine
	Error   = Coral
)
