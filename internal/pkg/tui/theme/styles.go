package theme

import (
	"sync"

	"github.com/charmbracelet/lipgloss"
)

// Styles contains all shared TUI styles
type Styles struct {
	// Text styles
	Title    lipgloss.Style
	Subtitle lipgloss.Style
	Body     lipgloss.Style
	Muted    lipgloss.Style
	Bold     lipgloss.Style

	// Interactive elements
	Cursor   lipgloss.Style
	Selected lipgloss.Style
	Active   lipgloss.Style
	Inactive lipgloss.Style

	// Help and hints
	HelpKey lipgloss.Style

	// Layout
	Card lipgloss.Style

	// Status indicators
	Success lipgloss.Style
	Error   lipgloss.Style
}

var (
	defaultStyles *Styles
	once          sync.Once
)

// Default returns the singleton default Styles instance
func Default() *Styles {
	once.Do(func() {
		defaultStyles = newStyles()
	})
	return defaultStyles
}

func newStyles() *Styles {
	return &Styles{
		// Text styles
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(White),

		Subtitle: lipgloss.NewStyle().
			Foreground(Sand).
			Bold(true),

		Body: lipgloss.NewStyle().
			Foreground(Gray400),

		Muted: lipgloss.NewStyle().
			Foreground(Gray500),

		Bold: lipgloss.NewStyle().
			Bold(true).
			Foreground(White),

		// Interactive elements
		Cursor: lipgloss.NewStyle().
			Foreground(Coral).
			Bold(true),

		Selected: lipgloss.NewStyle().
			Foreground(Teal),

		Active: lipgloss.NewStyle().
			Foreground(Charcoal).
			Background(Sand).
			Padding(0, 1),

		Inactive: lipgloss.NewStyle().
			Foreground(Gray500),

		// Help and hints
		HelpKey: lipgloss.NewStyle().
			Foreground(Sand).
			Bold(true),

		// Layout
		Card: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Gray700).
			Padding(0, 1),

		// Status indicators
		Success: lipgloss.NewStyle().
			Foreground(Success),

		Error: lipgloss.NewStyle().
			Foreground(Error),
	}
}
