package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/emiliopalmerini/momacolors/internal/domain"
	"github.com/emiliopalmerini/momacolors/internal/pkg/tui/theme"
)

// Tab is a palette category filter.
type Tab int

const (
	TabAll Tab = iota
	TabSequential
	TabDiverging
	TabColorblind
)

var tabs = []struct {
	key   string
	label string
}{
	{"1", "All"},
	{"2", "Sequential"},
	{"3", "Diverging"},
	{"4", "Colorblind"},
}

// Filter returns the palette filter the tab selects.
func (t Tab) Filter() domain.Filter {
	switch t {
	case TabSequential:
		return domain.Filter{Sequential: domain.Ptr(true)}
	case TabDiverging:
		return domain.Filter{Diverging: domain.Ptr(true)}
	case TabColorblind:
		return domain.Filter{ColorblindFriendly: domain.Ptr(true)}
	default:
		return domain.Filter{}
	}
}

// renderTabs renders the tabs toggle-style, the active one inverted.
func renderTabs(active Tab, styles *theme.Styles) string {
	items := make([]string, 0, len(tabs))
	for i, t := range tabs {
		if Tab(i) == active {
			items = append(items, styles.Active.Render(t.label))
			continue
		}
		key := lipgloss.NewStyle().Foreground(theme.Gray600).Render("[" + t.key + "]")
		items = append(items, key+" "+styles.Inactive.Render(t.label))
	}
	sep := lipgloss.NewStyle().Foreground(theme.Gray700).Render("  /  ")
	return strings.Join(items, sep)
}
