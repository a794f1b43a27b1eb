package components

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/emiliopalmerini/momacolors/internal/pkg/tui/theme"
)

// ListItem is one row of a List.
type ListItem struct {
	Name  string
	Badge string // Short annotation shown after the name
}

// List is a scrolling single-select list.
type List struct {
	Items  []ListItem
	Cursor int
	// Height is the number of visible rows; 0 shows everything.
	Height int
	offset int
	styles *theme.Styles
}

// NewList creates a list with the cursor on the first item.
func NewList(items []ListItem) List {
	return List{
		Items:  items,
		styles: theme.Default(),
	}
}

// SetItems replaces the items, keeping the cursor on the same name when it
// is still present.
func (l *List) SetItems(items []ListItem) {
	current := l.Selected().Name
	l.Items = items
	l.Cursor = 0
	for i, it := range items {
		if it.Name == current {
			l.Cursor = i
			break
		}
	}
	l.clamp()
}

// Selected returns the item under the cursor, or the zero item if the list
// is empty.
func (l List) Selected() ListItem {
	if l.Cursor < 0 || l.Cursor >= len(l.Items) {
		return ListItem{}
	}
	return l.Items[l.Cursor]
}

// Update handles navigation keys.
func (l List) Update(msg tea.Msg) (List, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok || len(l.Items) == 0 {
		return l, nil
	}
	page := l.Height
	if page <= 0 {
		page = 10
	}
	switch key.String() {
	case "k", "up":
		l.Cursor--
	case "j", "down":
		l.Cursor++
	case "pgup":
		l.Cursor -= page
	case "pgdown":
		l.Cursor += page
	case "g", "home":
		l.Cursor = 0
	case "G", "end":
		l.Cursor = len(l.Items) - 1
	}
	l.clamp()
	return l, nil
}

func (l *List) clamp() {
	l.Cursor = max(0, min(l.Cursor, len(l.Items)-1))
	if l.Height <= 0 {
		l.offset = 0
		return
	}
	if l.Cursor < l.offset {
		l.offset = l.Cursor
	}
	if l.Cursor >= l.offset+l.Height {
		l.offset = l.Cursor - l.Height + 1
	}
}

// View renders the visible window of the list.
func (l List) View() string {
	end := len(l.Items)
	if l.Height > 0 {
		end = min(end, l.offset+l.Height)
	}
	var b strings.Builder
	for i := l.offset; i < end; i++ {
		it := l.Items[i]
		badge := l.styles.Muted
		if i == l.Cursor {
			b.WriteString(l.styles.Cursor.Render("> " + it.Name))
			badge = l.styles.Selected
		} else {
			b.WriteString("  " + l.styles.Body.Render(it.Name))
		}
		if it.Badge != "" {
			b.WriteString(" " + badge.Render(it.Badge))
		}
		b.WriteString("\n")
	}
	return b.String()
}
