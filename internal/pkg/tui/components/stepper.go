package components

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/emiliopalmerini/momacolors/internal/pkg/tui/theme"
)

// Stepper is a bounded integer input driven by keys.
type Stepper struct {
	Label    string
	Value    int
	Min, Max int
	// Zero is shown instead of the number when Value is 0.
	Zero   string
	styles *theme.Styles
}

// NewStepper creates a stepper over [lo, hi] starting at value.
func NewStepper(label string, value, lo, hi int) Stepper {
	s := Stepper{
		Label:  label,
		Min:    lo,
		Max:    hi,
		styles: theme.Default(),
	}
	s.SetValue(value)
	return s
}

// SetValue sets the value, clamped to the bounds.
func (s *Stepper) SetValue(v int) {
	s.Value = max(s.Min, min(v, s.Max))
}

// Update handles +/- and shifted steps of ten.
func (s Stepper) Update(msg tea.Msg) (Stepper, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil
	}
	switch key.String() {
	case "+", "=", "right", "l":
		s.SetValue(s.Value + 1)
	case "-", "_", "left", "h":
		s.SetValue(s.Value - 1)
	case "]":
		s.SetValue(s.Value + 10)
	case "[":
		s.SetValue(s.Value - 10)
	case "0":
		s.SetValue(0)
	}
	return s, nil
}

// View renders e.g. "colors < 12 >".
func (s Stepper) View() string {
	v := fmt.Sprintf("%d", s.Value)
	if s.Value == 0 && s.Zero != "" {
		v = s.Zero
	}
	return s.styles.Subtitle.Render(s.Label) + " " +
		s.styles.Muted.Render("<") + " " + s.styles.Bold.Render(v) + " " + s.styles.Muted.Render(">")
}
