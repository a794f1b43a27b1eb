package tui

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/emiliopalmerini/momacolors/internal/adapters/render"
	"github.com/emiliopalmerini/momacolors/internal/catalog"
	"github.com/emiliopalmerini/momacolors/internal/domain"
	"github.com/emiliopalmerini/momacolors/internal/pkg/tui/components"
	"github.com/emiliopalmerini/momacolors/internal/pkg/tui/theme"
)

const (
	listWidth     = 26
	minSwatchCols = 16
	// maxColors bounds the count stepper.
	maxColors = 256
)

// palettesMsg carries a reloaded palette list. seq identifies the request.
type palettesMsg struct {
	seq      int
	palettes []catalog.PaletteInfo
	err      error
}

// colormapMsg carries a derived colormap for the named palette. seq
// identifies the request.
type colormapMsg struct {
	seq      int
	palette  string
	colormap domain.Colormap
	err      error
}

// App is the interactive palette browser.
type App struct {
	ctx      context.Context
	catalog  *catalog.Service
	tab      Tab
	list     components.List
	palettes map[string]catalog.PaletteInfo
	count    components.Stepper
	brew     domain.BrewType
	reverse  bool
	override bool
	colormap domain.Colormap
	err      error
	lr       *lipgloss.Renderer
	styles   *theme.Styles
	width    int
	height   int
	// Sequence numbers of the latest requests; older results are dropped.
	paletteSeq int
	deriveSeq  int
}

// NewApp creates a browser over the given catalog.
func NewApp(ctx context.Context, svc *catalog.Service, lr *lipgloss.Renderer) *App {
	count := components.NewStepper("colors", 0, 0, maxColors)
	count.Zero = "all"
	return &App{
		ctx:     ctx,
		catalog: svc,
		list:    components.NewList(nil),
		count:   count,
		lr:      lr,
		styles:  theme.Default(),
		width:   80,
		height:  24,
	}
}

// Init implements tea.Model
func (a *App) Init() tea.Cmd {
	return a.loadPalettes()
}

func (a *App) loadPalettes() tea.Cmd {
	f := a.tab.Filter()
	a.paletteSeq++
	seq := a.paletteSeq
	return func() tea.Msg {
		palettes, err := a.catalog.Palettes(f)
		return palettesMsg{seq: seq, palettes: palettes, err: err}
	}
}

func (a *App) derive() tea.Cmd {
	name := a.list.Selected().Name
	if name == "" {
		return nil
	}
	opts := a.options()
	a.deriveSeq++
	seq := a.deriveSeq
	return func() tea.Msg {
		cm, err := a.catalog.Colormap(a.ctx, name, opts)
		return colormapMsg{seq: seq, palette: name, colormap: cm, err: err}
	}
}

func (a *App) options() domain.BrewOptions {
	opts := domain.BrewOptions{
		N:             a.count.Value,
		Brew:          a.brew,
		Direction:     domain.Forward,
		OverrideOrder: a.override,
	}
	if a.reverse {
		opts.Direction = domain.Reverse
	}
	return opts
}

// Update implements tea.Model
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return a, a.handleKey(msg)

	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.list.Height = max(3, msg.Height-8)
		a.list.SetItems(a.list.Items)

	case palettesMsg:
		if msg.seq != a.paletteSeq {
			return a, nil
		}
		a.err = msg.err
		a.palettes = make(map[string]catalog.PaletteInfo, len(msg.palettes))
		items := make([]components.ListItem, 0, len(msg.palettes))
		for _, p := range msg.palettes {
			a.palettes[p.Name] = p
			items = append(items, components.ListItem{Name: p.Name, Badge: fmt.Sprintf("%d", p.NumColors)})
		}
		a.list.SetItems(items)
		a.colormap = domain.Colormap{}
		if msg.err != nil {
			return a, nil
		}
		return a, a.derive()

	case colormapMsg:
		// Drop results superseded by a later request.
		if msg.seq != a.deriveSeq {
			return a, nil
		}
		a.colormap, a.err = msg.colormap, msg.err
	}
	return a, nil
}

func (a *App) handleKey(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "q", "ctrl+c", "esc":
		return tea.Quit
	case "1", "2", "3", "4":
		tab := Tab(msg.String()[0] - '1')
		if tab == a.tab {
			return nil
		}
		a.tab = tab
		return a.loadPalettes()
	case "b":
		a.brew = nextBrew(a.brew)
		return a.derive()
	case "r":
		a.reverse = !a.reverse
		return a.derive()
	case "o":
		a.override = !a.override
		return a.derive()
	case "+", "=", "-", "_", "[", "]", "0", "left", "right":
		prev := a.count.Value
		a.count, _ = a.count.Update(msg)
		if a.count.Value == prev {
			return nil
		}
		return a.derive()
	}

	prev := a.list.Selected().Name
	a.list, _ = a.list.Update(msg)
	if a.list.Selected().Name == prev {
		return nil
	}
	return a.derive()
}

func nextBrew(b domain.BrewType) domain.BrewType {
	switch b {
	case domain.BrewAuto:
		return domain.BrewDiscrete
	case domain.BrewDiscrete:
		return domain.BrewContinuous
	default:
		return domain.BrewAuto
	}
}

// View implements tea.Model
func (a *App) View() string {
	sep := lipgloss.NewStyle().
		Foreground(theme.Gray700).
		Render(strings.Repeat("─", max(10, a.width-2)))

	body := lipgloss.JoinHorizontal(lipgloss.Top,
		lipgloss.NewStyle().Width(listWidth).Render(a.list.View()),
		a.renderDetail(),
	)

	help := components.NewHelpBar(
		components.KeyBinding{Key: "1-4", Desc: "filter"},
		components.KeyBinding{Key: "j/k", Desc: "palette"},
		components.KeyBinding{Key: "+/-", Desc: "colors"},
		components.KeyBinding{Key: "b", Desc: "brew"},
		components.KeyBinding{Key: "r", Desc: "reverse"},
		components.KeyBinding{Key: "o", Desc: "override order"},
		components.KeyBinding{Key: "q", Desc: "quit"},
	)

	return lipgloss.JoinVertical(lipgloss.Left, a.renderHeader(), renderTabs(a.tab, a.styles), sep, body, "", help.View())
}

func (a *App) renderHeader() string {
	title := a.styles.Title.Render("MOMA")
	tagline := a.styles.Muted.Render("Palettes from the MoMA collection")
	return lipgloss.JoinHorizontal(lipgloss.Bottom, title, "  ", tagline)
}

func (a *App) renderDetail() string {
	cols := max(minSwatchCols, a.width-listWidth-6)
	if a.err != nil && len(a.list.Items) == 0 {
		return a.styles.Card.Render(a.styles.Error.Render(a.err.Error()))
	}
	info, ok := a.palettes[a.list.Selected().Name]
	if !ok {
		return a.styles.Card.Render(a.styles.Muted.Render("loading..."))
	}

	var b strings.Builder
	b.WriteString(a.styles.Bold.Render(info.Name))
	b.WriteString("  ")
	meta := fmt.Sprintf("%s, %d colors", info.Category, info.NumColors)
	if info.ColorblindFriendly {
		meta += ", colorblind friendly"
	}
	b.WriteString(a.styles.Muted.Render(meta))
	b.WriteString("\n\n")
	b.WriteString(a.swatch(info.Colors, cols))
	b.WriteString("\n\n")

	b.WriteString(a.count.View())
	b.WriteString("  ")
	b.WriteString(a.setting("brew", brewLabel(a.brew)))
	b.WriteString(a.setting("reverse", onOff(a.reverse)))
	b.WriteString(a.setting("override", onOff(a.override)))
	b.WriteString("\n\n")

	if a.err != nil {
		b.WriteString(a.styles.Error.Render(a.err.Error()))
		return a.styles.Card.Render(b.String())
	}
	if a.colormap.Name != "" {
		b.WriteString(a.styles.Subtitle.Render(a.colormap.Name))
		b.WriteString("\n")
		b.WriteString(a.swatch(a.colormap.Colors, cols))
		b.WriteString("\n")
		b.WriteString(a.styles.Body.Render(lightnessProfile(a.colormap.Colors, cols)))
		b.WriteString("\n")
		b.WriteString(a.styles.Muted.Render(wrapHex(a.colormap.Colors, cols)))
	}
	return a.styles.Card.Render(b.String())
}

func (a *App) swatch(hex []string, cols int) string {
	cm := domain.Colormap{Colors: hex}
	colors, err := cm.RGBA()
	if err != nil {
		return a.styles.Error.Render(err.Error())
	}
	return render.Swatch(a.lr, colors, cols)
}

func (a *App) setting(label, value string) string {
	return a.styles.Subtitle.Render(label) + " " + a.styles.Bold.Render(value) + "  "
}

func brewLabel(b domain.BrewType) string {
	if b == domain.BrewAuto {
		return "auto"
	}
	return string(b)
}

func onOff(b bool) string {
	if b {
		return "on"
	}
	return "off"
}

// lightnessProfile draws the L* of each color as a sparkline of at most
// cols cells, sampled like the swatch.
func lightnessProfile(hex []string, cols int) string {
	colors, err := domain.Colormap{Colors: hex}.RGBA()
	if err != nil || len(colors) == 0 {
		return ""
	}
	n := min(len(colors), cols)
	values := make([]float64, n)
	for j := range values {
		values[j] = colors[j*len(colors)/n].Lightness()
	}
	return components.Sparkline(values, 0, 1)
}

// wrapHex lays out hex codes in lines no wider than cols.
func wrapHex(colors []string, cols int) string {
	var b strings.Builder
	line := 0
	for i, c := range colors {
		if i > 0 {
			if line+1+len(c) > cols {
				b.WriteString("\n")
				line = 0
			} else {
				b.WriteString(" ")
				line++
			}
		}
		b.WriteString(c)
		line += len(c)
	}
	return b.String()
}
