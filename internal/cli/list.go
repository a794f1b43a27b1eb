package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/emiliopalmerini/momacolors/internal/adapters/render"
	"github.com/emiliopalmerini/momacolors/internal/catalog"
	"github.com/emiliopalmerini/momacolors/internal/domain"
	"github.com/emiliopalmerini/momacolors/internal/pkg/tui/theme"
	"github.com/emiliopalmerini/momacolors/internal/util"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List palettes",
	Long: `List the available palettes with their size, category and a swatch.

Examples:
  moma list                           # All palettes
  moma list --sequential              # Sequential palettes only
  moma list --qualitative             # Neither sequential nor diverging
  moma list --diverging --colorblind  # Colorblind-friendly diverging palettes
  moma list --names                   # Names only, one per line
  moma list --json                    # Full palette records as JSON`,
	Args: cobra.NoArgs,
	RunE: runList,
}

// Flags
var (
	listFilter filterFlags
	listJSON   bool
	listNames  bool
)

func init() {
	rootCmd.AddCommand(listCmd)

	listFilter.register(listCmd)
	listCmd.Flags().BoolVar(&listJSON, "json", false, "Output as JSON")
	listCmd.Flags().BoolVar(&listNames, "names", false, "Print names only")
	listCmd.MarkFlagsMutuallyExclusive("json", "names")
}

func runList(cmd *cobra.Command, args []string) error {
	return withApp(cmd.Context(), func(app *AppContext) error {
		palettes, err := app.Catalog.Palettes(listFilter.filter())
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		switch {
		case listJSON:
			enc := json.NewEncoder(out)
			enc.SetIndent("", "  ")
			return enc.Encode(palettes)
		case listNames:
			for _, p := range palettes {
				fmt.Fprintln(out, p.Name)
			}
			return nil
		}
		return printPaletteTable(out, palettes, util.FormatFilter(listFilter.filter()))
	})
}

func printPaletteTable(out io.Writer, palettes []catalog.PaletteInfo, heading string) error {
	lr := lipgloss.NewRenderer(out)
	styles := theme.Default()
	nameWidth := 0
	for _, p := range palettes {
		nameWidth = max(nameWidth, len(p.Name))
	}
	name := lr.NewStyle().Width(nameWidth + 2)
	cell := lr.NewStyle().Width(14)

	fmt.Fprintf(out, "%s (%d)\n\n", heading, len(palettes))
	for _, p := range palettes {
		colors, err := domain.Colormap{Name: p.Name, Colors: p.Colors}.RGBA()
		if err != nil {
			return fmt.Errorf("failed to decode %s: %w", p.Name, err)
		}
		cbf := ""
		if p.ColorblindFriendly {
			cbf = "cbf"
		}
		fmt.Fprintln(out,
			name.Render(p.Name)+
				lr.NewStyle().Width(4).Render(fmt.Sprintf("%d", p.NumColors))+
				cell.Render(p.Category)+
				lr.NewStyle().Width(5).Inherit(styles.Success).Render(cbf)+
				render.Swatch(lr, colors, 3*len(colors)),
		)
	}
	return nil
}
