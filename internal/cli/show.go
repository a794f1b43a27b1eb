package cli

import (
	"github.com/spf13/cobra"

	"github.com/emiliopalmerini/momacolors/internal/adapters/render"
)

var showCmd = &cobra.Command{
	Use:   "show [palette...]",
	Short: "Draw colormap swatches in the terminal",
	Long: `Draw one true-color swatch per colormap, labeled with its name.

Without arguments every palette matching the filter flags is shown.

Examples:
  moma show                             # Every palette
  moma show Abbott -n 256               # Smooth 256-color gradient
  moma show --diverging -n 256          # Every diverging palette
  moma show --colorblind -n 6 -b discrete
  moma show Abbott --width 40 --color   # Force colors when piping`,
	RunE: runShow,
}

// Flags
var (
	showBrew   brewFlags
	showFilter filterFlags
	showWidth  int
	showColor  bool
)

func init() {
	rootCmd.AddCommand(showCmd)

	showBrew.register(showCmd)
	showFilter.register(showCmd)
	showCmd.Flags().IntVarP(&showWidth, "width", "w", render.DefaultTerminalWidth, "Swatch width in columns")
	showCmd.Flags().BoolVar(&showColor, "color", false, "Emit colors even when output is not a terminal")
}

func runShow(cmd *cobra.Command, args []string) error {
	opts, err := showBrew.options()
	if err != nil {
		return err
	}
	return withApp(cmd.Context(), func(app *AppContext) error {
		cmaps, err := deriveColormaps(cmd, app, args, opts, showFilter.filter())
		if err != nil {
			return err
		}
		r := &render.TerminalRenderer{Width: showWidth, Labeled: true, ForceColor: showColor}
		return r.Render(cmd.OutOrStdout(), cmaps)
	})
}
