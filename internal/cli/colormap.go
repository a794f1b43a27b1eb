package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/emiliopalmerini/momacolors/internal/domain"
)

var colormapCmd = &cobra.Command{
	Use:   "colormap [palette...]",
	Short: "Print named colormaps",
	Long: `Print colormaps as JSON objects with a name and a list of colors.

Without arguments every palette matching the filter flags is included.

Examples:
  moma colormap Abbott -n 256           # One 256-color colormap
  moma colormap Abbott Ernst -r         # Two reversed colormaps
  moma colormap --sequential -n 9       # Every sequential palette`,
	RunE: runColormap,
}

// Flags
var (
	colormapBrew   brewFlags
	colormapFilter filterFlags
)

func init() {
	rootCmd.AddCommand(colormapCmd)

	colormapBrew.register(colormapCmd)
	colormapFilter.register(colormapCmd)
}

func runColormap(cmd *cobra.Command, args []string) error {
	opts, err := colormapBrew.options()
	if err != nil {
		return err
	}
	return withApp(cmd.Context(), func(app *AppContext) error {
		cmaps, err := deriveColormaps(cmd, app, args, opts, colormapFilter.filter())
		if err != nil {
			return err
		}
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		if len(args) == 1 {
			return enc.Encode(cmaps[0])
		}
		return enc.Encode(cmaps)
	})
}

// deriveColormaps derives the named palettes in order, or every palette
// matching f when names is empty.
func deriveColormaps(cmd *cobra.Command, app *AppContext, names []string, opts domain.BrewOptions, f domain.Filter) ([]domain.Colormap, error) {
	ctx := cmd.Context()
	if len(names) == 0 {
		return app.Catalog.AllColormaps(ctx, opts, f)
	}
	if !f.IsZero() {
		return nil, fmt.Errorf("filter flags cannot be combined with palette names")
	}
	cmaps := make([]domain.Colormap, 0, len(names))
	for _, name := range names {
		cm, err := app.Catalog.Colormap(ctx, name, opts)
		if err != nil {
			return nil, err
		}
		cmaps = append(cmaps, cm)
	}
	return cmaps, nil
}
