package cli

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var colorsCmd = &cobra.Command{
	Use:   "colors <palette>",
	Short: "Print colors derived from a palette",
	Long: `Print n colors derived from a palette, one hex code per line.

Requesting more colors than the palette holds switches to continuous
interpolation unless --brew discrete is given. A name ending in _r
reverses the palette.

Examples:
  moma colors Abbott                    # The palette's own colors
  moma colors Abbott -n 4               # Four colors by priority
  moma colors Abbott -n 4 --override-order
  moma colors Abbott -n 20              # Twenty interpolated colors
  moma colors Abbott -n 20 -b discrete  # Cycle through the palette
  moma colors Abbott_r --json           # Reversed, as a JSON array`,
	Args: cobra.ExactArgs(1),
	RunE: runColors,
}

// Flags
var (
	colorsBrew   brewFlags
	colorsJSON   bool
	colorsInline bool
)

func init() {
	rootCmd.AddCommand(colorsCmd)

	colorsBrew.register(colorsCmd)
	colorsCmd.Flags().BoolVar(&colorsJSON, "json", false, "Output as a JSON array")
	colorsCmd.Flags().BoolVar(&colorsInline, "inline", false, "Print all colors on one line")
}

func runColors(cmd *cobra.Command, args []string) error {
	opts, err := colorsBrew.options()
	if err != nil {
		return err
	}
	return withApp(cmd.Context(), func(app *AppContext) error {
		colors, err := app.Catalog.Colors(cmd.Context(), args[0], opts)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		switch {
		case colorsJSON:
			return json.NewEncoder(out).Encode(colors)
		case colorsInline:
			fmt.Fprintln(out, strings.Join(colors, " "))
		default:
			for _, c := range colors {
				fmt.Fprintln(out, c)
			}
		}
		return nil
	})
}
