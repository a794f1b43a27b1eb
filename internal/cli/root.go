package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "moma",
	Short: "Color palettes inspired by the MoMA collection",
	Long: `moma derives discrete and continuous colormaps from a curated set of
palettes drawn from artworks in the Museum of Modern Art collection.

Browse palettes in the terminal, print derived colors, export preview images
or serve them over HTTP.`,
	SilenceUsage: true,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.SilenceErrors = true
}
