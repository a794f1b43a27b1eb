package cli

import (
	"github.com/spf13/cobra"

	"github.com/emiliopalmerini/momacolors/internal/domain"
	"github.com/emiliopalmerini/momacolors/internal/util"
)

// logLevel overrides MOMA_LOG_LEVEL when set.
var logLevel string

func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level: debug, info, warn, error (default from MOMA_LOG_LEVEL)")
}

// brewFlags are the derivation options shared by commands.
type brewFlags struct {
	n         int
	brew      string
	direction string
	reverse   bool
	override  bool
}

func (b *brewFlags) register(cmd *cobra.Command) {
	f := cmd.Flags()
	f.IntVarP(&b.n, "n", "n", 0, "Number of colors (0 = palette size)")
	f.StringVarP(&b.brew, "brew", "b", "auto", "Brew type: auto, discrete, continuous")
	f.StringVarP(&b.direction, "direction", "d", "1", "Direction: 1 or -1")
	f.BoolVarP(&b.reverse, "reverse", "r", false, "Reverse the colors (same as --direction -1)")
	f.BoolVar(&b.override, "override-order", false, "Take discrete colors in storage order instead of priority order")
}

func (b *brewFlags) options() (domain.BrewOptions, error) {
	brew, err := domain.ParseBrewType(b.brew)
	if err != nil {
		return domain.BrewOptions{}, err
	}
	dir, err := util.ParseDirection(b.direction)
	if err != nil {
		return domain.BrewOptions{}, err
	}
	if b.reverse {
		dir = -dir
	}
	return domain.BrewOptions{
		N:             b.n,
		Brew:          brew,
		Direction:     dir,
		OverrideOrder: b.override,
	}, nil
}

// filterFlags select palettes by category.
type filterFlags struct {
	sequential  bool
	diverging   bool
	qualitative bool
	colorblind  bool
}

func (ff *filterFlags) register(cmd *cobra.Command) {
	f := cmd.Flags()
	f.BoolVar(&ff.sequential, "sequential", false, "Only sequential palettes")
	f.BoolVar(&ff.diverging, "diverging", false, "Only diverging palettes")
	f.BoolVar(&ff.qualitative, "qualitative", false, "Only palettes that are neither sequential nor diverging")
	f.BoolVar(&ff.colorblind, "colorblind", false, "Only colorblind-friendly palettes")
	cmd.MarkFlagsMutuallyExclusive("sequential", "diverging", "qualitative")
}

func (ff *filterFlags) filter() domain.Filter {
	var f domain.Filter
	switch {
	case ff.sequential:
		f.Sequential = domain.Ptr(true)
	case ff.diverging:
		f.Diverging = domain.Ptr(true)
	case ff.qualitative:
		f.Sequential = domain.Ptr(false)
		f.Diverging = domain.Ptr(false)
	}
	if ff.colorblind {
		f.ColorblindFriendly = domain.Ptr(true)
	}
	return f
}
