package cli

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/emiliopalmerini/momacolors/internal/app/tui"
)

var browseCmd = &cobra.Command{
	Use:   "browse",
	Short: "Browse palettes interactively",
	Long: `Open a full-screen palette browser.

Keys:
  1-4        filter: all, sequential, diverging, colorblind friendly
  j/k        move between palettes
  +/- [ ]    change the number of colors (0 = palette size)
  b          cycle brew type: auto, discrete, continuous
  r          reverse
  o          toggle override order
  q          quit`,
	Args: cobra.NoArgs,
	RunE: runBrowse,
}

func init() {
	rootCmd.AddCommand(browseCmd)
}

func runBrowse(cmd *cobra.Command, args []string) error {
	return withApp(cmd.Context(), func(app *AppContext) error {
		lr := lipgloss.NewRenderer(cmd.OutOrStdout())
		p := tea.NewProgram(
			tui.NewApp(cmd.Context(), app.Catalog, lr),
			tea.WithAltScreen(),
			tea.WithContext(cmd.Context()),
			tea.WithOutput(cmd.OutOrStdout()),
		)
		if _, err := p.Run(); err != nil {
			return fmt.Errorf("browser failed: %w", err)
		}
		return nil
	})
}
