package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/emiliopalmerini/momacolors/internal/adapters/render"
	"github.com/emiliopalmerini/momacolors/internal/catalog"
	"github.com/emiliopalmerini/momacolors/internal/domain"
)

var exportCmd = &cobra.Command{
	Use:   "export [palette...]",
	Short: "Write colormap preview images",
	Long: `Write colormap preview images as SVG or PNG.

Without arguments or filter flags, writes the standard preview set
(colormaps, sequential, sequential_256, diverging_256, colorblind_6*,
abbott*) to the image directory. With palette names or filter flags,
writes one ad-hoc figure to --output.

Examples:
  moma export                           # Standard set into ./images (MOMA_IMAGE_DIR)
  moma export --format png --dir docs   # Standard set as PNG into docs/
  moma export Abbott -n 20 -o abbott.svg
  moma export --sequential -n 256 -o seq.png`,
	RunE: runExport,
}

// Flags
var (
	exportBrew   brewFlags
	exportFilter filterFlags
	exportFormat string
	exportDir    string
	exportOutput string
)

func init() {
	rootCmd.AddCommand(exportCmd)

	exportBrew.register(exportCmd)
	exportFilter.register(exportCmd)
	exportCmd.Flags().StringVarP(&exportFormat, "format", "f", "svg", "Image format: svg or png")
	exportCmd.Flags().StringVar(&exportDir, "dir", "", "Output directory for the standard set (default from MOMA_IMAGE_DIR)")
	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", "", "Output file for an ad-hoc figure (format taken from the extension)")
}

func runExport(cmd *cobra.Command, args []string) error {
	opts, err := exportBrew.options()
	if err != nil {
		return err
	}
	return withApp(cmd.Context(), func(app *AppContext) error {
		adHoc := len(args) > 0 || !exportFilter.filter().IsZero() || exportOutput != ""
		if adHoc {
			return exportFigure(cmd, app, args, opts)
		}
		dir := exportDir
		if dir == "" {
			dir = app.Config.ImageDir
		}
		return exportStandardSet(cmd, app, dir)
	})
}

func exportStandardSet(cmd *cobra.Command, app *AppContext, dir string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create image directory: %w", err)
	}
	for _, fig := range catalog.StandardFigures() {
		cmaps, err := app.Catalog.FigureColormaps(cmd.Context(), fig)
		if err != nil {
			return fmt.Errorf("failed to derive figure %s: %w", fig.Name, err)
		}
		path := filepath.Join(dir, fig.Name+"."+exportFormat)
		if err := writeImage(path, exportFormat, fig.Labeled(), cmaps); err != nil {
			return err
		}
		app.Logger.Info("wrote image", "path", path, "colormaps", len(cmaps))
		fmt.Fprintln(cmd.OutOrStdout(), path)
	}
	return nil
}

func exportFigure(cmd *cobra.Command, app *AppContext, names []string, opts domain.BrewOptions) error {
	cmaps, err := deriveColormaps(cmd, app, names, opts, exportFilter.filter())
	if err != nil {
		return err
	}

	format := exportFormat
	path := exportOutput
	if path == "" {
		name := "colormaps"
		if len(cmaps) == 1 {
			name = cmaps[0].Name
		}
		path = name + "." + format
	} else if ext := strings.TrimPrefix(filepath.Ext(path), "."); ext != "" {
		format = strings.ToLower(ext)
	}

	// A single palette is drawn as a plain swatch, like a figure of one axis.
	labeled := len(names) != 1
	if err := writeImage(path, format, labeled, cmaps); err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), path)
	return nil
}

func writeImage(path, format string, labeled bool, cmaps []domain.Colormap) (err error) {
	renderer, err := render.ForFormat(format, labeled)
	if err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("failed to close %s: %w", path, cerr)
		}
	}()
	if err := renderer.Render(f, cmaps); err != nil {
		return fmt.Errorf("failed to render %s: %w", path, err)
	}
	return nil
}
