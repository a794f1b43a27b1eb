package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/emiliopalmerini/momacolors/internal/web"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the palette web service",
	Long: `Start the HTTP service: an HTML palette gallery plus a JSON and image API.

Endpoints:
  GET /                                  Palette gallery
  GET /palettes/{name}                   Palette page
  GET /api/palettes                      Palette records (filters: sequential, diverging, colorblind)
  GET /api/palettes/{name}               One palette record
  GET /api/palettes/{name}/colors        Derived colors (n, brew, direction, override)
  GET /api/palettes/{name}/image         Preview image (format=svg|png)
  GET /api/colormaps                     Colormaps for every matching palette
  GET /api/colormaps/image               Preview of every matching palette

Examples:
  moma serve                 # Listen on MOMA_ADDR (default :8080)
  moma serve --addr :3000    # Listen on port 3000`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

var serveAddr string

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().StringVarP(&serveAddr, "addr", "a", "", "Address to listen on (default from MOMA_ADDR)")
}

func runServe(cmd *cobra.Command, args []string) error {
	// Create context that cancels on interrupt
	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	// Handle shutdown signals
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigChan)
	go func() {
		select {
		case <-sigChan:
			fmt.Fprintln(cmd.ErrOrStderr(), "\nShutting down...")
			cancel()
		case <-ctx.Done():
		}
	}()

	return withApp(ctx, func(app *AppContext) error {
		cfg := web.Config{
			Addr:            app.Config.Server.Addr,
			ShutdownTimeout: app.Config.Server.ShutdownTimeout,
			MaxColors:       app.Config.Server.MaxColors,
		}
		if serveAddr != "" {
			cfg.Addr = serveAddr
		}
		server := web.NewServer(cfg, app.Catalog, app.Logger)
		return server.Start(ctx)
	})
}
