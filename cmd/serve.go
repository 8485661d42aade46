package cmd

import (
	"fmt"
	"net"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"folio/service"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the portfolio over HTTP",
	Long: `Seeds the content store, builds the catalog and serves the site and its
JSON API until interrupted. In-flight requests are given the configured
shutdown timeout to finish.`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	app, err := newApp(cmd)
	if err != nil {
		return err
	}
	defer app.Close()

	handler, err := app.Handler()
	if err != nil {
		return err
	}

	ln, err := net.Listen("tcp", appConfig.Server.Addr)
	if err != nil {
		return fmt.Errorf("listen on %s: %w", appConfig.Server.Addr, err)
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	srv := service.NewServer(appConfig.Server, handler)
	return service.Serve(ctx, srv, ln, appConfig.Server, logger)
}
