// Package cmd implements the folio command line.
package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"folio/app/config"
	"folio/app/logging"
	"folio/service"
)

var (
	cfgFile   string
	appConfig *config.Config
	logger    *slog.Logger
)

var rootCmd = &cobra.Command{
	Use:   "folio",
	Short: "A server-rendered portfolio and blog",
	Long: `folio serves a personal portfolio: a home page, a searchable project
listing, project detail pages and a Markdown blog. Content is loaded once at
start-up and is read-only afterwards.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return initializeConfig(cmd)
	},
}

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./folio.yaml)")
}

func initializeConfig(cmd *cobra.Command) error {
	cfg, used, err := config.Load(config.New(), cfgFile)
	if err != nil {
		return err
	}
	l, err := logging.New(cfg.Log.Level, cfg.Log.Format, cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	if used != "" {
		l.Debug("using config file", slog.String("path", used))
	}
	appConfig, logger = cfg, l
	return nil
}

// newApp builds the application from the loaded configuration.
func newApp(cmd *cobra.Command) (*service.App, error) {
	return service.NewApp(cmd.Context(), appConfig, logger)
}
