package main

import (
	"log/slog"

	"github.com/spf13/cobra"

	"tripboard/internal/platform/config"
	"tripboard/internal/platform/logging"
)

type rootOptions struct {
	logLevel  string
	logFormat string
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}
	serve := newServeCmd(opts)

	cmd := &cobra.Command{
		Use:   "tripboard",
		Short: "Business trip dashboard",
		Long: `tripboard serves a dashboard over employee business trips: a paginated
trip table, yearly spending and trip charts, and per-employee statistics.

Configuration is read from the environment (DATABASE_URL, APP_ADDR, PAGE_SIZE, ...).
Running without a subcommand starts the server.`,
		SilenceUsage: true,
		RunE:         serve.RunE,
	}

	cmd.PersistentFlags().StringVar(&opts.logLevel, "log-level", "", "Log level (debug, info, warn, error); overrides LOG_LEVEL")
	cmd.PersistentFlags().StringVar(&opts.logFormat, "log-format", "", "Log format (json, text); overrides LOG_FORMAT")

	cmd.AddCommand(serve, newMigrateCmd(opts), newSeedCmd(opts))
	return cmd
}

// load reads the environment config and applies flag overrides, then
// installs the process logger.
func (o *rootOptions) load() (config.Config, *slog.Logger) {
	cfg := config.Load()
	if o.logLevel != "" {
		cfg.LogLevel = o.logLevel
	}
	if o.logFormat != "" {
		cfg.LogFormat = o.logFormat
	}
	logger := logging.New(cfg.LogLevel, cfg.LogFormat)
	slog.SetDefault(logger)
	return cfg, logger
}
