package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"tripboard/internal/app/server"
)

func newServeCmd(opts *rootOptions) *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP server",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, logger := opts.load()
			if addr != "" {
				cfg.Addr = addr
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			app, err := server.New(ctx, cfg, logger)
			if err != nil {
				return err
			}
			defer app.Close()

			return app.Run(ctx)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "Listen address; overrides APP_ADDR")
	return cmd
}
