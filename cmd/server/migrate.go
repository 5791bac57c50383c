package main

import (
	"github.com/spf13/cobra"

	"tripboard/internal/platform/db"
)

func newMigrateCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply pending SQL migrations and exit",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, logger := opts.load()
			if err := cfg.Validate(); err != nil {
				return err
			}
			ctx := cmd.Context()

			pool, err := db.Connect(ctx, cfg)
			if err != nil {
				return err
			}
			defer pool.Close()

			if err := db.Migrate(ctx, pool, cfg.MigrationsDir); err != nil {
				return err
			}
			logger.Info("migrations applied", "dir", cfg.MigrationsDir)
			return nil
		},
	}
}

func newSeedCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Insert the demo dataset into an empty database",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, _ := opts.load()
			if err := cfg.Validate(); err != nil {
				return err
			}
			ctx := cmd.Context()

			pool, err := db.Connect(ctx, cfg)
			if err != nil {
				return err
			}
			defer pool.Close()

			return db.Seed(ctx, pool)
		},
	}
}
