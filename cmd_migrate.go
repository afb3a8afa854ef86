package main

import (
	"context"

	"rss-reader/driver/rss_db"
	"rss-reader/utils/logger"

	"github.com/spf13/cobra"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Apply the database schema",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		env, err := bootstrap(ctx)
		if err != nil {
			return err
		}
		defer env.close(context.Background())

		if err := rss_db.NewRSSDBRepositoryWithPool(env.pool).Migrate(ctx); err != nil {
			return err
		}
		logger.Logger.Info("schema is up to date")
		return nil
	},
}
