package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"rss-reader/di"
	"rss-reader/domain"
	"rss-reader/usecase/sync_feeds_usecase"
	"rss-reader/utils/logger"

	"github.com/spf13/cobra"
)

var syncCmd = &cobra.Command{
	Use:   "sync",
	Short: "Run one feed sync pass and print the result",
	Long: `Run one sync pass over the stalest feeds and print the result as JSON.

Examples:
  rss-reader sync              # SYNC_DEFAULT_LIMIT feeds
  rss-reader sync --limit 50   # up to 50 feeds`,
	RunE: runSync,
}

func init() {
	syncCmd.Flags().IntP("limit", "l", 0, "maximum number of feeds to process (default SYNC_DEFAULT_LIMIT)")
}

func runSync(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	env, err := bootstrap(ctx)
	if err != nil {
		return err
	}
	defer env.close(context.Background())

	container, err := di.NewApplicationComponents(ctx, env.cfg, env.pool)
	if err != nil {
		return fmt.Errorf("build components: %w", err)
	}
	defer container.Close()

	limit, _ := cmd.Flags().GetInt("limit")
	if limit <= 0 {
		limit = env.cfg.Sync.DefaultLimit
	}

	result, err := container.SyncFeedsUsecase.Execute(ctx, limit, sync_feeds_usecase.TriggerCLI)
	if errors.Is(err, domain.ErrSyncInProgress) {
		logger.Logger.Warn("another sync run is in progress, nothing done")
		return nil
	}
	if err != nil {
		return err
	}

	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	return encoder.Encode(result)
}
