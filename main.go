package main

import (
	"context"
	"fmt"
	"os"

	"rss-reader/config"
	"rss-reader/driver/rss_db"
	"rss-reader/utils/logger"
	"rss-reader/utils/otel"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "rss-reader",
	Short: "RSS/Atom feed reader backend",
	Long: `rss-reader polls registered RSS and Atom feeds, stores new entries and
serves them over a REST API.

Example usage:
  rss-reader migrate          # Create or update the database schema
  rss-reader serve            # Start the API server (and the sync scheduler when enabled)
  rss-reader sync --limit 5   # Run one sync pass over the 5 stalest feeds`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.AddCommand(serveCmd, syncCmd, migrateCmd)
}

func main() {
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

// appEnv is shared by every subcommand.
type appEnv struct {
	cfg      *config.Config
	pool     *pgxpool.Pool
	shutdown otel.ShutdownFunc
}

func bootstrap(ctx context.Context) (*appEnv, error) {
	cfg, err := config.NewConfig()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	logger.InitLoggerWithOptions(logger.Options{
		Level:       cfg.Logging.Level,
		Format:      cfg.Logging.Format,
		OTelEnabled: cfg.Otel.Enabled,
		ServiceName: cfg.Otel.ServiceName,
	})

	shutdown, err := otel.InitProvider(ctx, cfg.Otel)
	if err != nil {
		return nil, fmt.Errorf("init telemetry: %w", err)
	}

	pool, err := rss_db.InitDBConnectionPool(ctx, cfg.Database)
	if err != nil {
		_ = shutdown(ctx)
		return nil, fmt.Errorf("connect database: %w", err)
	}

	return &appEnv{cfg: cfg, pool: pool, shutdown: shutdown}, nil
}

func (a *appEnv) close(ctx context.Context) {
	a.pool.Close()
	if err := a.shutdown(ctx); err != nil {
		logger.Logger.Warn("failed to shut down telemetry", "error", err)
	}
}
