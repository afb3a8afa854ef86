package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"rss-reader/di"
	"rss-reader/job"
	"rss-reader/rest"
	"rss-reader/utils/logger"

	"github.com/labstack/echo/v4"
	"github.com/spf13/cobra"
)

const shutdownTimeout = 15 * time.Second

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the REST API server",
	Long: `Start the REST API server. When SYNC_SCHEDULER_ENABLED=true the feed
sync also runs every SYNC_INTERVAL in the same process.`,
	RunE: runServe,
}

func runServe(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	env, err := bootstrap(ctx)
	if err != nil {
		return err
	}
	defer env.close(context.Background())
	cfg := env.cfg

	container, err := di.NewApplicationComponents(ctx, cfg, env.pool)
	if err != nil {
		return fmt.Errorf("build components: %w", err)
	}
	defer container.Close()

	scheduler := job.NewJobScheduler()
	if cfg.Sync.SchedulerEnabled {
		scheduler.Add(job.FeedSyncJob(container.SyncFeedsUsecase, cfg.Sync.DefaultLimit, cfg.Sync.Interval, cfg.Sync.RunTimeout))
		logger.Logger.Info("feed sync scheduler enabled", "interval", cfg.Sync.Interval, "limit", cfg.Sync.DefaultLimit)
	}
	scheduler.Start(ctx)

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Server.ReadTimeout = cfg.Server.ReadTimeout
	e.Server.WriteTimeout = cfg.Server.WriteTimeout
	e.Server.IdleTimeout = cfg.Server.IdleTimeout
	rest.RegisterRoutes(e, container, cfg)

	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	serverErr := make(chan error, 1)
	go func() {
		logger.Logger.Info("Starting server", "addr", addr)
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
		close(serverErr)
	}()

	select {
	case err := <-serverErr:
		if err != nil {
			logger.Logger.Error("Error starting server", "error", err)
			stop()
			scheduler.Shutdown()
			return err
		}
	case <-ctx.Done():
	}

	logger.Logger.Info("Shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		logger.Logger.Error("server shutdown failed", "error", err)
	}
	scheduler.Shutdown()
	return nil
}
