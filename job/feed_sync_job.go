package job

import (
	"context"
	"errors"
	"rss-reader/domain"
	"rss-reader/usecase/sync_feeds_usecase"
	"rss-reader/utils/logger"
	"time"
)

type feedSyncer interface {
	Execute(ctx context.Context, limit int, trigger string) (*domain.SyncResult, error)
}

// FeedSyncJob runs one sync pass over up to limit stale feeds per tick.
func FeedSyncJob(syncer feedSyncer, limit int, interval, timeout time.Duration) Job {
	return Job{
		Name:     "feed-sync",
		Interval: interval,
		Timeout:  timeout,
		Fn: func(ctx context.Context) error {
			result, err := syncer.Execute(ctx, limit, sync_feeds_usecase.TriggerScheduler)
			if errors.Is(err, domain.ErrSyncInProgress) {
				return nil
			}
			if err != nil {
				return err
			}
			for _, syncErr := range result.Errors {
				logger.Logger.WarnContext(ctx, "feed skipped in scheduled sync", "feed_url", syncErr.FeedURL, "error", syncErr.Error)
			}
			return nil
		},
	}
}
