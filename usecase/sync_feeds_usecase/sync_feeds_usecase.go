package sync_feeds_usecase

import (
	"context"
	"errors"
	"fmt"
	"rss-reader/domain"
	"rss-reader/port/entry_port"
	"rss-reader/port/feed_fetcher_port"
	"rss-reader/port/feed_port"
	"rss-reader/port/search_index_port"
	"rss-reader/port/sync_lock_port"
	"rss-reader/utils/logger"
	"rss-reader/utils/metrics"
	"rss-reader/utils/otel"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"golang.org/x/sync/errgroup"
)

// Sync triggers, used as metric labels.
const (
	TriggerCron      = "cron"
	TriggerScheduler = "scheduler"
	TriggerCLI       = "cli"
)

const (
	runOutcomeCompleted = "completed"
	runOutcomeSkipped   = "skipped"
	runOutcomeFailed    = "failed"
)

type SyncFeedsUsecase struct {
	feedRepo    feed_port.FeedRepositoryPort
	entryRepo   entry_port.EntryRepositoryPort
	fetcher     feed_fetcher_port.FeedFetcherPort
	searchIndex search_index_port.SearchIndexPort
	syncLock    sync_lock_port.SyncLockPort
	workers     int
	now         func() time.Time
}

// NewSyncFeedsUsecase builds the orchestrator. workers <= 1 processes feeds
// sequentially; syncLock may be nil.
func NewSyncFeedsUsecase(
	feedRepo feed_port.FeedRepositoryPort,
	entryRepo entry_port.EntryRepositoryPort,
	fetcher feed_fetcher_port.FeedFetcherPort,
	searchIndex search_index_port.SearchIndexPort,
	syncLock sync_lock_port.SyncLockPort,
	workers int,
) *SyncFeedsUsecase {
	if workers < 1 {
		workers = 1
	}
	return &SyncFeedsUsecase{
		feedRepo:    feedRepo,
		entryRepo:   entryRepo,
		fetcher:     fetcher,
		searchIndex: searchIndex,
		syncLock:    syncLock,
		workers:     workers,
		now:         time.Now,
	}
}

type feedOutcome struct {
	inserted int
	err      error
}

// Execute runs one sync pass over up to limit stale feeds. Per-feed failures
// are collected in the result; only selecting the batch can fail the run.
// It returns domain.ErrSyncInProgress when another run holds the lock.
func (u *SyncFeedsUsecase) Execute(ctx context.Context, limit int, trigger string) (*domain.SyncResult, error) {
	ctx, span := otel.Tracer().Start(ctx, "SyncFeedsUsecase.Execute")
	defer span.End()

	if limit <= 0 {
		limit = domain.DefaultSyncLimit
	}
	span.SetAttributes(attribute.Int("sync.limit", limit), attribute.String("sync.trigger", trigger))

	if u.syncLock != nil {
		acquired, err := u.syncLock.Acquire(ctx)
		switch {
		case err != nil:
			// storage uniqueness still keeps overlapping runs correct
			logger.Logger.WarnContext(ctx, "sync lock unavailable, continuing without it", "error", err)
		case !acquired:
			logger.Logger.InfoContext(ctx, "sync run skipped, another run holds the lock", "trigger", trigger)
			metrics.RecordSyncRun(trigger, runOutcomeSkipped)
			return &domain.SyncResult{Errors: []domain.SyncError{}}, domain.ErrSyncInProgress
		default:
			defer func() {
				if err := u.syncLock.Release(context.WithoutCancel(ctx)); err != nil {
					logger.Logger.WarnContext(ctx, "failed to release sync lock", "error", err)
				}
			}()
		}
	}

	feeds, err := u.feedRepo.ListStaleFeeds(ctx, limit)
	if err != nil {
		logger.Logger.ErrorContext(ctx, "failed to list stale feeds", "error", err)
		span.RecordError(err)
		span.SetStatus(codes.Error, "list stale feeds")
		metrics.RecordSyncRun(trigger, runOutcomeFailed)
		return nil, fmt.Errorf("list stale feeds: %w", err)
	}

	outcomes := make([]feedOutcome, len(feeds))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(u.workers)
	for i, feed := range feeds {
		g.Go(func() error {
			inserted, err := u.syncFeed(gctx, feed)
			outcomes[i] = feedOutcome{inserted: inserted, err: err}
			// per-feed failures never cancel siblings
			return nil
		})
	}
	_ = g.Wait()

	result := &domain.SyncResult{Errors: []domain.SyncError{}}
	for i, outcome := range outcomes {
		if outcome.err != nil {
			logger.Logger.ErrorContext(ctx, "feed sync failed", "feed_url", feeds[i].URL, "error", outcome.err)
			metrics.RecordFeedProcessed(metrics.FeedOutcomeError)
			result.Errors = append(result.Errors, domain.SyncError{FeedURL: feeds[i].URL, Error: outcome.err.Error()})
			continue
		}
		metrics.RecordFeedProcessed(metrics.FeedOutcomeSuccess)
		result.ProcessedFeedCount++
		result.NewEntryCount += outcome.inserted
	}

	metrics.RecordSyncRun(trigger, runOutcomeCompleted)
	span.SetAttributes(
		attribute.Int("sync.processed", result.ProcessedFeedCount),
		attribute.Int("sync.new_entries", result.NewEntryCount),
		attribute.Int("sync.errors", len(result.Errors)),
	)
	logger.Logger.InfoContext(ctx, "sync run completed",
		"trigger", trigger,
		"selected", len(feeds),
		"processed", result.ProcessedFeedCount,
		"new_entries", result.NewEntryCount,
		"errors", len(result.Errors))

	return result, nil
}

// syncFeed performs fetch, save, index and metadata update for one feed, in that order.
func (u *SyncFeedsUsecase) syncFeed(ctx context.Context, feed *domain.Feed) (int, error) {
	fetched, err := u.fetcher.FetchFeed(ctx, feed.URL, feed.ETag, feed.LastModified)
	if err != nil {
		return 0, err
	}

	inserted := 0
	if !fetched.NotModified && len(fetched.Entries) > 0 {
		ids, err := u.entryRepo.SaveFetchedEntries(ctx, feed.ID, fetched.Entries)
		if err != nil {
			return 0, fmt.Errorf("save entries: %w", err)
		}
		inserted = len(ids)
		if inserted > 0 {
			metrics.RecordEntriesInserted(inserted)
			u.indexEntries(ctx, feed, ids)
		}
	}

	err = u.feedRepo.UpdateFetchMetadata(ctx, domain.FetchMetadata{
		FeedID:        feed.ID,
		ETag:          fallback(fetched.ETag, feed.ETag),
		LastModified:  fallback(fetched.LastModified, feed.LastModified),
		LastFetchedAt: u.now(),
	})
	if err != nil {
		return 0, fmt.Errorf("update fetch metadata: %w", err)
	}

	return inserted, nil
}

func (u *SyncFeedsUsecase) indexEntries(ctx context.Context, feed *domain.Feed, ids []uuid.UUID) {
	if u.searchIndex == nil {
		return
	}
	if err := u.searchIndex.IndexEntries(ctx, ids); err != nil {
		if errors.Is(err, domain.ErrSearchUnavailable) {
			return
		}
		metrics.RecordIndexFailure()
		logger.Logger.WarnContext(ctx, "failed to index new entries", "feed_url", feed.URL, "count", len(ids), "error", err)
	}
}

func fallback(value, previous *string) *string {
	if value != nil {
		return value
	}
	return previous
}
