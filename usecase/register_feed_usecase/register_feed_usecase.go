package register_feed_usecase

import (
	"context"
	"errors"
	"fmt"
	"rss-reader/domain"
	"rss-reader/port/entry_port"
	"rss-reader/port/feed_fetcher_port"
	"rss-reader/port/feed_port"
	"rss-reader/port/search_index_port"
	"rss-reader/utils/logger"
	"rss-reader/utils/metrics"
	"rss-reader/utils/otel"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
)

type RegisterFeedUsecase struct {
	feedRepo    feed_port.FeedRepositoryPort
	entryRepo   entry_port.EntryRepositoryPort
	fetcher     feed_fetcher_port.FeedFetcherPort
	searchIndex search_index_port.SearchIndexPort
	now         func() time.Time
}

func NewRegisterFeedUsecase(
	feedRepo feed_port.FeedRepositoryPort,
	entryRepo entry_port.EntryRepositoryPort,
	fetcher feed_fetcher_port.FeedFetcherPort,
	searchIndex search_index_port.SearchIndexPort,
) *RegisterFeedUsecase {
	return &RegisterFeedUsecase{
		feedRepo:    feedRepo,
		entryRepo:   entryRepo,
		fetcher:     fetcher,
		searchIndex: searchIndex,
		now:         time.Now,
	}
}

// Execute subscribes userID to the feed at rawURL, creating the feed on first
// sight. Any failure aborts the registration.
func (u *RegisterFeedUsecase) Execute(ctx context.Context, userID uuid.UUID, rawURL string, folderID *uuid.UUID) (*domain.RegisterFeedResult, error) {
	ctx, span := otel.Tracer().Start(ctx, "RegisterFeedUsecase.Execute")
	defer span.End()

	feedURL, err := domain.ValidateFeedURL(rawURL)
	if err != nil {
		return nil, err
	}
	span.SetAttributes(attribute.String("feed.url", feedURL))

	feed, err := u.feedRepo.FindByURL(ctx, feedURL)
	if err != nil {
		logger.Logger.ErrorContext(ctx, "failed to look up feed", "url", feedURL, "error", err)
		return nil, fmt.Errorf("find feed: %w", err)
	}

	var fetched *domain.FetchedFeed
	if feed == nil {
		// unknown URL: the first fetch supplies title and site url
		fetched, err = u.fetcher.FetchFeed(ctx, feedURL, nil, nil)
		if err != nil {
			logger.Logger.ErrorContext(ctx, "failed to fetch new feed", "url", feedURL, "error", err)
			return nil, err
		}
		title := fetched.Title
		if title == "" {
			title = feedURL
		}
		feed, err = u.feedRepo.Create(ctx, domain.CreateFeedInput{
			URL:     feedURL,
			Title:   title,
			SiteURL: fetched.SiteURL,
		})
		if err != nil {
			logger.Logger.ErrorContext(ctx, "failed to create feed", "url", feedURL, "error", err)
			return nil, fmt.Errorf("create feed: %w", err)
		}
	} else {
		fetched, err = u.fetcher.FetchFeed(ctx, feed.URL, feed.ETag, feed.LastModified)
		if err != nil {
			logger.Logger.ErrorContext(ctx, "failed to fetch known feed", "url", feed.URL, "error", err)
			return nil, err
		}
	}

	inserted := 0
	if !fetched.NotModified && len(fetched.Entries) > 0 {
		ids, err := u.entryRepo.SaveFetchedEntries(ctx, feed.ID, fetched.Entries)
		if err != nil {
			logger.Logger.ErrorContext(ctx, "failed to save entries", "feed_id", feed.ID, "error", err)
			return nil, fmt.Errorf("save entries: %w", err)
		}
		inserted = len(ids)
		if inserted > 0 {
			metrics.RecordEntriesInserted(inserted)
			u.indexEntries(ctx, feed, ids)
		}
	}

	metadata := domain.FetchMetadata{
		FeedID:        feed.ID,
		ETag:          fetched.ETag,
		LastModified:  fetched.LastModified,
		LastFetchedAt: u.now(),
	}
	if metadata.ETag == nil {
		metadata.ETag = feed.ETag
	}
	if metadata.LastModified == nil {
		metadata.LastModified = feed.LastModified
	}
	if err := u.feedRepo.UpdateFetchMetadata(ctx, metadata); err != nil {
		logger.Logger.ErrorContext(ctx, "failed to update fetch metadata", "feed_id", feed.ID, "error", err)
		return nil, fmt.Errorf("update fetch metadata: %w", err)
	}
	feed.ETag = metadata.ETag
	feed.LastModified = metadata.LastModified
	feed.LastFetchedAt = &metadata.LastFetchedAt

	subscription, err := u.feedRepo.CreateSubscription(ctx, userID, feed.ID, folderID)
	if err != nil {
		logger.Logger.ErrorContext(ctx, "failed to create subscription", "feed_id", feed.ID, "user_id", userID, "error", err)
		return nil, fmt.Errorf("create subscription: %w", err)
	}

	logger.Logger.InfoContext(ctx, "feed registered", "feed_id", feed.ID, "user_id", userID, "inserted", inserted)

	return &domain.RegisterFeedResult{
		Feed:               *feed,
		Subscription:       *subscription,
		InsertedEntryCount: inserted,
	}, nil
}

// indexEntries never fails the registration. A disabled index is not counted
// as a failure.
func (u *RegisterFeedUsecase) indexEntries(ctx context.Context, feed *domain.Feed, ids []uuid.UUID) {
	if u.searchIndex == nil {
		return
	}
	if err := u.searchIndex.IndexEntries(ctx, ids); err != nil {
		if errors.Is(err, domain.ErrSearchUnavailable) {
			return
		}
		metrics.RecordIndexFailure()
		logger.Logger.WarnContext(ctx, "failed to index entries of registered feed", "feed_id", feed.ID, "error", err)
	}
}
