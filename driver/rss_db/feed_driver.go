package rss_db

import (
	"context"
	"errors"
	"fmt"
	"time"

	"rss-reader/domain"
	"rss-reader/utils/logger"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const findFeedByIDQuery = `
	SELECT id, url, title, site_url, etag, last_modified, last_fetched_at
	FROM feeds
	WHERE id = $1
`

const findFeedByURLQuery = `
	SELECT id, url, title, site_url, etag, last_modified, last_fetched_at
	FROM feeds
	WHERE url = $1
`

// A concurrent registration of the same URL resolves to the existing row.
const createFeedQuery = `
	INSERT INTO feeds (id, url, title, site_url, created_at)
	VALUES ($1, $2, $3, $4, $5)
	ON CONFLICT (url) DO UPDATE SET url = feeds.url
	RETURNING id, url, title, site_url, etag, last_modified, last_fetched_at
`

const listStaleFeedsQuery = `
	SELECT id, url, title, site_url, etag, last_modified, last_fetched_at
	FROM feeds
	ORDER BY last_fetched_at ASC NULLS FIRST, created_at ASC
	LIMIT $1
`

const updateFetchMetadataQuery = `
	UPDATE feeds
	SET etag = $2, last_modified = $3, last_fetched_at = $4
	WHERE id = $1
`

const createSubscriptionQuery = `
	INSERT INTO subscriptions (id, user_id, feed_id, folder_id, created_at)
	VALUES ($1, $2, $3, $4, $5)
	ON CONFLICT (user_id, feed_id) DO UPDATE
	SET folder_id = COALESCE(EXCLUDED.folder_id, subscriptions.folder_id)
	RETURNING id, user_id, feed_id, folder_id, created_at
`

const listSubscribedFeedsQuery = `
	SELECT f.id, f.url, f.title, f.site_url, f.etag, f.last_modified, f.last_fetched_at, s.folder_id
	FROM subscriptions s
	JOIN feeds f ON f.id = s.feed_id
	WHERE s.user_id = $1
	ORDER BY f.title ASC, f.id ASC
`

func scanFeed(row pgx.Row) (*domain.Feed, error) {
	var feed domain.Feed
	if err := row.Scan(
		&feed.ID,
		&feed.URL,
		&feed.Title,
		&feed.SiteURL,
		&feed.ETag,
		&feed.LastModified,
		&feed.LastFetchedAt,
	); err != nil {
		return nil, err
	}
	return &feed, nil
}

func (r *RSSDBRepository) FindFeedByID(ctx context.Context, feedID uuid.UUID) (*domain.Feed, error) {
	feed, err := scanFeed(r.pool.QueryRow(ctx, findFeedByIDQuery, feedID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("find feed by id: %w", err)
	}
	return feed, nil
}

func (r *RSSDBRepository) FindFeedByURL(ctx context.Context, feedURL string) (*domain.Feed, error) {
	feed, err := scanFeed(r.pool.QueryRow(ctx, findFeedByURLQuery, feedURL))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("find feed by url: %w", err)
	}
	return feed, nil
}

func (r *RSSDBRepository) CreateFeed(ctx context.Context, input domain.CreateFeedInput) (*domain.Feed, error) {
	feed, err := scanFeed(r.pool.QueryRow(ctx, createFeedQuery,
		uuid.New(), input.URL, input.Title, input.SiteURL, time.Now().UTC()))
	if err != nil {
		logger.Logger.ErrorContext(ctx, "failed to create feed", "error", err, "url", input.URL)
		return nil, fmt.Errorf("create feed: %w", err)
	}
	return feed, nil
}

// ListStaleFeeds returns never-fetched feeds first, then the least recently fetched.
func (r *RSSDBRepository) ListStaleFeeds(ctx context.Context, limit int) ([]*domain.Feed, error) {
	rows, err := r.pool.Query(ctx, listStaleFeedsQuery, limit)
	if err != nil {
		return nil, fmt.Errorf("list stale feeds: %w", err)
	}
	defer rows.Close()

	feeds := make([]*domain.Feed, 0, limit)
	for rows.Next() {
		feed, err := scanFeed(rows)
		if err != nil {
			return nil, fmt.Errorf("scan stale feed: %w", err)
		}
		feeds = append(feeds, feed)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate stale feeds: %w", err)
	}
	return feeds, nil
}

// UpdateFetchMetadata overwrites the validators and fetch time unconditionally.
func (r *RSSDBRepository) UpdateFetchMetadata(ctx context.Context, metadata domain.FetchMetadata) error {
	tag, err := r.pool.Exec(ctx, updateFetchMetadataQuery,
		metadata.FeedID, metadata.ETag, metadata.LastModified, metadata.LastFetchedAt)
	if err != nil {
		return fmt.Errorf("update fetch metadata: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrFeedNotFound
	}
	return nil
}

// CreateSubscription upserts (userID, feedID). A nil folderID keeps the current folder.
func (r *RSSDBRepository) CreateSubscription(ctx context.Context, userID uuid.UUID, feedID uuid.UUID, folderID *uuid.UUID) (*domain.Subscription, error) {
	var sub domain.Subscription
	err := r.pool.QueryRow(ctx, createSubscriptionQuery,
		uuid.New(), userID, feedID, folderID, time.Now().UTC(),
	).Scan(&sub.ID, &sub.UserID, &sub.FeedID, &sub.FolderID, &sub.CreatedAt)
	if err != nil {
		logger.Logger.ErrorContext(ctx, "failed to upsert subscription", "error", err, "user_id", userID, "feed_id", feedID)
		return nil, fmt.Errorf("create subscription: %w", err)
	}
	return &sub, nil
}

func (r *RSSDBRepository) ListSubscribedFeeds(ctx context.Context, userID uuid.UUID) ([]*domain.SubscribedFeed, error) {
	rows, err := r.pool.Query(ctx, listSubscribedFeedsQuery, userID)
	if err != nil {
		return nil, fmt.Errorf("list subscribed feeds: %w", err)
	}
	defer rows.Close()

	feeds := make([]*domain.SubscribedFeed, 0)
	for rows.Next() {
		var f domain.SubscribedFeed
		if err := rows.Scan(
			&f.ID,
			&f.URL,
			&f.Title,
			&f.SiteURL,
			&f.ETag,
			&f.LastModified,
			&f.LastFetchedAt,
			&f.FolderID,
		); err != nil {
			return nil, fmt.Errorf("scan subscribed feed: %w", err)
		}
		feeds = append(feeds, &f)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate subscribed feeds: %w", err)
	}
	return feeds, nil
}
