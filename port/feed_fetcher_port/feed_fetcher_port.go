package feed_fetcher_port

//go:generate mockgen -source=feed_fetcher_port.go -destination=../../mocks/mock_feed_fetcher_port.go -package=mocks

import (
	"context"
	"rss-reader/domain"
)

// FeedFetcherPort performs one conditional GET for a feed and normalizes the body.
// etag and lastModified are the validators of the previous attempt, nil when unknown.
type FeedFetcherPort interface {
	FetchFeed(ctx context.Context, feedURL string, etag *string, lastModified *string) (*domain.FetchedFeed, error)
}
