package feed_port

//go:generate mockgen -source=feed_port.go -destination=../../mocks/mock_feed_port.go -package=mocks

import (
	"context"
	"rss-reader/domain"

	"github.com/google/uuid"
)

// FeedRepositoryPort is the feed store. Find methods return (nil, nil) when nothing matches.
type FeedRepositoryPort interface {
	FindByID(ctx context.Context, feedID uuid.UUID) (*domain.Feed, error)
	FindByURL(ctx context.Context, feedURL string) (*domain.Feed, error)
	Create(ctx context.Context, input domain.CreateFeedInput) (*domain.Feed, error)
	ListStaleFeeds(ctx context.Context, limit int) ([]*domain.Feed, error)
	UpdateFetchMetadata(ctx context.Context, metadata domain.FetchMetadata) error
	CreateSubscription(ctx context.Context, userID uuid.UUID, feedID uuid.UUID, folderID *uuid.UUID) (*domain.Subscription, error)
	ListSubscribedFeeds(ctx context.Context, userID uuid.UUID) ([]*domain.SubscribedFeed, error)
}
