package feed_gateway

import (
	"context"

	"rss-reader/domain"
	"rss-reader/driver/rss_db"

	"github.com/google/uuid"
)

type FeedGateway struct {
	db *rss_db.RSSDBRepository
}

func NewFeedGateway(db *rss_db.RSSDBRepository) *FeedGateway {
	return &FeedGateway{db: db}
}

func (g *FeedGateway) FindByID(ctx context.Context, feedID uuid.UUID) (*domain.Feed, error) {
	return g.db.FindFeedByID(ctx, feedID)
}

func (g *FeedGateway) FindByURL(ctx context.Context, feedURL string) (*domain.Feed, error) {
	return g.db.FindFeedByURL(ctx, feedURL)
}

func (g *FeedGateway) Create(ctx context.Context, input domain.CreateFeedInput) (*domain.Feed, error) {
	return g.db.CreateFeed(ctx, input)
}

func (g *FeedGateway) ListStaleFeeds(ctx context.Context, limit int) ([]*domain.Feed, error) {
	return g.db.ListStaleFeeds(ctx, limit)
}

func (g *FeedGateway) UpdateFetchMetadata(ctx context.Context, metadata domain.FetchMetadata) error {
	return g.db.UpdateFetchMetadata(ctx, metadata)
}

func (g *FeedGateway) CreateSubscription(ctx context.Context, userID uuid.UUID, feedID uuid.UUID, folderID *uuid.UUID) (*domain.Subscription, error) {
	return g.db.CreateSubscription(ctx, userID, feedID, folderID)
}

func (g *FeedGateway) ListSubscribedFeeds(ctx context.Context, userID uuid.UUID) ([]*domain.SubscribedFeed, error) {
	return g.db.ListSubscribedFeeds(ctx, userID)
}
