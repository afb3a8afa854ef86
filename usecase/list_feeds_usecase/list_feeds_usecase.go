package list_feeds_usecase

import (
	"context"
	"rss-reader/domain"
	"rss-reader/port/feed_port"

	"github.com/google/uuid"
)

type ListFeedsUsecase struct {
	feedRepo feed_port.FeedRepositoryPort
}

func NewListFeedsUsecase(feedRepo feed_port.FeedRepositoryPort) *ListFeedsUsecase {
	return &ListFeedsUsecase{feedRepo: feedRepo}
}

func (u *ListFeedsUsecase) Execute(ctx context.Context, userID uuid.UUID) ([]*domain.SubscribedFeed, error) {
	feeds, err := u.feedRepo.ListSubscribedFeeds(ctx, userID)
	if err != nil {
		return nil, err
	}
	if feeds == nil {
		feeds = []*domain.SubscribedFeed{}
	}
	return feeds, nil
}
