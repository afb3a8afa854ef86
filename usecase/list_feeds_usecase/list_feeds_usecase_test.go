package list_feeds_usecase

import (
	"context"
	"errors"
	"rss-reader/domain"
	"rss-reader/mocks"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestListFeedsUsecase_Execute(t *testing.T) {
	userID := uuid.New()

	t.Run("no subscriptions yields an empty list", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mocks.NewMockFeedRepositoryPort(ctrl)
		repo.EXPECT().ListSubscribedFeeds(gomock.Any(), userID).Return(nil, nil)

		feeds, err := NewListFeedsUsecase(repo).Execute(context.Background(), userID)

		require.NoError(t, err)
		assert.NotNil(t, feeds)
		assert.Empty(t, feeds)
	})

	t.Run("error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mocks.NewMockFeedRepositoryPort(ctrl)
		repo.EXPECT().ListSubscribedFeeds(gomock.Any(), userID).Return(nil, errors.New("boom"))

		_, err := NewListFeedsUsecase(repo).Execute(context.Background(), userID)

		assert.Error(t, err)
	})

	t.Run("feeds", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mocks.NewMockFeedRepositoryPort(ctrl)
		repo.EXPECT().ListSubscribedFeeds(gomock.Any(), userID).
			Return([]*domain.SubscribedFeed{{Feed: domain.Feed{ID: uuid.New(), URL: "https://e.com/rss"}}}, nil)

		feeds, err := NewListFeedsUsecase(repo).Execute(context.Background(), userID)

		require.NoError(t, err)
		assert.Equal(t, "https://e.com/rss", feeds[0].URL)
	})
}
