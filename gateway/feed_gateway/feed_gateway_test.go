package feed_gateway

import (
	"context"
	"testing"

	"rss-reader/driver/rss_db"
	"rss-reader/port/feed_port"

	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var _ feed_port.FeedRepositoryPort = (*FeedGateway)(nil)

func TestFeedGateway_ListStaleFeeds_Empty(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	mock.ExpectQuery("FROM feeds").
		WithArgs(5).
		WillReturnRows(pgxmock.NewRows([]string{"id", "url", "title", "site_url", "etag", "last_modified", "last_fetched_at"}))

	gateway := NewFeedGateway(rss_db.NewRSSDBRepositoryWithPool(mock))
	feeds, err := gateway.ListStaleFeeds(context.Background(), 5)
	require.NoError(t, err)
	assert.Empty(t, feeds)
	require.NoError(t, mock.ExpectationsWereMet())
}
