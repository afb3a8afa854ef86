package feed_fetch_gateway

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"rss-reader/domain"
	"rss-reader/driver/feed_fetch_driver"
	"rss-reader/utils/rate_limiter"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFeedFetchGateway_FetchFeed(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("If-None-Match") == `"same"` {
			w.WriteHeader(http.StatusNotModified)
			return
		}
		w.Header().Set("ETag", `"same"`)
		_, _ = w.Write([]byte(`<rss version="2.0"><channel><title>T</title><item><guid>1</guid><title>one</title></item></channel></rss>`))
	}))
	defer server.Close()

	gateway := NewFeedFetchGateway(
		feed_fetch_driver.NewFeedFetcher(server.Client(), feed_fetch_driver.Options{Timeout: time.Second}),
		rate_limiter.NewPerHostLimiter(0),
	)

	fetched, err := gateway.FetchFeed(context.Background(), server.URL, nil, nil)
	require.NoError(t, err)
	assert.False(t, fetched.NotModified)
	require.Len(t, fetched.Entries, 1)
	assert.Equal(t, `"same"`, *fetched.ETag)

	again, err := gateway.FetchFeed(context.Background(), server.URL, fetched.ETag, nil)
	require.NoError(t, err)
	assert.True(t, again.NotModified)
	assert.Empty(t, again.Entries)
}

func TestFeedFetchGateway_RateLimitCancelled(t *testing.T) {
	gateway := NewFeedFetchGateway(
		feed_fetch_driver.NewFeedFetcher(nil, feed_fetch_driver.Options{}),
		rate_limiter.NewPerHostLimiter(time.Hour),
	)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := gateway.FetchFeed(ctx, "https://example.com/feed", nil, nil)
	var fetchErr *domain.FetchError
	require.True(t, errors.As(err, &fetchErr))
	assert.Equal(t, "https://example.com/feed", fetchErr.URL)
}
