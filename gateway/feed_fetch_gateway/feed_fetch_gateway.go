package feed_fetch_gateway

import (
	"context"
	"errors"
	"time"

	"rss-reader/domain"
	"rss-reader/driver/feed_fetch_driver"
	"rss-reader/utils/logger"
	"rss-reader/utils/metrics"
	"rss-reader/utils/otel"
	"rss-reader/utils/rate_limiter"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

type FeedFetchGateway struct {
	fetcher     *feed_fetch_driver.FeedFetcher
	rateLimiter *rate_limiter.PerHostLimiter
}

func NewFeedFetchGateway(fetcher *feed_fetch_driver.FeedFetcher, rateLimiter *rate_limiter.PerHostLimiter) *FeedFetchGateway {
	return &FeedFetchGateway{
		fetcher:     fetcher,
		rateLimiter: rateLimiter,
	}
}

func (g *FeedFetchGateway) FetchFeed(ctx context.Context, feedURL string, etag *string, lastModified *string) (*domain.FetchedFeed, error) {
	ctx, span := otel.Tracer().Start(ctx, "feed.fetch",
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(
			attribute.String("feed.url", feedURL),
			attribute.Bool("feed.conditional", etag != nil || lastModified != nil),
		))
	defer span.End()

	if g.rateLimiter != nil {
		if err := g.rateLimiter.Wait(ctx, feedURL); err != nil {
			logger.Logger.WarnContext(ctx, "Rate limiting failed", "url", feedURL, "error", err)
			span.SetStatus(codes.Error, "rate limit wait failed")
			return nil, &domain.FetchError{URL: feedURL, Err: err}
		}
	}

	start := time.Now()
	fetched, err := g.fetcher.Fetch(ctx, feedURL, etag, lastModified)
	elapsed := time.Since(start)

	if err != nil {
		metrics.RecordFetch(metrics.FetchResultError, elapsed)
		span.RecordError(err)
		span.SetStatus(codes.Error, "fetch failed")

		var fetchErr *domain.FetchError
		if errors.As(err, &fetchErr) && fetchErr.StatusCode != 0 {
			span.SetAttributes(attribute.Int("http.response.status_code", fetchErr.StatusCode))
		}
		return nil, err
	}

	if fetched.NotModified {
		metrics.RecordFetch(metrics.FetchResultNotModified, elapsed)
	} else {
		metrics.RecordFetch(metrics.FetchResultOK, elapsed)
	}
	span.SetAttributes(
		attribute.Bool("feed.not_modified", fetched.NotModified),
		attribute.Int("feed.entries", len(fetched.Entries)),
	)

	return fetched, nil
}
