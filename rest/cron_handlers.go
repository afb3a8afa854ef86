package rest

import (
	"context"
	"net/http"
	"time"

	"rss-reader/di"
	"rss-reader/usecase/sync_feeds_usecase"

	"github.com/labstack/echo/v4"
)

// RestHandleCronFetchFeeds runs one sync pass over at most limit feeds. The
// run is cut off after runTimeout so the response beats the server's write
// deadline.
func RestHandleCronFetchFeeds(container *di.ApplicationComponents, limit int, runTimeout time.Duration) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()
		if runTimeout > 0 {
			var cancel context.CancelFunc
			ctx, cancel = context.WithTimeout(ctx, runTimeout)
			defer cancel()
		}

		result, err := container.SyncFeedsUsecase.Execute(ctx, limit, sync_feeds_usecase.TriggerCron)
		if err != nil {
			return handleError(c, err, "cron_fetch_feeds")
		}
		return c.JSON(http.StatusOK, result)
	}
}
