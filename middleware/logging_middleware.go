package middleware

import (
	"log/slog"
	"rss-reader/utils/logger"
	"time"

	"github.com/labstack/echo/v4"
)

func LoggingMiddleware(baseLogger *slog.Logger) echo.MiddlewareFunc {
	contextLogger := logger.NewContextLogger(baseLogger)

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			req := c.Request()
			if req.URL.Path == "/v1/health" || req.URL.Path == "/metrics" {
				return next(c)
			}

			start := time.Now()
			err := next(c)
			if err != nil {
				// let echo write the response so the logged status is final
				c.Error(err)
			}

			ctx := c.Request().Context()
			status := c.Response().Status
			attrs := []any{
				"method", req.Method,
				"path", req.URL.Path,
				"status", status,
				"duration_ms", time.Since(start).Milliseconds(),
				"response_size", c.Response().Size,
				"remote_addr", c.RealIP(),
			}
			log := contextLogger.WithContext(ctx)
			switch {
			case status >= 500:
				log.ErrorContext(ctx, "request completed", append(attrs, "error", err)...)
			case status >= 400:
				log.WarnContext(ctx, "request completed", attrs...)
			default:
				log.InfoContext(ctx, "request completed", attrs...)
			}

			return nil
		}
	}
}
