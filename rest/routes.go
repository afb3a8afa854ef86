package rest

import (
	"net/http"
	"strings"

	"rss-reader/config"
	"rss-reader/di"
	middleware_custom "rss-reader/middleware"
	"rss-reader/utils/logger"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/contrib/instrumentation/github.com/labstack/echo/otelecho"
)

func RegisterRoutes(e *echo.Echo, container *di.ApplicationComponents, cfg *config.Config) {
	e.Validator = newRequestValidator()

	// 1. Request ID first so every log line carries it
	e.Use(middleware_custom.RequestIDMiddleware())

	// 2. Recovery
	e.Use(middleware.Recover())

	// 3. Tracing
	if cfg.Otel.Enabled {
		e.Use(otelecho.Middleware(cfg.Otel.ServiceName, otelecho.WithSkipper(func(c echo.Context) bool {
			return c.Path() == "/v1/health" || c.Path() == "/metrics"
		})))
	}

	e.Use(middleware.SecureWithConfig(middleware.SecureConfig{
		XSSProtection:      "1; mode=block",
		ContentTypeNosniff: "nosniff",
		XFrameOptions:      "DENY",
	}))

	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: cfg.Server.AllowedOrigins,
		AllowMethods: []string{echo.GET, echo.POST, echo.DELETE, echo.OPTIONS},
		AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, echo.HeaderAuthorization, "X-Alt-Backend-Token", "X-Request-ID"},
		MaxAge:       86400,
	}))

	e.Use(middleware_custom.LoggingMiddleware(logger.Logger))

	e.Use(middleware.GzipWithConfig(middleware.GzipConfig{
		Level: 5,
		Skipper: func(c echo.Context) bool {
			return strings.Contains(c.Path(), "/health") || c.Path() == "/metrics"
		},
	}))

	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	v1 := e.Group("/v1")
	v1.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, HealthResponse{Status: "ok"})
	})

	registerPrivateRoutes(v1, container, cfg)
	registerCronRoutes(v1, container, cfg)
	v1.GET("/public/:slug", RestHandlePublicEntries(container))
}

func registerPrivateRoutes(v1 *echo.Group, container *di.ApplicationComponents, cfg *config.Config) {
	authMiddleware := middleware_custom.NewJWTAuthMiddleware(logger.Logger, cfg.Auth)

	feeds := v1.Group("/feeds", authMiddleware.RequireJWT())
	feeds.GET("", RestHandleListFeeds(container))
	feeds.POST("", RestHandleRegisterFeed(container))

	entries := v1.Group("/entries", authMiddleware.RequireJWT())
	entries.GET("", RestHandleListEntries(container))
	entries.POST("/:id/read", RestHandleMarkEntryRead(container))
	entries.POST("/:id/unread", RestHandleMarkEntryUnread(container))
	entries.POST("/:id/bookmark", RestHandleToggleBookmark(container))
	entries.POST("/:id/summarize", RestHandleSummarizeEntry(container))
	entries.POST("/:id/tags/:tagId", RestHandleAddTagToEntry(container))
	entries.DELETE("/:id/tags/:tagId", RestHandleRemoveTagFromEntry(container))

	tags := v1.Group("/tags", authMiddleware.RequireJWT())
	tags.GET("", RestHandleListTags(container))
	tags.POST("", RestHandleCreateTag(container))
	tags.DELETE("/:id", RestHandleDeleteTag(container))
	tags.GET("/:id/entries", RestHandleEntriesByTag(container))

	folders := v1.Group("/folders", authMiddleware.RequireJWT())
	folders.GET("", RestHandleListFolders(container))
	folders.POST("", RestHandleCreateFolder(container))
	folders.DELETE("/:id", RestHandleDeleteFolder(container))

	opml := v1.Group("/opml", authMiddleware.RequireJWT())
	opml.POST("/import", RestHandleImportOPML(container))
}

func registerCronRoutes(v1 *echo.Group, container *di.ApplicationComponents, cfg *config.Config) {
	cron := v1.Group("/cron", middleware_custom.CronAuthMiddleware(cfg.Auth.CronSecret))
	cron.POST("/fetch-feeds", RestHandleCronFetchFeeds(container, cfg.Sync.CronLimit, cfg.Sync.RunTimeout))
}
