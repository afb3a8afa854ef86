package di

import (
	"context"
	"fmt"
	"net/http"

	"rss-reader/config"
	"rss-reader/driver/feed_fetch_driver"
	"rss-reader/driver/rss_db"
	"rss-reader/driver/search_index_driver"
	"rss-reader/driver/summarizer_driver"
	"rss-reader/driver/sync_lock_driver"
	"rss-reader/gateway/entry_gateway"
	"rss-reader/gateway/feed_fetch_gateway"
	"rss-reader/gateway/feed_gateway"
	"rss-reader/gateway/folder_gateway"
	"rss-reader/gateway/public_profile_gateway"
	"rss-reader/gateway/search_index_gateway"
	"rss-reader/gateway/summarizer_gateway"
	"rss-reader/gateway/sync_lock_gateway"
	"rss-reader/gateway/tag_gateway"
	"rss-reader/usecase/folder_usecase"
	"rss-reader/usecase/import_opml_usecase"
	"rss-reader/usecase/list_feeds_usecase"
	"rss-reader/usecase/public_entries_usecase"
	"rss-reader/usecase/reading_status_usecase"
	"rss-reader/usecase/register_feed_usecase"
	"rss-reader/usecase/search_entries_usecase"
	"rss-reader/usecase/summarize_entry_usecase"
	"rss-reader/usecase/sync_feeds_usecase"
	"rss-reader/usecase/tag_usecase"
	"rss-reader/utils/logger"
	"rss-reader/utils/rate_limiter"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

type ApplicationComponents struct {
	Config          *config.Config
	RSSDBRepository *rss_db.RSSDBRepository

	SyncFeedsUsecase       *sync_feeds_usecase.SyncFeedsUsecase
	RegisterFeedUsecase    *register_feed_usecase.RegisterFeedUsecase
	ImportOPMLUsecase      *import_opml_usecase.ImportOPMLUsecase
	ListFeedsUsecase       *list_feeds_usecase.ListFeedsUsecase
	SearchEntriesUsecase   *search_entries_usecase.SearchEntriesUsecase
	MarkEntryReadUsecase   *reading_status_usecase.MarkEntryReadUsecase
	MarkEntryUnreadUsecase *reading_status_usecase.MarkEntryUnreadUsecase
	ToggleBookmarkUsecase  *reading_status_usecase.ToggleBookmarkUsecase
	SummarizeEntryUsecase  *summarize_entry_usecase.SummarizeEntryUsecase
	TagUsecase             *tag_usecase.TagUsecase
	FolderUsecase          *folder_usecase.FolderUsecase
	PublicEntriesUsecase   *public_entries_usecase.PublicEntriesUsecase

	closers []func() error
}

// NewApplicationComponents wires drivers, gateways and usecases. Meilisearch
// and Redis are optional: a disabled search index falls back to database
// search and a missing Redis URL runs syncs without the cross-process lock.
func NewApplicationComponents(ctx context.Context, cfg *config.Config, pool rss_db.PgxIface) (*ApplicationComponents, error) {
	db := rss_db.NewRSSDBRepositoryWithPool(pool)
	c := &ApplicationComponents{Config: cfg, RSSDBRepository: db}

	httpClient := &http.Client{Transport: otelhttp.NewTransport(http.DefaultTransport)}

	feedGateway := feed_gateway.NewFeedGateway(db)
	entryGateway := entry_gateway.NewEntryGateway(db)
	tagGateway := tag_gateway.NewTagGateway(db)
	folderGateway := folder_gateway.NewFolderGateway(db)
	publicProfileGateway := public_profile_gateway.NewPublicProfileGateway(db)

	fetcher := feed_fetch_driver.NewFeedFetcher(httpClient, feed_fetch_driver.Options{
		Timeout:      cfg.Fetcher.Timeout,
		MaxItems:     cfg.Fetcher.MaxItems,
		MaxBodyBytes: cfg.Fetcher.MaxBodyBytes,
		UserAgent:    cfg.Fetcher.UserAgent,
	})
	feedFetchGateway := feed_fetch_gateway.NewFeedFetchGateway(fetcher, rate_limiter.NewPerHostLimiter(cfg.Fetcher.HostRateInterval))

	var searchEngine *search_index_driver.MeilisearchDriver
	if cfg.Search.Enabled {
		client := search_index_driver.NewMeilisearchClient(cfg.Search.Host, cfg.Search.APIKey)
		searchEngine = search_index_driver.NewMeilisearchDriver(client, cfg.Search.IndexName)
		if err := searchEngine.EnsureIndex(ctx); err != nil {
			// searches fall back to the database until the index answers
			logger.Logger.WarnContext(ctx, "search index not ready", "host", cfg.Search.Host, "error", err)
		}
	}
	searchIndexGateway := search_index_gateway.NewSearchIndexGateway(db, searchEngine)

	var syncLockGateway *sync_lock_gateway.SyncLockGateway
	if cfg.Redis.URL != "" {
		lockDriver, err := sync_lock_driver.NewRedisLockDriverWithURL(cfg.Redis.URL, cfg.Redis.SyncLockKey, cfg.Redis.LockTTL)
		if err != nil {
			return nil, fmt.Errorf("redis sync lock: %w", err)
		}
		c.closers = append(c.closers, lockDriver.Close)
		syncLockGateway = sync_lock_gateway.NewSyncLockGateway(lockDriver)
	} else {
		syncLockGateway = sync_lock_gateway.NewSyncLockGateway(nil)
	}

	summarizerClient := summarizer_driver.NewSummarizerClient(httpClient, cfg.Summarizer.URL, cfg.Summarizer.Model, cfg.Summarizer.Language, cfg.Summarizer.Timeout)
	summarizerGateway := summarizer_gateway.NewSummarizerGateway(summarizerClient, cfg.Summarizer.MaxChars)

	c.SyncFeedsUsecase = sync_feeds_usecase.NewSyncFeedsUsecase(feedGateway, entryGateway, feedFetchGateway, searchIndexGateway, syncLockGateway, cfg.Sync.Workers)
	c.RegisterFeedUsecase = register_feed_usecase.NewRegisterFeedUsecase(feedGateway, entryGateway, feedFetchGateway, searchIndexGateway)
	c.ImportOPMLUsecase = import_opml_usecase.NewImportOPMLUsecase(folderGateway, c.RegisterFeedUsecase)
	c.ListFeedsUsecase = list_feeds_usecase.NewListFeedsUsecase(feedGateway)
	c.SearchEntriesUsecase = search_entries_usecase.NewSearchEntriesUsecase(entryGateway, feedGateway, searchIndexGateway)
	c.MarkEntryReadUsecase = reading_status_usecase.NewMarkEntryReadUsecase(entryGateway)
	c.MarkEntryUnreadUsecase = reading_status_usecase.NewMarkEntryUnreadUsecase(entryGateway)
	c.ToggleBookmarkUsecase = reading_status_usecase.NewToggleBookmarkUsecase(entryGateway)
	c.SummarizeEntryUsecase = summarize_entry_usecase.NewSummarizeEntryUsecase(entryGateway, summarizerGateway)
	c.TagUsecase = tag_usecase.NewTagUsecase(tagGateway, entryGateway)
	c.FolderUsecase = folder_usecase.NewFolderUsecase(folderGateway)
	c.PublicEntriesUsecase = public_entries_usecase.NewPublicEntriesUsecase(publicProfileGateway, entryGateway)

	return c, nil
}

// Close releases clients opened by NewApplicationComponents. The database
// pool belongs to the caller.
func (c *ApplicationComponents) Close() {
	for _, closeFn := range c.closers {
		if err := closeFn(); err != nil {
			logger.Logger.Warn("failed to close component", "error", err)
		}
	}
}
