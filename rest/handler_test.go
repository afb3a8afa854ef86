package rest

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"rss-reader/config"
	"rss-reader/di"
	"rss-reader/mocks"
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

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const (
	testTokenSecret = "rest-test-secret"
	testCronSecret  = "cron-secret"
)

type testEnv struct {
	e           *echo.Echo
	userID      uuid.UUID
	token       string
	feedRepo    *mocks.MockFeedRepositoryPort
	entryRepo   *mocks.MockEntryRepositoryPort
	tagRepo     *mocks.MockTagRepositoryPort
	folderRepo  *mocks.MockFolderRepositoryPort
	profileRepo *mocks.MockPublicProfilePort
	fetcher     *mocks.MockFeedFetcherPort
	searchIndex *mocks.MockSearchIndexPort
	summarizer  *mocks.MockSummarizerPort
	syncLock    *mocks.MockSyncLockPort
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	ctrl := gomock.NewController(t)

	env := &testEnv{
		e:           echo.New(),
		userID:      uuid.New(),
		feedRepo:    mocks.NewMockFeedRepositoryPort(ctrl),
		entryRepo:   mocks.NewMockEntryRepositoryPort(ctrl),
		tagRepo:     mocks.NewMockTagRepositoryPort(ctrl),
		folderRepo:  mocks.NewMockFolderRepositoryPort(ctrl),
		profileRepo: mocks.NewMockPublicProfilePort(ctrl),
		fetcher:     mocks.NewMockFeedFetcherPort(ctrl),
		searchIndex: mocks.NewMockSearchIndexPort(ctrl),
		summarizer:  mocks.NewMockSummarizerPort(ctrl),
		syncLock:    mocks.NewMockSyncLockPort(ctrl),
	}

	cfg := &config.Config{
		Server: config.ServerConfig{AllowedOrigins: []string{"http://localhost:3000"}},
		Sync:   config.SyncConfig{CronLimit: 20, RunTimeout: 10 * time.Minute},
		Auth: config.AuthConfig{
			BackendTokenSecret:   testTokenSecret,
			BackendTokenIssuer:   "auth-hub",
			BackendTokenAudience: "rss-reader",
			CronSecret:           testCronSecret,
		},
	}

	registerFeed := register_feed_usecase.NewRegisterFeedUsecase(env.feedRepo, env.entryRepo, env.fetcher, env.searchIndex)
	container := &di.ApplicationComponents{
		Config:                 cfg,
		SyncFeedsUsecase:       sync_feeds_usecase.NewSyncFeedsUsecase(env.feedRepo, env.entryRepo, env.fetcher, env.searchIndex, env.syncLock, 1),
		RegisterFeedUsecase:    registerFeed,
		ImportOPMLUsecase:      import_opml_usecase.NewImportOPMLUsecase(env.folderRepo, registerFeed),
		ListFeedsUsecase:       list_feeds_usecase.NewListFeedsUsecase(env.feedRepo),
		SearchEntriesUsecase:   search_entries_usecase.NewSearchEntriesUsecase(env.entryRepo, env.feedRepo, env.searchIndex),
		MarkEntryReadUsecase:   reading_status_usecase.NewMarkEntryReadUsecase(env.entryRepo),
		MarkEntryUnreadUsecase: reading_status_usecase.NewMarkEntryUnreadUsecase(env.entryRepo),
		ToggleBookmarkUsecase:  reading_status_usecase.NewToggleBookmarkUsecase(env.entryRepo),
		SummarizeEntryUsecase:  summarize_entry_usecase.NewSummarizeEntryUsecase(env.entryRepo, env.summarizer),
		TagUsecase:             tag_usecase.NewTagUsecase(env.tagRepo, env.entryRepo),
		FolderUsecase:          folder_usecase.NewFolderUsecase(env.folderRepo),
		PublicEntriesUsecase:   public_entries_usecase.NewPublicEntriesUsecase(env.profileRepo, env.entryRepo),
	}
	RegisterRoutes(env.e, container, cfg)

	claims := jwt.RegisteredClaims{
		Subject:   env.userID.String(),
		Issuer:    "auth-hub",
		Audience:  jwt.ClaimStrings{"rss-reader"},
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testTokenSecret))
	require.NoError(t, err)
	env.token = token

	return env
}

// do sends an authenticated request with a JSON body.
func (env *testEnv) do(method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	req.Header.Set("X-Alt-Backend-Token", env.token)
	rec := httptest.NewRecorder()
	env.e.ServeHTTP(rec, req)
	return rec
}

func (env *testEnv) doAnonymous(req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	env.e.ServeHTTP(rec, req)
	return rec
}
