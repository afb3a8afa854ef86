package register_feed_usecase

import (
	"context"
	"errors"
	"rss-reader/domain"
	"rss-reader/mocks"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func strPtr(s string) *string { return &s }

func TestRegisterFeedUsecase_Execute(t *testing.T) {
	userID := uuid.New()
	folderID := uuid.New()
	feedID := uuid.New()
	now := time.Date(2026, 2, 3, 4, 5, 6, 0, time.UTC)
	entries := []domain.FetchedEntry{{GUID: "g1", Title: "a"}, {GUID: "g2", Title: "b"}}
	insertedIDs := []uuid.UUID{uuid.New(), uuid.New()}

	type deps struct {
		feedRepo    *mocks.MockFeedRepositoryPort
		entryRepo   *mocks.MockEntryRepositoryPort
		fetcher     *mocks.MockFeedFetcherPort
		searchIndex *mocks.MockSearchIndexPort
	}

	tests := []struct {
		name      string
		rawURL    string
		folderID  *uuid.UUID
		mockSetup func(d deps)
		wantErr   bool
		checkErr  func(t *testing.T, err error)
		check     func(t *testing.T, result *domain.RegisterFeedResult)
	}{
		{
			name:     "new feed is fetched without validators and created",
			rawURL:   "  https://e.com/feed.xml ",
			folderID: &folderID,
			mockSetup: func(d deps) {
				d.feedRepo.EXPECT().FindByURL(gomock.Any(), "https://e.com/feed.xml").Return(nil, nil)
				d.fetcher.EXPECT().FetchFeed(gomock.Any(), "https://e.com/feed.xml", nil, nil).
					Return(&domain.FetchedFeed{Title: "Example", SiteURL: strPtr("https://e.com"), ETag: strPtr("v1"), Entries: entries}, nil)
				d.feedRepo.EXPECT().Create(gomock.Any(), domain.CreateFeedInput{
					URL:     "https://e.com/feed.xml",
					Title:   "Example",
					SiteURL: strPtr("https://e.com"),
				}).Return(&domain.Feed{ID: feedID, URL: "https://e.com/feed.xml", Title: "Example"}, nil)
				d.entryRepo.EXPECT().SaveFetchedEntries(gomock.Any(), feedID, entries).Return(insertedIDs, nil)
				d.searchIndex.EXPECT().IndexEntries(gomock.Any(), insertedIDs).Return(nil)
				d.feedRepo.EXPECT().UpdateFetchMetadata(gomock.Any(), domain.FetchMetadata{
					FeedID:        feedID,
					ETag:          strPtr("v1"),
					LastFetchedAt: now,
				}).Return(nil)
				d.feedRepo.EXPECT().CreateSubscription(gomock.Any(), userID, feedID, &folderID).
					Return(&domain.Subscription{ID: uuid.New(), UserID: userID, FeedID: feedID, FolderID: &folderID}, nil)
			},
			check: func(t *testing.T, result *domain.RegisterFeedResult) {
				assert.Equal(t, 2, result.InsertedEntryCount)
				assert.Equal(t, feedID, result.Feed.ID)
				assert.Equal(t, "v1", *result.Feed.ETag)
				assert.Equal(t, &folderID, result.Subscription.FolderID)
			},
		},
		{
			name:   "untitled new feed uses its url as title",
			rawURL: "https://e.com/untitled",
			mockSetup: func(d deps) {
				d.feedRepo.EXPECT().FindByURL(gomock.Any(), "https://e.com/untitled").Return(nil, nil)
				d.fetcher.EXPECT().FetchFeed(gomock.Any(), "https://e.com/untitled", nil, nil).
					Return(&domain.FetchedFeed{}, nil)
				d.feedRepo.EXPECT().Create(gomock.Any(), domain.CreateFeedInput{
					URL:   "https://e.com/untitled",
					Title: "https://e.com/untitled",
				}).Return(&domain.Feed{ID: feedID, URL: "https://e.com/untitled"}, nil)
				d.feedRepo.EXPECT().UpdateFetchMetadata(gomock.Any(), gomock.Any()).Return(nil)
				d.feedRepo.EXPECT().CreateSubscription(gomock.Any(), userID, feedID, nil).
					Return(&domain.Subscription{UserID: userID, FeedID: feedID}, nil)
			},
			check: func(t *testing.T, result *domain.RegisterFeedResult) {
				assert.Equal(t, 0, result.InsertedEntryCount)
			},
		},
		{
			name:   "known feed is fetched with its validators",
			rawURL: "https://e.com/feed.xml",
			mockSetup: func(d deps) {
				known := &domain.Feed{ID: feedID, URL: "https://e.com/feed.xml", ETag: strPtr("abc123"), LastModified: strPtr("yesterday")}
				d.feedRepo.EXPECT().FindByURL(gomock.Any(), "https://e.com/feed.xml").Return(known, nil)
				d.fetcher.EXPECT().FetchFeed(gomock.Any(), known.URL, known.ETag, known.LastModified).
					Return(&domain.FetchedFeed{NotModified: true}, nil)
				d.feedRepo.EXPECT().UpdateFetchMetadata(gomock.Any(), domain.FetchMetadata{
					FeedID:        feedID,
					ETag:          strPtr("abc123"),
					LastModified:  strPtr("yesterday"),
					LastFetchedAt: now,
				}).Return(nil)
				d.feedRepo.EXPECT().CreateSubscription(gomock.Any(), userID, feedID, nil).
					Return(&domain.Subscription{UserID: userID, FeedID: feedID}, nil)
			},
			check: func(t *testing.T, result *domain.RegisterFeedResult) {
				assert.Equal(t, 0, result.InsertedEntryCount)
				require.NotNil(t, result.Feed.LastFetchedAt)
				assert.Equal(t, now, *result.Feed.LastFetchedAt)
			},
		},
		{
			name:      "invalid url fails before any call",
			rawURL:    "ftp://e.com/feed",
			mockSetup: func(d deps) {},
			wantErr:   true,
			checkErr: func(t *testing.T, err error) {
				var urlErr *domain.InvalidFeedURLError
				assert.True(t, errors.As(err, &urlErr))
			},
		},
		{
			name:      "empty url",
			rawURL:    "   ",
			mockSetup: func(d deps) {},
			wantErr:   true,
		},
		{
			name:   "fetch error aborts registration",
			rawURL: "https://e.com/missing.xml",
			mockSetup: func(d deps) {
				d.feedRepo.EXPECT().FindByURL(gomock.Any(), "https://e.com/missing.xml").Return(nil, nil)
				d.fetcher.EXPECT().FetchFeed(gomock.Any(), "https://e.com/missing.xml", nil, nil).
					Return(nil, &domain.FetchError{URL: "https://e.com/missing.xml", StatusCode: 404})
			},
			wantErr: true,
			checkErr: func(t *testing.T, err error) {
				var fetchErr *domain.FetchError
				require.True(t, errors.As(err, &fetchErr))
				assert.Equal(t, 404, fetchErr.StatusCode)
			},
		},
		{
			name:   "index failure does not fail registration",
			rawURL: "https://e.com/feed.xml",
			mockSetup: func(d deps) {
				known := &domain.Feed{ID: feedID, URL: "https://e.com/feed.xml"}
				d.feedRepo.EXPECT().FindByURL(gomock.Any(), known.URL).Return(known, nil)
				d.fetcher.EXPECT().FetchFeed(gomock.Any(), known.URL, nil, nil).Return(&domain.FetchedFeed{Entries: entries}, nil)
				d.entryRepo.EXPECT().SaveFetchedEntries(gomock.Any(), feedID, entries).Return(insertedIDs[:1], nil)
				d.searchIndex.EXPECT().IndexEntries(gomock.Any(), insertedIDs[:1]).Return(errors.New("index down"))
				d.feedRepo.EXPECT().UpdateFetchMetadata(gomock.Any(), gomock.Any()).Return(nil)
				d.feedRepo.EXPECT().CreateSubscription(gomock.Any(), userID, feedID, nil).
					Return(&domain.Subscription{UserID: userID, FeedID: feedID}, nil)
			},
			check: func(t *testing.T, result *domain.RegisterFeedResult) {
				assert.Equal(t, 1, result.InsertedEntryCount)
			},
		},
		{
			name:   "host case resolves to the existing feed",
			rawURL: "https://E.com/feed.xml",
			mockSetup: func(d deps) {
				known := &domain.Feed{ID: feedID, URL: "https://e.com/feed.xml"}
				d.feedRepo.EXPECT().FindByURL(gomock.Any(), "https://e.com/feed.xml").Return(known, nil)
				d.fetcher.EXPECT().FetchFeed(gomock.Any(), known.URL, nil, nil).Return(&domain.FetchedFeed{NotModified: true}, nil)
				d.feedRepo.EXPECT().UpdateFetchMetadata(gomock.Any(), gomock.Any()).Return(nil)
				d.feedRepo.EXPECT().CreateSubscription(gomock.Any(), userID, feedID, nil).
					Return(&domain.Subscription{UserID: userID, FeedID: feedID}, nil)
			},
			check: func(t *testing.T, result *domain.RegisterFeedResult) {
				assert.Equal(t, feedID, result.Feed.ID)
				assert.Equal(t, 0, result.InsertedEntryCount)
			},
		},
		{
			name:   "storage error aborts registration",
			rawURL: "https://e.com/feed.xml",
			mockSetup: func(d deps) {
				known := &domain.Feed{ID: feedID, URL: "https://e.com/feed.xml"}
				d.feedRepo.EXPECT().FindByURL(gomock.Any(), known.URL).Return(known, nil)
				d.fetcher.EXPECT().FetchFeed(gomock.Any(), known.URL, nil, nil).Return(&domain.FetchedFeed{NotModified: true}, nil)
				d.feedRepo.EXPECT().UpdateFetchMetadata(gomock.Any(), gomock.Any()).Return(errors.New("db down"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			d := deps{
				feedRepo:    mocks.NewMockFeedRepositoryPort(ctrl),
				entryRepo:   mocks.NewMockEntryRepositoryPort(ctrl),
				fetcher:     mocks.NewMockFeedFetcherPort(ctrl),
				searchIndex: mocks.NewMockSearchIndexPort(ctrl),
			}
			tt.mockSetup(d)

			u := NewRegisterFeedUsecase(d.feedRepo, d.entryRepo, d.fetcher, d.searchIndex)
			u.now = func() time.Time { return now }

			result, err := u.Execute(context.Background(), userID, tt.rawURL, tt.folderID)
			if tt.wantErr {
				require.Error(t, err)
				assert.Nil(t, result)
				if tt.checkErr != nil {
					tt.checkErr(t, err)
				}
				return
			}
			require.NoError(t, err)
			tt.check(t, result)
		})
	}
}

func indexFailureCount(t *testing.T) float64 {
	t.Helper()
	families, err := prometheus.DefaultGatherer.Gather()
	require.NoError(t, err)
	for _, mf := range families {
		if mf.GetName() == "rss_reader_search_index_failures_total" {
			return mf.GetMetric()[0].GetCounter().GetValue()
		}
	}
	return 0
}

func TestRegisterFeedUsecase_IndexOutcomes(t *testing.T) {
	userID, feedID := uuid.New(), uuid.New()
	entries := []domain.FetchedEntry{{GUID: "g1", Title: "a"}}
	insertedIDs := []uuid.UUID{uuid.New()}

	tests := []struct {
		name         string
		withIndex    bool
		indexErr     error
		wantFailures float64
	}{
		{name: "indexing error is counted", withIndex: true, indexErr: errors.New("index down"), wantFailures: 1},
		{name: "disabled index is not counted", withIndex: true, indexErr: domain.ErrSearchUnavailable, wantFailures: 0},
		{name: "no index configured", withIndex: false, wantFailures: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			feedRepo := mocks.NewMockFeedRepositoryPort(ctrl)
			entryRepo := mocks.NewMockEntryRepositoryPort(ctrl)
			fetcher := mocks.NewMockFeedFetcherPort(ctrl)

			known := &domain.Feed{ID: feedID, URL: "https://e.com/feed.xml"}
			feedRepo.EXPECT().FindByURL(gomock.Any(), known.URL).Return(known, nil)
			fetcher.EXPECT().FetchFeed(gomock.Any(), known.URL, nil, nil).Return(&domain.FetchedFeed{Entries: entries}, nil)
			entryRepo.EXPECT().SaveFetchedEntries(gomock.Any(), feedID, entries).Return(insertedIDs, nil)
			feedRepo.EXPECT().UpdateFetchMetadata(gomock.Any(), gomock.Any()).Return(nil)
			feedRepo.EXPECT().CreateSubscription(gomock.Any(), userID, feedID, nil).
				Return(&domain.Subscription{UserID: userID, FeedID: feedID}, nil)

			var u *RegisterFeedUsecase
			if tt.withIndex {
				searchIndex := mocks.NewMockSearchIndexPort(ctrl)
				searchIndex.EXPECT().IndexEntries(gomock.Any(), insertedIDs).Return(tt.indexErr)
				u = NewRegisterFeedUsecase(feedRepo, entryRepo, fetcher, searchIndex)
			} else {
				u = NewRegisterFeedUsecase(feedRepo, entryRepo, fetcher, nil)
			}

			before := indexFailureCount(t)
			result, err := u.Execute(context.Background(), userID, known.URL, nil)

			require.NoError(t, err)
			assert.Equal(t, 1, result.InsertedEntryCount)
			assert.Equal(t, before+tt.wantFailures, indexFailureCount(t))
		})
	}
}
