package rest

import (
	"errors"
	"net/http"
	"testing"
	"time"

	"rss-reader/domain"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestRestHandleListEntries(t *testing.T) {
	t.Run("query parameters become the filter", func(t *testing.T) {
		env := newTestEnv(t)
		feedID := uuid.New()
		env.entryRepo.EXPECT().ListByFilter(gomock.Any(), domain.EntryFilter{
			UserID:     env.userID,
			FeedID:     &feedID,
			UnreadOnly: true,
			Limit:      25,
		}).Return([]*domain.Entry{{ID: uuid.New(), Title: "first"}}, nil)

		rec := env.do(http.MethodGet, "/v1/entries?feedId="+feedID.String()+"&unreadOnly=true&limit=25", "")

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"title":"first"`)
	})

	t.Run("search query goes through the index", func(t *testing.T) {
		env := newTestEnv(t)
		feedID := uuid.New()
		hitID := uuid.New()
		env.feedRepo.EXPECT().ListSubscribedFeeds(gomock.Any(), env.userID).
			Return([]*domain.SubscribedFeed{{Feed: domain.Feed{ID: feedID}}}, nil)
		env.searchIndex.EXPECT().SearchEntryIDs(gomock.Any(), "golang", []uuid.UUID{feedID}, gomock.Any()).
			Return([]uuid.UUID{hitID}, nil)
		env.entryRepo.EXPECT().ListByIDsForUser(gomock.Any(), gomock.Any(), []uuid.UUID{hitID}).
			Return([]*domain.Entry{{ID: hitID, Title: "Go"}}, nil)

		rec := env.do(http.MethodGet, "/v1/entries?q=golang", "")

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), hitID.String())
	})

	invalid := []string{
		"/v1/entries?feedId=abc",
		"/v1/entries?folderId=abc",
		"/v1/entries?tagId=abc",
		"/v1/entries?unreadOnly=maybe",
		"/v1/entries?bookmarkedOnly=maybe",
		"/v1/entries?limit=-3",
	}
	for _, path := range invalid {
		t.Run(path, func(t *testing.T) {
			env := newTestEnv(t)
			rec := env.do(http.MethodGet, path, "")
			assert.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}
}

func TestRestHandleMarkEntryRead(t *testing.T) {
	entryID := uuid.New()

	t.Run("explicit read time", func(t *testing.T) {
		env := newTestEnv(t)
		readAt := time.Date(2026, 5, 1, 8, 0, 0, 0, time.UTC)
		env.entryRepo.EXPECT().FindByIDForUser(gomock.Any(), env.userID, entryID).Return(&domain.Entry{ID: entryID}, nil)
		env.entryRepo.EXPECT().MarkAsRead(gomock.Any(), env.userID, entryID, readAt).
			Return(&domain.UserEntry{UserID: env.userID, EntryID: entryID, IsRead: true, ReadAt: &readAt}, nil)

		rec := env.do(http.MethodPost, "/v1/entries/"+entryID.String()+"/read", `{"readAt":"2026-05-01T08:00:00Z"}`)

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("entry not visible", func(t *testing.T) {
		env := newTestEnv(t)
		env.entryRepo.EXPECT().FindByIDForUser(gomock.Any(), env.userID, entryID).Return(nil, nil)

		rec := env.do(http.MethodPost, "/v1/entries/"+entryID.String()+"/read", "")

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("bad entry id", func(t *testing.T) {
		env := newTestEnv(t)
		rec := env.do(http.MethodPost, "/v1/entries/not-a-uuid/read", "")
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestRestHandleMarkEntryUnread(t *testing.T) {
	env := newTestEnv(t)
	entryID := uuid.New()
	env.entryRepo.EXPECT().FindByIDForUser(gomock.Any(), env.userID, entryID).Return(&domain.Entry{ID: entryID}, nil)
	env.entryRepo.EXPECT().MarkAsUnread(gomock.Any(), env.userID, entryID).
		Return(&domain.UserEntry{UserID: env.userID, EntryID: entryID}, nil)

	rec := env.do(http.MethodPost, "/v1/entries/"+entryID.String()+"/unread", "")

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRestHandleToggleBookmark(t *testing.T) {
	entryID := uuid.New()

	t.Run("bookmarks the entry", func(t *testing.T) {
		env := newTestEnv(t)
		env.entryRepo.EXPECT().FindByIDForUser(gomock.Any(), env.userID, entryID).Return(&domain.Entry{ID: entryID}, nil)
		env.entryRepo.EXPECT().ToggleBookmark(gomock.Any(), env.userID, entryID, false).
			Return(&domain.UserEntry{UserID: env.userID, EntryID: entryID}, nil)

		rec := env.do(http.MethodPost, "/v1/entries/"+entryID.String()+"/bookmark", `{"isBookmarked":false}`)

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("flag is required", func(t *testing.T) {
		env := newTestEnv(t)
		rec := env.do(http.MethodPost, "/v1/entries/"+entryID.String()+"/bookmark", `{}`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), "isBookmarked is required")
	})
}

func TestRestHandleSummarizeEntry(t *testing.T) {
	entryID := uuid.New()

	t.Run("stored summary is returned", func(t *testing.T) {
		env := newTestEnv(t)
		summary := "already done"
		env.entryRepo.EXPECT().FindByIDForUser(gomock.Any(), env.userID, entryID).
			Return(&domain.Entry{ID: entryID, Summary: &summary}, nil)

		rec := env.do(http.MethodPost, "/v1/entries/"+entryID.String()+"/summarize", "")

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "already done")
	})

	t.Run("storage failure is internal", func(t *testing.T) {
		env := newTestEnv(t)
		env.entryRepo.EXPECT().FindByIDForUser(gomock.Any(), env.userID, entryID).Return(nil, errors.New("db down"))

		rec := env.do(http.MethodPost, "/v1/entries/"+entryID.String()+"/summarize", "")

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.NotContains(t, rec.Body.String(), "db down")
	})
}
