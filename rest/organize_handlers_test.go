package rest

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"rss-reader/domain"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestTagRoutes(t *testing.T) {
	t.Run("create reuses a tag with the same name", func(t *testing.T) {
		env := newTestEnv(t)
		existing := &domain.Tag{ID: uuid.New(), UserID: env.userID, Name: "Go"}
		env.tagRepo.EXPECT().ListByUserID(gomock.Any(), env.userID).Return([]*domain.Tag{existing}, nil)

		rec := env.do(http.MethodPost, "/v1/tags", `{"name":"  go "}`)

		require.Equal(t, http.StatusCreated, rec.Code)
		assert.Contains(t, rec.Body.String(), existing.ID.String())
	})

	t.Run("blank name is rejected", func(t *testing.T) {
		env := newTestEnv(t)
		rec := env.do(http.MethodPost, "/v1/tags", `{"name":"   "}`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("name too long", func(t *testing.T) {
		env := newTestEnv(t)
		rec := env.do(http.MethodPost, "/v1/tags", `{"name":"`+strings.Repeat("x", 101)+`"}`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), "at most 100")
	})

	t.Run("delete", func(t *testing.T) {
		env := newTestEnv(t)
		tagID := uuid.New()
		env.tagRepo.EXPECT().Delete(gomock.Any(), env.userID, tagID).Return(nil)

		rec := env.do(http.MethodDelete, "/v1/tags/"+tagID.String(), "")
		assert.Equal(t, http.StatusNoContent, rec.Code)
	})

	t.Run("tagging requires owning the tag", func(t *testing.T) {
		env := newTestEnv(t)
		entryID, tagID := uuid.New(), uuid.New()
		env.tagRepo.EXPECT().FindByIDForUser(gomock.Any(), env.userID, tagID).Return(nil, nil)

		rec := env.do(http.MethodPost, "/v1/entries/"+entryID.String()+"/tags/"+tagID.String(), "")
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("bad tag id in entry route", func(t *testing.T) {
		env := newTestEnv(t)
		rec := env.do(http.MethodDelete, "/v1/entries/"+uuid.NewString()+"/tags/xyz", "")
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestFolderRoutes(t *testing.T) {
	t.Run("create finds an existing folder", func(t *testing.T) {
		env := newTestEnv(t)
		folder := &domain.Folder{ID: uuid.New(), UserID: env.userID, Name: "Tech"}
		env.folderRepo.EXPECT().FindByName(gomock.Any(), env.userID, "Tech").Return(folder, nil)

		rec := env.do(http.MethodPost, "/v1/folders", `{"name":"Tech"}`)

		require.Equal(t, http.StatusCreated, rec.Code)
		assert.Contains(t, rec.Body.String(), folder.ID.String())
	})

	t.Run("list", func(t *testing.T) {
		env := newTestEnv(t)
		env.folderRepo.EXPECT().ListByUserID(gomock.Any(), env.userID).
			Return([]*domain.Folder{{ID: uuid.New(), Name: "News"}}, nil)

		rec := env.do(http.MethodGet, "/v1/folders", "")

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"name":"News"`)
	})

	t.Run("delete", func(t *testing.T) {
		env := newTestEnv(t)
		folderID := uuid.New()
		env.folderRepo.EXPECT().Delete(gomock.Any(), env.userID, folderID).Return(nil)

		rec := env.do(http.MethodDelete, "/v1/folders/"+folderID.String(), "")
		assert.Equal(t, http.StatusNoContent, rec.Code)
	})
}

func TestRestHandleImportOPML(t *testing.T) {
	t.Run("invalid document", func(t *testing.T) {
		env := newTestEnv(t)
		rec := env.do(http.MethodPost, "/v1/opml/import", "not an opml document")
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("empty body", func(t *testing.T) {
		env := newTestEnv(t)
		rec := env.do(http.MethodPost, "/v1/opml/import", "")
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("multipart upload with a failing feed", func(t *testing.T) {
		env := newTestEnv(t)
		document := `<?xml version="1.0"?>
<opml version="2.0"><body>
  <outline text="bad" type="rss" xmlUrl="ftp://e.com/feed"/>
</body></opml>`
		env.folderRepo.EXPECT().ListByUserID(gomock.Any(), env.userID).Return(nil, nil)

		var body bytes.Buffer
		writer := multipart.NewWriter(&body)
		part, err := writer.CreateFormFile("file", "subscriptions.opml")
		require.NoError(t, err)
		_, err = part.Write([]byte(document))
		require.NoError(t, err)
		require.NoError(t, writer.Close())

		req := httptest.NewRequest(http.MethodPost, "/v1/opml/import", &body)
		req.Header.Set(echo.HeaderContentType, writer.FormDataContentType())
		req.Header.Set("X-Alt-Backend-Token", env.token)
		rec := env.doAnonymous(req)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"imported_count":0`)
		assert.Contains(t, rec.Body.String(), "ftp://e.com/feed")
	})
}
