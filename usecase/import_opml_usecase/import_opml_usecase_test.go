package import_opml_usecase

import (
	"context"
	"errors"
	"rss-reader/domain"
	"rss-reader/mocks"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type registration struct {
	url      string
	folderID *uuid.UUID
}

type fakeRegistrar struct {
	calls   []registration
	failFor map[string]error
}

func (f *fakeRegistrar) Execute(_ context.Context, _ uuid.UUID, rawURL string, folderID *uuid.UUID) (*domain.RegisterFeedResult, error) {
	f.calls = append(f.calls, registration{url: rawURL, folderID: folderID})
	if err := f.failFor[rawURL]; err != nil {
		return nil, err
	}
	return &domain.RegisterFeedResult{}, nil
}

const sampleOPML = `<?xml version="1.0" encoding="UTF-8"?>
<opml version="2.0">
  <head><title>subscriptions</title></head>
  <body>
    <outline text="Tech">
      <outline type="rss" text="Go Blog" xmlUrl="https://go.dev/blog/feed.atom"/>
      <outline type="rss" text="Broken" xmlUrl="https://broken.example.com/rss"/>
    </outline>
    <outline text="News">
      <outline type="rss" text="Daily" xmlUrl="https://news.example.com/rss"/>
    </outline>
    <outline type="rss" text="Loose" xmlUrl="https://loose.example.com/feed"/>
  </body>
</opml>`

func TestImportOPMLUsecase_Execute(t *testing.T) {
	ctrl := gomock.NewController(t)
	folderRepo := mocks.NewMockFolderRepositoryPort(ctrl)
	userID := uuid.New()
	techID := uuid.New()
	newsID := uuid.New()

	folderRepo.EXPECT().ListByUserID(gomock.Any(), userID).
		Return([]*domain.Folder{{ID: techID, UserID: userID, Name: "Tech"}}, nil)
	folderRepo.EXPECT().Create(gomock.Any(), userID, "News").
		Return(&domain.Folder{ID: newsID, UserID: userID, Name: "News"}, nil)

	registrar := &fakeRegistrar{failFor: map[string]error{
		"https://broken.example.com/rss": &domain.FetchError{URL: "https://broken.example.com/rss", StatusCode: 404},
	}}

	result, err := NewImportOPMLUsecase(folderRepo, registrar).Execute(context.Background(), userID, []byte(sampleOPML))

	require.NoError(t, err)
	assert.Equal(t, 3, result.ImportedCount)
	require.Len(t, result.Failed, 1)
	assert.Equal(t, "https://broken.example.com/rss", result.Failed[0].FeedURL)

	require.Len(t, registrar.calls, 4)
	assert.Equal(t, &techID, registrar.calls[0].folderID)
	assert.Equal(t, &newsID, registrar.calls[2].folderID)
	assert.Nil(t, registrar.calls[3].folderID)
}

func TestImportOPMLUsecase_InvalidDocument(t *testing.T) {
	ctrl := gomock.NewController(t)
	folderRepo := mocks.NewMockFolderRepositoryPort(ctrl)

	_, err := NewImportOPMLUsecase(folderRepo, &fakeRegistrar{}).
		Execute(context.Background(), uuid.New(), []byte("<html><body>nope</body></html>"))

	assert.ErrorIs(t, err, domain.ErrInvalidOPML)
}

func TestImportOPMLUsecase_NoFeeds(t *testing.T) {
	ctrl := gomock.NewController(t)
	folderRepo := mocks.NewMockFolderRepositoryPort(ctrl)

	result, err := NewImportOPMLUsecase(folderRepo, &fakeRegistrar{}).
		Execute(context.Background(), uuid.New(), []byte(`<opml version="1.0"><body></body></opml>`))

	require.NoError(t, err)
	assert.Equal(t, 0, result.ImportedCount)
	assert.Empty(t, result.Failed)
}

func TestImportOPMLUsecase_FolderCreateFailureIsPerFeed(t *testing.T) {
	ctrl := gomock.NewController(t)
	folderRepo := mocks.NewMockFolderRepositoryPort(ctrl)
	userID := uuid.New()

	folderRepo.EXPECT().ListByUserID(gomock.Any(), userID).Return([]*domain.Folder{}, nil)
	folderRepo.EXPECT().Create(gomock.Any(), userID, "Tech").Return(nil, errors.New("db down")).Times(2)
	folderRepo.EXPECT().Create(gomock.Any(), userID, "News").Return(&domain.Folder{ID: uuid.New(), Name: "News"}, nil)

	registrar := &fakeRegistrar{}
	result, err := NewImportOPMLUsecase(folderRepo, registrar).Execute(context.Background(), userID, []byte(sampleOPML))

	require.NoError(t, err)
	assert.Equal(t, 2, result.ImportedCount)
	assert.Len(t, result.Failed, 2)
	assert.Len(t, registrar.calls, 2)
}
