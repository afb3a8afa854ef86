package summarize_entry_usecase

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

func strPtr(s string) *string { return &s }

func TestSummarizeEntryUsecase_Execute(t *testing.T) {
	userID, entryID := uuid.New(), uuid.New()
	isRead := true

	tests := []struct {
		name      string
		mockSetup func(repo *mocks.MockEntryRepositoryPort, summarizer *mocks.MockSummarizerPort)
		want      string
		wantErr   bool
	}{
		{
			name: "existing summary is returned without calling the summarizer",
			mockSetup: func(repo *mocks.MockEntryRepositoryPort, summarizer *mocks.MockSummarizerPort) {
				repo.EXPECT().FindByIDForUser(gomock.Any(), userID, entryID).
					Return(&domain.Entry{ID: entryID, Summary: strPtr("already done")}, nil)
			},
			want: "already done",
		},
		{
			name: "content is reduced to plain text",
			mockSetup: func(repo *mocks.MockEntryRepositoryPort, summarizer *mocks.MockSummarizerPort) {
				repo.EXPECT().FindByIDForUser(gomock.Any(), userID, entryID).
					Return(&domain.Entry{ID: entryID, Title: "t", Content: strPtr("<p>Hello <b>world</b></p>"), IsRead: &isRead}, nil)
				summarizer.EXPECT().Summarize(gomock.Any(), "Hello world").Return("greeting", nil)
				repo.EXPECT().UpdateSummary(gomock.Any(), entryID, "greeting").
					Return(&domain.Entry{ID: entryID, Summary: strPtr("greeting")}, nil)
			},
			want: "greeting",
		},
		{
			name: "title is used without content",
			mockSetup: func(repo *mocks.MockEntryRepositoryPort, summarizer *mocks.MockSummarizerPort) {
				repo.EXPECT().FindByIDForUser(gomock.Any(), userID, entryID).
					Return(&domain.Entry{ID: entryID, Title: "Only a title", Summary: strPtr("")}, nil)
				summarizer.EXPECT().Summarize(gomock.Any(), "Only a title").Return("short", nil)
				repo.EXPECT().UpdateSummary(gomock.Any(), entryID, "short").
					Return(&domain.Entry{ID: entryID, Summary: strPtr("short")}, nil)
			},
			want: "short",
		},
		{
			name: "entry not visible",
			mockSetup: func(repo *mocks.MockEntryRepositoryPort, summarizer *mocks.MockSummarizerPort) {
				repo.EXPECT().FindByIDForUser(gomock.Any(), userID, entryID).Return(nil, nil)
			},
			wantErr: true,
		},
		{
			name: "summarizer failure is not stored",
			mockSetup: func(repo *mocks.MockEntryRepositoryPort, summarizer *mocks.MockSummarizerPort) {
				repo.EXPECT().FindByIDForUser(gomock.Any(), userID, entryID).
					Return(&domain.Entry{ID: entryID, Title: "t"}, nil)
				summarizer.EXPECT().Summarize(gomock.Any(), "t").Return("", errors.New("model offline"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			repo := mocks.NewMockEntryRepositoryPort(ctrl)
			summarizer := mocks.NewMockSummarizerPort(ctrl)
			tt.mockSetup(repo, summarizer)

			got, err := NewSummarizeEntryUsecase(repo, summarizer).Execute(context.Background(), userID, entryID)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			require.NotNil(t, got.Summary)
			assert.Equal(t, tt.want, *got.Summary)
		})
	}
}
