package public_entries_usecase

import (
	"context"
	"rss-reader/domain"
	"rss-reader/mocks"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestPublicEntriesUsecase_Execute(t *testing.T) {
	tests := []struct {
		name      string
		slug      string
		limit     int
		mockSetup func(profiles *mocks.MockPublicProfilePort, entries *mocks.MockEntryRepositoryPort)
		wantErr   error
		wantLen   int
	}{
		{
			name:  "public profile with default limit",
			slug:  "alice",
			limit: 0,
			mockSetup: func(profiles *mocks.MockPublicProfilePort, entries *mocks.MockEntryRepositoryPort) {
				profiles.EXPECT().FindPublicProfileBySlug(gomock.Any(), "alice").
					Return(&domain.PublicProfile{UserID: uuid.New(), PublicSlug: "alice", IsPublic: true}, nil)
				entries.EXPECT().ListPublicEntriesBySlug(gomock.Any(), "alice", domain.DefaultEntryListLimit).
					Return([]*domain.Entry{{ID: uuid.New()}}, nil)
			},
			wantLen: 1,
		},
		{
			name:  "limit is capped",
			slug:  "alice",
			limit: 1000,
			mockSetup: func(profiles *mocks.MockPublicProfilePort, entries *mocks.MockEntryRepositoryPort) {
				profiles.EXPECT().FindPublicProfileBySlug(gomock.Any(), "alice").
					Return(&domain.PublicProfile{PublicSlug: "alice", IsPublic: true}, nil)
				entries.EXPECT().ListPublicEntriesBySlug(gomock.Any(), "alice", domain.MaxEntryListLimit).Return(nil, nil)
			},
			wantLen: 0,
		},
		{
			name: "private profile",
			slug: "bob",
			mockSetup: func(profiles *mocks.MockPublicProfilePort, entries *mocks.MockEntryRepositoryPort) {
				profiles.EXPECT().FindPublicProfileBySlug(gomock.Any(), "bob").
					Return(&domain.PublicProfile{PublicSlug: "bob", IsPublic: false}, nil)
			},
			wantErr: domain.ErrPublicProfileNotFound,
		},
		{
			name: "missing profile",
			slug: "nobody",
			mockSetup: func(profiles *mocks.MockPublicProfilePort, entries *mocks.MockEntryRepositoryPort) {
				profiles.EXPECT().FindPublicProfileBySlug(gomock.Any(), "nobody").Return(nil, nil)
			},
			wantErr: domain.ErrPublicProfileNotFound,
		},
		{
			name:      "blank slug",
			slug:      " ",
			mockSetup: func(profiles *mocks.MockPublicProfilePort, entries *mocks.MockEntryRepositoryPort) {},
			wantErr:   domain.ErrPublicProfileNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			profiles := mocks.NewMockPublicProfilePort(ctrl)
			entries := mocks.NewMockEntryRepositoryPort(ctrl)
			tt.mockSetup(profiles, entries)

			got, err := NewPublicEntriesUsecase(profiles, entries).Execute(context.Background(), tt.slug, tt.limit)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Len(t, got, tt.wantLen)
		})
	}
}
