package entry_port

//go:generate mockgen -source=entry_port.go -destination=../../mocks/mock_entry_port.go -package=mocks

import (
	"context"
	"rss-reader/domain"
	"time"

	"github.com/google/uuid"
)

// EntryRepositoryPort is the entry store.
type EntryRepositoryPort interface {
	// SaveFetchedEntries inserts entries whose (feedID, guid) is not stored yet
	// and returns the ids of the rows actually inserted.
	SaveFetchedEntries(ctx context.Context, feedID uuid.UUID, entries []domain.FetchedEntry) ([]uuid.UUID, error)
	ListByFilter(ctx context.Context, filter domain.EntryFilter) ([]*domain.Entry, error)
	ListByIDsForUser(ctx context.Context, filter domain.EntryFilter, entryIDs []uuid.UUID) ([]*domain.Entry, error)
	FindByIDForUser(ctx context.Context, userID uuid.UUID, entryID uuid.UUID) (*domain.Entry, error)
	MarkAsRead(ctx context.Context, userID uuid.UUID, entryID uuid.UUID, readAt time.Time) (*domain.UserEntry, error)
	MarkAsUnread(ctx context.Context, userID uuid.UUID, entryID uuid.UUID) (*domain.UserEntry, error)
	ToggleBookmark(ctx context.Context, userID uuid.UUID, entryID uuid.UUID, isBookmarked bool) (*domain.UserEntry, error)
	UpdateSummary(ctx context.Context, entryID uuid.UUID, summary string) (*domain.Entry, error)
	ListPublicEntriesBySlug(ctx context.Context, slug string, limit int) ([]*domain.Entry, error)
}
