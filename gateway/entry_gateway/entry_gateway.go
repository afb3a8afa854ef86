package entry_gateway

import (
	"context"
	"time"

	"rss-reader/domain"
	"rss-reader/driver/rss_db"

	"github.com/google/uuid"
)

type EntryGateway struct {
	db *rss_db.RSSDBRepository
}

func NewEntryGateway(db *rss_db.RSSDBRepository) *EntryGateway {
	return &EntryGateway{db: db}
}

func (g *EntryGateway) SaveFetchedEntries(ctx context.Context, feedID uuid.UUID, entries []domain.FetchedEntry) ([]uuid.UUID, error) {
	return g.db.SaveFetchedEntries(ctx, feedID, entries)
}

func (g *EntryGateway) ListByFilter(ctx context.Context, filter domain.EntryFilter) ([]*domain.Entry, error) {
	return g.db.ListEntriesByFilter(ctx, filter)
}

func (g *EntryGateway) ListByIDsForUser(ctx context.Context, filter domain.EntryFilter, entryIDs []uuid.UUID) ([]*domain.Entry, error) {
	return g.db.ListEntriesByIDsForUser(ctx, filter, entryIDs)
}

func (g *EntryGateway) FindByIDForUser(ctx context.Context, userID uuid.UUID, entryID uuid.UUID) (*domain.Entry, error) {
	return g.db.FindEntryByIDForUser(ctx, userID, entryID)
}

func (g *EntryGateway) MarkAsRead(ctx context.Context, userID uuid.UUID, entryID uuid.UUID, readAt time.Time) (*domain.UserEntry, error) {
	return g.db.MarkEntryAsRead(ctx, userID, entryID, readAt)
}

func (g *EntryGateway) MarkAsUnread(ctx context.Context, userID uuid.UUID, entryID uuid.UUID) (*domain.UserEntry, error) {
	return g.db.MarkEntryAsUnread(ctx, userID, entryID)
}

func (g *EntryGateway) ToggleBookmark(ctx context.Context, userID uuid.UUID, entryID uuid.UUID, isBookmarked bool) (*domain.UserEntry, error) {
	return g.db.SetEntryBookmark(ctx, userID, entryID, isBookmarked)
}

func (g *EntryGateway) UpdateSummary(ctx context.Context, entryID uuid.UUID, summary string) (*domain.Entry, error) {
	return g.db.UpdateEntrySummary(ctx, entryID, summary)
}

func (g *EntryGateway) ListPublicEntriesBySlug(ctx context.Context, slug string, limit int) ([]*domain.Entry, error) {
	return g.db.ListPublicEntriesBySlug(ctx, slug, limit)
}
