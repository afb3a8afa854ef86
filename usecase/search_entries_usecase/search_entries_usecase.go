package search_entries_usecase

import (
	"context"
	"errors"
	"rss-reader/domain"
	"rss-reader/port/entry_port"
	"rss-reader/port/feed_port"
	"rss-reader/port/search_index_port"
	"rss-reader/utils/logger"
	"strings"

	"github.com/google/uuid"
)

// SearchEntriesUsecase lists a user's entries. A non-empty query is resolved
// through the search index and falls back to a database match when the index
// cannot answer.
type SearchEntriesUsecase struct {
	entryRepo   entry_port.EntryRepositoryPort
	feedRepo    feed_port.FeedRepositoryPort
	searchIndex search_index_port.SearchIndexPort
}

func NewSearchEntriesUsecase(
	entryRepo entry_port.EntryRepositoryPort,
	feedRepo feed_port.FeedRepositoryPort,
	searchIndex search_index_port.SearchIndexPort,
) *SearchEntriesUsecase {
	return &SearchEntriesUsecase{
		entryRepo:   entryRepo,
		feedRepo:    feedRepo,
		searchIndex: searchIndex,
	}
}

func (u *SearchEntriesUsecase) Execute(ctx context.Context, filter domain.EntryFilter) ([]*domain.Entry, error) {
	query := strings.TrimSpace(filter.Search)
	filter.Search = ""
	if query == "" {
		return u.list(ctx, filter)
	}

	feedIDs, err := u.searchableFeedIDs(ctx, filter)
	if err != nil {
		return nil, err
	}
	if len(feedIDs) == 0 {
		return []*domain.Entry{}, nil
	}

	ids, err := u.searchIndex.SearchEntryIDs(ctx, query, feedIDs, hitLimit(filter))
	if err != nil {
		if !errors.Is(err, domain.ErrSearchUnavailable) {
			logger.Logger.WarnContext(ctx, "search index query failed, falling back to database search", "error", err)
		}
		filter.Search = query
		return u.list(ctx, filter)
	}
	if len(ids) == 0 {
		return []*domain.Entry{}, nil
	}

	entries, err := u.entryRepo.ListByIDsForUser(ctx, filter, ids)
	if err != nil {
		return nil, err
	}
	if entries == nil {
		entries = []*domain.Entry{}
	}
	return entries, nil
}

func (u *SearchEntriesUsecase) list(ctx context.Context, filter domain.EntryFilter) ([]*domain.Entry, error) {
	entries, err := u.entryRepo.ListByFilter(ctx, filter)
	if err != nil {
		return nil, err
	}
	if entries == nil {
		entries = []*domain.Entry{}
	}
	return entries, nil
}

// searchableFeedIDs narrows the user's subscriptions by the feed and folder filters.
func (u *SearchEntriesUsecase) searchableFeedIDs(ctx context.Context, filter domain.EntryFilter) ([]uuid.UUID, error) {
	feeds, err := u.feedRepo.ListSubscribedFeeds(ctx, filter.UserID)
	if err != nil {
		return nil, err
	}
	ids := make([]uuid.UUID, 0, len(feeds))
	for _, f := range feeds {
		if filter.FeedID != nil && f.ID != *filter.FeedID {
			continue
		}
		if filter.FolderID != nil && (f.FolderID == nil || *f.FolderID != *filter.FolderID) {
			continue
		}
		ids = append(ids, f.ID)
	}
	return ids, nil
}

// hitLimit asks the index for more hits when storage-side filters may drop some.
func hitLimit(filter domain.EntryFilter) int {
	if filter.UnreadOnly || filter.BookmarkedOnly || filter.TagID != nil {
		return domain.MaxEntryListLimit
	}
	return filter.NormalizedLimit()
}
