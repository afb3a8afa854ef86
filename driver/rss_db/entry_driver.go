package rss_db

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"rss-reader/domain"
	"rss-reader/utils/logger"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// Duplicates on (feed_id, guid) return no row.
const insertEntryQuery = `
	INSERT INTO entries (id, feed_id, guid, title, url, content, published_at, author, summary, image_url, created_at)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, NULL, NULL, $9)
	ON CONFLICT (feed_id, guid) DO NOTHING
	RETURNING id
`

const updateEntrySummaryQuery = `
	UPDATE entries
	SET summary = $2
	WHERE id = $1
	RETURNING id, feed_id, guid, title, url, content, published_at, author, summary, image_url, created_at
`

const listPublicEntriesQuery = `
	SELECT e.id, e.feed_id, e.guid, e.title, e.url, e.content, e.published_at, e.author, e.summary, e.image_url, e.created_at
	FROM entries e
	JOIN subscriptions s ON s.feed_id = e.feed_id
	JOIN public_profile p ON p.user_id = s.user_id
	WHERE p.public_slug = $1 AND p.is_public = TRUE
	ORDER BY COALESCE(e.published_at, e.created_at) DESC, e.id ASC
	LIMIT $2
`

const userEntrySelect = `
	SELECT e.id, e.feed_id, e.guid, e.title, e.url, e.content, e.published_at, e.author, e.summary, e.image_url, e.created_at,
		COALESCE(ue.is_read, FALSE), COALESCE(ue.is_bookmarked, FALSE)
	FROM entries e
	JOIN subscriptions s ON s.feed_id = e.feed_id AND s.user_id = $1
	LEFT JOIN user_entry ue ON ue.entry_id = e.id AND ue.user_id = $1
	WHERE TRUE`

const userEntryOrder = `
	ORDER BY COALESCE(e.published_at, e.created_at) DESC, e.id ASC`

// SaveFetchedEntries inserts the batch in one transaction and returns only the
// ids of rows that were actually inserted.
func (r *RSSDBRepository) SaveFetchedEntries(ctx context.Context, feedID uuid.UUID, entries []domain.FetchedEntry) ([]uuid.UUID, error) {
	inserted := make([]uuid.UUID, 0, len(entries))
	if len(entries) == 0 {
		return inserted, nil
	}

	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		if err != nil {
			if rbErr := tx.Rollback(ctx); rbErr != nil {
				logger.Logger.ErrorContext(ctx, "failed to rollback transaction", "error", rbErr, "original_error", err)
			}
		}
	}()

	for _, entry := range entries {
		var id uuid.UUID
		scanErr := tx.QueryRow(ctx, insertEntryQuery,
			uuid.New(),
			feedID,
			entry.GUID,
			entry.Title,
			entry.URL,
			entry.Content,
			entry.PublishedAt,
			entry.Author,
			time.Now().UTC(),
		).Scan(&id)
		if scanErr != nil {
			if errors.Is(scanErr, pgx.ErrNoRows) {
				continue
			}
			err = fmt.Errorf("insert entry %q: %w", entry.GUID, scanErr)
			return nil, err
		}
		inserted = append(inserted, id)
	}

	if err = tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	return inserted, nil
}

// buildUserEntryQuery renders the user-scoped listing for filter. When ids is
// non-nil the result is restricted to them.
func buildUserEntryQuery(filter domain.EntryFilter, ids []uuid.UUID, withLimit bool) (string, []any) {
	var sb strings.Builder
	args := []any{filter.UserID}
	next := func(v any) string {
		args = append(args, v)
		return fmt.Sprintf("$%d", len(args))
	}

	sb.WriteString(userEntrySelect)
	if filter.FeedID != nil {
		sb.WriteString("\n\t\tAND e.feed_id = " + next(*filter.FeedID))
	}
	if filter.FolderID != nil {
		sb.WriteString("\n\t\tAND s.folder_id = " + next(*filter.FolderID))
	}
	if filter.TagID != nil {
		sb.WriteString("\n\t\tAND EXISTS (SELECT 1 FROM entry_tags et WHERE et.entry_id = e.id AND et.tag_id = " + next(*filter.TagID) + ")")
	}
	if filter.UnreadOnly {
		sb.WriteString("\n\t\tAND COALESCE(ue.is_read, FALSE) = FALSE")
	}
	if filter.BookmarkedOnly {
		sb.WriteString("\n\t\tAND COALESCE(ue.is_bookmarked, FALSE) = TRUE")
	}
	if q := strings.TrimSpace(filter.Search); q != "" {
		p := next("%" + escapeLike(q) + "%")
		sb.WriteString("\n\t\tAND (e.title ILIKE " + p + " OR e.content ILIKE " + p + ")")
	}
	if ids != nil {
		sb.WriteString("\n\t\tAND e.id = ANY(" + next(ids) + ")")
	}
	sb.WriteString(userEntryOrder)
	if withLimit {
		sb.WriteString("\n\tLIMIT " + next(filter.NormalizedLimit()))
	}

	return sb.String(), args
}

func escapeLike(s string) string {
	return strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(s)
}

func (r *RSSDBRepository) ListEntriesByFilter(ctx context.Context, filter domain.EntryFilter) ([]*domain.Entry, error) {
	query, args := buildUserEntryQuery(filter, nil, true)
	return r.queryUserEntries(ctx, query, args...)
}

// ListEntriesByIDsForUser loads entryIDs visible to filter.UserID and returns
// them in the order of entryIDs, capped at the filter limit.
func (r *RSSDBRepository) ListEntriesByIDsForUser(ctx context.Context, filter domain.EntryFilter, entryIDs []uuid.UUID) ([]*domain.Entry, error) {
	if len(entryIDs) == 0 {
		return []*domain.Entry{}, nil
	}

	query, args := buildUserEntryQuery(filter, entryIDs, false)
	entries, err := r.queryUserEntries(ctx, query, args...)
	if err != nil {
		return nil, err
	}

	byID := make(map[uuid.UUID]*domain.Entry, len(entries))
	for _, e := range entries {
		byID[e.ID] = e
	}

	limit := filter.NormalizedLimit()
	ordered := make([]*domain.Entry, 0, min(len(entries), limit))
	for _, id := range entryIDs {
		if e, ok := byID[id]; ok {
			ordered = append(ordered, e)
			delete(byID, id)
			if len(ordered) == limit {
				break
			}
		}
	}
	return ordered, nil
}

func (r *RSSDBRepository) FindEntryByIDForUser(ctx context.Context, userID uuid.UUID, entryID uuid.UUID) (*domain.Entry, error) {
	query, args := buildUserEntryQuery(domain.EntryFilter{UserID: userID}, []uuid.UUID{entryID}, false)
	entries, err := r.queryUserEntries(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	if len(entries) == 0 {
		return nil, nil
	}
	return entries[0], nil
}

func (r *RSSDBRepository) queryUserEntries(ctx context.Context, query string, args ...any) ([]*domain.Entry, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		logger.Logger.ErrorContext(ctx, "failed to query entries", "error", err)
		return nil, fmt.Errorf("query entries: %w", err)
	}
	defer rows.Close()

	entries := make([]*domain.Entry, 0)
	for rows.Next() {
		var (
			e            domain.Entry
			isRead       bool
			isBookmarked bool
		)
		if err := rows.Scan(
			&e.ID,
			&e.FeedID,
			&e.GUID,
			&e.Title,
			&e.URL,
			&e.Content,
			&e.PublishedAt,
			&e.Author,
			&e.Summary,
			&e.ImageURL,
			&e.CreatedAt,
			&isRead,
			&isBookmarked,
		); err != nil {
			return nil, fmt.Errorf("scan entry: %w", err)
		}
		e.IsRead = &isRead
		e.IsBookmarked = &isBookmarked
		entries = append(entries, &e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate entries: %w", err)
	}
	return entries, nil
}

func scanEntry(row pgx.Row) (*domain.Entry, error) {
	var e domain.Entry
	if err := row.Scan(
		&e.ID,
		&e.FeedID,
		&e.GUID,
		&e.Title,
		&e.URL,
		&e.Content,
		&e.PublishedAt,
		&e.Author,
		&e.Summary,
		&e.ImageURL,
		&e.CreatedAt,
	); err != nil {
		return nil, err
	}
	return &e, nil
}

func (r *RSSDBRepository) UpdateEntrySummary(ctx context.Context, entryID uuid.UUID, summary string) (*domain.Entry, error) {
	entry, err := scanEntry(r.pool.QueryRow(ctx, updateEntrySummaryQuery, entryID, summary))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, &domain.EntryNotFoundError{EntryID: entryID}
		}
		return nil, fmt.Errorf("update entry summary: %w", err)
	}
	return entry, nil
}

func (r *RSSDBRepository) ListPublicEntriesBySlug(ctx context.Context, slug string, limit int) ([]*domain.Entry, error) {
	rows, err := r.pool.Query(ctx, listPublicEntriesQuery, slug, limit)
	if err != nil {
		return nil, fmt.Errorf("list public entries: %w", err)
	}
	defer rows.Close()

	entries := make([]*domain.Entry, 0)
	for rows.Next() {
		e, err := scanEntry(rows)
		if err != nil {
			return nil, fmt.Errorf("scan public entry: %w", err)
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate public entries: %w", err)
	}
	return entries, nil
}
