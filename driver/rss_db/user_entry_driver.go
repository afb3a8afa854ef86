package rss_db

import (
	"context"
	"fmt"
	"time"

	"rss-reader/domain"
	"rss-reader/utils/logger"

	"github.com/google/uuid"
)

// The first read time is kept on repeated reads.
const markEntryReadQuery = `
	INSERT INTO user_entry (user_id, entry_id, is_read, is_bookmarked, read_at, updated_at)
	VALUES ($1, $2, TRUE, FALSE, $3, $3)
	ON CONFLICT (user_id, entry_id) DO UPDATE
	SET is_read = TRUE,
		read_at = COALESCE(user_entry.read_at, EXCLUDED.read_at),
		updated_at = EXCLUDED.updated_at
	RETURNING user_id, entry_id, is_read, is_bookmarked, read_at
`

const markEntryUnreadQuery = `
	INSERT INTO user_entry (user_id, entry_id, is_read, is_bookmarked, read_at, updated_at)
	VALUES ($1, $2, FALSE, FALSE, NULL, $3)
	ON CONFLICT (user_id, entry_id) DO UPDATE
	SET is_read = FALSE,
		read_at = NULL,
		updated_at = EXCLUDED.updated_at
	RETURNING user_id, entry_id, is_read, is_bookmarked, read_at
`

const toggleBookmarkQuery = `
	INSERT INTO user_entry (user_id, entry_id, is_read, is_bookmarked, read_at, updated_at)
	VALUES ($1, $2, FALSE, $3, NULL, $4)
	ON CONFLICT (user_id, entry_id) DO UPDATE
	SET is_bookmarked = EXCLUDED.is_bookmarked,
		updated_at = EXCLUDED.updated_at
	RETURNING user_id, entry_id, is_read, is_bookmarked, read_at
`

func (r *RSSDBRepository) upsertUserEntry(ctx context.Context, query string, args ...any) (*domain.UserEntry, error) {
	var ue domain.UserEntry
	if err := r.pool.QueryRow(ctx, query, args...).Scan(
		&ue.UserID,
		&ue.EntryID,
		&ue.IsRead,
		&ue.IsBookmarked,
		&ue.ReadAt,
	); err != nil {
		logger.Logger.ErrorContext(ctx, "failed to update reading state", "error", err)
		return nil, fmt.Errorf("upsert user entry: %w", err)
	}
	return &ue, nil
}

func (r *RSSDBRepository) MarkEntryAsRead(ctx context.Context, userID uuid.UUID, entryID uuid.UUID, readAt time.Time) (*domain.UserEntry, error) {
	return r.upsertUserEntry(ctx, markEntryReadQuery, userID, entryID, readAt.UTC())
}

func (r *RSSDBRepository) MarkEntryAsUnread(ctx context.Context, userID uuid.UUID, entryID uuid.UUID) (*domain.UserEntry, error) {
	return r.upsertUserEntry(ctx, markEntryUnreadQuery, userID, entryID, time.Now().UTC())
}

func (r *RSSDBRepository) SetEntryBookmark(ctx context.Context, userID uuid.UUID, entryID uuid.UUID, isBookmarked bool) (*domain.UserEntry, error) {
	return r.upsertUserEntry(ctx, toggleBookmarkQuery, userID, entryID, isBookmarked, time.Now().UTC())
}
