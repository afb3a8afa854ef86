package rss_db

import (
	"context"
	"fmt"

	"rss-reader/domain"

	"github.com/google/uuid"
)

// IndexableEntry is an entry joined with its feed title for search indexing.
type IndexableEntry struct {
	Entry     domain.Entry
	FeedTitle string
}

const fetchIndexableEntriesQuery = `
	SELECT e.id, e.feed_id, e.guid, e.title, e.url, e.content, e.published_at, e.author, e.summary, e.image_url, e.created_at, f.title
	FROM entries e
	JOIN feeds f ON f.id = e.feed_id
	WHERE e.id = ANY($1)
`

func (r *RSSDBRepository) FetchIndexableEntries(ctx context.Context, entryIDs []uuid.UUID) ([]IndexableEntry, error) {
	if len(entryIDs) == 0 {
		return []IndexableEntry{}, nil
	}

	rows, err := r.pool.Query(ctx, fetchIndexableEntriesQuery, entryIDs)
	if err != nil {
		return nil, fmt.Errorf("fetch indexable entries: %w", err)
	}
	defer rows.Close()

	out := make([]IndexableEntry, 0, len(entryIDs))
	for rows.Next() {
		var item IndexableEntry
		e := &item.Entry
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
			&item.FeedTitle,
		); err != nil {
			return nil, fmt.Errorf("scan indexable entry: %w", err)
		}
		out = append(out, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate indexable entries: %w", err)
	}
	return out, nil
}
