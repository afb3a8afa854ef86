package rss_db

import (
	"context"
	"errors"
	"fmt"
	"time"

	"rss-reader/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const listTagsByUserQuery = `
	SELECT id, user_id, name, created_at
	FROM tags
	WHERE user_id = $1
	ORDER BY lower(name) ASC
`

const findTagByIDForUserQuery = `
	SELECT id, user_id, name, created_at
	FROM tags
	WHERE id = $1 AND user_id = $2
`

// Names are unique per user case-insensitively; a clash returns the stored tag.
const createTagQuery = `
	INSERT INTO tags (id, user_id, name, created_at)
	VALUES ($1, $2, $3, $4)
	ON CONFLICT (user_id, lower(name)) DO UPDATE SET name = tags.name
	RETURNING id, user_id, name, created_at
`

const deleteTagQuery = `DELETE FROM tags WHERE id = $1 AND user_id = $2`

const addEntryTagQuery = `
	INSERT INTO entry_tags (entry_id, tag_id)
	VALUES ($1, $2)
	ON CONFLICT (entry_id, tag_id) DO NOTHING
`

const removeEntryTagQuery = `DELETE FROM entry_tags WHERE entry_id = $1 AND tag_id = $2`

func scanTag(row pgx.Row) (*domain.Tag, error) {
	var t domain.Tag
	if err := row.Scan(&t.ID, &t.UserID, &t.Name, &t.CreatedAt); err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *RSSDBRepository) ListTagsByUserID(ctx context.Context, userID uuid.UUID) ([]*domain.Tag, error) {
	rows, err := r.pool.Query(ctx, listTagsByUserQuery, userID)
	if err != nil {
		return nil, fmt.Errorf("list tags: %w", err)
	}
	defer rows.Close()

	tags := make([]*domain.Tag, 0)
	for rows.Next() {
		t, err := scanTag(rows)
		if err != nil {
			return nil, fmt.Errorf("scan tag: %w", err)
		}
		tags = append(tags, t)
	}
	return tags, rows.Err()
}

func (r *RSSDBRepository) FindTagByIDForUser(ctx context.Context, userID uuid.UUID, tagID uuid.UUID) (*domain.Tag, error) {
	t, err := scanTag(r.pool.QueryRow(ctx, findTagByIDForUserQuery, tagID, userID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("find tag: %w", err)
	}
	return t, nil
}

func (r *RSSDBRepository) CreateTag(ctx context.Context, userID uuid.UUID, name string) (*domain.Tag, error) {
	t, err := scanTag(r.pool.QueryRow(ctx, createTagQuery, uuid.New(), userID, name, time.Now().UTC()))
	if err != nil {
		return nil, fmt.Errorf("create tag: %w", err)
	}
	return t, nil
}

func (r *RSSDBRepository) DeleteTag(ctx context.Context, userID uuid.UUID, tagID uuid.UUID) error {
	tag, err := r.pool.Exec(ctx, deleteTagQuery, tagID, userID)
	if err != nil {
		return fmt.Errorf("delete tag: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return &domain.TagNotFoundError{TagID: tagID}
	}
	return nil
}

func (r *RSSDBRepository) AddTagToEntry(ctx context.Context, entryID uuid.UUID, tagID uuid.UUID) error {
	if _, err := r.pool.Exec(ctx, addEntryTagQuery, entryID, tagID); err != nil {
		return fmt.Errorf("add tag to entry: %w", err)
	}
	return nil
}

func (r *RSSDBRepository) RemoveTagFromEntry(ctx context.Context, entryID uuid.UUID, tagID uuid.UUID) error {
	if _, err := r.pool.Exec(ctx, removeEntryTagQuery, entryID, tagID); err != nil {
		return fmt.Errorf("remove tag from entry: %w", err)
	}
	return nil
}
