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

const listFoldersByUserQuery = `
	SELECT id, user_id, name, created_at
	FROM folders
	WHERE user_id = $1
	ORDER BY name ASC
`

const findFolderByNameQuery = `
	SELECT id, user_id, name, created_at
	FROM folders
	WHERE user_id = $1 AND name = $2
`

const createFolderQuery = `
	INSERT INTO folders (id, user_id, name, created_at)
	VALUES ($1, $2, $3, $4)
	ON CONFLICT (user_id, name) DO UPDATE SET name = folders.name
	RETURNING id, user_id, name, created_at
`

const deleteFolderQuery = `DELETE FROM folders WHERE id = $1 AND user_id = $2`

func scanFolder(row pgx.Row) (*domain.Folder, error) {
	var f domain.Folder
	if err := row.Scan(&f.ID, &f.UserID, &f.Name, &f.CreatedAt); err != nil {
		return nil, err
	}
	return &f, nil
}

func (r *RSSDBRepository) ListFoldersByUserID(ctx context.Context, userID uuid.UUID) ([]*domain.Folder, error) {
	rows, err := r.pool.Query(ctx, listFoldersByUserQuery, userID)
	if err != nil {
		return nil, fmt.Errorf("list folders: %w", err)
	}
	defer rows.Close()

	folders := make([]*domain.Folder, 0)
	for rows.Next() {
		f, err := scanFolder(rows)
		if err != nil {
			return nil, fmt.Errorf("scan folder: %w", err)
		}
		folders = append(folders, f)
	}
	return folders, rows.Err()
}

func (r *RSSDBRepository) FindFolderByName(ctx context.Context, userID uuid.UUID, name string) (*domain.Folder, error) {
	f, err := scanFolder(r.pool.QueryRow(ctx, findFolderByNameQuery, userID, name))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("find folder: %w", err)
	}
	return f, nil
}

func (r *RSSDBRepository) CreateFolder(ctx context.Context, userID uuid.UUID, name string) (*domain.Folder, error) {
	f, err := scanFolder(r.pool.QueryRow(ctx, createFolderQuery, uuid.New(), userID, name, time.Now().UTC()))
	if err != nil {
		return nil, fmt.Errorf("create folder: %w", err)
	}
	return f, nil
}

// DeleteFolder removes the folder; subscriptions filed in it fall back to no folder.
func (r *RSSDBRepository) DeleteFolder(ctx context.Context, userID uuid.UUID, folderID uuid.UUID) error {
	tag, err := r.pool.Exec(ctx, deleteFolderQuery, folderID, userID)
	if err != nil {
		return fmt.Errorf("delete folder: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return &domain.FolderNotFoundError{FolderID: folderID}
	}
	return nil
}
