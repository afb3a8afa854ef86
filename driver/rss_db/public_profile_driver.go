package rss_db

import (
	"context"
	"errors"
	"fmt"

	"rss-reader/domain"

	"github.com/jackc/pgx/v5"
)

const findPublicProfileBySlugQuery = `
	SELECT user_id, public_slug, is_public
	FROM public_profile
	WHERE public_slug = $1
`

func (r *RSSDBRepository) FindPublicProfileBySlug(ctx context.Context, slug string) (*domain.PublicProfile, error) {
	var p domain.PublicProfile
	err := r.pool.QueryRow(ctx, findPublicProfileBySlugQuery, slug).Scan(&p.UserID, &p.PublicSlug, &p.IsPublic)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("find public profile: %w", err)
	}
	return &p, nil
}
