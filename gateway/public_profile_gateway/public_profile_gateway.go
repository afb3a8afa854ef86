package public_profile_gateway

import (
	"context"

	"rss-reader/domain"
	"rss-reader/driver/rss_db"
)

type PublicProfileGateway struct {
	db *rss_db.RSSDBRepository
}

func NewPublicProfileGateway(db *rss_db.RSSDBRepository) *PublicProfileGateway {
	return &PublicProfileGateway{db: db}
}

func (g *PublicProfileGateway) FindPublicProfileBySlug(ctx context.Context, slug string) (*domain.PublicProfile, error) {
	return g.db.FindPublicProfileBySlug(ctx, slug)
}
