package public_profile_port

//go:generate mockgen -source=public_profile_port.go -destination=../../mocks/mock_public_profile_port.go -package=mocks

import (
	"context"
	"rss-reader/domain"
)

type PublicProfilePort interface {
	FindPublicProfileBySlug(ctx context.Context, slug string) (*domain.PublicProfile, error)
}
