package public_entries_usecase

import (
	"context"
	"rss-reader/domain"
	"rss-reader/port/entry_port"
	"rss-reader/port/public_profile_port"
	"strings"
)

type PublicEntriesUsecase struct {
	profileRepo public_profile_port.PublicProfilePort
	entryRepo   entry_port.EntryRepositoryPort
}

func NewPublicEntriesUsecase(profileRepo public_profile_port.PublicProfilePort, entryRepo entry_port.EntryRepositoryPort) *PublicEntriesUsecase {
	return &PublicEntriesUsecase{profileRepo: profileRepo, entryRepo: entryRepo}
}

// Execute lists entries from the subscriptions of the public profile at slug.
func (u *PublicEntriesUsecase) Execute(ctx context.Context, slug string, limit int) ([]*domain.Entry, error) {
	slug = strings.TrimSpace(slug)
	if slug == "" {
		return nil, domain.ErrPublicProfileNotFound
	}

	profile, err := u.profileRepo.FindPublicProfileBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	if profile == nil || !profile.IsPublic {
		return nil, domain.ErrPublicProfileNotFound
	}

	limit = domain.EntryFilter{Limit: limit}.NormalizedLimit()
	entries, err := u.entryRepo.ListPublicEntriesBySlug(ctx, slug, limit)
	if err != nil {
		return nil, err
	}
	if entries == nil {
		entries = []*domain.Entry{}
	}
	return entries, nil
}
