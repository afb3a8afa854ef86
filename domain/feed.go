package domain

import (
	"time"

	"github.com/google/uuid"
)

// Feed is a remote RSS/Atom source known to the system. Its URL is unique.
// ETag, LastModified and LastFetchedAt are owned by the sync flows.
type Feed struct {
	ID            uuid.UUID  `json:"id"`
	URL           string     `json:"url"`
	Title         string     `json:"title"`
	SiteURL       *string    `json:"site_url,omitempty"`
	ETag          *string    `json:"-"`
	LastModified  *string    `json:"-"`
	LastFetchedAt *time.Time `json:"last_fetched_at,omitempty"`
}

// NeverFetched reports whether the feed has no recorded fetch attempt.
func (f *Feed) NeverFetched() bool {
	return f.LastFetchedAt == nil
}

// CreateFeedInput carries the fields learned from the first fetch of a new URL.
type CreateFeedInput struct {
	URL     string
	Title   string
	SiteURL *string
}

// FetchMetadata is the cache-validator state written after every fetch attempt.
type FetchMetadata struct {
	FeedID        uuid.UUID
	ETag          *string
	LastModified  *string
	LastFetchedAt time.Time
}

// SubscribedFeed is a feed as seen from one user's subscription list.
type SubscribedFeed struct {
	Feed
	FolderID *uuid.UUID `json:"folder_id,omitempty"`
}
