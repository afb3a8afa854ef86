package domain

import (
	"time"

	"github.com/google/uuid"
)

// Entry is a stored feed item. (FeedID, GUID) is unique.
type Entry struct {
	ID          uuid.UUID  `json:"id"`
	FeedID      uuid.UUID  `json:"feed_id"`
	GUID        string     `json:"guid"`
	Title       string     `json:"title"`
	URL         string     `json:"url"`
	Content     *string    `json:"content,omitempty"`
	PublishedAt *time.Time `json:"published_at,omitempty"`
	Author      *string    `json:"author,omitempty"`
	Summary     *string    `json:"summary,omitempty"`
	ImageURL    *string    `json:"image_url,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`

	// Per-user state, populated only by user-scoped queries.
	IsRead       *bool `json:"is_read,omitempty"`
	IsBookmarked *bool `json:"is_bookmarked,omitempty"`
}

// HasSummary reports whether a non-empty summary has been stored.
func (e *Entry) HasSummary() bool {
	return e.Summary != nil && *e.Summary != ""
}

// UserEntry is the read/bookmark state of an entry for one user.
type UserEntry struct {
	UserID       uuid.UUID  `json:"user_id"`
	EntryID      uuid.UUID  `json:"entry_id"`
	IsRead       bool       `json:"is_read"`
	IsBookmarked bool       `json:"is_bookmarked"`
	ReadAt       *time.Time `json:"read_at,omitempty"`
}

const (
	DefaultEntryListLimit = 50
	MaxEntryListLimit     = 200
)

// EntryFilter narrows a user's entry listing.
type EntryFilter struct {
	UserID         uuid.UUID
	FeedID         *uuid.UUID
	FolderID       *uuid.UUID
	TagID          *uuid.UUID
	UnreadOnly     bool
	BookmarkedOnly bool
	Search         string
	Limit          int
}

// NormalizedLimit clamps Limit into (0, MaxEntryListLimit], defaulting to DefaultEntryListLimit.
func (f EntryFilter) NormalizedLimit() int {
	switch {
	case f.Limit <= 0:
		return DefaultEntryListLimit
	case f.Limit > MaxEntryListLimit:
		return MaxEntryListLimit
	default:
		return f.Limit
	}
}
