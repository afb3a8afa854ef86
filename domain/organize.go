package domain

import (
	"time"

	"github.com/google/uuid"
)

// Subscription links a user to a feed, optionally filed in a folder.
type Subscription struct {
	ID        uuid.UUID  `json:"id"`
	UserID    uuid.UUID  `json:"user_id"`
	FeedID    uuid.UUID  `json:"feed_id"`
	FolderID  *uuid.UUID `json:"folder_id,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
}

type Folder struct {
	ID        uuid.UUID `json:"id"`
	UserID    uuid.UUID `json:"user_id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

type Tag struct {
	ID        uuid.UUID `json:"id"`
	UserID    uuid.UUID `json:"user_id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

// PublicProfile exposes a user's subscriptions under a slug when IsPublic is set.
type PublicProfile struct {
	UserID     uuid.UUID `json:"user_id"`
	PublicSlug string    `json:"public_slug"`
	IsPublic   bool      `json:"is_public"`
}
