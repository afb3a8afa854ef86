package rest

import (
	"time"

	"rss-reader/domain"
)

type RegisterFeedRequest struct {
	URL      string  `json:"url" validate:"required"`
	FolderID *string `json:"folderId" validate:"omitempty,uuid"`
}

type MarkReadRequest struct {
	ReadAt *time.Time `json:"readAt"`
}

type BookmarkRequest struct {
	IsBookmarked *bool `json:"isBookmarked" validate:"required"`
}

type NameRequest struct {
	Name string `json:"name" validate:"required,max=100"`
}

type EntriesResponse struct {
	Entries []*domain.Entry `json:"entries"`
}

type HealthResponse struct {
	Status string `json:"status"`
}
