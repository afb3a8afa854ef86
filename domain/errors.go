package domain

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
)

var (
	// フィード関連エラー
	ErrFeedNotFound = errors.New("feed not found")
	ErrInvalidOPML  = errors.New("invalid OPML document")

	// 公開プロフィール
	ErrPublicProfileNotFound = errors.New("public profile not found or not active")

	// タグ・フォルダ
	ErrEmptyTagName    = errors.New("tag name cannot be empty")
	ErrEmptyFolderName = errors.New("folder name cannot be empty")

	ErrSyncInProgress = errors.New("sync run already in progress")

	// 検索
	ErrSearchUnavailable = errors.New("search index unavailable")
)

// InvalidFeedURLError is returned when a submitted feed URL fails validation.
// It is raised before any network call.
type InvalidFeedURLError struct {
	URL    string
	Reason string
}

func (e *InvalidFeedURLError) Error() string {
	return fmt.Sprintf("invalid feed url %q: %s", e.URL, e.Reason)
}

// FetchError covers network failures, timeouts and non-2xx/304 responses.
// StatusCode is zero when no response was received.
type FetchError struct {
	URL        string
	StatusCode int
	Err        error
}

func (e *FetchError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("failed to fetch feed %q: unexpected status code %d", e.URL, e.StatusCode)
	}
	return fmt.Sprintf("failed to fetch feed %q: %v", e.URL, e.Err)
}

func (e *FetchError) Unwrap() error {
	return e.Err
}

type EntryNotFoundError struct {
	EntryID uuid.UUID
}

func (e *EntryNotFoundError) Error() string {
	return fmt.Sprintf("entry not found: %s", e.EntryID)
}

type TagNotFoundError struct {
	TagID uuid.UUID
}

func (e *TagNotFoundError) Error() string {
	return fmt.Sprintf("tag not found: %s", e.TagID)
}

type FolderNotFoundError struct {
	FolderID uuid.UUID
}

func (e *FolderNotFoundError) Error() string {
	return fmt.Sprintf("folder not found: %s", e.FolderID)
}
