package reading_status_usecase

import (
	"context"
	"fmt"
	"rss-reader/domain"
	"rss-reader/port/entry_port"
	"time"

	"github.com/google/uuid"
)

// ensureVisible fails with EntryNotFoundError unless the entry belongs to a
// feed the user subscribes to.
func ensureVisible(ctx context.Context, repo entry_port.EntryRepositoryPort, userID, entryID uuid.UUID) error {
	entry, err := repo.FindByIDForUser(ctx, userID, entryID)
	if err != nil {
		return fmt.Errorf("find entry: %w", err)
	}
	if entry == nil {
		return &domain.EntryNotFoundError{EntryID: entryID}
	}
	return nil
}

type MarkEntryReadUsecase struct {
	entryRepo entry_port.EntryRepositoryPort
	now       func() time.Time
}

func NewMarkEntryReadUsecase(entryRepo entry_port.EntryRepositoryPort) *MarkEntryReadUsecase {
	return &MarkEntryReadUsecase{entryRepo: entryRepo, now: time.Now}
}

// Execute marks the entry read. readAt defaults to now; an earlier read time is kept.
func (u *MarkEntryReadUsecase) Execute(ctx context.Context, userID, entryID uuid.UUID, readAt *time.Time) (*domain.UserEntry, error) {
	if err := ensureVisible(ctx, u.entryRepo, userID, entryID); err != nil {
		return nil, err
	}
	at := u.now()
	if readAt != nil {
		at = *readAt
	}
	return u.entryRepo.MarkAsRead(ctx, userID, entryID, at)
}

type MarkEntryUnreadUsecase struct {
	entryRepo entry_port.EntryRepositoryPort
}

func NewMarkEntryUnreadUsecase(entryRepo entry_port.EntryRepositoryPort) *MarkEntryUnreadUsecase {
	return &MarkEntryUnreadUsecase{entryRepo: entryRepo}
}

func (u *MarkEntryUnreadUsecase) Execute(ctx context.Context, userID, entryID uuid.UUID) (*domain.UserEntry, error) {
	if err := ensureVisible(ctx, u.entryRepo, userID, entryID); err != nil {
		return nil, err
	}
	return u.entryRepo.MarkAsUnread(ctx, userID, entryID)
}

type ToggleBookmarkUsecase struct {
	entryRepo entry_port.EntryRepositoryPort
}

func NewToggleBookmarkUsecase(entryRepo entry_port.EntryRepositoryPort) *ToggleBookmarkUsecase {
	return &ToggleBookmarkUsecase{entryRepo: entryRepo}
}

func (u *ToggleBookmarkUsecase) Execute(ctx context.Context, userID, entryID uuid.UUID, isBookmarked bool) (*domain.UserEntry, error) {
	if err := ensureVisible(ctx, u.entryRepo, userID, entryID); err != nil {
		return nil, err
	}
	return u.entryRepo.ToggleBookmark(ctx, userID, entryID, isBookmarked)
}
