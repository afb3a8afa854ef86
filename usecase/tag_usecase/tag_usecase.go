package tag_usecase

import (
	"context"
	"fmt"
	"rss-reader/domain"
	"rss-reader/port/entry_port"
	"rss-reader/port/tag_port"
	"rss-reader/utils/logger"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/text/cases"
)

// TagUsecase manages a user's tags and their attachment to entries.
type TagUsecase struct {
	tagRepo   tag_port.TagRepositoryPort
	entryRepo entry_port.EntryRepositoryPort
}

func NewTagUsecase(tagRepo tag_port.TagRepositoryPort, entryRepo entry_port.EntryRepositoryPort) *TagUsecase {
	return &TagUsecase{tagRepo: tagRepo, entryRepo: entryRepo}
}

func (u *TagUsecase) ListTags(ctx context.Context, userID uuid.UUID) ([]*domain.Tag, error) {
	return u.tagRepo.ListByUserID(ctx, userID)
}

// CreateTag returns the user's existing tag when one matches name case-insensitively.
func (u *TagUsecase) CreateTag(ctx context.Context, userID uuid.UUID, name string) (*domain.Tag, error) {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return nil, domain.ErrEmptyTagName
	}

	existing, err := u.tagRepo.ListByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list tags: %w", err)
	}
	fold := cases.Fold()
	wanted := fold.String(trimmed)
	for _, tag := range existing {
		if fold.String(tag.Name) == wanted {
			return tag, nil
		}
	}

	tag, err := u.tagRepo.Create(ctx, userID, trimmed)
	if err != nil {
		logger.Logger.ErrorContext(ctx, "failed to create tag", "user_id", userID, "error", err)
		return nil, fmt.Errorf("create tag: %w", err)
	}
	return tag, nil
}

func (u *TagUsecase) DeleteTag(ctx context.Context, userID, tagID uuid.UUID) error {
	return u.tagRepo.Delete(ctx, userID, tagID)
}

func (u *TagUsecase) AddTagToEntry(ctx context.Context, userID, entryID, tagID uuid.UUID) error {
	if err := u.ensureOwnTag(ctx, userID, tagID); err != nil {
		return err
	}
	return u.tagRepo.AddToEntry(ctx, entryID, tagID)
}

func (u *TagUsecase) RemoveTagFromEntry(ctx context.Context, userID, entryID, tagID uuid.UUID) error {
	if err := u.ensureOwnTag(ctx, userID, tagID); err != nil {
		return err
	}
	return u.tagRepo.RemoveFromEntry(ctx, entryID, tagID)
}

func (u *TagUsecase) GetEntriesByTag(ctx context.Context, userID, tagID uuid.UUID, limit int) ([]*domain.Entry, error) {
	if err := u.ensureOwnTag(ctx, userID, tagID); err != nil {
		return nil, err
	}
	return u.entryRepo.ListByFilter(ctx, domain.EntryFilter{UserID: userID, TagID: &tagID, Limit: limit})
}

func (u *TagUsecase) ensureOwnTag(ctx context.Context, userID, tagID uuid.UUID) error {
	tag, err := u.tagRepo.FindByIDForUser(ctx, userID, tagID)
	if err != nil {
		return fmt.Errorf("find tag: %w", err)
	}
	if tag == nil {
		return &domain.TagNotFoundError{TagID: tagID}
	}
	return nil
}
