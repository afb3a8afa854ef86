package folder_usecase

import (
	"context"
	"fmt"
	"rss-reader/domain"
	"rss-reader/port/folder_port"
	"strings"

	"github.com/google/uuid"
)

type FolderUsecase struct {
	folderRepo folder_port.FolderRepositoryPort
}

func NewFolderUsecase(folderRepo folder_port.FolderRepositoryPort) *FolderUsecase {
	return &FolderUsecase{folderRepo: folderRepo}
}

func (u *FolderUsecase) ListFolders(ctx context.Context, userID uuid.UUID) ([]*domain.Folder, error) {
	return u.folderRepo.ListByUserID(ctx, userID)
}

// CreateFolder finds the user's folder with this name or creates it.
func (u *FolderUsecase) CreateFolder(ctx context.Context, userID uuid.UUID, name string) (*domain.Folder, error) {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return nil, domain.ErrEmptyFolderName
	}

	folder, err := u.folderRepo.FindByName(ctx, userID, trimmed)
	if err != nil {
		return nil, fmt.Errorf("find folder: %w", err)
	}
	if folder != nil {
		return folder, nil
	}
	return u.folderRepo.Create(ctx, userID, trimmed)
}

// DeleteFolder removes the folder; subscriptions filed in it become unfiled.
func (u *FolderUsecase) DeleteFolder(ctx context.Context, userID, folderID uuid.UUID) error {
	return u.folderRepo.Delete(ctx, userID, folderID)
}
