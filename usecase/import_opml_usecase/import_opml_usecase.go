package import_opml_usecase

import (
	"context"
	"fmt"
	"rss-reader/domain"
	"rss-reader/port/folder_port"
	"rss-reader/utils/logger"
	"rss-reader/utils/opml"

	"github.com/google/uuid"
)

// FeedRegistrar registers one feed for a user, as RegisterFeedUsecase does.
type FeedRegistrar interface {
	Execute(ctx context.Context, userID uuid.UUID, rawURL string, folderID *uuid.UUID) (*domain.RegisterFeedResult, error)
}

type ImportOPMLUsecase struct {
	folderRepo folder_port.FolderRepositoryPort
	registrar  FeedRegistrar
}

func NewImportOPMLUsecase(folderRepo folder_port.FolderRepositoryPort, registrar FeedRegistrar) *ImportOPMLUsecase {
	return &ImportOPMLUsecase{folderRepo: folderRepo, registrar: registrar}
}

// Execute registers every feed of the OPML document for userID. Feeds that
// fail are reported in the result and do not stop the import.
func (u *ImportOPMLUsecase) Execute(ctx context.Context, userID uuid.UUID, document []byte) (*domain.ImportOPMLResult, error) {
	outlines, err := opml.Parse(document)
	if err != nil {
		return nil, err
	}

	result := &domain.ImportOPMLResult{Failed: []domain.SyncError{}}
	if len(outlines) == 0 {
		return result, nil
	}

	folders, err := u.folderRepo.ListByUserID(ctx, userID)
	if err != nil {
		logger.Logger.ErrorContext(ctx, "failed to list folders", "user_id", userID, "error", err)
		return nil, fmt.Errorf("list folders: %w", err)
	}
	folderIDs := make(map[string]uuid.UUID, len(folders))
	for _, f := range folders {
		folderIDs[f.Name] = f.ID
	}

	for _, outline := range outlines {
		folderID, err := u.resolveFolder(ctx, userID, outline.FolderName, folderIDs)
		if err == nil {
			_, err = u.registrar.Execute(ctx, userID, outline.XMLURL, folderID)
		}
		if err != nil {
			logger.Logger.WarnContext(ctx, "failed to import feed", "url", outline.XMLURL, "error", err)
			result.Failed = append(result.Failed, domain.SyncError{FeedURL: outline.XMLURL, Error: err.Error()})
			continue
		}
		result.ImportedCount++
	}

	logger.Logger.InfoContext(ctx, "opml import finished",
		"user_id", userID,
		"imported", result.ImportedCount,
		"failed", len(result.Failed))

	return result, nil
}

func (u *ImportOPMLUsecase) resolveFolder(ctx context.Context, userID uuid.UUID, name string, cache map[string]uuid.UUID) (*uuid.UUID, error) {
	if name == "" {
		return nil, nil
	}
	if id, ok := cache[name]; ok {
		return &id, nil
	}
	folder, err := u.folderRepo.Create(ctx, userID, name)
	if err != nil {
		return nil, fmt.Errorf("create folder %q: %w", name, err)
	}
	cache[folder.Name] = folder.ID
	id := folder.ID
	return &id, nil
}
