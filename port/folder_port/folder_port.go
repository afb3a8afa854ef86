package folder_port

//go:generate mockgen -source=folder_port.go -destination=../../mocks/mock_folder_port.go -package=mocks

import (
	"context"
	"rss-reader/domain"

	"github.com/google/uuid"
)

type FolderRepositoryPort interface {
	ListByUserID(ctx context.Context, userID uuid.UUID) ([]*domain.Folder, error)
	FindByName(ctx context.Context, userID uuid.UUID, name string) (*domain.Folder, error)
	Create(ctx context.Context, userID uuid.UUID, name string) (*domain.Folder, error)
	Delete(ctx context.Context, userID uuid.UUID, folderID uuid.UUID) error
}
