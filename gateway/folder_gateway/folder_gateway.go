package folder_gateway

import (
	"context"

	"rss-reader/domain"
	"rss-reader/driver/rss_db"

	"github.com/google/uuid"
)

type FolderGateway struct {
	db *rss_db.RSSDBRepository
}

func NewFolderGateway(db *rss_db.RSSDBRepository) *FolderGateway {
	return &FolderGateway{db: db}
}

func (g *FolderGateway) ListByUserID(ctx context.Context, userID uuid.UUID) ([]*domain.Folder, error) {
	return g.db.ListFoldersByUserID(ctx, userID)
}

func (g *FolderGateway) FindByName(ctx context.Context, userID uuid.UUID, name string) (*domain.Folder, error) {
	return g.db.FindFolderByName(ctx, userID, name)
}

func (g *FolderGateway) Create(ctx context.Context, userID uuid.UUID, name string) (*domain.Folder, error) {
	return g.db.CreateFolder(ctx, userID, name)
}

func (g *FolderGateway) Delete(ctx context.Context, userID uuid.UUID, folderID uuid.UUID) error {
	return g.db.DeleteFolder(ctx, userID, folderID)
}
