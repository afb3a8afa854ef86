package tag_gateway

import (
	"context"

	"rss-reader/domain"
	"rss-reader/driver/rss_db"

	"github.com/google/uuid"
)

type TagGateway struct {
	db *rss_db.RSSDBRepository
}

func NewTagGateway(db *rss_db.RSSDBRepository) *TagGateway {
	return &TagGateway{db: db}
}

func (g *TagGateway) ListByUserID(ctx context.Context, userID uuid.UUID) ([]*domain.Tag, error) {
	return g.db.ListTagsByUserID(ctx, userID)
}

func (g *TagGateway) FindByIDForUser(ctx context.Context, userID uuid.UUID, tagID uuid.UUID) (*domain.Tag, error) {
	return g.db.FindTagByIDForUser(ctx, userID, tagID)
}

func (g *TagGateway) Create(ctx context.Context, userID uuid.UUID, name string) (*domain.Tag, error) {
	return g.db.CreateTag(ctx, userID, name)
}

func (g *TagGateway) Delete(ctx context.Context, userID uuid.UUID, tagID uuid.UUID) error {
	return g.db.DeleteTag(ctx, userID, tagID)
}

func (g *TagGateway) AddToEntry(ctx context.Context, entryID uuid.UUID, tagID uuid.UUID) error {
	return g.db.AddTagToEntry(ctx, entryID, tagID)
}

func (g *TagGateway) RemoveFromEntry(ctx context.Context, entryID uuid.UUID, tagID uuid.UUID) error {
	return g.db.RemoveTagFromEntry(ctx, entryID, tagID)
}
