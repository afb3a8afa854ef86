package tag_port

//go:generate mockgen -source=tag_port.go -destination=../../mocks/mock_tag_port.go -package=mocks

import (
	"context"
	"rss-reader/domain"

	"github.com/google/uuid"
)

type TagRepositoryPort interface {
	ListByUserID(ctx context.Context, userID uuid.UUID) ([]*domain.Tag, error)
	FindByIDForUser(ctx context.Context, userID uuid.UUID, tagID uuid.UUID) (*domain.Tag, error)
	Create(ctx context.Context, userID uuid.UUID, name string) (*domain.Tag, error)
	Delete(ctx context.Context, userID uuid.UUID, tagID uuid.UUID) error
	AddToEntry(ctx context.Context, entryID uuid.UUID, tagID uuid.UUID) error
	RemoveFromEntry(ctx context.Context, entryID uuid.UUID, tagID uuid.UUID) error
}
