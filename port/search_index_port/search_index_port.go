package search_index_port

//go:generate mockgen -source=search_index_port.go -destination=../../mocks/mock_search_index_port.go -package=mocks

import (
	"context"

	"github.com/google/uuid"
)

type SearchIndexPort interface {
	IndexEntries(ctx context.Context, entryIDs []uuid.UUID) error
	// SearchEntryIDs returns matching entry ids in rank order, restricted to feedIDs.
	SearchEntryIDs(ctx context.Context, query string, feedIDs []uuid.UUID, limit int) ([]uuid.UUID, error)
}
