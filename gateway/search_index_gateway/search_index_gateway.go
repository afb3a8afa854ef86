package search_index_gateway

import (
	"context"
	"fmt"

	"rss-reader/domain"
	"rss-reader/driver/rss_db"
	"rss-reader/driver/search_index_driver"
	"rss-reader/utils/logger"
	"rss-reader/utils/text"

	"github.com/google/uuid"
)

// Document content is capped so one long article cannot dominate the payload.
const maxDocumentContentRunes = 20000

type entrySource interface {
	FetchIndexableEntries(ctx context.Context, entryIDs []uuid.UUID) ([]rss_db.IndexableEntry, error)
}

type searchEngine interface {
	IndexDocuments(ctx context.Context, docs []search_index_driver.EntryDocument) error
	SearchIDs(ctx context.Context, query string, feedIDs []string, limit int) ([]string, error)
}

type SearchIndexGateway struct {
	entries entrySource
	engine  searchEngine
}

// NewSearchIndexGateway wires the index. With a nil engine both indexing and
// searches report domain.ErrSearchUnavailable.
func NewSearchIndexGateway(db *rss_db.RSSDBRepository, engine *search_index_driver.MeilisearchDriver) *SearchIndexGateway {
	g := &SearchIndexGateway{entries: db}
	if engine != nil {
		g.engine = engine
	}
	return g
}

func (g *SearchIndexGateway) IndexEntries(ctx context.Context, entryIDs []uuid.UUID) error {
	if len(entryIDs) == 0 {
		return nil
	}
	if g.engine == nil {
		return domain.ErrSearchUnavailable
	}

	rows, err := g.entries.FetchIndexableEntries(ctx, entryIDs)
	if err != nil {
		return fmt.Errorf("load entries for indexing: %w", err)
	}

	docs := make([]search_index_driver.EntryDocument, 0, len(rows))
	for _, row := range rows {
		docs = append(docs, toDocument(row))
	}

	if err := g.engine.IndexDocuments(ctx, docs); err != nil {
		return fmt.Errorf("index entries: %w", err)
	}

	logger.Logger.DebugContext(ctx, "indexed entries", "count", len(docs))
	return nil
}

func (g *SearchIndexGateway) SearchEntryIDs(ctx context.Context, query string, feedIDs []uuid.UUID, limit int) ([]uuid.UUID, error) {
	if g.engine == nil {
		return nil, domain.ErrSearchUnavailable
	}
	if len(feedIDs) == 0 {
		return []uuid.UUID{}, nil
	}

	feedFilter := make([]string, 0, len(feedIDs))
	for _, id := range feedIDs {
		feedFilter = append(feedFilter, id.String())
	}

	hits, err := g.engine.SearchIDs(ctx, query, feedFilter, limit)
	if err != nil {
		return nil, fmt.Errorf("search entries: %w", err)
	}

	ids := make([]uuid.UUID, 0, len(hits))
	for _, hit := range hits {
		id, err := uuid.Parse(hit)
		if err != nil {
			logger.Logger.WarnContext(ctx, "skipping search hit with invalid id", "id", hit)
			continue
		}
		ids = append(ids, id)
	}
	return ids, nil
}

func toDocument(row rss_db.IndexableEntry) search_index_driver.EntryDocument {
	e := row.Entry
	doc := search_index_driver.EntryDocument{
		ID:        e.ID.String(),
		FeedID:    e.FeedID.String(),
		FeedTitle: row.FeedTitle,
		Title:     e.Title,
		URL:       e.URL,
	}
	if e.Content != nil {
		doc.Content = text.Truncate(text.StripHTML(*e.Content), maxDocumentContentRunes)
	}
	if e.Author != nil {
		doc.Author = *e.Author
	}
	if e.PublishedAt != nil {
		doc.PublishedAt = e.PublishedAt.Unix()
	} else {
		doc.PublishedAt = e.CreatedAt.Unix()
	}
	return doc
}
