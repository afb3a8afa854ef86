package search_index_driver

import (
	"context"
	"encoding/json"
	"time"

	"github.com/meilisearch/meilisearch-go"
)

const taskWaitInterval = 50 * time.Millisecond

func NewMeilisearchClient(host string, apiKey string) meilisearch.ServiceManager {
	return meilisearch.New(host, meilisearch.WithAPIKey(apiKey))
}

type MeilisearchDriver struct {
	client meilisearch.ServiceManager
	index  meilisearch.IndexManager
}

func NewMeilisearchDriver(client meilisearch.ServiceManager, indexName string) *MeilisearchDriver {
	return &MeilisearchDriver{
		client: client,
		index:  client.Index(indexName),
	}
}

// Healthy reports whether the Meilisearch server answers its health check.
func (d *MeilisearchDriver) Healthy() error {
	if _, err := d.client.Health(); err != nil {
		return &DriverError{Op: "Healthy", Err: err.Error()}
	}
	return nil
}

// EnsureIndex registers feed_id as filterable so searches can be scoped to subscriptions.
func (d *MeilisearchDriver) EnsureIndex(ctx context.Context) error {
	task, err := d.index.UpdateFilterableAttributes(&[]string{"feed_id"})
	if err != nil {
		return &DriverError{
			Op:  "EnsureIndex",
			Err: "failed to set filterable attributes: " + err.Error(),
		}
	}

	if _, err = d.index.WaitForTask(task.TaskUID, taskWaitInterval); err != nil {
		return &DriverError{
			Op:  "EnsureIndex",
			Err: "failed to wait for settings update: " + err.Error(),
		}
	}

	return nil
}

// IndexDocuments enqueues docs. Meilisearch applies tasks in order, so the
// call does not wait for completion.
func (d *MeilisearchDriver) IndexDocuments(ctx context.Context, docs []EntryDocument) error {
	if len(docs) == 0 {
		return nil
	}

	if _, err := d.index.AddDocuments(docs); err != nil {
		return &DriverError{
			Op:  "IndexDocuments",
			Err: err.Error(),
		}
	}

	return nil
}

// SearchIDs returns document ids in rank order, restricted to feedIDs.
func (d *MeilisearchDriver) SearchIDs(ctx context.Context, query string, feedIDs []string, limit int) ([]string, error) {
	searchRequest := &meilisearch.SearchRequest{
		Query:                query,
		Limit:                int64(limit),
		AttributesToRetrieve: []string{"id"},
	}

	// Only add filter if it's not empty
	if filter := BuildFeedFilter(feedIDs); filter != "" {
		searchRequest.Filter = filter
	}

	raw, err := d.index.SearchRaw(query, searchRequest)
	if err != nil {
		return nil, &DriverError{
			Op:  "SearchIDs",
			Err: err.Error(),
		}
	}
	if raw == nil {
		return []string{}, nil
	}

	return decodeHitIDs(*raw)
}

type rawSearchResponse struct {
	Hits []struct {
		ID string `json:"id"`
	} `json:"hits"`
}

func decodeHitIDs(raw []byte) ([]string, error) {
	var resp rawSearchResponse
	if err := json.Unmarshal(raw, &resp); err != nil {
		return nil, &DriverError{Op: "SearchIDs", Err: "failed to decode hits: " + err.Error()}
	}

	ids := make([]string, 0, len(resp.Hits))
	for _, hit := range resp.Hits {
		if hit.ID != "" {
			ids = append(ids, hit.ID)
		}
	}
	return ids, nil
}
