package search_index_driver

// EntryDocument is the Meilisearch document stored per entry.
type EntryDocument struct {
	ID          string `json:"id"`
	FeedID      string `json:"feed_id"`
	FeedTitle   string `json:"feed_title"`
	Title       string `json:"title"`
	Content     string `json:"content"`
	URL         string `json:"url"`
	Author      string `json:"author,omitempty"`
	PublishedAt int64  `json:"published_at"`
}

// DriverError represents an error from the search driver
type DriverError struct {
	Op  string
	Err string
}

func (e *DriverError) Error() string {
	return e.Op + ": " + e.Err
}
