package domain

const (
	DefaultSyncLimit = 10
	CronSyncLimit    = 20
)

// SyncError records one feed's failure within a sync run.
type SyncError struct {
	FeedURL string `json:"feed_url"`
	Error   string `json:"error"`
}

// SyncResult aggregates one sync run.
type SyncResult struct {
	ProcessedFeedCount int         `json:"processed_feed_count"`
	NewEntryCount      int         `json:"new_entry_count"`
	Errors             []SyncError `json:"errors"`
}

// RegisterFeedResult is returned by a single-feed registration.
type RegisterFeedResult struct {
	Feed               Feed         `json:"feed"`
	Subscription       Subscription `json:"subscription"`
	InsertedEntryCount int          `json:"inserted_entry_count"`
}

// OPMLOutline is one feed found in an OPML document.
type OPMLOutline struct {
	Title      string
	XMLURL     string
	FolderName string
}

// ImportOPMLResult summarizes an OPML import.
type ImportOPMLResult struct {
	ImportedCount int         `json:"imported_count"`
	Failed        []SyncError `json:"failed"`
}
