package domain

import "time"

// FetchedFeed is the normalized result of one fetch attempt. It is never persisted.
// NotModified implies Entries is empty.
type FetchedFeed struct {
	Title        string
	SiteURL      *string
	ETag         *string
	LastModified *string
	Entries      []FetchedEntry
	NotModified  bool
}

// FetchedEntry is one normalized item handed from the fetcher to storage.
type FetchedEntry struct {
	GUID        string
	Title       string
	URL         string
	Content     *string
	PublishedAt *time.Time
	Author      *string
}
