package feed_fetch_driver

import (
	"testing"
	"unicode/utf8"

	"github.com/mmcdole/gofeed"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFeed_SanitizesText(t *testing.T) {
	tests := []struct {
		name      string
		body      string
		wantTitle string
	}{
		{
			name:      "nul byte in title",
			body:      "<rss version=\"2.0\"><channel><title>feed</title><item><title>a\x00b</title><link>https://e.com/1</link></item></channel></rss>",
			wantTitle: "ab",
		},
		{
			name:      "invalid utf-8 in title",
			body:      "<rss version=\"2.0\"><channel><title>feed</title><item><title>caf\xe9</title><link>https://e.com/1</link></item></channel></rss>",
			wantTitle: "caf�",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := parseFeed(tt.body, "https://e.com/feed.xml", DefaultMaxItems)

			require.Len(t, got.Entries, 1)
			entry := got.Entries[0]
			assert.Equal(t, tt.wantTitle, entry.Title)
			assert.True(t, utf8.ValidString(entry.Title))
			assert.NotContains(t, entry.Title, "\x00")
			assert.Equal(t, "https://e.com/1", entry.URL)
		})
	}
}

func TestNormalizeItem_SanitizesEveryField(t *testing.T) {
	item := &gofeed.Item{
		GUID:    "g\x001",
		Title:   "caf\xe9",
		Link:    "https://e.com/\x001",
		Content: "<p>bo\x00dy \xff</p>",
		Author:  &gofeed.Person{Name: "Al\x00ice"},
	}

	got := normalizeItem(item, "https://e.com/feed.xml", 0)

	assert.Equal(t, "g1", got.GUID)
	assert.Equal(t, "caf�", got.Title)
	assert.Equal(t, "https://e.com/1", got.URL)
	require.NotNil(t, got.Content)
	assert.Equal(t, "<p>body �</p>", *got.Content)
	require.NotNil(t, got.Author)
	assert.Equal(t, "Alice", *got.Author)
}

func TestNormalizeItem_LinkOfOnlyNulBytesFallsBackToSynthetic(t *testing.T) {
	got := normalizeItem(&gofeed.Item{Link: "\x00\x00"}, "https://e.com/feed.xml", 3)

	assert.Equal(t, "https://e.com/feed.xml#3", got.URL)
	assert.Equal(t, "https://e.com/feed.xml#3", got.GUID)
	assert.Equal(t, "https://e.com/feed.xml#3", got.Title)
}

func TestParseLenient_SanitizesEveryField(t *testing.T) {
	body := "<rss><channel><title>fe\x00ed \xfe</title><item><guid>g\x001</guid><title>caf\xe9</title>" +
		"<description>de\x00sc</description><author>B\x00ob</author></item>"

	got := parseLenient(body, "https://e.com/feed.xml", DefaultMaxItems)

	assert.Equal(t, "feed �", got.Title)
	require.Len(t, got.Entries, 1)
	entry := got.Entries[0]
	assert.Equal(t, "g1", entry.GUID)
	assert.Equal(t, "caf�", entry.Title)
	assert.Equal(t, "desc", *entry.Content)
	assert.Equal(t, "Bob", *entry.Author)
}

func TestParseFeed_ItemWithoutLinkUsesSyntheticLink(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{
			name: "well formed rss",
			body: `<rss version="2.0"><channel><title>feed</title><item><description>only text</description></item></channel></rss>`,
		},
		{
			name: "malformed rss",
			body: `<rss version="2.0"><channel><title>feed</title><item><description>only text<br></description></item>`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := parseFeed(tt.body, "https://e.com/feed.xml", DefaultMaxItems)

			require.Len(t, got.Entries, 1)
			entry := got.Entries[0]
			assert.Equal(t, "https://e.com/feed.xml#0", entry.GUID)
			assert.Equal(t, "https://e.com/feed.xml#0", entry.URL)
			assert.Equal(t, "https://e.com/feed.xml#0", entry.Title)
		})
	}
}
