package feed_fetch_driver

import (
	"fmt"
	"html"
	"strings"
	"time"

	"github.com/Songmu/go-httpdate"
	"github.com/mmcdole/gofeed"

	"rss-reader/domain"
)

// parseFeed normalizes an RSS or Atom body. gofeed handles well-formed
// documents; anything it rejects goes through the lenient pattern extractor
// so one broken tag does not lose the whole feed. Both paths apply the same
// per-field fallback order.
func parseFeed(body string, feedURL string, maxItems int) *domain.FetchedFeed {
	feed, err := gofeed.NewParser().ParseString(body)
	if err != nil || feed == nil {
		return parseLenient(body, feedURL, maxItems)
	}

	out := &domain.FetchedFeed{
		Title:   decodeText(feed.Title),
		SiteURL: optional(siteLink(feed)),
		Entries: make([]domain.FetchedEntry, 0, min(len(feed.Items), maxItems)),
	}
	if out.Title == "" {
		out.Title = lenientFeedTitle(body)
	}

	for idx, item := range feed.Items {
		if idx >= maxItems {
			break
		}
		out.Entries = append(out.Entries, normalizeItem(item, feedURL, idx))
	}

	return sanitizeFeed(out)
}

func siteLink(feed *gofeed.Feed) string {
	if feed.Link != "" {
		return strings.TrimSpace(feed.Link)
	}
	for _, l := range feed.Links {
		if l = strings.TrimSpace(l); l != "" && l != feed.FeedLink {
			return l
		}
	}
	return ""
}

func normalizeItem(item *gofeed.Item, feedURL string, idx int) domain.FetchedEntry {
	link := strings.TrimSpace(item.Link)
	if link == "" && len(item.Links) > 0 {
		link = strings.TrimSpace(item.Links[0])
	}
	if link == "" {
		link = syntheticGUID(feedURL, idx)
	}

	guid := firstNonEmpty(item.GUID, link)

	title := decodeText(item.Title)
	if title == "" {
		title = link
	}

	// content:encoded and Atom <content> land in Content; description and
	// Atom <summary> land in Description.
	content := firstNonEmpty(item.Content, item.Description)

	var dcDate, dcCreator string
	if item.DublinCoreExt != nil {
		dcDate = first(item.DublinCoreExt.Date)
		dcCreator = first(item.DublinCoreExt.Creator)
	}

	author := ""
	if item.Author != nil {
		author = firstNonEmpty(item.Author.Name, item.Author.Email)
	}
	if author == "" && len(item.Authors) > 0 && item.Authors[0] != nil {
		author = firstNonEmpty(item.Authors[0].Name, item.Authors[0].Email)
	}
	author = firstNonEmpty(author, dcCreator)

	return sanitizeEntry(domain.FetchedEntry{
		GUID:        guid,
		Title:       title,
		URL:         link,
		Content:     optional(content),
		PublishedAt: parseDate(firstNonEmpty(item.Published, item.Updated, dcDate)),
		Author:      optional(decodeText(author)),
	}, syntheticGUID(feedURL, idx))
}

// parseDate accepts RFC 1123/822, RFC 3339 and the other layouts go-httpdate
// knows. Unparseable or empty values yield nil.
func parseDate(raw string) *time.Time {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}
	t, err := httpdate.Str2Time(raw, nil)
	if err != nil || t.IsZero() {
		return nil
	}
	t = t.UTC()
	return &t
}

func syntheticGUID(feedURL string, idx int) string {
	return fmt.Sprintf("%s#%d", feedURL, idx)
}

// decodeText resolves entities left in plain-text fields, e.g. inside CDATA.
func decodeText(s string) string {
	return strings.TrimSpace(html.UnescapeString(strings.TrimSpace(s)))
}

// sanitizeText drops NUL bytes and replaces invalid UTF-8 sequences, both of
// which Postgres TEXT columns reject.
func sanitizeText(s string) string {
	return strings.TrimSpace(strings.ReplaceAll(strings.ToValidUTF8(s, "\uFFFD"), "\x00", ""))
}

func sanitizeOptional(s *string) *string {
	if s == nil {
		return nil
	}
	return optional(sanitizeText(*s))
}

// sanitizeEntry cleans every field. A link or guid that was nothing but
// invalid bytes falls back to synthetic, keeping both non-empty.
func sanitizeEntry(e domain.FetchedEntry, synthetic string) domain.FetchedEntry {
	e.URL = firstNonEmpty(sanitizeText(e.URL), synthetic)
	e.GUID = firstNonEmpty(sanitizeText(e.GUID), e.URL)
	e.Title = firstNonEmpty(sanitizeText(e.Title), e.URL)
	e.Content = sanitizeOptional(e.Content)
	e.Author = sanitizeOptional(e.Author)
	return e
}

func sanitizeFeed(f *domain.FetchedFeed) *domain.FetchedFeed {
	f.Title = sanitizeText(f.Title)
	f.SiteURL = sanitizeOptional(f.SiteURL)
	return f
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if s := strings.TrimSpace(v); s != "" {
			return s
		}
	}
	return ""
}

func first(values []string) string {
	if len(values) == 0 {
		return ""
	}
	return values[0]
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
