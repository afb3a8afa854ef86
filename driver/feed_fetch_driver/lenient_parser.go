package feed_fetch_driver

import (
	"html"
	"regexp"
	"strings"

	"rss-reader/domain"
)

var (
	itemBlockRe    = regexp.MustCompile(`(?is)<item(?:\s[^>]*)?>(.*?)</item>`)
	entryBlockRe   = regexp.MustCompile(`(?is)<entry(?:\s[^>]*)?>(.*?)</entry>`)
	channelTitleRe = regexp.MustCompile(`(?is)<channel(?:\s[^>]*)?>.*?<title(?:\s[^>]*)?>(.*?)</title>`)
	feedTitleRe    = regexp.MustCompile(`(?is)<feed(?:\s[^>]*)?>.*?<title(?:\s[^>]*)?>(.*?)</title>`)
	anyTitleRe     = regexp.MustCompile(`(?is)<title(?:\s[^>]*)?>(.*?)</title>`)
	linkTagRe      = regexp.MustCompile(`(?is)<link(\s[^>]*)?/?>`)
	hrefAttrRe     = regexp.MustCompile(`(?is)\bhref\s*=\s*["']([^"']+)["']`)
	relAttrRe      = regexp.MustCompile(`(?is)\brel\s*=\s*["']([^"']+)["']`)
	cdataRe        = regexp.MustCompile(`(?s)<!\[CDATA\[(.*?)\]\]>`)

	tagPatterns = map[string]*regexp.Regexp{}
)

func init() {
	for _, name := range []string{
		"guid", "id", "link", "title", "content:encoded", "content", "description", "summary",
		"pubDate", "published", "updated", "dc:date", "author", "dc:creator", "name",
	} {
		tagPatterns[name] = regexp.MustCompile(`(?is)<` + regexp.QuoteMeta(name) + `(?:\s[^>]*)?>(.*?)</` + regexp.QuoteMeta(name) + `>`)
	}
}

// parseLenient extracts feed data with ordered tag patterns instead of a
// schema. Missing or malformed fields become empty rather than failing.
func parseLenient(body string, feedURL string, maxItems int) *domain.FetchedFeed {
	out := &domain.FetchedFeed{
		Title:   lenientFeedTitle(body),
		SiteURL: optional(lenientSiteLink(body)),
		Entries: []domain.FetchedEntry{},
	}

	blocks := make([]string, 0)
	for _, m := range itemBlockRe.FindAllStringSubmatch(body, -1) {
		blocks = append(blocks, m[1])
	}
	for _, m := range entryBlockRe.FindAllStringSubmatch(body, -1) {
		blocks = append(blocks, m[1])
	}

	for idx, block := range blocks {
		if idx >= maxItems {
			break
		}
		out.Entries = append(out.Entries, lenientEntry(block, feedURL, idx))
	}

	return sanitizeFeed(out)
}

func lenientEntry(block string, feedURL string, idx int) domain.FetchedEntry {
	link := lenientLink(block)
	if link == "" {
		link = syntheticGUID(feedURL, idx)
	}

	guid := firstNonEmpty(tagText(block, "guid"), tagText(block, "id"), link)

	title := tagText(block, "title")
	if title == "" {
		title = link
	}

	content := firstNonEmpty(
		tagText(block, "content:encoded"),
		tagText(block, "content"),
		tagText(block, "description"),
		tagText(block, "summary"),
	)

	published := firstNonEmpty(
		tagText(block, "pubDate"),
		tagText(block, "published"),
		tagText(block, "updated"),
		tagText(block, "dc:date"),
	)

	author := tagText(block, "author")
	if strings.Contains(author, "<") {
		// Atom nests <name> inside <author>.
		author = firstNonEmpty(tagText(author, "name"), stripTags(author))
	}
	author = firstNonEmpty(author, tagText(block, "dc:creator"))

	return sanitizeEntry(domain.FetchedEntry{
		GUID:        guid,
		Title:       title,
		URL:         link,
		Content:     optional(content),
		PublishedAt: parseDate(published),
		Author:      optional(author),
	}, syntheticGUID(feedURL, idx))
}

func lenientFeedTitle(body string) string {
	for _, re := range []*regexp.Regexp{channelTitleRe, feedTitleRe, anyTitleRe} {
		if m := re.FindStringSubmatch(body); m != nil {
			if t := cleanText(m[1]); t != "" {
				return t
			}
		}
	}
	return ""
}

// lenientSiteLink prefers an Atom-style <link href> that is not rel="self",
// then the RSS <link> text that precedes the first item.
func lenientSiteLink(body string) string {
	head := body
	if loc := itemBlockRe.FindStringIndex(body); loc != nil {
		head = body[:loc[0]]
	} else if loc := entryBlockRe.FindStringIndex(body); loc != nil {
		head = body[:loc[0]]
	}

	if href := alternateHref(head); href != "" {
		return href
	}
	return tagText(head, "link")
}

// lenientLink prefers an Atom <link href> over RSS <link> text.
func lenientLink(block string) string {
	if href := alternateHref(block); href != "" {
		return href
	}
	return tagText(block, "link")
}

func alternateHref(s string) string {
	for _, m := range linkTagRe.FindAllStringSubmatch(s, -1) {
		attrs := m[1]
		href := hrefAttrRe.FindStringSubmatch(attrs)
		if href == nil {
			continue
		}
		if rel := relAttrRe.FindStringSubmatch(attrs); rel != nil {
			r := strings.ToLower(strings.TrimSpace(rel[1]))
			if r != "alternate" {
				continue
			}
		}
		return cleanText(href[1])
	}
	return ""
}

func tagText(block, name string) string {
	re, ok := tagPatterns[name]
	if !ok {
		return ""
	}
	m := re.FindStringSubmatch(block)
	if m == nil {
		return ""
	}
	return cleanText(m[1])
}

// cleanText unwraps CDATA and decodes entities.
func cleanText(s string) string {
	s = cdataRe.ReplaceAllString(s, "$1")
	return strings.TrimSpace(html.UnescapeString(s))
}

var tagRe = regexp.MustCompile(`(?s)<[^>]*>`)

func stripTags(s string) string {
	return cleanText(tagRe.ReplaceAllString(s, " "))
}
