package text

import (
	"html"
	"strings"
	"unicode/utf8"

	"github.com/PuerkitoBio/goquery"
	"github.com/microcosm-cc/bluemonday"
)

var strictPolicy = bluemonday.StrictPolicy()

// StripHTML removes every tag from s and collapses whitespace.
func StripHTML(s string) string {
	if s == "" {
		return ""
	}
	return collapseSpaces(html.UnescapeString(strictPolicy.Sanitize(s)))
}

// ExtractText returns the visible text of an HTML fragment, skipping script
// and style elements. It falls back to StripHTML when the fragment cannot be parsed.
func ExtractText(fragment string) string {
	if strings.TrimSpace(fragment) == "" {
		return ""
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(fragment))
	if err != nil {
		return StripHTML(fragment)
	}
	doc.Find("script, style, noscript").Remove()

	return collapseSpaces(doc.Text())
}

// Truncate cuts s to at most maxRunes runes without splitting a UTF-8 sequence.
func Truncate(s string, maxRunes int) string {
	if maxRunes <= 0 || utf8.RuneCountInString(s) <= maxRunes {
		return s
	}
	runes := []rune(s)
	return string(runes[:maxRunes])
}

func collapseSpaces(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
