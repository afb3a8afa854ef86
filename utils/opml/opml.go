package opml

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"io"
	"strings"

	"golang.org/x/net/html/charset"

	"rss-reader/domain"
)

type document struct {
	XMLName xml.Name `xml:"opml"`
	Body    body     `xml:"body"`
}

type body struct {
	Outlines []outline `xml:"outline"`
}

type outline struct {
	Text     string    `xml:"text,attr"`
	Title    string    `xml:"title,attr"`
	Type     string    `xml:"type,attr"`
	XMLURL   string    `xml:"xmlUrl,attr"`
	HTMLURL  string    `xml:"htmlUrl,attr"`
	Outlines []outline `xml:"outline"`
}

// Parse reads an OPML document and flattens it into feed outlines.
// Outlines without xmlUrl are folders; their name is applied to every feed
// nested below them (the innermost folder wins).
func Parse(data []byte) ([]domain.OPMLOutline, error) {
	decoder := xml.NewDecoder(bytes.NewReader(data))
	decoder.CharsetReader = charset.NewReaderLabel
	decoder.Strict = false

	var doc document
	if err := decoder.Decode(&doc); err != nil && err != io.EOF {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidOPML, err)
	}
	if doc.XMLName.Local != "opml" {
		return nil, fmt.Errorf("%w: missing <opml> root", domain.ErrInvalidOPML)
	}

	var out []domain.OPMLOutline
	seen := make(map[string]struct{})
	var walk func(items []outline, folder string)
	walk = func(items []outline, folder string) {
		for _, o := range items {
			feedURL := strings.TrimSpace(o.XMLURL)
			if feedURL == "" {
				name := firstNonEmpty(o.Title, o.Text)
				if name == "" {
					name = folder
				}
				walk(o.Outlines, name)
				continue
			}
			if o.Type != "" && !strings.EqualFold(o.Type, "rss") && !strings.EqualFold(o.Type, "atom") {
				continue
			}
			if _, dup := seen[feedURL]; dup {
				continue
			}
			seen[feedURL] = struct{}{}
			out = append(out, domain.OPMLOutline{
				Title:      firstNonEmpty(o.Title, o.Text),
				XMLURL:     feedURL,
				FolderName: folder,
			})
		}
	}
	walk(doc.Body.Outlines, "")

	return out, nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if s := strings.TrimSpace(v); s != "" {
			return s
		}
	}
	return ""
}
