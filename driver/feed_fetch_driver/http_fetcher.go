package feed_fetch_driver

import (
	"context"
	"fmt"
	"io"
	"mime"
	"net/http"
	"regexp"
	"strings"
	"time"

	"golang.org/x/net/html/charset"

	"rss-reader/domain"
)

const (
	acceptHeader = "application/rss+xml, application/atom+xml, application/xml, text/xml;q=0.9, */*;q=0.1"

	DefaultTimeout      = 20 * time.Second
	DefaultMaxItems     = 200
	DefaultMaxBodyBytes = 10 << 20
	DefaultUserAgent    = "rss-reader/0.1"
)

var xmlEncodingDecl = regexp.MustCompile(`(?i)(<\?xml[^>]*encoding=["'])[^"']*(["'])`)

// Options tune a FeedFetcher. Zero values fall back to the defaults above.
type Options struct {
	Timeout      time.Duration
	MaxItems     int
	MaxBodyBytes int64
	UserAgent    string
}

// FeedFetcher performs conditional GETs against feed URLs and normalizes the
// response into a domain.FetchedFeed.
type FeedFetcher struct {
	client       *http.Client
	timeout      time.Duration
	maxItems     int
	maxBodyBytes int64
	userAgent    string
}

func NewFeedFetcher(client *http.Client, opts Options) *FeedFetcher {
	if client == nil {
		client = &http.Client{}
	}
	f := &FeedFetcher{
		client:       client,
		timeout:      opts.Timeout,
		maxItems:     opts.MaxItems,
		maxBodyBytes: opts.MaxBodyBytes,
		userAgent:    opts.UserAgent,
	}
	if f.timeout <= 0 {
		f.timeout = DefaultTimeout
	}
	if f.maxItems <= 0 {
		f.maxItems = DefaultMaxItems
	}
	if f.maxBodyBytes <= 0 {
		f.maxBodyBytes = DefaultMaxBodyBytes
	}
	if f.userAgent == "" {
		f.userAgent = DefaultUserAgent
	}
	return f
}

// Fetch requests feedURL, sending etag and lastModified as conditional
// validators when present. A 304 yields NotModified with no entries; any
// other non-2xx status, transport failure or timeout yields *domain.FetchError.
func (f *FeedFetcher) Fetch(ctx context.Context, feedURL string, etag *string, lastModified *string) (*domain.FetchedFeed, error) {
	ctx, cancel := context.WithTimeout(ctx, f.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, feedURL, nil)
	if err != nil {
		return nil, &domain.FetchError{URL: feedURL, Err: err}
	}
	req.Header.Set("User-Agent", f.userAgent)
	req.Header.Set("Accept", acceptHeader)
	if v := nonEmpty(etag); v != nil {
		req.Header.Set("If-None-Match", *v)
	}
	if v := nonEmpty(lastModified); v != nil {
		req.Header.Set("If-Modified-Since", *v)
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, &domain.FetchError{URL: feedURL, Err: err}
	}
	defer resp.Body.Close()

	respETag := headerValue(resp.Header, "ETag")
	respLastModified := headerValue(resp.Header, "Last-Modified")

	if resp.StatusCode == http.StatusNotModified {
		return &domain.FetchedFeed{
			Entries:      []domain.FetchedEntry{},
			NotModified:  true,
			ETag:         respETag,
			LastModified: respLastModified,
		}, nil
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &domain.FetchError{URL: feedURL, StatusCode: resp.StatusCode}
	}

	body, err := readBody(resp, f.maxBodyBytes)
	if err != nil {
		return nil, &domain.FetchError{URL: feedURL, Err: fmt.Errorf("read body: %w", err)}
	}

	parsed := parseFeed(body, feedURL, f.maxItems)
	parsed.ETag = respETag
	parsed.LastModified = respLastModified

	return parsed, nil
}

// readBody reads at most limit bytes. Bodies served with a non UTF-8 charset
// are transcoded and their XML declaration rewritten so the parser does not
// decode them twice.
func readBody(resp *http.Response, limit int64) (string, error) {
	var reader io.Reader = io.LimitReader(resp.Body, limit)

	declared := declaredCharset(resp.Header.Get("Content-Type"))
	transcode := declared != "" && !strings.EqualFold(declared, "utf-8") && !strings.EqualFold(declared, "utf8")
	if transcode {
		converted, err := charset.NewReaderLabel(declared, reader)
		if err != nil {
			return "", err
		}
		reader = converted
	}

	raw, err := io.ReadAll(reader)
	if err != nil {
		return "", err
	}

	body := string(raw)
	if transcode {
		body = xmlEncodingDecl.ReplaceAllString(body, "${1}UTF-8${2}")
	}
	return body, nil
}

func declaredCharset(contentType string) string {
	if contentType == "" {
		return ""
	}
	_, params, err := mime.ParseMediaType(contentType)
	if err != nil {
		return ""
	}
	return params["charset"]
}

func headerValue(h http.Header, key string) *string {
	v := strings.TrimSpace(h.Get(key))
	if v == "" {
		return nil
	}
	return &v
}

func nonEmpty(s *string) *string {
	if s == nil || strings.TrimSpace(*s) == "" {
		return nil
	}
	return s
}
