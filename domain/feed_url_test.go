package domain

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateFeedURL(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{name: "https url", input: "https://example.com/feed.xml", want: "https://example.com/feed.xml"},
		{name: "trims whitespace", input: "  http://example.com/rss \n", want: "http://example.com/rss"},
		{name: "host is lowercased", input: "https://E.Com/Feed.xml", want: "https://e.com/Feed.xml"},
		{name: "scheme is lowercased", input: "HTTPS://e.com/feed.xml", want: "https://e.com/feed.xml"},
		{name: "default port dropped", input: "https://e.com:443/feed.xml", want: "https://e.com/feed.xml"},
		{name: "custom port kept", input: "http://e.com:8080/feed.xml", want: "http://e.com:8080/feed.xml"},
		{name: "empty path becomes root", input: "https://E.com", want: "https://e.com/"},
		{name: "query kept", input: "https://e.com/rss?format=xml", want: "https://e.com/rss?format=xml"},
		{name: "ipv6 host", input: "http://[::1]:8080/feed", want: "http://[::1]:8080/feed"},
		{name: "empty", input: "   ", wantErr: true},
		{name: "port without host", input: "https://:443/feed", wantErr: true},
		{name: "unparseable", input: "http://[::1", wantErr: true},
		{name: "ftp scheme", input: "ftp://example.com/feed", wantErr: true},
		{name: "no scheme", input: "example.com/feed", wantErr: true},
		{name: "no host", input: "https:///feed", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ValidateFeedURL(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				var urlErr *InvalidFeedURLError
				assert.True(t, errors.As(err, &urlErr))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestEntryFilter_NormalizedLimit(t *testing.T) {
	assert.Equal(t, DefaultEntryListLimit, EntryFilter{}.NormalizedLimit())
	assert.Equal(t, 10, EntryFilter{Limit: 10}.NormalizedLimit())
	assert.Equal(t, MaxEntryListLimit, EntryFilter{Limit: 5000}.NormalizedLimit())
}

func TestFetchError_Message(t *testing.T) {
	err := &FetchError{URL: "https://e.com/feed", StatusCode: 503}
	assert.Contains(t, err.Error(), "503")

	cause := errors.New("dial tcp: timeout")
	err = &FetchError{URL: "https://e.com/feed", Err: cause}
	assert.ErrorIs(t, err, cause)
}
