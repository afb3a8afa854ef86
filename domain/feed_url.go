package domain

import (
	"net"
	"net/url"
	"strings"
)

// ValidateFeedURL checks raw is an absolute http(s) URL and returns its
// canonical form: lowercase host, no default port, "/" for an empty path.
// Feeds are keyed by this form.
func ValidateFeedURL(raw string) (string, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return "", &InvalidFeedURLError{URL: raw, Reason: "url is empty"}
	}

	parsed, err := url.Parse(trimmed)
	if err != nil {
		return "", &InvalidFeedURLError{URL: trimmed, Reason: "url cannot be parsed"}
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return "", &InvalidFeedURLError{URL: trimmed, Reason: "scheme must be http or https"}
	}
	if parsed.Hostname() == "" {
		return "", &InvalidFeedURLError{URL: trimmed, Reason: "url has no host"}
	}

	host := strings.ToLower(parsed.Hostname())
	if port := parsed.Port(); port != "" && port != defaultPorts[parsed.Scheme] {
		host = net.JoinHostPort(host, port)
	} else if strings.Contains(host, ":") {
		host = "[" + host + "]"
	}
	parsed.Host = host
	if parsed.Path == "" && parsed.Opaque == "" {
		parsed.Path = "/"
	}

	return parsed.String(), nil
}

var defaultPorts = map[string]string{"http": "80", "https": "443"}
