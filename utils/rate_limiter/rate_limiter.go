package rate_limiter

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

var ErrNoHost = errors.New("url has no host")

// PerHostLimiter lets one request per interval through to each host. Hosts
// are compared case-insensitively. A non-positive interval turns it off.
type PerHostLimiter struct {
	every time.Duration
	hosts sync.Map // host key -> *rate.Limiter
}

func NewPerHostLimiter(every time.Duration) *PerHostLimiter {
	return &PerHostLimiter{every: every}
}

// Wait blocks until rawURL's host may be contacted again or ctx ends.
func (l *PerHostLimiter) Wait(ctx context.Context, rawURL string) error {
	key, err := hostKey(rawURL)
	if err != nil {
		return err
	}
	if l.every <= 0 {
		return nil
	}

	v, ok := l.hosts.Load(key)
	if !ok {
		v, _ = l.hosts.LoadOrStore(key, rate.NewLimiter(rate.Every(l.every), 1))
	}
	return v.(*rate.Limiter).Wait(ctx)
}

func hostKey(rawURL string) (string, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return "", fmt.Errorf("parse %q: %w", rawURL, err)
	}
	if u.Hostname() == "" {
		return "", fmt.Errorf("%q: %w", rawURL, ErrNoHost)
	}
	return strings.ToLower(u.Host), nil
}
