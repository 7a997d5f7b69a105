package http

import (
	"context"
	"io"
	"net/http"
	"net/url"

	"github.com/temoto/robotstxt"
)

// RootAllowed performs a minimal robots.txt check: it reports whether the
// seed domain's robots rules allow crawling the root path for our agent.
// This is advisory only - a missing or unreadable robots.txt allows the
// crawl, and per-path rules beyond the root are not evaluated.
func RootAllowed(ctx context.Context, client *http.Client, seedURL, userAgent string) bool {
	if client == nil {
		client = http.DefaultClient
	}

	u, err := url.Parse(seedURL)
	if err != nil {
		return true
	}
	robotsURL := u.Scheme + "://" + u.Host + "/robots.txt"

	reqCtx, cancel := context.WithTimeout(ctx, fetchTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(reqCtx, http.MethodGet, robotsURL, nil)
	if err != nil {
		return true
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := client.Do(req)
	if err != nil {
		return true
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return true
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return true
	}

	robots, err := robotstxt.FromBytes(body)
	if err != nil {
		return true
	}

	return robots.TestAgent("/", userAgent)
}
