// Package http provides HTTP-based implementations of sitedex.Fetcher and
// sitedex.SitemapService for sites that don't require JavaScript rendering.
package http

import (
	"context"
	"errors"
	"io"
	"mime"
	"net/http"
	"strings"
	"time"

	"github.com/sitedex/sitedex"
)

// DefaultUserAgent identifies the crawler to servers.
const DefaultUserAgent = "sitedex/0.1 (+https://github.com/sitedex/sitedex)"

// Ensure Fetcher implements sitedex.Fetcher at compile time.
var _ sitedex.Fetcher = (*Fetcher)(nil)

// Fetcher retrieves page content over plain HTTP. Unlike rod.Fetcher this
// does not execute JavaScript and is suitable for static sites only.
type Fetcher struct {
	client    *http.Client
	userAgent string
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithClient sets the underlying HTTP client.
func WithClient(c *http.Client) Option {
	return func(f *Fetcher) {
		f.client = c
	}
}

// WithUserAgent overrides the User-Agent header.
func WithUserAgent(ua string) Option {
	return func(f *Fetcher) {
		f.userAgent = ua
	}
}

// NewFetcher creates a new HTTP-based Fetcher. Per-request timeouts come
// from the caller's context, so the default client has none of its own.
func NewFetcher(opts ...Option) *Fetcher {
	f := &Fetcher{
		client:    &http.Client{},
		userAgent: DefaultUserAgent,
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Fetch retrieves the content at url. Non-2xx statuses, non-HTML content
// types, timeouts and network errors are returned as application errors;
// the caller decides whether to count them against the crawl.
func (f *Fetcher) Fetch(ctx context.Context, url string) (*sitedex.FetchResult, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, sitedex.Errorf(sitedex.EINVALID, "invalid request for %s: %v", url, err)
	}
	req.Header.Set("User-Agent", f.userAgent)

	resp, err := f.client.Do(req)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return nil, sitedex.Errorf(sitedex.EUNAVAILABLE, "timeout fetching %s", url)
		}
		return nil, sitedex.Errorf(sitedex.EUNAVAILABLE, "fetching %s: %v", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, sitedex.Errorf(sitedex.EUNAVAILABLE, "HTTP %d for %s", resp.StatusCode, url)
	}

	contentType := resp.Header.Get("Content-Type")
	mediaType := contentType
	if mt, _, err := mime.ParseMediaType(contentType); err == nil {
		mediaType = mt
	}
	if mediaType != "" && !isHTML(mediaType) {
		return nil, sitedex.Errorf(sitedex.EINVALID, "non-HTML content type %q for %s", mediaType, url)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, sitedex.Errorf(sitedex.EUNAVAILABLE, "reading %s: %v", url, err)
	}

	return &sitedex.FetchResult{
		HTML:        string(body),
		ContentType: mediaType,
		StatusCode:  resp.StatusCode,
	}, nil
}

// Close releases resources. For the HTTP fetcher this is a no-op since
// http.Client doesn't require explicit cleanup.
func (f *Fetcher) Close() error {
	return nil
}

func isHTML(mediaType string) bool {
	return mediaType == "text/html" || strings.HasSuffix(mediaType, "+html") ||
		mediaType == "application/xhtml+xml"
}

// fetchTimeout is the bound on auxiliary requests (robots.txt, sitemaps)
// issued outside the crawl's per-request budget.
const fetchTimeout = 10 * time.Second
