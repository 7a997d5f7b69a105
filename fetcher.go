package sitedex

import "context"

// FetchResult holds the raw outcome of fetching a single URL.
type FetchResult struct {
	// HTML is the page content. For browser-based fetchers this is the
	// rendered DOM; for plain HTTP fetchers, the response body.
	HTML string

	// ContentType is the media type reported by the server, without
	// parameters (e.g. "text/html").
	ContentType string

	// StatusCode is the HTTP status, when known. Browser-based fetchers may
	// report 0.
	StatusCode int
}

// Fetcher retrieves page content from URLs. Fetch calls are independent and
// safe for concurrent use; implementations hold no per-URL mutable state.
type Fetcher interface {
	// Fetch retrieves the content at url. The context carries the
	// per-request timeout and cancellation. Failures (timeout, non-2xx
	// status, non-HTML content, network error) are returned as errors with
	// an application error code.
	Fetch(ctx context.Context, url string) (*FetchResult, error)

	// Close releases fetcher resources (connections, browser processes).
	Close() error
}
