package sitedex

import (
	"context"
	"time"
)

// Default crawl budget values.
const (
	DefaultMaxPages       = 200
	DefaultConcurrency    = 10
	DefaultRequestTimeout = 30 * time.Second
)

// CrawlConfig is the budget bounding a single crawl run. It is immutable for
// the lifetime of the run; the domain scope is derived from the seed URL and
// is not independently settable.
type CrawlConfig struct {
	// SeedURL is the single start URL. Must be an absolute http(s) URL.
	SeedURL string

	// MaxPages caps the number of URLs visited (claimed), counting the seed.
	MaxPages int

	// Concurrency is the fixed number of crawl workers.
	Concurrency int

	// RequestTimeout bounds each individual fetch.
	RequestTimeout time.Duration

	// RequestDelay, if set, paces requests per worker without serializing
	// the whole pool.
	RequestDelay time.Duration
}

// Validate returns an error if the configuration cannot start a crawl.
func (c *CrawlConfig) Validate() error {
	return ValidateSeedURL(c.SeedURL)
}

// WithDefaults returns a copy of the config with zero values replaced by
// defaults.
func (c CrawlConfig) WithDefaults() CrawlConfig {
	if c.MaxPages <= 0 {
		c.MaxPages = DefaultMaxPages
	}
	if c.Concurrency <= 0 {
		c.Concurrency = DefaultConcurrency
	}
	if c.RequestTimeout <= 0 {
		c.RequestTimeout = DefaultRequestTimeout
	}
	return c
}

// Frontier tracks crawl progress: the queue of discovered-but-unclaimed URLs
// and the set of URLs already claimed by a worker. All URLs are normalized
// before entering frontier state. Implementations must be safe for concurrent
// use; TryClaim and Admit are atomic with respect to each other.
type Frontier interface {
	// Seed normalizes the start URL, marks it visited and enqueues it.
	// Must be called exactly once, before workers start.
	Seed(rawURL string) error

	// TryClaim atomically dequeues the next URL and marks the claim
	// in-flight. Returns false if the queue is empty or the page budget is
	// exhausted. A claimed URL is visited - it can never be claimed again.
	TryClaim() (url string, ok bool)

	// Admit normalizes a candidate URL and enqueues it only if it has not
	// been visited or queued, its host matches the scope domain, and the
	// page budget has room. Returns true if the URL was enqueued.
	Admit(rawURL string) bool

	// Done signals that processing of a claimed URL has finished,
	// successfully or not.
	Done(url string)

	// IsExhausted reports whether the queue is empty and no claims are
	// in flight, i.e. no new links can still arrive. This is the crawl's
	// termination predicate.
	IsExhausted() bool

	// VisitedCount returns the number of URLs claimed so far.
	VisitedCount() int
}

// DomainLimiter provides per-domain rate limiting.
type DomainLimiter interface {
	// Wait blocks until the rate limit allows a request to the domain.
	// Returns an error if the context is canceled.
	Wait(ctx context.Context, domain string) error
}
