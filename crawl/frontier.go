package crawl

import (
	"sync"

	"github.com/bits-and-blooms/bloom/v3"
	"github.com/sitedex/sitedex"
)

// Frontier sizing for the Bloom filter pre-check.
const (
	// frontierExpectedURLs is the expected number of URLs for Bloom filter sizing.
	frontierExpectedURLs = 10000
	// frontierFalsePositiveRate is the acceptable false positive rate for the pre-check.
	frontierFalsePositiveRate = 0.01
)

// Compile-time interface verification.
var _ sitedex.Frontier = (*Frontier)(nil)

// Frontier is an in-memory crawl frontier: a FIFO queue of discovered URLs
// plus the set of URLs already claimed by a worker. URLs are normalized on
// entry and scoped to the seed's host. It is safe for concurrent use by
// multiple goroutines.
//
// Deduplication uses an exact map as the authority; a Bloom filter answers
// "definitely new" cheaply so the common case (a fresh link) skips the map
// lookups. A filter false positive falls through to the maps, so the filter
// never drops a URL.
type Frontier struct {
	mu       sync.Mutex
	scope    string // host of the seed URL; set by Seed
	maxPages int
	seeded   bool

	queue    []string
	queued   map[string]struct{}
	visited  map[string]struct{}
	seen     *bloom.BloomFilter // superset pre-check over queued+visited
	inflight int
}

// NewFrontier creates a Frontier with the given page budget.
// The domain scope is derived from the URL passed to Seed.
func NewFrontier(maxPages int) *Frontier {
	if maxPages <= 0 {
		maxPages = sitedex.DefaultMaxPages
	}
	return &Frontier{
		maxPages: maxPages,
		queued:   make(map[string]struct{}),
		visited:  make(map[string]struct{}),
		seen:     bloom.NewWithEstimates(frontierExpectedURLs, frontierFalsePositiveRate),
	}
}

// Seed normalizes the start URL, derives the domain scope from it, and
// enqueues it. Must be called exactly once, before any claims.
func (f *Frontier) Seed(rawURL string) error {
	if err := sitedex.ValidateSeedURL(rawURL); err != nil {
		return err
	}
	u, err := sitedex.NormalizeURL(rawURL)
	if err != nil {
		return err
	}
	host, err := sitedex.Hostname(u)
	if err != nil {
		return err
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	if f.seeded {
		return sitedex.Errorf(sitedex.ECONFLICT, "frontier already seeded")
	}
	f.seeded = true
	f.scope = host

	f.queue = append(f.queue, u)
	f.queued[u] = struct{}{}
	f.seen.AddString(u)
	return nil
}

// TryClaim atomically dequeues the next URL and marks it visited, granting
// the caller the exclusive right to fetch it. Returns false if the queue is
// empty or the page budget is spent.
func (f *Frontier) TryClaim() (string, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if len(f.queue) == 0 || len(f.visited) >= f.maxPages {
		return "", false
	}

	u := f.queue[0]
	f.queue = f.queue[1:]
	delete(f.queued, u)
	f.visited[u] = struct{}{}
	f.inflight++
	return u, true
}

// Admit normalizes a candidate URL and enqueues it if it is new, in scope,
// and within budget. The check and the insert happen under one lock, so two
// workers racing to admit the same link cannot both enqueue it.
func (f *Frontier) Admit(rawURL string) bool {
	u, err := sitedex.NormalizeURL(rawURL)
	if err != nil {
		return false
	}
	host, err := sitedex.Hostname(u)
	if err != nil || host == "" {
		return false
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	if host != f.scope {
		return false
	}
	if len(f.visited)+len(f.queue) >= f.maxPages {
		return false
	}
	if f.seen.TestString(u) {
		// Possibly seen; the maps decide.
		if _, ok := f.visited[u]; ok {
			return false
		}
		if _, ok := f.queued[u]; ok {
			return false
		}
	}

	f.queue = append(f.queue, u)
	f.queued[u] = struct{}{}
	f.seen.AddString(u)
	return true
}

// Done signals that processing of a claimed URL has finished.
func (f *Frontier) Done(url string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.inflight > 0 {
		f.inflight--
	}
}

// IsExhausted reports whether no further claims will ever succeed and no
// claim is in flight: either the queue is drained or the page budget is
// spent, and no worker still holds a URL that could produce new links.
func (f *Frontier) IsExhausted() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.inflight > 0 {
		return false
	}
	return len(f.queue) == 0 || len(f.visited) >= f.maxPages
}

// VisitedCount returns the number of URLs claimed so far.
func (f *Frontier) VisitedCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.visited)
}

// QueueLen returns the number of URLs waiting to be claimed.
func (f *Frontier) QueueLen() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.queue)
}
