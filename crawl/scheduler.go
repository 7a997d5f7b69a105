// Package crawl implements the bounded-concurrency, domain-scoped crawl
// core: the Frontier that decides what to visit and the Scheduler that
// drives a fixed pool of workers over it.
package crawl

import (
	"context"
	"log/slog"
	"sort"
	"sync"
	"time"

	"github.com/sitedex/sitedex"
	"golang.org/x/sync/errgroup"
)

// claimBackoff is how long an idle worker waits before re-checking the
// queue when it is momentarily empty but other workers are still in flight.
const claimBackoff = 25 * time.Millisecond

// Scheduler drives a crawl run: a fixed pool of workers pulls URLs from the
// Frontier, fetches them, feeds discovered links back, and forwards visited
// pages to the sink. The pool size is fixed and reused - work is pulled by
// idle workers rather than pushed into unbounded tasks.
type Scheduler struct {
	Frontier sitedex.Frontier
	Fetcher  sitedex.Fetcher
	Links    sitedex.LinkExtractor

	// Extractor, Converter and Sink are optional; when unset the crawl
	// only collects URLs (link-discovery mode).
	Extractor sitedex.Extractor
	Converter sitedex.Converter
	Sink      sitedex.PageSink

	// TokenCounter, if set, accumulates token counts for the summary.
	TokenCounter sitedex.TokenCounter

	// Limiter, if set, paces requests per domain.
	Limiter sitedex.DomainLimiter

	// RetryDelays configures fetch retries. Nil means no retries: a failed
	// fetch marks the URL visited-but-empty and the crawl moves on.
	RetryDelays []time.Duration

	// CrawlID is attached to recorded pages.
	CrawlID string

	// Preseed holds extra URLs (e.g. from sitemap discovery) admitted to
	// the frontier after the seed, before workers start. Out-of-scope or
	// duplicate entries are dropped by the frontier as usual.
	Preseed []string

	Logger *slog.Logger
	Config sitedex.CrawlConfig
}

// Result is the terminal artifact of a crawl run.
type Result struct {
	// Visited holds the canonical URL of every page whose processing
	// completed (successfully or not), sorted lexicographically. URLs
	// claimed but abandoned by cancellation are not included.
	Visited []string

	Saved  int // pages recorded to the sink
	Failed int // fetch/extract failures
	Bytes  int // total markdown bytes saved
	Tokens int // total tokens saved (when a TokenCounter is set)

	// Interrupted is true when the run stopped on cancellation rather than
	// frontier exhaustion. A partial result is valid, not an error.
	Interrupted bool
}

// crawlStats accumulates shared counters across workers.
type crawlStats struct {
	mu      sync.Mutex
	visited []string
	saved   int
	failed  int
	bytes   int
	tokens  int
}

func (s *crawlStats) completed(url string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.visited = append(s.visited, url)
}

func (s *crawlStats) failure(url string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.visited = append(s.visited, url)
	s.failed++
}

func (s *crawlStats) recorded(bytes, tokens int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.saved++
	s.bytes += bytes
	s.tokens += tokens
}

// Run executes the crawl until the frontier is exhausted, the page budget is
// reached, or ctx is canceled. Per-URL failures never terminate the pool;
// only an invalid seed aborts before work starts.
func (s *Scheduler) Run(ctx context.Context) (*Result, error) {
	cfg := s.Config.WithDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	logger := s.Logger
	if logger == nil {
		logger = slog.Default()
	}

	if err := s.Frontier.Seed(cfg.SeedURL); err != nil {
		return nil, err
	}
	for _, u := range s.Preseed {
		s.Frontier.Admit(u)
	}

	stats := &crawlStats{}

	var g errgroup.Group
	for i := 0; i < cfg.Concurrency; i++ {
		g.Go(func() error {
			s.worker(ctx, cfg, logger, stats)
			return nil
		})
	}
	_ = g.Wait()

	sort.Strings(stats.visited)
	return &Result{
		Visited:     stats.visited,
		Saved:       stats.saved,
		Failed:      stats.failed,
		Bytes:       stats.bytes,
		Tokens:      stats.tokens,
		Interrupted: ctx.Err() != nil,
	}, nil
}

// worker loops claim -> fetch -> extract -> admit until the frontier is
// exhausted or the context is canceled.
func (s *Scheduler) worker(ctx context.Context, cfg sitedex.CrawlConfig, logger *slog.Logger, stats *crawlStats) {
	for {
		if ctx.Err() != nil {
			return
		}

		url, ok := s.Frontier.TryClaim()
		if !ok {
			if s.Frontier.IsExhausted() {
				return
			}
			// Queue momentarily empty; another worker may still
			// produce links.
			select {
			case <-ctx.Done():
				return
			case <-time.After(claimBackoff):
			}
			continue
		}

		s.processURL(ctx, cfg, logger, stats, url)

		if cfg.RequestDelay > 0 {
			select {
			case <-ctx.Done():
				return
			case <-time.After(cfg.RequestDelay):
			}
		}
	}
}

// processURL handles one claimed URL. The URL stays visited whatever
// happens; failures are logged and isolated.
func (s *Scheduler) processURL(ctx context.Context, cfg sitedex.CrawlConfig, logger *slog.Logger, stats *crawlStats, url string) {
	defer s.Frontier.Done(url)

	if ctx.Err() != nil {
		// Claimed during shutdown; abandon without counting a visit.
		return
	}

	if s.Limiter != nil {
		domain, err := sitedex.Hostname(url)
		if err == nil {
			if err := s.Limiter.Wait(ctx, domain); err != nil {
				return // context canceled
			}
		}
	}

	fetchCtx, cancel := context.WithTimeout(ctx, cfg.RequestTimeout)
	defer cancel()

	res, err := FetchWithRetryDelays(fetchCtx, url, s.Fetcher.Fetch, logger, s.RetryDelays)
	if err != nil {
		if ctx.Err() != nil {
			// Abandoned by cancellation, not a completed visit.
			return
		}
		logger.Warn("fetch failed", "url", url, "err", err)
		stats.failure(url)
		return
	}

	// Feed discoveries back before anything else so other workers can
	// proceed while this one extracts content.
	links, err := s.Links.ExtractLinks(res.HTML, url)
	if err != nil {
		logger.Warn("link extraction failed", "url", url, "err", err)
	}
	for _, link := range links {
		s.Frontier.Admit(link)
	}

	page, err := s.buildPage(url, res.HTML)
	if err != nil {
		logger.Warn("content extraction failed", "url", url, "err", err)
		stats.failure(url)
		return
	}

	if s.Sink != nil && page != nil {
		if err := s.Sink.Record(ctx, page); err != nil {
			// Sink failures never abort the crawl.
			logger.Warn("sink record failed", "url", url, "err", err)
		} else {
			tokens := 0
			if s.TokenCounter != nil {
				if n, err := s.TokenCounter.CountTokens(ctx, page.Content); err == nil {
					tokens = n
				}
			}
			stats.recorded(len(page.Content), tokens)
		}
	}

	stats.completed(url)
	logger.Info("visited", "url", url, "links", len(links))
}

// buildPage extracts and converts page content when the pipeline is
// configured. Returns (nil, nil) in link-discovery mode.
func (s *Scheduler) buildPage(url, html string) (*sitedex.Page, error) {
	if s.Extractor == nil {
		return nil, nil
	}

	extracted, err := s.Extractor.Extract(html)
	if err != nil {
		return nil, err
	}

	content := extracted.ContentHTML
	if s.Converter != nil {
		md, err := s.Converter.Convert(extracted.ContentHTML)
		if err != nil {
			return nil, err
		}
		content = md
	}

	return &sitedex.Page{
		CrawlID: s.CrawlID,
		URL:     url,
		Title:   extracted.Title,
		Content: content,
	}, nil
}
