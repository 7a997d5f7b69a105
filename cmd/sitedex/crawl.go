package main

import (
	"context"
	"fmt"
	"regexp"

	"github.com/sitedex/sitedex"
	"github.com/sitedex/sitedex/crawl"
	"github.com/sitedex/sitedex/fs"
	sdgoquery "github.com/sitedex/sitedex/goquery"
	sdhttp "github.com/sitedex/sitedex/http"
	"github.com/sitedex/sitedex/htmltomarkdown"
	"github.com/sitedex/sitedex/trafilatura"
)

// Run executes the crawl command.
func (c *CrawlCmd) Run(deps *Dependencies) error {
	if err := sitedex.ValidateSeedURL(c.URL); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", sitedex.ErrorMessage(err))
		return err
	}

	domain, err := sitedex.Hostname(c.URL)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", sitedex.ErrorMessage(err))
		return err
	}

	if !sdhttp.RootAllowed(deps.Ctx, nil, c.URL, sdhttp.DefaultUserAgent) {
		err := sitedex.Errorf(sitedex.EINVALID, "robots.txt of %s disallows crawling", domain)
		fmt.Fprintf(deps.Stderr, "error: %s\n", sitedex.ErrorMessage(err))
		return err
	}

	// Optional sitemap pre-seeding.
	var preseed []string
	if c.Sitemap {
		filter, err := compileFilter(c.Filter)
		if err != nil {
			fmt.Fprintf(deps.Stderr, "error: %v\n", err)
			return err
		}
		preseed, err = deps.Sitemaps.DiscoverURLs(deps.Ctx, c.URL, filter)
		if err != nil {
			fmt.Fprintf(deps.Stderr, "error discovering sitemap: %s\n", sitedex.ErrorMessage(err))
			return err
		}
		fmt.Fprintf(deps.Stdout, "Found %d sitemap URLs\n", len(preseed))
	}

	cr := &sitedex.Crawl{SeedURL: c.URL, Domain: domain}
	if err := deps.Crawls.CreateCrawl(deps.Ctx, cr); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", sitedex.ErrorMessage(err))
		return err
	}

	sink, err := c.buildSink(deps, cr.ID)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %v\n", err)
		return err
	}

	sched := &crawl.Scheduler{
		Frontier: crawl.NewFrontier(c.MaxPages),
		Fetcher:  deps.Fetcher,
		Links:    sdgoquery.NewLinkExtractor(),
		Sink:     sink,
		CrawlID:  cr.ID,
		Preseed:  preseed,
		Logger:   deps.Logger,
		Config: sitedex.CrawlConfig{
			SeedURL:        c.URL,
			MaxPages:       c.MaxPages,
			Concurrency:    c.Concurrency,
			RequestTimeout: c.Timeout,
			RequestDelay:   c.Delay,
		},
	}
	if !c.LinksOnly {
		sched.Extractor = trafilatura.NewExtractor()
		sched.Converter = htmltomarkdown.NewConverter()
		sched.TokenCounter = deps.Tokens
	}
	if c.RPS > 0 {
		sched.Limiter = crawl.NewDomainLimiter(c.RPS)
	}
	if c.Retries > 0 {
		sched.RetryDelays = crawl.BackoffDelays(c.Retries)
	}

	result, err := sched.Run(deps.Ctx)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error crawling: %s\n", sitedex.ErrorMessage(err))
		return err
	}

	if c.Output != "" {
		if err := fs.WriteLinkList(c.Output, result.Visited); err != nil {
			fmt.Fprintf(deps.Stderr, "error writing link list: %v\n", err)
			return err
		}
	}

	// An interrupted run still records what it completed.
	finishCtx := deps.Ctx
	if finishCtx.Err() != nil {
		finishCtx = context.Background()
	}
	if err := deps.Crawls.FinishCrawl(finishCtx, cr.ID, len(result.Visited), result.Failed); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", sitedex.ErrorMessage(err))
		return err
	}

	status := "Crawled"
	if result.Interrupted {
		status = "Interrupted after"
	}
	fmt.Fprintf(deps.Stdout, "%s %d pages (%d failed) on %s\n",
		status, len(result.Visited), result.Failed, domain)
	if result.Saved > 0 {
		fmt.Fprintf(deps.Stdout, "  Saved %d pages (%s, %s)\n",
			result.Saved, crawl.FormatBytes(result.Bytes), crawl.FormatTokens(result.Tokens))
	}
	fmt.Fprintf(deps.Stdout, "  Crawl ID: %s\n", cr.ID)

	return nil
}

// buildSink assembles the page sink: SQLite always (unless links-only), plus
// optional JSON snapshots.
func (c *CrawlCmd) buildSink(deps *Dependencies, crawlID string) (sitedex.PageSink, error) {
	if c.LinksOnly {
		return nil, nil
	}

	sinks := []sitedex.PageSink{&serviceSink{pages: deps.Pages}}
	if c.Snapshots != "" {
		store, err := fs.NewFileStore(c.Snapshots)
		if err != nil {
			return nil, fmt.Errorf("creating snapshot directory: %w", err)
		}
		sinks = append(sinks, store)
	}
	if len(sinks) == 1 {
		return sinks[0], nil
	}
	return multiSink(sinks), nil
}

// serviceSink adapts a PageService to the crawl's PageSink.
type serviceSink struct {
	pages sitedex.PageService
}

func (s *serviceSink) Record(ctx context.Context, page *sitedex.Page) error {
	return s.pages.CreatePage(ctx, page)
}

// multiSink fans a recorded page out to several sinks; the first error wins
// but all sinks are attempted.
type multiSink []sitedex.PageSink

func (m multiSink) Record(ctx context.Context, page *sitedex.Page) error {
	var firstErr error
	for _, s := range m {
		if err := s.Record(ctx, page); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}

// compileFilter compiles include patterns into a URLFilter.
func compileFilter(patterns []string) (*sitedex.URLFilter, error) {
	if len(patterns) == 0 {
		return nil, nil
	}
	filter := &sitedex.URLFilter{}
	for _, pattern := range patterns {
		re, err := regexp.Compile(pattern)
		if err != nil {
			return nil, fmt.Errorf("invalid filter pattern %q: %w", pattern, err)
		}
		filter.Include = append(filter.Include, re)
	}
	return filter, nil
}
