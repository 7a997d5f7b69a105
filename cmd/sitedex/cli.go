package main

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/sitedex/sitedex"
	"github.com/sitedex/sitedex/sqlite"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx      context.Context
	Stdout   io.Writer
	Stderr   io.Writer
	Logger   *slog.Logger
	DB       *sqlite.DB
	Crawls   sitedex.CrawlService
	Pages    sitedex.PageService
	Sitemaps sitedex.SitemapService
	Fetcher  sitedex.Fetcher
	Tokens   sitedex.TokenCounter
	Embedder sitedex.Embedder
	Searcher sitedex.SearchService
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Verbose bool `short:"v" help:"Enable debug logging"`

	Crawl  CrawlCmd  `cmd:"" help:"Crawl a site starting from a seed URL"`
	Index  IndexCmd  `cmd:"" help:"Generate embeddings for crawled pages"`
	Search SearchCmd `cmd:"" help:"Semantic search over indexed pages"`
	List   ListCmd   `cmd:"" help:"List crawl runs"`
	Delete DeleteCmd `cmd:"" help:"Delete a crawl run and its pages"`
}

// CrawlCmd is the "crawl" subcommand.
type CrawlCmd struct {
	URL         string        `arg:"" help:"Seed URL; the crawl stays on this URL's host"`
	MaxPages    int           `short:"n" default:"200" help:"Page budget including the seed"`
	Concurrency int           `short:"c" default:"10" help:"Fixed crawl worker count"`
	Timeout     time.Duration `default:"30s" help:"Per-request fetch timeout"`
	Delay       time.Duration `help:"Per-worker delay between requests"`
	RPS         float64       `name:"rps" help:"Per-domain request rate limit (0 disables)"`
	Retries     int           `help:"Fetch retries with exponential backoff (default none)"`
	Headless    bool          `help:"Fetch with a headless browser for JS-rendered sites"`
	Sitemap     bool          `help:"Pre-seed the frontier from the site's sitemap"`
	Filter      []string      `short:"F" name:"filter" help:"Keep only sitemap URLs matching regex (repeatable)"`
	Output      string        `short:"o" help:"Write the sorted visited-URL list to this file"`
	Snapshots   string        `help:"Write per-page JSON snapshots into this directory"`
	LinksOnly   bool          `help:"Collect URLs without extracting or storing content"`
}

// IndexCmd is the "index" subcommand.
type IndexCmd struct {
	CrawlID string `arg:"" optional:"" help:"Crawl to index (default: all unembedded pages)"`
}

// SearchCmd is the "search" subcommand.
type SearchCmd struct {
	Query    string  `arg:"" help:"Natural language query"`
	CrawlID  string  `help:"Restrict results to one crawl"`
	Limit    int     `default:"10" help:"Maximum number of results"`
	MinScore float32 `help:"Minimum similarity score (0-1)"`
}

// ListCmd is the "list" subcommand.
type ListCmd struct{}

// DeleteCmd is the "delete" subcommand.
type DeleteCmd struct {
	CrawlID string `arg:"" help:"Crawl ID"`
	Force   bool   `help:"Confirm deletion"`
}
