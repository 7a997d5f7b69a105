package main

import (
	"fmt"

	"github.com/sitedex/sitedex"
	"github.com/sitedex/sitedex/crawl"
)

// Run executes the search command.
func (c *SearchCmd) Run(deps *Dependencies) error {
	opts := sitedex.SearchOptions{
		Limit:    c.Limit,
		MinScore: c.MinScore,
	}
	if c.CrawlID != "" {
		opts.CrawlID = &c.CrawlID
	}

	results, err := deps.Searcher.Search(deps.Ctx, c.Query, opts)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", sitedex.ErrorMessage(err))
		return err
	}

	if len(results) == 0 {
		fmt.Fprintln(deps.Stdout, "No results. Run 'sitedex index' to embed crawled pages first.")
		return nil
	}

	for _, r := range results {
		title := r.Page.Title
		if title == "" {
			title = "(untitled)"
		}
		fmt.Fprintf(deps.Stdout, "%.3f  %s\n       %s\n", r.Score, title, crawl.TruncateURL(r.Page.URL, 76))
	}

	return nil
}
