package main

import (
	"fmt"

	"github.com/sitedex/sitedex"
)

// Run executes the index command: it embeds every stored page that doesn't
// yet have an embedding.
func (c *IndexCmd) Run(deps *Dependencies) error {
	filter := sitedex.PageFilter{}
	embedded := false
	filter.Embedded = &embedded
	if c.CrawlID != "" {
		// Fail early with a clear message if the crawl doesn't exist.
		if _, err := deps.Crawls.FindCrawlByID(deps.Ctx, c.CrawlID); err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", sitedex.ErrorMessage(err))
			return err
		}
		filter.CrawlID = &c.CrawlID
	}

	pages, err := deps.Pages.FindPages(deps.Ctx, filter)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", sitedex.ErrorMessage(err))
		return err
	}

	if len(pages) == 0 {
		fmt.Fprintln(deps.Stdout, "Nothing to index.")
		return nil
	}

	indexed := 0
	for _, page := range pages {
		input := sitedex.EmbeddingInput(page.Title, page.Content)
		if input == "" {
			continue
		}

		vec, err := deps.Embedder.Embed(deps.Ctx, input)
		if err != nil {
			if deps.Ctx.Err() != nil {
				break
			}
			fmt.Fprintf(deps.Stderr, "  skip %s: %s\n", page.URL, sitedex.ErrorMessage(err))
			continue
		}

		if err := deps.Pages.UpdatePageEmbedding(deps.Ctx, page.ID, vec); err != nil {
			fmt.Fprintf(deps.Stderr, "  skip %s: %s\n", page.URL, sitedex.ErrorMessage(err))
			continue
		}
		indexed++
	}

	fmt.Fprintf(deps.Stdout, "Indexed %d of %d pages\n", indexed, len(pages))
	return nil
}
