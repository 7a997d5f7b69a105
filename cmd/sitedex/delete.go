package main

import (
	"fmt"

	"github.com/sitedex/sitedex"
)

// Run executes the delete command.
func (c *DeleteCmd) Run(deps *Dependencies) error {
	if !c.Force {
		fmt.Fprintf(deps.Stderr, "error: use --force to confirm deletion\n")
		return sitedex.Errorf(sitedex.EINVALID, "use --force to confirm deletion")
	}

	crawl, err := deps.Crawls.FindCrawlByID(deps.Ctx, c.CrawlID)
	if err != nil {
		if sitedex.ErrorCode(err) == sitedex.ENOTFOUND {
			fmt.Fprintf(deps.Stderr, "error: crawl %q not found. Use 'sitedex list' to see crawls.\n", c.CrawlID)
		} else {
			fmt.Fprintf(deps.Stderr, "error: %s\n", sitedex.ErrorMessage(err))
		}
		return err
	}

	if err := deps.Crawls.DeleteCrawl(deps.Ctx, crawl.ID); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", sitedex.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Deleted crawl of %s (%s)\n", crawl.Domain, crawl.ID)
	return nil
}
