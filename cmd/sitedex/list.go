package main

import (
	"fmt"

	"github.com/sitedex/sitedex"
)

// Run executes the list command.
func (c *ListCmd) Run(deps *Dependencies) error {
	crawls, err := deps.Crawls.FindCrawls(deps.Ctx)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", sitedex.ErrorMessage(err))
		return err
	}

	if len(crawls) == 0 {
		fmt.Fprintln(deps.Stdout, "No crawls found. Use 'sitedex crawl' to start one.")
		return nil
	}

	for _, cr := range crawls {
		status := "running"
		if !cr.FinishedAt.IsZero() {
			status = cr.FinishedAt.Format("2006-01-02 15:04")
		}
		fmt.Fprintf(deps.Stdout, "%s  %-30s  %4d pages  %3d failed  %s\n",
			cr.ID, cr.Domain, cr.Pages, cr.Failed, status)
	}

	return nil
}
