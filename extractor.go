package sitedex

// LinkExtractor finds candidate URLs in fetched page content.
type LinkExtractor interface {
	// ExtractLinks parses content and returns the absolute URLs it
	// references, resolved against sourceURL, with fragments stripped and
	// page-local duplicates removed. Links outside the crawl's domain are
	// included - scope filtering is the Frontier's responsibility.
	// Malformed markup yields an empty set, not an error.
	ExtractLinks(content string, sourceURL string) ([]string, error)
}

// ExtractResult holds the extracted content from an HTML page.
type ExtractResult struct {
	// Title is the page title extracted from metadata.
	Title string

	// ContentHTML is the main content as clean HTML, with boilerplate
	// (nav, footer, sidebar) removed.
	ContentHTML string
}

// Extractor extracts main content from HTML pages, removing boilerplate.
type Extractor interface {
	Extract(html string) (*ExtractResult, error)
}
