package sitedex

import (
	"context"
	"time"
)

// Crawl represents one crawl run over a single domain.
type Crawl struct {
	ID         string    `json:"id"`
	SeedURL    string    `json:"seedUrl"`
	Domain     string    `json:"domain"`
	Pages      int       `json:"pages"`
	Failed     int       `json:"failed"`
	StartedAt  time.Time `json:"startedAt"`
	FinishedAt time.Time `json:"finishedAt"`
}

// Validate returns an error if the crawl contains invalid fields.
func (c *Crawl) Validate() error {
	if c.SeedURL == "" {
		return Errorf(EINVALID, "crawl seed URL required")
	}
	if c.Domain == "" {
		return Errorf(EINVALID, "crawl domain required")
	}
	return nil
}

// CrawlService represents a service for managing crawl runs.
type CrawlService interface {
	// CreateCrawl records the start of a crawl run.
	CreateCrawl(ctx context.Context, crawl *Crawl) error

	// FinishCrawl records the final page and failure counts.
	// Returns ENOTFOUND if the crawl does not exist.
	FinishCrawl(ctx context.Context, id string, pages, failed int) error

	// FindCrawlByID retrieves a crawl by ID.
	// Returns ENOTFOUND if the crawl does not exist.
	FindCrawlByID(ctx context.Context, id string) (*Crawl, error)

	// FindCrawls retrieves all crawls, most recent first.
	FindCrawls(ctx context.Context) ([]*Crawl, error)

	// DeleteCrawl permanently removes a crawl and all associated pages.
	// Returns ENOTFOUND if the crawl does not exist.
	DeleteCrawl(ctx context.Context, id string) error
}

// Page represents a visited page: the crawl's unit of output.
type Page struct {
	ID          string    `json:"id"`
	CrawlID     string    `json:"crawlId"`
	URL         string    `json:"url"`
	Title       string    `json:"title"`
	Content     string    `json:"content"` // Markdown
	ContentHash string    `json:"contentHash"`
	Embedding   []float32 `json:"embedding,omitempty"`
	FetchedAt   time.Time `json:"fetchedAt"`
}

// Validate returns an error if the page contains invalid fields.
func (p *Page) Validate() error {
	if p.CrawlID == "" {
		return Errorf(EINVALID, "page crawl ID required")
	}
	if p.URL == "" {
		return Errorf(EINVALID, "page URL required")
	}
	return nil
}

// PageSink receives each visited page for downstream persistence. Record is
// fire-and-forget from the crawler's perspective: a sink failure is logged by
// the caller and never aborts the crawl. Implementations must be safe for
// concurrent Record calls from multiple workers.
type PageSink interface {
	Record(ctx context.Context, page *Page) error
}

// PageService represents a service for managing stored pages.
type PageService interface {
	// CreatePage creates a new page.
	CreatePage(ctx context.Context, page *Page) error

	// FindPageByID retrieves a page by ID.
	// Returns ENOTFOUND if the page does not exist.
	FindPageByID(ctx context.Context, id string) (*Page, error)

	// FindPages retrieves pages matching the filter.
	FindPages(ctx context.Context, filter PageFilter) ([]*Page, error)

	// UpdatePageEmbedding stores the embedding vector for a page.
	// Returns ENOTFOUND if the page does not exist.
	UpdatePageEmbedding(ctx context.Context, id string, embedding []float32) error

	// DeletePagesByCrawl removes all pages for a crawl.
	DeletePagesByCrawl(ctx context.Context, crawlID string) error
}

// PageFilter represents a filter for FindPages.
type PageFilter struct {
	ID      *string `json:"id"`
	CrawlID *string `json:"crawlId"`
	URL     *string `json:"url"`

	// Embedded filters by whether an embedding has been stored.
	Embedded *bool `json:"embedded"`

	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}
