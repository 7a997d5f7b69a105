package mock

import (
	"context"

	"github.com/sitedex/sitedex"
)

var _ sitedex.CrawlService = (*CrawlService)(nil)

// CrawlService is a mock implementation of sitedex.CrawlService.
type CrawlService struct {
	CreateCrawlFn   func(ctx context.Context, crawl *sitedex.Crawl) error
	FinishCrawlFn   func(ctx context.Context, id string, pages, failed int) error
	FindCrawlByIDFn func(ctx context.Context, id string) (*sitedex.Crawl, error)
	FindCrawlsFn    func(ctx context.Context) ([]*sitedex.Crawl, error)
	DeleteCrawlFn   func(ctx context.Context, id string) error
}

func (s *CrawlService) CreateCrawl(ctx context.Context, crawl *sitedex.Crawl) error {
	return s.CreateCrawlFn(ctx, crawl)
}

func (s *CrawlService) FinishCrawl(ctx context.Context, id string, pages, failed int) error {
	return s.FinishCrawlFn(ctx, id, pages, failed)
}

func (s *CrawlService) FindCrawlByID(ctx context.Context, id string) (*sitedex.Crawl, error) {
	return s.FindCrawlByIDFn(ctx, id)
}

func (s *CrawlService) FindCrawls(ctx context.Context) ([]*sitedex.Crawl, error) {
	return s.FindCrawlsFn(ctx)
}

func (s *CrawlService) DeleteCrawl(ctx context.Context, id string) error {
	return s.DeleteCrawlFn(ctx, id)
}
