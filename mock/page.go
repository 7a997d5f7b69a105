package mock

import (
	"context"

	"github.com/sitedex/sitedex"
)

var _ sitedex.PageSink = (*PageSink)(nil)

// PageSink is a mock implementation of sitedex.PageSink.
type PageSink struct {
	RecordFn func(ctx context.Context, page *sitedex.Page) error
}

func (s *PageSink) Record(ctx context.Context, page *sitedex.Page) error {
	return s.RecordFn(ctx, page)
}

var _ sitedex.PageService = (*PageService)(nil)

// PageService is a mock implementation of sitedex.PageService.
type PageService struct {
	CreatePageFn          func(ctx context.Context, page *sitedex.Page) error
	FindPageByIDFn        func(ctx context.Context, id string) (*sitedex.Page, error)
	FindPagesFn           func(ctx context.Context, filter sitedex.PageFilter) ([]*sitedex.Page, error)
	UpdatePageEmbeddingFn func(ctx context.Context, id string, embedding []float32) error
	DeletePagesByCrawlFn  func(ctx context.Context, crawlID string) error
}

func (s *PageService) CreatePage(ctx context.Context, page *sitedex.Page) error {
	return s.CreatePageFn(ctx, page)
}

func (s *PageService) FindPageByID(ctx context.Context, id string) (*sitedex.Page, error) {
	return s.FindPageByIDFn(ctx, id)
}

func (s *PageService) FindPages(ctx context.Context, filter sitedex.PageFilter) ([]*sitedex.Page, error) {
	return s.FindPagesFn(ctx, filter)
}

func (s *PageService) UpdatePageEmbedding(ctx context.Context, id string, embedding []float32) error {
	return s.UpdatePageEmbeddingFn(ctx, id, embedding)
}

func (s *PageService) DeletePagesByCrawl(ctx context.Context, crawlID string) error {
	return s.DeletePagesByCrawlFn(ctx, crawlID)
}
