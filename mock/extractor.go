package mock

import (
	"github.com/sitedex/sitedex"
)

var _ sitedex.LinkExtractor = (*LinkExtractor)(nil)

// LinkExtractor is a mock implementation of sitedex.LinkExtractor.
type LinkExtractor struct {
	ExtractLinksFn func(content string, sourceURL string) ([]string, error)
}

func (e *LinkExtractor) ExtractLinks(content string, sourceURL string) ([]string, error) {
	return e.ExtractLinksFn(content, sourceURL)
}

var _ sitedex.Extractor = (*Extractor)(nil)

// Extractor is a mock implementation of sitedex.Extractor.
type Extractor struct {
	ExtractFn func(rawHTML string) (*sitedex.ExtractResult, error)
}

func (e *Extractor) Extract(rawHTML string) (*sitedex.ExtractResult, error) {
	return e.ExtractFn(rawHTML)
}

var _ sitedex.Converter = (*Converter)(nil)

// Converter is a mock implementation of sitedex.Converter.
type Converter struct {
	ConvertFn func(html string) (string, error)
}

func (c *Converter) Convert(html string) (string, error) {
	return c.ConvertFn(html)
}
