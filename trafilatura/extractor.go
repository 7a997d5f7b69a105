// Package trafilatura extracts the main readable content from crawled
// pages, discarding navigation, boilerplate and chrome.
package trafilatura

import (
	"bytes"
	"strings"

	"github.com/markusmobius/go-trafilatura"
	"github.com/sitedex/sitedex"
	"golang.org/x/net/html"
)

// Ensure Extractor implements sitedex.Extractor at compile time.
var _ sitedex.Extractor = (*Extractor)(nil)

// Extractor wraps go-trafilatura to pull the article body and title out of
// raw page HTML.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract processes raw HTML and returns the page title and main content
// as HTML. Pages where no main content can be identified yield an empty
// ContentHTML rather than an error.
func (e *Extractor) Extract(rawHTML string) (*sitedex.ExtractResult, error) {
	if strings.TrimSpace(rawHTML) == "" {
		return nil, sitedex.Errorf(sitedex.EINVALID, "empty HTML input")
	}

	opts := trafilatura.Options{
		EnableFallback: true,
	}

	result, err := trafilatura.Extract(strings.NewReader(rawHTML), opts)
	if err != nil {
		return nil, sitedex.Errorf(sitedex.EINTERNAL, "extracting content: %v", err)
	}

	var contentHTML string
	if result.ContentNode != nil {
		contentHTML, err = renderNode(result.ContentNode)
		if err != nil {
			return nil, err
		}
	}

	return &sitedex.ExtractResult{
		Title:       result.Metadata.Title,
		ContentHTML: contentHTML,
	}, nil
}

// renderNode converts an html.Node back to markup.
func renderNode(n *html.Node) (string, error) {
	var buf bytes.Buffer
	if err := html.Render(&buf, n); err != nil {
		return "", err
	}
	return buf.String(), nil
}
