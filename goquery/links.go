// Package goquery provides an HTML link extractor built on goquery.
package goquery

import (
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/sitedex/sitedex"
)

// Compile-time interface verification.
var _ sitedex.LinkExtractor = (*LinkExtractor)(nil)

// LinkExtractor extracts anchor URLs from HTML documents. It resolves
// relative references against the page's own URL, strips fragments, and
// deduplicates within the page. It does not filter by domain - deciding
// which links to follow is the Frontier's job, not the extractor's.
type LinkExtractor struct{}

// NewLinkExtractor creates a new LinkExtractor.
func NewLinkExtractor() *LinkExtractor {
	return &LinkExtractor{}
}

// ExtractLinks parses content and returns the absolute URLs of every anchor
// in it. Malformed markup yields an empty set; goquery's parser recovers
// from broken HTML rather than failing, so an error here is limited to an
// unparseable sourceURL.
func (e *LinkExtractor) ExtractLinks(content string, sourceURL string) ([]string, error) {
	base, err := url.Parse(sourceURL)
	if err != nil {
		return nil, sitedex.Errorf(sitedex.EINVALID, "invalid source URL: %v", err)
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(content))
	if err != nil {
		// Unparseable content yields no links, not a failed page.
		return nil, nil
	}

	seen := make(map[string]struct{})
	var links []string

	doc.Find("a[href]").Each(func(_ int, sel *goquery.Selection) {
		href, exists := sel.Attr("href")
		if !exists || href == "" {
			return
		}
		if isNonHTTPLink(href) {
			return
		}

		resolved := resolveURL(base, href)
		if resolved == "" {
			return
		}

		if _, ok := seen[resolved]; ok {
			return
		}
		seen[resolved] = struct{}{}
		links = append(links, resolved)
	})

	return links, nil
}

// resolveURL resolves a relative href against the page URL per standard URL
// resolution rules. Fragments are stripped. Returns empty string if the
// href cannot be parsed or resolves to a non-http(s) scheme.
func resolveURL(base *url.URL, href string) string {
	ref, err := url.Parse(strings.TrimSpace(href))
	if err != nil {
		// Unparseable href: skipped silently, does not fail the page.
		return ""
	}
	resolved := base.ResolveReference(ref)
	resolved.Fragment = ""
	if resolved.Scheme != "http" && resolved.Scheme != "https" {
		return ""
	}
	return resolved.String()
}

// isNonHTTPLink checks if a href is a non-HTTP link that should be skipped.
func isNonHTTPLink(href string) bool {
	href = strings.ToLower(strings.TrimSpace(href))
	return strings.HasPrefix(href, "javascript:") ||
		strings.HasPrefix(href, "mailto:") ||
		strings.HasPrefix(href, "tel:") ||
		strings.HasPrefix(href, "data:")
}
