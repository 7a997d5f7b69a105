// Package htmltomarkdown converts extracted page HTML into Markdown for
// storage and embedding.
package htmltomarkdown

import (
	"strings"

	"github.com/JohannesKaufmann/html-to-markdown/v2/converter"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/base"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/commonmark"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/table"
	"github.com/sitedex/sitedex"
)

// Ensure Converter implements sitedex.Converter at compile time.
var _ sitedex.Converter = (*Converter)(nil)

// Converter wraps html-to-markdown. The table plugin is enabled because
// documentation sites lean heavily on tables for API references.
type Converter struct {
	conv *converter.Converter
}

// NewConverter creates a new Converter.
func NewConverter() *Converter {
	conv := converter.NewConverter(
		converter.WithPlugins(
			base.NewBasePlugin(),
			commonmark.NewCommonmarkPlugin(),
			table.NewTablePlugin(),
		),
	)
	return &Converter{conv: conv}
}

// Convert transforms HTML content into Markdown.
func (c *Converter) Convert(html string) (string, error) {
	if strings.TrimSpace(html) == "" {
		return "", sitedex.Errorf(sitedex.EINVALID, "empty HTML input")
	}

	result, err := c.conv.ConvertString(html)
	if err != nil {
		return "", sitedex.Errorf(sitedex.EINTERNAL, "converting to markdown: %v", err)
	}

	return result, nil
}
