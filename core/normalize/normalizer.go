// Package normalize implements the Normalizer interface.
// It converts marked HTML into Markdown, turning every boundary of the
// label into bold text so the match stays visible.
package normalize

import (
	"fmt"
	"strings"

	htmltomarkdown "github.com/JohannesKaufmann/html-to-markdown/v2"
	"github.com/PuerkitoBio/goquery"
	"github.com/gaurav-prasanna/pagemark/core/highlight"
	"golang.org/x/net/html/atom"
)

// MarkdownNormalizer converts HTML to Markdown using html-to-markdown.
type MarkdownNormalizer struct{}

// New creates a MarkdownNormalizer.
func New() *MarkdownNormalizer {
	return &MarkdownNormalizer{}
}

// Normalize converts a marked HTML document into Markdown. An empty label
// converts the document unchanged.
func (n *MarkdownNormalizer) Normalize(html string, label string) (string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return "", fmt.Errorf("parsing HTML: %w", err)
	}

	if label != "" {
		for _, b := range highlight.FindBoundaries(doc.Get(0), label) {
			b.Data = "strong"
			b.DataAtom = atom.Strong
			b.Attr = nil
		}
	}

	rewritten, err := doc.Html()
	if err != nil {
		return "", fmt.Errorf("serializing HTML: %w", err)
	}

	markdown, err := htmltomarkdown.ConvertString(rewritten)
	if err != nil {
		return "", fmt.Errorf("converting HTML to markdown: %w", err)
	}
	return markdown, nil
}
