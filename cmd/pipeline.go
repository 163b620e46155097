// Package cmd — shared pipeline steps.
// Loading a source, building metadata and choosing a renderer are the same
// for every command.
package cmd

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/gaurav-prasanna/pagemark/core"
	"github.com/gaurav-prasanna/pagemark/core/render"
	"github.com/spf13/cobra"
	"golang.org/x/net/html"
)

// loadDocument fetches a source and parses it into a full HTML document.
func loadDocument(ctx context.Context, fetcher core.Fetcher, source string) (*html.Node, error) {
	result, err := fetcher.Fetch(ctx, source)
	if err != nil {
		return nil, fmt.Errorf("fetch: %w", err)
	}
	doc, err := html.Parse(strings.NewReader(result.HTML))
	if err != nil {
		return nil, fmt.Errorf("parse: %w", err)
	}
	return doc, nil
}

// renderDocument serializes a document back to HTML.
func renderDocument(doc *html.Node) (string, error) {
	var buf strings.Builder
	if err := html.Render(&buf, doc); err != nil {
		return "", fmt.Errorf("rendering HTML: %w", err)
	}
	return buf.String(), nil
}

// buildMetadata constructs PageMetadata from the source and parsed document.
func buildMetadata(source string, doc *html.Node) core.PageMetadata {
	page := goquery.NewDocumentFromNode(doc)
	meta := core.PageMetadata{
		Source:    source,
		Path:      source,
		Title:     strings.TrimSpace(page.Find("title").First().Text()),
		Language:  page.Find("html").AttrOr("lang", "en"),
		FetchedAt: time.Now().UTC().Format(time.RFC3339),
	}
	if parsed, err := url.Parse(source); err == nil && parsed.Host != "" {
		meta.Domain = parsed.Host
		meta.Path = parsed.Path
	}
	return meta
}

// formatFlags are the mutually exclusive output format switches.
type formatFlags struct {
	html     bool
	markdown bool
	json     bool
	pdf      bool
}

func (f *formatFlags) register(c *cobra.Command, withReports bool) {
	c.Flags().BoolVar(&f.html, "html", false, "Output the marked HTML document")
	c.Flags().BoolVar(&f.markdown, "markdown", false, "Output Markdown")
	if withReports {
		c.Flags().BoolVar(&f.json, "json", false, "Output a structured JSON report")
		c.Flags().BoolVar(&f.pdf, "pdf", false, "Output a PDF report")
	}
}

// selected returns the chosen format, or fallback when no switch is set.
func (f *formatFlags) selected(fallback string) (string, error) {
	var chosen []string
	for name, on := range map[string]bool{"html": f.html, "markdown": f.markdown, "json": f.json, "pdf": f.pdf} {
		if on {
			chosen = append(chosen, name)
		}
	}
	switch len(chosen) {
	case 0:
		return fallback, nil
	case 1:
		return chosen[0], nil
	default:
		return "", fmt.Errorf("only one output format allowed per run (got %d)", len(chosen))
	}
}

// selectRenderer creates the Renderer for a format name.
func selectRenderer(format string) (core.Renderer, error) {
	switch format {
	case "html":
		return render.NewHTMLRenderer(), nil
	case "markdown":
		return render.NewMarkdownRenderer(), nil
	case "json":
		return render.NewJSONRenderer(), nil
	case "pdf":
		return render.NewPDFRenderer(), nil
	default:
		return nil, fmt.Errorf("unknown output format %q", format)
	}
}
