// Package core defines the pipeline interfaces for PageMark.
// Each stage of the pipeline is a clean, testable interface.
package core

import (
	"context"

	"golang.org/x/net/html"
)

// FetchResult holds the raw HTML loaded from a source.
type FetchResult struct {
	Source     string
	StatusCode int // 0 for local files
	HTML       string
}

// PageMetadata holds metadata extracted from the page and its source.
type PageMetadata struct {
	Source    string `json:"source"`
	Domain    string `json:"domain,omitempty"`
	Path      string `json:"path"`
	Title     string `json:"title"`
	Language  string `json:"language"`
	FetchedAt string `json:"fetched_at"` // ISO8601
}

// Heading represents a single heading found in the content.
type Heading struct {
	Level int    `json:"level"`
	Text  string `json:"text"`
}

// Link represents a hyperlink found in the content.
type Link struct {
	Text string `json:"text"`
	Href string `json:"href"`
}

// MarkedPage is one page after marking (or unmarking), ready to render.
type MarkedPage struct {
	Metadata      PageMetadata
	Query         string
	Label         string
	CaseSensitive bool
	Found         bool
	// Matched is the marked text as it appears in the page.
	Matched string
	// Excerpt is the normalized text surrounding the match.
	Excerpt string
	// Boundaries is the number of boundary elements involved.
	Boundaries int
	HTML       string
	Markdown   string
}

// Fetcher loads raw HTML from a URL or a local path.
type Fetcher interface {
	Fetch(ctx context.Context, source string) (*FetchResult, error)
}

// Extractor picks the subtree of a parsed document that marking works on.
type Extractor interface {
	Extract(doc *html.Node) (*html.Node, error)
}

// Normalizer converts marked HTML into Markdown (the readable format).
type Normalizer interface {
	Normalize(html string, label string) (string, error)
}

// Renderer converts a marked page into a final output format.
type Renderer interface {
	Render(page *MarkedPage) ([]byte, error)
	// Extension returns the file extension for this renderer (e.g. ".md", ".pdf").
	Extension() string
}

// Layout answers the rendering questions asked about elements next to
// whitespace-only text.
type Layout interface {
	// IsInline reports whether n participates in the surrounding text flow.
	IsInline(n *html.Node) bool
	// IsVisible reports whether n is rendered at all.
	IsVisible(n *html.Node) bool
}
