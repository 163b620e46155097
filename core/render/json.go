// Package render — JSON renderer.
// Builds a structured report of one marking run: what was searched, what
// was marked and where, plus the page text and its outline.
package render

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strings"

	"github.com/gaurav-prasanna/pagemark/core"
)

// markReport is the complete JSON output for a single page.
type markReport struct {
	Metadata  core.PageMetadata `json:"metadata"`
	Mark      markInfo          `json:"mark"`
	Content   pageContent       `json:"content"`
	Structure pageStructure     `json:"structure"`
}

type markInfo struct {
	Query         string `json:"query"`
	Label         string `json:"label"`
	CaseSensitive bool   `json:"case_sensitive"`
	Found         bool   `json:"found"`
	Matched       string `json:"matched,omitempty"`
	Excerpt       string `json:"excerpt,omitempty"`
	Boundaries    int    `json:"boundaries"`
}

type pageContent struct {
	Text     string `json:"text"`
	Markdown string `json:"markdown"`
}

type pageStructure struct {
	Headings []core.Heading `json:"headings"`
	Links    []core.Link    `json:"links"`
}

// JSONRenderer produces the JSON report.
type JSONRenderer struct{}

// NewJSONRenderer creates a JSONRenderer.
func NewJSONRenderer() *JSONRenderer {
	return &JSONRenderer{}
}

// Render converts a marked page into the JSON report.
func (r *JSONRenderer) Render(page *core.MarkedPage) ([]byte, error) {
	report := markReport{
		Metadata: page.Metadata,
		Mark: markInfo{
			Query:         page.Query,
			Label:         page.Label,
			CaseSensitive: page.CaseSensitive,
			Found:         page.Found,
			Matched:       page.Matched,
			Excerpt:       page.Excerpt,
			Boundaries:    page.Boundaries,
		},
		Content: pageContent{
			Text:     stripMarkdown(page.Markdown),
			Markdown: page.Markdown,
		},
		Structure: pageStructure{
			Headings: extractHeadings(page.Markdown),
			Links:    extractLinks(page.Markdown),
		},
	}

	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshaling JSON: %w", err)
	}
	return data, nil
}

// Extension returns the file extension for JSON output.
func (r *JSONRenderer) Extension() string {
	return ".json"
}

// --- Markdown parsing helpers ---

var headingRegex = regexp.MustCompile(`(?m)^(#{1,6})\s+(.+)$`)

func extractHeadings(md string) []core.Heading {
	matches := headingRegex.FindAllStringSubmatch(md, -1)
	headings := make([]core.Heading, 0, len(matches))
	for _, m := range matches {
		headings = append(headings, core.Heading{
			Level: len(m[1]),
			Text:  strings.TrimSpace(stripMarkdown(m[2])),
		})
	}
	return headings
}

// linkRegex matches Markdown links [text](url).
var linkRegex = regexp.MustCompile(`\[([^\]]*)\]\(([^)]+)\)`)

func extractLinks(md string) []core.Link {
	matches := linkRegex.FindAllStringSubmatch(md, -1)
	links := make([]core.Link, 0, len(matches))
	for _, m := range matches {
		links = append(links, core.Link{
			Text: m[1],
			Href: m[2],
		})
	}
	return links
}

var (
	emphasisRegex   = regexp.MustCompile(`\*{1,3}([^*]+)\*{1,3}`)
	inlineCodeRegex = regexp.MustCompile("`([^`]+)`")
	blankLinesRegex = regexp.MustCompile(`\n{3,}`)
)

// stripMarkdown removes common Markdown formatting to produce plain text.
func stripMarkdown(md string) string {
	text := headingRegex.ReplaceAllString(md, "$2")
	text = emphasisRegex.ReplaceAllString(text, "$1")
	text = linkRegex.ReplaceAllString(text, "$1")
	text = strings.ReplaceAll(text, "```", "")
	text = inlineCodeRegex.ReplaceAllString(text, "$1")
	text = blankLinesRegex.ReplaceAllString(text, "\n\n")
	return strings.TrimSpace(text)
}
