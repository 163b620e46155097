// Package render provides output renderers for the PageMark pipeline.
// This file implements the Markdown renderer: a YAML front matter block
// describing the mark, followed by the page Markdown with matches in bold.
package render

import (
	"bytes"
	"fmt"

	"github.com/gaurav-prasanna/pagemark/core"
	"gopkg.in/yaml.v3"
)

// frontMatter is the header written ahead of the page Markdown.
type frontMatter struct {
	Source  string `yaml:"source"`
	Title   string `yaml:"title,omitempty"`
	Label   string `yaml:"label"`
	Query   string `yaml:"query,omitempty"`
	Matched string `yaml:"matched,omitempty"`
}

// MarkdownRenderer writes the page Markdown behind a front matter block.
type MarkdownRenderer struct{}

// NewMarkdownRenderer creates a MarkdownRenderer.
func NewMarkdownRenderer() *MarkdownRenderer {
	return &MarkdownRenderer{}
}

// Render returns the front matter followed by the page Markdown.
func (r *MarkdownRenderer) Render(page *core.MarkedPage) ([]byte, error) {
	head, err := yaml.Marshal(frontMatter{
		Source:  page.Metadata.Source,
		Title:   page.Metadata.Title,
		Label:   page.Label,
		Query:   page.Query,
		Matched: page.Matched,
	})
	if err != nil {
		return nil, fmt.Errorf("encoding front matter: %w", err)
	}

	var buf bytes.Buffer
	buf.WriteString("---\n")
	buf.Write(head)
	buf.WriteString("---\n\n")
	buf.WriteString(page.Markdown)
	return buf.Bytes(), nil
}

// Extension returns the file extension for Markdown output.
func (r *MarkdownRenderer) Extension() string {
	return ".md"
}
