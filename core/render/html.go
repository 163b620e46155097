// Package render — HTML renderer.
// Writes the whole document with its boundaries in place.
package render

import (
	"fmt"

	"github.com/gaurav-prasanna/pagemark/core"
)

// HTMLRenderer writes the marked document.
type HTMLRenderer struct{}

// NewHTMLRenderer creates an HTMLRenderer.
func NewHTMLRenderer() *HTMLRenderer {
	return &HTMLRenderer{}
}

// Render returns the marked HTML.
func (r *HTMLRenderer) Render(page *core.MarkedPage) ([]byte, error) {
	if page.HTML == "" {
		return nil, fmt.Errorf("no HTML to render for %s", page.Metadata.Source)
	}
	return []byte(page.HTML), nil
}

// Extension returns the file extension for HTML output.
func (r *HTMLRenderer) Extension() string {
	return ".html"
}
