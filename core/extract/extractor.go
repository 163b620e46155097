// Package extract implements the Extractor interface.
// It picks the subtree of a page that marking works on by:
//  1. Optionally removing noise elements (nav, footer, scripts, etc.)
//  2. Selecting the scope: a caller-given selector, else the best content
//     container (<main>, <article>, or <body>)
package extract

import (
	"fmt"

	"github.com/PuerkitoBio/goquery"
	"github.com/andybalholm/cascadia"
	"golang.org/x/net/html"
)

// noiseSelectors are HTML elements removed when noise stripping is on.
// Their text is rarely what a reader searches for.
var noiseSelectors = []string{
	"script", "style", "noscript",
	"nav", "footer", "header",
	"iframe", "video", "audio",
	"svg", "canvas",
	".sidebar", ".menu", ".navigation", ".ads", ".advertisement",
}

// HTMLExtractor selects the marking root of a parsed document.
type HTMLExtractor struct {
	scope      cascadia.Selector
	stripNoise bool
}

// New creates an HTMLExtractor. An empty scope selects the best content
// container; otherwise scope must be a valid CSS selector.
func New(scope string, stripNoise bool) (*HTMLExtractor, error) {
	e := &HTMLExtractor{stripNoise: stripNoise}
	if scope != "" {
		sel, err := cascadia.Compile(scope)
		if err != nil {
			return nil, fmt.Errorf("compiling scope %q: %w", scope, err)
		}
		e.scope = sel
	}
	return e, nil
}

// Extract returns the node marking should search below. Noise removal, when
// enabled, mutates doc.
func (e *HTMLExtractor) Extract(doc *html.Node) (*html.Node, error) {
	page := goquery.NewDocumentFromNode(doc)

	if e.stripNoise {
		for _, sel := range noiseSelectors {
			page.Find(sel).Remove()
		}
	}

	if e.scope != nil {
		sel := page.FindMatcher(e.scope)
		if sel.Length() == 0 {
			return nil, fmt.Errorf("scope selector matched nothing")
		}
		return sel.Get(0), nil
	}

	// <main> is the most semantically correct, then <article>, then <body>.
	for _, tag := range []string{"main", "article", "body"} {
		sel := page.Find(tag)
		if sel.Length() > 0 {
			return sel.Get(0), nil
		}
	}

	// Fragments without a body are searched as a whole.
	return doc, nil
}
