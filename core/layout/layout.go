// Package layout implements core.Layout from the styles declared in a
// document: inline style attributes, <style> sheets and the default display
// of each tag. It does not run a renderer; external stylesheets and media
// queries are not considered.
package layout

import (
	"strings"

	"github.com/JohannesKaufmann/dom"
	"github.com/andybalholm/cascadia"
	"github.com/aymerick/douceur/css"
	"github.com/aymerick/douceur/parser"
	"golang.org/x/net/html"
)

// nonRendered are elements that never produce boxes.
var nonRendered = map[string]bool{
	"head": true, "script": true, "style": true, "template": true,
	"noscript": true, "title": true, "meta": true, "link": true,
}

// sheetRule is one selector of a style rule with the declarations it sets.
type sheetRule struct {
	sel   cascadia.Sel
	order int
	decls []*css.Declaration
}

// StyleLayout answers display and visibility questions for one document.
type StyleLayout struct {
	rules []sheetRule
}

// New collects the <style> sheets found below doc. Sheets or selectors that
// fail to parse are ignored. A nil doc yields a layout that only knows tag
// defaults and inline styles.
func New(doc *html.Node) *StyleLayout {
	l := &StyleLayout{}
	if doc == nil {
		return l
	}
	styles := dom.FindAllNodes(doc, func(n *html.Node) bool {
		return n.Type == html.ElementNode && n.Data == "style"
	})
	for _, s := range styles {
		sheet, err := parser.Parse(dom.CollectText(s))
		if err != nil {
			continue
		}
		l.addRules(sheet.Rules)
	}
	return l
}

func (l *StyleLayout) addRules(rules []*css.Rule) {
	for _, rule := range rules {
		if rule.Kind != css.QualifiedRule {
			continue
		}
		decls := relevant(rule.Declarations)
		if len(decls) == 0 {
			continue
		}
		for _, raw := range rule.Selectors {
			sel, err := cascadia.Parse(raw)
			if err != nil || sel.PseudoElement() != "" {
				continue
			}
			l.rules = append(l.rules, sheetRule{sel: sel, order: len(l.rules), decls: decls})
		}
	}
}

// relevant keeps the declarations layout decisions depend on. Declarations
// without a value are dropped.
func relevant(decls []*css.Declaration) []*css.Declaration {
	var out []*css.Declaration
	for _, d := range decls {
		if strings.TrimSpace(d.Value) == "" {
			continue
		}
		switch strings.ToLower(d.Property) {
		case "display", "visibility":
			out = append(out, d)
		}
	}
	return out
}

// IsInline reports whether n is displayed inline or inline-block.
func (l *StyleLayout) IsInline(n *html.Node) bool {
	switch l.Display(n) {
	case "inline", "inline-block":
		return true
	}
	return false
}

// IsVisible reports whether n and all its ancestors are rendered and n is
// not visibility-hidden.
func (l *StyleLayout) IsVisible(n *html.Node) bool {
	for cur := n; cur != nil && cur.Type == html.ElementNode; cur = cur.Parent {
		if nonRendered[cur.Data] || l.Display(cur) == "none" {
			return false
		}
		if _, hidden := dom.GetAttribute(cur, "hidden"); hidden {
			return false
		}
	}
	// visibility is inherited; the nearest declaration wins.
	for cur := n; cur != nil && cur.Type == html.ElementNode; cur = cur.Parent {
		if v, ok := l.property(cur, "visibility"); ok {
			return v != "hidden" && v != "collapse"
		}
	}
	return true
}

// Display returns the computed display keyword of an element.
func (l *StyleLayout) Display(n *html.Node) string {
	if v, ok := l.property(n, "display"); ok {
		return v
	}
	if dom.NameIsInlineNode(n.Data) {
		return "inline"
	}
	return "block"
}

// candidate is a declaration competing in the cascade.
type candidate struct {
	value     string
	important bool
	inline    bool
	spec      cascadia.Specificity
	order     int
}

// beats reports whether c takes precedence over o.
func (c candidate) beats(o candidate) bool {
	if c.important != o.important {
		return c.important
	}
	if c.inline != o.inline {
		return c.inline
	}
	if c.spec != o.spec {
		return o.spec.Less(c.spec)
	}
	return c.order > o.order
}

// property resolves one property of n through the cascade.
func (l *StyleLayout) property(n *html.Node, name string) (string, bool) {
	var best candidate
	found := false
	consider := func(c candidate) {
		if !found || c.beats(best) {
			best = c
			found = true
		}
	}

	for _, r := range l.rules {
		if !r.sel.Match(n) {
			continue
		}
		for _, d := range r.decls {
			if strings.EqualFold(d.Property, name) {
				consider(candidate{value: d.Value, important: d.Important, spec: r.sel.Specificity(), order: r.order})
			}
		}
	}

	if style, ok := dom.GetAttribute(n, "style"); ok {
		// the parser loses the value of a final declaration with no ';'.
		if !strings.HasSuffix(strings.TrimSpace(style), ";") {
			style += ";"
		}
		decls, err := parser.ParseDeclarations(style)
		if err == nil {
			for i, d := range relevant(decls) {
				if strings.EqualFold(d.Property, name) {
					consider(candidate{value: d.Value, important: d.Important, inline: true, order: i})
				}
			}
		}
	}

	if !found {
		return "", false
	}
	return strings.ToLower(strings.TrimSpace(best.value)), true
}
