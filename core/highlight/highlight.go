package highlight

import (
	"io"
	"log/slog"
	"strings"

	"github.com/gaurav-prasanna/pagemark/core"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// blankChars are the characters a text leaf may consist of and still be
// treated as layout whitespace.
const blankChars = " \t\n\r\f"

// Highlighter marks and unmarks query occurrences in HTML trees.
//
// A Highlighter holds no per-tree state. Calls against the same tree must
// not run concurrently.
type Highlighter struct {
	layout core.Layout
	log    *slog.Logger
}

// New creates a Highlighter. layout answers display questions for the
// whitespace guard; with a nil layout whitespace-only leaves are never
// marked. A nil logger discards output.
func New(layout core.Layout, log *slog.Logger) *Highlighter {
	if log == nil {
		log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Highlighter{layout: layout, log: log}
}

// headless has no layout information.
var headless = New(nil, nil)

// Mark wraps the first occurrence of query below root using a Highlighter
// without layout information.
func Mark(root *html.Node, query, label string, caseSensitive bool) (bool, error) {
	return headless.Mark(root, query, label, caseSensitive)
}

// Unmark removes the boundaries labeled label below root using a Highlighter
// without layout information.
func Unmark(root *html.Node, label string) (int, error) {
	return headless.Unmark(root, label)
}

// Mark wraps the first occurrence of query in the text below root into
// <span class="label"> boundaries, splitting text leaves where the
// occurrence starts or ends inside them. It reports whether an occurrence
// was found. When none is found the tree is not touched.
func (h *Highlighter) Mark(root *html.Node, query, label string, caseSensitive bool) (bool, error) {
	if root == nil {
		return false, ErrNilRoot
	}
	if !validLabel(label) {
		return false, ErrInvalidLabel
	}

	leaves := ExtractLeaves(root)
	m, ok := LocateMatch(FullText(leaves), query, caseSensitive, leaves)
	if !ok {
		h.log.Debug("no match", "query", query, "leaves", len(leaves))
		return false, nil
	}
	h.log.Debug("match located", "query", query, "leaves", len(m.Leaves), "start", m.Start, "end", m.End)

	for i, leaf := range m.Leaves {
		start, end := 0, 0
		if i == 0 {
			start = m.Start
		}
		if i == len(m.Leaves)-1 {
			end = m.End
		}
		h.wrapLeaf(leaf, label, start, end)
	}
	return true, nil
}

// wrapLeaf wraps the part of leaf between the raw offsets start and end in a
// boundary. Zero offsets mean the corresponding end of the leaf.
func (h *Highlighter) wrapLeaf(leaf *html.Node, label string, start, end int) {
	if !h.visibleLeaf(leaf) {
		h.log.Debug("skipping layout whitespace", "raw", leaf.Data)
		return
	}
	if start > 0 {
		parts := SplitLeaf(leaf, start)
		leaf = parts[len(parts)-1]
		if len(parts) == 2 && end > 0 {
			end -= start
		}
	}
	if end > 0 {
		leaf = SplitLeaf(leaf, end)[0]
	}

	span := &html.Node{
		Type:     html.ElementNode,
		Data:     "span",
		DataAtom: atom.Span,
		Attr:     []html.Attribute{{Key: "class", Val: label}},
	}
	replaceNode(leaf, span)
	span.AppendChild(leaf)
}

// visibleLeaf reports whether a leaf renders. A leaf with any non-blank
// character does; a blank one only when the nearest visible elements on
// both sides are inline-level.
func (h *Highlighter) visibleLeaf(leaf *html.Node) bool {
	if strings.Trim(leaf.Data, blankChars) != "" {
		return true
	}
	if h.layout == nil {
		return false
	}
	prev := h.visibleSibling(leaf, func(n *html.Node) *html.Node { return n.PrevSibling })
	next := h.visibleSibling(leaf, func(n *html.Node) *html.Node { return n.NextSibling })
	return prev != nil && next != nil && h.layout.IsInline(prev) && h.layout.IsInline(next)
}

func (h *Highlighter) visibleSibling(n *html.Node, step func(*html.Node) *html.Node) *html.Node {
	for s := step(n); s != nil; s = step(s) {
		if s.Type == html.ElementNode && h.layout.IsVisible(s) {
			return s
		}
	}
	return nil
}

func validLabel(label string) bool {
	return label != "" && !strings.ContainsAny(label, blankChars)
}
