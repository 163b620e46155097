package highlight

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/JohannesKaufmann/dom"
	"golang.org/x/net/html"
)

// FindBoundaries returns the elements below root carrying label as a class,
// in document order. root itself is not considered.
func FindBoundaries(root *html.Node, label string) []*html.Node {
	if root == nil {
		return nil
	}
	return dom.FindAllNodes(root, func(n *html.Node) bool {
		return n != root && n.Type == html.ElementNode && slices.Contains(dom.GetClasses(n), label)
	})
}

// Unmark removes every boundary labeled label below root, merging its text
// with the adjacent text leaves. It returns the number of boundaries
// removed. Boundaries that cannot be unwrapped are left in place and
// reported as joined *BoundaryError values; the others are still removed.
func (h *Highlighter) Unmark(root *html.Node, label string) (int, error) {
	if root == nil {
		return 0, ErrNilRoot
	}
	if !validLabel(label) {
		return 0, ErrInvalidLabel
	}

	var errs []error
	removed := 0
	for _, b := range FindBoundaries(root, label) {
		if err := unwrap(b, label); err != nil {
			h.log.Debug("boundary skipped", "label", label, "err", err)
			errs = append(errs, err)
			continue
		}
		removed++
	}
	return removed, errors.Join(errs...)
}

// Unwrap replaces a boundary element and its adjacent text leaves with one
// merged text leaf. It fails without touching the tree when the boundary has
// no parent or contains elements.
func Unwrap(boundary *html.Node) error {
	return unwrap(boundary, dom.GetAttributeOr(boundary, "class", ""))
}

func unwrap(b *html.Node, label string) error {
	if b.Parent == nil {
		return &BoundaryError{Label: label, Reason: "detached from the tree"}
	}
	for c := b.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode {
			return &BoundaryError{Label: label, Reason: fmt.Sprintf("contains element <%s>", c.Data)}
		}
	}

	var text strings.Builder
	var absorbed []*html.Node
	if prev := b.PrevSibling; prev != nil && prev.Type == html.TextNode {
		text.WriteString(prev.Data)
		absorbed = append(absorbed, prev)
	}
	for c := b.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.TextNode {
			text.WriteString(c.Data)
		}
	}
	absorbed = append(absorbed, b)
	if next := b.NextSibling; next != nil && next.Type == html.TextNode {
		text.WriteString(next.Data)
		absorbed = append(absorbed, next)
	}

	parent := b.Parent
	if text.Len() > 0 {
		parent.InsertBefore(&html.Node{Type: html.TextNode, Data: text.String()}, absorbed[0])
	}
	for _, n := range absorbed {
		parent.RemoveChild(n)
	}
	return nil
}
