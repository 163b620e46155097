package highlight

import (
	"strings"

	"golang.org/x/net/html"
)

// ExtractLeaves returns the text nodes below root in document order.
// Elements are descended into but never returned; other node kinds are
// ignored. The result is only valid until the tree is mutated.
func ExtractLeaves(root *html.Node) []*html.Node {
	var leaves []*html.Node
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			switch c.Type {
			case html.TextNode:
				leaves = append(leaves, c)
			case html.ElementNode:
				walk(c)
			}
		}
	}
	if root != nil {
		walk(root)
	}
	return leaves
}

// FullText returns the normalized concatenation of the raw leaf values.
func FullText(leaves []*html.Node) string {
	var b strings.Builder
	for _, leaf := range leaves {
		b.WriteString(leaf.Data)
	}
	return Normalize(b.String())
}

// Run is the part of the normalized full text contributed by one leaf.
type Run struct {
	Leaf *html.Node
	// From is the offset of the run in the full text.
	From int
	// Width is the number of bytes the leaf adds to the full text. It is 0
	// for a leaf that normalizes to nothing or whose only space collapsed
	// into the space ending the previous run.
	Width int
	// Skew is 1 when the leaf's leading space collapsed into the previous
	// run, so the run starts at byte 1 of the leaf's normalized text.
	Skew int
}

// Runs folds the leaves left to right into their runs and returns them along
// with the full text they add up to, which always equals FullText(leaves).
//
// The only state carried between leaves is whether the last non-empty
// contribution ended with a space.
func Runs(leaves []*html.Node) ([]Run, string) {
	runs := make([]Run, 0, len(leaves))
	var b strings.Builder
	endedWithSpace := false
	for _, leaf := range leaves {
		norm := Normalize(leaf.Data)
		skew := 0
		if endedWithSpace && strings.HasPrefix(norm, " ") {
			skew = 1
		}
		runs = append(runs, Run{
			Leaf:  leaf,
			From:  b.Len(),
			Width: len(norm) - skew,
			Skew:  skew,
		})
		b.WriteString(norm[skew:])
		if norm != "" {
			endedWithSpace = strings.HasSuffix(norm, " ")
		}
	}
	return runs, b.String()
}
