package highlight

import "golang.org/x/net/html"

// SplitLeaf splits a text leaf at a raw byte offset into two sibling leaves
// that take its place in the tree. Offsets at or beyond either end of the
// leaf do not split; the leaf is returned alone.
func SplitLeaf(leaf *html.Node, offset int) []*html.Node {
	if offset <= 0 || offset >= len(leaf.Data) {
		return []*html.Node{leaf}
	}
	left := &html.Node{Type: html.TextNode, Data: leaf.Data[:offset]}
	right := &html.Node{Type: html.TextNode, Data: leaf.Data[offset:]}
	if leaf.Parent != nil {
		replaceNode(leaf, right)
		right.Parent.InsertBefore(left, right)
	}
	return []*html.Node{left, right}
}

// replaceNode puts repl at old's position and detaches old.
func replaceNode(old, repl *html.Node) {
	parent := old.Parent
	parent.InsertBefore(repl, old)
	parent.RemoveChild(old)
}
