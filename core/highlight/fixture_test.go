package highlight

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

const demoHTML = "<table>\n" +
	"  <tr>\n" +
	"    <td> Hey</td>\n" +
	"    <td>how</td>\n" +
	"    <td>are</td>\n" +
	"    <td>\n" +
	"      <span>you</span> <strong>?</strong>\n" +
	"    </td>\n" +
	"  </tr>\n" +
	"</table>"

// parseInto parses src as the content of a <div> and returns the div.
func parseInto(t *testing.T, src string) *html.Node {
	t.Helper()
	div := &html.Node{Type: html.ElementNode, Data: "div", DataAtom: atom.Div}
	nodes, err := html.ParseFragment(strings.NewReader(src), div)
	require.NoError(t, err)
	for _, n := range nodes {
		div.AppendChild(n)
	}
	return div
}

func innerHTML(t *testing.T, n *html.Node) string {
	t.Helper()
	var b strings.Builder
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		require.NoError(t, html.Render(&b, c))
	}
	return b.String()
}

func leavesOf(raws ...string) []*html.Node {
	leaves := make([]*html.Node, len(raws))
	for i, raw := range raws {
		leaves[i] = &html.Node{Type: html.TextNode, Data: raw}
	}
	return leaves
}

func rawValues(leaves []*html.Node) []string {
	out := make([]string, len(leaves))
	for i, l := range leaves {
		out[i] = l.Data
	}
	return out
}

// tagLayout treats a fixed set of tags as inline and everything as visible.
type tagLayout map[string]bool

func (l tagLayout) IsInline(n *html.Node) bool  { return l[n.Data] }
func (l tagLayout) IsVisible(n *html.Node) bool { return true }

var inlineTags = tagLayout{"span": true, "strong": true, "b": true, "em": true, "a": true}
