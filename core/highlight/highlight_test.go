package highlight

import (
	"strings"
	"testing"

	"github.com/gaurav-prasanna/pagemark/core/layout"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/net/html"
)

func TestSplitLeaf(t *testing.T) {
	root := parseInto(t, "<p>before<b>hello</b>after</p>")
	leaf := ExtractLeaves(root)[1]

	assert.Equal(t, []*html.Node{leaf}, SplitLeaf(leaf, 0))
	assert.Equal(t, []*html.Node{leaf}, SplitLeaf(leaf, 5))
	assert.Equal(t, []*html.Node{leaf}, SplitLeaf(leaf, 9))

	parts := SplitLeaf(leaf, 2)
	require.Len(t, parts, 2)
	assert.Equal(t, "he", parts[0].Data)
	assert.Equal(t, "llo", parts[1].Data)
	assert.Equal(t, []string{"before", "he", "llo", "after"}, rawValues(ExtractLeaves(root)))
	assert.Equal(t, "<p>before<b>hello</b>after</p>", innerHTML(t, root))
}

func TestMark_SingleLeaf(t *testing.T) {
	root := parseInto(t, "<p>hello world</p>")

	found, err := Mark(root, "lo wo", "m", false)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, `<p>hel<span class="m">lo wo</span>rld</p>`, innerHTML(t, root))
}

func TestMark_RawWhitespaceInsideLeaf(t *testing.T) {
	root := parseInto(t, "<p>foo\n   bar baz</p>")

	found, err := Mark(root, "BAR", "m", false)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "<p>foo\n   <span class=\"m\">bar</span> baz</p>", innerHTML(t, root))
}

func TestMark_EndsOnCollapsedWhitespace(t *testing.T) {
	root := parseInto(t, "<p>foo\n   bar baz</p>")

	found, err := Mark(root, "foo ", "m", true)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "<p><span class=\"m\">foo\n </span>  bar baz</p>", innerHTML(t, root))
}

func TestMark_CollapsedLeadingSpace(t *testing.T) {
	root := parseInto(t, "<p>foo <b> bar</b></p>")

	found, err := Mark(root, "bar", "m", true)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, `<p>foo <b> <span class="m">bar</span></b></p>`, innerHTML(t, root))
}

func TestMark_AcrossElements(t *testing.T) {
	h := New(inlineTags, nil)
	demo := parseInto(t, demoHTML)

	found, err := h.Mark(demo, "re you ?", "red", false)
	require.NoError(t, err)
	require.True(t, found)

	var marked []string
	for _, b := range FindBoundaries(demo, "red") {
		marked = append(marked, b.FirstChild.Data)
	}
	assert.Equal(t, []string{"re", "you", " ", "?"}, marked)

	found, err = h.Mark(demo, "hey ho", "blue", false)
	require.NoError(t, err)
	require.True(t, found)
	marked = marked[:0]
	for _, b := range FindBoundaries(demo, "blue") {
		marked = append(marked, b.FirstChild.Data)
	}
	assert.Equal(t, []string{"Hey", "ho"}, marked)
}

func TestMark_StyleLayout(t *testing.T) {
	demo := parseInto(t, demoHTML)

	found, err := New(layout.New(demo), nil).Mark(demo, "re you ?", "red", false)
	require.NoError(t, err)
	require.True(t, found)
	assert.Len(t, FindBoundaries(demo, "red"), 4)
}

func TestMark_HeadlessSkipsBlankLeaves(t *testing.T) {
	demo := parseInto(t, demoHTML)

	found, err := Mark(demo, "re you ?", "red", false)
	require.NoError(t, err)
	require.True(t, found)
	assert.Len(t, FindBoundaries(demo, "red"), 3)
}

func TestMark_NoMatchLeavesTreeUntouched(t *testing.T) {
	demo := parseInto(t, demoHTML)
	before := innerHTML(t, demo)

	for _, q := range []string{"nope", "", "\n"} {
		found, err := Mark(demo, q, "red", false)
		require.NoError(t, err)
		assert.False(t, found)
		assert.Equal(t, before, innerHTML(t, demo))
		assert.Len(t, ExtractLeaves(demo), 15)
	}
}

func TestMark_BlankQueryHeadless(t *testing.T) {
	demo := parseInto(t, demoHTML)
	before := innerHTML(t, demo)

	found, err := Mark(demo, "\n\t ", "red", false)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Empty(t, FindBoundaries(demo, "red"))
	assert.Equal(t, before, innerHTML(t, demo))
}

func TestMark_InvalidArguments(t *testing.T) {
	demo := parseInto(t, demoHTML)

	_, err := Mark(nil, "hey", "red", false)
	assert.ErrorIs(t, err, ErrNilRoot)
	_, err = Mark(demo, "hey", "", false)
	assert.ErrorIs(t, err, ErrInvalidLabel)
	_, err = Mark(demo, "hey", "two words", false)
	assert.ErrorIs(t, err, ErrInvalidLabel)
	_, err = Unmark(demo, "")
	assert.ErrorIs(t, err, ErrInvalidLabel)
}

func TestMarkUnmark_RoundTrip(t *testing.T) {
	h := New(inlineTags, nil)
	demo := parseInto(t, demoHTML)
	before := ExtractLeaves(demo)
	beforeText := strings.Join(rawValues(before), "")

	_, err := h.Mark(demo, "re you ?", "red", false)
	require.NoError(t, err)
	_, err = h.Mark(demo, "hey ho", "blue", false)
	require.NoError(t, err)
	assert.Equal(t, beforeText, strings.Join(rawValues(ExtractLeaves(demo)), ""))

	n, err := h.Unmark(demo, "red")
	require.NoError(t, err)
	assert.Equal(t, 4, n)
	n, err = h.Unmark(demo, "blue")
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	after := ExtractLeaves(demo)
	assert.Len(t, after, len(before))
	assert.Equal(t, beforeText, strings.Join(rawValues(after), ""))
	assert.Equal(t, innerHTML(t, parseInto(t, demoHTML)), innerHTML(t, demo))
}

func TestUnmark_SkipsMalformedBoundary(t *testing.T) {
	root := parseInto(t, `<p>a<span class="x"><b>b</b></span>c<span class="x">d</span>e</p>`)

	n, err := Unmark(root, "x")
	assert.Equal(t, 1, n)
	var boundaryErr *BoundaryError
	require.ErrorAs(t, err, &boundaryErr)
	assert.Equal(t, "x", boundaryErr.Label)
	assert.Contains(t, boundaryErr.Error(), "<b>")
	assert.Equal(t, `<p>a<span class="x"><b>b</b></span>cde</p>`, innerHTML(t, root))
}

func TestUnwrap_DetachedBoundary(t *testing.T) {
	span := &html.Node{Type: html.ElementNode, Data: "span", Attr: []html.Attribute{{Key: "class", Val: "x"}}}

	var boundaryErr *BoundaryError
	require.ErrorAs(t, Unwrap(span), &boundaryErr)
	assert.Equal(t, "x", boundaryErr.Label)
}

func TestFindBoundaries(t *testing.T) {
	root := parseInto(t, `<div class="x"><span class="a x">1</span><i class="xx">2</i><b class="x">3</b></div>`)
	outer := root.FirstChild

	found := FindBoundaries(outer, "x")
	require.Len(t, found, 2)
	assert.Equal(t, "span", found[0].Data)
	assert.Equal(t, "b", found[1].Data)
	assert.Nil(t, FindBoundaries(nil, "x"))
}
