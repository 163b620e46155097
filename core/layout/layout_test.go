package layout

import (
	"strings"
	"testing"

	"github.com/JohannesKaufmann/dom"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/net/html"
)

const page = `<!DOCTYPE html>
<html>
<head>
<style>
  .chip { display: inline-block; }
  .stack span { display: block; }
  #special { display: inline; }
  .ghost { visibility: hidden; }
  .shown { visibility: visible; }
  p.forced { display: inline !important; }
</style>
</head>
<body>
  <p id="para">text <span id="plain">a</span> <em id="em">b</em></p>
  <div id="div">x</div>
  <div class="chip" id="chip">c</div>
  <div class="stack"><span id="stacked">s</span><span id="special" class="x">t</span></div>
  <span id="styled" style="display: block">u</span>
  <p class="forced" id="forced" style="display: block">v</p>
  <div id="hiddenattr" hidden><span id="inside">w</span></div>
  <div style="display:none"><b id="nested">y</b></div>
  <div class="ghost"><i id="ghosted">z</i><i class="shown" id="revealed">q</i></div>
  <script id="script">var a;</script>
</body>
</html>`

func parsePage(t *testing.T) (*html.Node, func(id string) *html.Node) {
	t.Helper()
	doc, err := html.Parse(strings.NewReader(page))
	require.NoError(t, err)
	byID := func(id string) *html.Node {
		n := dom.FindFirstNode(doc, func(n *html.Node) bool {
			v, ok := dom.GetAttribute(n, "id")
			return ok && v == id
		})
		require.NotNil(t, n, "no element #%s", id)
		return n
	}
	return doc, byID
}

func TestStyleLayout_IsInline(t *testing.T) {
	doc, byID := parsePage(t)
	l := New(doc)

	tests := []struct {
		id   string
		want bool
	}{
		{"plain", true},
		{"em", true},
		{"para", false},
		{"div", false},
		{"chip", true},
		{"stacked", false},
		{"special", true},
		{"styled", false},
		{"forced", true},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, l.IsInline(byID(tt.id)), "#%s", tt.id)
	}
}

func TestStyleLayout_IsVisible(t *testing.T) {
	doc, byID := parsePage(t)
	l := New(doc)

	tests := []struct {
		id   string
		want bool
	}{
		{"plain", true},
		{"div", true},
		{"hiddenattr", false},
		{"inside", false},
		{"nested", false},
		{"ghosted", false},
		{"revealed", true},
		{"script", false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, l.IsVisible(byID(tt.id)), "#%s", tt.id)
	}
}

func TestStyleLayout_WithoutSheets(t *testing.T) {
	_, byID := parsePage(t)
	l := New(nil)

	assert.True(t, l.IsInline(byID("plain")))
	assert.False(t, l.IsInline(byID("chip")))
	assert.False(t, l.IsInline(byID("styled")))
	assert.Equal(t, "block", l.Display(byID("div")))
}

func TestStyleLayout_InlineStyleWithoutSemicolon(t *testing.T) {
	doc, err := html.Parse(strings.NewReader(`<div id="shown" style="display: inline">a</div>` +
		`<div id="gone" style="display:none"><em id="child">b</em></div>` +
		`<em id="colored" style="color: red">c</em>` +
		`<span id="two" style="color: red; display: block">d</span>`))
	require.NoError(t, err)
	byID := func(id string) *html.Node {
		return dom.FindFirstNode(doc, func(n *html.Node) bool {
			return dom.GetAttributeOr(n, "id", "") == id
		})
	}
	l := New(doc)

	assert.True(t, l.IsInline(byID("shown")))
	assert.Equal(t, "none", l.Display(byID("gone")))
	assert.False(t, l.IsVisible(byID("child")))
	assert.True(t, l.IsInline(byID("colored")))
	assert.Equal(t, "block", l.Display(byID("two")))
}
