package extract

import (
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/net/html"
)

const page = `<html><head><style>p{}</style></head><body>
<nav>menu</nav>
<article id="story"><p>story text</p><script>var x;</script></article>
<main><p>main text</p></main>
</body></html>`

func parse(t *testing.T) *html.Node {
	t.Helper()
	doc, err := html.Parse(strings.NewReader(page))
	require.NoError(t, err)
	return doc
}

func TestExtract_PrefersMain(t *testing.T) {
	e, err := New("", false)
	require.NoError(t, err)

	root, err := e.Extract(parse(t))
	require.NoError(t, err)
	assert.Equal(t, "main", root.Data)
}

func TestExtract_Scope(t *testing.T) {
	e, err := New("#story", true)
	require.NoError(t, err)

	doc := parse(t)
	root, err := e.Extract(doc)
	require.NoError(t, err)
	assert.Equal(t, "article", root.Data)
	assert.Equal(t, "story text", goquery.NewDocumentFromNode(root).Text())
	assert.NotContains(t, goquery.NewDocumentFromNode(doc).Text(), "menu")
}

func TestExtract_ScopeErrors(t *testing.T) {
	_, err := New("p[", false)
	assert.Error(t, err)

	e, err := New(".absent", false)
	require.NoError(t, err)
	_, err = e.Extract(parse(t))
	assert.ErrorContains(t, err, "matched nothing")
}
