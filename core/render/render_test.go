package render

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/gaurav-prasanna/pagemark/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func samplePage() *core.MarkedPage {
	return &core.MarkedPage{
		Metadata:   core.PageMetadata{Source: "https://example.com/docs", Title: "Docs", Language: "en"},
		Query:      "quick fox",
		Label:      "highlight",
		Found:      true,
		Matched:    "quick fox",
		Excerpt:    "the quick fox jumps",
		Boundaries: 1,
		HTML:       `<p>the <span class="highlight">quick fox</span> jumps</p>`,
		Markdown:   "# Intro\n\nthe **quick fox** jumps over [a link](https://example.com/a)\n\n- item `code`\n",
	}
}

func TestJSONRenderer(t *testing.T) {
	data, err := NewJSONRenderer().Render(samplePage())
	require.NoError(t, err)

	var report markReport
	require.NoError(t, json.Unmarshal(data, &report))
	assert.Equal(t, "quick fox", report.Mark.Matched)
	assert.True(t, report.Mark.Found)
	assert.Equal(t, 1, report.Mark.Boundaries)
	assert.Equal(t, []core.Heading{{Level: 1, Text: "Intro"}}, report.Structure.Headings)
	assert.Equal(t, []core.Link{{Text: "a link", Href: "https://example.com/a"}}, report.Structure.Links)
	assert.Contains(t, report.Content.Text, "the quick fox jumps over a link")
	assert.NotContains(t, report.Content.Text, "**")
	assert.Equal(t, ".json", NewJSONRenderer().Extension())
}

func TestHTMLAndMarkdownRenderers(t *testing.T) {
	page := samplePage()

	out, err := NewHTMLRenderer().Render(page)
	require.NoError(t, err)
	assert.Equal(t, page.HTML, string(out))

	out, err = NewMarkdownRenderer().Render(page)
	require.NoError(t, err)
	want := "---\n" +
		"source: https://example.com/docs\n" +
		"title: Docs\n" +
		"label: highlight\n" +
		"query: quick fox\n" +
		"matched: quick fox\n" +
		"---\n\n" + page.Markdown
	assert.Equal(t, want, string(out))

	_, err = NewHTMLRenderer().Render(&core.MarkedPage{})
	assert.Error(t, err)
}

func TestPDFRenderer(t *testing.T) {
	for _, found := range []bool{true, false} {
		page := samplePage()
		page.Found = found

		data, err := NewPDFRenderer().Render(page)
		require.NoError(t, err)
		assert.True(t, bytes.HasPrefix(data, []byte("%PDF-")))
	}
}

func TestCleanInlineMarkdown(t *testing.T) {
	assert.Equal(t, "the quick fox and a link", cleanInlineMarkdown("the **quick fox** and [a link](https://x.y)"))
	assert.Equal(t, "don't stop", cleanInlineMarkdown("don't stop"))
}
