// Package render — PDF renderer.
// Produces a PDF report using gofpdf: a search summary with the matched text
// and its excerpt, followed by the page content with the matching lines
// highlighted. Handles headings, paragraphs, code blocks, and lists.
package render

import (
	"bytes"
	"fmt"
	"regexp"
	"strings"

	"github.com/gaurav-prasanna/pagemark/core"
	"github.com/jung-kurt/gofpdf"
)

// highlightRGB is the fill color of highlighted lines.
var highlightRGB = [3]int{255, 241, 118}

// PDFRenderer renders a marked page as a PDF report.
type PDFRenderer struct{}

// NewPDFRenderer creates a PDFRenderer.
func NewPDFRenderer() *PDFRenderer {
	return &PDFRenderer{}
}

// Render converts a marked page into PDF bytes.
func (r *PDFRenderer) Render(page *core.MarkedPage) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetAutoPageBreak(true, 15)
	pdf.AddPage()
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	if title := page.Metadata.Title; title != "" {
		pdf.SetFont("Helvetica", "B", 18)
		pdf.MultiCell(0, 8, tr(title), "", "L", false)
		pdf.Ln(4)
	}

	pdf.SetFont("Helvetica", "I", 9)
	pdf.SetTextColor(100, 100, 100)
	pdf.MultiCell(0, 5, tr("Source: "+page.Metadata.Source), "", "L", false)
	pdf.SetTextColor(0, 0, 0)
	pdf.Ln(4)

	renderSummary(pdf, tr, page)

	inCodeBlock := false
	for _, line := range strings.Split(page.Markdown, "\n") {
		trimmed := strings.TrimSpace(line)

		// Toggle code block state.
		if strings.HasPrefix(trimmed, "```") {
			inCodeBlock = !inCodeBlock
			pdf.Ln(2)
			continue
		}

		if inCodeBlock {
			pdf.SetFont("Courier", "", 9)
			pdf.SetFillColor(245, 245, 245)
			pdf.MultiCell(0, 4.5, tr(line), "", "L", true)
			continue
		}

		if trimmed == "" {
			pdf.Ln(3)
			continue
		}

		marked := page.Found && strings.Contains(line, "**")

		if strings.HasPrefix(line, "#") {
			level := len(line) - len(strings.TrimLeft(line, "#"))
			renderHeading(pdf, tr(strings.TrimSpace(strings.TrimLeft(line, "# "))), level, marked)
			continue
		}

		text := line
		if strings.HasPrefix(trimmed, "- ") || strings.HasPrefix(trimmed, "* ") {
			text = "• " + strings.TrimSpace(trimmed[2:])
		} else if numberedItemRegex.MatchString(trimmed) {
			text = trimmed
		}
		pdf.SetFont("Helvetica", "", 10)
		writeLine(pdf, 5, tr(cleanInlineMarkdown(text)), marked)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("writing PDF: %w", err)
	}
	return buf.Bytes(), nil
}

// Extension returns the file extension for PDF output.
func (r *PDFRenderer) Extension() string {
	return ".pdf"
}

var numberedItemRegex = regexp.MustCompile(`^\d+\.\s`)

// renderSummary writes the search block at the top of the report.
func renderSummary(pdf *gofpdf.Fpdf, tr func(string) string, page *core.MarkedPage) {
	pdf.SetFont("Helvetica", "B", 11)
	pdf.MultiCell(0, 6, tr(fmt.Sprintf("Query: %q", page.Query)), "", "L", false)

	pdf.SetFont("Helvetica", "", 10)
	if !page.Found {
		pdf.MultiCell(0, 5, "No occurrence found.", "", "L", false)
		pdf.Ln(6)
		return
	}
	writeLine(pdf, 5, tr("Matched: "+page.Matched), true)
	if page.Excerpt != "" {
		pdf.SetFont("Helvetica", "I", 10)
		pdf.MultiCell(0, 5, tr(page.Excerpt), "", "L", false)
	}
	pdf.Ln(6)
}

// writeLine writes a paragraph, on a highlighted background when marked.
func writeLine(pdf *gofpdf.Fpdf, height float64, text string, marked bool) {
	if marked {
		pdf.SetFillColor(highlightRGB[0], highlightRGB[1], highlightRGB[2])
	}
	pdf.MultiCell(0, height, text, "", "L", marked)
}

// renderHeading sets the font size based on heading level and writes text.
func renderHeading(pdf *gofpdf.Fpdf, text string, level int, marked bool) {
	sizes := map[int]float64{1: 18, 2: 15, 3: 13, 4: 12, 5: 11, 6: 10}
	size, ok := sizes[level]
	if !ok {
		size = 10
	}
	pdf.Ln(4)
	pdf.SetFont("Helvetica", "B", size)
	writeLine(pdf, size*0.6, cleanInlineMarkdown(text), marked)
	pdf.Ln(2)
}

var (
	italicRegex     = regexp.MustCompile(`(?:^|\s)\*([^*]+)\*(?:\s|$)`)
	inlineLinkRegex = regexp.MustCompile(`\[([^\]]*)\]\([^)]+\)`)
)

// cleanInlineMarkdown strips inline Markdown formatting for PDF rendering.
func cleanInlineMarkdown(text string) string {
	text = strings.ReplaceAll(text, "**", "")
	text = strings.ReplaceAll(text, "__", "")
	// Italic markers only at word edges, so "don't" survives.
	text = italicRegex.ReplaceAllString(text, " $1 ")
	text = inlineCodeRegex.ReplaceAllString(text, "$1")
	text = inlineLinkRegex.ReplaceAllString(text, "$1")
	return strings.TrimSpace(text)
}
