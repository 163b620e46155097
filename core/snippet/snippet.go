// Package snippet cuts a short excerpt of words around a match.
// Words are whitespace-separated tokens, as in the normalized page text.
package snippet

import "strings"

// Snippeter builds excerpts with a fixed number of context words.
type Snippeter struct {
	Radius int // words kept on each side of the match
}

// New creates a Snippeter. Defaults to 12 if radius < 0.
func New(radius int) *Snippeter {
	if radius < 0 {
		radius = 12
	}
	return &Snippeter{Radius: radius}
}

// Around returns the first case-insensitive occurrence of match in text
// with up to Radius words on each side. It returns "" if match does not
// occur in text.
func (s *Snippeter) Around(text, match string) string {
	match = strings.Join(strings.Fields(match), " ")
	text = strings.Join(strings.Fields(text), " ")
	if match == "" {
		return ""
	}
	lowerText, lowerMatch := strings.ToLower(text), strings.ToLower(match)
	var at int
	if len(lowerText) == len(text) && len(lowerMatch) == len(match) {
		at = strings.Index(lowerText, lowerMatch)
	} else {
		at = strings.Index(text, match)
	}
	if at < 0 {
		return ""
	}
	return s.At(text, at, at+len(match))
}

// At returns text[start:end] with up to Radius words of text on each side,
// with "…" where words were cut. Blanks at the edges of the range are
// ignored. An empty or out-of-range span yields "".
func (s *Snippeter) At(text string, start, end int) string {
	if start < 0 || end > len(text) || start >= end {
		return ""
	}
	for start < end && isBlank(text[start]) {
		start++
	}
	for end > start && isBlank(text[end-1]) {
		end--
	}
	if start == end {
		return ""
	}

	match := strings.Join(strings.Fields(text[start:end]), " ")
	before := strings.Fields(text[:start])
	after := strings.Fields(text[end:])
	// A match cut mid-word keeps the rest of that word attached.
	var lead, trail string
	if start > 0 && !isBlank(text[start-1]) && len(before) > 0 {
		lead = before[len(before)-1]
		before = before[:len(before)-1]
	}
	if end < len(text) && !isBlank(text[end]) && len(after) > 0 {
		trail = after[0]
		after = after[1:]
	}

	var b strings.Builder
	if len(before) > s.Radius {
		b.WriteString("… ")
		before = before[len(before)-s.Radius:]
	}
	for _, w := range before {
		b.WriteString(w)
		b.WriteByte(' ')
	}
	b.WriteString(lead + match + trail)
	cut := len(after) > s.Radius
	if cut {
		after = after[:s.Radius]
	}
	for _, w := range after {
		b.WriteByte(' ')
		b.WriteString(w)
	}
	if cut {
		b.WriteString(" …")
	}
	return b.String()
}

func isBlank(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r' || c == '\f' || c == '\v'
}
