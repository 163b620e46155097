// Package highlight marks the first occurrence of a query inside the text of
// an HTML subtree by wrapping the matching text nodes in labeled spans, and
// removes those spans again.
//
// Matching happens on the whitespace-normalized text of the subtree, the way
// a browser collapses whitespace across inline boundaries. Offsets found
// there are mapped back onto the individual, un-normalized text nodes.
package highlight

import (
	"regexp"
	"unicode"
	"unicode/utf8"
)

var (
	lineBreakRegex = regexp.MustCompile(`[\n\r]+`)
	blankRunRegex  = regexp.MustCompile(`[\t ]+`)
)

// Normalize removes line breaks and collapses every run of tabs and spaces
// into a single space.
func Normalize(text string) string {
	text = lineBreakRegex.ReplaceAllString(text, "")
	return blankRunRegex.ReplaceAllString(text, " ")
}

// rawOffset maps an offset into Normalize(raw) back onto raw.
//
// Without lead the result is the raw position right after the byte that
// produced normalized byte n-1. With lead, bytes dropped by normalization are
// skipped so the result lands on the byte that produces normalized byte n.
func rawOffset(raw string, n int, lead bool) int {
	count := 0
	inRun := false
	for i := 0; i < len(raw); i++ {
		c := raw[i]
		blank := c == ' ' || c == '\t'
		dropped := c == '\n' || c == '\r' || (blank && inRun)
		if count == n && (!lead || !dropped) {
			return i
		}
		if !dropped {
			count++
		}
		switch {
		case blank:
			inRun = true
		case c != '\n' && c != '\r':
			inRun = false
		}
	}
	return len(raw)
}

// fold lowercases s rune by rune. A rune whose lowercase form encodes to a
// different width is kept as is, so byte offsets into the result are valid
// offsets into s.
func fold(s string) string {
	buf := make([]byte, 0, len(s))
	for i := 0; i < len(s); {
		r, size := utf8.DecodeRuneInString(s[i:])
		if r == utf8.RuneError && size <= 1 {
			buf = append(buf, s[i])
			i++
			continue
		}
		if l := unicode.ToLower(r); utf8.RuneLen(l) == size {
			r = l
		}
		buf = utf8.AppendRune(buf, r)
		i += size
	}
	return string(buf)
}
