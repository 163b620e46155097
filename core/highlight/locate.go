package highlight

import (
	"strings"

	"golang.org/x/net/html"
)

// Match is the first occurrence of a query mapped onto text leaves.
type Match struct {
	// Leaves spanned by the occurrence, in document order.
	Leaves []*html.Node
	// Start is the raw byte offset in the first leaf where the occurrence
	// begins. 0 means the leaf is covered from its beginning.
	Start int
	// End is the raw byte offset in the last leaf where the occurrence
	// ends. 0 means the leaf is covered up to its end.
	End int
}

// LocateMatch finds the first occurrence of query in fullText and maps it
// onto leaves. fullText must be the normalized text of leaves, as returned
// by FullText. The query is normalized the same way before searching.
//
// Leaves that contribute nothing to fullText are never part of a match.
func LocateMatch(fullText, query string, caseSensitive bool, leaves []*html.Node) (Match, bool) {
	at, end, ok := Occurrence(fullText, query, caseSensitive)
	if !ok {
		return Match{}, false
	}

	runs, _ := Runs(leaves)
	var m Match
	var last Run
	for _, r := range runs {
		if r.From >= end {
			break
		}
		if r.Width == 0 || r.From+r.Width <= at {
			continue
		}
		if len(m.Leaves) == 0 {
			m.Start = rawOffset(r.Leaf.Data, max(at-r.From, 0)+r.Skew, true)
		}
		m.Leaves = append(m.Leaves, r.Leaf)
		last = r
	}
	if len(m.Leaves) == 0 {
		return Match{}, false
	}

	if m.End = rawOffset(last.Leaf.Data, end-last.From+last.Skew, false); m.End >= len(last.Leaf.Data) {
		m.End = 0
	}
	return m, true
}

// Occurrence returns the byte range of the first occurrence of the
// normalized query in fullText. A query that normalizes to "" (only line
// breaks, or nothing) never occurs. Any other blank query normalizes to a
// single space and matches the first space in fullText.
func Occurrence(fullText, query string, caseSensitive bool) (start, end int, ok bool) {
	query = Normalize(query)
	if query == "" {
		return 0, 0, false
	}
	if caseSensitive {
		start = strings.Index(fullText, query)
	} else {
		start = strings.Index(fold(fullText), fold(query))
	}
	if start < 0 {
		return 0, 0, false
	}
	return start, start + len(query), true
}
