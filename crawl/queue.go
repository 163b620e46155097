// Package crawl — BFS frontier with deduplication and a page limit.
package crawl

// Frontier is a BFS queue of URLs that admits each URL once and stops
// admitting new ones after limit URLs.
type Frontier struct {
	items []string
	seen  map[string]bool
	next  int // current read position
	limit int
}

// NewFrontier creates an empty Frontier admitting at most limit URLs.
// A non-positive limit means no limit.
func NewFrontier(limit int) *Frontier {
	return &Frontier{
		seen:  make(map[string]bool),
		limit: limit,
	}
}

// Push enqueues a URL unless it was seen before or the limit is reached.
// It reports whether the URL was admitted.
func (f *Frontier) Push(url string) bool {
	if f.seen[url] || f.Full() {
		return false
	}
	f.seen[url] = true
	f.items = append(f.items, url)
	return true
}

// Full reports whether the page limit has been reached.
func (f *Frontier) Full() bool {
	return f.limit > 0 && len(f.items) >= f.limit
}

// HasNext returns true if there are unprocessed URLs.
func (f *Frontier) HasNext() bool {
	return f.next < len(f.items)
}

// Pop returns the next unprocessed URL and advances the read position.
func (f *Frontier) Pop() string {
	url := f.items[f.next]
	f.next++
	return url
}

// All returns every admitted URL in BFS order.
func (f *Frontier) All() []string {
	return f.items
}
