// Package crawl discovers the internal pages of a site for --all mode.
// Discovery reads sitemap.xml when the site has one and otherwise walks
// links breadth-first from the start page.
package crawl

import (
	"context"
	"encoding/xml"
	"fmt"
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/gaurav-prasanna/pagemark/core"
)

// urlset is the root element of a sitemap.xml.
type urlset struct {
	Locs []string `xml:"url>loc"`
}

type crawler struct {
	fetcher  core.Fetcher
	host     string
	frontier *Frontier
}

// DiscoverAll returns up to maxPages internal URLs of the site of baseURL,
// starting with baseURL itself. A cancelled ctx stops the link walk and
// returns what was found so far together with the context error.
func DiscoverAll(ctx context.Context, baseURL string, fetcher core.Fetcher, maxPages int) ([]string, error) {
	base, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("parsing base URL: %w", err)
	}

	c := &crawler{fetcher: fetcher, host: base.Host, frontier: NewFrontier(maxPages)}
	c.frontier.Push(canonicalURL(baseURL))

	sitemap := base.ResolveReference(&url.URL{Path: "/sitemap.xml"})
	if c.fromSitemap(ctx, sitemap.String()) {
		return c.frontier.All(), nil
	}
	return c.walk(ctx)
}

// fromSitemap queues the crawlable entries of the sitemap at loc. It
// reports false when the sitemap is missing, unreadable or lists nothing
// usable.
func (c *crawler) fromSitemap(ctx context.Context, loc string) bool {
	res, err := c.fetcher.Fetch(ctx, loc)
	if err != nil {
		return false
	}
	var set urlset
	if err := xml.Unmarshal([]byte(res.HTML), &set); err != nil {
		return false
	}

	queued := false
	for _, l := range set.Locs {
		l = strings.TrimSpace(l)
		if crawlable(l, c.host) {
			c.frontier.Push(canonicalURL(l))
			queued = true
		}
	}
	return queued
}

// walk follows links breadth-first until nothing is left to visit or the
// frontier is full. Pages that fail to load are skipped.
func (c *crawler) walk(ctx context.Context) ([]string, error) {
	for c.frontier.HasNext() && !c.frontier.Full() {
		if err := ctx.Err(); err != nil {
			return c.frontier.All(), err
		}
		page := c.frontier.Pop()

		res, err := c.fetcher.Fetch(ctx, page)
		if err != nil {
			continue
		}
		for _, link := range pageLinks(res.HTML, page) {
			if crawlable(link, c.host) {
				c.frontier.Push(canonicalURL(link))
			}
		}
	}
	return c.frontier.All(), nil
}

// pageLinks returns the absolute http(s) targets of the anchors in page,
// resolved against pageURL.
func pageLinks(page, pageURL string) []string {
	base, err := url.Parse(pageURL)
	if err != nil {
		return nil
	}
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(page))
	if err != nil {
		return nil
	}

	var links []string
	doc.Find("a[href]").Each(func(_ int, s *goquery.Selection) {
		href := strings.TrimSpace(s.AttrOr("href", ""))
		if href == "" || strings.HasPrefix(href, "#") {
			return
		}
		ref, err := url.Parse(href)
		if err != nil {
			return
		}
		target := base.ResolveReference(ref)
		if target.Scheme != "http" && target.Scheme != "https" {
			return
		}
		target.Fragment = ""
		links = append(links, target.String())
	})
	return links
}
