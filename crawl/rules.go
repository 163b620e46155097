package crawl

import (
	"net/url"
	"path"
	"slices"
	"strings"
)

// skipExts lists path extensions of resources that carry no markable text.
var skipExts = []string{
	".png", ".jpg", ".jpeg", ".gif", ".svg", ".webp", ".ico", ".bmp",
	".css", ".js", ".mjs", ".json", ".xml",
	".woff", ".woff2", ".ttf", ".eot",
	".mp4", ".webm", ".mp3", ".wav",
	".zip", ".tar", ".gz",
	".pdf", ".doc", ".docx", ".xls", ".xlsx",
}

// crawlable reports whether rawURL is on host and looks like a page.
func crawlable(rawURL, host string) bool {
	u, err := url.Parse(rawURL)
	if err != nil || u.Host != host {
		return false
	}
	return !slices.Contains(skipExts, strings.ToLower(path.Ext(u.Path)))
}

// canonicalURL drops the fragment and a trailing slash so that equivalent
// URLs dedupe. The root path keeps its slash.
func canonicalURL(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil {
		return rawURL
	}
	u.Fragment = ""
	if u.Path != "/" {
		u.Path = strings.TrimSuffix(u.Path, "/")
	}
	return u.String()
}
