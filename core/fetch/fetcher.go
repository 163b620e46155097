// Package fetch implements the Fetcher interface.
// Sources with an http or https scheme are fetched over HTTP; file:// URLs
// and bare paths are read from disk.
package fetch

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"time"

	"github.com/gaurav-prasanna/pagemark/core"
)

const (
	defaultTimeout   = 30 * time.Second
	defaultUserAgent = "PageMark/1.0 (https://github.com/gaurav-prasanna/pagemark)"
)

// SourceFetcher loads pages from the web or the local filesystem.
type SourceFetcher struct {
	client *http.Client
}

// New creates a SourceFetcher with a sensible HTTP timeout.
func New() *SourceFetcher {
	return &SourceFetcher{
		client: &http.Client{Timeout: defaultTimeout},
	}
}

// IsRemote reports whether source is fetched over HTTP.
func IsRemote(source string) bool {
	parsed, err := url.Parse(source)
	return err == nil && (parsed.Scheme == "http" || parsed.Scheme == "https") && parsed.Host != ""
}

// Fetch retrieves the HTML content of the given source.
func (f *SourceFetcher) Fetch(ctx context.Context, source string) (*core.FetchResult, error) {
	if IsRemote(source) {
		return f.fetchHTTP(ctx, source)
	}
	return f.readFile(source)
}

func (f *SourceFetcher) fetchHTTP(ctx context.Context, rawURL string) (*core.FetchResult, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("User-Agent", defaultUserAgent)
	req.Header.Set("Accept", "text/html,application/xhtml+xml")

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching %s: %w", rawURL, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("unexpected status %d for %s", resp.StatusCode, rawURL)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading response body: %w", err)
	}

	return &core.FetchResult{
		Source:     rawURL,
		StatusCode: resp.StatusCode,
		HTML:       string(body),
	}, nil
}

func (f *SourceFetcher) readFile(source string) (*core.FetchResult, error) {
	path := source
	if parsed, err := url.Parse(source); err == nil && parsed.Scheme == "file" {
		path = parsed.Path
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return &core.FetchResult{
		Source: source,
		HTML:   string(data),
	}, nil
}
