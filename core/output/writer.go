// Package output handles file naming and writing for PageMark outputs.
// Single sources get a flat name derived from the source plus a suffix
// (e.g., example_com_docs.highlight.html). In --all mode, filenames mirror
// the URL path structure.
package output

import (
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"
)

// Writer writes rendered output to disk.
type Writer struct {
	OutputDir string
}

// New creates a Writer targeting the given output directory.
// If outputDir is empty, it defaults to the current working directory.
func New(outputDir string) (*Writer, error) {
	if outputDir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("getting working directory: %w", err)
		}
		outputDir = wd
	}

	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return nil, fmt.Errorf("creating output directory: %w", err)
	}

	return &Writer{OutputDir: outputDir}, nil
}

// Write stores output for a single source as <name>.<suffix><ext>.
// The suffix keeps the result from overwriting a local input file.
func (w *Writer) Write(source, suffix string, data []byte, ext string) (string, error) {
	name := filenameFromSource(source)
	if suffix != "" {
		name += "." + sanitize(suffix)
	}
	path := filepath.Join(w.OutputDir, name+ext)

	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", fmt.Errorf("writing file %s: %w", path, err)
	}
	return path, nil
}

// WriteMirrored writes output for --all mode, mirroring the URL path structure.
// Example: https://site.com/docs/intro → ./docs/intro.html
func (w *Writer) WriteMirrored(rawURL string, data []byte, ext string) (string, error) {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return "", fmt.Errorf("parsing URL: %w", err)
	}

	urlPath := strings.Trim(parsed.Path, "/")
	if urlPath == "" {
		urlPath = "index"
	}
	fullPath := filepath.Join(w.OutputDir, filepath.FromSlash(urlPath)+ext)

	// Paths like /../x must not escape the output directory.
	rel, err := filepath.Rel(w.OutputDir, fullPath)
	if err != nil || strings.HasPrefix(rel, "..") {
		return "", fmt.Errorf("refusing to write outside %s: %s", w.OutputDir, rawURL)
	}

	dir := filepath.Dir(fullPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("creating directory %s: %w", dir, err)
	}

	if err := os.WriteFile(fullPath, data, 0644); err != nil {
		return "", fmt.Errorf("writing file %s: %w", fullPath, err)
	}
	return fullPath, nil
}

// filenameFromSource converts a URL or path into a flat filename.
// Example: https://example.com/docs/intro → example_com_docs_intro
// Example: ./pages/about.html → about
func filenameFromSource(source string) string {
	parsed, err := url.Parse(source)
	if err == nil && parsed.Host != "" && parsed.Scheme != "file" {
		parts := []string{sanitize(parsed.Host)}
		path := strings.Trim(parsed.Path, "/")
		if path != "" {
			for _, seg := range strings.Split(path, "/") {
				parts = append(parts, sanitize(seg))
			}
		}
		return strings.Join(parts, "_")
	}

	path := source
	if err == nil && parsed.Scheme == "file" {
		path = parsed.Path
	}
	base := filepath.Base(path)
	base = strings.TrimSuffix(base, filepath.Ext(base))
	if base == "" || base == "." || base == string(filepath.Separator) {
		return "page"
	}
	return sanitize(base)
}

// sanitize replaces characters other than letters, digits and dashes
// with underscores.
func sanitize(s string) string {
	var b strings.Builder
	for _, ch := range s {
		if (ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z') || (ch >= '0' && ch <= '9') || ch == '-' {
			b.WriteRune(ch)
		} else {
			b.WriteRune('_')
		}
	}
	return b.String()
}
