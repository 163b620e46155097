// Package cmd — mark command.
// This is the main command that orchestrates the pipeline:
// fetch → extract → mark → normalize → render → write.
//
// It handles flag and config precedence, renderer selection, and the
// single-source / --all modes.
package cmd

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/gaurav-prasanna/pagemark/core"
	"github.com/gaurav-prasanna/pagemark/core/extract"
	"github.com/gaurav-prasanna/pagemark/core/fetch"
	"github.com/gaurav-prasanna/pagemark/core/highlight"
	"github.com/gaurav-prasanna/pagemark/core/layout"
	"github.com/gaurav-prasanna/pagemark/core/normalize"
	"github.com/gaurav-prasanna/pagemark/core/output"
	"github.com/gaurav-prasanna/pagemark/core/snippet"
	"github.com/gaurav-prasanna/pagemark/crawl"
	"github.com/spf13/cobra"
)

// markOptions are the resolved settings of one mark run.
type markOptions struct {
	Query         string
	Label         string
	CaseSensitive bool
	Scope         string
	StripNoise    bool
	SnippetRadius int
}

// Flag variables.
var (
	flagQuery         string
	flagLabel         string
	flagCaseSensitive bool
	flagScope         string
	flagStripNoise    bool
	flagAll           bool
	flagOutputDir     string
	flagMaxPages      int
	flagSnippetRadius int
	markFormats       formatFlags
)

var markCmd = &cobra.Command{
	Use:   "mark <url|file>",
	Short: "Mark the first occurrence of a query in a page",
	Long: `Mark loads a page, finds the first occurrence of the query in its text
(ignoring line breaks and repeated blanks), wraps it in <span class="LABEL">
elements, and writes the result in the chosen format.

Examples:
  pagemark mark https://example.com --query "example domain"
  pagemark mark page.html --query "Lorem ipsum" --label found --markdown
  pagemark mark https://example.com --query "More" --case-sensitive --json
  pagemark mark https://example.com --all --query "contact" --pdf`,
	Args: cobra.ExactArgs(1),
	RunE: runMark,
}

func init() {
	rootCmd.AddCommand(markCmd)

	markCmd.Flags().StringVarP(&flagQuery, "query", "q", "", "Text to search for (required)")
	markCmd.Flags().StringVarP(&flagLabel, "label", "l", "", "Class name of the marking spans (default from config: highlight)")
	markCmd.Flags().BoolVar(&flagCaseSensitive, "case-sensitive", false, "Match case exactly")
	markCmd.Flags().StringVar(&flagScope, "scope", "", "CSS selector of the element to search in (default: main, article or body)")
	markCmd.Flags().BoolVar(&flagStripNoise, "strip-noise", false, "Remove scripts, navigation and similar noise before searching")

	markCmd.Flags().BoolVar(&flagAll, "all", false, "Mark all discovered sub-pages of a URL")
	markCmd.Flags().IntVar(&flagMaxPages, "max_pages", 0, "Page limit for --all (default from config: 100)")

	markCmd.Flags().IntVar(&flagSnippetRadius, "snippet_radius", 0, "Context words on each side of the match in reports")
	markCmd.Flags().StringVar(&flagOutputDir, "output_dir", "", "Output directory (default: current directory)")
	markFormats.register(markCmd, true)

	_ = markCmd.MarkFlagRequired("query")
}

func runMark(cmd *cobra.Command, args []string) error {
	source := args[0]
	opts := resolveMarkOptions(cmd)

	if flagAll && !fetch.IsRemote(source) {
		return fmt.Errorf("--all needs an http(s) URL, got %s", source)
	}

	format, err := markFormats.selected(cfg.Format)
	if err != nil {
		return err
	}
	renderer, err := selectRenderer(format)
	if err != nil {
		return err
	}

	extractor, err := extract.New(opts.Scope, opts.StripNoise)
	if err != nil {
		return err
	}

	writer, err := output.New(firstNonEmpty(flagOutputDir, cfg.OutputDir))
	if err != nil {
		return fmt.Errorf("initializing output writer: %w", err)
	}

	fetcher := fetch.New()
	normalizer := normalize.New()
	ctx := cmd.Context()

	if flagAll {
		maxPages := cfg.MaxPages
		if cmd.Flags().Changed("max_pages") {
			maxPages = flagMaxPages
		}
		return runMarkAll(ctx, source, maxPages, opts, fetcher, extractor, normalizer, renderer, writer)
	}

	page, err := markSource(ctx, source, opts, fetcher, extractor, normalizer)
	if err != nil {
		return err
	}
	if !page.Found {
		fmt.Fprintf(os.Stderr, "No occurrence of %q in %s\n", opts.Query, source)
	}
	data, err := renderer.Render(page)
	if err != nil {
		return fmt.Errorf("render: %w", err)
	}
	path, err := writer.Write(source, opts.Label, data, renderer.Extension())
	if err != nil {
		return err
	}
	fmt.Fprintf(os.Stdout, "✓ Written: %s\n", path)
	return nil
}

// resolveMarkOptions merges flags over the loaded configuration. A flag
// only wins when it was given on the command line.
func resolveMarkOptions(cmd *cobra.Command) markOptions {
	opts := markOptions{
		Query:         flagQuery,
		Label:         cfg.Label,
		CaseSensitive: cfg.CaseSensitive,
		Scope:         cfg.Scope,
		StripNoise:    cfg.StripNoise,
		SnippetRadius: cfg.SnippetRadius,
	}
	flags := cmd.Flags()
	if flags.Changed("label") {
		opts.Label = flagLabel
	}
	if flags.Changed("case-sensitive") {
		opts.CaseSensitive = flagCaseSensitive
	}
	if flags.Changed("scope") {
		opts.Scope = flagScope
	}
	if flags.Changed("strip-noise") {
		opts.StripNoise = flagStripNoise
	}
	if flags.Changed("snippet_radius") {
		opts.SnippetRadius = flagSnippetRadius
	}
	return opts
}

// runMarkAll discovers all internal pages and marks each one.
func runMarkAll(
	ctx context.Context,
	rawURL string,
	maxPages int,
	opts markOptions,
	fetcher core.Fetcher,
	extractor core.Extractor,
	normalizer core.Normalizer,
	renderer core.Renderer,
	writer *output.Writer,
) error {
	fmt.Fprintf(os.Stdout, "Discovering pages from %s...\n", rawURL)

	urls, err := crawl.DiscoverAll(ctx, rawURL, fetcher, maxPages)
	if err != nil {
		return fmt.Errorf("discovering pages: %w", err)
	}

	fmt.Fprintf(os.Stdout, "Found %d pages to process\n", len(urls))

	var errCount, foundCount int
	for i, pageURL := range urls {
		fmt.Fprintf(os.Stdout, "[%d/%d] Marking %s\n", i+1, len(urls), pageURL)

		page, err := markSource(ctx, pageURL, opts, fetcher, extractor, normalizer)
		if err != nil {
			fmt.Fprintf(os.Stderr, "  ✗ Error: %v\n", err)
			errCount++
			continue
		}
		if !page.Found {
			fmt.Fprintf(os.Stdout, "  – no occurrence\n")
			continue
		}
		foundCount++

		data, err := renderer.Render(page)
		if err != nil {
			fmt.Fprintf(os.Stderr, "  ✗ Render error: %v\n", err)
			errCount++
			continue
		}
		path, err := writer.WriteMirrored(pageURL, data, renderer.Extension())
		if err != nil {
			fmt.Fprintf(os.Stderr, "  ✗ Write error: %v\n", err)
			errCount++
			continue
		}
		fmt.Fprintf(os.Stdout, "  ✓ Written: %s\n", path)
	}

	fmt.Fprintf(os.Stdout, "\n%d/%d pages contain %q\n", foundCount, len(urls), opts.Query)
	if errCount > 0 {
		fmt.Fprintf(os.Stderr, "%d/%d pages failed\n", errCount, len(urls))
	}
	return nil
}

// markSource runs a single source through the marking pipeline.
func markSource(
	ctx context.Context,
	source string,
	opts markOptions,
	fetcher core.Fetcher,
	extractor core.Extractor,
	normalizer core.Normalizer,
) (*core.MarkedPage, error) {
	// 1. Fetch and parse
	doc, err := loadDocument(ctx, fetcher, source)
	if err != nil {
		return nil, err
	}
	// Styles are read before noise stripping may remove them.
	lay := layout.New(doc)

	// 2. Extract the marking scope
	root, err := extractor.Extract(doc)
	if err != nil {
		return nil, fmt.Errorf("extract: %w", err)
	}

	page := &core.MarkedPage{
		Metadata:      buildMetadata(source, doc),
		Query:         opts.Query,
		Label:         opts.Label,
		CaseSensitive: opts.CaseSensitive,
	}

	// 3. Mark
	fullText := highlight.FullText(highlight.ExtractLeaves(root))
	if start, end, ok := highlight.Occurrence(fullText, opts.Query, opts.CaseSensitive); ok {
		page.Matched = strings.TrimSpace(fullText[start:end])
		page.Excerpt = snippet.New(opts.SnippetRadius).At(fullText, start, end)
	}
	before := len(highlight.FindBoundaries(root, opts.Label))
	found, err := highlight.New(lay, logger).Mark(root, opts.Query, opts.Label, opts.CaseSensitive)
	if err != nil {
		return nil, fmt.Errorf("mark: %w", err)
	}
	page.Found = found
	page.Boundaries = len(highlight.FindBoundaries(root, opts.Label)) - before
	logger.Debug("marked", "source", source, "found", found, "boundaries", page.Boundaries)

	// 4. Normalize to Markdown
	page.HTML, err = renderDocument(doc)
	if err != nil {
		return nil, err
	}
	page.Markdown, err = normalizer.Normalize(page.HTML, opts.Label)
	if err != nil {
		return nil, fmt.Errorf("normalize: %w", err)
	}
	return page, nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
