// Package cmd — unmark command.
// Removes the spans a previous mark run added and writes the restored page.
package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/gaurav-prasanna/pagemark/core"
	"github.com/gaurav-prasanna/pagemark/core/fetch"
	"github.com/gaurav-prasanna/pagemark/core/highlight"
	"github.com/gaurav-prasanna/pagemark/core/layout"
	"github.com/gaurav-prasanna/pagemark/core/normalize"
	"github.com/gaurav-prasanna/pagemark/core/output"
	"github.com/spf13/cobra"
)

var (
	flagUnmarkLabel     string
	flagUnmarkOutputDir string
	unmarkFormats       formatFlags
)

var unmarkCmd = &cobra.Command{
	Use:   "unmark <url|file>",
	Short: "Remove the marks with a label from a page",
	Long: `Unmark removes every <span class="LABEL"> element, merging its text back
into the surrounding text. Spans that contain other elements were not made
by mark and are left in place with a warning.

Examples:
  pagemark unmark example_com.highlight.html
  pagemark unmark marked.html --label found --markdown`,
	Args: cobra.ExactArgs(1),
	RunE: runUnmark,
}

func init() {
	rootCmd.AddCommand(unmarkCmd)

	unmarkCmd.Flags().StringVarP(&flagUnmarkLabel, "label", "l", "", "Class name of the spans to remove (default from config: highlight)")
	unmarkCmd.Flags().StringVar(&flagUnmarkOutputDir, "output_dir", "", "Output directory (default: current directory)")
	unmarkFormats.register(unmarkCmd, false)
}

func runUnmark(cmd *cobra.Command, args []string) error {
	source := args[0]
	label := cfg.Label
	if cmd.Flags().Changed("label") {
		label = flagUnmarkLabel
	}

	fallback := cfg.Format
	if fallback != "markdown" {
		fallback = "html"
	}
	format, err := unmarkFormats.selected(fallback)
	if err != nil {
		return err
	}
	renderer, err := selectRenderer(format)
	if err != nil {
		return err
	}

	writer, err := output.New(firstNonEmpty(flagUnmarkOutputDir, cfg.OutputDir))
	if err != nil {
		return fmt.Errorf("initializing output writer: %w", err)
	}

	doc, err := loadDocument(cmd.Context(), fetch.New(), source)
	if err != nil {
		return err
	}

	removed, err := highlight.New(layout.New(doc), logger).Unmark(doc, label)
	var boundaryErr *highlight.BoundaryError
	switch {
	case errors.As(err, &boundaryErr):
		fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
	case err != nil:
		return fmt.Errorf("unmark: %w", err)
	}

	page := &core.MarkedPage{
		Metadata:   buildMetadata(source, doc),
		Label:      label,
		Boundaries: removed,
	}
	if page.HTML, err = renderDocument(doc); err != nil {
		return err
	}
	// The label is gone from the tree; convert without boldening.
	if page.Markdown, err = normalize.New().Normalize(page.HTML, ""); err != nil {
		return fmt.Errorf("normalize: %w", err)
	}

	data, err := renderer.Render(page)
	if err != nil {
		return fmt.Errorf("render: %w", err)
	}
	path, err := writer.Write(source, "unmarked", data, renderer.Extension())
	if err != nil {
		return err
	}
	fmt.Fprintf(os.Stdout, "Removed %d %q marks\n", removed, label)
	fmt.Fprintf(os.Stdout, "✓ Written: %s\n", path)
	return nil
}
