// Package cmd — leaves command.
// Prints the text leaves of a page with the range each one covers in the
// normalized text, which is what marking searches.
package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/gaurav-prasanna/pagemark/core/extract"
	"github.com/gaurav-prasanna/pagemark/core/fetch"
	"github.com/gaurav-prasanna/pagemark/core/highlight"
	"github.com/spf13/cobra"
)

var flagLeavesScope string

var leavesCmd = &cobra.Command{
	Use:   "leaves <url|file>",
	Short: "List the text leaves searched by mark",
	Long: `Leaves prints every text node in the marking scope, in document order, with
the [from, to) range it contributes to the normalized text. Leaves whose
whitespace collapses into a neighbour contribute an empty range.`,
	Args: cobra.ExactArgs(1),
	RunE: runLeaves,
}

func init() {
	rootCmd.AddCommand(leavesCmd)
	leavesCmd.Flags().StringVar(&flagLeavesScope, "scope", "", "CSS selector of the element to inspect (default: main, article or body)")
}

func runLeaves(cmd *cobra.Command, args []string) error {
	scope := cfg.Scope
	if cmd.Flags().Changed("scope") {
		scope = flagLeavesScope
	}
	extractor, err := extract.New(scope, false)
	if err != nil {
		return err
	}

	doc, err := loadDocument(cmd.Context(), fetch.New(), args[0])
	if err != nil {
		return err
	}
	root, err := extractor.Extract(doc)
	if err != nil {
		return fmt.Errorf("extract: %w", err)
	}

	runs, fullText := highlight.Runs(highlight.ExtractLeaves(root))
	printRuns(os.Stdout, runs)
	fmt.Fprintf(os.Stdout, "\n%d leaves, %d bytes of normalized text\n", len(runs), len(fullText))
	return nil
}

func printRuns(w io.Writer, runs []highlight.Run) {
	for i, r := range runs {
		fmt.Fprintf(w, "%4d  [%d, %d)  %q\n", i, r.From, r.From+r.Width, r.Leaf.Data)
	}
}
