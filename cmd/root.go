// Package cmd implements the CLI commands for PageMark using Cobra.
package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/gaurav-prasanna/pagemark/core/config"
	"github.com/gaurav-prasanna/pagemark/core/logging"
	"github.com/spf13/cobra"
)

// Global flag variables.
var (
	flagConfig  string
	flagVerbose bool
)

// Shared state set up before every command runs.
var (
	cfg    = config.Default()
	logger = logging.NewNop()
)

var rootCmd = &cobra.Command{
	Use:   "pagemark",
	Short: "PageMark — mark the first occurrence of text in a web page",
	Long: `PageMark finds the first occurrence of a query in the rendered text of an
HTML page, wraps it in labeled <span> elements, and can remove those marks
again, restoring the original text.

Usage:
  pagemark mark <url|file> --query <text> [flags]
  pagemark unmark <url|file> --label <label> [flags]
  pagemark leaves <url|file> [flags]`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		level := slog.LevelInfo
		if flagVerbose {
			level = slog.LevelDebug
		}
		logger = logging.New(level)

		loaded, err := config.Load(flagConfig)
		if err != nil {
			return err
		}
		cfg = loaded
		logger.Debug("configuration loaded", "label", cfg.Label, "format", cfg.Format)
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Config file (default: "+config.DefaultPath+" if present)")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "Log debug details to stderr")
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
