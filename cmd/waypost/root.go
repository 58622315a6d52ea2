package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"purlhub/waypost/pkg/cli"
	"purlhub/waypost/pkg/logging"
)

var (
	// Global flags
	verbose   bool
	logFormat string
)

var rootCmd = &cobra.Command{
	Use:   "waypost",
	Short: "waypost - PURL redirect rule compiler",
	Long: `Waypost compiles declarative PURL redirect rules into Apache
RedirectMatch directives.

Ontology projects describe their persistent URLs in per-namespace YAML
documents with a top-level purl_rules list. Waypost provides:
  - translate: compile a document into an .htaccess file
  - lint:      validate documents and report every broken rule
  - migrate:   convert legacy PURL.org XML exports into rule documents
  - verify:    check deployed redirects against embedded tests
  - watch:     regenerate output whenever a document changes`,
	Version:       Version,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)

		var usageErr *cli.UsageError
		if errors.As(err, &usageErr) {
			fmt.Fprintln(os.Stderr, "Run 'waypost --help' for usage.")
		}

		os.Exit(1)
	}
}

// newLogger builds the command logger from the global flags. Logs go to
// stderr; stdout carries generated output only.
func newLogger() *slog.Logger {
	level := "info"
	if verbose {
		level = "debug"
	}

	logger, err := logging.New(logging.Config{
		Level:  level,
		Format: logFormat,
	})
	if err != nil {
		// Unknown --log-format; fall back to defaults
		logger, _ = logging.New(logging.Config{Level: level})
	}

	return logger
}

func init() {
	// Global persistent flags (available to all subcommands)
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "text", "log format: text, json")
}
