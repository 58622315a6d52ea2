package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"purlhub/waypost/pkg/cli"
	"purlhub/waypost/pkg/purl"
	purlErrors "purlhub/waypost/pkg/purl/errors"
	"purlhub/waypost/pkg/purl/parser"
)

var lintFlags struct {
	file   string
	dir    string
	strict bool
	format string
}

var lintCmd = &cobra.Command{
	Use:   "lint",
	Short: "Validate rule documents",
	Long: `Validate PURL rule documents for syntax and semantic errors.

The lint command parses rule documents and runs every rule through the
compiler checks:
  - YAML syntax and document structure
  - variant classification (exactly one of path/prefix/regex/term_browser)
  - replacement presence, namespace agreement, level and status values
  - top-level allow-list for rules that resolve to the top level

Every broken rule is reported, not just the first one.

Examples:
  # Lint a single document
  waypost lint --file config/obi.yml

  # Lint all documents in a directory
  waypost lint --dir config/

  # Strict mode (unknown rule keys are errors)
  waypost lint --file config/obi.yml --strict

  # JSON output for CI/CD
  waypost lint --dir config/ --format json`,
	RunE: lintDocuments,
}

func init() {
	rootCmd.AddCommand(lintCmd)

	lintCmd.Flags().StringVarP(&lintFlags.file, "file", "f", "", "rule document to validate")
	lintCmd.Flags().StringVarP(&lintFlags.dir, "dir", "d", "", "directory of rule documents")
	lintCmd.Flags().BoolVar(&lintFlags.strict, "strict", false, "treat unknown rule keys as errors")
	lintCmd.Flags().StringVar(&lintFlags.format, "format", "text", "output format: text, json")
}

// collectDocuments resolves the --file/--dir flags shared by lint and
// verify into a list of rule document paths.
func collectDocuments(file, dir string) ([]string, error) {
	var files []string

	if file != "" {
		files = append(files, file)
	}

	if dir != "" {
		for _, pattern := range []string{"*.yml", "*.yaml"} {
			matches, err := filepath.Glob(filepath.Join(dir, pattern))
			if err != nil {
				return nil, fmt.Errorf("failed to list rule documents: %w", err)
			}
			files = append(files, matches...)
		}
	}

	return files, nil
}

func lintDocuments(cmd *cobra.Command, args []string) error {
	if lintFlags.file == "" && lintFlags.dir == "" {
		return cli.NewUsageError("either --file or --dir must be specified")
	}

	files, err := collectDocuments(lintFlags.file, lintFlags.dir)
	if err != nil {
		return err
	}

	if len(files) == 0 {
		return fmt.Errorf("no rule documents found")
	}

	results := make([]ValidationResult, 0, len(files))

	for _, file := range files {
		results = append(results, lintDocument(file))
	}

	// Output results
	if lintFlags.format == "json" {
		formatter := cli.NewFormatter(cli.FormatJSON)
		if err := formatter.FormatTo(os.Stdout, results); err != nil {
			return err
		}
		return lintStatus(results)
	}
	return outputText(results)
}

// ValidationResult represents the validation result for a single rule document.
type ValidationResult struct {
	File   string            `json:"file"`
	Valid  bool              `json:"valid"`
	Rules  int               `json:"rules"`
	Errors []ValidationError `json:"errors,omitempty"`
}

// ValidationError represents a single validation error.
type ValidationError struct {
	Line       int    `json:"line,omitempty"`
	Column     int    `json:"column,omitempty"`
	Rule       string `json:"rule,omitempty"`
	Message    string `json:"message"`
	Kind       string `json:"kind,omitempty"`
	Suggestion string `json:"suggestion,omitempty"`
}

func lintDocument(path string) ValidationResult {
	result := ValidationResult{
		File:  path,
		Valid: true,
	}

	p := parser.NewParser()
	if lintFlags.strict {
		p.WithStrictMode(true)
	}

	doc, err := p.Parse(path)
	if err != nil {
		result.Valid = false
		result.Errors = appendValidationErrors(result.Errors, err)
		return result
	}

	result.Rules = doc.RuleCount()

	if err := purl.Check(doc); err != nil {
		result.Valid = false
		result.Errors = appendValidationErrors(result.Errors, err)
	}

	return result
}

// appendValidationErrors flattens rich errors into report entries.
func appendValidationErrors(out []ValidationError, err error) []ValidationError {
	switch e := err.(type) {
	case *purlErrors.ErrorList:
		for _, inner := range e.Errors {
			out = appendValidationErrors(out, inner)
		}
	case *purlErrors.Error:
		entry := ValidationError{
			Line:       e.Location.Line,
			Column:     e.Location.Column,
			Message:    e.Message,
			Kind:       string(e.Kind),
			Suggestion: e.Suggestion,
		}
		if e.Rule != nil {
			entry.Rule = e.Rule.String()
		}
		out = append(out, entry)
	default:
		out = append(out, ValidationError{Message: err.Error()})
	}
	return out
}

func outputText(results []ValidationResult) error {
	totalErrors := 0

	for _, result := range results {
		fmt.Printf("Validating %s...\n", result.File)

		if result.Valid {
			fmt.Println("✓ Syntax valid")
			fmt.Printf("✓ %d rule(s) compile\n", result.Rules)
		}

		for _, err := range result.Errors {
			fmt.Printf("✗ Error: %s", err.Message)
			if err.Line > 0 {
				fmt.Printf(" (line %d", err.Line)
				if err.Column > 0 {
					fmt.Printf(", col %d", err.Column)
				}
				fmt.Print(")")
			}
			if err.Kind != "" {
				fmt.Printf(" [%s]", err.Kind)
			}
			fmt.Println()
			if err.Suggestion != "" {
				fmt.Printf("  = help: %s\n", err.Suggestion)
			}
			totalErrors++
		}

		fmt.Println()
	}

	fmt.Println("Summary:")
	fmt.Printf("  %d error(s) in %d document(s)\n", totalErrors, len(results))

	if totalErrors > 0 {
		return cli.NewCommandError("lint", fmt.Errorf("validation failed"))
	}

	return nil
}

// lintStatus returns the exit error for machine-readable formats, which
// print no summary line.
func lintStatus(results []ValidationResult) error {
	for _, result := range results {
		if !result.Valid {
			return cli.NewCommandError("lint", fmt.Errorf("validation failed"))
		}
	}
	return nil
}
