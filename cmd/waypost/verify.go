package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"purlhub/waypost/pkg/cli"
	"purlhub/waypost/pkg/purl"
	"purlhub/waypost/pkg/purl/verify"
)

var verifyFlags struct {
	server  string
	file    string
	dir     string
	format  string
	timeout time.Duration
}

var verifyCmd = &cobra.Command{
	Use:   "verify",
	Short: "Check deployed redirects against rule tests",
	Long: `Check that a deployed PURL server answers the way the rule documents
promise.

Rules may carry a tests list of {from, to} pairs. For each pair the
verify command requests "from" against the server with redirect
following disabled and compares the first-hop Location header and
status code with the rule's expectation. Rules without tests are
skipped.

Examples:
  # Verify one ontology against production
  waypost verify --server https://purl.obolibrary.org --file config/obi.yml

  # Verify the whole config tree, JSON report for CI
  waypost verify --server https://staging.example.org --dir config/ --format json`,
	RunE: runVerify,
}

func init() {
	rootCmd.AddCommand(verifyCmd)

	verifyCmd.Flags().StringVar(&verifyFlags.server, "server", "", "server base URL to verify against")
	verifyCmd.Flags().StringVarP(&verifyFlags.file, "file", "f", "", "rule document to verify")
	verifyCmd.Flags().StringVarP(&verifyFlags.dir, "dir", "d", "", "directory of rule documents")
	verifyCmd.Flags().StringVar(&verifyFlags.format, "format", "text", "output format: text, json")
	verifyCmd.Flags().DurationVar(&verifyFlags.timeout, "timeout", verify.DefaultTimeout, "per-request timeout")
}

// verifyResult is the JSON shape of one document's verification run.
type verifyResult struct {
	RunID  string        `json:"run_id"`
	Server string        `json:"server"`
	File   string        `json:"file"`
	Passed int           `json:"passed"`
	Total  int           `json:"total"`
	Checks []verifyCheck `json:"checks"`
}

type verifyCheck struct {
	From       string `json:"from"`
	WantTo     string `json:"want_to"`
	GotTo      string `json:"got_to,omitempty"`
	WantStatus int    `json:"want_status"`
	GotStatus  int    `json:"got_status,omitempty"`
	Passed     bool   `json:"passed"`
	Error      string `json:"error,omitempty"`
}

func runVerify(cmd *cobra.Command, args []string) error {
	if verifyFlags.server == "" {
		return cli.NewUsageError("--server is required")
	}
	if verifyFlags.file == "" && verifyFlags.dir == "" {
		return cli.NewUsageError("either --file or --dir must be specified")
	}

	files, err := collectDocuments(verifyFlags.file, verifyFlags.dir)
	if err != nil {
		return err
	}
	if len(files) == 0 {
		return fmt.Errorf("no rule documents found")
	}

	logger := newLogger()
	ctx := cli.SetupSignalHandler()

	verifier := verify.New(verifyFlags.server).WithTimeout(verifyFlags.timeout)

	logger.Info("verifying redirects",
		"server", verifyFlags.server,
		"documents", len(files),
	)

	progress := cli.NewProgressReporter(nil)
	progress.Start(int64(len(files)))

	var reports []*verify.Report
	for i, file := range files {
		doc, err := purl.Parse(file)
		if err != nil {
			progress.Error(err)
			return err
		}

		report, err := verifier.Run(ctx, doc)
		if err != nil {
			progress.Error(err)
			return err
		}

		logger.Debug("document verified",
			"run_id", report.RunID,
			"document", report.Document,
			"passed", report.Passed(),
			"checks", len(report.Checks),
		)

		reports = append(reports, report)
		progress.Update(int64(i + 1))
	}
	progress.Finish()

	failed := 0
	for _, report := range reports {
		failed += len(report.Failed())
	}

	if verifyFlags.format == "json" {
		results := make([]verifyResult, 0, len(reports))
		for _, report := range reports {
			results = append(results, toVerifyResult(report))
		}
		formatter := cli.NewFormatter(cli.FormatJSON)
		if err := formatter.FormatTo(os.Stdout, results); err != nil {
			return err
		}
	} else {
		for _, report := range reports {
			fmt.Printf("%s: %s\n", report.Document, report.Summary())
			for _, check := range report.Failed() {
				fmt.Printf("  %s\n", check)
			}
		}
	}

	if failed > 0 {
		return cli.NewCommandError("verify", fmt.Errorf("%d redirect check(s) failed", failed))
	}

	return nil
}

func toVerifyResult(report *verify.Report) verifyResult {
	result := verifyResult{
		RunID:  report.RunID,
		Server: report.Server,
		File:   report.Document,
		Passed: report.Passed(),
		Total:  len(report.Checks),
	}

	for _, check := range report.Checks {
		entry := verifyCheck{
			From:       check.From,
			WantTo:     check.WantTo,
			GotTo:      check.GotTo,
			WantStatus: check.WantStatus,
			GotStatus:  check.GotStatus,
			Passed:     check.Passed(),
		}
		if check.Err != nil {
			entry.Error = check.Err.Error()
		}
		result.Checks = append(result.Checks, entry)
	}

	return result
}
