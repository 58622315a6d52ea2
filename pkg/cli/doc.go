/*
Package cli provides command-line interface utilities for waypost.

The cli package includes output formatters, a progress reporter, and common
helpers used by the waypost command.

Output Formatting:

Command results can be rendered as plain text or JSON:

	formatter := cli.NewFormatter(cli.FormatJSON)
	if err := formatter.FormatTo(os.Stdout, report); err != nil {
		return err
	}

Progress Reporting:

For long-running operations such as verifying redirects against a live
server, use the progress reporter:

	progress := cli.NewProgressReporter(os.Stderr)
	progress.Start(totalChecks)
	for i := 0; i < totalChecks; i++ {
		// Do work
		progress.Update(int64(i + 1))
	}
	progress.Finish()

Signal Handling:

For graceful shutdown of watch mode on SIGINT/SIGTERM:

	ctx := cli.SetupSignalHandler()
	// Use ctx for operations that should be cancelled on shutdown
*/
package cli
