package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"purlhub/waypost/pkg/cli"
	"purlhub/waypost/pkg/purl/migrate"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate <IDSPACE> [purls.xml] [config.yml]",
	Short: "Convert a PURL.org XML export into a rule document",
	Long: `Convert a legacy PURL.org XML export into a waypost rule document.

Exact (type 302) PURL entries become path rules and partial entries
become prefix rules, ordered the way PURL.org matched them: exact
entries first, then prefixes from most to least specific. The emitted
document carries TODO markers for the fields an export cannot provide;
fill those in before translating.

Without file arguments the export is read from stdin and the document
written to stdout; "-" selects the same explicitly.

Examples:
  # File to file
  waypost migrate OBI obi-export.xml config/obi.yml

  # As a pipe stage
  curl https://purl.org/admin/export/OBI | waypost migrate OBI > config/obi.yml`,
	Args: cobra.RangeArgs(1, 3),
	RunE: runMigrate,
}

func init() {
	rootCmd.AddCommand(migrateCmd)
}

func runMigrate(cmd *cobra.Command, args []string) error {
	logger := newLogger()
	projectID := args[0]

	var in io.Reader = os.Stdin
	if len(args) >= 2 && args[1] != "-" {
		f, err := os.Open(args[1])
		if err != nil {
			return cli.NewCommandError("migrate", err)
		}
		defer f.Close()
		in = f
	}

	content, err := migrate.Migrate(projectID, in)
	if err != nil {
		return err
	}

	if len(args) < 3 || args[2] == "-" {
		fmt.Print(content)
		return nil
	}

	if err := os.WriteFile(args[2], []byte(content), 0644); err != nil {
		return cli.NewCommandError("migrate", err)
	}

	logger.Info("rule document written",
		"idspace", projectID,
		"output", args[2],
	)

	return nil
}
