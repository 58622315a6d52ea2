package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"purlhub/waypost/pkg/cli"
	"purlhub/waypost/pkg/purl"
	"purlhub/waypost/pkg/purl/compiler"
)

var translateCmd = &cobra.Command{
	Use:   "translate <project|top> <config.yml> [htaccess]",
	Short: "Compile a rule document into RedirectMatch directives",
	Long: `Compile a PURL rule document into Apache RedirectMatch directives.

The processing mode selects which rules end up in the output:
  project   rules below the namespace subtree (/obo/<ns>/...), written to
            the per-ontology .htaccess file
  top       rules at the top of the /obo/ tree (term redirects, the
            ontology files themselves), merged into the shared top-level
            htaccess

The namespace is taken from the config file name: config/obi.yml compiles
as namespace "obi". Without an output argument the directives go to
stdout.

Examples:
  # Project rules to stdout
  waypost translate project config/obi.yml

  # Top rules straight into the served tree
  waypost translate top config/obi.yml www/obo/obi.htaccess`,
	Args: cobra.RangeArgs(2, 3),
	RunE: runTranslate,
}

func init() {
	rootCmd.AddCommand(translateCmd)
}

func runTranslate(cmd *cobra.Command, args []string) error {
	logger := newLogger()

	mode, err := compiler.ParseMode(args[0])
	if err != nil {
		return err
	}

	content, err := purl.Translate(mode, args[1])
	if err != nil {
		return err
	}

	if len(args) < 3 || args[2] == "-" {
		fmt.Print(content)
		return nil
	}

	if err := os.WriteFile(args[2], []byte(content), 0644); err != nil {
		return cli.NewCommandError("translate", err)
	}

	logger.Info("htaccess written",
		"mode", string(mode),
		"source", args[1],
		"output", args[2],
		"directives", strings.Count(content, "RedirectMatch "),
	)

	return nil
}
