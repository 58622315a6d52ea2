package main

import (
	"errors"
	"os"
	"sync"

	"github.com/spf13/cobra"

	"purlhub/waypost/pkg/cli"
	"purlhub/waypost/pkg/purl"
	"purlhub/waypost/pkg/purl/compiler"
	purlErrors "purlhub/waypost/pkg/purl/errors"
	"purlhub/waypost/pkg/watch"
)

var watchFlags struct {
	schedule string
}

var watchCmd = &cobra.Command{
	Use:   "watch <project|top> <config.yml> <htaccess>",
	Short: "Regenerate output whenever the rule document changes",
	Long: `Watch a rule document and regenerate the .htaccess file on every
change.

The document is compiled once at startup and again after each change
(debounced, so editor write bursts cost one rebuild). A rebuild that
fails validation is logged and the previous output file is left
untouched. SIGINT/SIGTERM stop the watch.

With --schedule the document is additionally recompiled on a cron
schedule, for setups where file notifications are unreliable.

Examples:
  waypost watch project config/obi.yml www/obo/obi/.htaccess

  # Also rebuild every 6 hours
  waypost watch top config/obi.yml www/obo/obi.htaccess --schedule "0 */6 * * *"`,
	Args: cobra.ExactArgs(3),
	RunE: runWatch,
}

func init() {
	rootCmd.AddCommand(watchCmd)

	watchCmd.Flags().StringVar(&watchFlags.schedule, "schedule", "", "cron expression for periodic rebuilds")
}

func runWatch(cmd *cobra.Command, args []string) error {
	logger := newLogger()

	mode, err := compiler.ParseMode(args[0])
	if err != nil {
		return err
	}
	source, output := args[1], args[2]

	// Rebuilds are sequential even when the watcher and the scheduler
	// both fire.
	var mu sync.Mutex
	rebuild := func() error {
		mu.Lock()
		defer mu.Unlock()

		content, err := purl.Translate(mode, source)
		if err != nil {
			return err
		}
		if err := os.WriteFile(output, []byte(content), 0644); err != nil {
			return err
		}

		logger.Info("htaccess rebuilt",
			"mode", string(mode),
			"source", source,
			"output", output,
		)
		return nil
	}

	// Initial build so the output exists before the first change. A
	// validation failure is worth watching through: the user is probably
	// about to fix the document. Anything else (unreadable source,
	// unwritable output) will not heal by itself.
	if err := rebuild(); err != nil {
		if isValidationError(err) {
			logger.Warn("initial build failed, watching for fixes", "error", err)
		} else {
			return cli.NewCommandError("watch", err)
		}
	}

	ctx := cli.SetupSignalHandler()

	if watchFlags.schedule != "" {
		scheduler := watch.NewScheduler(watchFlags.schedule, logger)
		if err := scheduler.Start(ctx, rebuild); err != nil {
			return cli.NewCommandError("watch", err)
		}
		defer scheduler.Stop()
	}

	config := watch.DefaultConfig()
	config.Path = source

	watcher, err := watch.New(config, logger)
	if err != nil {
		return cli.NewCommandError("watch", err)
	}

	return watcher.Watch(ctx, rebuild)
}

// isValidationError reports whether err is a rule or document problem,
// as opposed to an IO failure.
func isValidationError(err error) bool {
	var single *purlErrors.Error
	if errors.As(err, &single) {
		return single.Kind != purlErrors.KindIO
	}

	var list *purlErrors.ErrorList
	return errors.As(err, &list)
}
