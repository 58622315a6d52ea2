// Package watch provides change detection for redirect rule documents.
//
// Watch mode keeps a generated .htaccess file in sync with its source
// document. Two mechanisms feed rebuilds:
//
//   - Watcher reacts to file system events (fsnotify) with debouncing,
//     so editor write bursts produce a single rebuild.
//   - Scheduler triggers periodic rebuilds on a cron expression for
//     environments where file system events are unreliable (network
//     mounts, some container filesystems).
//
// # Basic Usage
//
//	config := watch.DefaultConfig()
//	config.Path = "config/obi.yml"
//
//	w, err := watch.New(config, logger)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	// Blocks until ctx is cancelled or w.Stop() is called.
//	err = w.Watch(ctx, func() error {
//	    return rebuild() // regenerate the .htaccess file
//	})
//
// A failed rebuild is logged and watching continues; the previous
// output file is left in place.
//
// # Scheduled Rebuilds
//
//	s := watch.NewScheduler("0 3 * * *", logger)
//	if err := s.Start(ctx, rebuild); err != nil {
//	    log.Fatal(err)
//	}
//	defer s.Stop()
//
// If the schedule is empty, Start returns immediately without error and
// the scheduler stays idle.
package watch
