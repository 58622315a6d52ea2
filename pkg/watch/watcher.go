package watch

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Watcher watches rule documents for changes and triggers rebuilds.
// It implements debouncing to prevent rebuild storms when an editor
// writes a file in several bursts.
//
// When Path names a single file, the watcher registers its parent
// directory instead of the file itself. Editors commonly save through a
// rename (write temp file, rename over the original), which would
// silently detach a watch on the original inode.
type Watcher struct {
	watcher  *fsnotify.Watcher
	logger   *slog.Logger
	config   *Config
	debounce *Debouncer

	// file is the absolute path of the single watched file, or ""
	// when Path is a directory.
	file string

	// State
	mu      sync.RWMutex
	running bool
	stopCh  chan struct{}
	doneCh  chan struct{}
}

// Config contains configuration for the watcher.
type Config struct {
	// Path is the file or directory to watch
	Path string

	// DebounceInterval is the time to wait before triggering a rebuild
	// after detecting file changes (default: 100ms)
	DebounceInterval time.Duration

	// Extensions is the list of file extensions to watch (e.g., ".yml", ".yaml")
	Extensions []string

	// SkipHidden controls whether to skip hidden files
	SkipHidden bool
}

// DefaultConfig returns the default watcher configuration.
func DefaultConfig() *Config {
	return &Config{
		DebounceInterval: 100 * time.Millisecond,
		Extensions:       []string{".yml", ".yaml"},
		SkipHidden:       true,
	}
}

// New creates a watcher for the file or directory named by config.Path.
func New(config *Config, logger *slog.Logger) (*Watcher, error) {
	if config == nil {
		config = DefaultConfig()
	}

	if logger == nil {
		logger = slog.Default()
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create fsnotify watcher: %w", err)
	}

	w := &Watcher{
		watcher:  watcher,
		logger:   logger,
		config:   config,
		debounce: NewDebouncer(config.DebounceInterval),
		stopCh:   make(chan struct{}),
		doneCh:   make(chan struct{}),
	}

	return w, nil
}

// Watch starts watching for file changes and invokes onChange after each
// debounced batch of events. This is a blocking operation that runs until
// the context is cancelled or Stop is called.
func (w *Watcher) Watch(ctx context.Context, onChange func() error) error {
	w.mu.Lock()
	if w.running {
		w.mu.Unlock()
		return fmt.Errorf("watcher already running")
	}
	w.running = true
	w.mu.Unlock()

	defer func() {
		w.mu.Lock()
		w.running = false
		w.mu.Unlock()
		close(w.doneCh)
	}()

	// Add path to watcher
	if err := w.addPath(w.config.Path); err != nil {
		return fmt.Errorf("failed to watch path: %w", err)
	}

	w.logger.Info("File watcher started",
		"path", w.config.Path,
		"debounce_ms", w.config.DebounceInterval.Milliseconds(),
	)

	// Event processing loop
	for {
		select {
		case <-ctx.Done():
			w.logger.Info("File watcher stopped (context cancelled)")
			return nil

		case <-w.stopCh:
			w.logger.Info("File watcher stopped")
			return nil

		case event, ok := <-w.watcher.Events:
			if !ok {
				return fmt.Errorf("watcher events channel closed")
			}

			// Filter events
			if !w.shouldProcessEvent(event) {
				continue
			}

			w.logger.Debug("File event detected",
				"path", event.Name,
				"op", event.Op.String(),
			)

			// Debounce and trigger rebuild
			w.debounce.Trigger(func() {
				w.logger.Info("Triggering rebuild",
					"path", event.Name,
					"op", event.Op.String(),
				)

				if err := onChange(); err != nil {
					w.logger.Error("Rebuild failed",
						"error", err,
					)
				}
			})

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return fmt.Errorf("watcher errors channel closed")
			}

			w.logger.Error("File watcher error", "error", err)
			// Continue watching despite errors
		}
	}
}

// Stop stops the watcher.
func (w *Watcher) Stop() error {
	w.mu.Lock()
	if !w.running {
		w.mu.Unlock()
		return nil
	}
	w.mu.Unlock()

	// Signal stop
	close(w.stopCh)

	// Wait for watcher to stop
	<-w.doneCh

	// Stop debouncer
	w.debounce.Stop()

	// Close fsnotify watcher
	if err := w.watcher.Close(); err != nil {
		return fmt.Errorf("failed to close watcher: %w", err)
	}

	return nil
}

// addPath adds a file or directory to the watcher.
func (w *Watcher) addPath(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return err
	}

	if info.IsDir() {
		// Watch directory and all subdirectories
		return w.addDirectory(path)
	}

	// Single file: watch the parent directory and remember which file
	// we care about, so rename-style saves keep delivering events.
	abs, err := filepath.Abs(path)
	if err != nil {
		return err
	}
	w.file = abs

	return w.watcher.Add(filepath.Dir(abs))
}

// addDirectory adds a directory and all subdirectories to the watcher.
func (w *Watcher) addDirectory(dir string) error {
	return filepath.Walk(dir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}

		// Skip hidden files/directories if configured
		if w.config.SkipHidden && strings.HasPrefix(filepath.Base(path), ".") && path != dir {
			if info.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}

		// Only watch directories
		if info.IsDir() {
			if err := w.watcher.Add(path); err != nil {
				return fmt.Errorf("failed to watch directory %q: %w", path, err)
			}
			w.logger.Debug("Watching directory", "path", path)
		}

		return nil
	})
}

// shouldProcessEvent determines if an event should trigger a rebuild.
func (w *Watcher) shouldProcessEvent(event fsnotify.Event) bool {
	// Skip events we don't care about
	if event.Op&fsnotify.Chmod == fsnotify.Chmod {
		return false
	}

	// Single-file mode: only events for that file count.
	if w.file != "" {
		abs, err := filepath.Abs(event.Name)
		if err != nil {
			return false
		}
		return abs == w.file
	}

	// Check file extension
	ext := strings.ToLower(filepath.Ext(event.Name))
	if !w.hasValidExtension(ext) {
		return false
	}

	// Skip hidden files if configured
	if w.config.SkipHidden && strings.HasPrefix(filepath.Base(event.Name), ".") {
		return false
	}

	return true
}

// hasValidExtension checks if a file extension should be watched.
func (w *Watcher) hasValidExtension(ext string) bool {
	for _, validExt := range w.config.Extensions {
		if ext == strings.ToLower(validExt) {
			return true
		}
	}
	return false
}

// Debouncer implements event debouncing to prevent rebuild storms.
// It collects rapid events and triggers the callback only after a quiet period.
type Debouncer struct {
	interval time.Duration
	timer    *time.Timer
	mu       sync.Mutex
	callback func()
	stopCh   chan struct{}
}

// NewDebouncer creates a new debouncer.
func NewDebouncer(interval time.Duration) *Debouncer {
	return &Debouncer{
		interval: interval,
		stopCh:   make(chan struct{}),
	}
}

// Trigger triggers the debouncer with a new event.
// The callback will be called after the debounce interval if no new events occur.
func (d *Debouncer) Trigger(callback func()) {
	d.mu.Lock()
	defer d.mu.Unlock()

	// Store the callback
	d.callback = callback

	// Reset or create timer
	if d.timer != nil {
		d.timer.Stop()
	}

	d.timer = time.AfterFunc(d.interval, func() {
		select {
		case <-d.stopCh:
			return
		default:
			d.mu.Lock()
			cb := d.callback
			d.mu.Unlock()

			if cb != nil {
				cb()
			}
		}
	})
}

// Stop stops the debouncer and cancels any pending callbacks.
func (d *Debouncer) Stop() {
	close(d.stopCh)

	d.mu.Lock()
	defer d.mu.Unlock()

	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
	d.callback = nil
}
