package watch

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/robfig/cron/v3"
)

// Scheduler triggers rebuilds on a fixed cron schedule. It complements
// the event-driven Watcher for deployments where file system
// notifications do not fire reliably.
type Scheduler struct {
	schedule string
	cron     *cron.Cron
	mu       sync.Mutex
	logger   *slog.Logger
	running  bool
}

// NewScheduler creates a scheduler for the given cron expression.
func NewScheduler(schedule string, logger *slog.Logger) *Scheduler {
	if logger == nil {
		logger = slog.Default()
	}

	return &Scheduler{
		schedule: schedule,
		cron:     cron.New(),
		logger:   logger.With("component", "watch.scheduler"),
	}
}

// Start begins scheduled rebuilds based on the cron expression.
//
// Common cron expressions:
//   - "0 3 * * *"    - Daily at 3 AM
//   - "0 */6 * * *"  - Every 6 hours
//   - "*/5 * * * *"  - Every 5 minutes
//
// If the schedule is empty, Start does nothing and returns nil.
func (s *Scheduler) Start(ctx context.Context, onRebuild func() error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.schedule == "" {
		s.logger.Info("rebuild schedule not configured, skipping scheduler")
		return nil
	}

	// Validate cron expression
	if _, err := cron.ParseStandard(s.schedule); err != nil {
		return fmt.Errorf("invalid cron schedule %q: %w", s.schedule, err)
	}

	// Add cron job
	_, err := s.cron.AddFunc(s.schedule, func() {
		s.runRebuild(onRebuild)
	})

	if err != nil {
		return fmt.Errorf("failed to schedule rebuild: %w", err)
	}

	// Start cron scheduler
	s.cron.Start()
	s.running = true

	s.logger.Info("rebuild scheduler started",
		"schedule", s.schedule,
	)

	// Wait for context cancellation in background
	go func() {
		<-ctx.Done()
		s.Stop()
	}()

	return nil
}

// runRebuild executes one rebuild cycle.
func (s *Scheduler) runRebuild(onRebuild func() error) {
	s.logger.Info("starting scheduled rebuild")

	if err := onRebuild(); err != nil {
		s.logger.Error("scheduled rebuild failed",
			"error", err,
		)
		return
	}

	s.logger.Debug("scheduled rebuild completed")
}

// Stop stops the scheduler and waits for any running rebuild to complete.
func (s *Scheduler) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.cron != nil && s.running {
		ctx := s.cron.Stop()
		<-ctx.Done() // Wait for running jobs to finish
		s.running = false
		s.logger.Info("rebuild scheduler stopped")
	}
}

// IsRunning returns true if the scheduler is running.
func (s *Scheduler) IsRunning() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.running
}

// NextRun returns the next scheduled rebuild time.
func (s *Scheduler) NextRun() *time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.cron == nil {
		return nil
	}

	entries := s.cron.Entries()
	if len(entries) == 0 {
		return nil
	}

	next := entries[0].Next
	return &next
}
