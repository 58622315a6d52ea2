package cli

import (
	"testing"
	"time"
)

func TestSetupSignalHandler(t *testing.T) {
	ctx := SetupSignalHandler()

	// Context should not be cancelled initially
	select {
	case <-ctx.Done():
		t.Error("Context should not be cancelled initially")
	default:
		// Expected
	}

	// Context should have a Done channel
	if ctx.Done() == nil {
		t.Error("Context should have a Done channel")
	}
}

func TestSetupSignalHandlerStaysActive(t *testing.T) {
	ctx := SetupSignalHandler()

	select {
	case <-ctx.Done():
		t.Error("Context cancelled too early")
	case <-time.After(10 * time.Millisecond):
		// Expected - context should still be active
	}
}

func TestContextCancellationFlow(t *testing.T) {
	// Watch mode blocks on this context; make sure a goroutine can wait
	// on it the way the watcher does.
	ctx := SetupSignalHandler()

	watcherDone := make(chan bool)

	go func() {
		<-ctx.Done()
		watcherDone <- true
	}()

	select {
	case <-watcherDone:
		t.Error("Watcher should not be done yet")
	case <-time.After(10 * time.Millisecond):
		// Expected
	}
}
