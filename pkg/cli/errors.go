package cli

import "fmt"

// UsageError represents an invalid command invocation, such as a missing
// or conflicting flag. The root command shows usage help for these.
type UsageError struct {
	Message string
}

func (e *UsageError) Error() string {
	return e.Message
}

// CommandError represents an error from a command execution.
type CommandError struct {
	Command string
	Err     error
}

func (e *CommandError) Error() string {
	return fmt.Sprintf("command %s failed: %v", e.Command, e.Err)
}

func (e *CommandError) Unwrap() error {
	return e.Err
}

// NewUsageError creates a new UsageError.
func NewUsageError(format string, args ...any) *UsageError {
	return &UsageError{
		Message: fmt.Sprintf(format, args...),
	}
}

// NewCommandError creates a new CommandError.
func NewCommandError(command string, err error) *CommandError {
	return &CommandError{
		Command: command,
		Err:     err,
	}
}
