package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrNoCandidates is returned when a best match is requested from an empty candidate list.
	ErrNoCandidates = errors.New("no candidates to match against")
	// ErrDirectoryNotFound reports a cd target that does not exist.
	ErrDirectoryNotFound = errors.New("directory not found")
	// ErrInvalidCd reports a cd with more than one argument.
	ErrInvalidCd = errors.New("invalid cd command")
	// ErrInterrupted is returned by line readers on Ctrl+C.
	ErrInterrupted = errors.New("interrupted")
)

// CommandError describes an external command that ran but did not succeed.
type CommandError struct {
	Command  string
	ExitCode int
	Err      error
}

func (e *CommandError) Error() string {
	if e.ExitCode > 0 {
		return fmt.Sprintf("command exited with code %d", e.ExitCode)
	}
	return fmt.Sprintf("command failed: %v", e.Err)
}

func (e *CommandError) Unwrap() error {
	return e.Err
}
