package domain

import "time"

// LineKind is the rendering rule chosen for one line of command output.
type LineKind int

const (
	LinePlain LineKind = iota
	LineDirectoryEntry
)

func (k LineKind) String() string {
	if k == LineDirectoryEntry {
		return "directory-entry"
	}
	return "plain"
}

// Classification is the per-line render decision. Icon is only set for directory entries.
type Classification struct {
	Kind LineKind
	Text string
	Icon string
}

// ExecutionResult summarizes a finished external command.
type ExecutionResult struct {
	Command  string
	Ran      bool
	ExitCode int
	Lines    int
	Duration time.Duration
}
