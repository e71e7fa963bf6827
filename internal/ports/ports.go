// Package ports defines the interfaces (ports) for the hexagonal architecture.
//
// The session core (history, autocorrect, classification, dispatch) only talks
// to the outside world through these interfaces. Concrete adapters for the
// terminal, the host shell, the filesystem and the text analyzer live in the
// infrastructure layer and are wired together by internal/app.
package ports

import (
	"context"

	"github.com/doeshing/xterm-go/internal/domain"
)

// ConfigProvider loads the latest configuration from persistent storage.
// Implementations typically read from ~/.xterm/config.yaml.
type ConfigProvider interface {
	Load(context.Context) (domain.Config, error)
}

// LineHandler receives one line of command output, trailing newline included.
type LineHandler func(line string) error

// CommandExecutor runs a literal command string through the host shell and
// streams its merged stdout/stderr to handle as lines arrive. It returns once
// the child has closed its output and exited.
type CommandExecutor interface {
	Stream(ctx context.Context, command string, handle LineHandler) (domain.ExecutionResult, error)
}

// DirectoryChanger moves the process working directory.
// An empty path means the user's home directory.
type DirectoryChanger interface {
	Change(path string) error
	Getwd() (string, error)
}

// TextAnalyzer tokenizes and tags free text for the nlp builtin.
type TextAnalyzer interface {
	Analyze(ctx context.Context, text string) (domain.Analysis, error)
}

// SystemInfo draws the host's system summary directly on the terminal.
type SystemInfo interface {
	Show(ctx context.Context) error
}

// ConfirmationPrompter asks the user a yes/no question.
type ConfirmationPrompter interface {
	Confirm(question string) (bool, error)
}

// LineReader reads interactive input. ReadLine returns io.EOF on end of input
// and domain.ErrInterrupted on Ctrl+C. Ask reads a one-off answer that is not
// recorded in the editor's recall history.
type LineReader interface {
	ReadLine(prompt string) (string, error)
	Ask(prompt string) (string, error)
	SetVimMode(on bool)
	Close() error
}

// Renderer draws session output on the user's terminal.
type Renderer interface {
	Banner(toolbar string)
	Line(domain.Classification)
	Analysis(domain.Analysis)
	Info(msg string)
	Warn(msg string)
	Error(msg string)
}

// Logger provides structured logging abstraction for the application layer.
// Implementations can route to different backends (stdout, files, external services).
type Logger interface {
	Debug(msg string, fields map[string]interface{})
	Info(msg string, fields map[string]interface{})
	Warn(msg string, fields map[string]interface{})
	Error(msg string, err error, fields map[string]interface{})
}
