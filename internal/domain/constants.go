package domain

// File permissions constants
const (
	// DirectoryPermissions is the default permission for directories (rwxr-xr-x)
	DirectoryPermissions = 0o755
	// SecureFilePermissions is the permission for sensitive files (rw-------)
	SecureFilePermissions = 0o600
)

// History and autocorrect defaults
const (
	// DefaultHistorySize is how many recent commands the session remembers
	DefaultHistorySize = 5
	// DefaultAutocorrectThreshold is the minimum similarity score that triggers a suggestion
	DefaultAutocorrectThreshold = 80
	// MaxSimilarityScore is the upper bound of the similarity scale
	MaxSimilarityScore = 100
)

// Icon keys
const (
	DefaultIconKey = "default"
	HomeIconKey    = "home"
)

// Execution constants
const (
	// ShellAutoDetect defers shell selection to $SHELL, then /bin/sh
	ShellAutoDetect = "auto"
	// InterruptedExitCode is what shells report for a child killed by SIGINT
	InterruptedExitCode = 130
)

// Log levels accepted in config
const (
	LogLevelDebug = "debug"
	LogLevelInfo  = "info"
	LogLevelWarn  = "warn"
	LogLevelError = "error"
)
