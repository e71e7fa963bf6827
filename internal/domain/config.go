package domain

// Config mirrors ~/.xterm/config.yaml.
type Config struct {
	ConfigFormatVersion string              `yaml:"config_format_version"`
	History             HistorySettings     `yaml:"history"`
	Autocorrect         AutocorrectSettings `yaml:"autocorrect"`
	Execution           ExecutionSettings   `yaml:"execution"`
	Prompt              PromptSettings      `yaml:"prompt"`
	Icons               map[string]string   `yaml:"icons"`
	Logging             LoggingSettings     `yaml:"logging"`
}

// HistorySettings bounds the in-memory command history.
type HistorySettings struct {
	Size int `yaml:"size"`
}

// AutocorrectSettings controls the "did you mean" confirmation.
type AutocorrectSettings struct {
	Enabled   bool `yaml:"enabled"`
	Threshold int  `yaml:"threshold"`
}

// ExecutionSettings controls how external commands run.
type ExecutionSettings struct {
	Shell  string `yaml:"shell"`
	UsePTY bool   `yaml:"use_pty"`
}

// PromptSettings configures what the session draws around the input line.
type PromptSettings struct {
	ShowBanner  bool   `yaml:"show_banner"`
	Toolbar     string `yaml:"toolbar"`
	HomeIconKey string `yaml:"home_icon_key"`
}

// LoggingSettings configures the session log file.
type LoggingSettings struct {
	File  string `yaml:"file"`
	Level string `yaml:"level"`
}

// ResolvedShell returns the configured shell, or "" when detection is left to the executor.
func (e ExecutionSettings) ResolvedShell() string {
	if e.Shell == ShellAutoDetect {
		return ""
	}
	return e.Shell
}
