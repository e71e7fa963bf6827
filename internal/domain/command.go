package domain

// CommandKind tags a submitted line with the handler that owns it.
type CommandKind int

const (
	// CommandExternal is handed to the host shell.
	CommandExternal CommandKind = iota
	CommandExit
	CommandChangeDir
	CommandToggleVim
	CommandSystemInfo
	CommandAnalyze
)

func (k CommandKind) String() string {
	switch k {
	case CommandExit:
		return "exit"
	case CommandChangeDir:
		return "cd"
	case CommandToggleVim:
		return "vim"
	case CommandSystemInfo:
		return "neofetch"
	case CommandAnalyze:
		return "nlp"
	default:
		return "external"
	}
}

// Command is one parsed input line.
type Command struct {
	Kind CommandKind
	// Raw is the line exactly as it will be dispatched.
	Raw string
	// Args holds the space-separated arguments after the builtin name (cd only).
	Args []string
}
