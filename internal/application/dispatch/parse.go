// Package dispatch routes a finalized input line to a builtin or the host shell.
package dispatch

import (
	"strings"

	"github.com/doeshing/xterm-go/internal/domain"
)

// Parse classifies line into exactly one command kind. The checks run in a
// fixed order and the first hit wins; anything unmatched is external.
func Parse(line string) domain.Command {
	switch {
	case strings.EqualFold(line, "exit"):
		return domain.Command{Kind: domain.CommandExit, Raw: line}
	case strings.HasPrefix(line, "cd"):
		// Split on single spaces: "cd  x" carries an empty argument.
		return domain.Command{Kind: domain.CommandChangeDir, Raw: line, Args: strings.Split(line, " ")[1:]}
	case line == "vim":
		return domain.Command{Kind: domain.CommandToggleVim, Raw: line}
	case line == "neofetch":
		return domain.Command{Kind: domain.CommandSystemInfo, Raw: line}
	case strings.HasPrefix(line, "nlp"):
		return domain.Command{Kind: domain.CommandAnalyze, Raw: line}
	default:
		return domain.Command{Kind: domain.CommandExternal, Raw: line}
	}
}
