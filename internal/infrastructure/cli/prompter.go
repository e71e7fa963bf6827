package cli

import (
	"strings"

	"github.com/doeshing/xterm-go/internal/ports"
)

// Prompter implements ConfirmationPrompter on top of the session's line reader.
type Prompter struct {
	reader ports.LineReader
}

// NewPrompter constructs a prompter sharing the session's reader.
func NewPrompter(reader ports.LineReader) *Prompter {
	return &Prompter{reader: reader}
}

// Confirm asks question and accepts y or yes in any case.
func (p *Prompter) Confirm(question string) (bool, error) {
	line, err := p.reader.Ask(question + " (y/n) ")
	if err != nil {
		return false, err
	}
	line = strings.ToLower(strings.TrimSpace(line))
	return line == "y" || line == "yes", nil
}

var _ ports.ConfirmationPrompter = (*Prompter)(nil)
