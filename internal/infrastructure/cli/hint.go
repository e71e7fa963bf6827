package cli

import (
	"fmt"

	"github.com/chzyer/readline"
	"github.com/fatih/color"
)

// HistoryHinter shows the newest history entry that extends the typed text
// as faint text after the cursor. Right arrow at the end of the line accepts
// it.
type HistoryHinter struct {
	source CompletionSource
	style  *color.Color
}

// NewHistoryHinter builds a hinter over source.
func NewHistoryHinter(source CompletionSource) *HistoryHinter {
	return &HistoryHinter{source: source, style: color.New(color.Faint)}
}

// Suggest returns the text that would complete line, or nil. Hints are only
// offered with the cursor at the end of a non-empty line.
func (h *HistoryHinter) Suggest(line []rune, pos int) []rune {
	if len(line) == 0 || pos != len(line) {
		return nil
	}
	matches := h.source.Complete(string(line))
	for i := len(matches) - 1; i >= 0; i-- {
		if suffix := []rune(matches[i])[len(line):]; len(suffix) > 0 {
			return suffix
		}
	}
	return nil
}

// Paint implements readline.Painter. The cursor is moved back over the hint
// so editing continues at the end of the typed text.
func (h *HistoryHinter) Paint(line []rune, pos int) []rune {
	hint := h.Suggest(line, pos)
	if hint == nil {
		return line
	}
	painted := make([]rune, 0, len(line)+len(hint)+16)
	painted = append(painted, line...)
	painted = append(painted, []rune(h.style.Sprint(string(hint)))...)
	painted = append(painted, []rune(fmt.Sprintf("\033[%dD", readline.Runes{}.WidthAll(hint)))...)
	return painted
}

// OnChange implements readline.Listener and fills in the hint on right arrow.
func (h *HistoryHinter) OnChange(line []rune, pos int, key rune) ([]rune, int, bool) {
	if key != readline.CharForward {
		return nil, 0, false
	}
	hint := h.Suggest(line, pos)
	if hint == nil {
		return nil, 0, false
	}
	accepted := append(append([]rune{}, line...), hint...)
	return accepted, len(accepted), true
}

var (
	_ readline.Painter  = (*HistoryHinter)(nil)
	_ readline.Listener = (*HistoryHinter)(nil)
)
