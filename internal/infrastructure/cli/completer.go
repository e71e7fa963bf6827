package cli

import (
	"github.com/chzyer/readline"
)

// CompletionSource returns the history entries that start with prefix.
type CompletionSource interface {
	Complete(prefix string) []string
}

// HistoryCompleter offers session history entries as tab completions.
type HistoryCompleter struct {
	source CompletionSource
}

// NewHistoryCompleter wraps source for readline.
func NewHistoryCompleter(source CompletionSource) *HistoryCompleter {
	return &HistoryCompleter{source: source}
}

// Do returns the remainder of every matching entry after the text left of
// the cursor, plus the length of that text. Duplicates and exact matches are
// dropped.
func (c *HistoryCompleter) Do(line []rune, pos int) ([][]rune, int) {
	if pos > len(line) {
		pos = len(line)
	}
	prefix := line[:pos]
	matches := c.source.Complete(string(prefix))

	seen := make(map[string]struct{}, len(matches))
	out := make([][]rune, 0, len(matches))
	for _, match := range matches {
		suffix := []rune(match)[len(prefix):]
		if len(suffix) == 0 {
			continue
		}
		key := string(suffix)
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, suffix)
	}
	return out, len(prefix)
}

var _ readline.AutoCompleter = (*HistoryCompleter)(nil)
