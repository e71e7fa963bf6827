// Package classify decides how each line of command output is rendered.
package classify

import (
	"strings"
	"unicode"

	"github.com/doeshing/xterm-go/internal/domain"
)

// directoryMarker is the first column of a directory row in `ls -l` output.
const directoryMarker = "d"

// Classifier tags output lines as plain text or directory entries.
//
// The rule is a line-prefix heuristic: any line starting with "d" is treated
// as a long-listing directory row, so plain text such as "done" is decorated
// too.
type Classifier struct {
	Icons IconSet
}

// NewClassifier builds a classifier resolving icons from icons.
func NewClassifier(icons IconSet) Classifier {
	return Classifier{Icons: icons}
}

// Classify inspects one raw output line, trailing newline included.
func (c Classifier) Classify(line string) domain.Classification {
	text := strings.TrimRightFunc(line, unicode.IsSpace)
	if !strings.HasPrefix(text, directoryMarker) {
		return domain.Classification{Kind: domain.LinePlain, Text: text}
	}
	return domain.Classification{
		Kind: domain.LineDirectoryEntry,
		Text: text,
		Icon: c.Icons.Lookup(text),
	}
}
