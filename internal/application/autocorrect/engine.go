package autocorrect

import (
	"fmt"

	"github.com/doeshing/xterm-go/internal/ports"
)

// Engine asks the user to confirm a close history match before it replaces
// the typed command.
type Engine struct {
	Threshold int
	Prompter  ports.ConfirmationPrompter
	Logger    ports.Logger
}

// NewEngine builds an engine that suggests matches scoring at least threshold.
func NewEngine(threshold int, logger ports.Logger) *Engine {
	return &Engine{Threshold: threshold, Logger: logger}
}

// Correct returns the command to dispatch for typed. Candidates must be
// non-empty; callers check first, and an empty list returns
// domain.ErrNoCandidates with typed unchanged.
func (e *Engine) Correct(typed string, candidates []string) (string, error) {
	match, err := BestMatch(typed, candidates)
	if err != nil {
		return typed, err
	}
	e.debug("autocorrect best match", map[string]interface{}{
		"typed":     typed,
		"candidate": match.Candidate,
		"score":     match.Score,
	})
	if match.Score < e.Threshold || e.Prompter == nil {
		return typed, nil
	}

	accepted, err := e.Prompter.Confirm(fmt.Sprintf("Did you mean '%s' instead of '%s'?", match.Candidate, typed))
	if err != nil {
		return typed, fmt.Errorf("confirm correction: %w", err)
	}
	if !accepted {
		return typed, nil
	}
	return match.Candidate, nil
}

func (e *Engine) debug(msg string, fields map[string]interface{}) {
	if e.Logger != nil {
		e.Logger.Debug(msg, fields)
	}
}
