// Package session runs the interactive prompt, read, correct, dispatch loop.
package session

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/doeshing/xterm-go/internal/application/autocorrect"
	"github.com/doeshing/xterm-go/internal/application/dispatch"
	"github.com/doeshing/xterm-go/internal/application/history"
	"github.com/doeshing/xterm-go/internal/domain"
	"github.com/doeshing/xterm-go/internal/ports"
)

// promptSuffix ends every prompt line.
const promptSuffix = " >>> "

// Service owns the session state: the command history and the mirror of
// the working directory. Collaborators report back and the service applies
// the changes.
type Service struct {
	Reader      ports.LineReader
	Renderer    ports.Renderer
	Directory   ports.DirectoryChanger
	History     *history.Store
	Autocorrect *autocorrect.Engine
	Dispatcher  *dispatch.Dispatcher
	Logger      ports.Logger

	HomeIcon   string
	Toolbar    string
	ShowBanner bool

	cwd     string
	vimMode bool
}

// Run loops until exit, end of input, interrupt or ctx cancellation. All of
// those are clean terminations and return nil.
func (s *Service) Run(ctx context.Context) error {
	if s.Reader == nil || s.Renderer == nil || s.Directory == nil || s.History == nil ||
		s.Dispatcher == nil || s.Logger == nil {
		return errors.New("session.Service dependencies not satisfied")
	}

	if s.ShowBanner {
		s.Renderer.Banner(s.Toolbar)
	}
	s.Logger.Info("session started", map[string]interface{}{"history_size": s.History.Cap()})

	for {
		if ctx.Err() != nil {
			s.Logger.Info("session cancelled", nil)
			return nil
		}
		done, err := s.step(ctx)
		if err != nil {
			return err
		}
		if done {
			s.Logger.Info("session ended", nil)
			return nil
		}
	}
}

// Cwd is the working directory shown by the last prompt.
func (s *Service) Cwd() string {
	return s.cwd
}

// VimMode reports whether the line editor is in vi mode.
func (s *Service) VimMode() bool {
	return s.vimMode
}

// step runs one prompt to render cycle and reports whether the session is over.
func (s *Service) step(ctx context.Context) (bool, error) {
	line, err := s.Reader.ReadLine(s.prompt())
	if err != nil {
		if isTermination(err) {
			return true, nil
		}
		return false, fmt.Errorf("read input: %w", err)
	}

	line = strings.TrimSpace(line)
	if line == "" {
		return false, nil
	}
	if strings.EqualFold(line, "exit") {
		return true, nil
	}

	s.History.Append(line)

	command, err := s.correct(line)
	if err != nil {
		if isTermination(err) {
			return true, nil
		}
		s.Logger.Warn("autocorrect skipped", map[string]interface{}{"error": err.Error()})
	}

	outcome, err := s.Dispatcher.Dispatch(ctx, dispatch.Parse(command))
	if err != nil {
		if ctx.Err() != nil {
			return true, nil
		}
		s.Renderer.Error(err.Error())
	}
	if outcome.ToggleVim {
		s.toggleVim()
	}
	return outcome.Exit, nil
}

// correct consults autocorrect only when line is new relative to the older
// history entries, and only when there are older entries at all.
func (s *Service) correct(line string) (string, error) {
	if s.Autocorrect == nil {
		return line, nil
	}
	candidates := s.History.Previous()
	if len(candidates) == 0 || history.Contains(candidates, line) {
		return line, nil
	}
	return s.Autocorrect.Correct(line, candidates)
}

func (s *Service) prompt() string {
	if wd, err := s.Directory.Getwd(); err == nil {
		s.cwd = wd
	} else {
		s.Logger.Warn("getwd failed", map[string]interface{}{"error": err.Error()})
	}
	return s.HomeIcon + " " + s.cwd + promptSuffix
}

func (s *Service) toggleVim() {
	s.vimMode = !s.vimMode
	s.Reader.SetVimMode(s.vimMode)
	if s.vimMode {
		s.Renderer.Info("vim mode on")
	} else {
		s.Renderer.Info("vim mode off")
	}
}

func isTermination(err error) bool {
	return errors.Is(err, io.EOF) || errors.Is(err, domain.ErrInterrupted)
}
