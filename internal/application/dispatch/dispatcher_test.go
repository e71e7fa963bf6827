package dispatch

import (
	"context"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/doeshing/xterm-go/internal/application/classify"
	"github.com/doeshing/xterm-go/internal/domain"
	"github.com/doeshing/xterm-go/internal/pkg/logger"
	"github.com/doeshing/xterm-go/internal/ports"
)

func TestDispatchChangeDirectory(t *testing.T) {
	tests := []struct {
		name    string
		line    string
		wantErr error
		want    []string
	}{
		{name: "no argument goes home", line: "cd", want: []string{""}},
		{name: "single argument", line: "cd /tmp", want: []string{"/tmp"}},
		{name: "cd prefix without space goes home", line: "cdrom", want: []string{""}},
		{name: "too many arguments", line: "cd /tmp /var", wantErr: domain.ErrInvalidCd},
		{name: "missing directory", line: "cd /nonexistent", wantErr: domain.ErrDirectoryNotFound, want: []string{"/nonexistent"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := &stubDirectory{missing: map[string]bool{"/nonexistent": true}}
			d := newTestDispatcher(dir, &stubExecutor{}, &stubRenderer{})

			_, err := d.Dispatch(context.Background(), Parse(tt.line))
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("Dispatch(%q) error = %v, want %v", tt.line, err, tt.wantErr)
			}
			if diff := cmp.Diff(tt.want, dir.changes); diff != "" {
				t.Fatalf("Change calls mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestDispatchStreamsExternalOutput(t *testing.T) {
	exec := &stubExecutor{lines: []string{"drwxr-xr-x  docs\n", "hello.txt\n"}}
	renderer := &stubRenderer{}
	d := newTestDispatcher(&stubDirectory{}, exec, renderer)

	out, err := d.Dispatch(context.Background(), Parse("ls -l"))
	if err != nil {
		t.Fatalf("Dispatch error: %v", err)
	}
	if exec.command != "ls -l" {
		t.Fatalf("executor got %q", exec.command)
	}
	if out.Result == nil || out.Result.Lines != 2 {
		t.Fatalf("unexpected result %+v", out.Result)
	}

	want := []domain.Classification{
		{Kind: domain.LineDirectoryEntry, Text: "drwxr-xr-x  docs", Icon: "📁"},
		{Kind: domain.LinePlain, Text: "hello.txt"},
	}
	if diff := cmp.Diff(want, renderer.lines); diff != "" {
		t.Fatalf("rendered lines mismatch (-want +got):\n%s", diff)
	}
}

func TestDispatchReportsExecutorFailure(t *testing.T) {
	failure := &domain.CommandError{Command: "false", ExitCode: 1}
	d := newTestDispatcher(&stubDirectory{}, &stubExecutor{err: failure}, &stubRenderer{})

	_, err := d.Dispatch(context.Background(), Parse("false"))
	var cmdErr *domain.CommandError
	if !errors.As(err, &cmdErr) || cmdErr.ExitCode != 1 {
		t.Fatalf("expected CommandError with exit code 1, got %v", err)
	}
}

func TestDispatchBuiltinOutcomes(t *testing.T) {
	d := newTestDispatcher(&stubDirectory{}, &stubExecutor{}, &stubRenderer{})

	out, err := d.Dispatch(context.Background(), Parse("vim"))
	if err != nil || !out.ToggleVim {
		t.Fatalf("vim: outcome %+v err %v", out, err)
	}

	out, err = d.Dispatch(context.Background(), Parse("exit"))
	if err != nil || !out.Exit {
		t.Fatalf("exit: outcome %+v err %v", out, err)
	}
}

func TestDispatchAnalyze(t *testing.T) {
	renderer := &stubRenderer{}
	analyzer := &stubAnalyzer{analysis: domain.Analysis{Tokens: []string{"nlp", "hi"}}}
	d := newTestDispatcher(&stubDirectory{}, &stubExecutor{}, renderer)
	d.Analyzer = analyzer

	if _, err := d.Dispatch(context.Background(), Parse("nlp hi")); err != nil {
		t.Fatalf("Dispatch error: %v", err)
	}
	if analyzer.text != "nlp hi" {
		t.Fatalf("analyzer should receive the full line, got %q", analyzer.text)
	}
	if len(renderer.analyses) != 1 {
		t.Fatalf("expected one rendered analysis, got %d", len(renderer.analyses))
	}
}

func TestDispatchSystemInfo(t *testing.T) {
	info := &stubSystemInfo{}
	d := newTestDispatcher(&stubDirectory{}, &stubExecutor{}, &stubRenderer{})
	d.SystemInfo = info

	if _, err := d.Dispatch(context.Background(), Parse("neofetch")); err != nil {
		t.Fatalf("Dispatch error: %v", err)
	}
	if !info.shown {
		t.Fatal("system info was not shown")
	}

	d.SystemInfo = nil
	if _, err := d.Dispatch(context.Background(), Parse("neofetch")); err == nil {
		t.Fatal("expected error without system info collaborator")
	}
}

func newTestDispatcher(dir ports.DirectoryChanger, exec ports.CommandExecutor, renderer ports.Renderer) *Dispatcher {
	return &Dispatcher{
		Directory:  dir,
		Executor:   exec,
		Classifier: classify.NewClassifier(classify.NewIconSet(nil)),
		Renderer:   renderer,
		Logger:     logger.NewNop(),
	}
}

type stubDirectory struct {
	missing map[string]bool
	changes []string
}

func (s *stubDirectory) Change(path string) error {
	s.changes = append(s.changes, path)
	if s.missing[path] {
		return domain.ErrDirectoryNotFound
	}
	return nil
}

func (s *stubDirectory) Getwd() (string, error) { return "/", nil }

func TestDispatchTreatsInterruptedCommandAsClean(t *testing.T) {
	interrupted := &domain.CommandError{Command: "sleep 10", ExitCode: domain.InterruptedExitCode}
	exec := &stubExecutor{lines: []string{"partial\n"}, err: interrupted}
	renderer := &stubRenderer{}
	d := newTestDispatcher(&stubDirectory{}, exec, renderer)

	outcome, err := d.Dispatch(context.Background(), Parse("sleep 10"))
	if err != nil {
		t.Fatalf("interrupted command should not be reported, got %v", err)
	}
	if outcome.Exit || outcome.Result == nil {
		t.Fatalf("unexpected outcome %+v", outcome)
	}
	if len(renderer.lines) != 1 {
		t.Fatalf("output before the interrupt should stay, got %v", renderer.lines)
	}
}

type stubExecutor struct {
	lines   []string
	err     error
	command string
}

func (s *stubExecutor) Stream(_ context.Context, command string, handle ports.LineHandler) (domain.ExecutionResult, error) {
	s.command = command
	for _, line := range s.lines {
		if err := handle(line); err != nil {
			return domain.ExecutionResult{}, err
		}
	}
	return domain.ExecutionResult{Command: command, Ran: s.err == nil, Lines: len(s.lines)}, s.err
}

type stubAnalyzer struct {
	analysis domain.Analysis
	text     string
}

func (s *stubAnalyzer) Analyze(_ context.Context, text string) (domain.Analysis, error) {
	s.text = text
	return s.analysis, nil
}

type stubSystemInfo struct{ shown bool }

func (s *stubSystemInfo) Show(context.Context) error {
	s.shown = true
	return nil
}

type stubRenderer struct {
	lines    []domain.Classification
	analyses []domain.Analysis
}

func (s *stubRenderer) Banner(string)                {}
func (s *stubRenderer) Line(c domain.Classification) { s.lines = append(s.lines, c) }
func (s *stubRenderer) Analysis(a domain.Analysis)   { s.analyses = append(s.analyses, a) }
func (s *stubRenderer) Info(string)                  {}
func (s *stubRenderer) Warn(string)                  {}
func (s *stubRenderer) Error(string)                 {}
