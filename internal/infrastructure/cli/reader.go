package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/chzyer/readline"
	"golang.org/x/term"

	"github.com/doeshing/xterm-go/internal/domain"
	"github.com/doeshing/xterm-go/internal/ports"
)

// ReaderOptions configures the interactive line editor.
type ReaderOptions struct {
	Completer    readline.AutoCompleter
	Hinter       *HistoryHinter
	HistoryLimit int
}

// NewLineReader returns a readline-backed editor when stdin is a terminal and
// a plain line reader otherwise (pipes, scripts, tests).
func NewLineReader(opts ReaderOptions) (ports.LineReader, error) {
	if !term.IsTerminal(int(os.Stdin.Fd())) {
		return NewPlainReader(os.Stdin, os.Stdout), nil
	}
	cfg := &readline.Config{
		AutoComplete:           opts.Completer,
		HistoryLimit:           opts.HistoryLimit,
		DisableAutoSaveHistory: true,
		HistorySearchFold:      true,
		InterruptPrompt:        "^C",
	}
	if opts.Hinter != nil {
		cfg.Painter = opts.Hinter
		cfg.Listener = opts.Hinter
	}
	rl, err := readline.NewEx(cfg)
	if err != nil {
		return nil, fmt.Errorf("init readline: %w", err)
	}
	return &ReadlineReader{rl: rl}, nil
}

// ReadlineReader implements ports.LineReader over chzyer/readline.
type ReadlineReader struct {
	rl *readline.Instance
}

// ReadLine reads one command and records it in the editor's recall buffer.
func (r *ReadlineReader) ReadLine(prompt string) (string, error) {
	line, err := r.read(prompt)
	if err != nil {
		return "", err
	}
	if strings.TrimSpace(line) != "" {
		_ = r.rl.SaveHistory(line)
	}
	return line, nil
}

// Ask reads an answer without recording it.
func (r *ReadlineReader) Ask(prompt string) (string, error) {
	return r.read(prompt)
}

func (r *ReadlineReader) read(prompt string) (string, error) {
	r.rl.SetPrompt(prompt)
	line, err := r.rl.Readline()
	if errors.Is(err, readline.ErrInterrupt) {
		return "", domain.ErrInterrupted
	}
	if err != nil {
		return "", err
	}
	return line, nil
}

// SetVimMode switches between emacs and vi key bindings.
func (r *ReadlineReader) SetVimMode(on bool) {
	r.rl.SetVimMode(on)
}

// Close restores the terminal.
func (r *ReadlineReader) Close() error {
	return r.rl.Close()
}

// PlainReader reads newline-terminated input without line editing.
type PlainReader struct {
	in  *bufio.Reader
	out io.Writer
}

// NewPlainReader constructs a reader over in, writing prompts to out.
func NewPlainReader(in io.Reader, out io.Writer) *PlainReader {
	if in == nil {
		in = os.Stdin
	}
	if out == nil {
		out = os.Stdout
	}
	return &PlainReader{in: bufio.NewReader(in), out: out}
}

// ReadLine prints prompt and returns the next line without its terminator.
// A final unterminated line is returned before io.EOF.
func (r *PlainReader) ReadLine(prompt string) (string, error) {
	fmt.Fprint(r.out, prompt)
	line, err := r.in.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && line != "" {
			return strings.TrimRight(line, "\r\n"), nil
		}
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// Ask behaves like ReadLine.
func (r *PlainReader) Ask(prompt string) (string, error) {
	return r.ReadLine(prompt)
}

// SetVimMode is a no-op without a line editor.
func (r *PlainReader) SetVimMode(bool) {}

// Close is a no-op.
func (r *PlainReader) Close() error {
	return nil
}

var (
	_ ports.LineReader = (*ReadlineReader)(nil)
	_ ports.LineReader = (*PlainReader)(nil)
)
