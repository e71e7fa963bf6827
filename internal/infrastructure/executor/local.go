// Package executor runs external commands through the host shell and
// streams their output back line by line.
package executor

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"syscall"
	"time"

	"github.com/doeshing/xterm-go/internal/domain"
	"github.com/doeshing/xterm-go/internal/ports"
)

// LocalExecutor runs commands on the host shell.
type LocalExecutor struct {
	shell  string
	usePTY bool
	stdin  io.Reader
}

// NewLocalExecutor builds a new executor, shell defaults to $SHELL, then /bin/sh.
// With usePTY the child writes to a pseudo-terminal instead of a pipe.
func NewLocalExecutor(shell string, usePTY bool) *LocalExecutor {
	if shell == "" {
		shell = os.Getenv("SHELL")
	}
	if shell == "" {
		shell = "/bin/sh"
	}
	return &LocalExecutor{shell: shell, usePTY: usePTY, stdin: os.Stdin}
}

// Shell returns the interpreter commands are passed to.
func (e *LocalExecutor) Shell() string {
	return e.shell
}

// Stream implements ports.CommandExecutor. Stdout and stderr share one
// stream, so lines arrive in the order the child wrote them.
func (e *LocalExecutor) Stream(ctx context.Context, command string, handle ports.LineHandler) (domain.ExecutionResult, error) {
	result := domain.ExecutionResult{Command: command}

	c := exec.CommandContext(ctx, e.shell, "-c", command)
	start := time.Now()

	var out io.ReadCloser
	var err error
	if e.usePTY {
		out, err = startPTY(c)
	} else {
		out, err = startPiped(c, e.stdin)
	}
	if err != nil {
		result.ExitCode = -1
		return result, &domain.CommandError{Command: command, ExitCode: -1, Err: fmt.Errorf("start %s: %w", e.shell, err)}
	}

	// Killing the shell does not close the stream while a grandchild still
	// holds the write end, so cancellation closes our side instead.
	stop := context.AfterFunc(ctx, func() { _ = out.Close() })
	lines, readErr := pump(out, handle)
	stop()
	_ = out.Close()
	waitErr := c.Wait()

	result.Lines = lines
	result.Duration = time.Since(start)
	result.Ran = waitErr == nil && readErr == nil

	if ctxErr := ctx.Err(); ctxErr != nil {
		result.Ran = false
		result.ExitCode = -1
		return result, &domain.CommandError{Command: command, ExitCode: -1, Err: ctxErr}
	}
	if readErr != nil {
		return result, readErr
	}
	var exitErr *exec.ExitError
	if errors.As(waitErr, &exitErr) {
		result.ExitCode = exitCode(exitErr)
		return result, &domain.CommandError{Command: command, ExitCode: result.ExitCode, Err: waitErr}
	}
	if waitErr != nil {
		result.ExitCode = -1
		return result, &domain.CommandError{Command: command, ExitCode: -1, Err: waitErr}
	}
	return result, nil
}

// exitCode follows the shell convention of 128+N for a child killed by signal N.
func exitCode(err *exec.ExitError) int {
	if status, ok := err.Sys().(syscall.WaitStatus); ok && status.Signaled() {
		return 128 + int(status.Signal())
	}
	return err.ExitCode()
}

// startPiped gives the child one pipe for both stdout and stderr.
func startPiped(c *exec.Cmd, stdin io.Reader) (io.ReadCloser, error) {
	r, w, err := os.Pipe()
	if err != nil {
		return nil, err
	}
	c.Stdin = stdin
	c.Stdout = w
	c.Stderr = w
	if err := c.Start(); err != nil {
		_ = r.Close()
		_ = w.Close()
		return nil, err
	}
	// The child holds its own copy; closing ours lets EOF arrive when it exits.
	_ = w.Close()
	return r, nil
}

// pump hands each line to handle as soon as it is read. A final line
// without a trailing newline is still delivered.
func pump(out io.Reader, handle ports.LineHandler) (int, error) {
	reader := bufio.NewReader(out)
	count := 0
	for {
		line, err := reader.ReadString('\n')
		if line != "" {
			count++
			if herr := handle(line); herr != nil {
				return count, herr
			}
		}
		if err == io.EOF {
			return count, nil
		}
		if err != nil {
			return count, fmt.Errorf("read output: %w", err)
		}
	}
}

var _ ports.CommandExecutor = (*LocalExecutor)(nil)
