package executor

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/creack/pty"
	"github.com/google/go-cmp/cmp"

	"github.com/doeshing/xterm-go/internal/domain"
)

func TestStreamDeliversLinesInOrder(t *testing.T) {
	exec := NewLocalExecutor("/bin/sh", false)
	var lines []string

	result, err := exec.Stream(context.Background(), "echo out; echo err 1>&2; printf tail", func(line string) error {
		lines = append(lines, line)
		return nil
	})
	if err != nil {
		t.Fatalf("Stream error: %v", err)
	}
	if diff := cmp.Diff([]string{"out\n", "err\n", "tail"}, lines); diff != "" {
		t.Fatalf("lines mismatch (-want +got):\n%s", diff)
	}
	if !result.Ran || result.ExitCode != 0 || result.Lines != 3 {
		t.Fatalf("unexpected result %+v", result)
	}
}

func TestStreamReportsExitCode(t *testing.T) {
	exec := NewLocalExecutor("/bin/sh", false)
	var lines []string

	result, err := exec.Stream(context.Background(), "echo partial; exit 3", func(line string) error {
		lines = append(lines, line)
		return nil
	})

	var cmdErr *domain.CommandError
	if !errors.As(err, &cmdErr) {
		t.Fatalf("expected CommandError, got %v", err)
	}
	if cmdErr.ExitCode != 3 || result.ExitCode != 3 || result.Ran {
		t.Fatalf("unexpected exit status: err=%+v result=%+v", cmdErr, result)
	}
	if cmdErr.Error() != "command exited with code 3" {
		t.Fatalf("unexpected message %q", cmdErr.Error())
	}
	if diff := cmp.Diff([]string{"partial\n"}, lines); diff != "" {
		t.Fatalf("output before failure should be kept (-want +got):\n%s", diff)
	}
}

func TestStreamLaunchFailure(t *testing.T) {
	exec := NewLocalExecutor("/nonexistent/shell", false)

	_, err := exec.Stream(context.Background(), "ls", func(string) error { return nil })
	var cmdErr *domain.CommandError
	if !errors.As(err, &cmdErr) || cmdErr.ExitCode != -1 {
		t.Fatalf("expected launch CommandError, got %v", err)
	}
	if !strings.HasPrefix(err.Error(), "command failed: start /nonexistent/shell") {
		t.Fatalf("unexpected message %q", err.Error())
	}
}

func TestStreamStopsOnHandlerError(t *testing.T) {
	exec := NewLocalExecutor("/bin/sh", false)
	stop := errors.New("stop")

	_, err := exec.Stream(context.Background(), "echo a; echo b", func(string) error { return stop })
	if !errors.Is(err, stop) {
		t.Fatalf("expected handler error, got %v", err)
	}
}

func TestStreamHonoursCancellation(t *testing.T) {
	exec := NewLocalExecutor("/bin/sh", false)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := exec.Stream(ctx, "echo never", func(string) error { return nil })
	if err == nil {
		t.Fatal("expected error for cancelled context")
	}
}

func TestStreamCancelReturnsWhileGrandchildHoldsOutput(t *testing.T) {
	exec := NewLocalExecutor("/bin/sh", false)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	time.AfterFunc(200*time.Millisecond, cancel)

	start := time.Now()
	_, err := exec.Stream(ctx, "sleep 3; echo done", func(string) error { return nil })
	elapsed := time.Since(start)

	if !errors.Is(err, context.Canceled) {
		t.Fatalf("Stream error = %v, want context.Canceled", err)
	}
	if elapsed > time.Second {
		t.Fatalf("Stream returned after %v, want well under a second", elapsed)
	}
}

func TestStreamMapsSignalToShellExitCode(t *testing.T) {
	exec := NewLocalExecutor("/bin/sh", false)

	result, err := exec.Stream(context.Background(), "kill -TERM $$", func(string) error { return nil })
	var cmdErr *domain.CommandError
	if !errors.As(err, &cmdErr) {
		t.Fatalf("expected CommandError, got %v", err)
	}
	if result.ExitCode != 143 || cmdErr.ExitCode != 143 {
		t.Fatalf("exit code = %d, want 143", result.ExitCode)
	}
}

func TestNewLocalExecutorShellFallback(t *testing.T) {
	t.Setenv("SHELL", "")
	if got := NewLocalExecutor("", false).Shell(); got != "/bin/sh" {
		t.Fatalf("Shell() = %q, want /bin/sh", got)
	}
	t.Setenv("SHELL", "/bin/bash")
	if got := NewLocalExecutor("", false).Shell(); got != "/bin/bash" {
		t.Fatalf("Shell() = %q, want /bin/bash", got)
	}
}

func TestStreamOverPTY(t *testing.T) {
	master, tty, err := pty.Open()
	if err != nil {
		t.Skipf("pty unavailable: %v", err)
	}
	_ = master.Close()
	_ = tty.Close()

	exec := NewLocalExecutor("/bin/sh", true)
	var lines []string
	result, err := exec.Stream(context.Background(), "echo hi", func(line string) error {
		lines = append(lines, line)
		return nil
	})
	if err != nil {
		t.Fatalf("Stream error: %v", err)
	}
	if len(lines) != 1 || strings.TrimSpace(lines[0]) != "hi" {
		t.Fatalf("unexpected pty output %q", lines)
	}
	if result.ExitCode != 0 {
		t.Fatalf("unexpected exit code %d", result.ExitCode)
	}
}
