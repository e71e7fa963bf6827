package dispatch

import (
	"context"
	"errors"
	"fmt"

	"github.com/doeshing/xterm-go/internal/application/classify"
	"github.com/doeshing/xterm-go/internal/domain"
	"github.com/doeshing/xterm-go/internal/ports"
)

// Outcome tells the session what a dispatched command asks of it. The
// dispatcher never mutates session state itself.
type Outcome struct {
	Exit      bool
	ToggleVim bool
	Result    *domain.ExecutionResult
}

// Dispatcher runs parsed commands against the collaborators.
type Dispatcher struct {
	Directory  ports.DirectoryChanger
	Executor   ports.CommandExecutor
	Analyzer   ports.TextAnalyzer
	SystemInfo ports.SystemInfo
	Classifier classify.Classifier
	Renderer   ports.Renderer
	Logger     ports.Logger
}

// Dispatch handles cmd. Returned errors are user-facing and non-fatal.
func (d *Dispatcher) Dispatch(ctx context.Context, cmd domain.Command) (Outcome, error) {
	if d.Directory == nil || d.Executor == nil || d.Renderer == nil || d.Logger == nil {
		return Outcome{}, errors.New("dispatch.Dispatcher dependencies not satisfied")
	}

	d.Logger.Debug("dispatching command", map[string]interface{}{
		"kind":    cmd.Kind.String(),
		"command": cmd.Raw,
	})

	switch cmd.Kind {
	case domain.CommandExit:
		return Outcome{Exit: true}, nil
	case domain.CommandChangeDir:
		return Outcome{}, d.changeDirectory(cmd.Args)
	case domain.CommandToggleVim:
		return Outcome{ToggleVim: true}, nil
	case domain.CommandSystemInfo:
		return Outcome{}, d.showSystemInfo(ctx)
	case domain.CommandAnalyze:
		return Outcome{}, d.analyze(ctx, cmd.Raw)
	default:
		result, err := d.execute(ctx, cmd.Raw)
		return Outcome{Result: &result}, err
	}
}

func (d *Dispatcher) changeDirectory(args []string) error {
	switch len(args) {
	case 0:
		return d.Directory.Change("")
	case 1:
		return d.Directory.Change(args[0])
	default:
		return domain.ErrInvalidCd
	}
}

func (d *Dispatcher) showSystemInfo(ctx context.Context) error {
	if d.SystemInfo == nil {
		return errors.New("system info is not available")
	}
	return d.SystemInfo.Show(ctx)
}

func (d *Dispatcher) analyze(ctx context.Context, text string) error {
	if d.Analyzer == nil {
		return errors.New("text analyzer is not available")
	}
	analysis, err := d.Analyzer.Analyze(ctx, text)
	if err != nil {
		return fmt.Errorf("analyze text: %w", err)
	}
	d.Renderer.Analysis(analysis)
	return nil
}

// execute streams output through the classifier as it arrives.
func (d *Dispatcher) execute(ctx context.Context, command string) (domain.ExecutionResult, error) {
	result, err := d.Executor.Stream(ctx, command, func(line string) error {
		d.Renderer.Line(d.Classifier.Classify(line))
		return nil
	})
	fields := map[string]interface{}{
		"command":     command,
		"exit_code":   result.ExitCode,
		"lines":       result.Lines,
		"duration_ms": result.Duration.Milliseconds(),
	}
	var cmdErr *domain.CommandError
	if errors.As(err, &cmdErr) && cmdErr.ExitCode == domain.InterruptedExitCode && ctx.Err() == nil {
		// The user stopped the command; the shell prints nothing for that either.
		d.Logger.Info("command interrupted", fields)
		return result, nil
	}
	if err != nil {
		d.Logger.Warn("command did not succeed", fields)
		return result, err
	}
	d.Logger.Info("command finished", fields)
	return result, nil
}
