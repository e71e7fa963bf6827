package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/doeshing/xterm-go/internal/app"
	"github.com/doeshing/xterm-go/internal/infrastructure/cli/commands"
)

// Options holds CLI-level configuration.
type Options struct {
	Verbose bool
}

// Execute builds the container, runs the command line in args and releases
// the session log whether or not the command succeeded.
func Execute(ctx context.Context, opts Options, args []string) (err error) {
	container, err := app.BuildContainer(ctx, app.Options{Verbose: opts.Verbose})
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := container.Close(); err == nil {
			err = closeErr
		}
	}()

	root := NewRootCmd(container)
	root.SetArgs(args)
	return root.ExecuteContext(ctx)
}

// NewRootCmd wires the cobra root command. Running it without a subcommand
// starts the interactive session.
func NewRootCmd(container *app.Container) *cobra.Command {
	root := &cobra.Command{
		Use:   "xterm",
		Short: "X-Term - interactive shell with history autocorrect",
		Long:  "X-Term wraps your shell with an icon-decorated prompt, history completion and a \"did you mean\" check against recent commands.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSession(cmd.Context(), container, cmd.OutOrStdout())
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(commands.NewVersionCommand(runtimeInfo(container)))
	root.AddCommand(commands.NewDoctorCommand(container))
	return root
}

func runtimeInfo(container *app.Container) commands.RuntimeInfo {
	info := commands.RuntimeInfo{
		ConfigPath: container.ConfigLoader.Path(),
		UsePTY:     container.Config.Execution.UsePTY,
		LogFile:    container.Config.Logging.File,
	}
	if container.DoctorService != nil {
		info.Shell = container.DoctorService.Shell
	}
	return info
}

func runSession(ctx context.Context, container *app.Container, out io.Writer) error {
	reader, err := NewLineReader(ReaderOptions{
		Completer:    NewHistoryCompleter(container.History),
		Hinter:       NewHistoryHinter(container.History),
		HistoryLimit: container.History.Cap(),
	})
	if err != nil {
		return fmt.Errorf("init line editor: %w", err)
	}
	defer reader.Close()

	console := NewConsole(out)
	svc := container.SessionService
	svc.Reader = reader
	svc.Renderer = console
	svc.Dispatcher.Renderer = console
	if svc.Autocorrect != nil {
		svc.Autocorrect.Prompter = NewPrompter(reader)
	}
	return svc.Run(ctx)
}
