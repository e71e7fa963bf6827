package commands

import (
	"fmt"
	"io"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/doeshing/xterm-go/internal/version"
)

// RuntimeInfo is the resolved setup reported next to the build metadata.
type RuntimeInfo struct {
	ConfigPath string
	Shell      string
	UsePTY     bool
	LogFile    string
}

// NewVersionCommand creates the version command
func NewVersionCommand(info RuntimeInfo) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show build information and the resolved runtime setup",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			writeVersion(cmd.OutOrStdout(), info)
			return nil
		},
	}
}

func writeVersion(out io.Writer, info RuntimeInfo) {
	build := version.Version
	if version.Commit != "" {
		build += " (" + version.Commit + ")"
	}
	if version.BuildDate != "" {
		build += " built " + version.BuildDate
	}
	fmt.Fprintf(out, "xterm %s, %s %s/%s\n", build, runtime.Version(), runtime.GOOS, runtime.GOARCH)

	mode := "pipe"
	if info.UsePTY {
		mode = "pty"
	}
	logFile := info.LogFile
	if logFile == "" {
		logFile = "disabled"
	}
	fmt.Fprintf(out, "config:  %s\n", orUnknown(info.ConfigPath))
	fmt.Fprintf(out, "shell:   %s (%s)\n", orUnknown(info.Shell), mode)
	fmt.Fprintf(out, "log:     %s\n", logFile)
}

func orUnknown(s string) string {
	if s == "" {
		return "unknown"
	}
	return s
}
