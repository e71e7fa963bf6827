package commands

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/doeshing/xterm-go/internal/app"
	"github.com/doeshing/xterm-go/internal/domain"
)

// HealthChecker produces the doctor report.
type HealthChecker interface {
	Run(ctx context.Context) (domain.HealthReport, error)
}

// NewDoctorCommand creates the doctor command
func NewDoctorCommand(container *app.Container) *cobra.Command {
	var checker HealthChecker
	if container != nil && container.DoctorService != nil {
		checker = container.DoctorService
	}
	return newDoctorCommand(checker)
}

func newDoctorCommand(checker HealthChecker) *cobra.Command {
	return &cobra.Command{
		Use:   "doctor",
		Short: "Diagnose environment setup",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDoctorDiagnostics(cmd.Context(), cmd.OutOrStdout(), checker)
		},
	}
}

func runDoctorDiagnostics(ctx context.Context, out io.Writer, checker HealthChecker) error {
	if checker == nil {
		return fmt.Errorf("doctor service unavailable")
	}

	report, err := checker.Run(ctx)

	// Display report even if there were errors
	displayDoctorReport(out, report)

	if err != nil {
		return fmt.Errorf("diagnostics completed with errors: %w", err)
	}
	return nil
}

func displayDoctorReport(out io.Writer, report domain.HealthReport) {
	for _, check := range report.Checks {
		status := strings.ToUpper(string(check.Status))
		fmt.Fprintf(out, "[%s] %s - %s\n", statusColor(check.Status).Sprint(status), check.Name, check.Details)
	}
}

func statusColor(status domain.HealthStatus) *color.Color {
	switch status {
	case domain.HealthOK:
		return color.New(color.FgGreen)
	case domain.HealthWarn:
		return color.New(color.FgYellow)
	default:
		return color.New(color.FgRed)
	}
}
