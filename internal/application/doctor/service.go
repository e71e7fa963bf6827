package doctor

import (
	"context"
	"errors"
	"fmt"
	"os/exec"

	configapp "github.com/doeshing/xterm-go/internal/application/config"
	"github.com/doeshing/xterm-go/internal/domain"
	"github.com/doeshing/xterm-go/internal/ports"
)

// Availability reports whether an optional tool is installed.
type Availability interface {
	Available() bool
}

// Service runs environment diagnostics.
type Service struct {
	ConfigProvider ports.ConfigProvider
	Directory      ports.DirectoryChanger
	SystemInfo     Availability
	Shell          string

	lookPath func(string) (string, error)
}

// Run executes checks and returns a report. The returned error is non-nil
// when any check failed.
func (s *Service) Run(ctx context.Context) (domain.HealthReport, error) {
	if s.ConfigProvider == nil {
		return domain.HealthReport{}, errors.New("doctor.Service dependencies not satisfied")
	}
	var checks []domain.HealthCheck

	cfg, err := s.ConfigProvider.Load(ctx)
	if err != nil {
		checks = append(checks, fail("Config file", fmt.Sprintf("load failed: %v", err)))
		return domain.HealthReport{Checks: checks}, err
	}
	if err := configapp.Validate(cfg); err != nil {
		checks = append(checks, fail("Config file", err.Error()))
	} else {
		checks = append(checks, ok("Config file", fmt.Sprintf("loaded %s", cfg.ConfigFormatVersion)))
	}

	checks = append(checks, s.shellCheck())

	if s.Directory != nil {
		if dir, err := s.Directory.Getwd(); err != nil {
			checks = append(checks, fail("Working directory", err.Error()))
		} else {
			checks = append(checks, ok("Working directory", dir))
		}
	}

	if s.SystemInfo != nil {
		if s.SystemInfo.Available() {
			checks = append(checks, ok("neofetch", "installed"))
		} else {
			checks = append(checks, warn("neofetch", "not installed; the neofetch builtin will fail"))
		}
	}

	checks = append(checks, autocorrectCheck(cfg))

	report := domain.HealthReport{Checks: checks}
	if report.Failed() {
		return report, errors.New("one or more checks failed")
	}
	return report, nil
}

func (s *Service) shellCheck() domain.HealthCheck {
	if s.Shell == "" {
		return fail("Shell", "no shell configured")
	}
	look := s.lookPath
	if look == nil {
		look = exec.LookPath
	}
	path, err := look(s.Shell)
	if err != nil {
		return fail("Shell", fmt.Sprintf("%s not found: %v", s.Shell, err))
	}
	return ok("Shell", path)
}

func autocorrectCheck(cfg domain.Config) domain.HealthCheck {
	if !cfg.Autocorrect.Enabled {
		return warn("Autocorrect", "disabled")
	}
	return ok("Autocorrect", fmt.Sprintf("threshold %d, history size %d", cfg.Autocorrect.Threshold, cfg.History.Size))
}

func ok(name, details string) domain.HealthCheck {
	return domain.HealthCheck{Name: name, Status: domain.HealthOK, Details: details}
}

func warn(name, details string) domain.HealthCheck {
	return domain.HealthCheck{Name: name, Status: domain.HealthWarn, Details: details}
}

func fail(name, details string) domain.HealthCheck {
	return domain.HealthCheck{Name: name, Status: domain.HealthError, Details: details}
}
