package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/doeshing/xterm-go/internal/domain"
)

// Validate ensures config structure is consistent.
func Validate(cfg domain.Config) error {
	if cfg.History.Size < 1 {
		return fmt.Errorf("history.size must be >= 1, got %d", cfg.History.Size)
	}
	if err := validateAutocorrect(cfg.Autocorrect); err != nil {
		return err
	}
	if err := validateIcons(cfg.Icons, cfg.Prompt); err != nil {
		return err
	}
	return validateLogging(cfg.Logging)
}

func validateAutocorrect(ac domain.AutocorrectSettings) error {
	if ac.Threshold < 0 || ac.Threshold > domain.MaxSimilarityScore {
		return fmt.Errorf("autocorrect.threshold must be between 0 and %d, got %d", domain.MaxSimilarityScore, ac.Threshold)
	}
	return nil
}

func validateIcons(icons map[string]string, prompt domain.PromptSettings) error {
	if strings.TrimSpace(icons[domain.DefaultIconKey]) == "" {
		return errors.New("icons.default must be set")
	}
	if prompt.HomeIconKey == "" {
		return errors.New("prompt.home_icon_key must be set")
	}
	return nil
}

func validateLogging(logging domain.LoggingSettings) error {
	switch strings.ToLower(logging.Level) {
	case domain.LogLevelDebug, domain.LogLevelInfo, domain.LogLevelWarn, domain.LogLevelError:
		return nil
	default:
		return fmt.Errorf("logging.level must be debug|info|warn|error, got %s", logging.Level)
	}
}
