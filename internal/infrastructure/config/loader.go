package config

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/doeshing/xterm-go/assets"
	"github.com/doeshing/xterm-go/internal/domain"
	"github.com/doeshing/xterm-go/internal/pkg/filesystem"
	"github.com/doeshing/xterm-go/internal/ports"
)

// FileLoader loads YAML configuration from ~/.xterm/config.yaml (overridable via XTERM_CONFIG).
type FileLoader struct {
	overridePath string
}

// NewFileLoader builds a new loader.
func NewFileLoader(path string) *FileLoader {
	return &FileLoader{overridePath: path}
}

// Load implements ports.ConfigProvider. A missing file is created from the
// embedded defaults. Keys absent from the file keep their default values.
func (l *FileLoader) Load(context.Context) (domain.Config, error) {
	path := l.Path()
	if err := ensureConfigDir(path); err != nil {
		return domain.Config{}, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			return domain.Config{}, err
		}
		if err := os.WriteFile(path, assets.DefaultConfigYAML, domain.SecureFilePermissions); err != nil {
			return domain.Config{}, err
		}
		data = assets.DefaultConfigYAML
	}

	cfg, err := DefaultConfig()
	if err != nil {
		return domain.Config{}, err
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return domain.Config{}, fmt.Errorf("parse %s: %w", path, err)
	}
	return hydrateDefaults(cfg), nil
}

// Path returns the config file location in effect.
func (l *FileLoader) Path() string {
	if l.overridePath != "" {
		return filesystem.ExpandPath(l.overridePath)
	}
	if custom := os.Getenv("XTERM_CONFIG"); custom != "" {
		return filesystem.ExpandPath(custom)
	}
	return filepath.Join(filesystem.UserHomeDir(), ".xterm", "config.yaml")
}

// DefaultConfig decodes the embedded default configuration.
func DefaultConfig() (domain.Config, error) {
	var cfg domain.Config
	if err := yaml.Unmarshal(assets.DefaultConfigYAML, &cfg); err != nil {
		return domain.Config{}, fmt.Errorf("parse embedded defaults: %w", err)
	}
	return cfg, nil
}

func ensureConfigDir(path string) error {
	dir := filepath.Dir(path)
	return os.MkdirAll(dir, domain.DirectoryPermissions)
}

func hydrateDefaults(cfg domain.Config) domain.Config {
	if cfg.ConfigFormatVersion == "" {
		cfg.ConfigFormatVersion = "1"
	}
	if cfg.History.Size <= 0 {
		cfg.History.Size = domain.DefaultHistorySize
	}
	if cfg.Execution.Shell == "" {
		cfg.Execution.Shell = domain.ShellAutoDetect
	}
	if cfg.Prompt.HomeIconKey == "" {
		cfg.Prompt.HomeIconKey = domain.HomeIconKey
	}
	if cfg.Logging.Level == "" {
		cfg.Logging.Level = domain.LogLevelInfo
	}
	cfg.Logging.File = filesystem.ExpandPath(cfg.Logging.File)
	return cfg
}

var _ ports.ConfigProvider = (*FileLoader)(nil)
