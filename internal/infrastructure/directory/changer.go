// Package directory moves the process working directory for the cd builtin.
package directory

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/doeshing/xterm-go/internal/domain"
	"github.com/doeshing/xterm-go/internal/pkg/filesystem"
	"github.com/doeshing/xterm-go/internal/ports"
)

// OSChanger changes the real process working directory.
type OSChanger struct{}

// NewOSChanger builds a changer.
func NewOSChanger() *OSChanger {
	return &OSChanger{}
}

// Change implements ports.DirectoryChanger. The path is used literally; an
// empty path means the home directory.
func (c *OSChanger) Change(path string) error {
	if path == "" {
		path = filesystem.UserHomeDir()
	}
	if err := os.Chdir(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("%w: %s", domain.ErrDirectoryNotFound, path)
		}
		return fmt.Errorf("cd: %w", err)
	}
	return nil
}

// Getwd implements ports.DirectoryChanger.
func (c *OSChanger) Getwd() (string, error) {
	return os.Getwd()
}

var _ ports.DirectoryChanger = (*OSChanger)(nil)
