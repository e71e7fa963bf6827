// Package sysinfo hands the terminal to an external system summary tool.
package sysinfo

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"

	"github.com/doeshing/xterm-go/internal/ports"
)

// DefaultProgram is the tool run for the neofetch builtin.
const DefaultProgram = "neofetch"

// Neofetch runs the tool attached directly to the user's terminal.
type Neofetch struct {
	program string
	stdin   io.Reader
	stdout  io.Writer
	stderr  io.Writer
}

// NewNeofetch builds the adapter around program (DefaultProgram when empty).
func NewNeofetch(program string) *Neofetch {
	if program == "" {
		program = DefaultProgram
	}
	return &Neofetch{program: program, stdin: os.Stdin, stdout: os.Stdout, stderr: os.Stderr}
}

// Available reports whether the program can be found on PATH.
func (n *Neofetch) Available() bool {
	_, err := exec.LookPath(n.program)
	return err == nil
}

// Show implements ports.SystemInfo.
func (n *Neofetch) Show(ctx context.Context) error {
	path, err := exec.LookPath(n.program)
	if err != nil {
		return fmt.Errorf("%s is not installed", n.program)
	}
	c := exec.CommandContext(ctx, path)
	c.Stdin = n.stdin
	c.Stdout = n.stdout
	c.Stderr = n.stderr
	if err := c.Run(); err != nil {
		return fmt.Errorf("%s: %w", n.program, err)
	}
	return nil
}

var _ ports.SystemInfo = (*Neofetch)(nil)
