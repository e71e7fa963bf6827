package executor

import (
	"errors"
	"io"
	"os"
	"os/exec"
	"syscall"

	"github.com/creack/pty"
)

// startPTY attaches the child to a new pseudo-terminal. Programs that buffer
// when writing to a pipe flush per line on a terminal.
func startPTY(c *exec.Cmd) (io.ReadCloser, error) {
	f, err := pty.Start(c)
	if err != nil {
		return nil, err
	}
	return ptyReader{f}, nil
}

// ptyReader reports EIO as EOF: Linux returns EIO from the master side once
// the child has closed the terminal.
type ptyReader struct {
	f *os.File
}

func (r ptyReader) Read(p []byte) (int, error) {
	n, err := r.f.Read(p)
	if errors.Is(err, syscall.EIO) {
		return n, io.EOF
	}
	return n, err
}

func (r ptyReader) Close() error {
	return r.f.Close()
}
