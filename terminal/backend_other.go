//go:build !unix

package terminal

import (
	"errors"
	"os"
)

var errNoRawTTY = errors.New("ansi backend requires a unix tty, use the tcell backend")

type stubBackend struct{}

func newBackend() Backend {
	return stubBackend{}
}

func (stubBackend) Init() error                 { return errNoRawTTY }
func (stubBackend) Fini()                       {}
func (stubBackend) Size() (int, int)            { return 80, 24 }
func (stubBackend) Write(p []byte) (int, error) { return os.Stdout.Write(p) }
