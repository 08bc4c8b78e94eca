//go:build unix

package terminal

import (
	"fmt"
	"os"

	"golang.org/x/sys/unix"
	"golang.org/x/term"

	"github.com/lixenwraith/cellsnake/input"
)

// StdinHook captures keys from the raw-mode stdin tty with non-blocking polls
// The ANSI surface must already have put the tty into raw mode
type StdinHook struct {
	fd      int
	buf     []byte
	pending []byte

	latest input.Code
	seen   bool
}

// NewStdinHook creates a hook reading the process stdin
func NewStdinHook() *StdinHook {
	return &StdinHook{
		fd:      int(os.Stdin.Fd()),
		buf:     make([]byte, 256),
		pending: make([]byte, 0, 256),
	}
}

func (h *StdinHook) Install() error {
	if !term.IsTerminal(h.fd) {
		return fmt.Errorf("stdin is not a terminal")
	}
	return nil
}

// Pump reads whatever is immediately available without blocking
func (h *StdinHook) Pump() {
	read := false
	for {
		fds := []unix.PollFd{{Fd: int32(h.fd), Events: unix.POLLIN}}
		n, err := unix.Poll(fds, 0)
		if err != nil || n == 0 || fds[0].Revents&unix.POLLIN == 0 {
			break
		}

		rn, err := unix.Read(h.fd, h.buf)
		if err != nil || rn <= 0 {
			break
		}
		h.pending = append(h.pending, h.buf[:rn]...)
		read = true
	}

	if len(h.pending) == 0 {
		return
	}

	consumed := DecodeKeys(h.pending, h.record)
	h.pending = h.pending[:copy(h.pending, h.pending[consumed:])]

	// A prefix still held after a quiet poll will not complete
	// A lone ESC is a real Escape press, a bare introducer is dropped
	if !read && len(h.pending) > 0 {
		if len(h.pending) == 1 {
			h.record(input.KeyEscape)
		}
		h.pending = h.pending[:0]
	}
}

func (h *StdinHook) record(c input.Code) {
	h.latest = c
	h.seen = true
}

func (h *StdinHook) Latest() (input.Code, bool) {
	return h.latest, h.seen
}

func (h *StdinHook) Uninstall() {
	h.pending = h.pending[:0]
}
