//go:build unix

package terminal

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/cellsnake/input"
)

// pipeHook returns a StdinHook reading the read end of a pipe, and the write end
func pipeHook(t *testing.T) (*StdinHook, *os.File) {
	t.Helper()
	r, w, err := os.Pipe()
	require.NoError(t, err)
	t.Cleanup(func() {
		w.Close()
		r.Close()
	})

	h := NewStdinHook()
	h.fd = int(r.Fd())
	return h, w
}

func pumpAfter(t *testing.T, h *StdinHook, w *os.File, chunk string) input.Code {
	t.Helper()
	if chunk != "" {
		_, err := w.WriteString(chunk)
		require.NoError(t, err)
	}
	h.Pump()
	c, _ := h.Latest()
	return c
}

func TestStdinHookPumpSequence(t *testing.T) {
	h, w := pipeHook(t)

	_, seen := h.Latest()
	assert.False(t, seen)

	assert.Equal(t, input.KeyW, pumpAfter(t, h, w, "w"))
	assert.Equal(t, input.KeyW, pumpAfter(t, h, w, "\x1b"), "lone ESC held while input is arriving")
	assert.Equal(t, input.KeyEscape, pumpAfter(t, h, w, ""), "quiet poll resolves the held ESC")
	assert.Equal(t, input.KeyUp, pumpAfter(t, h, w, "\x1b[A"))
}

func TestStdinHookPumpSplitArrow(t *testing.T) {
	h, w := pipeHook(t)

	assert.Equal(t, input.KeyNone, pumpAfter(t, h, w, "\x1b["))
	assert.Equal(t, input.KeyLeft, pumpAfter(t, h, w, "D"))
}

func TestStdinHookPumpDropsStaleIntroducer(t *testing.T) {
	h, w := pipeHook(t)

	pumpAfter(t, h, w, "\x1b[")
	c := pumpAfter(t, h, w, "")
	_, seen := h.Latest()
	assert.False(t, seen, "bare introducer is not a key")
	assert.Equal(t, input.KeyNone, c)
	assert.Empty(t, h.pending)

	assert.Equal(t, input.KeyS, pumpAfter(t, h, w, "s"))
}

func TestStdinHookUninstallClearsPending(t *testing.T) {
	h, w := pipeHook(t)

	pumpAfter(t, h, w, "\x1b")
	require.NotEmpty(t, h.pending)
	h.Uninstall()
	assert.Empty(t, h.pending)
}
