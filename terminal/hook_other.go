//go:build !unix

package terminal

import "github.com/lixenwraith/cellsnake/input"

// StdinHook is unavailable off unix; Install fails and the sampler publishes nothing
type StdinHook struct{}

func NewStdinHook() *StdinHook { return &StdinHook{} }

func (h *StdinHook) Install() error             { return errNoRawTTY }
func (h *StdinHook) Pump()                      {}
func (h *StdinHook) Latest() (input.Code, bool) { return input.KeyNone, false }
func (h *StdinHook) Uninstall()                 {}
