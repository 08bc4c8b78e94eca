package core

import (
	"fmt"
	"os"
	"runtime/debug"

	"github.com/rs/zerolog/log"

	"github.com/lixenwraith/cellsnake/terminal"
)

// resetHook restores the display before the stack trace is printed
// Set by the owner of the live surface; nil falls back to EmergencyReset
var resetHook func()

// SetResetHook registers the display restore function used by HandleCrash
func SetResetHook(fn func()) {
	resetHook = fn
}

// HandleCrash restores the terminal, prints the panic and stack to stderr and exits
func HandleCrash(r any) {
	if r == nil {
		return
	}

	if resetHook != nil {
		resetHook()
	} else {
		terminal.EmergencyReset(os.Stdout)
	}
	os.Stdout.Sync()

	stack := debug.Stack()
	log.Error().Interface("panic", r).Bytes("stack", stack).Msg("crash")

	fmt.Fprintf(os.Stderr, "\r\n\x1b[31mCELLSNAKE CRASHED: %v\x1b[0m\r\n", r)
	fmt.Fprintf(os.Stderr, "Stack Trace:\r\n%s\r\n", stack)
	os.Stderr.Sync()

	os.Exit(1)
}
