// Package input samples the latest key press on a background goroutine and
// publishes it through a lock-free single-value slot.
package input

// Hook is a platform key capture mechanism
// All methods are called from the sampler goroutine only, so implementations
// need no internal locking
type Hook interface {
	// Install attaches the capture on the calling goroutine
	Install() error

	// Pump drains pending platform input so Latest reflects it
	// Must not block
	Pump()

	// Latest returns the most recent key-down seen, ok=false if none yet
	Latest() (Code, bool)

	// Uninstall releases the capture
	Uninstall()
}

// Source is the consumer side of input
// Done is closed when the producer has exited and Latest will no longer change
type Source interface {
	Latest() Code
	Stop() error
	Done() <-chan struct{}
}
