// Package service runs long-lived subsystems (display, input sampler, audio)
// through a dependency-ordered start/stop lifecycle.
package service

// Service defines the lifecycle of an infrastructure subsystem
//
// Lifecycle:
//  1. Construction
//  2. Start() - acquire resources, launch goroutines
//  3. [runtime operation]
//  4. Stop() - halt goroutines, release resources
type Service interface {
	// Name returns the unique identifier for this service
	Name() string

	// Dependencies returns names of services that must Start before this one
	Dependencies() []string

	// Start begins service operation
	Start() error

	// Stop halts service operation; must be idempotent
	Stop() error
}

// Lifecycle is anything with start/stop semantics that can be hosted by a Hub
type Lifecycle interface {
	Start() error
	Stop() error
}

type wrapped struct {
	name string
	deps []string
	Lifecycle
}

func (w wrapped) Name() string           { return w.name }
func (w wrapped) Dependencies() []string { return w.deps }

// Wrap names a Lifecycle so it can be registered with a Hub
func Wrap(name string, deps []string, l Lifecycle) Service {
	return wrapped{name: name, deps: deps, Lifecycle: l}
}
