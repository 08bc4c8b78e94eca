package input

import "sync/atomic"

// Slot holds the most recently observed key code
// Single writer (the sampler goroutine), any number of readers; no history
type Slot struct {
	v atomic.Uint32
}

// NewSlot creates a slot preloaded with initial
func NewSlot(initial Code) *Slot {
	s := &Slot{}
	s.v.Store(uint32(initial))
	return s
}

// Store publishes c, replacing whatever was there
func (s *Slot) Store(c Code) {
	s.v.Store(uint32(c))
}

// Load returns the latest published code
func (s *Slot) Load() Code {
	return Code(s.v.Load())
}
