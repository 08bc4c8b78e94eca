// @focus: #input { sampler } #lifecycle { goroutine }
package input

import (
	"errors"
	"sync"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog/log"
)

// DefaultPollInterval is the sampler cadence when none is configured
const DefaultPollInterval = 10 * time.Millisecond

// ErrAlreadyStarted is returned when Start is called twice; samplers are single-shot
var ErrAlreadyStarted = errors.New("input: sampler already started")

// Sampler polls a Hook on its own goroutine and republishes its latest key into a Slot
//
// The only state shared with the consumer is the slot and the running flag;
// the hook itself is touched exclusively by the sampler goroutine.
// mu orders Start against Stop so a stop can never be overwritten by a late start.
type Sampler struct {
	hook     Hook
	slot     *Slot
	interval time.Duration

	mu      sync.Mutex
	started bool
	running atomic.Bool
	done    chan struct{}

	crashHandler func(any)
}

// NewSampler creates a sampler publishing hook's keys into slot every interval
func NewSampler(hook Hook, slot *Slot, interval time.Duration) *Sampler {
	if interval <= 0 {
		interval = DefaultPollInterval
	}
	return &Sampler{
		hook:     hook,
		slot:     slot,
		interval: interval,
		done:     make(chan struct{}),
	}
}

// SetCrashHandler installs the panic handler for the sampler goroutine
// Keeps this package independent of terminal restore logic
func (s *Sampler) SetCrashHandler(fn func(any)) {
	s.crashHandler = fn
}

// Start launches the sampling goroutine
func (s *Sampler) Start() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.started {
		return ErrAlreadyStarted
	}
	s.started = true
	s.running.Store(true)
	go s.loop()
	return nil
}

// Latest returns the current key from the slot without blocking
func (s *Sampler) Latest() Code {
	return s.slot.Load()
}

// Stop clears the running flag and waits for the goroutine to exit
// The goroutine observes the flag within one poll interval. Safe to call more than once
func (s *Sampler) Stop() error {
	s.mu.Lock()
	if !s.started {
		s.mu.Unlock()
		return nil
	}
	s.running.Store(false)
	s.mu.Unlock()

	<-s.done
	return nil
}

// Done is closed once the sampling goroutine has returned
func (s *Sampler) Done() <-chan struct{} {
	return s.done
}

// Interval returns the poll cadence
func (s *Sampler) Interval() time.Duration {
	return s.interval
}

func (s *Sampler) loop() {
	defer close(s.done)
	defer func() {
		if r := recover(); r != nil {
			if s.crashHandler == nil {
				panic(r)
			}
			s.crashHandler(r)
		}
	}()

	installed := true
	if err := s.hook.Install(); err != nil {
		// Degrade to "no key updates": slot keeps its last value
		log.Warn().Err(err).Msg("input hook install failed")
		installed = false
	} else {
		log.Debug().Dur("interval", s.interval).Msg("input sampler started")
	}

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		if installed {
			s.hook.Pump()
		}

		if !s.running.Load() {
			break
		}

		if installed {
			if c, ok := s.hook.Latest(); ok {
				s.slot.Store(c)
			}
		}

		<-ticker.C
	}

	if installed {
		s.hook.Uninstall()
	}
	log.Debug().Msg("input sampler stopped")
}
