package terminal

import (
	"sync"

	"github.com/rs/zerolog/log"
)

// Display is a surface that takes over the console between Init and Fini
type Display interface {
	Init() error
	Fini()
}

// DisplayService runs a display's console lifecycle under the service hub
type DisplayService struct {
	display Display
	mu      sync.Mutex
	running bool
}

// NewDisplayService wraps d; the console is untouched until Start
func NewDisplayService(d Display) *DisplayService {
	return &DisplayService{display: d}
}

// Name implements service.Service
func (s *DisplayService) Name() string {
	return "display"
}

// Dependencies implements service.Service
func (s *DisplayService) Dependencies() []string {
	return nil
}

// Start acquires the console
func (s *DisplayService) Start() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.running {
		return nil
	}
	if err := s.display.Init(); err != nil {
		return err
	}
	s.running = true
	log.Debug().Msg("display acquired")
	return nil
}

// Stop restores the console; safe to call repeatedly
func (s *DisplayService) Stop() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.running {
		return nil
	}
	s.display.Fini()
	s.running = false
	log.Debug().Msg("display restored")
	return nil
}
