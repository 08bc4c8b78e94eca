package audio

import (
	"sync/atomic"

	"github.com/rs/zerolog/log"
)

// AudioService runs a Player under the service hub
// A missing audio device disables sound instead of failing startup
type AudioService struct {
	player   *Player
	disabled atomic.Bool
}

// NewService wraps player
func NewService(player *Player) *AudioService {
	return &AudioService{player: player}
}

// Name implements service.Service
func (s *AudioService) Name() string {
	return "audio"
}

// Dependencies implements service.Service
func (s *AudioService) Dependencies() []string {
	return nil
}

// Start opens the device; failure only disables the service
func (s *AudioService) Start() error {
	if err := s.player.Start(); err != nil {
		s.disabled.Store(true)
		log.Warn().Err(err).Msg("audio unavailable, continuing without sound")
	}
	return nil
}

// Stop implements service.Service
func (s *AudioService) Stop() error {
	return s.player.Stop()
}

// IsDisabled returns true if audio is unavailable
func (s *AudioService) IsDisabled() bool {
	return s.disabled.Load()
}

// PlayChime plays the pickup chime when audio is available
func (s *AudioService) PlayChime() {
	if s.disabled.Load() {
		return
	}
	s.player.PlayChime()
}
