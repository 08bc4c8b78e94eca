// Package audio plays short sound effects through the system speaker.
// Audio is optional: every failure leaves the player silent rather than failing the game.
package audio

import (
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
	"github.com/rs/zerolog/log"
)

const (
	// DefaultSampleRate matches common output devices
	DefaultSampleRate = beep.SampleRate(48000)
	// DefaultVolume is the linear gain applied to effects
	DefaultVolume = 0.4

	bufferDuration = 100 * time.Millisecond
)

// Player owns the speaker and a mixer that effects are queued onto
type Player struct {
	mu      sync.Mutex
	rate    beep.SampleRate
	volume  float64
	mixer   *beep.Mixer
	started bool
	played  int
}

// NewPlayer creates an idle player; Start opens the device
func NewPlayer(rate beep.SampleRate, volume float64) *Player {
	return &Player{
		rate:   rate,
		volume: volume,
		mixer:  &beep.Mixer{},
	}
}

// Start initializes the speaker and begins mixing
func (p *Player) Start() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.started {
		return nil
	}
	if err := speaker.Init(p.rate, p.rate.N(bufferDuration)); err != nil {
		return err
	}
	speaker.Play(p.mixer)
	p.started = true
	log.Debug().Int("rate", int(p.rate)).Msg("audio started")
	return nil
}

// Stop silences queued effects
// The speaker stays initialized; beep allows a single Init per process
func (p *Player) Stop() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.started {
		return nil
	}
	speaker.Lock()
	p.mixer.Clear()
	speaker.Unlock()
	p.started = false
	return nil
}

// PlayChime queues the pickup chime; no-op when not started
func (p *Player) PlayChime() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.started {
		return
	}
	chime, err := NewChime(p.rate, p.volume)
	if err != nil {
		log.Warn().Err(err).Msg("chime generation failed")
		return
	}
	speaker.Lock()
	p.mixer.Add(chime)
	speaker.Unlock()
	p.played++
}

// Played reports how many effects were queued
func (p *Player) Played() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.played
}
