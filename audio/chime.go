package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
)

const (
	chimeNote1Freq     = 987.77 // B5
	chimeNote2Freq     = 1318.51
	chimeNote1Duration = 70 * time.Millisecond
	chimeNote2Duration = 140 * time.Millisecond
	chimeAttack        = 5 * time.Millisecond
	chimeRelease       = 60 * time.Millisecond
)

// ChimeDuration is the total playing time of the apple pickup chime
const ChimeDuration = chimeNote1Duration + chimeNote2Duration

// envelope applies linear attack/release shaping to a finite stream
type envelope struct {
	streamer       beep.Streamer
	position       int
	attackSamples  int
	releaseSamples int
	totalSamples   int
}

func newEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	return &envelope{
		streamer:       s,
		attackSamples:  rate.N(attack),
		releaseSamples: rate.N(release),
		totalSamples:   rate.N(duration),
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	if e.position >= e.totalSamples {
		return 0, false
	}
	if remaining := e.totalSamples - e.position; len(samples) > remaining {
		samples = samples[:remaining]
	}

	n, ok = e.streamer.Stream(samples)
	releaseStart := e.totalSamples - e.releaseSamples
	for i := 0; i < n; i++ {
		vol := 1.0
		if e.position < e.attackSamples {
			vol = float64(e.position) / float64(e.attackSamples)
		}
		if e.position >= releaseStart && e.releaseSamples > 0 {
			vol = math.Max(0, float64(e.totalSamples-e.position)/float64(e.releaseSamples))
		}
		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}
	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// newVolume scales a stream linearly; 0 or less is silent
// math.Log2(0) is -Inf, so zero volume is mapped to Silent
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}

func note(rate beep.SampleRate, freq float64, d time.Duration) (beep.Streamer, error) {
	tone, err := generators.SineTone(rate, freq)
	if err != nil {
		return nil, err
	}
	n := rate.N(d)
	return newEnvelope(beep.Take(n, tone), d, chimeAttack, chimeRelease, rate), nil
}

// NewChime builds the two-note pickup chime at the given volume (0..1)
func NewChime(rate beep.SampleRate, volume float64) (beep.Streamer, error) {
	n1, err := note(rate, chimeNote1Freq, chimeNote1Duration)
	if err != nil {
		return nil, err
	}
	n2, err := note(rate, chimeNote2Freq, chimeNote2Duration)
	if err != nil {
		return nil, err
	}
	return newVolume(beep.Seq(n1, n2), volume), nil
}
