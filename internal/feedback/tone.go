package feedback

import (
	"math"
	"time"

	"github.com/gopxl/beep"
)

// sine generates a fixed-length sine wave.
type sine struct {
	freq     float64
	phase    float64
	duration int
	position int
}

func newSine(freq float64, d time.Duration) beep.Streamer {
	return &sine{
		freq:     freq,
		duration: sampleRate.N(d),
	}
}

func (s *sine) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if s.position >= s.duration {
			return i, i > 0
		}

		val := math.Sin(2 * math.Pi * s.phase)
		samples[i][0] = val
		samples[i][1] = val

		s.phase += s.freq / float64(sampleRate)
		s.phase -= math.Floor(s.phase) // keep in [0, 1)
		s.position++
	}
	return len(samples), true
}

func (s *sine) Err() error { return nil }

// envelope applies linear attack/release shaping so tones do not click.
type envelope struct {
	streamer       beep.Streamer
	position       int
	attackSamples  int
	releaseSamples int
	totalSamples   int
}

func newEnvelope(s beep.Streamer, duration, attack, release time.Duration) beep.Streamer {
	return &envelope{
		streamer:       s,
		attackSamples:  sampleRate.N(attack),
		releaseSamples: sampleRate.N(release),
		totalSamples:   sampleRate.N(duration),
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)

	for i := 0; i < n; i++ {
		vol := 1.0

		if e.position < e.attackSamples && e.attackSamples > 0 {
			vol = float64(e.position) / float64(e.attackSamples)
		}
		releaseStart := e.totalSamples - e.releaseSamples
		if e.position >= releaseStart && e.releaseSamples > 0 {
			remaining := e.totalSamples - e.position
			vol = float64(remaining) / float64(e.releaseSamples)
			if vol < 0 {
				vol = 0
			}
		}

		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}

	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }
