// Package feedback implements the game's FeedbackChannel with procedurally
// generated tones. Terminals have no haptics, so the haptic pulse maps to a
// low audible thump; when no audio backend is available the channel degrades
// to silence instead of failing.
package feedback

import (
	"time"

	"github.com/charmbracelet/log"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

const sampleRate = beep.SampleRate(44100)

// Engine plays hit and pulse cues through the system speaker.
type Engine struct {
	enabled bool
	logger  *log.Logger
}

// NewEngine initializes the speaker. On failure the engine stays disabled
// and every cue is a no-op.
func NewEngine(logger *log.Logger) *Engine {
	e := &Engine{logger: logger}
	if err := speaker.Init(sampleRate, sampleRate.N(time.Millisecond*100)); err != nil {
		logger.Warn("audio unavailable, feedback disabled", "error", err)
		return e
	}
	e.enabled = true
	return e
}

// Enabled reports whether an audio backend was found.
func (e *Engine) Enabled() bool {
	return e.enabled
}

// PlayHitSound plays a short rising two-note chirp.
func (e *Engine) PlayHitSound() {
	if !e.enabled {
		return
	}
	n1 := newTone(880, 60*time.Millisecond)
	n2 := newTone(1320, 80*time.Millisecond)
	speaker.Play(beep.Seq(n1, n2))
}

// TriggerHapticPulse plays a low thump on the beat.
func (e *Engine) TriggerHapticPulse() {
	if !e.enabled {
		return
	}
	speaker.Play(newTone(220, 40*time.Millisecond))
}

func newTone(freq float64, d time.Duration) beep.Streamer {
	return newEnvelope(newSine(freq, d), d, 5*time.Millisecond, 15*time.Millisecond)
}
