package game

import (
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/beatfall/internal/config"
	"github.com/vovakirdan/beatfall/internal/core"
)

// BeatClock holds the single shared beat interval and broadcasts pulses to
// subscribers. The generator writes the interval once per level; targets
// read it once at spawn time. Pulses are driven by the host loop calling
// Tick, never by a background timer.
type BeatClock struct {
	interval float64
	active   bool
	elapsed  float64

	minInterval float64
	maxInterval float64

	hub      *Hub
	feedback FeedbackChannel
	logger   *log.Logger

	pulseSubs []func()
}

// NewBeatClock creates a clock at the configured base interval, stopped.
func NewBeatClock(cfg config.BeatConfig, hub *Hub, feedback FeedbackChannel, logger *log.Logger) *BeatClock {
	if feedback == nil {
		feedback = NopFeedback{}
	}
	return &BeatClock{
		interval:    core.ClampF(cfg.BaseInterval, cfg.MinInterval, cfg.MaxInterval),
		minInterval: cfg.MinInterval,
		maxInterval: cfg.MaxInterval,
		hub:         hub,
		feedback:    feedback,
		logger:      logger,
	}
}

// Interval returns the current beat interval in seconds.
func (c *BeatClock) Interval() float64 {
	return c.interval
}

// IsActive reports whether the clock is running.
func (c *BeatClock) IsActive() bool {
	return c.active
}

// SetInterval clamps v into the configured bounds and stores it. An
// interval-changed notification fires only when the clamped value differs
// from the current one.
func (c *BeatClock) SetInterval(v float64) {
	clamped := core.ClampF(v, c.minInterval, c.maxInterval)
	if clamped == c.interval {
		return
	}
	c.interval = clamped
	c.hub.emitIntervalChanged(clamped)
}

// Start activates the clock. Starting an already running clock is a no-op.
func (c *BeatClock) Start() {
	if c.active {
		c.logger.Warn("beat clock already running")
		return
	}
	c.active = true
	c.elapsed = 0
}

// Stop deactivates the clock. Stopping an inactive clock is a no-op.
func (c *BeatClock) Stop() {
	if !c.active {
		c.logger.Warn("beat clock already stopped")
		return
	}
	c.active = false
}

// OnPulse subscribes to clock pulses. Subscribers are invoked synchronously
// in registration order.
func (c *BeatClock) OnPulse(fn func()) {
	c.pulseSubs = append(c.pulseSubs, fn)
}

// Pulse broadcasts one beat to all subscribers and requests a haptic cue.
// Normally invoked from Tick; exposed for external tick drivers.
func (c *BeatClock) Pulse() {
	for _, fn := range c.pulseSubs {
		fn()
	}
	c.feedback.TriggerHapticPulse()
}

// Tick advances the clock by dt seconds, emitting a pulse each time the
// accumulated time crosses the interval.
func (c *BeatClock) Tick(dt float64) {
	if !c.active || c.interval <= 0 {
		return
	}
	c.elapsed += dt
	for c.elapsed >= c.interval {
		c.elapsed -= c.interval
		c.Pulse()
	}
}
