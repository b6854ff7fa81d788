package game

import (
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/beatfall/internal/config"
	"github.com/vovakirdan/beatfall/internal/core"
)

// ObjectiveState is the lifecycle state of a spawned target.
// Transitions are linear: Idle -> Active -> Hit -> Destroyed.
type ObjectiveState int

const (
	StateIdle ObjectiveState = iota
	StateActive
	StateHit
	StateDestroyed
)

func (s ObjectiveState) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateActive:
		return "active"
	case StateHit:
		return "hit"
	case StateDestroyed:
		return "destroyed"
	default:
		return "unknown"
	}
}

// HitReporter receives hit reports from targets. *Session is the production
// implementation.
type HitReporter interface {
	ObjectiveHit() bool
}

// Objective is one spawned target. It self-pulses on a local timer seeded
// from the beat clock's interval at spawn time; later interval changes do
// not affect it. Owned by the generator's spawn list and does not outlive
// its level generation cycle.
type Objective struct {
	ID           int
	Position     core.Vec3
	BeatInterval float64
	ScoreValue   int

	state        ObjectiveState
	timer        float64
	destroyTimer float64
	pulsed       bool

	cfg      config.ObjectiveConfig
	reporter HitReporter
	hub      *Hub
	feedback FeedbackChannel
	logger   *log.Logger
}

// NewObjective creates a target in the Idle state.
func NewObjective(id int, pos core.Vec3, beatInterval float64, scoreValue int,
	cfg config.ObjectiveConfig, reporter HitReporter, hub *Hub,
	feedback FeedbackChannel, logger *log.Logger) *Objective {
	if feedback == nil {
		feedback = NopFeedback{}
	}
	return &Objective{
		ID:           id,
		Position:     pos,
		BeatInterval: beatInterval,
		ScoreValue:   scoreValue,
		state:        StateIdle,
		cfg:          cfg,
		reporter:     reporter,
		hub:          hub,
		feedback:     feedback,
		logger:       logger,
	}
}

// State returns the current lifecycle state.
func (o *Objective) State() ObjectiveState {
	return o.state
}

// Start moves the target from Idle to Active. Any other state is a no-op.
func (o *Objective) Start() {
	if o.state != StateIdle {
		o.logger.Warn("objective already started", "id", o.ID, "state", o.state)
		return
	}
	o.state = StateActive
}

// Tick advances the target's local timers by dt seconds. While Active the
// pulse timer accumulates and emits a pulse notification each time it
// reaches the beat interval; after a hit the destroy timer counts down to
// the Destroyed state.
func (o *Objective) Tick(dt float64) {
	switch o.state {
	case StateActive:
		if o.BeatInterval <= 0 {
			return
		}
		if o.pulsed && !o.cfg.LoopPulse {
			return
		}
		o.timer += dt
		if o.timer >= o.BeatInterval {
			o.timer = 0
			o.pulsed = true
			o.hub.emitObjectivePulse(o.ID)
		}

	case StateHit:
		o.destroyTimer -= dt
		if o.destroyTimer <= 0 {
			o.state = StateDestroyed
		}
	}
}

// Hit registers a tap on the target. Accepted while not already Hit (unless
// repeat hits are enabled); on acceptance the target transitions to Hit,
// reports its score, emits a hit notification and schedules destruction.
// Rejected calls warn and leave state unchanged.
func (o *Objective) Hit() bool {
	if o.state == StateDestroyed {
		o.logger.Warn("hit on destroyed objective ignored", "id", o.ID)
		return false
	}
	if o.state == StateHit && !o.cfg.AllowRepeatHits {
		o.logger.Warn("repeat hit ignored", "id", o.ID)
		return false
	}

	if o.state != StateHit {
		o.destroyTimer = o.cfg.DestroyDelay
	}
	o.state = StateHit

	if o.reporter != nil {
		o.reporter.ObjectiveHit()
	}
	o.hub.emitObjectiveHit(o.ID)
	o.feedback.PlayHitSound()
	return true
}

// Destroy forces the target into the Destroyed state. Used by the generator
// when a level is cleared or regenerated.
func (o *Objective) Destroy() {
	o.state = StateDestroyed
}
