// Package game implements the beatfall gameplay core: difficulty scaling,
// the shared beat clock, level generation with randomized target placement,
// per-target state machines, and the session state that ties them together.
//
// The core is single-threaded and tick-driven. Every public operation runs
// to completion synchronously; no locking is required or used.
package game

// Hub delivers gameplay notifications to subscribers. Each notification type
// keeps an explicit ordered list of callbacks, invoked synchronously in
// registration order before the triggering call returns. Callers can rely on
// fully updated state inside a callback.
type Hub struct {
	scoreChanged      []func(score int)
	levelChanged      []func(level int)
	objectivesChanged []func(count int)
	levelCompleted    []func()
	gameStarted       []func()
	nameChanged       []func(name string)
	objectiveHit      []func(id int)
	objectivePulse    []func(id int)
	intervalChanged   []func(interval float64)
	levelGenerated    []func(level, count int)
	generationError   []func(msg string)
}

// NewHub creates an empty notification hub.
func NewHub() *Hub {
	return &Hub{}
}

// OnScoreChanged subscribes to score updates.
func (h *Hub) OnScoreChanged(fn func(score int)) {
	h.scoreChanged = append(h.scoreChanged, fn)
}

// OnLevelChanged subscribes to level number updates.
func (h *Hub) OnLevelChanged(fn func(level int)) {
	h.levelChanged = append(h.levelChanged, fn)
}

// OnObjectivesRemainingChanged subscribes to remaining-target updates.
func (h *Hub) OnObjectivesRemainingChanged(fn func(count int)) {
	h.objectivesChanged = append(h.objectivesChanged, fn)
}

// OnLevelCompleted subscribes to level completion.
func (h *Hub) OnLevelCompleted(fn func()) {
	h.levelCompleted = append(h.levelCompleted, fn)
}

// OnGameStarted subscribes to level starts.
func (h *Hub) OnGameStarted(fn func()) {
	h.gameStarted = append(h.gameStarted, fn)
}

// OnPlayerNameChanged subscribes to player name updates.
func (h *Hub) OnPlayerNameChanged(fn func(name string)) {
	h.nameChanged = append(h.nameChanged, fn)
}

// OnObjectiveHit subscribes to successful target hits.
func (h *Hub) OnObjectiveHit(fn func(id int)) {
	h.objectiveHit = append(h.objectiveHit, fn)
}

// OnObjectivePulse subscribes to per-target beat pulses.
func (h *Hub) OnObjectivePulse(fn func(id int)) {
	h.objectivePulse = append(h.objectivePulse, fn)
}

// OnIntervalChanged subscribes to beat interval updates.
func (h *Hub) OnIntervalChanged(fn func(interval float64)) {
	h.intervalChanged = append(h.intervalChanged, fn)
}

// OnLevelGenerated subscribes to level generation results.
func (h *Hub) OnLevelGenerated(fn func(level, count int)) {
	h.levelGenerated = append(h.levelGenerated, fn)
}

// OnGenerationError subscribes to level generation failures.
func (h *Hub) OnGenerationError(fn func(msg string)) {
	h.generationError = append(h.generationError, fn)
}

func (h *Hub) emitScoreChanged(score int) {
	for _, fn := range h.scoreChanged {
		fn(score)
	}
}

func (h *Hub) emitLevelChanged(level int) {
	for _, fn := range h.levelChanged {
		fn(level)
	}
}

func (h *Hub) emitObjectivesChanged(count int) {
	for _, fn := range h.objectivesChanged {
		fn(count)
	}
}

func (h *Hub) emitLevelCompleted() {
	for _, fn := range h.levelCompleted {
		fn()
	}
}

func (h *Hub) emitGameStarted() {
	for _, fn := range h.gameStarted {
		fn()
	}
}

func (h *Hub) emitPlayerNameChanged(name string) {
	for _, fn := range h.nameChanged {
		fn(name)
	}
}

func (h *Hub) emitObjectiveHit(id int) {
	for _, fn := range h.objectiveHit {
		fn(id)
	}
}

func (h *Hub) emitObjectivePulse(id int) {
	for _, fn := range h.objectivePulse {
		fn(id)
	}
}

func (h *Hub) emitIntervalChanged(interval float64) {
	for _, fn := range h.intervalChanged {
		fn(interval)
	}
}

func (h *Hub) emitLevelGenerated(level, count int) {
	for _, fn := range h.levelGenerated {
		fn(level, count)
	}
}

func (h *Hub) emitGenerationError(msg string) {
	for _, fn := range h.generationError {
		fn(msg)
	}
}
