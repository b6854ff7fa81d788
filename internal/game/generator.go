package game

import (
	"errors"
	"fmt"
	"math"
	"math/rand"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/beatfall/internal/config"
	"github.com/vovakirdan/beatfall/internal/core"
)

// ErrGenerationInProgress is returned when Generate is re-entered, e.g.
// from a subscriber callback fired during generation. Calls are rejected,
// never queued.
var ErrGenerationInProgress = errors.New("level generation already in progress")

// Generator materializes a level's targets and configures the beat clock.
// It exclusively owns the spawn list: targets are destroyed individually
// after being hit or in bulk when the level is cleared or regenerated.
type Generator struct {
	cfg      config.GameConfig
	curve    Curve
	clock    *BeatClock
	reporter HitReporter
	hub      *Hub
	feedback FeedbackChannel
	logger   *log.Logger
	rng      *rand.Rand

	objectives []*Objective
	generating bool
	nextID     int

	placementLimit int
}

// NewGenerator creates a generator seeded for deterministic placement.
func NewGenerator(cfg config.GameConfig, clock *BeatClock, reporter HitReporter,
	hub *Hub, feedback FeedbackChannel, seed int64, logger *log.Logger) *Generator {
	if feedback == nil {
		feedback = NopFeedback{}
	}
	return &Generator{
		cfg:      cfg,
		curve:    NewCurve(cfg),
		clock:    clock,
		reporter: reporter,
		hub:      hub,
		feedback: feedback,
		logger:   logger,
		rng:      rand.New(rand.NewSource(seed)),
	}
}

// Objectives returns the current spawn list.
func (g *Generator) Objectives() []*Objective {
	return g.objectives
}

// PlacementLimit returns the limit computed for the most recent level. It is
// consumed by the external placement collaborator, not by the core itself.
func (g *Generator) PlacementLimit() int {
	return g.placementLimit
}

// Generate clears the previous level (when configured to) and spawns the
// targets for the given level, pushing the level's beat interval into the
// clock first. Targets spawn Active. Failures surface as a generationError
// notification; the clock keeps whatever interval was set.
func (g *Generator) Generate(level int) error {
	if g.generating {
		g.logger.Error("level generation rejected", "level", level, "reason", "generation in progress")
		g.hub.emitGenerationError(ErrGenerationInProgress.Error())
		return ErrGenerationInProgress
	}
	g.generating = true
	defer func() { g.generating = false }()

	if g.cfg.Placement.ClearPrevious {
		g.Clear()
	}

	count := g.curve.TargetCount(level)
	g.placementLimit = g.curve.PlacementLimit(level)
	g.clock.SetInterval(g.curve.BeatInterval(level))

	if err := g.spawn(count); err != nil {
		g.logger.Error("level generation failed", "level", level, "error", err)
		g.hub.emitGenerationError(err.Error())
		return err
	}

	g.hub.emitLevelGenerated(level, count)
	return nil
}

// Tick advances every spawned target and prunes the ones that reached the
// Destroyed state.
func (g *Generator) Tick(dt float64) {
	alive := g.objectives[:0]
	for _, obj := range g.objectives {
		obj.Tick(dt)
		if obj.State() != StateDestroyed {
			alive = append(alive, obj)
		}
	}
	g.objectives = alive
}

// Clear destroys every tracked target and empties the spawn list.
func (g *Generator) Clear() {
	for _, obj := range g.objectives {
		obj.Destroy()
	}
	g.objectives = g.objectives[:0]
}

// spawn places count targets. Panics raised while spawning are contained
// here and converted to an error so a bad placement collaborator cannot
// crash the caller.
func (g *Generator) spawn(count int) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("spawning targets: %v", r)
		}
	}()

	placed := make([]core.Vec3, 0, count)
	for i := 0; i < count; i++ {
		pos := g.placePosition(placed)
		placed = append(placed, pos)

		obj := NewObjective(g.nextID, pos, g.clock.Interval(), g.cfg.Targets.PointsPerTarget,
			g.cfg.Objective, g.reporter, g.hub, g.feedback, g.logger)
		g.nextID++
		obj.Start()
		g.objectives = append(g.objectives, obj)
	}
	return nil
}

// placePosition samples candidate positions within a disk around the spawn
// root until one keeps the minimum separation from every already-placed
// target. After the attempt budget is exhausted it falls back to one final
// unchecked sample, so placement always succeeds in bounded time even under
// a degenerate configuration.
func (g *Generator) placePosition(placed []core.Vec3) core.Vec3 {
	p := g.cfg.Placement
	root := p.SpawnRoot.Vec3()

	for attempt := 0; attempt < p.MaxSpawnAttempts; attempt++ {
		cand := g.sampleDisk(root, p.SpawnRadius)
		if minSeparation(cand, placed, p.MinSpawnDistance) {
			return cand
		}
	}
	return g.sampleDisk(root, p.SpawnRadius)
}

// sampleDisk returns a uniformly distributed point within the disk of the
// given radius around root, with the height component pinned to root's.
func (g *Generator) sampleDisk(root core.Vec3, radius float64) core.Vec3 {
	angle := g.rng.Float64() * 2 * math.Pi
	dist := radius * math.Sqrt(g.rng.Float64())
	return core.Vec3{
		X: root.X + math.Cos(angle)*dist,
		Y: root.Y,
		Z: root.Z + math.Sin(angle)*dist,
	}
}

// minSeparation reports whether cand is at least d away from every point.
func minSeparation(cand core.Vec3, points []core.Vec3, d float64) bool {
	for _, p := range points {
		if cand.Dist(p) < d {
			return false
		}
	}
	return true
}
