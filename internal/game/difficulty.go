package game

import (
	"math"

	"github.com/vovakirdan/beatfall/internal/config"
	"github.com/vovakirdan/beatfall/internal/core"
)

// Curve derives per-level difficulty parameters from configured bounds.
// All three parameters share the same shape: a linear term in (level-1)
// followed by a hard clamp. Pure; no state.
type Curve struct {
	cfg config.GameConfig
}

// NewCurve creates a difficulty curve over a validated configuration.
func NewCurve(cfg config.GameConfig) Curve {
	return Curve{cfg: cfg}
}

// TargetCount returns how many targets the given level spawns.
// The formula is evaluated first and then clamped, so level <= 0 collapses
// to the configured minimum rather than being an error.
func (c Curve) TargetCount(level int) int {
	t := c.cfg.Targets
	return core.Clamp(t.Min+(level-1)*t.Increment, t.Min, t.Max)
}

// BeatInterval returns the shared beat interval (seconds) for the level.
func (c Curve) BeatInterval(level int) float64 {
	b := c.cfg.Beat
	return core.ClampF(b.BaseInterval-float64(level-1)*b.DecreasePerLevel, b.MinInterval, b.MaxInterval)
}

// PlacementLimit returns the secondary placement bound for the level,
// consumed by the external placement collaborator. The decrement term is
// rounded half away from zero before subtracting.
func (c Curve) PlacementLimit(level int) int {
	p := c.cfg.Placement
	dec := int(math.Round(float64(level-1) * p.LimitDecreasePerLevel))
	return core.Clamp(p.BaseLimit-dec, p.MinLimit, p.MaxLimit)
}
