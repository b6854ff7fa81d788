// Package config provides YAML-based game configuration loading and
// validation for beatfall.
package config

import (
	"math"

	"github.com/vovakirdan/beatfall/internal/core"
)

// GameConfig contains all tunable parameters for a beatfall session.
type GameConfig struct {
	Targets   TargetsConfig   `yaml:"targets"`
	Beat      BeatConfig      `yaml:"beat"`
	Placement PlacementConfig `yaml:"placement"`
	Objective ObjectiveConfig `yaml:"objective"`
}

// TargetsConfig defines how many targets a level spawns and their value.
type TargetsConfig struct {
	Min             int `yaml:"min"`
	Max             int `yaml:"max"`
	Increment       int `yaml:"increment"`
	PointsPerTarget int `yaml:"points_per_target"`
}

// BeatConfig defines the shared beat interval and its per-level scaling.
// Intervals are in seconds.
type BeatConfig struct {
	BaseInterval     float64 `yaml:"base_interval"`
	MinInterval      float64 `yaml:"min_interval"`
	MaxInterval      float64 `yaml:"max_interval"`
	DecreasePerLevel float64 `yaml:"decrease_per_level"`
}

// PlacementConfig defines target placement and the secondary placement
// limit handed to the external placement collaborator.
type PlacementConfig struct {
	BaseLimit             int     `yaml:"base_limit"`
	MinLimit              int     `yaml:"min_limit"`
	MaxLimit              int     `yaml:"max_limit"`
	LimitDecreasePerLevel float64 `yaml:"limit_decrease_per_level"`

	SpawnRadius      float64   `yaml:"spawn_radius"`
	MinSpawnDistance float64   `yaml:"min_spawn_distance"`
	MaxSpawnAttempts int       `yaml:"max_spawn_attempts"`
	SpawnRoot        SpawnRoot `yaml:"spawn_root"`
	ClearPrevious    bool      `yaml:"clear_previous"`
}

// SpawnRoot is the world-space anchor point targets are placed around.
type SpawnRoot struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
	Z float64 `yaml:"z"`
}

// Vec3 converts the spawn root to a core vector.
func (s SpawnRoot) Vec3() core.Vec3 {
	return core.Vec3{X: s.X, Y: s.Y, Z: s.Z}
}

// ObjectiveConfig defines per-target behavior. DestroyDelay is in seconds.
type ObjectiveConfig struct {
	DestroyDelay    float64 `yaml:"destroy_delay"`
	LoopPulse       bool    `yaml:"loop_pulse"`
	AllowRepeatHits bool    `yaml:"allow_repeat_hits"`
}

// Validate returns a copy of cfg with every field clamped into its valid
// range. It is deterministic and side-effect free; callers run it after
// every load or reload so the rest of the game never sees an out-of-range
// value.
func Validate(cfg GameConfig) GameConfig {
	c := cfg

	if c.Targets.Min < 1 {
		c.Targets.Min = 1
	}
	if c.Targets.Max < c.Targets.Min {
		c.Targets.Max = c.Targets.Min
	}
	if c.Targets.Increment < 0 {
		c.Targets.Increment = 0
	}
	if c.Targets.PointsPerTarget < 1 {
		c.Targets.PointsPerTarget = 1
	}

	if c.Beat.MinInterval <= 0 {
		c.Beat.MinInterval = 0.05
	}
	if c.Beat.MaxInterval < c.Beat.MinInterval {
		c.Beat.MaxInterval = c.Beat.MinInterval
	}
	c.Beat.BaseInterval = core.ClampF(c.Beat.BaseInterval, c.Beat.MinInterval, c.Beat.MaxInterval)
	if c.Beat.DecreasePerLevel < 0 {
		c.Beat.DecreasePerLevel = 0
	}

	if c.Placement.MinLimit < 0 {
		c.Placement.MinLimit = 0
	}
	if c.Placement.MaxLimit < c.Placement.MinLimit {
		c.Placement.MaxLimit = c.Placement.MinLimit
	}
	c.Placement.BaseLimit = core.Clamp(c.Placement.BaseLimit, c.Placement.MinLimit, c.Placement.MaxLimit)
	if c.Placement.LimitDecreasePerLevel < 0 || math.IsNaN(c.Placement.LimitDecreasePerLevel) {
		c.Placement.LimitDecreasePerLevel = 0
	}
	if c.Placement.SpawnRadius <= 0 {
		c.Placement.SpawnRadius = 1
	}
	if c.Placement.MinSpawnDistance < 0 {
		c.Placement.MinSpawnDistance = 0
	}
	if c.Placement.MaxSpawnAttempts < 1 {
		c.Placement.MaxSpawnAttempts = 1
	}

	if c.Objective.DestroyDelay < 0 {
		c.Objective.DestroyDelay = 0
	}

	return c
}
