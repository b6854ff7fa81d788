package config

import (
	_ "embed"
)

//go:embed defaults/game.yaml
var defaultGameYAML []byte

// DefaultConfig returns the default game configuration. Kept in sync with
// defaults/game.yaml; used as a last resort when the embedded YAML cannot
// be parsed.
func DefaultConfig() GameConfig {
	return GameConfig{
		Targets: TargetsConfig{
			Min:             3,
			Max:             30,
			Increment:       2,
			PointsPerTarget: 10,
		},
		Beat: BeatConfig{
			BaseInterval:     1.0,
			MinInterval:      0.3,
			MaxInterval:      2.0,
			DecreasePerLevel: 0.05,
		},
		Placement: PlacementConfig{
			BaseLimit:             10,
			MinLimit:              2,
			MaxLimit:              10,
			LimitDecreasePerLevel: 0.5,
			SpawnRadius:           5.0,
			MinSpawnDistance:      1.2,
			MaxSpawnAttempts:      20,
			ClearPrevious:         true,
		},
		Objective: ObjectiveConfig{
			DestroyDelay:    0.5,
			LoopPulse:       true,
			AllowRepeatHits: false,
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultGameYAML
}
