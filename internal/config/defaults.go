package config

import (
	_ "embed"
)

//go:embed defaults/gigili.yaml
var defaultGigiliYAML []byte

// DefaultGigiliConfig returns the built-in tuning, used when even the
// embedded YAML cannot be parsed.
func DefaultGigiliConfig() GigiliConfig {
	return GigiliConfig{
		Player: PlayerConfig{
			Speed: 0.1,
		},
		Enemies: EnemyConfig{
			Count: 4,
			Speed: 0.08,
		},
		Modes: ModeConfig{
			SwitchSeconds: 15,
		},
		Difficulty: DifficultyConfig{
			Easy:   PresetScaling{SpeedFactor: 0.75, EnemyDelta: -1},
			Normal: PresetScaling{SpeedFactor: 1.0},
			Hard:   PresetScaling{SpeedFactor: 1.25, EnemyDelta: 2},
		},
	}
}
