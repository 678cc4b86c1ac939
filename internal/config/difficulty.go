package config

import (
	"fmt"
	"math"
)

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// Presets lists the accepted preset names in flag help order.
func Presets() []DifficultyPreset {
	return []DifficultyPreset{DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed}
}

// PresetScaling adjusts the enemy pack for one preset.
type PresetScaling struct {
	SpeedFactor float64 `yaml:"speed_factor"` // Multiplies enemies.speed
	EnemyDelta  int     `yaml:"enemy_delta"`  // Added to enemies.count
}

// DifficultyConfig holds the scaling applied by each preset.
type DifficultyConfig struct {
	Easy   PresetScaling `yaml:"easy"`
	Normal PresetScaling `yaml:"normal"`
	Hard   PresetScaling `yaml:"hard"`
}

func (d DifficultyConfig) validate() error {
	for name, s := range map[string]PresetScaling{"easy": d.Easy, "normal": d.Normal, "hard": d.Hard} {
		if s.SpeedFactor <= 0 {
			return fmt.Errorf("%w: difficulty.%s.speed_factor %v must be positive", ErrInvalid, name, s.SpeedFactor)
		}
	}
	return nil
}

// ParsePreset validates a preset name. The empty string means normal.
func ParsePreset(s string) (DifficultyPreset, error) {
	if s == "" {
		return DifficultyNormal, nil
	}
	for _, p := range Presets() {
		if string(p) == s {
			return p, nil
		}
	}
	return "", fmt.Errorf("%w: unknown difficulty %q (want easy, normal, hard or fixed)", ErrInvalid, s)
}

// ApplyGigiliPreset scales the enemy pack in place. Scaled values are clamped
// into the ranges Validate accepts; fixed leaves the file values untouched.
func ApplyGigiliPreset(cfg *GigiliConfig, preset DifficultyPreset) error {
	var s PresetScaling
	switch preset {
	case DifficultyEasy:
		s = cfg.Difficulty.Easy
	case DifficultyNormal:
		s = cfg.Difficulty.Normal
	case DifficultyHard:
		s = cfg.Difficulty.Hard
	case DifficultyFixed:
		return nil
	default:
		return fmt.Errorf("%w: unknown difficulty %q", ErrInvalid, preset)
	}

	cfg.Enemies.Speed = clampF(cfg.Enemies.Speed*s.SpeedFactor, 0.01, MaxSpeed)

	count := cfg.Enemies.Count + s.EnemyDelta
	if cfg.Enemies.Count > 0 {
		// A preset never removes the last enemy.
		count = max(count, 1)
	}
	cfg.Enemies.Count = min(max(count, 0), MaxEnemies)
	return nil
}

func clampF(val, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, val))
}
