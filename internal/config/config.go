// Package config loads the YAML tuning file for Gigili.
package config

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalid wraps every validation failure.
var ErrInvalid = errors.New("config: invalid")

// Limits enforced by Validate.
const (
	MaxSpeed      = 0.5 // A faster entity could skip a tile in one tick
	MaxEnemies    = 16
	MaxNameLength = 15
)

// GigiliConfig holds all tunable gameplay values.
type GigiliConfig struct {
	Player     PlayerConfig     `yaml:"player"`
	Enemies    EnemyConfig      `yaml:"enemies"`
	Modes      ModeConfig       `yaml:"modes"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// PlayerConfig defines the player's motion.
type PlayerConfig struct {
	Speed float64 `yaml:"speed"` // Tiles per tick
}

// EnemyConfig defines the enemy pack.
type EnemyConfig struct {
	Count int     `yaml:"count"`
	Speed float64 `yaml:"speed"` // Tiles per tick
}

// ModeConfig defines the chase/scatter cadence.
type ModeConfig struct {
	SwitchSeconds float64 `yaml:"switch_seconds"`
}

// IntervalTicks converts the switch period to simulation ticks.
func (m ModeConfig) IntervalTicks(tickRate int) int {
	return int(math.Round(m.SwitchSeconds * float64(tickRate)))
}

// Validate checks every value against its allowed range.
func (c GigiliConfig) Validate() error {
	switch {
	case c.Player.Speed <= 0 || c.Player.Speed > MaxSpeed:
		return fmt.Errorf("%w: player.speed %v not in (0, %v]", ErrInvalid, c.Player.Speed, MaxSpeed)
	case c.Enemies.Speed <= 0 || c.Enemies.Speed > MaxSpeed:
		return fmt.Errorf("%w: enemies.speed %v not in (0, %v]", ErrInvalid, c.Enemies.Speed, MaxSpeed)
	case c.Enemies.Count < 0 || c.Enemies.Count > MaxEnemies:
		return fmt.Errorf("%w: enemies.count %d not in [0, %d]", ErrInvalid, c.Enemies.Count, MaxEnemies)
	case c.Modes.SwitchSeconds <= 0:
		return fmt.Errorf("%w: modes.switch_seconds %v must be positive", ErrInvalid, c.Modes.SwitchSeconds)
	}
	return c.Difficulty.validate()
}
