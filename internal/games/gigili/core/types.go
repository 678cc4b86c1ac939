// Package core provides the simulation engine for the Gigili maze chase.
// This package is UI-agnostic and deterministic for a given RNG seed.
package core

import (
	"fmt"
	"math"
)

// Collision and decision tuning. The decision-time box and the commit-time box
// must stay distinct.
const (
	CaptureRadius = 0.5 // Player/enemy and player/item proximity threshold

	CommitHitbox = 0.7                    // Side of the box tested when committing motion
	CommitInset  = (1 - CommitHitbox) / 2 // 0.15 from each edge of the occupied tile

	DecisionMargin = 0.1 // Inset of the box tested by IsValidMove
	DecisionSize   = 0.8 // Extent of the box tested by IsValidMove

	TurnTolerance  = 0.4 // Max distance from the turn axis for a player turn
	CenterEpsilon  = 0.1 // Enemy counts as centered within this distance of a tile
	WanderChance   = 0.05
	BlunderChance  = 0.05
	ScatterInset   = 1 // Scatter corners sit this many tiles in from the edges
	scatterCorners = 4
)

// Direction is one of the four axis moves, or DirNone when standing still.
type Direction uint8

const (
	DirNone Direction = iota
	DirUp
	DirDown
	DirLeft
	DirRight
)

// AllDirections lists the four real directions in the order enemies evaluate them.
var AllDirections = [4]Direction{DirUp, DirDown, DirLeft, DirRight}

// String returns the direction name.
func (d Direction) String() string {
	switch d {
	case DirUp:
		return "Up"
	case DirDown:
		return "Down"
	case DirLeft:
		return "Left"
	case DirRight:
		return "Right"
	default:
		return "None"
	}
}

// Delta returns the unit (dx, dy) offset for this direction.
// Up decreases Y, Down increases Y (screen coordinates).
func (d Direction) Delta() (dx, dy int) {
	switch d {
	case DirUp:
		return 0, -1
	case DirDown:
		return 0, 1
	case DirLeft:
		return -1, 0
	case DirRight:
		return 1, 0
	default:
		return 0, 0
	}
}

// Opposite returns the reversing direction. DirNone has no opposite.
func (d Direction) Opposite() Direction {
	switch d {
	case DirUp:
		return DirDown
	case DirDown:
		return DirUp
	case DirLeft:
		return DirRight
	case DirRight:
		return DirLeft
	default:
		return DirNone
	}
}

// IsReverse reports whether other reverses d.
func (d Direction) IsReverse(other Direction) bool {
	return d != DirNone && d.Opposite() == other
}

// Vertical reports whether the direction moves along the Y axis.
func (d Direction) Vertical() bool {
	return d == DirUp || d == DirDown
}

// Position is a continuous point in tile units; (x, y) is the top-left of the
// 1x1 tile an entity occupies.
type Position struct {
	X float64
	Y float64
}

// P is a convenience constructor for Position.
func P(x, y float64) Position {
	return Position{X: x, Y: y}
}

// Step returns the position offset by dist along d.
func (p Position) Step(d Direction, dist float64) Position {
	dx, dy := d.Delta()
	return Position{X: p.X + float64(dx)*dist, Y: p.Y + float64(dy)*dist}
}

// Tile returns the nearest grid cell.
func (p Position) Tile() Tile {
	return Tile{X: int(math.Round(p.X)), Y: int(math.Round(p.Y))}
}

// Dist returns the Euclidean distance to other.
func (p Position) Dist(other Position) float64 {
	return math.Hypot(p.X-other.X, p.Y-other.Y)
}

// Centered reports whether p lies within eps of its rounded tile on both axes.
func (p Position) Centered(eps float64) bool {
	return math.Abs(p.X-math.Round(p.X)) < eps && math.Abs(p.Y-math.Round(p.Y)) < eps
}

// String returns a string representation of the position.
func (p Position) String() string {
	return fmt.Sprintf("(%.2f,%.2f)", p.X, p.Y)
}

// Tile is an integer grid coordinate.
type Tile struct {
	X int
	Y int
}

// T is a convenience constructor for Tile.
func T(x, y int) Tile {
	return Tile{X: x, Y: y}
}

// Step returns the neighbouring tile in direction d.
func (t Tile) Step(d Direction) Tile {
	dx, dy := d.Delta()
	return Tile{X: t.X + dx, Y: t.Y + dy}
}

// Position returns the tile's top-left corner as a continuous position.
func (t Tile) Position() Position {
	return Position{X: float64(t.X), Y: float64(t.Y)}
}

// String returns a string representation of the tile.
func (t Tile) String() string {
	return fmt.Sprintf("(%d,%d)", t.X, t.Y)
}

// Status is the lifecycle state of a session.
type Status uint8

const (
	StatusPlaying Status = iota
	StatusGameOver
	StatusVictory
)

// String returns the status name.
func (s Status) String() string {
	switch s {
	case StatusPlaying:
		return "playing"
	case StatusGameOver:
		return "game_over"
	case StatusVictory:
		return "victory"
	default:
		return "unknown"
	}
}

// Terminal reports whether no further ticks change the session.
func (s Status) Terminal() bool {
	return s != StatusPlaying
}

// Mode is the enemy behaviour shared by every enemy in a session.
type Mode uint8

const (
	ModeChase Mode = iota
	ModeScatter
)

// String returns the mode name.
func (m Mode) String() string {
	if m == ModeScatter {
		return "scatter"
	}
	return "chase"
}
