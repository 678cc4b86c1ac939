package core

import (
	"fmt"
	"math/rand"
)

// Entity is the movable state shared by the player and enemies.
type Entity struct {
	Pos   Position
	Dir   Direction
	Speed float64 // Tiles per tick, constant for the session
}

// Enemy is an autonomous chaser. Index is its spawn order and selects its
// scatter corner; enemies hold no mode of their own.
type Enemy struct {
	Entity
	ID    string
	Index int
}

// NewEnemy creates an enemy at a spawn tile.
func NewEnemy(index int, spawn Tile, dir Direction, speed float64) Enemy {
	return Enemy{
		Entity: Entity{Pos: spawn.Position(), Dir: dir, Speed: speed},
		ID:     fmt.Sprintf("enemy-%d", index),
		Index:  index,
	}
}

// ModeTimer flips the shared enemy mode every Interval ticks.
// It only advances when the session steps, so pausing suspends it.
type ModeTimer struct {
	Mode     Mode
	Interval int // Ticks per mode; <= 0 disables switching
	elapsed  int
}

// NewModeTimer returns a timer starting in chase mode.
func NewModeTimer(interval int) ModeTimer {
	return ModeTimer{Mode: ModeChase, Interval: interval}
}

// Advance counts one tick and reports whether the mode flipped.
func (t *ModeTimer) Advance() bool {
	if t.Interval <= 0 {
		return false
	}
	t.elapsed++
	if t.elapsed < t.Interval {
		return false
	}
	t.elapsed = 0
	if t.Mode == ModeChase {
		t.Mode = ModeScatter
	} else {
		t.Mode = ModeChase
	}
	return true
}

// Pursuit is the tick-scoped context every enemy decision reads: the maze,
// the session RNG, the shared mode and the player's already-moved position.
type Pursuit struct {
	Maze   *Maze
	Rng    *rand.Rand
	Mode   Mode
	Player Position
}

// UpdateEnemy runs one tick of enemy logic and reports whether the enemy
// ends within capture range of the player.
//
// Enemies keep their heading between decision points. A decision happens when
// the current heading is blocked, or when the enemy sits on a tile center that
// is a junction or corner (or wins the wander roll).
func (p *Pursuit) UpdateEnemy(e *Enemy) bool {
	m := p.Maze

	tentative := m.NextPosition(e.Pos, e.Dir, e.Speed)
	hitWall := tentative == e.Pos
	centered := e.Pos.Centered(CenterEpsilon)
	valid := m.ValidDirections(e.Pos, e.Speed)

	if hitWall || (centered && (IsIntersection(valid) || p.Rng.Float64() < WanderChance)) {
		e.Dir = p.decide(e, valid)
	}

	e.Pos = m.NextPosition(e.Pos, e.Dir, e.Speed)
	return e.Pos.Dist(p.Player) < CaptureRadius
}

// decide picks a new heading from the valid directions.
func (p *Pursuit) decide(e *Enemy, valid []Direction) Direction {
	if len(valid) == 0 {
		return DirNone
	}

	candidates := make([]Direction, 0, len(valid))
	for _, d := range valid {
		if !e.Dir.IsReverse(d) {
			candidates = append(candidates, d)
		}
	}
	if len(candidates) == 0 {
		candidates = valid
	}

	if p.Rng.Float64() < BlunderChance {
		return pick(p.Rng, candidates)
	}
	return p.Maze.BestDirection(p.Rng, e.Pos, p.Target(e), candidates)
}

// Target returns where the enemy heads under the current mode.
func (p *Pursuit) Target(e *Enemy) Position {
	if p.Mode == ModeScatter {
		return p.Maze.Corners()[e.Index%scatterCorners].Position()
	}
	return p.Player
}

// IsIntersection reports whether a set of open directions is a junction
// (three or more exits) or a corner (two exits that are not a straight line).
func IsIntersection(valid []Direction) bool {
	switch {
	case len(valid) > 2:
		return true
	case len(valid) == 2:
		return !valid[0].IsReverse(valid[1])
	default:
		return false
	}
}
