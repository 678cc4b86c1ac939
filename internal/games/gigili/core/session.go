package core

import (
	"math"
	"math/rand"
)

// Config holds the per-session tuning that is not a collision constant.
type Config struct {
	PlayerName   string
	PlayerSpeed  float64 // Tiles per tick
	EnemySpeed   float64 // Tiles per tick
	EnemyCount   int
	ModeInterval int // Ticks between chase/scatter flips
}

// DefaultConfig returns the classic tuning at 60 ticks per second.
func DefaultConfig() Config {
	return Config{
		PlayerName:   "Player",
		PlayerSpeed:  0.1,
		EnemySpeed:   0.08,
		EnemyCount:   4,
		ModeInterval: 15 * 60,
	}
}

// StartingLives is the life counter every player spawns with. A capture
// still ends the run; nothing spends lives yet.
const StartingLives = 3

// Player is the user-controlled entity.
type Player struct {
	Entity
	Name  string
	Score int
	Lives int
}

// EventKind identifies a terminal event.
type EventKind uint8

const (
	EventNone EventKind = iota
	EventGameOver
	EventVictory
)

// String returns the event name.
func (k EventKind) String() string {
	switch k {
	case EventGameOver:
		return "game_over"
	case EventVictory:
		return "victory"
	default:
		return "none"
	}
}

// Event is emitted once, on the tick the session ends.
type Event struct {
	Kind  EventKind
	Score int
	By    string // ID of the capturing enemy for EventGameOver
}

// TickResult reports what one Step changed.
type TickResult struct {
	Tick         int
	ScoreDelta   int
	Collected    int
	ModeSwitched bool
	Event        Event
}

// Session owns every mutable piece of one game: player, enemies, items,
// mode timer and status. The maze is shared and never written.
type Session struct {
	maze    *Maze
	rng     *rand.Rand
	player  Player
	enemies []Enemy
	items   []Item
	timer   ModeTimer
	status  Status
	intent  Direction
	tick    int
}

// NewSession spawns the player, items and enemies on the maze.
// All randomness, now and on later ticks, comes from rng.
func NewSession(m *Maze, cfg Config, rng *rand.Rand) *Session {
	s := &Session{
		maze:  m,
		rng:   rng,
		timer: NewModeTimer(cfg.ModeInterval),
		player: Player{
			Entity: Entity{Pos: m.PlayerSpawn().Position(), Dir: DirNone, Speed: cfg.PlayerSpeed},
			Name:   cfg.PlayerName,
			Lives:  StartingLives,
		},
	}

	s.items = SpawnItems(m, rng)

	spawns := m.EnemySpawns(cfg.EnemyCount)
	s.enemies = make([]Enemy, len(spawns))
	for i, t := range spawns {
		dir := AllDirections[rng.Intn(len(AllDirections))]
		s.enemies[i] = NewEnemy(i, t, dir, cfg.EnemySpeed)
	}

	return s
}

// SetIntent records the most recent direction request. Only the latest
// request before a tick matters; it stays pending until a turn honors it.
func (s *Session) SetIntent(d Direction) {
	s.intent = d
}

// Step advances the session by one tick. Once the status is terminal it does
// nothing and returns a zero result.
//
// Order within a tick: mode timer, player turn, player motion, each enemy in
// spawn order, then item collection. The first capture ends the tick.
func (s *Session) Step() TickResult {
	if s.status.Terminal() {
		return TickResult{}
	}
	s.tick++
	res := TickResult{Tick: s.tick}

	res.ModeSwitched = s.timer.Advance()

	p := &s.player
	s.turnPlayer()
	p.Pos = s.maze.NextPosition(p.Pos, p.Dir, p.Speed)

	pursuit := Pursuit{Maze: s.maze, Rng: s.rng, Mode: s.timer.Mode, Player: p.Pos}
	for i := range s.enemies {
		e := &s.enemies[i]
		if pursuit.UpdateEnemy(e) {
			s.status = StatusGameOver
			res.Event = Event{Kind: EventGameOver, Score: p.Score, By: e.ID}
			return res
		}
	}

	delta, n := CollectItems(s.items, p.Pos)
	if n > 0 {
		p.Score += delta
		res.ScoreDelta = delta
		res.Collected = n
		if AllCollected(s.items) {
			s.status = StatusVictory
			res.Event = Event{Kind: EventVictory, Score: p.Score}
		}
	}

	return res
}

// turnPlayer applies the pending intent if the tile ahead is open and the
// player is close enough to the new axis, snapping onto it.
func (s *Session) turnPlayer() {
	p := &s.player
	want := s.intent
	if want == DirNone {
		return
	}

	if s.maze.TileIsWall(p.Pos.Tile().Step(want)) {
		return
	}

	if want.Vertical() {
		axis := math.Round(p.Pos.X)
		if math.Abs(p.Pos.X-axis) >= TurnTolerance {
			return
		}
		p.Pos.X = axis
	} else {
		axis := math.Round(p.Pos.Y)
		if math.Abs(p.Pos.Y-axis) >= TurnTolerance {
			return
		}
		p.Pos.Y = axis
	}

	p.Dir = want
	s.intent = DirNone
}

// Maze returns the session's maze.
func (s *Session) Maze() *Maze { return s.maze }

// PlayerPosition returns the player's continuous position.
func (s *Session) PlayerPosition() Position { return s.player.Pos }

// PlayerDirection returns the player's committed direction.
func (s *Session) PlayerDirection() Direction { return s.player.Dir }

// PlayerName returns the name the session was started with.
func (s *Session) PlayerName() string { return s.player.Name }

// Lives returns the player's life counter.
func (s *Session) Lives() int { return s.player.Lives }

// Score returns the running score.
func (s *Session) Score() int { return s.player.Score }

// Status returns the session status.
func (s *Session) Status() Status { return s.status }

// Mode returns the shared enemy mode.
func (s *Session) Mode() Mode { return s.timer.Mode }

// Tick returns the number of ticks played.
func (s *Session) Tick() int { return s.tick }

// Intent returns the pending direction request, DirNone if none.
func (s *Session) Intent() Direction { return s.intent }

// Enemies returns a copy of the enemies in spawn order.
func (s *Session) Enemies() []Enemy {
	out := make([]Enemy, len(s.enemies))
	copy(out, s.enemies)
	return out
}

// RemainingItems returns the uncollected items in spawn order.
func (s *Session) RemainingItems() []Item {
	out := make([]Item, 0, len(s.items))
	for _, it := range s.items {
		if !it.Collected {
			out = append(out, it)
		}
	}
	return out
}

// TotalItems returns how many items the session started with.
func (s *Session) TotalItems() int { return len(s.items) }
