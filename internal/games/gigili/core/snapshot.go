package core

// EntitySnapshot is the observable motion state of one entity.
type EntitySnapshot struct {
	Pos Position
	Dir Direction
}

// Snapshot captures the observable state of a session.
// Two sessions built from the same maze, config and seed and fed the same
// intents produce equal snapshots after every tick.
type Snapshot struct {
	Tick      int
	Status    Status
	Mode      Mode
	Score     int
	Lives     int
	Player    EntitySnapshot
	Enemies   []EntitySnapshot
	Remaining int
}

// Snapshot returns a copy of the session's observable state.
func (s *Session) Snapshot() Snapshot {
	snap := Snapshot{
		Tick:    s.tick,
		Status:  s.status,
		Mode:    s.timer.Mode,
		Score:   s.player.Score,
		Lives:   s.player.Lives,
		Player:  EntitySnapshot{Pos: s.player.Pos, Dir: s.player.Dir},
		Enemies: make([]EntitySnapshot, len(s.enemies)),
	}
	for i, e := range s.enemies {
		snap.Enemies[i] = EntitySnapshot{Pos: e.Pos, Dir: e.Dir}
	}
	for _, it := range s.items {
		if !it.Collected {
			snap.Remaining++
		}
	}
	return snap
}
