package core

// NextPosition moves pos by speed along dir and returns the result, or pos
// unchanged if the commit hitbox at the candidate position touches a wall.
// There is no sliding: a blocked move is rejected as a whole.
func (m *Maze) NextPosition(pos Position, dir Direction, speed float64) Position {
	if dir == DirNone {
		return pos
	}
	next := pos.Step(dir, speed)

	minX := next.X + CommitInset
	maxX := next.X + 1 - CommitInset
	minY := next.Y + CommitInset
	maxY := next.Y + 1 - CommitInset

	if m.IsWall(minX, minY) || m.IsWall(maxX, minY) ||
		m.IsWall(minX, maxY) || m.IsWall(maxX, maxY) {
		return pos
	}
	return next
}

// IsValidMove reports whether a move of speed along dir would keep the
// decision box clear of walls. Used only to choose directions, never to
// commit motion. Its box is not NextPosition's.
func (m *Maze) IsValidMove(pos Position, dir Direction, speed float64) bool {
	next := pos.Step(dir, speed)

	left := next.X + DecisionMargin
	right := next.X + DecisionSize - DecisionMargin
	top := next.Y + DecisionMargin
	bottom := next.Y + DecisionSize - DecisionMargin

	return !m.IsWall(left, top) && !m.IsWall(right, top) &&
		!m.IsWall(left, bottom) && !m.IsWall(right, bottom)
}

// ValidDirections returns the directions IsValidMove accepts, in AllDirections order.
func (m *Maze) ValidDirections(pos Position, speed float64) []Direction {
	valid := make([]Direction, 0, len(AllDirections))
	for _, d := range AllDirections {
		if m.IsValidMove(pos, d, speed) {
			valid = append(valid, d)
		}
	}
	return valid
}
