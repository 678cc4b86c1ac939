package core

import "math/rand"

// pathNode is a BFS frontier entry tagged with the candidate move that led to it.
type pathNode struct {
	tile  Tile
	first Direction
}

// BestDirection returns the candidate that begins a shortest path from start
// to target over open tiles. Both positions are rounded to tiles first.
//
// The search is seeded with one frontier entry per candidate, in the order
// given, so among equally short paths the earliest candidate wins. When start
// and target share a tile, or target cannot be reached, a uniformly random
// candidate is returned instead. DirNone is returned only for an empty
// candidate set.
func (m *Maze) BestDirection(rng *rand.Rand, start, target Position, candidates []Direction) Direction {
	if len(candidates) == 0 {
		return DirNone
	}

	from := start.Tile()
	goal := target.Tile()
	if from == goal {
		return pick(rng, candidates)
	}

	visited := make([]bool, m.W*m.H)
	visit := func(t Tile) bool {
		if m.TileIsWall(t) {
			return false
		}
		i := t.Y*m.W + t.X
		if visited[i] {
			return false
		}
		visited[i] = true
		return true
	}

	queue := make([]pathNode, 0, m.W*m.H)
	visit(from)
	for _, d := range candidates {
		if next := from.Step(d); visit(next) {
			queue = append(queue, pathNode{tile: next, first: d})
		}
	}

	for head := 0; head < len(queue); head++ {
		node := queue[head]
		if node.tile == goal {
			return node.first
		}
		for _, d := range AllDirections {
			if next := node.tile.Step(d); visit(next) {
				queue = append(queue, pathNode{tile: next, first: node.first})
			}
		}
	}

	return pick(rng, candidates)
}

// pick returns a uniformly random element of dirs.
func pick(rng *rand.Rand, dirs []Direction) Direction {
	return dirs[rng.Intn(len(dirs))]
}
