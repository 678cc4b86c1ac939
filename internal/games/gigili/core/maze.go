package core

import (
	"errors"
	"fmt"
	"math"
)

// Cell is the code stored in one maze cell.
type Cell uint8

const (
	CellPath Cell = iota
	CellWall
	CellEnemySpawn
	CellPlayerSpawn
)

// Glyphs used by text layouts.
const (
	GlyphWall        = '#'
	GlyphPath        = '.'
	GlyphEnemySpawn  = 'E'
	GlyphPlayerSpawn = 'P'
)

// Fallback spawn points used when a layout has no spawn cell of the needed kind.
var (
	DefaultPlayerSpawn = T(1, 1)
	DefaultEnemySpawn  = T(10, 10)
)

// ErrEmptyLayout is returned when a layout has no rows or no columns.
var ErrEmptyLayout = errors.New("maze: empty layout")

// Maze is an immutable grid of cell codes.
// Cells are stored in row-major order: index = y*W + x.
type Maze struct {
	W     int
	H     int
	cells []Cell
}

// NewMaze builds a maze from rows of cell codes. All rows must share one width.
func NewMaze(rows [][]Cell) (*Maze, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrEmptyLayout
	}
	w := len(rows[0])
	m := &Maze{W: w, H: len(rows), cells: make([]Cell, 0, w*len(rows))}
	for y, row := range rows {
		if len(row) != w {
			return nil, fmt.Errorf("maze: row %d has width %d, expected %d", y, len(row), w)
		}
		m.cells = append(m.cells, row...)
	}
	return m, nil
}

// ParseGrid builds a maze from text rows using the glyph legend
// ('#' wall, '.' or ' ' path, 'E' enemy spawn, 'P' player spawn).
func ParseGrid(lines []string) (*Maze, error) {
	rows := make([][]Cell, len(lines))
	for y, line := range lines {
		row := make([]Cell, 0, len(line))
		for x, ch := range line {
			c, ok := CellForGlyph(ch)
			if !ok {
				return nil, fmt.Errorf("maze: unknown glyph %q at (%d,%d)", ch, x, y)
			}
			row = append(row, c)
		}
		rows[y] = row
	}
	return NewMaze(rows)
}

// CellForGlyph maps a layout glyph to its cell code.
func CellForGlyph(ch rune) (Cell, bool) {
	switch ch {
	case GlyphWall:
		return CellWall, true
	case GlyphPath, ' ':
		return CellPath, true
	case GlyphEnemySpawn:
		return CellEnemySpawn, true
	case GlyphPlayerSpawn:
		return CellPlayerSpawn, true
	default:
		return CellPath, false
	}
}

// InBounds returns true if the tile lies inside the grid.
func (m *Maze) InBounds(t Tile) bool {
	return t.X >= 0 && t.X < m.W && t.Y >= 0 && t.Y < m.H
}

// At returns the code of the tile. Out-of-bounds tiles read as walls.
func (m *Maze) At(t Tile) Cell {
	if !m.InBounds(t) {
		return CellWall
	}
	return m.cells[t.Y*m.W+t.X]
}

// IsWall floors continuous coordinates to their containing cell and reports
// whether that cell is a wall. Everything outside the grid is a wall.
func (m *Maze) IsWall(x, y float64) bool {
	return m.TileIsWall(T(int(math.Floor(x)), int(math.Floor(y))))
}

// TileIsWall reports whether the tile is a wall or outside the grid.
func (m *Maze) TileIsWall(t Tile) bool {
	return m.At(t) == CellWall
}

// FindCells returns every tile holding the code, top-to-bottom, left-to-right.
func (m *Maze) FindCells(code Cell) []Tile {
	var tiles []Tile
	for y := 0; y < m.H; y++ {
		for x := 0; x < m.W; x++ {
			if m.cells[y*m.W+x] == code {
				tiles = append(tiles, T(x, y))
			}
		}
	}
	return tiles
}

// PlayerSpawn returns the first player spawn cell, or DefaultPlayerSpawn.
func (m *Maze) PlayerSpawn() Tile {
	if spawns := m.FindCells(CellPlayerSpawn); len(spawns) > 0 {
		return spawns[0]
	}
	return DefaultPlayerSpawn
}

// EnemySpawns returns one spawn tile per enemy, cycling through the enemy
// spawn cells when there are fewer cells than enemies.
func (m *Maze) EnemySpawns(count int) []Tile {
	points := m.FindCells(CellEnemySpawn)
	if len(points) == 0 {
		points = []Tile{DefaultEnemySpawn}
	}
	spawns := make([]Tile, count)
	for i := range spawns {
		spawns[i] = points[i%len(points)]
	}
	return spawns
}

// Corners returns the scatter targets: top-left, top-right, bottom-left,
// bottom-right, each inset from the outer edge.
func (m *Maze) Corners() [scatterCorners]Tile {
	return [scatterCorners]Tile{
		T(ScatterInset, ScatterInset),
		T(m.W-1-ScatterInset, ScatterInset),
		T(ScatterInset, m.H-1-ScatterInset),
		T(m.W-1-ScatterInset, m.H-1-ScatterInset),
	}
}

// Rows returns a copy of the grid as rows of cell codes.
func (m *Maze) Rows() [][]Cell {
	rows := make([][]Cell, m.H)
	for y := range rows {
		rows[y] = make([]Cell, m.W)
		copy(rows[y], m.cells[y*m.W:(y+1)*m.W])
	}
	return rows
}
