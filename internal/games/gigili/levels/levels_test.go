package levels_test

import (
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/gigili/internal/games/gigili/core"
	"github.com/vovakirdan/gigili/internal/games/gigili/levels"
	"github.com/vovakirdan/gigili/internal/games/gigili/levels/formats"
)

func TestBuiltinMazes(t *testing.T) {
	lvls, err := levels.Builtin().LoadAll()
	require.NoError(t, err)
	require.Len(t, lvls, 2)

	assert.Equal(t, "ward", lvls[0].ID)
	assert.Equal(t, "clinic", lvls[1].ID)

	ward := lvls[0].Maze
	assert.Equal(t, 21, ward.W)
	assert.Equal(t, 21, ward.H)
	assert.Equal(t, core.T(10, 15), ward.PlayerSpawn())
	assert.Len(t, ward.FindCells(core.CellEnemySpawn), 3)

	clinic := lvls[1].Maze
	assert.Equal(t, 15, clinic.W)
	assert.Equal(t, 11, clinic.H)
}

func TestBuiltinMazesConnected(t *testing.T) {
	lvls, err := levels.Builtin().LoadAll()
	require.NoError(t, err)

	for _, lvl := range lvls {
		t.Run(lvl.ID, func(t *testing.T) {
			m := lvl.Maze
			start := m.PlayerSpawn()
			seen := map[core.Tile]bool{start: true}
			queue := []core.Tile{start}
			for len(queue) > 0 {
				cur := queue[0]
				queue = queue[1:]
				for _, d := range core.AllDirections {
					next := cur.Step(d)
					if !m.TileIsWall(next) && !seen[next] {
						seen[next] = true
						queue = append(queue, next)
					}
				}
			}

			for y := 0; y < m.H; y++ {
				for x := 0; x < m.W; x++ {
					tile := core.T(x, y)
					if !m.TileIsWall(tile) {
						assert.True(t, seen[tile], "tile %v unreachable from spawn", tile)
					}
				}
			}

			for _, c := range m.Corners() {
				assert.False(t, m.TileIsWall(c), "scatter corner %v is a wall", c)
			}
		})
	}
}

func TestDirLoaderSkipsInvalidFiles(t *testing.T) {
	loader := levels.NewDirLoader("testdata/mazes")

	ids, err := loader.ListIDs()
	require.NoError(t, err)

	// tiny has an explicit order; loop sorts after it. ragged is rejected.
	assert.Equal(t, []string{"tiny", "loop"}, ids)
}

func TestLoadByID(t *testing.T) {
	loader := levels.NewDirLoader("testdata/mazes")

	lvl, err := loader.LoadByID("tiny")
	require.NoError(t, err)
	assert.Equal(t, "Tiny Room", lvl.Name)
	assert.Equal(t, "tiny.yaml", lvl.FilePath)
	assert.Equal(t, core.T(1, 1), lvl.Maze.PlayerSpawn())

	loop, err := loader.LoadByID("loop")
	require.NoError(t, err)
	assert.Equal(t, "loop", loop.Name, "name defaults to id")

	_, err = loader.LoadByID("missing")
	assert.ErrorIs(t, err, levels.ErrUnknownMaze)
}

func TestLoadFileInvalid(t *testing.T) {
	loader := levels.NewDirLoader("testdata/mazes")

	_, err := loader.LoadFile("ragged.yaml")
	assert.ErrorIs(t, err, formats.ErrInvalidLevel)
}

func TestLoaderOverFS(t *testing.T) {
	fsys := fstest.MapFS{
		"custom/a.yaml": {Data: []byte("id: b\nlayout: ['####', '#.E#', '####']\n")},
		"custom/b.yaml": {Data: []byte("id: a\nlayout: ['####', '#PE#', '####']\n")},
	}

	ids, err := levels.NewLoader(fsys, "custom").ListIDs()
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, ids)
}

func TestParseYAMLValidation(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{"missing id", "layout: ['###']\n"},
		{"empty layout", "id: x\nlayout: []\n"},
		{"ragged", "id: x\nlayout: ['###', '##']\n"},
		{"unknown glyph", "id: x\nlayout: ['###', '#?#', '###']\n"},
		{"two players", "id: x\nlayout: ['#####', '#PPE#', '#####']\n"},
		{"no enemy spawn", "id: x\nlayout: ['###', '#P#', '###']\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := levels.ParseYAML([]byte(tt.doc))
			assert.ErrorIs(t, err, formats.ErrInvalidLevel)
		})
	}

	_, err := levels.ParseYAML([]byte("id: [unterminated"))
	assert.Error(t, err)
}

func TestParseYAML(t *testing.T) {
	doc := `
id: hall
name: Hallway
description: One long corridor.
layout:
  - "#######"
  - "#P...E#"
  - "#######"
`
	lvl, err := levels.ParseYAML([]byte(doc))
	require.NoError(t, err)

	assert.Equal(t, "hall", lvl.ID)
	assert.Equal(t, "Hallway", lvl.Name)
	assert.Equal(t, "One long corridor.", lvl.Description)
	assert.Equal(t, []core.Tile{core.T(5, 1)}, lvl.Maze.FindCells(core.CellEnemySpawn))
}
