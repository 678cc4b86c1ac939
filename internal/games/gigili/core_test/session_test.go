package core_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/gigili/internal/games/gigili/core"
)

func newSession(t *testing.T, seed int64, mutate func(*core.Config), lines ...string) *core.Session {
	t.Helper()
	cfg := core.DefaultConfig()
	if mutate != nil {
		mutate(&cfg)
	}
	return core.NewSession(mustMaze(t, lines...), cfg, rand.New(rand.NewSource(seed)))
}

func noEnemies(cfg *core.Config) { cfg.EnemyCount = 0 }

func TestNewSession(t *testing.T) {
	s := newSession(t, 1, func(cfg *core.Config) { cfg.PlayerName = "Nurse" }, clinicLayout...)

	assert.Equal(t, core.StatusPlaying, s.Status())
	assert.Equal(t, core.ModeChase, s.Mode())
	assert.Equal(t, "Nurse", s.PlayerName())
	assert.Equal(t, core.P(7, 8), s.PlayerPosition())
	assert.Equal(t, core.DirNone, s.PlayerDirection())
	assert.Zero(t, s.Score())
	assert.Zero(t, s.Tick())
	assert.Equal(t, core.StartingLives, s.Lives())
	assert.Equal(t, core.StartingLives, s.Snapshot().Lives)

	enemies := s.Enemies()
	require.Len(t, enemies, 4)
	spawns := []core.Position{core.P(6, 5), core.P(7, 5), core.P(8, 5), core.P(6, 5)}
	for i, e := range enemies {
		assert.Equal(t, i, e.Index)
		assert.Equal(t, spawns[i], e.Pos)
		assert.NotEqual(t, core.DirNone, e.Dir)
	}

	assert.Len(t, s.RemainingItems(), s.TotalItems())
}

func TestSingleItemVictoryOnFirstTick(t *testing.T) {
	// No player spawn cell: the player starts on the default tile, which
	// holds the only item.
	s := newSession(t, 1, noEnemies,
		"###",
		"#.#",
		"###",
	)
	items := s.RemainingItems()
	require.Len(t, items, 1)
	require.Equal(t, core.DefaultPlayerSpawn, items[0].Tile)
	value := items[0].Type.Value()

	res := s.Step()

	assert.Equal(t, core.StatusVictory, s.Status())
	assert.Equal(t, core.EventVictory, res.Event.Kind)
	assert.Equal(t, value, res.Event.Score)
	assert.Equal(t, value, s.Score())
	assert.Equal(t, value, res.ScoreDelta)
	assert.Empty(t, s.RemainingItems())
}

func TestVictoryScoreIsSumOfItems(t *testing.T) {
	s := newSession(t, 4, noEnemies,
		"#####",
		"#...#",
		"#####",
	)
	total := 0
	for _, it := range s.RemainingItems() {
		total += it.Type.Value()
	}

	s.SetIntent(core.DirRight)
	var last core.TickResult
	victories := 0
	for i := 0; i < 200; i++ {
		res := s.Step()
		if res.Event.Kind == core.EventVictory {
			victories++
			last = res
		}
	}

	assert.Equal(t, 1, victories)
	assert.Equal(t, total, last.Event.Score)
	assert.Equal(t, total, s.Score())
}

func TestCaptureOnSharedPosition(t *testing.T) {
	// The enemy spawn cell sits on the default player spawn.
	s := newSession(t, 3, func(cfg *core.Config) { cfg.EnemyCount = 1 },
		"#####",
		"#E..#",
		"#####",
	)
	require.Equal(t, s.PlayerPosition(), s.Enemies()[0].Pos)

	res := s.Step()

	assert.Equal(t, core.StatusGameOver, s.Status())
	assert.Equal(t, core.EventGameOver, res.Event.Kind)
	assert.Equal(t, "enemy-0", res.Event.By)
	assert.Zero(t, res.Event.Score)
}

func TestFirstCaptureEndsTick(t *testing.T) {
	// Three enemies share the spawn under the player. Both sides move fast
	// enough that the player reaches the item at (2,1) and enemy-0 reaches
	// the player in the same tick.
	fast := func(enemies int) func(*core.Config) {
		return func(cfg *core.Config) {
			cfg.EnemyCount = enemies
			cfg.PlayerSpeed = 0.6
			cfg.EnemySpeed = 0.6
		}
	}
	lines := []string{
		"#####",
		"#E..#",
		"#####",
	}

	// Without enemies the move collects the item.
	solo := newSession(t, 5, fast(0), lines...)
	solo.SetIntent(core.DirRight)
	require.Positive(t, solo.Step().ScoreDelta)

	s := newSession(t, 5, fast(3), lines...)
	spawn := s.Enemies()[0].Pos
	s.SetIntent(core.DirRight)
	res := s.Step()

	assert.Equal(t, core.StatusGameOver, s.Status())
	assert.Equal(t, core.EventGameOver, res.Event.Kind)
	assert.Equal(t, "enemy-0", res.Event.By)
	assert.Zero(t, res.ScoreDelta)
	assert.Zero(t, res.Collected)
	assert.Zero(t, s.Score())
	assert.Len(t, s.RemainingItems(), s.TotalItems())

	enemies := s.Enemies()
	require.Len(t, enemies, 3)
	assert.InDelta(t, 1.6, enemies[0].Pos.X, 1e-9)
	assert.Equal(t, s.PlayerPosition(), enemies[0].Pos)
	for _, e := range enemies[1:] {
		assert.Equal(t, spawn, e.Pos, "%s moved after the capture", e.ID)
	}
}

func TestTerminalStepIsNoOp(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*core.Config)
		lines  []string
		status core.Status
	}{
		{"game over", func(cfg *core.Config) { cfg.EnemyCount = 1 }, []string{"#####", "#E..#", "#####"}, core.StatusGameOver},
		{"victory", noEnemies, []string{"###", "#.#", "###"}, core.StatusVictory},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newSession(t, 8, tt.mutate, tt.lines...)
			s.Step()
			require.Equal(t, tt.status, s.Status())

			before := s.Snapshot()
			items := s.RemainingItems()
			for i := 0; i < 10; i++ {
				s.SetIntent(core.AllDirections[i%4])
				res := s.Step()
				assert.Equal(t, core.TickResult{}, res)
			}

			assert.Equal(t, before, s.Snapshot())
			assert.Equal(t, items, s.RemainingItems())
		})
	}
}

func TestTurnRejectedOffAxis(t *testing.T) {
	s := newSession(t, 2, noEnemies,
		"########",
		"#......#",
		"#......#",
		"########",
	)

	s.SetIntent(core.DirRight)
	for i := 0; i < 5; i++ {
		s.Step()
	}
	require.Equal(t, core.DirRight, s.PlayerDirection())
	require.InDelta(t, 1.5, s.PlayerPosition().X, 1e-9)

	// Half a tile off the vertical axis: the turn stays pending.
	s.SetIntent(core.DirDown)
	s.Step()
	assert.Equal(t, core.DirRight, s.PlayerDirection())
	assert.Equal(t, core.DirDown, s.Intent())
	assert.Equal(t, 1.0, s.PlayerPosition().Y)
	assert.Greater(t, s.PlayerPosition().X, 1.5)

	turned := false
	for i := 0; i < 3 && !turned; i++ {
		s.Step()
		turned = s.PlayerDirection() == core.DirDown
	}

	require.True(t, turned, "turn never honored once within tolerance")
	assert.Equal(t, 2.0, s.PlayerPosition().X)
	assert.Equal(t, core.DirNone, s.Intent())
}

func TestTurnIntoWallStaysPending(t *testing.T) {
	s := newSession(t, 2, noEnemies,
		"#######",
		"#.....#",
		"#######",
	)

	s.SetIntent(core.DirUp)
	s.Step()

	assert.Equal(t, core.DirNone, s.PlayerDirection())
	assert.Equal(t, core.DirUp, s.Intent())
	assert.Equal(t, core.P(1, 1), s.PlayerPosition())
}

func TestLastIntentWins(t *testing.T) {
	s := newSession(t, 2, noEnemies,
		"#######",
		"#.....#",
		"#.....#",
		"#######",
	)

	s.SetIntent(core.DirDown)
	s.SetIntent(core.DirRight)
	s.Step()

	assert.Equal(t, core.DirRight, s.PlayerDirection())
}

func TestModeSwitchesOnInterval(t *testing.T) {
	s := newSession(t, 6, func(cfg *core.Config) {
		cfg.EnemyCount = 0
		cfg.ModeInterval = 10
	}, clinicLayout...)

	for i := 1; i < 10; i++ {
		res := s.Step()
		require.False(t, res.ModeSwitched, "tick %d", i)
	}
	res := s.Step()
	assert.True(t, res.ModeSwitched)
	assert.Equal(t, core.ModeScatter, s.Mode())

	for i := 0; i < 10; i++ {
		s.Step()
	}
	assert.Equal(t, core.ModeChase, s.Mode())
}

func TestEntitiesStayOutOfWalls(t *testing.T) {
	s := newSession(t, 17, nil, clinicLayout...)
	m := s.Maze()
	intents := []core.Direction{core.DirLeft, core.DirUp, core.DirRight, core.DirDown}

	for tick := 0; tick < 3000 && s.Status() == core.StatusPlaying; tick++ {
		if tick%45 == 0 {
			s.SetIntent(intents[(tick/45)%len(intents)])
		}
		s.Step()

		assert.True(t, hitboxClear(m, s.PlayerPosition()), "player inside wall at %v", s.PlayerPosition())
		for _, e := range s.Enemies() {
			assert.True(t, hitboxClear(m, e.Pos), "%s inside wall at %v", e.ID, e.Pos)
		}
	}
}

func TestDeterminism(t *testing.T) {
	const seed = 12345
	a := newSession(t, seed, nil, clinicLayout...)
	b := newSession(t, seed, nil, clinicLayout...)
	intents := []core.Direction{core.DirRight, core.DirUp, core.DirLeft, core.DirDown}

	for tick := 0; tick < 1500; tick++ {
		if tick%30 == 0 {
			d := intents[(tick/30)%len(intents)]
			a.SetIntent(d)
			b.SetIntent(d)
		}
		ra := a.Step()
		rb := b.Step()

		require.Equal(t, ra, rb, "tick %d", tick)
		require.Equal(t, a.Snapshot(), b.Snapshot(), "tick %d", tick)
	}
}
