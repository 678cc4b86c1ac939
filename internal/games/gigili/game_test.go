package gigili_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	platformcore "github.com/vovakirdan/gigili/internal/core"
	"github.com/vovakirdan/gigili/internal/games/gigili"
	"github.com/vovakirdan/gigili/internal/games/gigili/core"
	"github.com/vovakirdan/gigili/internal/games/gigili/levels"
	"github.com/vovakirdan/gigili/internal/registry"
)

func runtimeConfig(seed int64) platformcore.RuntimeConfig {
	cfg := platformcore.DefaultConfig()
	cfg.Seed = seed
	cfg.PlayerName = "Nurse"
	return cfg
}

// newGame creates a registered game with tuning isolated from the user's
// home directory.
func newGame(t *testing.T, id string, seed int64) *gigili.Game {
	t.Helper()
	t.Setenv("HOME", t.TempDir())

	g, err := registry.Create(id)
	require.NoError(t, err)
	game, ok := g.(*gigili.Game)
	require.True(t, ok)
	game.Reset(runtimeConfig(seed))
	require.NoError(t, game.TuningError())
	return game
}

func customGame(t *testing.T, lines ...string) *gigili.Game {
	t.Helper()
	t.Setenv("HOME", t.TempDir())

	doc := "id: custom\nname: Custom\nlayout:\n"
	for _, l := range lines {
		doc += "  - \"" + l + "\"\n"
	}
	lvl, err := levels.ParseYAML([]byte(doc))
	require.NoError(t, err)

	g := gigili.New(lvl)
	g.Reset(runtimeConfig(1))
	return g
}

func frame(actions ...platformcore.Action) platformcore.InputFrame {
	f := platformcore.NewInputFrame()
	for _, a := range actions {
		f.Set(a)
	}
	return f
}

func TestRegisteredMazes(t *testing.T) {
	tests := []struct {
		id    string
		title string
	}{
		{"gigili", "Gigili: General Ward"},
		{"gigili_clinic", "Gigili: Night Clinic"},
	}

	for _, tt := range tests {
		t.Run(tt.id, func(t *testing.T) {
			info, ok := registry.Info(tt.id)
			require.True(t, ok)
			assert.Equal(t, tt.title, info.Title)
			assert.NotEmpty(t, info.Description)
		})
	}
	assert.Equal(t, "gigili", gigili.GameID("ward"))
	assert.Equal(t, "gigili_clinic", gigili.GameID("clinic"))
}

func TestResetState(t *testing.T) {
	g := newGame(t, "gigili", 7)

	st := g.State()
	assert.Equal(t, "Nurse", st.Player)
	assert.Zero(t, st.Score)
	assert.False(t, st.GameOver)
	assert.Equal(t, platformcore.OutcomeNone, st.Outcome)

	snap := g.Snapshot()
	assert.Len(t, snap.Enemies, 4)
	assert.Equal(t, core.P(10, 15), snap.Player.Pos)

	g.Reset(platformcore.RuntimeConfig{Seed: 7, ScreenW: 80, ScreenH: 24})
	assert.Equal(t, gigili.DefaultPlayerName, g.State().Player)
}

func TestDirectionalInput(t *testing.T) {
	g := newGame(t, "gigili", 3)

	// The tile above the ward spawn is a wall; the turn stays pending.
	g.Step(frame(platformcore.ActionUp))
	assert.Equal(t, core.DirNone, g.Snapshot().Player.Dir)

	g.Step(frame(platformcore.ActionLeft))
	assert.Equal(t, core.DirLeft, g.Snapshot().Player.Dir)
	assert.Less(t, g.Snapshot().Player.Pos.X, 10.0)
}

func TestPauseSuspendsSimulation(t *testing.T) {
	g := newGame(t, "gigili", 5)

	g.Step(frame())
	g.Step(frame())
	require.Equal(t, 2, g.Snapshot().Tick)

	res := g.Step(frame(platformcore.ActionPause))
	assert.True(t, res.State.Paused)
	before := g.Snapshot()
	for i := 0; i < 30; i++ {
		g.Step(frame(platformcore.ActionRight))
	}
	assert.Equal(t, before, g.Snapshot(), "no tick reaches the simulation while paused")

	// The unpausing frame already advances the simulation.
	res = g.Step(frame(platformcore.ActionPause))
	assert.False(t, res.State.Paused)
	assert.Equal(t, 3, g.Snapshot().Tick)
}

func TestTooSmallSuspendsSimulation(t *testing.T) {
	g := newGame(t, "gigili", 5)
	w, h := g.MinSize()
	assert.Equal(t, 42, w)
	assert.Equal(t, 24, h)

	g.Resize(w-1, h)
	g.Step(frame())
	assert.Zero(t, g.Snapshot().Tick)

	screen := platformcore.NewScreen(w-1, h)
	g.Render(screen)
	assert.Contains(t, screen.String(), "Window too small")

	g.Resize(w, h)
	g.Step(frame())
	assert.Equal(t, 1, g.Snapshot().Tick)
}

func TestCaptureEndsRun(t *testing.T) {
	g := customGame(t, "#####", "#E..#", "#####")

	res := g.Step(frame())
	assert.True(t, res.Ended)
	assert.True(t, res.State.GameOver)
	assert.False(t, res.State.Won)
	assert.Equal(t, platformcore.OutcomeGameOver, res.State.Outcome)

	res = g.Step(frame(platformcore.ActionRight, platformcore.ActionPause))
	assert.False(t, res.Ended, "the terminal event is reported once")
	assert.False(t, res.State.Paused, "pause is ignored after the run ends")

	screen := platformcore.NewScreen(80, 24)
	g.Render(screen)
	assert.Contains(t, screen.String(), "CAUGHT!")
	assert.Contains(t, screen.String(), "Nurse scored 0")
}

func TestVictoryEndsRun(t *testing.T) {
	// The enemies are walled in on their spawn; the only item is under the player.
	g := customGame(t, "#####", "#.#E#", "#####")

	res := g.Step(frame())
	require.True(t, res.Ended)
	assert.True(t, res.State.Won)
	assert.Equal(t, platformcore.OutcomeVictory, res.State.Outcome)
	assert.Positive(t, res.State.Score)

	screen := platformcore.NewScreen(80, 24)
	g.Render(screen)
	assert.Contains(t, screen.String(), "ALL CLEAR!")
}

func TestRestartBuildsFreshRun(t *testing.T) {
	g := customGame(t, "#####", "#E..#", "#####")
	g.Step(frame())
	require.True(t, g.State().GameOver)

	g.Reset(runtimeConfig(2))
	assert.False(t, g.State().GameOver)
	assert.Zero(t, g.Snapshot().Tick)
	assert.Equal(t, core.ModeChase, g.Snapshot().Mode)
}

func TestRenderBoard(t *testing.T) {
	g := newGame(t, "gigili", 9)
	screen := platformcore.NewScreen(80, 24)
	g.Render(screen)

	hud := screen.Row(0)
	assert.Contains(t, hud, "Gigili: General Ward")
	assert.Contains(t, hud, "Nurse")
	assert.Contains(t, hud, "Score: 0")
	assert.Contains(t, hud, "CHASE")
	assert.True(t, strings.HasPrefix(screen.Row(23), " ←↑↓→/WASD"))

	// 42 columns centered in 80, rows 2..22.
	const ox, oy = 19, 2
	wall := screen.GetCell(ox, oy)
	assert.Equal(t, '█', wall.Rune)
	assert.Equal(t, platformcore.ColorBlue, wall.Color)

	player := screen.GetCell(ox+10*2, oy+15)
	assert.Equal(t, '@', player.Rune)
	assert.Equal(t, platformcore.ColorYellow, player.Color)

	enemies := 0
	colors := map[platformcore.Color]bool{}
	for y := 0; y < screen.Height(); y++ {
		for x := 0; x < screen.Width(); x++ {
			if c := screen.GetCell(x, y); c.Rune == 'M' {
				enemies++
				colors[c.Color] = true
			}
		}
	}
	assert.Positive(t, enemies)
	assert.NotContains(t, colors, platformcore.ColorDefault)
}

func TestGameDeterminism(t *testing.T) {
	a := newGame(t, "gigili_clinic", 2024)
	b := newGame(t, "gigili_clinic", 2024)
	moves := []platformcore.Action{
		platformcore.ActionLeft, platformcore.ActionUp,
		platformcore.ActionRight, platformcore.ActionDown,
	}

	for tick := 0; tick < 600; tick++ {
		in := frame()
		if tick%40 == 0 {
			in.Set(moves[(tick/40)%len(moves)])
		}
		ra := a.Step(in)
		rb := b.Step(in)
		require.Equal(t, ra, rb, "tick %d", tick)
		require.Equal(t, a.Snapshot(), b.Snapshot(), "tick %d", tick)
	}
}
