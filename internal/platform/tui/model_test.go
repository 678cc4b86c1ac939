package tui

import (
	"path/filepath"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/gigili/internal/core"
	"github.com/vovakirdan/gigili/internal/registry"
	"github.com/vovakirdan/gigili/internal/storage"
)

// stubGame ends its run after endAfter steps with a fixed score.
type stubGame struct {
	id       string
	endAfter int
	steps    int
	resets   int
	lastLeft bool // Left was held on the latest step
	state    core.GameState
	player   string
}

func (g *stubGame) ID() string          { return g.id }
func (g *stubGame) Title() string       { return "Stub " + g.id }
func (g *stubGame) Description() string { return "stub maze" }
func (g *stubGame) Render(dst *core.Screen) {
	dst.DrawText(0, 0, g.id)
}
func (g *stubGame) State() core.GameState { return g.state }

func (g *stubGame) Reset(cfg core.RuntimeConfig) {
	g.resets++
	g.steps = 0
	g.player = cfg.PlayerName
	g.state = core.GameState{Player: cfg.PlayerName}
}

func (g *stubGame) Step(in core.InputFrame) core.StepResult {
	g.lastLeft = in.Has(core.ActionLeft)
	if g.state.GameOver {
		return core.StepResult{State: g.state}
	}
	if in.Has(core.ActionPause) {
		g.state.Paused = !g.state.Paused
	}
	g.steps++
	if g.steps < g.endAfter {
		return core.StepResult{State: g.state}
	}
	g.state = core.GameState{
		Score:    120,
		GameOver: true,
		Won:      true,
		Outcome:  core.OutcomeVictory,
		Player:   g.player,
	}
	return core.StepResult{State: g.state, Ended: true}
}

func init() {
	registry.Register("tui_stub_a", func() registry.Game { return &stubGame{id: "tui_stub_a", endAfter: 3} })
	registry.Register("tui_stub_b", func() registry.Game { return &stubGame{id: "tui_stub_b", endAfter: 3} })
}

func openTempStore(t *testing.T) *storage.Store {
	t.Helper()
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func testConfig() core.RuntimeConfig {
	return core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 7, PlayerName: "Ann"}
}

func updateGame(t *testing.T, m GameModel, msg tea.Msg) (GameModel, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	gm, ok := next.(GameModel)
	require.True(t, ok)
	return gm, cmd
}

// tick returns the next tick of m's own chain.
func tick(m GameModel) TickMsg {
	return TickMsg{Gen: m.gen}
}

func TestGameModelSavesScoreOnce(t *testing.T) {
	store := openTempStore(t)
	game := &stubGame{id: "tui_save", endAfter: 3}
	m := NewGameModel(game, store, nil, testConfig())
	require.NotNil(t, m.Init())
	assert.Equal(t, 1, game.resets)

	var cmd tea.Cmd
	for i := 0; i < 6; i++ {
		m, cmd = updateGame(t, m, tick(m))
		assert.NotNil(t, cmd, "tick loop keeps running")
	}

	assert.True(t, m.State().GameOver)
	scores, err := store.TopScores("tui_save", 0)
	require.NoError(t, err)
	require.Len(t, scores, 1)
	assert.Equal(t, "Ann", scores[0].PlayerName)
	assert.Equal(t, 120, scores[0].Score)
	assert.Equal(t, "victory", scores[0].Outcome)
}

func TestGameModelKeysApplyOnNextTick(t *testing.T) {
	game := &stubGame{id: "tui_keys", endAfter: 100}
	m := NewGameModel(game, nil, nil, testConfig())
	m.Init()

	m, cmd := updateGame(t, m, runeKey("a"))
	assert.Nil(t, cmd)
	assert.Zero(t, game.steps)

	m, _ = updateGame(t, m, tick(m))
	assert.True(t, game.lastLeft)

	// The frame is cleared after each tick.
	_, _ = updateGame(t, m, tick(m))
	assert.False(t, game.lastLeft)
}

func TestGameModelBackOnlyWhenPausedOrOver(t *testing.T) {
	game := &stubGame{id: "tui_back", endAfter: 100}
	m := NewGameModel(game, nil, nil, testConfig())
	m.Init()

	m, _ = updateGame(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	assert.False(t, m.BackToMenu())

	m, _ = updateGame(t, m, runeKey("p"))
	m, _ = updateGame(t, m, tick(m))
	require.True(t, m.State().Paused)

	m, cmd := updateGame(t, m, runeKey("b"))
	assert.True(t, m.BackToMenu())
	assert.Nil(t, cmd, "embedded models leave quitting to their parent")
}

func TestGameModelRestartAfterRunEnds(t *testing.T) {
	store := openTempStore(t)
	game := &stubGame{id: "tui_restart", endAfter: 1}
	m := NewGameModel(game, store, nil, testConfig())
	m.Init()

	// Restart is ignored while the run is live.
	m, _ = updateGame(t, m, runeKey("r"))
	m, _ = updateGame(t, m, tick(m))
	require.True(t, m.State().GameOver)
	assert.Equal(t, 1, game.resets)

	m, _ = updateGame(t, m, runeKey("r"))
	m, _ = updateGame(t, m, tick(m))
	assert.Equal(t, 2, game.resets)
	assert.False(t, m.State().GameOver)

	m, _ = updateGame(t, m, tick(m))
	require.True(t, m.State().GameOver)

	scores, err := store.TopScores("tui_restart", 0)
	require.NoError(t, err)
	assert.Len(t, scores, 2, "each run is recorded")
}

func TestGameModelQuit(t *testing.T) {
	m := NewGameModel(&stubGame{id: "tui_quit", endAfter: 100}, nil, nil, testConfig())
	m.Init()

	m, cmd := updateGame(t, m, runeKey("q"))
	assert.True(t, m.IsQuitting())
	assert.NotNil(t, cmd)
	assert.Empty(t, m.View())
}

func TestGameModelView(t *testing.T) {
	m := NewGameModel(&stubGame{id: "tui_view", endAfter: 100}, nil, nil, testConfig())
	m.Init()

	assert.Contains(t, m.View(), "tui_view")
}

func TestGameModelIgnoresForeignTicks(t *testing.T) {
	game := &stubGame{id: "tui_gen", endAfter: 100}
	first := NewGameModel(game, nil, nil, testConfig())
	m := NewGameModel(game, nil, nil, testConfig())
	require.NotEqual(t, first.gen, m.gen)
	m.Init()

	m, cmd := updateGame(t, m, tick(first))
	assert.Nil(t, cmd, "a foreign tick must not start a second chain")
	assert.Zero(t, game.steps)

	_, cmd = updateGame(t, m, tick(m))
	assert.NotNil(t, cmd)
	assert.Equal(t, 1, game.steps)
}
