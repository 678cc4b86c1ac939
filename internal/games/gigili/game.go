// Package gigili adapts the maze chase simulation to the registry.Game interface.
// One game is registered per built-in maze.
package gigili

import (
	"fmt"
	"math/rand"

	"github.com/vovakirdan/gigili/internal/config"
	platformcore "github.com/vovakirdan/gigili/internal/core"
	"github.com/vovakirdan/gigili/internal/games/gigili/core"
	"github.com/vovakirdan/gigili/internal/games/gigili/levels"
	"github.com/vovakirdan/gigili/internal/registry"
)

// DefaultPlayerName is used when the platform supplies no name.
const DefaultPlayerName = "Player"

// primaryMaze is registered under the bare "gigili" ID.
const primaryMaze = "ward"

// Package-level configuration, set by the CLI before games are created.
var (
	configPath string
	difficulty = config.DifficultyNormal
)

// SetConfigPath sets a custom tuning file path.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficulty sets the preset applied to the tuning file.
func SetDifficulty(preset config.DifficultyPreset) {
	difficulty = preset
}

func init() {
	lvls, err := levels.Builtin().LoadAll()
	if err != nil {
		panic(fmt.Sprintf("gigili: built-in mazes: %v", err))
	}
	for _, lvl := range lvls {
		registry.Register(GameID(lvl.ID), func() registry.Game {
			return New(lvl)
		})
	}
}

// GameID returns the registry ID for a maze.
func GameID(mazeID string) string {
	if mazeID == primaryMaze {
		return "gigili"
	}
	return "gigili_" + mazeID
}

// Game runs one maze. The session is rebuilt on every Reset.
type Game struct {
	level   levels.Level
	session *core.Session
	tuning  config.GigiliConfig

	screenW  int
	screenH  int
	paused   bool
	tooSmall bool
	tuneErr  error
}

// New creates a game for the given maze.
func New(lvl levels.Level) *Game {
	return &Game{level: lvl}
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return GameID(g.level.ID)
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Gigili: " + g.level.Name
}

// Description returns the maze description.
func (g *Game) Description() string {
	return g.level.Description
}

// Reset starts a fresh run: new items, enemies back on their spawns, mode
// timer restarted in chase.
func (g *Game) Reset(cfg platformcore.RuntimeConfig) {
	g.tuning, g.tuneErr = loadTuning()

	tickRate := cfg.TickRate
	if tickRate <= 0 {
		tickRate = platformcore.DefaultConfig().TickRate
	}
	name := cfg.PlayerName
	if name == "" {
		name = DefaultPlayerName
	}

	g.session = core.NewSession(g.level.Maze, core.Config{
		PlayerName:   name,
		PlayerSpeed:  g.tuning.Player.Speed,
		EnemySpeed:   g.tuning.Enemies.Speed,
		EnemyCount:   g.tuning.Enemies.Count,
		ModeInterval: g.tuning.Modes.IntervalTicks(tickRate),
	}, rand.New(rand.NewSource(cfg.Seed)))

	g.paused = false
	g.Resize(cfg.ScreenW, cfg.ScreenH)
}

// loadTuning reads the tuning file and applies the difficulty preset. Any
// failure falls back to the built-in tuning and is reported on screen.
func loadTuning() (config.GigiliConfig, error) {
	cfg, err := config.LoadGigili(configPath)
	if err == nil {
		err = config.ApplyGigiliPreset(&cfg, difficulty)
	}
	if err != nil {
		return config.DefaultGigiliConfig(), err
	}
	return cfg, nil
}

// Resize adapts the layout to a new screen size without touching the run.
func (g *Game) Resize(w, h int) {
	g.screenW = w
	g.screenH = h
	minW, minH := g.MinSize()
	g.tooSmall = w < minW || h < minH
}

// MinSize returns the smallest screen that fits the board, HUD and footer.
func (g *Game) MinSize() (w, h int) {
	return g.level.Maze.W * cellW, g.level.Maze.H + hudHeight + footerHeight
}

// Step advances the simulation by one tick. Nothing advances while paused,
// while the screen is too small, or after the run has ended.
func (g *Game) Step(input platformcore.InputFrame) platformcore.StepResult {
	if g.session == nil {
		return platformcore.StepResult{}
	}
	ended := g.session.Status().Terminal()

	if input.Has(platformcore.ActionPause) && !ended {
		g.paused = !g.paused
	}
	if ended || g.paused || g.tooSmall {
		return platformcore.StepResult{State: g.State()}
	}

	// Later directions in this order win when several keys land in one tick.
	for _, m := range intentKeys {
		if input.Has(m.action) {
			g.session.SetIntent(m.dir)
		}
	}

	res := g.session.Step()
	return platformcore.StepResult{
		State: g.State(),
		Ended: res.Event.Kind != core.EventNone,
	}
}

var intentKeys = [...]struct {
	action platformcore.Action
	dir    core.Direction
}{
	{platformcore.ActionUp, core.DirUp},
	{platformcore.ActionDown, core.DirDown},
	{platformcore.ActionLeft, core.DirLeft},
	{platformcore.ActionRight, core.DirRight},
}

// State returns the current game state.
func (g *Game) State() platformcore.GameState {
	if g.session == nil {
		return platformcore.GameState{}
	}
	st := platformcore.GameState{
		Score:  g.session.Score(),
		Paused: g.paused,
		Player: g.session.PlayerName(),
	}
	switch g.session.Status() {
	case core.StatusGameOver:
		st.GameOver = true
		st.Outcome = platformcore.OutcomeGameOver
	case core.StatusVictory:
		st.GameOver = true
		st.Won = true
		st.Outcome = platformcore.OutcomeVictory
	}
	return st
}

// Snapshot returns the simulation state for determinism checks.
func (g *Game) Snapshot() core.Snapshot {
	if g.session == nil {
		return core.Snapshot{}
	}
	return g.session.Snapshot()
}

// TuningError reports why the built-in tuning replaced the configured one.
func (g *Game) TuningError() error {
	return g.tuneErr
}
