package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/gigili/internal/core"
	"github.com/vovakirdan/gigili/internal/registry"
	"github.com/vovakirdan/gigili/internal/storage"
)

// tuningReporter is implemented by games that fall back to built-in tuning
// when their config file cannot be used.
type tuningReporter interface {
	TuningError() error
}

// GameModel is the Bubble Tea model that drives one game at a fixed tick rate.
type GameModel struct {
	game        registry.Game
	screen      *core.Screen
	store       *storage.Store
	logger      *log.Logger
	config      core.RuntimeConfig
	inputFrame  core.InputFrame
	gameState   core.GameState
	keyMapper   *KeyMapper
	ownsProgram bool // Root model of its program; leaving the game ends the program
	quitting    bool
	backToMenu  bool
	scoreSaved  bool   // Whether the current run has been recorded
	ticks       int    // Ticks delivered to the current run
	gen         uint64 // Tick chain this model accepts
}

// NewGameModel creates a game model. A nil store disables score saving and
// a nil logger discards log output.
func NewGameModel(game registry.Game, store *storage.Store, logger *log.Logger, cfg core.RuntimeConfig) GameModel {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if logger == nil {
		logger = discardLogger()
	}

	return GameModel{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:      store,
		logger:     logger.With("game", game.ID()),
		config:     cfg,
		inputFrame: core.NewInputFrame(),
		keyMapper:  NewKeyMapper(),
		gen:        nextRunGen(),
	}
}

// Init resets the game and starts the tick loop.
func (m GameModel) Init() tea.Cmd {
	m.game.Reset(m.config)
	m.logRunStart()
	return tickCmd(m.config.TickRate, m.gen)
}

func (m GameModel) logRunStart() {
	m.logger.Info("run started", "player", m.config.PlayerName, "seed", m.config.Seed)
	if r, ok := m.game.(tuningReporter); ok && r.TuningError() != nil {
		m.logger.Warn("using built-in tuning", "error", r.TuningError())
	}
}

// Update handles messages and updates the model state.
func (m GameModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		if msg.Gen != m.gen {
			// Left over from an earlier run's tick chain.
			return m, nil
		}
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input. Keys only record actions; the
// simulation consumes them on the next tick.
func (m GameModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	action, isQuit := m.keyMapper.MapKey(msg)
	switch {
	case isQuit:
		m.quitting = true
		return m, tea.Quit

	case action == core.ActionBack:
		if !m.gameState.GameOver && !m.gameState.Paused {
			return m, nil
		}
		m.backToMenu = true
		if m.ownsProgram {
			return m, tea.Quit
		}
		return m, nil

	case action == core.ActionRestart:
		if m.gameState.GameOver {
			m.inputFrame.Set(action)
		}

	case action != core.ActionNone:
		m.inputFrame.Set(action)
	}

	return m, nil
}

// handleResize adapts the game to a new window size. Games that cannot
// relayout in place are restarted, unless their run has already ended.
func (m GameModel) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)

	if r, ok := m.game.(registry.Resizer); ok {
		r.Resize(msg.Width, msg.Height)
	} else if !m.gameState.GameOver {
		m.game.Reset(m.config)
	}

	return m, nil
}

// handleTick processes simulation ticks.
func (m GameModel) handleTick() (tea.Model, tea.Cmd) {
	if m.inputFrame.Has(core.ActionRestart) && m.gameState.GameOver {
		m.config.Seed = time.Now().UnixNano()
		m.game.Reset(m.config)
		m.gameState = m.game.State()
		m.scoreSaved = false
		m.ticks = 0
		m.inputFrame.Clear()
		m.logRunStart()
		return m, tickCmd(m.config.TickRate, m.gen)
	}

	result := m.game.Step(m.inputFrame)
	m.gameState = result.State
	if !m.gameState.GameOver || result.Ended {
		m.ticks++
	}

	if result.Ended {
		m.logger.Info("run ended",
			"outcome", m.gameState.Outcome,
			"score", m.gameState.Score,
			"player", m.gameState.Player,
			"ticks", m.ticks,
		)
	}
	if m.gameState.GameOver && !m.scoreSaved {
		m.saveScore()
		m.scoreSaved = true
	}

	m.inputFrame.Clear()
	return m, tickCmd(m.config.TickRate, m.gen)
}

// saveScore records the finished run. Failures are logged and play goes on.
func (m GameModel) saveScore() {
	if m.store == nil {
		return
	}
	entry, err := m.store.SaveScore(storage.ScoreEntry{
		GameID:     m.game.ID(),
		PlayerName: m.gameState.Player,
		Score:      m.gameState.Score,
		Outcome:    string(m.gameState.Outcome),
	})
	if err != nil {
		m.logger.Error("could not save score", "error", err)
		return
	}
	m.logger.Debug("score saved", "run", entry.RunID, "id", entry.ID)
}

// saveScreenshot writes the current screen as plain text under
// ~/.gigili/screenshots.
func (m *GameModel) saveScreenshot() {
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		m.logger.Warn("screenshot skipped", "error", err)
		return
	}
	dir := filepath.Join(home, ".gigili", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("screenshot skipped", "error", err)
		return
	}

	name := fmt.Sprintf("%s_%s.txt", m.game.ID(), time.Now().Format("20060102_150405"))
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("screenshot failed", "error", err)
		return
	}
	m.logger.Info("screenshot saved", "path", path)
}

// View renders the current state to a string for display.
func (m GameModel) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen)
}

// State returns the game state seen on the last tick.
func (m GameModel) State() core.GameState {
	return m.gameState
}

// IsQuitting returns true if user requested to quit entirely.
func (m GameModel) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m GameModel) BackToMenu() bool {
	return m.backToMenu
}

// Run plays a game in the terminal until the player quits or asks for the
// menu. Returns true in the latter case.
func Run(game registry.Game, store *storage.Store, logger *log.Logger, cfg core.RuntimeConfig) (backToMenu bool, err error) {
	model := NewGameModel(game, store, logger, cfg)
	model.ownsProgram = true

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return false, err
	}
	m, ok := finalModel.(GameModel)
	return ok && m.BackToMenu(), nil
}
