// gigili is a maze chase game for the terminal: collect every medical supply
// in the ward while the enemies hunt you.
//
// Usage:
//
//	gigili play [maze]       - Play a maze (default: ward)
//	gigili menu              - Pick mazes interactively
//	gigili mazes             - List available mazes
//	gigili scores [maze]     - Show high scores
//	gigili serve             - Start SSH server for remote play
//
// Global flags:
//
//	--fps <rate>         - Set tick rate (default: 60)
//	--seed <value>       - Set RNG seed for reproducible gameplay
//	--db <path|dsn>      - Scores database (default: ~/.gigili/scores.db)
//	--log-file <path>    - Write logs to a file
//	--debug              - Enable debug logging
package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/gigili/internal/config"
	"github.com/vovakirdan/gigili/internal/core"
	"github.com/vovakirdan/gigili/internal/games/gigili"
	"github.com/vovakirdan/gigili/internal/platform/tui"
	"github.com/vovakirdan/gigili/internal/registry"
	"github.com/vovakirdan/gigili/internal/storage"
)

var (
	// Global flags
	flagFPS     int
	flagSeed    int64
	flagDBPath  string
	flagLogFile string
	flagDebug   bool

	// Game flags
	flagConfig     string
	flagDifficulty string
	flagName       string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "gigili",
	Short: "Gigili - a maze chase in your terminal",
	Long: `Gigili is a maze chase game for the terminal. Collect every pill,
bandaid, syringe and vaccine in the ward before the enemies catch you.

Available commands:
  play     - Play a maze directly
  menu     - Interactive maze picker
  mazes    - List available mazes
  scores   - View high scores
  serve    - Start SSH server for remote play

Examples:
  gigili play
  gigili play clinic --difficulty hard
  gigili menu --name Ann
  gigili scores ward
  gigili serve --ssh :2222`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.gigili/scores.db", "Scores database path or postgres:// DSN")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Enable debug logging")

	for _, cmd := range []*cobra.Command{playCmd, menuCmd, serveCmd} {
		cmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom gigili.yaml")
		cmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	}
	playCmd.Flags().StringVar(&flagName, "name", "", "Player name (skips the name prompt)")
	menuCmd.Flags().StringVar(&flagName, "name", "", "Player name (skips the name prompt)")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(mazesCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(serveCmd)
}

// newLogger builds the command logger. Interactive commands own the
// terminal, so without --log-file they pass fallback = io.Discard.
func newLogger(fallback io.Writer, prefix string) (*log.Logger, func(), error) {
	level := log.InfoLevel
	if flagDebug {
		level = log.DebugLevel
	}

	if flagLogFile == "" {
		return tui.NewLogger(fallback, prefix, level), func() {}, nil
	}

	f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}
	return tui.NewLogger(f, prefix, level), func() { f.Close() }, nil
}

// applyGameFlags hands --config and --difficulty to the game package
// before any game is created.
func applyGameFlags() error {
	preset, err := config.ParsePreset(flagDifficulty)
	if err != nil {
		return err
	}
	gigili.SetConfigPath(flagConfig)
	gigili.SetDifficulty(preset)
	return nil
}

// runtimeConfig sizes the run to the current terminal.
func runtimeConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}
	cfg.TickRate = flagFPS
	cfg.Seed = flagSeed
	return cfg
}

// resolvePlayerName returns --name when given, otherwise asks for one.
// ok is false when the player cancelled the prompt.
func resolvePlayerName(cfg core.RuntimeConfig) (name string, ok bool, err error) {
	if flagName != "" {
		name, err = tui.NormalizeName(flagName)
		return name, err == nil, err
	}
	return tui.RunNameEntry(os.Getenv("USER"), cfg.ScreenW, cfg.ScreenH)
}

// openStore opens the score database. Failure is a warning: play goes on
// without persistence.
func openStore(logger *log.Logger) *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		logger.Warn("scores disabled", "error", err)
		return nil
	}
	return store
}

// resolveGameID accepts either a game ID ("gigili_clinic") or a maze ID
// ("clinic").
func resolveGameID(arg string) (string, error) {
	arg = strings.TrimSpace(arg)
	if registry.Exists(arg) {
		return arg, nil
	}
	if id := gigili.GameID(arg); registry.Exists(id) {
		return id, nil
	}
	return "", fmt.Errorf("%w %q (run 'gigili mazes' to see available mazes)", registry.ErrUnknownGame, arg)
}
