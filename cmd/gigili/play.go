package main

import (
	"io"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/gigili/internal/games/gigili"
	"github.com/vovakirdan/gigili/internal/platform/tui"
	"github.com/vovakirdan/gigili/internal/registry"
)

var playCmd = &cobra.Command{
	Use:   "play [maze]",
	Short: "Play a maze",
	Long: `Start playing the given maze (default: ward).

Controls:
  Arrows/WASD  - Move
  P            - Pause
  R            - Restart (after the run ends)
  B/Esc        - Leave (after the run ends or while paused)
  Ctrl+S       - Save a screenshot to ~/.gigili/screenshots
  Q/Ctrl+C     - Quit

Difficulty options:
  easy   - Slower and fewer enemies
  normal - Values from the config file
  hard   - Faster and more enemies
  fixed  - Config values, ignoring the difficulty table

Examples:
  gigili play
  gigili play clinic
  gigili play --difficulty hard --name Ann
  gigili play --config ./my-gigili.yaml`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func runPlay(_ *cobra.Command, args []string) error {
	gameID := gigili.GameID("ward")
	if len(args) == 1 {
		id, err := resolveGameID(args[0])
		if err != nil {
			return err
		}
		gameID = id
	}

	if err := applyGameFlags(); err != nil {
		return err
	}

	logger, closeLog, err := newLogger(io.Discard, "gigili")
	if err != nil {
		return err
	}
	defer closeLog()

	cfg := runtimeConfig()
	name, ok, err := resolvePlayerName(cfg)
	if err != nil || !ok {
		return err
	}
	cfg.PlayerName = name

	game, err := registry.Create(gameID)
	if err != nil {
		return err
	}

	store := openStore(logger)
	if store != nil {
		defer store.Close()
	}

	_, err = tui.Run(game, store, logger, cfg)
	return err
}
