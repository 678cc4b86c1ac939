package main

import (
	"io"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/gigili/internal/platform/tui"
	"github.com/vovakirdan/gigili/internal/registry"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Pick mazes from an interactive menu",
	Long: `Start Gigili in interactive menu mode.

Use arrow keys or j/k to navigate, Enter to pick a maze and Tab for the
scoreboard. When a run ends, press B or Esc to come back to the menu.

Examples:
  gigili menu
  gigili menu --fps 30 --name Ann
  gigili menu --db ./scores.db`,
	Args: cobra.NoArgs,
	RunE: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) error {
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

	store := openStore(logger)
	if store != nil {
		defer store.Close()
	}

	for {
		result, err := tui.RunMenu(store, cfg)
		if err != nil {
			return err
		}
		cfg = result.Config

		switch {
		case result.Quit:
			return nil

		case result.WantsScoreboard:
			goBack, err := tui.RunScoreboard(store, cfg.ScreenW, cfg.ScreenH)
			if err != nil {
				return err
			}
			if !goBack {
				return nil
			}
			continue
		}

		game, err := registry.Create(result.GameID)
		if err != nil {
			logger.Error("could not start game", "error", err)
			continue
		}

		// Each run gets its own seed unless --seed pins it.
		if flagSeed == 0 {
			cfg.Seed = time.Now().UnixNano()
		}

		backToMenu, err := tui.Run(game, store, logger, cfg)
		if err != nil {
			return err
		}
		if !backToMenu {
			return nil
		}
	}
}
