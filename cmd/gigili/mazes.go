package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/gigili/internal/registry"
)

var mazesCmd = &cobra.Command{
	Use:     "mazes",
	Aliases: []string{"list"},
	Short:   "List available mazes",
	Long:    `Shows every maze built into Gigili with its game ID.`,
	Args:    cobra.NoArgs,
	Run:     runMazes,
}

func runMazes(cmd *cobra.Command, _ []string) {
	out := cmd.OutOrStdout()
	games := registry.List()

	if len(games) == 0 {
		fmt.Fprintln(out, "No mazes available.")
		return
	}

	fmt.Fprintln(out, "Available mazes:")
	fmt.Fprintln(out)

	maxIDLen := len("ID")
	for _, g := range games {
		maxIDLen = max(maxIDLen, len(g.ID))
	}

	fmt.Fprintf(out, "  %-*s  %s\n", maxIDLen, "ID", "Title")
	fmt.Fprintf(out, "  %-*s  %s\n", maxIDLen, "--", "-----")
	for _, g := range games {
		fmt.Fprintf(out, "  %-*s  %s\n", maxIDLen, g.ID, g.Title)
		if g.Description != "" {
			fmt.Fprintf(out, "  %-*s  %s\n", maxIDLen, "", g.Description)
		}
	}

	fmt.Fprintln(out)
	fmt.Fprintln(out, "Run 'gigili play <id>' to play a maze.")
}
