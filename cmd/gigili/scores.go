package main

import (
	"fmt"
	"io"
	"sort"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/gigili/internal/registry"
	"github.com/vovakirdan/gigili/internal/storage"
)

var flagClearScores bool

var scoresCmd = &cobra.Command{
	Use:   "scores [maze]",
	Short: "Show high scores",
	Long: `Display the top 10 runs for the given maze, or a summary of every
maze when no maze is given.

Examples:
  gigili scores
  gigili scores ward
  gigili scores clinic --clear`,
	Args: cobra.MaximumNArgs(1),
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagClearScores, "clear", false, "Delete all scores for the maze")
}

func runScores(cmd *cobra.Command, args []string) error {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return err
	}
	defer store.Close()

	out := cmd.OutOrStdout()
	if len(args) == 0 {
		if flagClearScores {
			return fmt.Errorf("--clear needs a maze")
		}
		return printStats(out, store)
	}

	gameID, err := resolveGameID(args[0])
	if err != nil {
		return err
	}
	info, _ := registry.Info(gameID)

	if flagClearScores {
		if err := store.ClearScores(gameID); err != nil {
			return err
		}
		fmt.Fprintf(out, "Cleared scores for %s.\n", info.Title)
		return nil
	}

	return printTopScores(out, store, info)
}

func printTopScores(out io.Writer, store *storage.Store, info registry.GameInfo) error {
	scores, err := store.TopScores(info.ID, storage.DefaultLimit)
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "High Scores - %s\n\n", info.Title)
	if len(scores) == 0 {
		fmt.Fprintln(out, "No scores recorded yet.")
		fmt.Fprintln(out)
		fmt.Fprintf(out, "Play 'gigili play %s' to set the first high score!\n", info.ID)
		return nil
	}

	fmt.Fprintf(out, "  %-4s  %-15s  %-8s  %-9s  %s\n", "Rank", "Player", "Score", "Result", "Date")
	fmt.Fprintf(out, "  %-4s  %-15s  %-8s  %-9s  %s\n", "----", "------", "-----", "------", "----")
	for i, e := range scores {
		result := "caught"
		if e.Outcome == "victory" {
			result = "cleared"
		}
		fmt.Fprintf(out, "  %-4d  %-15s  %-8d  %-9s  %s\n",
			i+1, e.PlayerName, e.Score, result, e.CreatedAt.Local().Format("2006-01-02 15:04"))
	}
	return nil
}

func printStats(out io.Writer, store *storage.Store) error {
	stats, err := store.GetAllGamesStats()
	if err != nil {
		return err
	}
	if len(stats) == 0 {
		fmt.Fprintln(out, "No scores recorded yet.")
		return nil
	}

	ids := make([]string, 0, len(stats))
	for id := range stats {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	fmt.Fprintf(out, "  %-16s  %-6s  %-8s  %-6s  %-8s  %s\n", "Maze", "Runs", "Cleared", "Best", "Average", "Last played")
	fmt.Fprintf(out, "  %-16s  %-6s  %-8s  %-6s  %-8s  %s\n", "----", "----", "-------", "----", "-------", "-----------")
	for _, id := range ids {
		s := stats[id]
		fmt.Fprintf(out, "  %-16s  %-6d  %-8d  %-6d  %-8.1f  %s\n",
			id, s.GamesCount, s.Victories, s.HighScore, s.AvgScore, s.LastPlayed.Local().Format("2006-01-02 15:04"))
	}
	return nil
}
