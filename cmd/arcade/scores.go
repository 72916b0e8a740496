package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/arcade-hub/internal/core"
	"github.com/vovakirdan/arcade-hub/internal/platform/tui"
	"github.com/vovakirdan/arcade-hub/internal/registry"
	"github.com/vovakirdan/arcade-hub/internal/storage"
)

var (
	flagPlain      bool
	flagClear      bool
	flagScoreLevel string
)

var scoresCmd = &cobra.Command{
	Use:   "scores [game]",
	Short: "Show high scores",
	Long: `Browse the score history in an interactive table, or print the top 10
runs of one game with --plain.

Examples:
  arcade scores
  arcade scores tetris
  arcade scores puzzle --plain --level hard
  arcade scores snake --clear`,
	Args: cobra.MaximumNArgs(1),
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagPlain, "plain", false, "Print the top 10 instead of opening the table")
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete the score history of the game")
	scoresCmd.Flags().StringVar(&flagScoreLevel, "level", "", "Only show runs of this difficulty (with --plain)")
}

func runScores(cmd *cobra.Command, args []string) error {
	gameID := ""
	if len(args) > 0 {
		gameID = args[0]
		if err := checkGame(gameID); err != nil {
			return err
		}
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("cannot open scores database: %w", err)
	}
	defer store.Close()

	if flagClear {
		if gameID == "" {
			return fmt.Errorf("--clear needs a game id")
		}
		if err := store.ClearScores(gameID); err != nil {
			return err
		}
		fmt.Printf("Cleared the score history of %s.\n", gameID)
		return nil
	}

	if !flagPlain {
		width, height := 80, 24
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width, height = w, h
		}
		return tui.RunScoreboard(store, gameID, width, height)
	}

	if gameID == "" {
		return fmt.Errorf("--plain needs a game id")
	}
	return printScores(store, gameID)
}

func printScores(store *storage.Store, gameID string) error {
	info, _ := registry.Info(gameID)

	level := ""
	if flagScoreLevel != "" {
		l, ok := core.ParseLevel(flagScoreLevel)
		if !ok {
			return fmt.Errorf("unknown difficulty %q", flagScoreLevel)
		}
		level = string(l)
	}

	scores, err := store.TopScores(gameID, level, info.Order, 10)
	if err != nil {
		return fmt.Errorf("cannot retrieve scores: %w", err)
	}

	fmt.Printf("High Scores - %s\n", info.Title)
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'arcade play %s' to set the first high score!\n", gameID)
		return nil
	}

	fmt.Printf("  %-4s  %-10s  %-8s  %s\n", "Rank", "Score", "Level", "Date")
	fmt.Printf("  %-4s  %-10s  %-8s  %s\n", "----", "-----", "-----", "----")

	for i, entry := range scores {
		dateStr := entry.CreatedAt.Format("2006-01-02 15:04")
		fmt.Printf("  %-4d  %-10d  %-8s  %s\n", i+1, entry.Score, entry.Level, dateStr)
	}

	fmt.Println()
	if level != "" {
		if best, ok, err := store.BestScore(gameID, level, info.Order); err == nil && ok {
			fmt.Printf("Best (%s): %d\n", level, best)
		}
	}
	if stats, err := store.GetGameStats(gameID); err == nil && stats.GamesCount > 0 {
		fmt.Printf("Runs: %d  Average: %.1f  Last played: %s\n",
			stats.GamesCount, stats.AvgScore, stats.LastPlayed.Format("2006-01-02 15:04"))
	}
	return nil
}
