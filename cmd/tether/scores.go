package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tether/internal/platform/tui"
	"github.com/vovakirdan/tether/internal/storage"
)

var (
	flagScoresLimit int
	flagScoresPlain bool
	flagScoresClear bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show high scores and level statistics",
	Long: `Display the high score table and per-level statistics.

On a terminal this opens an interactive scoreboard; with --plain or when
output is redirected it prints the top scores as text.

Examples:
  tether scores
  tether scores --plain --limit 5
  tether scores --clear`,
	Args: cobra.NoArgs,
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Number of scores to print in plain mode")
	scoresCmd.Flags().BoolVar(&flagScoresPlain, "plain", false, "Print text instead of the interactive scoreboard")
	scoresCmd.Flags().BoolVar(&flagScoresClear, "clear", false, "Delete all high scores")
}

func runScores(_ *cobra.Command, _ []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fail(fmt.Errorf("opening scores database: %w", err))
	}
	defer store.Close()

	if flagScoresClear {
		if err := store.ClearScores(); err != nil {
			store.Close()
			fail(err)
		}
		fmt.Println("High scores cleared.")
		return
	}

	fd := int(os.Stdout.Fd())
	if !flagScoresPlain && term.IsTerminal(fd) {
		width, height := 80, 24
		if w, h, termErr := term.GetSize(fd); termErr == nil {
			width, height = w, h
		}
		if err := tui.RunScoreboard(store, width, height); err != nil {
			store.Close()
			fail(err)
		}
		return
	}

	if err := printScores(store); err != nil {
		store.Close()
		fail(err)
	}
}

func printScores(store *storage.Store) error {
	scores, err := store.TopScores(flagScoresLimit)
	if err != nil {
		return fmt.Errorf("retrieving scores: %w", err)
	}

	fmt.Println("High Scores - Tether")
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Println("Play 'tether play' to set the first high score!")
		return nil
	}

	fmt.Printf("  %-4s  %-12s  %-8s  %-6s  %-10s  %s\n", "Rank", "Player", "Score", "Levels", "Difficulty", "Date")
	fmt.Printf("  %-4s  %-12s  %-8s  %-6s  %-10s  %s\n", "----", "------", "-----", "------", "----------", "----")
	for i, entry := range scores {
		fmt.Printf("  %-4d  %-12s  %-8d  %-6d  %-10s  %s\n",
			i+1, entry.Player, entry.Score, entry.Levels, entry.Difficulty,
			entry.CreatedAt.Format("2006-01-02 15:04"))
	}

	fmt.Println()
	if best, err := store.HighScore(); err == nil {
		fmt.Printf("Best: %d\n", best)
	}

	stats, err := store.AllLevelStats()
	if err != nil || len(stats) == 0 {
		return nil
	}
	fmt.Println()
	fmt.Printf("  %-12s  %-10s  %-5s  %-6s  %s\n", "Level", "Best time", "Runs", "Clears", "Deaths")
	for _, s := range stats {
		best := "-"
		if s.BestTime > 0 {
			best = s.BestTime.Round(10 * time.Millisecond).String()
		}
		fmt.Printf("  %-12s  %-10s  %-5d  %-6d  %d\n", s.LevelID, best, s.Runs, s.Clears, s.Deaths)
	}
	return nil
}
