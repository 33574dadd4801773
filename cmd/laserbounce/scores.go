package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/laser-bounce/internal/config"
	"github.com/vovakirdan/laser-bounce/internal/platform/tui"
	"github.com/vovakirdan/laser-bounce/internal/storage"
)

var (
	flagScoresDifficulty string
	flagScoresLimit      int
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show high scores",
	Long: `Display the all-time best score and the top scores for one
difficulty, or for every difficulty when none is given.

Examples:
  laserbounce scores
  laserbounce scores --difficulty hard --limit 5`,
	Args: cobra.NoArgs,
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().StringVar(&flagScoresDifficulty, "difficulty", "", "Only show this difficulty: easy, medium, hard")
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Number of scores per difficulty")
}

func runScores(_ *cobra.Command, _ []string) {
	presets := config.Presets
	if flagScoresDifficulty != "" {
		p, err := config.ParsePreset(flagScoresDifficulty)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		presets = []config.Preset{p}
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	best, err := store.BestScore(storage.BestScoreKey)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving best score: %v\n", err)
		return
	}
	fmt.Printf("Laser Bounce - all-time best: %d\n", best)

	for _, p := range presets {
		if err := printPresetScores(store, p); err != nil {
			fmt.Fprintf(os.Stderr, "Error retrieving scores: %v\n", err)
			return
		}
	}
}

func printPresetScores(store *storage.Store, p config.Preset) error {
	scores, err := store.TopScores(tui.HistoryID(p), flagScoresLimit)
	if err != nil {
		return err
	}
	stats, err := store.Stats(tui.HistoryID(p))
	if err != nil {
		return err
	}

	fmt.Println()
	fmt.Printf("%s\n", p.Title())

	if len(scores) == 0 {
		fmt.Println("  No scores recorded yet.")
		fmt.Printf("  Play 'laserbounce play --difficulty %s' to set the first one!\n", p)
		return nil
	}

	fmt.Printf("  %-4s  %-10s  %s\n", "Rank", "Score", "Date")
	fmt.Printf("  %-4s  %-10s  %s\n", "----", "-----", "----")
	for i, entry := range scores {
		fmt.Printf("  %-4d  %-10d  %s\n", i+1, entry.Score, entry.CreatedAt.Format("2006-01-02 15:04"))
	}
	fmt.Printf("  %d games, average %.0f, last played %s\n",
		stats.GamesCount, stats.AvgScore, stats.LastPlayed.Format("2006-01-02 15:04"))
	return nil
}
