package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/platform/tui"
	"github.com/vovakirdan/tui-snake/internal/storage"
)

var (
	flagScoresLimit  int
	flagScoresRecent int
	flagScoresClear  bool
	flagScoresBrowse bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores [difficulty]",
	Short: "Show high scores",
	Long: `Display the best games of a difficulty, or of every difficulty when
none is given. Games are ranked by snake length, fewer ticks first on ties.

Examples:
  snake scores
  snake scores hard
  snake scores easy --limit 3
  snake scores --recent 5      # Latest games of every difficulty
  snake scores --browse        # Interactive scoreboard
  snake scores normal --clear  # Delete all normal games`,
	Args: cobra.MaximumNArgs(1),
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Number of games to show per difficulty")
	scoresCmd.Flags().IntVar(&flagScoresRecent, "recent", 0, "Show the latest N games instead of the rankings")
	scoresCmd.Flags().BoolVar(&flagScoresClear, "clear", false, "Delete all recorded games of the given difficulty")
	scoresCmd.Flags().BoolVar(&flagScoresBrowse, "browse", false, "Open the interactive scoreboard")
	scoresCmd.MarkFlagsMutuallyExclusive("recent", "clear", "browse")
}

func runScores(_ *cobra.Command, args []string) error {
	presets := config.AllPresets()
	if len(args) == 1 {
		p, ok := config.ParsePreset(args[0])
		if !ok || p == "" {
			return fmt.Errorf("unknown difficulty %q, run 'snake list' to see the presets", args[0])
		}
		presets = []config.DifficultyPreset{p}
	}
	if flagScoresClear && len(args) == 0 {
		return errors.New("--clear needs a difficulty, e.g. 'snake scores easy --clear'")
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		return err
	}
	defer store.Close()

	switch {
	case flagScoresBrowse:
		cfg := runtimeConfig()
		return tui.RunScoreboard(store, cfg.ScreenW, cfg.ScreenH)
	case flagScoresClear:
		if err := store.ClearScores(string(presets[0])); err != nil {
			return err
		}
		logger.Info("cleared scores", "difficulty", presets[0])
		return nil
	case flagScoresRecent > 0:
		return printRecent(store, flagScoresRecent)
	}

	for i, p := range presets {
		if i > 0 {
			fmt.Println()
		}
		if err := printScores(store, p); err != nil {
			return err
		}
	}
	return nil
}

func printScores(store *storage.Store, p config.DifficultyPreset) error {
	scores, err := store.TopScores(string(p), flagScoresLimit)
	if err != nil {
		return err
	}

	fmt.Printf("High Scores - %s\n", p.Title())
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("  No games recorded yet.")
		return nil
	}

	fmt.Printf("  %-4s  %-6s  %-6s  %-7s  %s\n", "Rank", "Length", "Result", "Ticks", "Date")
	fmt.Printf("  %-4s  %-6s  %-6s  %-7s  %s\n", "----", "------", "------", "-----", "----")

	for i, e := range scores {
		fmt.Printf("  %-4d  %-6d  %-6s  %-7d  %s\n",
			i+1, e.Length, e.Outcome, e.Ticks, e.CreatedAt.Format("2006-01-02 15:04"))
	}

	stats, err := store.GetStats(string(p))
	if err != nil {
		return err
	}
	fmt.Println()
	fmt.Printf("Games: %d  Won: %d  Best: %d  Average: %.1f\n",
		stats.Games, stats.Wins, stats.Best, stats.AvgLength)
	return nil
}

func printRecent(store *storage.Store, limit int) error {
	entries, err := store.RecentResults(limit)
	if err != nil {
		return err
	}

	fmt.Println("Recent Games")
	fmt.Println()

	if len(entries) == 0 {
		fmt.Println("  No games recorded yet.")
		return nil
	}

	fmt.Printf("  %-16s  %-10s  %-6s  %-6s  %s\n", "Date", "Difficulty", "Length", "Result", "Ticks")
	for _, e := range entries {
		result := "lost"
		if e.Won() {
			result = "WON"
		}
		fmt.Printf("  %-16s  %-10s  %-6d  %-6s  %d\n",
			e.CreatedAt.Format("2006-01-02 15:04"), e.Difficulty, e.Length, result, e.Ticks)
	}
	return nil
}
