// snake is a terminal Snake game with transient food.
//
// Usage:
//
//	snake play               - Play a difficulty directly
//	snake menu               - Main menu with difficulty dialog and scores
//	snake list               - List difficulty presets
//	snake scores [level]     - Show the best games of a difficulty
//	snake serve              - Start SSH server for remote play
//
// Global flags:
//
//	--fps <rate>    - Set frame rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible gameplay
//	--db <path>     - Set database path (default: ~/.snake/scores.db)
package main

import (
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/storage"
)

var (
	// Global flags
	flagFPS    int
	flagSeed   int64
	flagDBPath string
)

var logger = log.NewWithOptions(os.Stderr, log.Options{Prefix: "snake"})

func main() {
	if err := rootCmd.Execute(); err != nil {
		logger.Error(err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "snake",
	Short: "Snake - a terminal Snake game with blinking food",
	Long: `Snake is played on a fixed grid. Food blinks into random free cells
and disappears again after a while; eat it to grow. Fill the board to win,
hit a wall or yourself to lose.

Available commands:
  play     - Play a difficulty directly
  menu     - Main menu with difficulty dialog and high scores
  list     - Show the difficulty presets
  scores   - View high scores
  serve    - Start SSH server for remote play

Examples:
  snake play --difficulty hard
  snake menu
  snake scores easy
  snake serve --ssh :2222`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Frame rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.snake/scores.db", "Path to scores database")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(serveCmd)
}

// runtimeConfig builds the platform config from the terminal size and global flags.
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

// openStore opens the scores database. Failures are logged and the game
// runs without persistence.
func openStore() *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open scores database, scores will not be saved", "error", err)
		return nil
	}
	return store
}

// saveFailures collects save errors while the alt screen is up and logs
// them once the program has exited.
type saveFailures struct {
	results []storage.Result
	errs    []error
}

func (f *saveFailures) record(r storage.Result, err error) {
	if err != nil {
		f.results = append(f.results, r)
		f.errs = append(f.errs, err)
	}
}

func (f *saveFailures) flush() {
	for i, err := range f.errs {
		logger.Warn("could not save result", "difficulty", f.results[i].Difficulty, "length", f.results[i].Length, "error", err)
	}
}
