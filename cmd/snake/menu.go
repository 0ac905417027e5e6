package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-snake/internal/games/snake"
	"github.com/vovakirdan/tui-snake/internal/platform/tui"
)

var flagMenuConfig string

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start with the main menu",
	Long: `Start in interactive menu mode: pick New Game to choose a difficulty,
or open the high scores. Leaving a game returns to the menu.

Controls:
  Up/Down/j/k  - Navigate
  Enter/Space  - Select
  Tab          - High scores
  Esc          - Back
  Q            - Quit

Examples:
  snake menu
  snake menu --fps 30
  snake menu --db ./scores.db`,
	Args: cobra.NoArgs,
	RunE: runMenu,
}

func init() {
	menuCmd.Flags().StringVar(&flagMenuConfig, "config", "", "Path to custom difficulty config YAML")
}

func runMenu(_ *cobra.Command, _ []string) error {
	snake.SetConfigPath(flagMenuConfig)

	store := openStore()
	if store != nil {
		defer store.Close()
	}

	var failures saveFailures
	err := tui.RunSession(store, runtimeConfig(), failures.record)
	failures.flush()
	if err != nil {
		return fmt.Errorf("running menu: %w", err)
	}
	return nil
}
