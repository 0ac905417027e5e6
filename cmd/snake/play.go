package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/games/snake"
	"github.com/vovakirdan/tui-snake/internal/platform/tui"
	"github.com/vovakirdan/tui-snake/internal/registry"
)

var (
	flagConfig     string
	flagDifficulty string
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a game",
	Long: `Start a game. Without --difficulty the difficulty dialog is shown first.

Controls:
  Arrows/WASD/hjkl  - Turn
  Space/P           - Start, pause and resume
  R                 - Restart
  Y/Enter           - Play again (after the game ended)
  N/Esc             - Leave
  Ctrl+S            - Save a screenshot to ~/.snake/screenshots
  Q/Ctrl+C          - Quit

Difficulty presets:
  easy    - 20x15 board, slow snake, plenty of long-lived food
  normal  - 25x20 board
  hard    - 35x30 board, fast snake, scarce short-lived food
  custom  - read from the YAML config (see --config)

Examples:
  snake play
  snake play --difficulty hard
  snake play --difficulty custom --config ./my-snake.yaml
  snake play --seed 42`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom difficulty config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, custom")
}

func runPlay(_ *cobra.Command, _ []string) error {
	preset, ok := config.ParsePreset(flagDifficulty)
	if !ok {
		return fmt.Errorf("unknown difficulty %q, run 'snake list' to see the presets", flagDifficulty)
	}

	snake.SetConfigPath(flagConfig)
	difficulties, err := snake.Difficulties()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	cfg := runtimeConfig()

	if preset == "" {
		selected, selErr := tui.RunDifficultySelector(difficulties, cfg)
		if selErr != nil {
			return selErr
		}
		if selected == nil {
			return nil
		}
		preset = *selected
	}

	game, err := registry.Create(string(preset))
	if err != nil {
		return err
	}

	store := openStore()
	if store != nil {
		defer store.Close()
	}

	var failures saveFailures
	runErr := tui.Run(game, store, cfg, failures.record)
	failures.flush()
	if runErr != nil {
		return fmt.Errorf("running game: %w", runErr)
	}
	return nil
}
