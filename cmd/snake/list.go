package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/games/snake"
)

var flagListConfig string

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the difficulty presets",
	Long:  `Shows every difficulty with its board size, speed and food settings.`,
	Args:  cobra.NoArgs,
	RunE:  runList,
}

func init() {
	listCmd.Flags().StringVar(&flagListConfig, "config", "", "Path to custom difficulty config YAML")
}

func runList(_ *cobra.Command, _ []string) error {
	snake.SetConfigPath(flagListConfig)
	cfg, err := snake.Difficulties()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	fmt.Println("Difficulties:")
	fmt.Println()
	fmt.Printf("  %-7s  %-7s  %s\n", "ID", "Name", "Settings")
	fmt.Printf("  %-7s  %-7s  %s\n", "--", "----", "--------")

	for _, p := range config.AllPresets() {
		marker := ""
		if p == cfg.Default {
			marker = "  (default)"
		}

		d, err := cfg.Preset(p)
		if err != nil {
			fmt.Printf("  %-7s  %-7s  invalid: %v\n", p, p.Title(), err)
			continue
		}
		fmt.Printf("  %-7s  %-7s  %s%s\n", p, d.Label, d, marker)
	}

	fmt.Println()
	fmt.Println("Run 'snake play --difficulty <id>' to play.")
	return nil
}
