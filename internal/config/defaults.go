package config

import (
	_ "embed"
)

//go:embed defaults/snake.yaml
var defaultSnakeYAML []byte

// DefaultSnakeConfig returns the built-in presets.
// Used when the embedded YAML cannot be parsed.
func DefaultSnakeConfig() SnakeConfig {
	return SnakeConfig{
		Default: DifficultyNormal,
		Presets: map[DifficultyPreset]DifficultyConfig{
			DifficultyEasy: {
				Label: "Easy", Width: 20, Height: 15,
				TickMS: 250, MaxFood: 8, FoodLifetimeMS: 2000,
			},
			DifficultyNormal: {
				Label: "Normal", Width: 25, Height: 20,
				TickMS: 150, MaxFood: 5, FoodLifetimeMS: 1500,
			},
			DifficultyHard: {
				Label: "Hard", Width: 35, Height: 30,
				TickMS: 50, MaxFood: 3, FoodLifetimeMS: 1000,
			},
			DifficultyCustom: {
				Label: "Custom", Width: 30, Height: 20,
				TickMS: 100, MaxFood: 4, FoodLifetimeMS: 1200,
			},
		},
	}
}

// GetDefaultYAML returns the embedded default YAML.
func GetDefaultYAML() []byte {
	return defaultSnakeYAML
}
