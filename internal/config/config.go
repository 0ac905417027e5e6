// Package config provides YAML-based difficulty configuration for Snake.
package config

import (
	"errors"
	"fmt"
	"time"
)

// MinSnakeLength is the length every session starts with.
const MinSnakeLength = 3

// MaxGridSide bounds both board dimensions.
const MaxGridSide = 500

// Validation errors returned by DifficultyConfig.Validate.
var (
	ErrInvalidGrid     = errors.New("config: grid must be at least 4x2 cells")
	ErrGridTooLarge    = fmt.Errorf("config: grid must be at most %dx%d cells", MaxGridSide, MaxGridSide)
	ErrInvalidTick     = errors.New("config: tick interval must be positive")
	ErrInvalidFood     = errors.New("config: max food must not be negative")
	ErrInvalidLifetime = errors.New("config: food lifetime must be positive")
)

// DifficultyConfig is the immutable parameter set of one game session.
type DifficultyConfig struct {
	Label          string `yaml:"label"`
	Width          int    `yaml:"width"`  // Columns
	Height         int    `yaml:"height"` // Rows
	TickMS         int    `yaml:"tick_ms"`
	MaxFood        int    `yaml:"max_food"` // Food cells marked per tick
	FoodLifetimeMS int    `yaml:"food_lifetime_ms"`
}

// TickInterval returns the time between two snake moves.
func (d DifficultyConfig) TickInterval() time.Duration {
	return time.Duration(d.TickMS) * time.Millisecond
}

// FoodLifetime returns how long a food cell stays on the board.
func (d DifficultyConfig) FoodLifetime() time.Duration {
	return time.Duration(d.FoodLifetimeMS) * time.Millisecond
}

// Cells returns the number of cells on the board.
func (d DifficultyConfig) Cells() int {
	return d.Width * d.Height
}

// Validate checks that a session can be started with these parameters.
func (d DifficultyConfig) Validate() error {
	// The initial snake needs MinSnakeLength columns plus room to move.
	if d.Width < MinSnakeLength+1 || d.Height < 2 {
		return ErrInvalidGrid
	}
	if d.Width > MaxGridSide || d.Height > MaxGridSide {
		return ErrGridTooLarge
	}
	if d.TickMS <= 0 {
		return ErrInvalidTick
	}
	if d.MaxFood < 0 {
		return ErrInvalidFood
	}
	if d.FoodLifetimeMS <= 0 {
		return ErrInvalidLifetime
	}
	return nil
}

// String describes the difficulty for menus and CLI listings.
func (d DifficultyConfig) String() string {
	return fmt.Sprintf("%dx%d, %dms/move, %d food, food lasts %dms",
		d.Width, d.Height, d.TickMS, d.MaxFood, d.FoodLifetimeMS)
}

// SnakeConfig contains every difficulty preset known to the game.
type SnakeConfig struct {
	Default DifficultyPreset                      `yaml:"default"`
	Presets map[DifficultyPreset]DifficultyConfig `yaml:"presets"`
}

// Preset returns the configuration for the given preset.
// An empty preset selects the configured default.
func (c SnakeConfig) Preset(p DifficultyPreset) (DifficultyConfig, error) {
	if p == "" {
		p = c.Default
	}
	d, ok := c.Presets[p]
	if !ok {
		return DifficultyConfig{}, fmt.Errorf("config: unknown difficulty %q", p)
	}
	if d.Label == "" {
		d.Label = p.Title()
	}
	if err := d.Validate(); err != nil {
		return DifficultyConfig{}, fmt.Errorf("config: difficulty %q: %w", p, err)
	}
	return d, nil
}
