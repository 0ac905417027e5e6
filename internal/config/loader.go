package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadSnake loads the Snake difficulty presets.
// Search order: customPath -> ~/.snake/configs/snake.yaml -> ./configs/snake.yaml -> embedded default.
// Files only need to list the presets they override; the rest keep their defaults.
func LoadSnake(customPath string) (SnakeConfig, error) {
	cfg := embeddedSnakeConfig()

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("config: failed to parse %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("snake.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			overlay := embeddedSnakeConfig()
			if err := yaml.Unmarshal(data, &overlay); err == nil {
				return overlay, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", "snake.yaml")); err == nil {
		overlay := embeddedSnakeConfig()
		if err := yaml.Unmarshal(data, &overlay); err == nil {
			return overlay, nil
		}
	}

	return cfg, nil
}

// ParseSnake decodes a YAML document on top of the embedded defaults.
func ParseSnake(data []byte) (SnakeConfig, error) {
	cfg := embeddedSnakeConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("config: failed to parse snake config: %w", err)
	}
	return cfg, nil
}

// embeddedSnakeConfig decodes the embedded defaults, falling back to the
// hardcoded presets if the embed is unusable.
func embeddedSnakeConfig() SnakeConfig {
	var cfg SnakeConfig
	if err := yaml.Unmarshal(defaultSnakeYAML, &cfg); err != nil || len(cfg.Presets) == 0 {
		return DefaultSnakeConfig()
	}
	return cfg
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".snake", "configs", filename)
}
