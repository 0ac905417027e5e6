package config

import "strings"

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyCustom DifficultyPreset = "custom"
)

// AllPresets lists the presets in menu order.
func AllPresets() []DifficultyPreset {
	return []DifficultyPreset{DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyCustom}
}

// ParsePreset converts user input into a preset. Empty input yields "".
func ParsePreset(s string) (DifficultyPreset, bool) {
	p := DifficultyPreset(strings.ToLower(strings.TrimSpace(s)))
	if p == "" {
		return "", true
	}
	for _, known := range AllPresets() {
		if p == known {
			return p, true
		}
	}
	return p, false
}

// Title returns the display name of the preset.
func (p DifficultyPreset) Title() string {
	switch p {
	case DifficultyEasy:
		return "Easy"
	case DifficultyNormal:
		return "Normal"
	case DifficultyHard:
		return "Hard"
	case DifficultyCustom:
		return "Custom"
	default:
		return string(p)
	}
}
