package config

import (
	"fmt"
	"strings"
)

// Preset represents a named difficulty level.
type Preset string

const (
	PresetEasy   Preset = "easy"
	PresetMedium Preset = "medium"
	PresetHard   Preset = "hard"
)

// Presets lists the presets in menu order.
var Presets = []Preset{PresetEasy, PresetMedium, PresetHard}

// ParsePreset converts a CLI/menu string into a Preset.
// An empty string selects medium.
func ParsePreset(s string) (Preset, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "easy":
		return PresetEasy, nil
	case "", "medium", "normal":
		return PresetMedium, nil
	case "hard":
		return PresetHard, nil
	default:
		return "", fmt.Errorf("config: unknown difficulty %q (want easy, medium or hard)", s)
	}
}

// Title returns the display name of the preset.
func (p Preset) Title() string {
	switch p {
	case PresetEasy:
		return "Easy"
	case PresetHard:
		return "Hard"
	default:
		return "Medium"
	}
}
