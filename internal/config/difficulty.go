package config

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/squarecontrol/internal/level"
)

// DifficultyPreset names a generator preset.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// ParseDifficulty converts a name to a preset.
func ParseDifficulty(s string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(strings.ToLower(strings.TrimSpace(s))); p {
	case DifficultyEasy, DifficultyNormal, DifficultyHard:
		return p, nil
	default:
		return "", fmt.Errorf("unknown difficulty %q (want easy, normal or hard)", s)
	}
}

// GeneratorPreset holds generator options for one difficulty.
type GeneratorPreset struct {
	SquareCount          int     `yaml:"square_count"`
	TargetCount          int     `yaml:"target_count"`
	ZeroTargetPercentage float64 `yaml:"zero_target_percentage"`
	Pieces               int     `yaml:"pieces"`
	MaxTypes             int     `yaml:"max_types"`
}

// GeneratorConfig holds the presets used by "generate --difficulty".
type GeneratorConfig struct {
	Easy   GeneratorPreset `yaml:"easy"`
	Normal GeneratorPreset `yaml:"normal"`
	Hard   GeneratorPreset `yaml:"hard"`
}

// Preset returns the preset for p. Unknown presets fall back to normal.
func (g GeneratorConfig) Preset(p DifficultyPreset) GeneratorPreset {
	switch p {
	case DifficultyEasy:
		return g.Easy
	case DifficultyHard:
		return g.Hard
	default:
		return g.Normal
	}
}

// Options converts the preset into generator options for seed.
// Zero-valued fields are left to the generator's seeded defaults.
func (p GeneratorPreset) Options(seed int64) level.Options {
	opts := level.Options{Seed: seed}
	if p.SquareCount > 0 {
		opts.Board.SquareCount = level.Int(p.SquareCount)
	}
	if p.TargetCount > 0 {
		opts.Board.TargetCount = level.Int(p.TargetCount)
	}
	if p.ZeroTargetPercentage > 0 {
		opts.Board.ZeroTargetPercentage = level.Float(clampF(p.ZeroTargetPercentage, 0, 1))
	}
	if p.Pieces > 0 {
		opts.Pieces.Count = level.Int(p.Pieces)
	}
	if p.MaxTypes > 0 {
		opts.Pieces.MaxTypes = level.Int(p.MaxTypes)
	}
	return opts
}

func clampF(val, min, max float64) float64 {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}
