package config

import (
	"fmt"
	"strings"
)

// DifficultyPreset represents a named computer opponent strength.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// Presets lists the known presets from weakest to strongest.
var Presets = []DifficultyPreset{DifficultyEasy, DifficultyNormal, DifficultyHard}

// ParsePreset resolves a preset name, ignoring case.
func ParsePreset(name string) (DifficultyPreset, error) {
	p := DifficultyPreset(strings.ToLower(strings.TrimSpace(name)))
	for _, known := range Presets {
		if p == known {
			return p, nil
		}
	}
	return "", fmt.Errorf("config: unknown difficulty %q (want easy, normal or hard)", name)
}

// ApplyPreset overwrites the AI section with the preset's values.
func ApplyPreset(cfg *Config, preset DifficultyPreset) {
	ai := Default().AI
	switch preset {
	case DifficultyEasy:
		// Slow to react and sloppy with the angle.
		ai.ReplanInterval = 0.5
		ai.DeadZone = 3
		ai.HitSpread = 0.35
	case DifficultyHard:
		ai.ReplanInterval = 0.15
		ai.DeadZone = 0.5
		ai.HitBias = 0.6
		ai.HitSpread = 0.1
		ai.CenterJitter = 0.05
	}
	cfg.AI = ai
	cfg.Difficulty = preset
}

// SelectDifficulty applies override if given, else the preset named in cfg.
// The normal preset only applies when named explicitly by override, so a
// hand-tuned ai section survives.
func SelectDifficulty(cfg *Config, override string) error {
	if override != "" {
		p, err := ParsePreset(override)
		if err != nil {
			return err
		}
		ApplyPreset(cfg, p)
		return nil
	}
	switch cfg.Difficulty {
	case DifficultyEasy, DifficultyHard:
		ApplyPreset(cfg, cfg.Difficulty)
	}
	return nil
}
