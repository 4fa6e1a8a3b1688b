// Package config provides YAML configuration loading and difficulty presets
// for Proto Pong.
package config

import (
	"fmt"

	"github.com/vovakirdan/proto-pong/internal/pong"
)

// Config contains every tunable setting.
type Config struct {
	Timing     Timing           `yaml:"timing"`
	AI         AI               `yaml:"ai"`
	Difficulty DifficultyPreset `yaml:"difficulty"`
	Display    Display          `yaml:"display"`
}

// Timing sets the loop rates in Hz.
type Timing struct {
	TickRate int `yaml:"tick_rate"`
	DrawRate int `yaml:"draw_rate"`
}

// AI tunes the computer opponent.
type AI struct {
	ReplanInterval float64 `yaml:"replan_interval"` // seconds between predictions
	DeadZone       float64 `yaml:"dead_zone"`       // world units
	HitBias        float64 `yaml:"hit_bias"`        // fraction of paddle half-height
	HitSpread      float64 `yaml:"hit_spread"`      // random +/- around HitBias
	CenterJitter   float64 `yaml:"center_jitter"`   // fraction of table height
}

// Display controls how the world maps onto the terminal.
type Display struct {
	ViewWidth  float64 `yaml:"view_width"`  // world units shown horizontally
	ViewHeight float64 `yaml:"view_height"` // world units shown vertically
	Bell       bool    `yaml:"bell"`        // ring the terminal bell on bounces
}

// Tuning converts the AI section for the game.
func (a AI) Tuning() pong.AITuning {
	return pong.AITuning{
		ReplanInterval: a.ReplanInterval,
		DeadZone:       a.DeadZone,
		HitBias:        a.HitBias,
		HitSpread:      a.HitSpread,
		CenterJitter:   a.CenterJitter,
	}
}

// Validate reports the first setting that cannot work.
func (c Config) Validate() error {
	switch {
	case c.Timing.TickRate <= 0:
		return fmt.Errorf("config: timing.tick_rate must be positive, got %d", c.Timing.TickRate)
	case c.Timing.DrawRate <= 0:
		return fmt.Errorf("config: timing.draw_rate must be positive, got %d", c.Timing.DrawRate)
	case c.AI.ReplanInterval < 0:
		return fmt.Errorf("config: ai.replan_interval must not be negative")
	case c.AI.DeadZone < 0:
		return fmt.Errorf("config: ai.dead_zone must not be negative")
	case c.AI.HitSpread < 0:
		return fmt.Errorf("config: ai.hit_spread must not be negative")
	case c.Display.ViewWidth <= 0 || c.Display.ViewHeight <= 0:
		return fmt.Errorf("config: display view must be positive, got %gx%g",
			c.Display.ViewWidth, c.Display.ViewHeight)
	}
	if c.Difficulty != "" {
		if _, err := ParsePreset(string(c.Difficulty)); err != nil {
			return err
		}
	}
	return nil
}

// Default returns the built-in configuration.
func Default() Config {
	t := pong.DefaultAITuning()
	return Config{
		Timing: Timing{TickRate: 60, DrawRate: 60},
		AI: AI{
			ReplanInterval: t.ReplanInterval,
			DeadZone:       t.DeadZone,
			HitBias:        t.HitBias,
			HitSpread:      t.HitSpread,
			CenterJitter:   t.CenterJitter,
		},
		Difficulty: DifficultyNormal,
		Display: Display{
			ViewWidth:  800.0 / 3.0,
			ViewHeight: 200,
			Bell:       true,
		},
	}
}
