// Package config provides YAML-based scenario configuration loading and
// speed ramp management for the simulation sandbox.
package config

import (
	"errors"
	"fmt"
)

// ErrInvalid is returned by Validate for unusable settings.
var ErrInvalid = errors.New("config: invalid")

// ScenarioConfig contains all configuration for one simulation scenario.
type ScenarioConfig struct {
	World   WorldConfig  `yaml:"world"`
	Sprites SpriteConfig `yaml:"sprites"`
	Ramp    RampConfig   `yaml:"ramp"`
	Render  RenderConfig `yaml:"render"`
	Debug   bool         `yaml:"debug"` // Log collisions and draw the debug overlay
}

// WorldConfig defines the bounding panel and clock.
type WorldConfig struct {
	Width    float64 `yaml:"width"`
	Height   float64 `yaml:"height"`
	TickRate int     `yaml:"tick_rate"` // Ticks per second
	Seed     int64   `yaml:"seed"`      // 0 picks a time-based seed
}

// SpriteConfig defines the sprites a scenario spawns.
type SpriteConfig struct {
	Count     int     `yaml:"count"`
	Width     float64 `yaml:"width"`
	Height    float64 `yaml:"height"`
	MinSpeed  float64 `yaml:"min_speed"`  // Units per second
	MaxSpeed  float64 `yaml:"max_speed"`  // Units per second
	Checker   string  `yaml:"checker"`    // "aabb", "areas", "circle", "diamond" or "mixed"
	DrawOrder string  `yaml:"draw_order"` // "y", "x" or "none"
	Lifetime  float64 `yaml:"lifetime"`   // Milliseconds before a sprite expires, 0 = never
}

// RenderConfig maps world units onto terminal cells.
type RenderConfig struct {
	CellWidth  float64 `yaml:"cell_width"`  // World units per column
	CellHeight float64 `yaml:"cell_height"` // World units per row
}

// Checker kinds understood by the scenarios.
const (
	CheckerAABB    = "aabb"
	CheckerAreas   = "areas"
	CheckerCircle  = "circle"
	CheckerDiamond = "diamond"
	CheckerMixed   = "mixed"
)

// Validate reports the first unusable setting.
func (c ScenarioConfig) Validate() error {
	switch {
	case c.World.Width <= 0 || c.World.Height <= 0:
		return fmt.Errorf("%w: world size %vx%v", ErrInvalid, c.World.Width, c.World.Height)
	case c.World.TickRate <= 0:
		return fmt.Errorf("%w: tick_rate %d", ErrInvalid, c.World.TickRate)
	case c.Sprites.Count < 0:
		return fmt.Errorf("%w: sprite count %d", ErrInvalid, c.Sprites.Count)
	case c.Sprites.Width <= 0 || c.Sprites.Height <= 0:
		return fmt.Errorf("%w: sprite size %vx%v", ErrInvalid, c.Sprites.Width, c.Sprites.Height)
	case c.Sprites.MinSpeed < 0 || c.Sprites.MaxSpeed < c.Sprites.MinSpeed:
		return fmt.Errorf("%w: speed range %v..%v", ErrInvalid, c.Sprites.MinSpeed, c.Sprites.MaxSpeed)
	case c.Sprites.Lifetime < 0:
		return fmt.Errorf("%w: lifetime %v", ErrInvalid, c.Sprites.Lifetime)
	case c.Render.CellWidth <= 0 || c.Render.CellHeight <= 0:
		return fmt.Errorf("%w: cell size %vx%v", ErrInvalid, c.Render.CellWidth, c.Render.CellHeight)
	}
	switch c.Sprites.Checker {
	case "", CheckerAABB, CheckerAreas, CheckerCircle, CheckerDiamond, CheckerMixed:
	default:
		return fmt.Errorf("%w: checker %q", ErrInvalid, c.Sprites.Checker)
	}
	switch c.Sprites.DrawOrder {
	case "", "none", "x", "y":
	default:
		return fmt.Errorf("%w: draw_order %q", ErrInvalid, c.Sprites.DrawOrder)
	}
	return nil
}

// Preset represents a named pacing level.
type Preset string

const (
	PresetCalm    Preset = "calm"
	PresetNormal  Preset = "normal"
	PresetFrantic Preset = "frantic"
	PresetFixed   Preset = "fixed"
)

// InitialLevelForPreset returns the ramp initial_level for a preset.
func InitialLevelForPreset(preset Preset) float64 {
	switch preset {
	case PresetCalm:
		return 0.0
	case PresetNormal:
		return 0.3
	case PresetFrantic:
		return 0.7
	default:
		return 0.0
	}
}

// ApplyPreset modifies the config based on a pacing preset.
func ApplyPreset(cfg *ScenarioConfig, preset Preset) {
	if preset == PresetFixed {
		cfg.Ramp.Enabled = false
		return
	}
	cfg.Ramp.Enabled = true
	cfg.Ramp.InitialLevel = InitialLevelForPreset(preset)

	switch preset {
	case PresetCalm:
		cfg.Sprites.MinSpeed /= 2
		cfg.Sprites.MaxSpeed /= 2
	case PresetFrantic:
		cfg.Sprites.Count *= 2
		cfg.Sprites.MaxSpeed *= 1.5
	}
}
