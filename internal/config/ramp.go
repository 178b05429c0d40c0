package config

import "math"

// RampConfig defines how simulation speed grows over time.
type RampConfig struct {
	Enabled         bool    `yaml:"enabled"`
	InitialLevel    float64 `yaml:"initial_level"`    // 0.0 = base speed, 1.0 = full ramp
	MaxAt           int     `yaml:"max_at"`           // Ticks at which the full ramp is reached
	SpeedMultiplier float64 `yaml:"speed_multiplier"` // Multiplier added to speed at full ramp
}

// Ramp calculates the time scale applied to each tick.
type Ramp struct {
	cfg          RampConfig
	initialLevel float64
}

// NewRamp creates a new ramp.
func NewRamp(cfg RampConfig) *Ramp {
	return &Ramp{
		cfg:          cfg,
		initialLevel: clampF(cfg.InitialLevel, 0.0, 1.0),
	}
}

// SetEnabled enables or disables the ramp.
func (r *Ramp) SetEnabled(enabled bool) {
	r.cfg.Enabled = enabled
}

// IsEnabled returns whether the ramp is active.
func (r *Ramp) IsEnabled() bool {
	return r.cfg.Enabled
}

// Level returns the current ramp level (0.0 to 1.0) after ticks.
func (r *Ramp) Level(ticks int) float64 {
	if !r.cfg.Enabled {
		return r.initialLevel
	}

	maxAt := float64(r.cfg.MaxAt)
	if maxAt <= 0 {
		maxAt = 1 // Prevent division by zero
	}
	progress := clampF(float64(ticks)/maxAt, 0.0, 1.0)

	// Interpolate from initial level to 1.0
	return r.initialLevel + progress*(1.0-r.initialLevel)
}

// Scale returns the time multiplier after ticks. A disabled ramp is 1.
func (r *Ramp) Scale(ticks int) float64 {
	if !r.cfg.Enabled {
		return 1.0
	}
	return 1.0 + r.Level(ticks)*r.cfg.SpeedMultiplier
}

// clampF restricts a float64 to [min, max].
func clampF(val, min, max float64) float64 {
	return math.Max(min, math.Min(max, val))
}
