package config

import (
	"embed"
)

//go:embed defaults/*.yaml
var defaultsFS embed.FS

// DefaultConfig returns the hardcoded scenario configuration.
func DefaultConfig() ScenarioConfig {
	return ScenarioConfig{
		World: WorldConfig{
			Width:    320,
			Height:   240,
			TickRate: 30,
		},
		Sprites: SpriteConfig{
			Count:     2,
			Width:     32,
			Height:    32,
			MinSpeed:  50,
			MaxSpeed:  150,
			Checker:   CheckerAABB,
			DrawOrder: "none",
		},
		Ramp: RampConfig{
			Enabled:         false,
			InitialLevel:    0.0,
			MaxAt:           1800, // 1 minute at 30 ticks per second
			SpeedMultiplier: 1.0,
		},
		Render: RenderConfig{
			CellWidth:  4,
			CellHeight: 8,
		},
	}
}

// GetDefaultYAML returns the embedded default YAML for a scenario.
func GetDefaultYAML(scenarioID string) []byte {
	data, err := defaultsFS.ReadFile("defaults/" + scenarioID + ".yaml")
	if err != nil {
		return nil
	}
	return data
}
