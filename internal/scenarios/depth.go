package scenarios

import (
	"math/rand"

	"github.com/vovakirdan/tsprite/internal/config"
	"github.com/vovakirdan/tsprite/internal/registry"
	"github.com/vovakirdan/tsprite/internal/sim"
)

func init() {
	registry.Register("depth", func() registry.Scenario { return depth{} })
}

// depth fills the panel with sprites drawn back to front by their y
// position, re-sorted every tick.
type depth struct{}

func (depth) ID() string    { return "depth" }
func (depth) Title() string { return "Depth Sorting" }

func (depth) Build(cfg config.ScenarioConfig, rng *rand.Rand, opts ...sim.Option) *sim.World {
	if cfg.Sprites.DrawOrder == "" || cfg.Sprites.DrawOrder == "none" {
		cfg.Sprites.DrawOrder = "y"
	}
	w := newWorld(cfg, opts, sim.WithSpawner(spawner(cfg, rng)))
	for range cfg.Sprites.Count {
		w.SpawnOne()
	}
	return w
}
