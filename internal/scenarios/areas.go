package scenarios

import (
	"math/rand"

	"github.com/vovakirdan/tsprite/internal/config"
	"github.com/vovakirdan/tsprite/internal/registry"
	"github.com/vovakirdan/tsprite/internal/sim"
)

func init() {
	registry.Register("areas", func() registry.Scenario { return areas{} })
}

// areas gives every sprite a two-rectangle footprint, so corners of the
// bounding box can pass through each other without a collision.
type areas struct{}

func (areas) ID() string    { return "areas" }
func (areas) Title() string { return "Collision Areas" }

func (areas) Build(cfg config.ScenarioConfig, rng *rand.Rand, opts ...sim.Option) *sim.World {
	cfg.Sprites.Checker = config.CheckerAreas
	w := newWorld(cfg, opts, sim.WithSpawner(spawner(cfg, rng)))
	for range cfg.Sprites.Count {
		w.SpawnOne()
	}
	return w
}
