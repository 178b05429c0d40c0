package scenarios

import (
	"math/rand"

	"github.com/vovakirdan/tsprite/internal/config"
	"github.com/vovakirdan/tsprite/internal/registry"
	"github.com/vovakirdan/tsprite/internal/sim"
)

func init() {
	registry.Register("bounce", func() registry.Scenario { return bounce{} })
}

// bounce starts two sprites at fixed corners and lets them bounce off each
// other and the walls. Extra sprites from the config are scattered.
type bounce struct{}

func (bounce) ID() string    { return "bounce" }
func (bounce) Title() string { return "Bounce" }

func (bounce) Build(cfg config.ScenarioConfig, rng *rand.Rand, opts ...sim.Option) *sim.World {
	spawn := spawner(cfg, rng)
	w := newWorld(cfg, opts, sim.WithSpawner(spawn))

	starts := [][2]float64{{100, 10}, {10, 100}}
	for i := range cfg.Sprites.Count {
		s := w.SpawnOne()
		if i < len(starts) {
			s.MoveTo(starts[i][0], starts[i][1])
			w.Panel.RestrictBounds(s)
		}
	}
	return w
}
