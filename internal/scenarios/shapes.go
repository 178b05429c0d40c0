package scenarios

import (
	"math/rand"

	"github.com/vovakirdan/tsprite/internal/config"
	"github.com/vovakirdan/tsprite/internal/registry"
	"github.com/vovakirdan/tsprite/internal/sim"
)

func init() {
	registry.Register("shapes", func() registry.Scenario { return shapes{} })
}

// shapes mixes circles and diamonds tested with the separating axis
// theorem. The first four sprites start at fixed spots.
type shapes struct{}

func (shapes) ID() string    { return "shapes" }
func (shapes) Title() string { return "SAT Shapes" }

func (shapes) Build(cfg config.ScenarioConfig, rng *rand.Rand, opts ...sim.Option) *sim.World {
	switch cfg.Sprites.Checker {
	case config.CheckerCircle, config.CheckerDiamond, config.CheckerMixed:
	default:
		cfg.Sprites.Checker = config.CheckerMixed
	}
	w := newWorld(cfg, opts, sim.WithSpawner(spawner(cfg, rng)))

	starts := [][2]float64{{100, 10}, {10, 100}, {10, 180}, {180, 10}}
	for i := range cfg.Sprites.Count {
		s := w.SpawnOne()
		if i < len(starts) {
			s.MoveTo(starts[i][0], starts[i][1])
			w.Panel.RestrictBounds(s)
		}
	}
	return w
}
