package scenarios

import (
	"math/rand"

	"github.com/vovakirdan/tsprite/internal/config"
	"github.com/vovakirdan/tsprite/internal/registry"
	"github.com/vovakirdan/tsprite/internal/sim"
	"github.com/vovakirdan/tsprite/internal/sprite"
)

func init() {
	registry.Register("random", func() registry.Scenario { return random{} })
}

// defaultLifetime applies when the config leaves sprites immortal.
const defaultLifetime = 8000 // ms

// random keeps a population of short-lived sprites with random sizes.
// Expired sprites are purged and replaced every tick.
type random struct{}

func (random) ID() string    { return "random" }
func (random) Title() string { return "Random Crowd" }

func (random) Build(cfg config.ScenarioConfig, rng *rand.Rand, opts ...sim.Option) *sim.World {
	if cfg.Sprites.Lifetime <= 0 {
		cfg.Sprites.Lifetime = defaultLifetime
	}
	base := spawner(cfg, rng)
	spawn := func(w *sim.World) *sprite.Sprite {
		s := base(w)
		s.Scale(0.5+rng.Float64(), 0)
		w.Panel.RestrictBounds(s)
		// Shapes are sized from the sprite, so rebuild after scaling.
		attachChecker(s, cfg.Sprites.Checker)
		return s
	}

	w := newWorld(cfg, opts,
		sim.WithSpawner(spawn),
		sim.WithPopulation(cfg.Sprites.Count),
	)
	for range cfg.Sprites.Count {
		w.SpawnOne()
	}
	return w
}
