// Package scenarios holds the built-in simulation scenarios. Each one
// registers itself with the registry on import.
package scenarios

import (
	"math/rand"

	"github.com/vovakirdan/tsprite/internal/collision"
	"github.com/vovakirdan/tsprite/internal/config"
	"github.com/vovakirdan/tsprite/internal/core"
	"github.com/vovakirdan/tsprite/internal/sim"
	"github.com/vovakirdan/tsprite/internal/sprite"
)

// ByY ranks sprites higher on screen in front, so they are drawn first.
func ByY(a, b *sprite.Sprite) float64 {
	return b.Y - a.Y
}

// ByX ranks sprites further left in front.
func ByX(a, b *sprite.Sprite) float64 {
	return b.X - a.X
}

// newWorld creates an empty world with the options cfg asks for, followed
// by the caller's.
func newWorld(cfg config.ScenarioConfig, opts []sim.Option, extra ...sim.Option) *sim.World {
	base := []sim.Option{sim.WithDebug(cfg.Debug)}
	switch cfg.Sprites.DrawOrder {
	case "y":
		base = append(base, sim.WithDrawOrder(ByY))
	case "x":
		base = append(base, sim.WithDrawOrder(ByX))
	}
	if cfg.Sprites.Lifetime > 0 {
		base = append(base, sim.WithLifetime(cfg.Sprites.Lifetime))
	}
	if cfg.Ramp.Enabled {
		base = append(base, sim.WithRamp(config.NewRamp(cfg.Ramp)))
	}
	base = append(base, extra...)
	base = append(base, opts...)
	return sim.NewWorld(cfg.World.Width, cfg.World.Height, base...)
}

// setRandomVelocity gives s a speed in [min, max) units per second on each
// axis, moving right and down.
func setRandomVelocity(rng *rand.Rand, s *sprite.Sprite, min, max float64) {
	span := max - min
	s.SetVelocity(min+span*rng.Float64(), min+span*rng.Float64())
}

// scatter moves s to a random position fully inside the panel.
func scatter(rng *rand.Rand, p *sprite.Panel, s *sprite.Sprite) {
	x := p.X + rng.Float64()*max(p.W-s.W, 0)
	y := p.Y + rng.Float64()*max(p.H-s.H, 0)
	s.MoveTo(x, y)
}

// attachChecker gives s the checker named by kind. "mixed" alternates
// circles and diamonds by uid.
func attachChecker(s *sprite.Sprite, kind string) {
	switch kind {
	case config.CheckerAreas:
		s.SetChecker(bodyAreas(s))
	case config.CheckerCircle:
		s.SetChecker(collision.NewSATCircle(s, min(s.W, s.H)/2))
	case config.CheckerDiamond:
		s.SetChecker(collision.NewSATPoints(s, diamond(s.W, s.H)...))
	case config.CheckerMixed:
		if s.UID()%2 == 0 {
			attachChecker(s, config.CheckerCircle)
		} else {
			attachChecker(s, config.CheckerDiamond)
		}
	default:
		s.SetChecker(nil)
	}
}

// bodyAreas splits a sprite into a full-width head and a narrower body.
func bodyAreas(s *sprite.Sprite) *collision.MultiRect {
	return collision.NewMultiRect(s).
		AddArea(0, 0, s.W, s.H/2).
		AddArea(s.W/4, s.H/2, s.W/2, s.H/2)
}

// diamond returns the points of a rhombus inscribed in a w×h box.
func diamond(w, h float64) []core.Vec {
	return []core.Vec{
		core.V(w/2, 0),
		core.V(w, h/2),
		core.V(w/2, h),
		core.V(0, h/2),
	}
}

// spawner returns a SpawnFunc that places a configured sprite at random.
func spawner(cfg config.ScenarioConfig, rng *rand.Rand) sim.SpawnFunc {
	return func(w *sim.World) *sprite.Sprite {
		s := sprite.New(w.IDs, cfg.Sprites.Width, cfg.Sprites.Height)
		s.ZIndex = int(s.UID())
		scatter(rng, w.Panel, s)
		setRandomVelocity(rng, s, cfg.Sprites.MinSpeed, cfg.Sprites.MaxSpeed)
		attachChecker(s, cfg.Sprites.Checker)
		return s
	}
}
