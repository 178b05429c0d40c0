package scenarios

import (
	"context"
	"testing"

	"github.com/vovakirdan/tsprite/internal/collision"
	"github.com/vovakirdan/tsprite/internal/config"
	"github.com/vovakirdan/tsprite/internal/registry"
	"github.com/vovakirdan/tsprite/internal/sim"
)

func loadConfig(t *testing.T, id string) config.ScenarioConfig {
	t.Helper()
	data := config.GetDefaultYAML(id)
	if data == nil {
		t.Fatalf("no embedded config for %q", id)
	}
	cfg, err := config.Parse(data)
	if err != nil {
		t.Fatalf("Parse(%s) error = %v", id, err)
	}
	return cfg
}

func TestScenariosRegistered(t *testing.T) {
	for _, id := range []string{"areas", "bounce", "depth", "random", "shapes"} {
		if !registry.Exists(id) {
			t.Errorf("scenario %q not registered", id)
		}
	}
}

func TestScenariosBuildInsidePanel(t *testing.T) {
	for _, info := range registry.List() {
		t.Run(info.ID, func(t *testing.T) {
			cfg := loadConfig(t, info.ID)
			w, err := registry.Build(info.ID, cfg, 7)
			if err != nil {
				t.Fatalf("Build() error = %v", err)
			}
			if len(w.Sprites) != cfg.Sprites.Count {
				t.Errorf("sprites = %d, expected %d", len(w.Sprites), cfg.Sprites.Count)
			}
			for _, s := range w.Sprites {
				if b := w.Panel.CheckBounds(s); b != 0 {
					t.Errorf("sprite %s at (%v, %v) crosses %v", s.Name, s.X, s.Y, b)
				}
			}
		})
	}
}

func TestScenarioCheckers(t *testing.T) {
	areasWorld, _ := registry.Build("areas", loadConfig(t, "areas"), 1)
	for _, s := range areasWorld.Sprites {
		if _, ok := s.Checker().(*collision.MultiRect); !ok {
			t.Errorf("areas sprite %s has checker %T", s.Name, s.Checker())
		}
	}

	shapesWorld, _ := registry.Build("shapes", loadConfig(t, "shapes"), 1)
	kinds := map[collision.ShapeKind]int{}
	for _, s := range shapesWorld.Sprites {
		c, ok := s.Checker().(*collision.SAT)
		if !ok {
			t.Fatalf("shapes sprite %s has checker %T", s.Name, s.Checker())
		}
		kinds[c.Shape().Kind]++
	}
	if kinds[collision.ShapeCircle] == 0 || kinds[collision.ShapePolygon] == 0 {
		t.Errorf("shape mix = %v, expected both circles and polygons", kinds)
	}

	bounceWorld, _ := registry.Build("bounce", loadConfig(t, "bounce"), 1)
	if bounceWorld.Sprites[0].Checker() != nil {
		t.Error("bounce sprites should use bounding boxes only")
	}
	if x, y := bounceWorld.Sprites[0].X, bounceWorld.Sprites[0].Y; x != 100 || y != 10 {
		t.Errorf("first bounce sprite at (%v, %v), expected (100, 10)", x, y)
	}
}

func TestScenarioSeedReproducesRun(t *testing.T) {
	cfg := loadConfig(t, "depth")
	a, _ := registry.Build("depth", cfg, 99)
	b, _ := registry.Build("depth", cfg, 99)

	sa, _ := sim.Run(context.Background(), a, 200, 33)
	sb, _ := sim.Run(context.Background(), b, 200, 33)
	if sa != sb {
		t.Errorf("same seed gave different stats: %+v vs %+v", sa, sb)
	}
	if a.DrawOrder == nil || !a.DrawOrder.IsSorted() {
		t.Error("depth world should keep a sorted draw order")
	}
}

func TestRandomKeepsPopulation(t *testing.T) {
	cfg := loadConfig(t, "random")
	cfg.Sprites.Lifetime = 500
	w, _ := registry.Build("random", cfg, 3)

	stats, err := sim.Run(context.Background(), w, 100, 33)
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if len(w.Sprites) != cfg.Sprites.Count {
		t.Errorf("population = %d, expected %d", len(w.Sprites), cfg.Sprites.Count)
	}
	if stats.Purged == 0 || stats.Spawned <= cfg.Sprites.Count {
		t.Errorf("stats = %+v, expected sprites to expire and respawn", stats)
	}
}
