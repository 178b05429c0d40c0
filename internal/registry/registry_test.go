package registry

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/vovakirdan/tsprite/internal/config"
	"github.com/vovakirdan/tsprite/internal/sim"
)

type fakeScenario struct{}

func (fakeScenario) ID() string    { return "zz-fake" }
func (fakeScenario) Title() string { return "Fake" }

func (fakeScenario) Build(cfg config.ScenarioConfig, rng *rand.Rand, opts ...sim.Option) *sim.World {
	w := sim.NewWorld(cfg.World.Width, cfg.World.Height, opts...)
	w.Spawn(cfg.Sprites.Width, cfg.Sprites.Height).MoveTo(float64(rng.Intn(10)), 0)
	return w
}

func init() {
	Register("zz-fake", func() Scenario { return fakeScenario{} })
}

func TestRegistryLookup(t *testing.T) {
	if !Exists("zz-fake") {
		t.Fatal("Exists() = false for a registered scenario")
	}
	if Exists("missing") {
		t.Error("Exists() = true for an unregistered scenario")
	}

	found := false
	for _, info := range List() {
		if info.ID == "zz-fake" && info.Title == "Fake" {
			found = true
		}
	}
	if !found {
		t.Error("List() does not include the registered scenario")
	}

	if _, err := Create("missing"); !errors.Is(err, ErrUnknownScenario) {
		t.Errorf("Create() error = %v, expected ErrUnknownScenario", err)
	}
}

func TestBuildIsDeterministic(t *testing.T) {
	cfg := config.DefaultConfig()
	a, err := Build("zz-fake", cfg, 42)
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	b, _ := Build("zz-fake", cfg, 42)
	if a.Sprites[0].X != b.Sprites[0].X {
		t.Errorf("same seed gave x = %v and %v", a.Sprites[0].X, b.Sprites[0].X)
	}
	if a == b {
		t.Error("Build() should return independent worlds")
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("duplicate Register() did not panic")
		}
	}()
	Register("zz-fake", func() Scenario { return fakeScenario{} })
}
