// Package registry provides a global registry for simulation scenarios.
// Scenarios register themselves in init() functions, allowing the CLI and
// the viewer to discover and build worlds without hardcoded dependencies.
package registry

import (
	"errors"
	"fmt"
	"math/rand"
	"sort"
	"sync"

	"github.com/vovakirdan/tsprite/internal/config"
	"github.com/vovakirdan/tsprite/internal/sim"
)

// ErrUnknownScenario is returned by Create and Build for unregistered ids.
var ErrUnknownScenario = errors.New("registry: unknown scenario")

// Scenario populates worlds. Scenarios hold no per-run state: every Build
// returns an independent world.
type Scenario interface {
	// ID returns a unique identifier (e.g., "bounce", "shapes").
	// Used for CLI commands, config file names and run storage.
	ID() string

	// Title returns a human-readable name for display.
	Title() string

	// Build creates a world from cfg. rng drives every random choice so a
	// fixed seed reproduces the same run. opts are applied after the
	// options derived from cfg.
	Build(cfg config.ScenarioConfig, rng *rand.Rand, opts ...sim.Option) *sim.World
}

// ScenarioInfo contains metadata about a registered scenario.
type ScenarioInfo struct {
	ID    string
	Title string
}

// Factory is a function that creates a new instance of a scenario.
type Factory func() Scenario

var (
	factories = make(map[string]Factory)
	titles    = make(map[string]string)
	mu        sync.RWMutex
)

// Register adds a scenario factory to the registry.
// Typically called from an init() function.
// Panics if a scenario with the same ID is already registered.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[id]; exists {
		panic(fmt.Sprintf("registry: scenario %q already registered", id))
	}

	factories[id] = f

	// Get title by creating a temporary instance
	titles[id] = f().Title()
}

// List returns information about all registered scenarios, sorted by ID.
func List() []ScenarioInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]ScenarioInfo, 0, len(factories))
	for id := range factories {
		result = append(result, ScenarioInfo{
			ID:    id,
			Title: titles[id],
		})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result
}

// Create instantiates a scenario by its ID.
func Create(id string) (Scenario, error) {
	mu.RLock()
	defer mu.RUnlock()

	f, ok := factories[id]
	if !ok {
		return nil, fmt.Errorf("%w %q", ErrUnknownScenario, id)
	}

	return f(), nil
}

// Build creates the scenario id and builds a world seeded with seed.
func Build(id string, cfg config.ScenarioConfig, seed int64, opts ...sim.Option) (*sim.World, error) {
	s, err := Create(id)
	if err != nil {
		return nil, err
	}
	rng := rand.New(rand.NewSource(seed))
	return s.Build(cfg, rng, opts...), nil
}

// Exists checks if a scenario with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[id]
	return ok
}
