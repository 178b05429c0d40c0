// Package sim drives sprites through fixed simulation ticks: movement,
// wall bounces against a bounding panel, pairwise collisions with an
// axis-flip bounce, and a draw order kept sorted between ticks.
//
// A World is confined to one goroutine. Independent worlds may run in
// parallel through RunBatch.
package sim

import (
	"io"
	"math"
	"slices"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tsprite/internal/config"
	"github.com/vovakirdan/tsprite/internal/sprite"
)

// Pair is two sprites found colliding during a tick.
type Pair struct {
	A, B *sprite.Sprite
}

// StepResult describes what happened during one tick.
type StepResult struct {
	Tick       int    // Tick number after the step, starting at 1
	Collisions []Pair // Colliding pairs, in sprite order
	WallHits   int    // Sprites clamped back into the panel
	Purged     int    // Inactive sprites removed
	Active     int    // Sprites alive after the step
}

// Stats accumulates StepResults over the life of a world.
type Stats struct {
	Ticks      int
	Collisions int
	WallHits   int
	Purged     int
	Spawned    int
	PeakActive int
}

// SpawnFunc creates one sprite for w. It is called with the world so the
// sprite can take its uid from w.IDs and be placed inside w.Panel.
type SpawnFunc func(w *World) *sprite.Sprite

// Option configures a World.
type Option func(*World)

// WithLogger sets the logger used for lifecycle and debug output.
func WithLogger(l *log.Logger) Option {
	return func(w *World) { w.logger = l }
}

// WithDebug enables per-collision debug logging.
func WithDebug(debug bool) Option {
	return func(w *World) { w.debug = debug }
}

// WithIDGen makes the world assign uids from ids instead of its own counter.
func WithIDGen(ids *sprite.IDGen) Option {
	return func(w *World) { w.IDs = ids }
}

// WithDrawOrder keeps sprites in an ordered list ranked by cmp.
func WithDrawOrder(cmp sprite.CompareFunc) Option {
	return func(w *World) { w.DrawOrder = sprite.NewOrderedList(cmp) }
}

// WithRamp scales every tick's delta by the ramp at the current tick.
func WithRamp(r *config.Ramp) Option {
	return func(w *World) { w.ramp = r }
}

// WithSpawner sets the function used by SpawnOne and population refills.
func WithSpawner(fn SpawnFunc) Option {
	return func(w *World) { w.spawner = fn }
}

// WithLifetime disables sprites once they have lived for ms milliseconds.
// Zero keeps sprites forever.
func WithLifetime(ms float64) Option {
	return func(w *World) { w.lifetime = ms }
}

// WithPopulation refills the world with the spawner after purges until it
// holds at least n sprites.
func WithPopulation(n int) Option {
	return func(w *World) { w.population = n }
}

// World owns a bounding panel and the sprites moving inside it.
type World struct {
	Panel     *sprite.Panel
	Sprites   []*sprite.Sprite
	DrawOrder *sprite.OrderedList // nil when draw order does not matter
	IDs       *sprite.IDGen

	logger     *log.Logger
	debug      bool
	ramp       *config.Ramp
	spawner    SpawnFunc
	lifetime   float64
	population int
	ages       map[uint64]float64

	tick  int
	stats Stats
}

// NewWorld creates an empty world bounded by a width×height panel at the origin.
func NewWorld(width, height float64, opts ...Option) *World {
	w := &World{
		Panel:  sprite.NewPanel(width, height),
		IDs:    sprite.NewIDGen(0),
		logger: log.New(io.Discard),
		ages:   make(map[uint64]float64),
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// Logger returns the world's logger.
func (w *World) Logger() *log.Logger {
	return w.logger
}

// Debug reports whether debug output is enabled.
func (w *World) Debug() bool {
	return w.debug
}

// SetDebug toggles debug output.
func (w *World) SetDebug(debug bool) {
	w.debug = debug
}

// Tick returns the number of completed steps.
func (w *World) Tick() int {
	return w.tick
}

// Stats returns the totals accumulated so far.
func (w *World) Stats() Stats {
	return w.stats
}

// Spawn creates a sprite with the next uid and adds it to the world.
func (w *World) Spawn(width, height float64) *sprite.Sprite {
	s := sprite.New(w.IDs, width, height)
	w.Add(s)
	return s
}

// SpawnOne creates a sprite with the configured spawner. Returns nil when
// the world has no spawner.
func (w *World) SpawnOne() *sprite.Sprite {
	if w.spawner == nil {
		return nil
	}
	s := w.spawner(w)
	if s != nil && !slices.Contains(w.Sprites, s) {
		w.Add(s)
	}
	return s
}

// Add inserts an existing sprite.
func (w *World) Add(s *sprite.Sprite) {
	w.Sprites = append(w.Sprites, s)
	if w.DrawOrder != nil {
		w.DrawOrder.Add(s)
	}
	w.stats.Spawned++
	w.stats.PeakActive = max(w.stats.PeakActive, len(w.Sprites))
}

// Remove deletes s from the world. Returns false if s was not present.
func (w *World) Remove(s *sprite.Sprite) bool {
	i := slices.Index(w.Sprites, s)
	if i < 0 {
		return false
	}
	w.Sprites = slices.Delete(w.Sprites, i, i+1)
	if w.DrawOrder != nil {
		w.DrawOrder.Remove(s)
	}
	delete(w.ages, s.UID())
	return true
}

// Drawables calls fn for every visible sprite, in draw order when one is
// kept and insertion order otherwise.
func (w *World) Drawables(fn func(*sprite.Sprite)) {
	if w.DrawOrder != nil {
		for _, s := range w.DrawOrder.All() {
			if s.Visible {
				fn(s)
			}
		}
		return
	}
	for _, s := range w.Sprites {
		if s.Visible {
			fn(s)
		}
	}
}

// Step advances the world by dt milliseconds.
//
// Each active sprite moves, is clamped into the panel and has its velocity
// flipped on the axes it hit. Every pair is then tested once; colliding
// sprites bounce and take an extra move so they do not stick together.
// Finally expired sprites are disabled and purged, the population is
// refilled and the draw order re-sorted.
func (w *World) Step(dt float64) StepResult {
	if w.ramp != nil {
		dt *= w.ramp.Scale(w.tick)
	}
	w.tick++
	res := StepResult{Tick: w.tick}

	for _, s := range w.Sprites {
		s.Update(dt)
		if !s.Active {
			continue
		}
		borders := w.Panel.RestrictBounds(s)
		if borders.LeftOrRight() {
			s.VX = -s.VX
		}
		if borders.TopOrBottom() {
			s.VY = -s.VY
		}
		if borders != 0 {
			res.WallHits++
		}
	}

	for i, a := range w.Sprites {
		if !a.Active {
			continue
		}
		for _, b := range w.Sprites[i+1:] {
			if !b.Active || !a.Intersects(b) {
				continue
			}
			res.Collisions = append(res.Collisions, Pair{A: a, B: b})
			bounce(a, b)
			bounce(b, a)
			a.Update(dt)
			b.Update(dt)
			if w.debug {
				w.logger.Debug("collision", "tick", w.tick, "a", a.Name, "b", b.Name,
					"a_bounds", a.Rect, "b_bounds", b.Rect)
			}
		}
	}

	w.expire(dt)
	res.Purged = w.purge()
	w.refill()
	w.resort()

	res.Active = len(w.Sprites)
	w.record(res)
	return res
}

// bounce flips the velocity of s on the axis where it is further from
// other, comparing top-left corners.
func bounce(s, other *sprite.Sprite) {
	dx := math.Abs(s.Left() - other.Left())
	dy := math.Abs(s.Top() - other.Top())
	if dx >= dy {
		s.VX = -s.VX
	} else {
		s.VY = -s.VY
	}
}

func (w *World) expire(dt float64) {
	if w.lifetime <= 0 {
		return
	}
	for _, s := range w.Sprites {
		age := w.ages[s.UID()] + dt
		w.ages[s.UID()] = age
		if age >= w.lifetime && s.Active {
			s.Disable()
			if w.debug {
				w.logger.Debug("sprite expired", "tick", w.tick, "sprite", s.Name)
			}
		}
	}
}

func (w *World) purge() int {
	kept := w.Sprites[:0]
	for _, s := range w.Sprites {
		if s.Active {
			kept = append(kept, s)
			continue
		}
		delete(w.ages, s.UID())
	}
	n := len(w.Sprites) - len(kept)
	clear(w.Sprites[len(kept):])
	w.Sprites = kept

	if w.DrawOrder != nil {
		w.DrawOrder.PurgeInactive()
	}
	return n
}

func (w *World) refill() {
	if w.spawner == nil {
		return
	}
	for len(w.Sprites) < w.population {
		if w.SpawnOne() == nil {
			return
		}
	}
}

// resort re-inserts every sprite when movement broke the draw order.
func (w *World) resort() {
	if w.DrawOrder == nil || w.DrawOrder.IsSorted() {
		return
	}
	for _, s := range w.Sprites {
		w.DrawOrder.Remove(s)
	}
	w.DrawOrder.AddAll(w.Sprites...)
}

func (w *World) record(res StepResult) {
	w.stats.Ticks = res.Tick
	w.stats.Collisions += len(res.Collisions)
	w.stats.WallHits += res.WallHits
	w.stats.Purged += res.Purged
	w.stats.PeakActive = max(w.stats.PeakActive, res.Active)
}
