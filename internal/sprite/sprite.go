// Package sprite implements moving rectangular entities, the pluggable
// collision-checker contract they consult, the bounding panel that keeps
// them on screen, and a continuously ordered sprite list.
package sprite

import (
	"strconv"

	"github.com/vovakirdan/tsprite/internal/core"
)

// Body is a read-only handle to a sprite's position. Collision checkers
// keep a Body for their owner instead of the owning struct so the
// ownership direction stays one-way: the sprite owns its checker.
type Body interface {
	Bounds() core.Rect
	UID() uint64
}

// Checker refines a collision decision after the bounding boxes of two
// sprites are known to overlap.
type Checker interface {
	Intersects(other *Sprite) bool
}

// AlwaysChecker accepts every bounding-box overlap as a collision.
type AlwaysChecker struct{}

// Intersects always returns true.
func (AlwaysChecker) Intersects(*Sprite) bool { return true }

// Sprite is a rectangle that moves with a constant velocity.
// Velocity is stored in units per millisecond so that Update can take the
// frame delta in milliseconds directly.
type Sprite struct {
	core.Rect

	VX, VY float64 // Velocity in units per millisecond

	Visible bool // Whether renderers should draw the sprite
	Active  bool // Whether Update moves the sprite

	Name     string // User-facing id, defaults to the decimal uid
	ZIndex   int    // Draw layer hint for renderers
	UserData any    // Arbitrary caller data

	uid     uint64
	checker Checker
}

// New creates an active, visible sprite of the given size at the origin.
// The uid is taken from ids and never changes afterwards.
func New(ids *IDGen, w, h float64) *Sprite {
	uid := ids.Next()
	return &Sprite{
		Rect:    core.Rect{W: w, H: h},
		Visible: true,
		Active:  true,
		Name:    strconv.FormatUint(uid, 10),
		uid:     uid,
	}
}

// UID returns the unique id assigned at creation.
func (s *Sprite) UID() uint64 {
	return s.uid
}

// MoveTo repositions the sprite and returns it for chaining.
func (s *Sprite) MoveTo(x, y float64) *Sprite {
	s.Rect.MoveTo(x, y)
	return s
}

// SetVelocity sets the velocity in units per second.
func (s *Sprite) SetVelocity(ppsX, ppsY float64) *Sprite {
	s.VX = ppsX / 1000
	s.VY = ppsY / 1000
	return s
}

// Velocity returns the velocity in units per second.
func (s *Sprite) Velocity() (ppsX, ppsY float64) {
	return s.VX * 1000, s.VY * 1000
}

// Update advances the position by dt milliseconds if the sprite is active.
func (s *Sprite) Update(dt float64) *Sprite {
	if !s.Active {
		return s
	}
	if s.VX != 0 {
		s.X += s.VX * dt
	}
	if s.VY != 0 {
		s.Y += s.VY * dt
	}
	return s
}

// Disable hides the sprite and stops it from updating.
func (s *Sprite) Disable() *Sprite {
	s.Visible, s.Active = false, false
	return s
}

// Enable shows the sprite and lets it update again.
func (s *Sprite) Enable() *Sprite {
	s.Visible, s.Active = true, true
	return s
}

// Scale multiplies the sprite size. A zero sy scales both axes by sx.
func (s *Sprite) Scale(sx, sy float64) *Sprite {
	if sy == 0 {
		sy = sx
	}
	s.W *= sx
	s.H *= sy
	return s
}

// SetChecker attaches a collision checker, replacing any previous one.
// Passing nil detaches the checker.
func (s *Sprite) SetChecker(c Checker) *Sprite {
	s.checker = c
	return s
}

// Checker returns the attached collision checker, or nil.
func (s *Sprite) Checker() Checker {
	return s.checker
}

// Intersects reports whether this sprite collides with other.
// The bounding boxes are compared first; the attached checker is only
// consulted when they overlap. Without a checker the box overlap decides.
func (s *Sprite) Intersects(other *Sprite) bool {
	if !s.Rect.Intersects(other.Rect) {
		return false
	}
	if s.checker == nil {
		return true
	}
	return s.checker.Intersects(other)
}
