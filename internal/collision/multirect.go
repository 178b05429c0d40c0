package collision

import (
	"slices"

	"github.com/vovakirdan/tsprite/internal/core"
	"github.com/vovakirdan/tsprite/internal/sprite"
)

// MultiRect is a sprite checker made of rectangular areas positioned
// relative to the owner's top-left corner.
type MultiRect struct {
	owner sprite.Body
	areas []core.Rect
}

// NewMultiRect creates a checker for owner with optional initial areas.
func NewMultiRect(owner sprite.Body, areas ...core.Rect) *MultiRect {
	return &MultiRect{owner: owner, areas: slices.Clone(areas)}
}

// AddArea appends an area and returns the checker for chaining.
func (m *MultiRect) AddArea(x, y, w, h float64) *MultiRect {
	m.areas = append(m.areas, core.NewRect(x, y, w, h))
	return m
}

// Len returns the number of areas.
func (m *MultiRect) Len() int {
	return len(m.areas)
}

// Area returns area i in world space, computed from the owner's current
// position. i must be in [0, Len()).
func (m *MultiRect) Area(i int) core.Rect {
	b := m.owner.Bounds()
	return m.areas[i].Translate(b.X, b.Y)
}

// Areas returns a copy of the areas relative to the owner.
func (m *MultiRect) Areas() []core.Rect {
	return slices.Clone(m.areas)
}

// Intersects implements sprite.Checker. Areas are tested against the
// other sprite's areas when it carries a MultiRect, otherwise against its
// bounds. If nothing hits and the other side has areas, the other checker
// is asked to test against this sprite as well.
func (m *MultiRect) Intersects(other *sprite.Sprite) bool {
	om, _ := other.Checker().(*MultiRect)
	if m.hits(other.Bounds(), om) {
		return true
	}
	if om != nil {
		return om.hits(m.owner.Bounds(), m)
	}
	return false
}

// hits tests every area against the other party: its areas when om is
// non-nil, its bounds otherwise.
func (m *MultiRect) hits(bounds core.Rect, om *MultiRect) bool {
	for i := range m.areas {
		area := m.Area(i)
		if om == nil {
			if area.Intersects(bounds) {
				return true
			}
			continue
		}
		for j := range om.areas {
			if area.Intersects(om.Area(j)) {
				return true
			}
		}
	}
	return false
}
