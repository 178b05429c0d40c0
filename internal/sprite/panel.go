package sprite

import "github.com/vovakirdan/tsprite/internal/core"

// Panel is a rectangle that sprites are kept inside of.
type Panel struct {
	core.Rect
}

// NewPanel creates a panel of the given size at the origin.
func NewPanel(w, h float64) *Panel {
	return &Panel{Rect: core.Rect{W: w, H: h}}
}

// MoveTo repositions the panel and returns it for chaining.
func (p *Panel) MoveTo(x, y float64) *Panel {
	p.Rect.MoveTo(x, y)
	return p
}

// CheckBounds reports which panel edges the sprite lies outside of,
// without moving it. Touching an edge is not a crossing.
func (p *Panel) CheckBounds(s *Sprite) core.BorderFlags {
	return p.check(s.Rect)
}

func (p *Panel) check(r core.Rect) core.BorderFlags {
	borders := core.BorderNone
	if r.Left() < p.Left() {
		borders |= core.BorderLeft
	}
	if r.Right() > p.Right() {
		borders |= core.BorderRight
	}
	if r.Top() < p.Top() {
		borders |= core.BorderTop
	}
	if r.Bottom() > p.Bottom() {
		borders |= core.BorderBottom
	}
	return borders
}

// RestrictBounds clamps the sprite back inside the panel and returns the
// edges it had crossed before clamping. When the sprite is wider (or
// taller) than the panel the left (or top) edge wins.
func (p *Panel) RestrictBounds(s *Sprite) core.BorderFlags {
	borders := p.check(s.Rect)
	switch {
	case borders.Left():
		s.X = p.Left()
	case borders.Right():
		s.X = p.Right() - s.W
	}
	switch {
	case borders.Top():
		s.Y = p.Top()
	case borders.Bottom():
		s.Y = p.Bottom() - s.H
	}
	return borders
}
