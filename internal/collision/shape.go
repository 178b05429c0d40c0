// Package collision provides the fine-grained collision checkers a sprite
// consults after its bounding box overlaps another: a composite of
// rectangular areas and a separating axis test over circles and convex
// polygons.
package collision

import (
	"github.com/vovakirdan/tsprite/internal/core"
)

// ShapeKind tags which variant a Shape holds.
type ShapeKind uint8

const (
	ShapeCircle ShapeKind = iota
	ShapePolygon
)

// String returns the kind name.
func (k ShapeKind) String() string {
	switch k {
	case ShapeCircle:
		return "circle"
	case ShapePolygon:
		return "polygon"
	default:
		return "unknown"
	}
}

// Circle is a circle centred on Pos.
type Circle struct {
	Pos core.Vec
	R   float64
}

// NewCircle creates a circle with the given centre and radius.
func NewCircle(pos core.Vec, r float64) *Circle {
	return &Circle{Pos: pos, R: r}
}

// Polygon is a convex polygon whose points are relative to Pos.
// Points should wind clockwise in screen space (y down). Edges and
// normals are computed once at construction; only Pos changes afterwards.
type Polygon struct {
	Pos core.Vec

	points  []core.Vec
	edges   []core.Vec
	normals []core.Vec
}

// NewPolygon creates a polygon anchored at pos.
func NewPolygon(pos core.Vec, points []core.Vec) *Polygon {
	p := &Polygon{
		Pos:     pos,
		points:  append([]core.Vec(nil), points...),
		edges:   make([]core.Vec, len(points)),
		normals: make([]core.Vec, len(points)),
	}
	for i, p1 := range p.points {
		p2 := p.points[(i+1)%len(p.points)]
		e := p2.Sub(p1)
		p.edges[i] = e
		p.normals[i] = e.Perp().Normalize()
	}
	return p
}

// NewBox creates a rectangular polygon with its top-left corner at pos.
func NewBox(pos core.Vec, w, h float64) *Polygon {
	return NewPolygon(pos, []core.Vec{
		core.V(0, 0), core.V(w, 0), core.V(w, h), core.V(0, h),
	})
}

// Points returns the points relative to Pos. The slice must not be modified.
func (p *Polygon) Points() []core.Vec { return p.points }

// Edges returns the edge vectors. The slice must not be modified.
func (p *Polygon) Edges() []core.Vec { return p.edges }

// Normals returns the unit edge normals. The slice must not be modified.
func (p *Polygon) Normals() []core.Vec { return p.normals }

// WorldPoints returns the points translated by Pos.
func (p *Polygon) WorldPoints() []core.Vec {
	out := make([]core.Vec, len(p.points))
	for i, pt := range p.points {
		out[i] = pt.Add(p.Pos)
	}
	return out
}

// Shape holds exactly one of a circle or a polygon, selected by Kind.
type Shape struct {
	Kind    ShapeKind
	Circle  *Circle
	Polygon *Polygon
}

// CircleShape wraps c in a Shape.
func CircleShape(c *Circle) Shape {
	return Shape{Kind: ShapeCircle, Circle: c}
}

// PolygonShape wraps p in a Shape.
func PolygonShape(p *Polygon) Shape {
	return Shape{Kind: ShapePolygon, Polygon: p}
}

// Pos returns the position of the held variant.
func (s Shape) Pos() core.Vec {
	switch s.Kind {
	case ShapeCircle:
		return s.Circle.Pos
	default:
		return s.Polygon.Pos
	}
}

// setPos moves the held variant.
func (s Shape) setPos(v core.Vec) {
	switch s.Kind {
	case ShapeCircle:
		s.Circle.Pos = v
	default:
		s.Polygon.Pos = v
	}
}
