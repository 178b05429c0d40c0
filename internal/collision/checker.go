package collision

import (
	"errors"

	"github.com/vovakirdan/tsprite/internal/core"
	"github.com/vovakirdan/tsprite/internal/sprite"
)

// ErrNoComparableShape is returned by SAT.Collide when the other sprite
// carries no SAT checker, so no shape exists to test against.
var ErrNoComparableShape = errors.New("collision: other sprite has no SAT shape")

// SAT is a sprite checker backed by one circle or convex polygon.
// The shape follows its owner: before every test a circle is centred on
// the owner's centre and a polygon is anchored at the owner's top-left,
// both shifted by the checker offset.
type SAT struct {
	owner  sprite.Body
	shape  Shape
	offset core.Vec
	last   Response
}

// NewSAT creates a checker for owner using a prebuilt shape.
func NewSAT(owner sprite.Body, shape Shape) *SAT {
	return &SAT{owner: owner, shape: shape}
}

// NewSATCircle creates a checker with a circle of radius r centred on owner.
func NewSATCircle(owner sprite.Body, r float64) *SAT {
	c := NewCircle(owner.Bounds().Center(), r)
	return NewSAT(owner, CircleShape(c))
}

// NewSATPoints creates a checker with a polygon built from points relative
// to the owner's top-left corner.
func NewSATPoints(owner sprite.Body, points ...core.Vec) *SAT {
	b := owner.Bounds()
	p := NewPolygon(core.V(b.X, b.Y), points)
	return NewSAT(owner, PolygonShape(p))
}

// WithOffset shifts the shape relative to its owner.
func (c *SAT) WithOffset(dx, dy float64) *SAT {
	c.offset = core.V(dx, dy)
	return c
}

// Shape returns the checker's shape, positioned as of the last refresh.
func (c *SAT) Shape() Shape {
	return c.shape
}

// Offset returns the shift applied on top of the owner position.
func (c *SAT) Offset() core.Vec {
	return c.offset
}

// LastResponse returns the response filled by the most recent Intersects.
func (c *SAT) LastResponse() Response {
	return c.last
}

// Refresh moves the shape to follow the owner's current position.
func (c *SAT) Refresh() {
	b := c.owner.Bounds()
	switch c.shape.Kind {
	case ShapeCircle:
		c.shape.setPos(b.Center().Add(c.offset))
	case ShapePolygon:
		c.shape.setPos(core.V(b.X, b.Y).Add(c.offset))
	}
}

// Collide tests this checker's shape against the other sprite's. It
// returns ErrNoComparableShape when the other sprite has no SAT checker.
// resp may be nil.
func (c *SAT) Collide(other *sprite.Sprite, resp *Response) (bool, error) {
	o, ok := other.Checker().(*SAT)
	if !ok {
		return false, ErrNoComparableShape
	}
	c.Refresh()
	o.Refresh()

	a, b := c.shape, o.shape
	switch {
	case a.Kind == ShapeCircle && b.Kind == ShapeCircle:
		return TestCircleCircle(a.Circle, b.Circle, resp), nil
	case a.Kind == ShapeCircle && b.Kind == ShapePolygon:
		return TestCirclePolygon(a.Circle, b.Polygon, resp), nil
	case a.Kind == ShapePolygon && b.Kind == ShapeCircle:
		return TestPolygonCircle(a.Polygon, b.Circle, resp), nil
	default:
		return TestPolygonPolygon(a.Polygon, b.Polygon, resp), nil
	}
}

// Intersects implements sprite.Checker. A sprite without a SAT checker
// cannot be compared and never intersects.
func (c *SAT) Intersects(other *sprite.Sprite) bool {
	hit, err := c.Collide(other, &c.last)
	if err != nil {
		return false
	}
	return hit
}
