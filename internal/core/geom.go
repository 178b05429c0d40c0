// Package core provides fundamental geometry types shared by sprites,
// collision checkers and the simulation driver. It has no external
// dependencies so collision logic stays pure and testable.
package core

import "math"

// Rect represents an axis-aligned bounding box in world units.
// Width and height are not validated; the overlap predicates below
// define the behavior for zero or negative sizes.
type Rect struct {
	X, Y float64 // Top-left corner position
	W, H float64 // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h float64) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Top returns the y-coordinate of the top edge.
func (r Rect) Top() float64 {
	return r.Y
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() float64 {
	return r.Y + r.H
}

// Left returns the x-coordinate of the left edge.
func (r Rect) Left() float64 {
	return r.X
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() float64 {
	return r.X + r.W
}

// Center returns the center point of the rectangle.
func (r Rect) Center() Vec {
	return Vec{X: r.X + r.W/2, Y: r.Y + r.H/2}
}

// Bounds returns the rectangle itself. It lets anything embedding a Rect
// satisfy interfaces that only need read access to the box.
func (r Rect) Bounds() Rect {
	return r
}

// MoveTo repositions the rectangle's top-left corner.
func (r *Rect) MoveTo(x, y float64) *Rect {
	r.X = x
	r.Y = y
	return r
}

// Translate returns a copy of the rectangle shifted by (dx, dy).
func (r Rect) Translate(dx, dy float64) Rect {
	return Rect{X: r.X + dx, Y: r.Y + dy, W: r.W, H: r.H}
}

// Intersects returns true if this rectangle overlaps with another.
// Touching edges do not count as an overlap.
func (r Rect) Intersects(other Rect) bool {
	return r.Left() < other.Right() &&
		r.Right() > other.Left() &&
		r.Top() < other.Bottom() &&
		r.Bottom() > other.Top()
}

// Contains returns true if the point (x, y) is strictly inside this rectangle.
func (r Rect) Contains(x, y float64) bool {
	return r.Left() < x && r.Right() > x && r.Top() < y && r.Bottom() > y
}

// IntersectsBorders reports which of this rectangle's edges the other
// rectangle crosses. Each edge is tested independently, so a rectangle
// straddling a corner sets two flags. A rectangle fully inside this one
// intersects without crossing any edge and yields BorderNone.
func (r Rect) IntersectsBorders(other Rect) BorderFlags {
	borders := BorderNone
	if !r.Intersects(other) {
		return borders
	}
	if other.Left() < r.Right() && other.Right() > r.Right() {
		borders |= BorderRight
	}
	if other.Left() < r.Left() && other.Right() > r.Left() {
		borders |= BorderLeft
	}
	if other.Top() < r.Bottom() && other.Bottom() > r.Bottom() {
		borders |= BorderBottom
	}
	if other.Top() < r.Top() && other.Bottom() > r.Top() {
		borders |= BorderTop
	}
	return borders
}

// Vec is a 2-D vector used for shape points, centers and SAT axes.
type Vec struct {
	X, Y float64
}

// V is shorthand for constructing a Vec.
func V(x, y float64) Vec {
	return Vec{X: x, Y: y}
}

// Add returns v + o.
func (v Vec) Add(o Vec) Vec {
	return Vec{X: v.X + o.X, Y: v.Y + o.Y}
}

// Sub returns v - o.
func (v Vec) Sub(o Vec) Vec {
	return Vec{X: v.X - o.X, Y: v.Y - o.Y}
}

// Scale returns v multiplied by s.
func (v Vec) Scale(s float64) Vec {
	return Vec{X: v.X * s, Y: v.Y * s}
}

// Neg returns the reversed vector.
func (v Vec) Neg() Vec {
	return Vec{X: -v.X, Y: -v.Y}
}

// Dot returns the dot product of v and o.
func (v Vec) Dot(o Vec) float64 {
	return v.X*o.X + v.Y*o.Y
}

// Perp returns the vector rotated 90 degrees clockwise in screen space.
func (v Vec) Perp() Vec {
	return Vec{X: v.Y, Y: -v.X}
}

// Len2 returns the squared length.
func (v Vec) Len2() float64 {
	return v.Dot(v)
}

// Len returns the length.
func (v Vec) Len() float64 {
	return math.Sqrt(v.Len2())
}

// Normalize returns the unit vector in the same direction.
// The zero vector is returned unchanged.
func (v Vec) Normalize() Vec {
	l := v.Len()
	if l == 0 {
		return v
	}
	return Vec{X: v.X / l, Y: v.Y / l}
}

// Clamp restricts a value to be within [min, max].
func Clamp(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// ClampF restricts a float64 value to be within [min, max].
func ClampF(val, min, max float64) float64 {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// Abs returns the absolute value of an integer.
func Abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// Min returns the smaller of two integers.
func Min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// Max returns the larger of two integers.
func Max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
