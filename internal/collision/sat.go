package collision

import (
	"math"

	"github.com/vovakirdan/tsprite/internal/core"
)

// Response describes how two shapes overlap. It is filled by the Test*
// functions when they report a collision.
type Response struct {
	A, B Shape

	Overlap  float64  // Magnitude of the shortest push that separates A from B
	OverlapN core.Vec // Unit direction of that push
	OverlapV core.Vec // OverlapN scaled by Overlap

	AInB bool // A lies entirely inside B
	BInA bool // B lies entirely inside A
}

// Clear resets the response before a test.
func (r *Response) Clear() *Response {
	*r = Response{AInB: true, BInA: true, Overlap: math.MaxFloat64}
	return r
}

// Voronoi regions of a point relative to an edge.
const (
	regionLeft   = -1
	regionMiddle = 0
	regionRight  = 1
)

func voronoiRegion(edge, point core.Vec) int {
	dp := point.Dot(edge)
	switch {
	case dp < 0:
		return regionLeft
	case dp > edge.Len2():
		return regionRight
	default:
		return regionMiddle
	}
}

// project returns the min and max of points projected onto axis.
func project(points []core.Vec, axis core.Vec) (lo, hi float64) {
	lo, hi = math.Inf(1), math.Inf(-1)
	for _, p := range points {
		d := p.Dot(axis)
		lo = math.Min(lo, d)
		hi = math.Max(hi, d)
	}
	return lo, hi
}

// separated reports whether axis separates the two point sets. When it
// does not and resp is non-nil, the overlap along axis is folded into resp.
func separated(aPos, bPos core.Vec, aPoints, bPoints []core.Vec, axis core.Vec, resp *Response) bool {
	aMin, aMax := project(aPoints, axis)
	bMin, bMax := project(bPoints, axis)

	offset := bPos.Sub(aPos).Dot(axis)
	bMin += offset
	bMax += offset

	if aMin > bMax || bMin > aMax {
		return true
	}
	if resp == nil {
		return false
	}

	var overlap float64
	if aMin < bMin {
		resp.AInB = false
		if aMax < bMax {
			overlap = aMax - bMin
			resp.BInA = false
		} else {
			overlap = shorterPush(aMax-bMin, bMax-aMin)
		}
	} else {
		resp.BInA = false
		if aMax > bMax {
			overlap = aMin - bMax
			resp.AInB = false
		} else {
			overlap = shorterPush(aMax-bMin, bMax-aMin)
		}
	}

	if abs := math.Abs(overlap); abs < resp.Overlap {
		resp.Overlap = abs
		resp.OverlapN = axis
		if overlap < 0 {
			resp.OverlapN = axis.Neg()
		}
	}
	return false
}

// shorterPush picks the smaller of pushing forward by fwd or back by back.
func shorterPush(fwd, back float64) float64 {
	if fwd < back {
		return fwd
	}
	return -back
}

// TestCircleCircle reports whether two circles overlap. Circles that
// touch count as overlapping.
func TestCircleCircle(a, b *Circle, resp *Response) bool {
	diff := b.Pos.Sub(a.Pos)
	total := a.R + b.R
	distSq := diff.Len2()
	if distSq > total*total {
		return false
	}

	if resp != nil {
		resp.Clear()
		dist := math.Sqrt(distSq)
		resp.A, resp.B = CircleShape(a), CircleShape(b)
		resp.Overlap = total - dist
		resp.OverlapN = diff.Normalize()
		resp.OverlapV = resp.OverlapN.Scale(resp.Overlap)
		resp.AInB = a.R <= b.R && dist <= b.R-a.R
		resp.BInA = b.R <= a.R && dist <= a.R-b.R
	}
	return true
}

// TestPolygonCircle reports whether a polygon and a circle overlap.
// An empty polygon overlaps nothing.
func TestPolygonCircle(p *Polygon, c *Circle, resp *Response) bool {
	n := len(p.points)
	if n == 0 {
		return false
	}
	if resp != nil {
		resp.Clear()
	}

	center := c.Pos.Sub(p.Pos)
	r := c.R
	r2 := r * r

	for i := range n {
		next := (i + 1) % n
		prev := (i + n - 1) % n

		var overlap float64
		var normal core.Vec
		found := false

		edge := p.edges[i]
		point := center.Sub(p.points[i])
		if resp != nil && point.Len2() > r2 {
			resp.AInB = false
		}

		switch voronoiRegion(edge, point) {
		case regionLeft:
			// Between this edge and the previous one: test the shared vertex.
			other := center.Sub(p.points[prev])
			if voronoiRegion(p.edges[prev], other) == regionRight {
				dist := point.Len()
				if dist > r {
					return false
				}
				if resp != nil {
					resp.BInA = false
					normal, overlap, found = point.Normalize(), r-dist, true
				}
			}
		case regionRight:
			// Between this edge and the next one: test the next vertex.
			point = center.Sub(p.points[next])
			if voronoiRegion(p.edges[next], point) == regionLeft {
				dist := point.Len()
				if dist > r {
					return false
				}
				if resp != nil {
					resp.BInA = false
					normal, overlap, found = point.Normalize(), r-dist, true
				}
			}
		default:
			norm := p.normals[i]
			dist := point.Dot(norm)
			if dist > 0 && math.Abs(dist) > r {
				return false
			}
			if resp != nil {
				normal, overlap, found = norm, r-dist, true
				if dist >= 0 || overlap < 2*r {
					resp.BInA = false
				}
			}
		}

		if found && math.Abs(overlap) < math.Abs(resp.Overlap) {
			resp.Overlap = overlap
			resp.OverlapN = normal
		}
	}

	if resp != nil {
		resp.A, resp.B = PolygonShape(p), CircleShape(c)
		resp.OverlapV = resp.OverlapN.Scale(resp.Overlap)
	}
	return true
}

// TestCirclePolygon is TestPolygonCircle with the roles of A and B
// swapped in the response.
func TestCirclePolygon(c *Circle, p *Polygon, resp *Response) bool {
	hit := TestPolygonCircle(p, c, resp)
	if hit && resp != nil {
		resp.A, resp.B = resp.B, resp.A
		resp.OverlapN = resp.OverlapN.Neg()
		resp.OverlapV = resp.OverlapV.Neg()
		resp.AInB, resp.BInA = resp.BInA, resp.AInB
	}
	return hit
}

// TestPolygonPolygon reports whether two convex polygons overlap by
// looking for a separating axis among both polygons' edge normals.
// An empty polygon overlaps nothing.
func TestPolygonPolygon(a, b *Polygon, resp *Response) bool {
	if len(a.points) == 0 || len(b.points) == 0 {
		return false
	}
	if resp != nil {
		resp.Clear()
	}
	for _, axis := range a.normals {
		if separated(a.Pos, b.Pos, a.points, b.points, axis, resp) {
			return false
		}
	}
	for _, axis := range b.normals {
		if separated(a.Pos, b.Pos, a.points, b.points, axis, resp) {
			return false
		}
	}
	if resp != nil {
		resp.A, resp.B = PolygonShape(a), PolygonShape(b)
		resp.OverlapV = resp.OverlapN.Scale(resp.Overlap)
	}
	return true
}

// PointInCircle reports whether p lies inside or on c.
func PointInCircle(p core.Vec, c *Circle) bool {
	return p.Sub(c.Pos).Len2() <= c.R*c.R
}

// pointEpsilon is the side of the box used to stand in for a point.
const pointEpsilon = 0.000001

// PointInPolygon reports whether p lies inside poly.
func PointInPolygon(p core.Vec, poly *Polygon) bool {
	var resp Response
	probe := NewBox(p, pointEpsilon, pointEpsilon)
	if !TestPolygonPolygon(probe, poly, &resp) {
		return false
	}
	return resp.AInB
}
