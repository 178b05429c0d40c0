package tui

import (
	"math"

	"github.com/vovakirdan/tsprite/internal/collision"
	"github.com/vovakirdan/tsprite/internal/config"
	"github.com/vovakirdan/tsprite/internal/core"
	"github.com/vovakirdan/tsprite/internal/sim"
	"github.com/vovakirdan/tsprite/internal/sprite"
)

// Runes used when drawing a world.
const (
	spriteRune  = '█'
	outlineRune = '·'
	hitRune     = '×'
)

// circleSegments is the number of points plotted for a circle outline.
const circleSegments = 32

// Viewport maps world units onto screen cells.
type Viewport struct {
	CellW, CellH     float64 // World units per column and row
	OriginX, OriginY int     // Screen cell of the world origin
}

// NewViewport creates a viewport from the render settings, leaving one
// cell around the panel for its border.
func NewViewport(r config.RenderConfig) Viewport {
	v := Viewport{CellW: r.CellWidth, CellH: r.CellHeight, OriginX: 1, OriginY: 1}
	if v.CellW <= 0 {
		v.CellW = 1
	}
	if v.CellH <= 0 {
		v.CellH = 1
	}
	return v
}

// Cell returns the screen cell containing the world point p.
func (v Viewport) Cell(p core.Vec) (x, y int) {
	return v.OriginX + int(math.Floor(p.X/v.CellW)),
		v.OriginY + int(math.Floor(p.Y/v.CellH))
}

// Span returns the cells covered by r. Anything smaller than a cell still
// covers one.
func (v Viewport) Span(r core.Rect) (x, y, w, h int) {
	x, y = v.Cell(core.V(r.Left(), r.Top()))
	x2, y2 := v.Cell(core.V(r.Right(), r.Bottom()))
	return x, y, max(x2-x, 1), max(y2-y, 1)
}

// ScreenSize returns the cells needed to show panel p with its border.
func (v Viewport) ScreenSize(p *sprite.Panel) (w, h int) {
	x, y, pw, ph := v.Span(p.Rect)
	return x + pw + 1, y + ph + 1
}

// DrawWorld clears s and draws the panel border and every visible sprite
// of w in draw order. With debug set, checker shapes are outlined on top.
func DrawWorld(s *core.Screen, w *sim.World, v Viewport, debug bool) {
	s.Clear()

	x, y, pw, ph := v.Span(w.Panel.Rect)
	s.DrawBox(x-1, y-1, pw+2, ph+2, core.ColorGray)

	w.Drawables(func(sp *sprite.Sprite) {
		sx, sy, sw, sh := v.Span(sp.Rect)
		s.DrawRect(sx, sy, sw, sh, spriteRune, core.PaletteColor(sp.UID()))
	})

	if debug {
		w.Drawables(func(sp *sprite.Sprite) {
			drawChecker(s, v, sp)
		})
	}
}

// DrawCollisions marks the centre of every sprite in pairs.
func DrawCollisions(s *core.Screen, v Viewport, pairs []sim.Pair) {
	for _, p := range pairs {
		for _, sp := range []*sprite.Sprite{p.A, p.B} {
			cx, cy := v.Cell(sp.Center())
			s.SetColored(cx, cy, hitRune, core.ColorBrightRed)
		}
	}
}

// drawChecker outlines the collision geometry of sp.
func drawChecker(s *core.Screen, v Viewport, sp *sprite.Sprite) {
	switch c := sp.Checker().(type) {
	case *collision.SAT:
		c.Refresh()
		drawShape(s, v, c.Shape(), core.ColorBrightRed)
	case *collision.MultiRect:
		for i := range c.Len() {
			x, y, w, h := v.Span(c.Area(i))
			s.DrawBox(x, y, w, h, core.ColorYellow)
		}
	default:
		x, y, w, h := v.Span(sp.Rect)
		s.DrawBox(x, y, w, h, core.ColorWhite)
	}
}

func drawShape(s *core.Screen, v Viewport, shape collision.Shape, c core.Color) {
	switch shape.Kind {
	case collision.ShapeCircle:
		circle := shape.Circle
		for i := range circleSegments {
			a := 2 * math.Pi * float64(i) / circleSegments
			p := circle.Pos.Add(core.V(math.Cos(a), math.Sin(a)).Scale(circle.R))
			x, y := v.Cell(p)
			s.SetColored(x, y, outlineRune, c)
		}
	case collision.ShapePolygon:
		pts := shape.Polygon.WorldPoints()
		for i, p := range pts {
			q := pts[(i+1)%len(pts)]
			x0, y0 := v.Cell(p)
			x1, y1 := v.Cell(q)
			s.DrawLine(x0, y0, x1, y1, outlineRune, c)
		}
	}
}
