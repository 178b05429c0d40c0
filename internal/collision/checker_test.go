package collision

import (
	"errors"
	"testing"

	"github.com/vovakirdan/tsprite/internal/core"
	"github.com/vovakirdan/tsprite/internal/sprite"
)

func diamond() []core.Vec {
	return []core.Vec{core.V(50, 0), core.V(100, 50), core.V(50, 100), core.V(0, 50)}
}

func circleSprite(ids *sprite.IDGen) *sprite.Sprite {
	s := sprite.New(ids, 100, 100)
	s.SetChecker(NewSATCircle(s, 50))
	return s
}

func diamondSprite(ids *sprite.IDGen) *sprite.Sprite {
	s := sprite.New(ids, 100, 100)
	s.SetChecker(NewSATPoints(s, diamond()...))
	return s
}

func TestSATCheckerPairs(t *testing.T) {
	positions := []struct {
		name           string
		x1, y1, x2, y2 float64
	}{
		{"far apart", 0, 0, 150, 150},
		{"boxes overlap, shapes do not", 60, 60, 150, 150},
	}

	pairs := []struct {
		name   string
		a, b   func(*sprite.IDGen) *sprite.Sprite
		hitPos [4]float64
	}{
		{"circle to circle", circleSprite, circleSprite, [4]float64{100, 100, 150, 150}},
		{"circle to polygon", circleSprite, diamondSprite, [4]float64{100, 100, 150, 150}},
		{"polygon to circle", diamondSprite, circleSprite, [4]float64{100, 100, 150, 150}},
		{"polygon to polygon", diamondSprite, diamondSprite, [4]float64{100, 150, 150, 150}},
	}

	for _, pair := range pairs {
		t.Run(pair.name, func(t *testing.T) {
			ids := sprite.NewIDGen(0)
			s1, s2 := pair.a(ids), pair.b(ids)

			s1.MoveTo(pair.hitPos[0], pair.hitPos[1])
			s2.MoveTo(pair.hitPos[2], pair.hitPos[3])
			if !s1.Intersects(s2) || !s2.Intersects(s1) {
				t.Errorf("at %v: expected intersection both ways", pair.hitPos)
			}

			for _, p := range positions {
				s1.MoveTo(p.x1, p.y1)
				s2.MoveTo(p.x2, p.y2)
				if s1.Intersects(s2) {
					t.Errorf("%s: first.Intersects(second) = true, expected false", p.name)
				}
				if s2.Intersects(s1) {
					t.Errorf("%s: second.Intersects(first) = true, expected false", p.name)
				}
			}
		})
	}
}

func TestSATCollideWithoutComparableShape(t *testing.T) {
	ids := sprite.NewIDGen(0)
	a := circleSprite(ids)
	plain := sprite.New(ids, 100, 100)
	areas := sprite.New(ids, 100, 100)
	areas.SetChecker(NewMultiRect(areas).AddArea(0, 0, 100, 100))

	for _, other := range []*sprite.Sprite{plain, areas} {
		checker := a.Checker().(*SAT)
		hit, err := checker.Collide(other, nil)
		if !errors.Is(err, ErrNoComparableShape) {
			t.Errorf("Collide() error = %v, expected ErrNoComparableShape", err)
		}
		if hit {
			t.Error("Collide() reported a hit with no comparable shape")
		}
		if a.Intersects(other) {
			t.Error("Intersects() should default to false with no comparable shape")
		}
	}
}

func TestSATRefreshFollowsOwner(t *testing.T) {
	ids := sprite.NewIDGen(0)
	s := sprite.New(ids, 40, 20).MoveTo(10, 10)
	c := NewSATCircle(s, 5).WithOffset(2, -3)
	s.SetChecker(c)

	s.MoveTo(100, 50)
	c.Refresh()
	if got := c.Shape().Pos(); got != core.V(122, 57) {
		t.Errorf("circle Pos() = %v, expected (122, 57)", got)
	}

	p := sprite.New(ids, 10, 10).MoveTo(5, 5)
	pc := NewSATPoints(p, core.V(0, 0), core.V(10, 0), core.V(10, 10)).WithOffset(1, 1)
	if got := pc.Shape().Pos(); got != core.V(5, 5) {
		t.Errorf("polygon Pos() at construction = %v, expected (5, 5)", got)
	}
	p.MoveTo(20, 30)
	pc.Refresh()
	if got := pc.Shape().Pos(); got != core.V(21, 31) {
		t.Errorf("polygon Pos() = %v, expected (21, 31)", got)
	}
	if pc.Offset() != core.V(1, 1) {
		t.Errorf("Offset() = %v, expected (1, 1)", pc.Offset())
	}
}

func TestSATOffsetChangesOutcome(t *testing.T) {
	ids := sprite.NewIDGen(0)
	a := sprite.New(ids, 100, 100)
	a.SetChecker(NewSATCircle(a, 10))
	b := sprite.New(ids, 100, 100).MoveTo(50, 0)
	b.SetChecker(NewSATCircle(b, 10))

	if a.Intersects(b) {
		t.Fatal("small centred circles 50 apart should not intersect")
	}
	a.Checker().(*SAT).WithOffset(35, 0)
	if !a.Intersects(b) {
		t.Error("offset circle should reach the other circle")
	}
	if resp := a.Checker().(*SAT).LastResponse(); resp.Overlap != 5 {
		t.Errorf("LastResponse().Overlap = %v, expected 5", resp.Overlap)
	}
}

func TestMultiRectSingleArea(t *testing.T) {
	ids := sprite.NewIDGen(0)
	s1 := sprite.New(ids, 100, 100)
	s1.SetChecker(NewMultiRect(s1).AddArea(10, 0, 80, 100))
	s2 := sprite.New(ids, 100, 100)

	s1.MoveTo(100, 100)
	s2.MoveTo(150, 150)
	if !s1.Intersects(s2) || !s2.Intersects(s1) {
		t.Error("one-sided areas: expected intersection both ways")
	}

	s2.SetChecker(NewMultiRect(s2).AddArea(10, 0, 80, 100))
	if !s1.Intersects(s2) || !s2.Intersects(s1) {
		t.Error("both with areas: expected intersection both ways")
	}

	s2.MoveTo(200, 200)
	if s1.Intersects(s2) || s2.Intersects(s1) {
		t.Error("touching corners: expected no intersection")
	}

	s2.MoveTo(170, 170)
	if !s1.Intersects(s2) || !s2.Intersects(s1) {
		t.Error("moved back: expected intersection both ways")
	}
}

func TestMultiRectMultipleAreas(t *testing.T) {
	ids := sprite.NewIDGen(0)
	s1 := sprite.New(ids, 100, 100)
	s1.SetChecker(NewMultiRect(s1).AddArea(0, 0, 50, 50).AddArea(50, 50, 50, 50))
	s2 := sprite.New(ids, 100, 100)
	s2.SetChecker(NewMultiRect(s2,
		core.NewRect(0, 0, 50, 50),
		core.NewRect(50, 50, 50, 50),
	))

	tests := []struct {
		name           string
		x1, y1, x2, y2 float64
		expected       bool
	}{
		{"far apart", 0, 0, 550, 550, false},
		{"first area hits", 100, 100, 150, 150, true},
		{"second area hits", 100, 100, 149, 100, true},
		{"third area hits", 100, 100, 51, 100, true},
		{"boxes overlap, areas do not", 100, 100, 5, 100, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s1.MoveTo(tc.x1, tc.y1)
			s2.MoveTo(tc.x2, tc.y2)
			if got := s1.Intersects(s2); got != tc.expected {
				t.Errorf("first.Intersects(second) = %v, expected %v", got, tc.expected)
			}
			if got := s2.Intersects(s1); got != tc.expected {
				t.Errorf("second.Intersects(first) = %v, expected %v", got, tc.expected)
			}
		})
	}
}

func TestMultiRectAreaIsWorldSpace(t *testing.T) {
	s := sprite.New(sprite.NewIDGen(0), 100, 100).MoveTo(20, 30)
	m := NewMultiRect(s).AddArea(10, 5, 8, 4)

	if got := m.Area(0); got != core.NewRect(30, 35, 8, 4) {
		t.Errorf("Area(0) = %v, expected {30 35 8 4}", got)
	}
	s.MoveTo(0, 0)
	if got := m.Area(0); got != core.NewRect(10, 5, 8, 4) {
		t.Errorf("Area(0) after move = %v, expected {10 5 8 4}", got)
	}

	areas := m.Areas()
	areas[0].X = 999
	if m.Areas()[0].X != 10 {
		t.Error("Areas() should return a copy")
	}
	if m.Len() != 1 {
		t.Errorf("Len() = %d, expected 1", m.Len())
	}
}

func TestMultiRectWithoutAreas(t *testing.T) {
	ids := sprite.NewIDGen(0)
	empty := sprite.New(ids, 100, 100)
	empty.SetChecker(NewMultiRect(empty))
	plain := sprite.New(ids, 100, 100).MoveTo(50, 50)

	if empty.Intersects(plain) {
		t.Error("checker with no areas should not report a collision from its own side")
	}
	if !plain.Intersects(empty) {
		t.Error("plain sprite should still see the overlapping box")
	}
}
