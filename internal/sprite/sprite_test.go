package sprite

import (
	"testing"

	"github.com/vovakirdan/tsprite/internal/core"
)

// stubChecker records calls and returns a fixed answer.
type stubChecker struct {
	result bool
	calls  int
}

func (c *stubChecker) Intersects(*Sprite) bool {
	c.calls++
	return c.result
}

func TestNewAssignsUniqueIDs(t *testing.T) {
	ids := NewIDGen(0)
	a := New(ids, 10, 10)
	b := New(ids, 10, 10)

	if a.UID() != 0 || b.UID() != 1 {
		t.Errorf("UIDs = (%d, %d), expected (0, 1)", a.UID(), b.UID())
	}
	if a.Name != "0" || b.Name != "1" {
		t.Errorf("Names = (%q, %q), expected (\"0\", \"1\")", a.Name, b.Name)
	}
	if !a.Active || !a.Visible {
		t.Error("new sprite should be active and visible")
	}

	ids.Reset(40)
	if c := New(ids, 1, 1); c.UID() != 40 {
		t.Errorf("UID after Reset(40) = %d, expected 40", c.UID())
	}
	if ids.Peek() != 41 {
		t.Errorf("Peek() = %d, expected 41", ids.Peek())
	}
}

func TestSpriteIntersects(t *testing.T) {
	ids := NewIDGen(0)
	s1 := New(ids, 100, 100)
	s2 := New(ids, 100, 100)

	tests := []struct {
		name     string
		x1, y1   float64
		x2, y2   float64
		expected bool
	}{
		{"overlapping", 0, 0, 50, 50, true},
		{"touching corners", 0, 0, 100, 100, false},
		{"far apart", 0, 0, 500, 500, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s1.MoveTo(tc.x1, tc.y1)
			s2.MoveTo(tc.x2, tc.y2)
			if got := s1.Intersects(s2); got != tc.expected {
				t.Errorf("s1.Intersects(s2) = %v, expected %v", got, tc.expected)
			}
			if got := s2.Intersects(s1); got != tc.expected {
				t.Errorf("s2.Intersects(s1) = %v, expected %v", got, tc.expected)
			}
		})
	}
}

func TestSpriteIntersectsBorders(t *testing.T) {
	ids := NewIDGen(0)
	s1 := New(ids, 100, 100).MoveTo(0, 0)
	s2 := New(ids, 100, 100).MoveTo(50, 50)

	if got := s1.IntersectsBorders(s2.Rect); got != core.BorderBottom|core.BorderRight {
		t.Errorf("s1.IntersectsBorders(s2) = %v, expected BOTTOM|RIGHT", got)
	}
	if got := s2.IntersectsBorders(s1.Rect); got != core.BorderTop|core.BorderLeft {
		t.Errorf("s2.IntersectsBorders(s1) = %v, expected TOP|LEFT", got)
	}

	s2.MoveTo(100, 100)
	if got := s2.IntersectsBorders(s1.Rect); got != core.BorderNone {
		t.Errorf("IntersectsBorders() apart = %v, expected NONE", got)
	}
}

func TestCheckerOnlyConsultedAfterBoxOverlap(t *testing.T) {
	ids := NewIDGen(0)
	s1 := New(ids, 10, 10)
	s2 := New(ids, 10, 10)
	stub := &stubChecker{result: false}
	s1.SetChecker(stub)

	s2.MoveTo(50, 50)
	if s1.Intersects(s2) {
		t.Error("Intersects() should be false when boxes are apart")
	}
	if stub.calls != 0 {
		t.Errorf("checker called %d times, expected 0", stub.calls)
	}

	s2.MoveTo(5, 5)
	if s1.Intersects(s2) {
		t.Error("Intersects() should follow the checker's answer")
	}
	if stub.calls != 1 {
		t.Errorf("checker called %d times, expected 1", stub.calls)
	}

	s1.SetChecker(AlwaysChecker{})
	if !s1.Intersects(s2) {
		t.Error("AlwaysChecker should accept box overlap")
	}

	s1.SetChecker(nil)
	if s1.Checker() != nil {
		t.Error("SetChecker(nil) should detach the checker")
	}
	if !s1.Intersects(s2) {
		t.Error("box overlap alone should be enough without a checker")
	}
}

func TestSpriteVelocity(t *testing.T) {
	s := New(NewIDGen(0), 100, 100).SetVelocity(10, 5)
	s.MoveTo(100, 100)

	s.Update(0)
	if s.X != 100 || s.Y != 100 {
		t.Errorf("after Update(0) position = (%v, %v), expected (100, 100)", s.X, s.Y)
	}

	s.Update(1000)
	if s.X != 110 || s.Y != 105 {
		t.Errorf("after Update(1000) position = (%v, %v), expected (110, 105)", s.X, s.Y)
	}

	s.SetVelocity(5, 10)
	s.Update(1000)
	if s.X != 115 || s.Y != 115 {
		t.Errorf("after new velocity position = (%v, %v), expected (115, 115)", s.X, s.Y)
	}

	vx, vy := s.Velocity()
	if vx != 5 || vy != 10 {
		t.Errorf("Velocity() = (%v, %v), expected (5, 10)", vx, vy)
	}

	s.Active = false
	s.Update(1000)
	if s.X != 115 || s.Y != 115 {
		t.Errorf("inactive sprite moved to (%v, %v)", s.X, s.Y)
	}
}

func TestDisableEnable(t *testing.T) {
	s := New(NewIDGen(0), 1, 1)

	s.Disable()
	if s.Active || s.Visible {
		t.Errorf("after Disable active=%v visible=%v, expected both false", s.Active, s.Visible)
	}
	s.Enable()
	if !s.Active || !s.Visible {
		t.Errorf("after Enable active=%v visible=%v, expected both true", s.Active, s.Visible)
	}
}

func TestSpriteContains(t *testing.T) {
	s := New(NewIDGen(0), 100, 100).MoveTo(100, 100)

	if !s.Contains(150, 150) {
		t.Error("should contain (150, 150)")
	}
	if s.Contains(50, 50) {
		t.Error("should NOT contain (50, 50)")
	}
}

func TestSpriteScale(t *testing.T) {
	s := New(NewIDGen(0), 10, 20)
	s.Scale(2, 0)
	if s.W != 20 || s.H != 40 {
		t.Errorf("Scale(2, 0) size = (%v, %v), expected (20, 40)", s.W, s.H)
	}
	s.Scale(0.5, 1)
	if s.W != 10 || s.H != 40 {
		t.Errorf("Scale(0.5, 1) size = (%v, %v), expected (10, 40)", s.W, s.H)
	}
}
