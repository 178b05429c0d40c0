package sprite

import (
	"errors"
	"testing"
)

// byX keeps sprites with smaller x in front.
func byX(a, b *Sprite) float64 {
	return b.X - a.X
}

func TestOrderedListScenario(t *testing.T) {
	ids := NewIDGen(0)
	list := NewOrderedList(byX)

	if !list.IsEmpty() || list.Len() != 0 {
		t.Fatalf("new list: IsEmpty()=%v Len()=%d, expected empty", list.IsEmpty(), list.Len())
	}

	steps := []struct {
		x        float64
		expected string
	}{
		{20, "0"},
		{30, "0,1"},
		{10, "2,0,1"},
		{25, "2,0,3,1"},
		{1, "4,2,0,3,1"},
		{100, "4,2,0,3,1,5"},
	}

	var last *Sprite
	for _, step := range steps {
		last = New(ids, 0, 0).MoveTo(step.x, 0)
		list.Add(last)
		if got := list.String(); got != step.expected {
			t.Fatalf("after adding x=%v: String() = %q, expected %q", step.x, got, step.expected)
		}
		if !list.IsSorted() {
			t.Fatalf("after adding x=%v: list not sorted", step.x)
		}
	}

	if first, err := list.At(0); err != nil || first.Name != "4" {
		t.Errorf("At(0) = %v, %v; expected sprite 4", first, err)
	}

	if !list.Remove(last) {
		t.Fatal("Remove() of member returned false")
	}
	if got := list.String(); got != "4,2,0,3,1" {
		t.Errorf("after Remove String() = %q, expected %q", got, "4,2,0,3,1")
	}

	removals := []struct {
		index    int
		expected string
	}{
		{3, "4,2,0,1"},
		{1, "4,0,1"},
		{0, "0,1"},
		{1, "0"},
		{0, ""},
	}
	for _, r := range removals {
		if err := list.RemoveAt(r.index); err != nil {
			t.Fatalf("RemoveAt(%d) failed: %v", r.index, err)
		}
		if got := list.String(); got != r.expected {
			t.Fatalf("after RemoveAt(%d) String() = %q, expected %q", r.index, got, r.expected)
		}
	}
	if !list.IsEmpty() {
		t.Error("list should be empty after removing everything")
	}
}

func TestOrderedListRemoveSpriteThenIndices(t *testing.T) {
	ids := NewIDGen(0)
	list := NewOrderedList(byX)
	sprites := make([]*Sprite, 0, 5)
	for _, x := range []float64{20, 30, 10, 25, 1} {
		s := New(ids, 0, 0).MoveTo(x, 0)
		sprites = append(sprites, s)
		list.Add(s)
	}

	list.Remove(sprites[4])
	if got := list.String(); got != "2,0,3,1" {
		t.Fatalf("after removing x=1 String() = %q, expected %q", got, "2,0,3,1")
	}

	list.RemoveAt(1)
	list.RemoveAt(0)
	if got := list.String(); got != "3,1" {
		t.Errorf("after RemoveAt(1), RemoveAt(0) String() = %q, expected %q", got, "3,1")
	}
}

func TestOrderedListOutOfRange(t *testing.T) {
	list := NewOrderedList(byX)
	list.Add(New(NewIDGen(0), 0, 0))

	for _, i := range []int{-1, 1, 10} {
		if err := list.RemoveAt(i); !errors.Is(err, ErrIndexOutOfRange) {
			t.Errorf("RemoveAt(%d) error = %v, expected ErrIndexOutOfRange", i, err)
		}
		if _, err := list.At(i); !errors.Is(err, ErrIndexOutOfRange) {
			t.Errorf("At(%d) error = %v, expected ErrIndexOutOfRange", i, err)
		}
	}
	if list.Len() != 1 {
		t.Errorf("Len() = %d after failed removals, expected 1", list.Len())
	}
}

func TestOrderedListTiesKeepInsertionOrder(t *testing.T) {
	ids := NewIDGen(0)
	list := NewOrderedList(byX)
	list.AddAll(
		New(ids, 0, 0).MoveTo(5, 0),
		New(ids, 0, 0).MoveTo(5, 0),
		New(ids, 0, 0).MoveTo(1, 0),
		New(ids, 0, 0).MoveTo(5, 0),
	)

	if got := list.String(); got != "2,0,1,3" {
		t.Errorf("String() = %q, expected %q", got, "2,0,1,3")
	}
}

func TestOrderedListRejectsDuplicates(t *testing.T) {
	list := NewOrderedList(byX)
	s := New(NewIDGen(0), 0, 0)

	if !list.Add(s) {
		t.Fatal("first Add() returned false")
	}
	if list.Add(s) {
		t.Error("second Add() of the same sprite returned true")
	}
	if list.Len() != 1 {
		t.Errorf("Len() = %d, expected 1", list.Len())
	}
	if list.Remove(New(NewIDGen(9), 0, 0)) {
		t.Error("Remove() of a non-member returned true")
	}
}

func TestOrderedListPurgeInactive(t *testing.T) {
	ids := NewIDGen(0)
	list := NewOrderedList(byX)
	for x := 0.0; x < 4; x++ {
		list.Add(New(ids, 0, 0).MoveTo(x, 0))
	}

	first, _ := list.At(0)
	fourth, _ := list.At(3)
	first.Disable()
	fourth.Disable()

	if n := list.PurgeInactive(); n != 2 {
		t.Errorf("PurgeInactive() = %d, expected 2", n)
	}
	if got := list.String(); got != "1,2" {
		t.Errorf("String() = %q, expected %q", got, "1,2")
	}
}

func TestOrderedListResort(t *testing.T) {
	ids := NewIDGen(0)
	list := NewOrderedList(byX)
	a := New(ids, 0, 0).MoveTo(10, 0)
	b := New(ids, 0, 0).MoveTo(20, 0)
	list.AddAll(a, b)

	a.MoveTo(30, 0)
	if list.IsSorted() {
		t.Fatal("list should report unsorted after a key change")
	}
	list.Resort(a)
	if got := list.String(); got != "1,0" {
		t.Errorf("after Resort String() = %q, expected %q", got, "1,0")
	}
	if !list.IsSorted() {
		t.Error("list should be sorted after Resort")
	}
}

func TestOrderedListAll(t *testing.T) {
	ids := NewIDGen(0)
	list := NewOrderedList(byX)
	for _, x := range []float64{3, 1, 2} {
		list.Add(New(ids, 0, 0).MoveTo(x, 0))
	}

	var xs []float64
	for i, s := range list.All() {
		if i != len(xs) {
			t.Errorf("index %d out of sequence", i)
		}
		xs = append(xs, s.X)
	}
	if len(xs) != 3 || xs[0] != 1 || xs[1] != 2 || xs[2] != 3 {
		t.Errorf("All() yielded x = %v, expected [1 2 3]", xs)
	}
}
