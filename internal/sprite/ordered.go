package sprite

import (
	"errors"
	"fmt"
	"iter"
	"slices"
	"sort"
	"strings"
)

// ErrIndexOutOfRange is returned for positional access outside [0, Len()).
var ErrIndexOutOfRange = errors.New("sprite: index out of range")

// CompareFunc ranks two sprites. A positive result means a belongs in
// front of b, zero means equal rank, negative means a belongs behind b.
// It is evaluated against live sprite state on every insertion.
type CompareFunc func(a, b *Sprite) float64

// OrderedList keeps sprites sorted by a CompareFunc. The order is only
// guaranteed right after a mutating call: when a sprite's sort key
// changes the caller must Resort it.
//
// The list holds references only; it never owns sprite lifetime.
type OrderedList struct {
	cmp   CompareFunc
	items []*Sprite
}

// NewOrderedList creates an empty list ordered by cmp.
func NewOrderedList(cmp CompareFunc) *OrderedList {
	return &OrderedList{cmp: cmp}
}

// Len returns the number of sprites in the list.
func (l *OrderedList) Len() int {
	return len(l.items)
}

// IsEmpty reports whether the list has no sprites.
func (l *OrderedList) IsEmpty() bool {
	return len(l.items) == 0
}

// At returns the sprite at index i.
func (l *OrderedList) At(i int) (*Sprite, error) {
	if i < 0 || i >= len(l.items) {
		return nil, fmt.Errorf("%w: %d (len %d)", ErrIndexOutOfRange, i, len(l.items))
	}
	return l.items[i], nil
}

// Contains reports whether s is a member, by identity.
func (l *OrderedList) Contains(s *Sprite) bool {
	return slices.Contains(l.items, s)
}

// Add inserts s at its sorted position. Equal-ranked sprites keep their
// insertion order. Adding a sprite that is already a member is a no-op
// and returns false.
func (l *OrderedList) Add(s *Sprite) bool {
	if l.Contains(s) {
		return false
	}
	// Binary search for the first member that s ranks in front of.
	i := sort.Search(len(l.items), func(i int) bool {
		return l.cmp(s, l.items[i]) > 0
	})
	l.items = slices.Insert(l.items, i, s)
	return true
}

// AddAll adds each sprite in turn.
func (l *OrderedList) AddAll(sprites ...*Sprite) {
	for _, s := range sprites {
		l.Add(s)
	}
}

// Remove deletes s by identity. Returns false if s was not a member.
func (l *OrderedList) Remove(s *Sprite) bool {
	i := slices.Index(l.items, s)
	if i < 0 {
		return false
	}
	l.items = slices.Delete(l.items, i, i+1)
	return true
}

// RemoveAt deletes the sprite at index i.
func (l *OrderedList) RemoveAt(i int) error {
	if i < 0 || i >= len(l.items) {
		return fmt.Errorf("%w: %d (len %d)", ErrIndexOutOfRange, i, len(l.items))
	}
	l.items = slices.Delete(l.items, i, i+1)
	return nil
}

// Resort moves s to the position its current sort key calls for.
// Sprites that are not members are left alone.
func (l *OrderedList) Resort(s *Sprite) {
	if l.Remove(s) {
		l.Add(s)
	}
}

// PurgeInactive removes every inactive sprite, keeping the survivors in
// order. Returns the number of sprites removed.
func (l *OrderedList) PurgeInactive() int {
	n := len(l.items)
	l.items = slices.DeleteFunc(l.items, func(s *Sprite) bool {
		return !s.Active
	})
	return n - len(l.items)
}

// IsSorted reports whether the members are currently in comparator
// order. Useful after sprites moved to decide whether Resort is needed.
func (l *OrderedList) IsSorted() bool {
	for i := 1; i < len(l.items); i++ {
		if l.cmp(l.items[i-1], l.items[i]) < 0 {
			return false
		}
	}
	return true
}

// All iterates over the members in order.
func (l *OrderedList) All() iter.Seq2[int, *Sprite] {
	return func(yield func(int, *Sprite) bool) {
		for i, s := range l.items {
			if !yield(i, s) {
				return
			}
		}
	}
}

// String returns the member names joined with commas, e.g. "2,0,1".
func (l *OrderedList) String() string {
	names := make([]string, len(l.items))
	for i, s := range l.items {
		names[i] = s.Name
	}
	return strings.Join(names, ",")
}
