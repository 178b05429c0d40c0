package core

import "strings"

// BorderFlags identifies which edges of a rectangle were crossed.
// Values combine with bitwise OR.
type BorderFlags uint8

const (
	BorderNone   BorderFlags = 0
	BorderTop    BorderFlags = 0x01
	BorderBottom BorderFlags = 0x02
	BorderLeft   BorderFlags = 0x04
	BorderRight  BorderFlags = 0x08

	BorderLeftOrRight = BorderLeft | BorderRight
	BorderTopOrBottom = BorderTop | BorderBottom
	BorderAll         = BorderLeftOrRight | BorderTopOrBottom
)

// Top reports whether the top edge is set.
func (b BorderFlags) Top() bool {
	return b&BorderTop != 0
}

// Bottom reports whether the bottom edge is set.
func (b BorderFlags) Bottom() bool {
	return b&BorderBottom != 0
}

// Left reports whether the left edge is set.
func (b BorderFlags) Left() bool {
	return b&BorderLeft != 0
}

// Right reports whether the right edge is set.
func (b BorderFlags) Right() bool {
	return b&BorderRight != 0
}

// TopOrBottom reports whether either horizontal edge is set.
func (b BorderFlags) TopOrBottom() bool {
	return b&BorderTopOrBottom != 0
}

// LeftOrRight reports whether either vertical edge is set.
func (b BorderFlags) LeftOrRight() bool {
	return b&BorderLeftOrRight != 0
}

// String returns the set edges joined with "|", or "NONE".
func (b BorderFlags) String() string {
	if b&BorderAll == BorderNone {
		return "NONE"
	}
	parts := make([]string, 0, 4)
	if b.Top() {
		parts = append(parts, "TOP")
	}
	if b.Bottom() {
		parts = append(parts, "BOTTOM")
	}
	if b.Left() {
		parts = append(parts, "LEFT")
	}
	if b.Right() {
		parts = append(parts, "RIGHT")
	}
	return strings.Join(parts, "|")
}
