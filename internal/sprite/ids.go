package sprite

import "sync/atomic"

// IDGen hands out unique sprite ids. A generator is owned by whatever
// builds sprites (usually a sim.World) and passed to New explicitly;
// there is no package-level counter.
type IDGen struct {
	next atomic.Uint64
}

// NewIDGen creates a generator whose first id is base.
func NewIDGen(base uint64) *IDGen {
	g := &IDGen{}
	g.next.Store(base)
	return g
}

// Next returns the next id. Safe for concurrent use.
func (g *IDGen) Next() uint64 {
	return g.next.Add(1) - 1
}

// Peek returns the id the next call to Next will hand out.
func (g *IDGen) Peek() uint64 {
	return g.next.Load()
}

// Reset restarts the sequence at base. Intended for test isolation and
// scenario restarts; ids of live sprites may be reissued afterwards.
func (g *IDGen) Reset(base uint64) {
	g.next.Store(base)
}
