package oriented

import "github.com/katalvlaran/acyclic/digits"

const (
	panicSlot   = "oriented: internal slot access out of range"
	panicResize = "oriented: internal resize failed"
)

// Graph is a dense oriented graph over ternary pair slots. The zero
// value is not usable; construct with New.
//
// Graph is not safe for concurrent use.
type Graph struct {
	capacity VertexID
	slots    *digits.Array
}

// New returns an empty graph addressing vertices 0 through capacity-1.
// Capacity is the first invalid ID and may be zero.
func New(capacity VertexID) *Graph {
	a, err := digits.New(3, existenceIndex(capacity))
	if err != nil {
		panic(panicResize)
	}

	return &Graph{capacity: capacity, slots: a}
}

// slot reads a ternary by index; indexes are always computed in range.
func (g *Graph) slot(i int) uint8 {
	d, err := g.slots.Get(i)
	if err != nil {
		panic(panicSlot)
	}

	return d
}

func (g *Graph) setSlot(i int, d uint8) {
	if err := g.slots.Set(i, d); err != nil {
		panic(panicSlot)
	}
}

// Capacity returns the first invalid VertexID.
func (g *Graph) Capacity() VertexID { return g.capacity }

// MaxValidID returns the largest addressable ID, or false when the
// capacity is zero.
func (g *Graph) MaxValidID() (VertexID, bool) {
	if g.capacity == 0 {
		return NoVertex, false
	}

	return g.capacity - 1, true
}

// setCapacity resizes storage so the first invalid ID becomes c. Slots
// gained are zero; slots dropped are zeroed in storage.
func (g *Graph) setCapacity(c VertexID) {
	if err := g.slots.ResizeWithZeros(existenceIndex(c)); err != nil {
		panic(panicResize)
	}
	g.capacity = c
}

// SetCapacityForMaxValidID resizes so v becomes the largest valid ID,
// growing or shrinking as needed. v must not be NoVertex.
func (g *Graph) SetCapacityForMaxValidID(v VertexID) {
	g.setCapacity(v + 1)
}

// SetCapacitySoFirstInvalid resizes so v becomes the first invalid ID,
// growing or shrinking as needed.
func (g *Graph) SetCapacitySoFirstInvalid(v VertexID) {
	g.setCapacity(v)
}

// GrowCapacityForMaxValidID grows the capacity so v becomes valid.
// Returns ErrBadCapacity when v is already addressable.
func (g *Graph) GrowCapacityForMaxValidID(v VertexID) error {
	if v < g.capacity {
		return ErrBadCapacity
	}
	g.setCapacity(v + 1)

	return nil
}

// ShrinkCapacitySoFirstInvalid shrinks the capacity so v becomes the
// first invalid ID. Returns ErrBadCapacity unless v < Capacity().
// Vertices and edges at or beyond v are discarded.
func (g *Graph) ShrinkCapacitySoFirstInvalid(v VertexID) error {
	if v >= g.capacity {
		return ErrBadCapacity
	}
	g.setCapacity(v)

	return nil
}

// Exists reports whether v is a live vertex.
func (g *Graph) Exists(v VertexID) bool {
	return v < g.capacity && g.slot(existenceIndex(v)) != existenceAbsent
}

// CreateVertex creates v with KindOne.
func (g *Graph) CreateVertex(v VertexID) error {
	return g.CreateVertexOfKind(v, KindOne)
}

// CreateVertexOfKind creates v with the given kind. The ID must be
// addressable (grow the capacity first) and not already in use.
func (g *Graph) CreateVertexOfKind(v VertexID, kind VertexKind) error {
	if kind != KindOne && kind != KindTwo {
		return ErrBadKind
	}
	if v >= g.capacity {
		return ErrBadCapacity
	}
	i := existenceIndex(v)
	if g.slot(i) != existenceAbsent {
		return ErrVertexExists
	}
	g.setSlot(i, uint8(kind))

	return nil
}

// KindOf returns the kind of v.
func (g *Graph) KindOf(v VertexID) (VertexKind, error) {
	if !g.Exists(v) {
		return 0, ErrVertexAbsent
	}

	return VertexKind(g.slot(existenceIndex(v))), nil
}

// SetKind overwrites the kind of v.
func (g *Graph) SetKind(v VertexID, kind VertexKind) error {
	if kind != KindOne && kind != KindTwo {
		return ErrBadKind
	}
	if !g.Exists(v) {
		return ErrVertexAbsent
	}
	g.setSlot(existenceIndex(v), uint8(kind))

	return nil
}

// FlipKind toggles the kind of v between KindOne and KindTwo.
func (g *Graph) FlipKind(v VertexID) error {
	kind, err := g.KindOf(v)
	if err != nil {
		return err
	}
	if kind == KindOne {
		kind = KindTwo
	} else {
		kind = KindOne
	}
	g.setSlot(existenceIndex(v), uint8(kind))

	return nil
}

// scanVertex walks every pair slot of v in one pass, counting in- and
// out-degree; with clear it also zeroes the occupied slots.
func (g *Graph) scanVertex(v VertexID, clear bool) (in, out int) {
	for s := VertexID(0); s < v; s++ {
		i := pairIndex(s, v)
		d := g.slot(i)
		switch d {
		case pairLowToHigh: // s -> v
			in++
		case pairHighToLow: // v -> s
			out++
		}
		if clear && d != pairNone {
			g.setSlot(i, pairNone)
		}
	}
	for l := v + 1; l < g.capacity; l++ {
		i := pairIndex(v, l)
		d := g.slot(i)
		switch d {
		case pairLowToHigh: // v -> l
			out++
		case pairHighToLow: // l -> v
			in++
		}
		if clear && d != pairNone {
			g.setSlot(i, pairNone)
		}
	}

	return in, out
}

// compact drops the trailing run of absent vertices by shrinking the
// capacity to just past the highest live vertex.
func (g *Graph) compact() {
	c := g.capacity
	for c > 0 && g.slot(existenceIndex(c-1)) == existenceAbsent {
		c--
	}
	if c != g.capacity {
		g.setCapacity(c)
	}
}

// destroy removes v after checking the requested degree preconditions;
// on a precondition failure the graph is unchanged.
func (g *Graph) destroy(v VertexID, needNoIn, needNoOut, compact bool) error {
	if !g.Exists(v) {
		return ErrVertexAbsent
	}
	if needNoIn || needNoOut {
		in, out := g.scanVertex(v, false)
		if needNoIn && in > 0 {
			return ErrHasIncoming
		}
		if needNoOut && out > 0 {
			return ErrHasOutgoing
		}
	}
	g.scanVertex(v, true)
	g.setSlot(existenceIndex(v), existenceAbsent)
	if compact {
		g.compact()
	}

	return nil
}

// DestroyVertex removes v along with every incident edge, then shrinks
// the capacity past any trailing absent vertices.
func (g *Graph) DestroyVertex(v VertexID) error {
	return g.destroy(v, false, false, true)
}

// DestroyVertexDontCompact is DestroyVertex without the capacity shrink.
func (g *Graph) DestroyVertexDontCompact(v VertexID) error {
	return g.destroy(v, false, false, false)
}

// DestroySourceVertex removes v, which must have no incoming edges.
func (g *Graph) DestroySourceVertex(v VertexID) error {
	return g.destroy(v, true, false, true)
}

// DestroySourceVertexDontCompact is DestroySourceVertex without the
// capacity shrink.
func (g *Graph) DestroySourceVertexDontCompact(v VertexID) error {
	return g.destroy(v, true, false, false)
}

// DestroySinkVertex removes v, which must have no outgoing edges.
func (g *Graph) DestroySinkVertex(v VertexID) error {
	return g.destroy(v, false, true, true)
}

// DestroySinkVertexDontCompact is DestroySinkVertex without the
// capacity shrink.
func (g *Graph) DestroySinkVertexDontCompact(v VertexID) error {
	return g.destroy(v, false, true, false)
}

// DestroyIsolatedVertex removes v, which must have no edges at all.
func (g *Graph) DestroyIsolatedVertex(v VertexID) error {
	return g.destroy(v, true, true, true)
}

// DestroyIsolatedVertexDontCompact is DestroyIsolatedVertex without the
// capacity shrink.
func (g *Graph) DestroyIsolatedVertexDontCompact(v VertexID) error {
	return g.destroy(v, true, true, false)
}
