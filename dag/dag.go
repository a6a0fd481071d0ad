package dag

import "github.com/katalvlaran/acyclic/oriented"

// VertexID identifies a vertex; see oriented.VertexID.
type VertexID = oriented.VertexID

// VertexKind is the caller-visible two-valued vertex tag carried by the
// physical graph; see oriented.VertexKind.
type VertexKind = oriented.VertexKind

// Re-exported so dag callers need not import oriented for the common
// vocabulary.
const (
	NoVertex = oriented.NoVertex
	KindOne  = oriented.KindOne
	KindTwo  = oriented.KindTwo
)

// Sidestructure row states, aliased onto the oriented vertex kinds: a
// clean row is exactly the transitive closure, a dirty row may carry
// false positives but never false negatives.
const (
	kindClean = oriented.KindOne
	kindDirty = oriented.KindTwo
)

// Per-edge ternary values used by the reach-without-link bookkeeping.
// Value 2 is reserved and never written by the core.
const (
	reachableWithoutEdge    uint8 = 0
	notReachableWithoutEdge uint8 = 1
)

const (
	panicSidestructure = "dag: sidestructure out of sync with physical graph"
	panicInconsistent  = "dag: consistency check failed"
	panicTristate      = "dag: reserved tristate value in sidestructure"
)

// Graph is a directed acyclic graph. The physical edges live in g; h is
// the canreach sidestructure, nil when the reachability cache is off.
//
// Graph is not safe for concurrent use.
type Graph struct {
	g   *oriented.Graph
	h   *oriented.Graph
	opt options
}

// New returns an empty DAG addressing vertices 0 through capacity-1,
// configured by opts.
func New(capacity VertexID, opts ...Option) (*Graph, error) {
	opt, err := gatherOptions(opts...)
	if err != nil {
		return nil, err
	}
	d := &Graph{g: oriented.New(capacity), opt: opt}
	if opt.reachabilityCache {
		d.h = oriented.New(capacity)
	}

	return d, nil
}

// mustKind reads a vertex kind that lifecycle lockstep guarantees to be
// readable.
func mustKind(g *oriented.Graph, v VertexID) oriented.VertexKind {
	kind, err := g.KindOf(v)
	if err != nil {
		panic(panicSidestructure)
	}

	return kind
}

func mustSetKind(g *oriented.Graph, v VertexID, kind oriented.VertexKind) {
	if err := g.SetKind(v, kind); err != nil {
		panic(panicSidestructure)
	}
}

// audit panics unless the sidestructure matches a full transitive walk;
// only armed by WithConsistencyCheck.
func (d *Graph) audit() {
	if d.opt.consistencyCheck && !d.IsInternallyConsistent() {
		panic(panicInconsistent)
	}
}

// Capacity returns the first invalid VertexID.
func (d *Graph) Capacity() VertexID { return d.g.Capacity() }

// MaxValidID returns the largest addressable ID, or false when the
// capacity is zero.
func (d *Graph) MaxValidID() (VertexID, bool) { return d.g.MaxValidID() }

// SetCapacityForMaxValidID resizes so v becomes the largest valid ID.
func (d *Graph) SetCapacityForMaxValidID(v VertexID) {
	d.audit()
	defer d.audit()

	if v+1 < d.g.Capacity() {
		d.dirtyBeforeTruncate(v + 1)
	}
	d.g.SetCapacityForMaxValidID(v)
	if d.h != nil {
		d.h.SetCapacityForMaxValidID(v)
	}
}

// SetCapacitySoFirstInvalid resizes so v becomes the first invalid ID.
func (d *Graph) SetCapacitySoFirstInvalid(v VertexID) {
	d.audit()
	defer d.audit()

	if v < d.g.Capacity() {
		d.dirtyBeforeTruncate(v)
	}
	d.g.SetCapacitySoFirstInvalid(v)
	if d.h != nil {
		d.h.SetCapacitySoFirstInvalid(v)
	}
}

// GrowCapacityForMaxValidID grows the capacity so v becomes valid.
func (d *Graph) GrowCapacityForMaxValidID(v VertexID) error {
	d.audit()
	defer d.audit()

	if err := d.g.GrowCapacityForMaxValidID(v); err != nil {
		return err
	}
	if d.h != nil {
		if err := d.h.GrowCapacityForMaxValidID(v); err != nil {
			panic(panicSidestructure)
		}
	}

	return nil
}

// ShrinkCapacitySoFirstInvalid shrinks the capacity so v becomes the
// first invalid ID, discarding vertices and edges at or beyond v.
func (d *Graph) ShrinkCapacitySoFirstInvalid(v VertexID) error {
	d.audit()
	defer d.audit()

	if v >= d.g.Capacity() {
		return oriented.ErrBadCapacity
	}
	d.dirtyBeforeTruncate(v)
	if err := d.g.ShrinkCapacitySoFirstInvalid(v); err != nil {
		return err
	}
	if d.h != nil {
		if err := d.h.ShrinkCapacitySoFirstInvalid(v); err != nil {
			panic(panicSidestructure)
		}
	}

	return nil
}

// dirtyBeforeTruncate marks every surviving row that may reach a vertex
// about to be discarded which has both incoming and outgoing edges.
// Paths through such vertices vanish with them, so those rows can be
// left holding false positives.
func (d *Graph) dirtyBeforeTruncate(c VertexID) {
	if d.h == nil {
		return
	}
	for w := c; w < d.g.Capacity(); w++ {
		if !d.g.Exists(w) {
			continue
		}
		in, out, err := d.g.Degree(w)
		if err != nil || in == 0 || out == 0 {
			continue
		}
		for _, a := range sortedIDs(d.incomingReachIncludingSelf(w)) {
			if a < c {
				mustSetKind(d.h, a, kindDirty)
			}
		}
	}
}

// Exists reports whether v is a live vertex.
func (d *Graph) Exists(v VertexID) bool { return d.g.Exists(v) }

// CreateVertex creates v with KindOne; its closure row starts clean and
// empty.
func (d *Graph) CreateVertex(v VertexID) error {
	return d.CreateVertexOfKind(v, KindOne)
}

// CreateVertexOfKind creates v with the given kind in the physical
// graph. The kind is caller data; the sidestructure keeps its own.
func (d *Graph) CreateVertexOfKind(v VertexID, kind VertexKind) error {
	d.audit()
	defer d.audit()

	if err := d.g.CreateVertexOfKind(v, kind); err != nil {
		return err
	}
	if d.h != nil {
		if err := d.h.CreateVertexOfKind(v, kindClean); err != nil {
			panic(panicSidestructure)
		}
	}

	return nil
}

// KindOf returns the caller-visible kind of v.
func (d *Graph) KindOf(v VertexID) (VertexKind, error) { return d.g.KindOf(v) }

// SetKind overwrites the caller-visible kind of v.
func (d *Graph) SetKind(v VertexID, kind VertexKind) error {
	return d.g.SetKind(v, kind)
}

// FlipKind toggles the caller-visible kind of v.
func (d *Graph) FlipKind(v VertexID) error { return d.g.FlipKind(v) }

// EdgeExists reports whether the physical edge u→v is present.
func (d *Graph) EdgeExists(u, v VertexID) (bool, error) {
	return d.g.EdgeExists(u, v)
}

// HasLinkage reports both directions of the physical pair {u, v}.
func (d *Graph) HasLinkage(u, v VertexID) (forward, reverse bool, err error) {
	return d.g.HasLinkage(u, v)
}

// Outgoing returns the targets of v's physical edges in ascending order.
func (d *Graph) Outgoing(v VertexID) ([]VertexID, error) { return d.g.Outgoing(v) }

// Incoming returns the sources of v's physical edges in ascending order.
func (d *Graph) Incoming(v VertexID) ([]VertexID, error) { return d.g.Incoming(v) }

// Degree returns v's in- and out-degree over the physical edges.
func (d *Graph) Degree(v VertexID) (in, out int, err error) { return d.g.Degree(v) }

// destroy removes v from both graphs after checking the requested
// degree preconditions. Rows that reached a vertex with throughput lose
// paths, so they are dirtied first.
func (d *Graph) destroy(v VertexID, needNoIn, needNoOut, compact bool) error {
	d.audit()
	defer d.audit()

	if !d.g.Exists(v) {
		return oriented.ErrVertexAbsent
	}
	in, out, err := d.g.Degree(v)
	if err != nil {
		return err
	}
	if needNoIn && in > 0 {
		return oriented.ErrHasIncoming
	}
	if needNoOut && out > 0 {
		return oriented.ErrHasOutgoing
	}

	if d.h != nil && in > 0 && out > 0 {
		for _, a := range sortedIDs(d.incomingReachIncludingSelf(v)) {
			if a != v {
				mustSetKind(d.h, a, kindDirty)
			}
		}
	}

	if compact {
		err = d.g.DestroyVertex(v)
	} else {
		err = d.g.DestroyVertexDontCompact(v)
	}
	if err != nil {
		return err
	}
	if d.h != nil {
		if compact {
			err = d.h.DestroyVertex(v)
		} else {
			err = d.h.DestroyVertexDontCompact(v)
		}
		if err != nil {
			panic(panicSidestructure)
		}
	}

	return nil
}

// DestroyVertex removes v along with every incident edge, then shrinks
// the capacity past any trailing absent vertices.
func (d *Graph) DestroyVertex(v VertexID) error {
	return d.destroy(v, false, false, true)
}

// DestroyVertexDontCompact is DestroyVertex without the capacity shrink.
func (d *Graph) DestroyVertexDontCompact(v VertexID) error {
	return d.destroy(v, false, false, false)
}

// DestroySourceVertex removes v, which must have no incoming edges.
func (d *Graph) DestroySourceVertex(v VertexID) error {
	return d.destroy(v, true, false, true)
}

// DestroySourceVertexDontCompact is DestroySourceVertex without the
// capacity shrink.
func (d *Graph) DestroySourceVertexDontCompact(v VertexID) error {
	return d.destroy(v, true, false, false)
}

// DestroySinkVertex removes v, which must have no outgoing edges.
func (d *Graph) DestroySinkVertex(v VertexID) error {
	return d.destroy(v, false, true, true)
}

// DestroySinkVertexDontCompact is DestroySinkVertex without the
// capacity shrink.
func (d *Graph) DestroySinkVertexDontCompact(v VertexID) error {
	return d.destroy(v, false, true, false)
}

// DestroyIsolatedVertex removes v, which must have no edges at all.
func (d *Graph) DestroyIsolatedVertex(v VertexID) error {
	return d.destroy(v, true, true, true)
}

// DestroyIsolatedVertexDontCompact is DestroyIsolatedVertex without the
// capacity shrink.
func (d *Graph) DestroyIsolatedVertexDontCompact(v VertexID) error {
	return d.destroy(v, true, true, false)
}
