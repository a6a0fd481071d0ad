package dag

import (
	"sort"

	"github.com/katalvlaran/acyclic/oriented"
)

// The must* helpers wrap oriented calls whose preconditions the facade
// has already established; a failure means the two graphs fell out of
// lockstep.

func mustOutgoing(g *oriented.Graph, v VertexID) []VertexID {
	out, err := g.Outgoing(v)
	if err != nil {
		panic(panicSidestructure)
	}

	return out
}

func mustIncoming(g *oriented.Graph, v VertexID) []VertexID {
	in, err := g.Incoming(v)
	if err != nil {
		panic(panicSidestructure)
	}

	return in
}

func mustLinkage(g *oriented.Graph, u, v VertexID) (forward, reverse bool) {
	forward, reverse, err := g.HasLinkage(u, v)
	if err != nil {
		panic(panicSidestructure)
	}

	return forward, reverse
}

func mustEdgeExists(g *oriented.Graph, u, v VertexID) bool {
	has, err := g.EdgeExists(u, v)
	if err != nil {
		panic(panicSidestructure)
	}

	return has
}

func mustClearEdge(g *oriented.Graph, u, v VertexID) {
	if _, err := g.ClearEdge(u, v); err != nil {
		panic(panicSidestructure)
	}
}

// setReach records u→v in the sidestructure, tolerating an edge that is
// already present.
func (d *Graph) setReach(u, v VertexID) {
	if _, err := d.h.SetEdge(u, v); err != nil {
		panic(panicSidestructure)
	}
}

// sortedIDs returns the members of a vertex set in ascending order, so
// closure maintenance walks slots deterministically.
func sortedIDs(set map[VertexID]struct{}) []VertexID {
	ids := make([]VertexID, 0, len(set))
	for v := range set {
		ids = append(ids, v)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	return ids
}

// edgeSlot reads the raw ternary of the sidestructure slot shared by
// the pair {u, v}, oriented from u: 0 none, 1 u→v, 2 v→u.
func (d *Graph) edgeSlot(u, v VertexID) uint8 {
	forward, reverse := mustLinkage(d.h, u, v)
	switch {
	case forward:
		return 1
	case reverse:
		return 2
	default:
		return 0
	}
}

// setEdgeSlot overwrites the shared slot, clearing whichever direction
// the new value does not use.
func (d *Graph) setEdgeSlot(u, v VertexID, t uint8) {
	forward, reverse := mustLinkage(d.h, u, v)
	switch t {
	case 0:
		if forward {
			mustClearEdge(d.h, u, v)
		}
		if reverse {
			mustClearEdge(d.h, v, u)
		}
	case 1:
		if reverse {
			mustClearEdge(d.h, v, u)
		}
		d.setReach(u, v)
	case 2:
		if forward {
			mustClearEdge(d.h, u, v)
		}
		d.setReach(v, u)
	default:
		panic(panicTristate)
	}
}

// reachTristate reads the per-edge ternary of the physical edge u→v in
// reach-without-link mode, where only the first two values are legal.
func (d *Graph) reachTristate(u, v VertexID) uint8 {
	t := d.edgeSlot(u, v)
	if t == 2 {
		panic(panicTristate)
	}

	return t
}

// outgoingReachIncludingSelf gathers everything v's row claims to
// reach: its physical successors, itself, and the cached closure edges.
// Sidestructure edges over a physically linked pair are edge ternaries,
// not closure data, and are skipped.
func (d *Graph) outgoingReachIncludingSelf(v VertexID) map[VertexID]struct{} {
	set := make(map[VertexID]struct{})
	for _, w := range mustOutgoing(d.g, v) {
		set[w] = struct{}{}
	}
	for _, w := range mustOutgoing(d.h, v) {
		forward, reverse := mustLinkage(d.g, v, w)
		if !forward && !reverse {
			set[w] = struct{}{}
		}
	}
	set[v] = struct{}{}

	return set
}

// incomingReachIncludingSelf mirrors outgoingReachIncludingSelf for the
// vertices whose rows claim to reach v.
func (d *Graph) incomingReachIncludingSelf(v VertexID) map[VertexID]struct{} {
	set := make(map[VertexID]struct{})
	for _, u := range mustIncoming(d.g, v) {
		set[u] = struct{}{}
	}
	for _, u := range mustIncoming(d.h, v) {
		forward, reverse := mustLinkage(d.g, v, u)
		if !forward && !reverse {
			set[u] = struct{}{}
		}
	}
	set[v] = struct{}{}

	return set
}

// CanReach reports whether a directed path leads from u to v. Every
// vertex reaches itself. With the reachability cache on, a physical
// edge between the pair answers immediately; otherwise u's closure row
// answers, after repair when it is dirty and claims true. Without the
// cache the physical graph is walked.
func (d *Graph) CanReach(u, v VertexID) (bool, error) {
	if !d.g.Exists(u) || !d.g.Exists(v) {
		return false, oriented.ErrVertexAbsent
	}
	if u == v {
		return true, nil
	}
	if d.h == nil {
		return d.dfsReach(u, v, nil), nil
	}

	// 1) A physical edge settles it: forward means reachable, reverse
	//    means reaching u from v is a fact, so u→v would be a cycle.
	forward, reverse := mustLinkage(d.g, u, v)
	if forward {
		return true, nil
	}
	if reverse {
		return false, nil
	}

	// 2) Clean rows are exact.
	if mustKind(d.h, u) == kindClean {
		return mustEdgeExists(d.h, u, v), nil
	}

	// 3) Dirty rows never hold false negatives, so a miss is still a
	//    definitive no. A hit must be verified by repairing the row.
	if !mustEdgeExists(d.h, u, v) {
		return false, nil
	}
	d.cleanUpReachability(u)

	return mustEdgeExists(d.h, u, v), nil
}

// InsertionWouldCauseCycle reports whether SetEdge(u, v) would be
// rejected: the edge closes a cycle exactly when v already reaches u.
func (d *Graph) InsertionWouldCauseCycle(u, v VertexID) (bool, error) {
	return d.CanReach(v, u)
}

// cleanUpReachability rebuilds v's closure row from its physical
// successors, leaving it clean.
func (d *Graph) cleanUpReachability(v VertexID) {
	// 1) Drop the cached reach edges; slots doubling as edge ternaries
	//    stay untouched.
	for _, w := range mustOutgoing(d.h, v) {
		forward, reverse := mustLinkage(d.g, v, w)
		if forward || reverse {
			continue
		}
		mustClearEdge(d.h, v, w)
	}

	// 2) Rebuild from the physical successors, repairing each dirty one
	//    first. Acyclicity bounds the recursion.
	out := mustOutgoing(d.g, v)
	reachBySucc := make(map[VertexID]map[VertexID]struct{}, len(out))
	for _, w := range out {
		if mustKind(d.h, w) == kindDirty {
			d.cleanUpReachability(w)
		}
		rs := d.outgoingReachIncludingSelf(w)
		reachBySucc[w] = rs
		for _, x := range sortedIDs(rs) {
			if x == w {
				continue
			}
			if mustEdgeExists(d.g, v, x) {
				// The slot carries that edge's ternary.
				continue
			}
			if mustEdgeExists(d.h, x, v) {
				// A stale reverse claim from a dirty row; x cannot truly
				// reach v or v→w→x would close a cycle.
				mustClearEdge(d.h, x, v)
			}
			d.setReach(v, x)
		}
	}

	// 3) Downgrade edge ternaries whose alternate path no longer exists:
	//    if no other successor's reach set covers w, the edge v→w is the
	//    only way there.
	if d.opt.reachWithoutLink {
		for _, w := range out {
			if d.reachTristate(v, w) != reachableWithoutEdge {
				continue
			}
			foundOtherPath := false
			for _, w2 := range out {
				if w2 == w {
					continue
				}
				if _, ok := reachBySucc[w2][w]; ok {
					foundOtherPath = true
					break
				}
			}
			if !foundOtherPath {
				d.setEdgeSlot(v, w, notReachableWithoutEdge)
			}
		}
	}

	// 4) The row is exact again.
	mustSetKind(d.h, v, kindClean)
}

// dfsReach walks the physical graph from u looking for v. skip, when
// non-nil, names a single edge to pretend absent.
func (d *Graph) dfsReach(u, v VertexID, skip *[2]VertexID) bool {
	visited := map[VertexID]struct{}{u: {}}
	stack := []VertexID{u}
	for len(stack) > 0 {
		a := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for _, w := range mustOutgoing(d.g, a) {
			if skip != nil && a == skip[0] && w == skip[1] {
				continue
			}
			if w == v {
				return true
			}
			if _, seen := visited[w]; !seen {
				visited[w] = struct{}{}
				stack = append(stack, w)
			}
		}
	}

	return false
}
