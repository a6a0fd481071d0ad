package dag

// SetEdge inserts the physical edge u→v, reporting true when the edge
// is new. Insertions that would close a cycle return ErrCycle and leave
// the graph unchanged; a self-edge is the smallest such cycle.
//
// With the reachability cache on, every row that reaches u learns that
// it now also reaches everything v reaches, so queries stay O(1).
func (d *Graph) SetEdge(u, v VertexID) (bool, error) {
	d.audit()
	defer d.audit()

	wouldCycle, err := d.InsertionWouldCauseCycle(u, v)
	if err != nil {
		return false, err
	}
	if wouldCycle {
		return false, ErrCycle
	}

	if d.h == nil {
		return d.g.SetEdge(u, v)
	}

	// Captured before the physical edge claims the shared slot.
	reachablePrior := false
	if d.opt.reachWithoutLink {
		reachablePrior = mustEdgeExists(d.h, u, v)
	}

	isNew, err := d.g.SetEdge(u, v)
	if err != nil {
		return false, err
	}
	if !isNew {
		return false, nil
	}

	// The slot now belongs to the edge. Stamp it, or blank it for the
	// caller when the ternary is user data.
	if d.opt.reachWithoutLink {
		if reachablePrior {
			d.setEdgeSlot(u, v, reachableWithoutEdge)
		} else {
			d.setEdgeSlot(u, v, notReachableWithoutEdge)
		}
	} else {
		d.setEdgeSlot(u, v, 0)
	}

	// Everything that reaches u now reaches everything v reaches.
	// Either set may hold false positives; dirtiness propagates with
	// them.
	toReach := d.outgoingReachIncludingSelf(v)
	kindTo := mustKind(d.h, v)
	fromReach := d.incomingReachIncludingSelf(u)
	kindFrom := mustKind(d.h, u)

	for _, a := range sortedIDs(fromReach) {
		if d.opt.reachWithoutLink {
			// 1) Any physical edge out of a whose target v also reaches
			//    has gained an alternate path through the new edge.
			for _, x := range mustOutgoing(d.g, a) {
				if a == u && x == v {
					continue
				}
				if _, ok := toReach[x]; !ok {
					continue
				}
				d.setEdgeSlot(a, x, reachableWithoutEdge)
				if kindTo == kindDirty {
					mustSetKind(d.h, a, kindDirty)
				}
			}
		}

		// 2) Record the new reach pairs.
		for _, b := range sortedIDs(toReach) {
			if a == b {
				continue
			}
			forward, reverse := mustLinkage(d.g, a, b)
			if forward {
				// The slot is that edge's ternary; reachability is
				// already implied.
				continue
			}
			if mustKind(d.h, b) == kindDirty && mustEdgeExists(d.h, b, a) {
				// A stale claim that b reaches a; were it true, the new
				// edge would have closed a cycle.
				mustClearEdge(d.h, b, a)
			}
			if reverse {
				// b→a is physical fact, so a truly cannot reach b.
				continue
			}
			if !(mustKind(d.h, a) == kindClean && kindTo == kindClean && kindFrom == kindClean) {
				mustSetKind(d.h, a, kindDirty)
			}
			d.setReach(a, b)
		}
	}

	return true, nil
}

// ClearEdge removes the physical edge u→v if present, reporting whether
// it did.
//
// When the edge carried a "reachable without this edge" stamp and u's
// row is clean, the closure is unchanged and the removal is cheap.
// Otherwise every row that reaches u is marked dirty and repaired
// lazily, with u→v kept as a best-effort (possibly false positive)
// closure entry.
func (d *Graph) ClearEdge(u, v VertexID) (bool, error) {
	d.audit()
	defer d.audit()

	if d.h == nil {
		return d.g.ClearEdge(u, v)
	}

	if d.opt.reachWithoutLink {
		has, err := d.g.EdgeExists(u, v)
		if err != nil {
			return false, err
		}
		if !has {
			return false, nil
		}
		extra := d.reachTristate(u, v)
		d.setEdgeSlot(u, v, 0)
		mustClearEdge(d.g, u, v)

		if mustKind(d.h, u) == kindClean && extra == reachableWithoutEdge {
			// An alternate path exists and u's row was exact, so the
			// closure row keeps the pair without any dirtying.
			d.setReach(u, v)

			return true, nil
		}
	} else {
		cleared, err := d.g.ClearEdge(u, v)
		if err != nil || !cleared {
			return cleared, err
		}
	}

	// Rows reaching u may have depended on the removed edge.
	for _, a := range sortedIDs(d.incomingReachIncludingSelf(u)) {
		mustSetKind(d.h, a, kindDirty)
	}

	// The freed slot becomes closure data again: drop any leftover
	// reverse mark and keep u→v as a tolerated false positive, since a
	// transitive path may well remain.
	if mustEdgeExists(d.h, v, u) {
		mustClearEdge(d.h, v, u)
	}
	d.setReach(u, v)

	return true, nil
}
