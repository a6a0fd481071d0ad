package dag

// transitiveClosureIncludingSelf walks the physical graph and returns
// every vertex reachable from v, v included.
func (d *Graph) transitiveClosureIncludingSelf(v VertexID) map[VertexID]struct{} {
	set := map[VertexID]struct{}{v: {}}
	stack := []VertexID{v}
	for len(stack) > 0 {
		a := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for _, w := range mustOutgoing(d.g, a) {
			if _, seen := set[w]; !seen {
				set[w] = struct{}{}
				stack = append(stack, w)
			}
		}
	}

	return set
}

// IsInternallyConsistent audits the sidestructure against full
// transitive walks of the physical graph: clean rows must equal the
// true closure, dirty rows must contain it, and in reach-without-link
// mode every edge ternary out of a clean row must agree with a walk
// that skips the edge. Ternaries on edges out of dirty rows are not
// audited.
// Without the reachability cache there is nothing to audit.
func (d *Graph) IsInternallyConsistent() bool {
	if d.h == nil {
		return true
	}
	for v := VertexID(0); v < d.g.Capacity(); v++ {
		if !d.g.Exists(v) {
			continue
		}
		reach := d.outgoingReachIncludingSelf(v)
		closure := d.transitiveClosureIncludingSelf(v)

		// No false negatives, clean or dirty.
		for x := range closure {
			if _, ok := reach[x]; !ok {
				return false
			}
		}

		if mustKind(d.h, v) == kindDirty {
			continue
		}

		// Clean rows admit no false positives either.
		if len(reach) != len(closure) {
			return false
		}

		if d.opt.reachWithoutLink {
			for _, w := range mustOutgoing(d.g, v) {
				skip := [2]VertexID{v, w}
				without := d.dfsReach(v, w, &skip)
				switch d.edgeSlot(v, w) {
				case reachableWithoutEdge:
					if !without {
						return false
					}
				case notReachableWithoutEdge:
					if without {
						return false
					}
				default:
					return false
				}
			}
		}
	}

	return true
}
