package oriented

// checkPair validates the endpoints shared by every edge operation.
func (g *Graph) checkPair(u, v VertexID) error {
	if u == v {
		return ErrSelfLoop
	}
	if !g.Exists(u) || !g.Exists(v) {
		return ErrVertexAbsent
	}

	return nil
}

// SetEdge orients the pair slot as u→v. It reports true when the edge
// was newly set and false when it was already present. Setting against
// an existing v→u returns ErrEdgeConflict and leaves the slot alone.
func (g *Graph) SetEdge(u, v VertexID) (bool, error) {
	if err := g.checkPair(u, v); err != nil {
		return false, err
	}
	s, l, forward := orient(u, v)
	i := pairIndex(s, l)
	switch g.slot(i) {
	case forward:
		return false, nil
	case pairNone:
		g.setSlot(i, forward)

		return true, nil
	default:
		return false, ErrEdgeConflict
	}
}

// ClearEdge removes the edge u→v if present, reporting whether it did.
// An existing v→u edge is left untouched.
func (g *Graph) ClearEdge(u, v VertexID) (bool, error) {
	if err := g.checkPair(u, v); err != nil {
		return false, err
	}
	s, l, forward := orient(u, v)
	i := pairIndex(s, l)
	if g.slot(i) != forward {
		return false, nil
	}
	g.setSlot(i, pairNone)

	return true, nil
}

// EdgeExists reports whether the edge u→v is present.
func (g *Graph) EdgeExists(u, v VertexID) (bool, error) {
	if err := g.checkPair(u, v); err != nil {
		return false, err
	}
	s, l, forward := orient(u, v)

	return g.slot(pairIndex(s, l)) == forward, nil
}

// HasLinkage reports both directions of the pair {u, v} from a single
// slot read: forward is u→v, reverse is v→u. At most one can be true.
func (g *Graph) HasLinkage(u, v VertexID) (forward, reverse bool, err error) {
	if err := g.checkPair(u, v); err != nil {
		return false, false, err
	}
	s, l, fwd := orient(u, v)
	d := g.slot(pairIndex(s, l))

	return d == fwd, d != pairNone && d != fwd, nil
}

// Outgoing returns the targets of v's outgoing edges in ascending order.
func (g *Graph) Outgoing(v VertexID) ([]VertexID, error) {
	if !g.Exists(v) {
		return nil, ErrVertexAbsent
	}
	var out []VertexID
	for s := VertexID(0); s < v; s++ {
		if g.slot(pairIndex(s, v)) == pairHighToLow {
			out = append(out, s)
		}
	}
	for l := v + 1; l < g.capacity; l++ {
		if g.slot(pairIndex(v, l)) == pairLowToHigh {
			out = append(out, l)
		}
	}

	return out, nil
}

// Incoming returns the sources of v's incoming edges in ascending order.
func (g *Graph) Incoming(v VertexID) ([]VertexID, error) {
	if !g.Exists(v) {
		return nil, ErrVertexAbsent
	}
	var in []VertexID
	for s := VertexID(0); s < v; s++ {
		if g.slot(pairIndex(s, v)) == pairLowToHigh {
			in = append(in, s)
		}
	}
	for l := v + 1; l < g.capacity; l++ {
		if g.slot(pairIndex(v, l)) == pairHighToLow {
			in = append(in, l)
		}
	}

	return in, nil
}

// Degree returns v's in- and out-degree in one pass over its pair slots.
func (g *Graph) Degree(v VertexID) (in, out int, err error) {
	if !g.Exists(v) {
		return 0, 0, ErrVertexAbsent
	}
	in, out = g.scanVertex(v, false)

	return in, out, nil
}
