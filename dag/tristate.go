package dag

// EdgeTristate reads the per-edge ternary of the physical edge u→v.
// Available only on graphs built WithUserTristate; new edges start at 0.
func (d *Graph) EdgeTristate(u, v VertexID) (uint8, error) {
	if !d.opt.userTristate {
		return 0, ErrTristateUnavailable
	}
	has, err := d.g.EdgeExists(u, v)
	if err != nil {
		return 0, err
	}
	if !has {
		return 0, ErrEdgeAbsent
	}

	return d.edgeSlot(u, v), nil
}

// SetEdgeTristate writes the per-edge ternary of the physical edge u→v.
// Valid values are 0, 1 and 2. The value dies with the edge.
func (d *Graph) SetEdgeTristate(u, v VertexID, t uint8) error {
	d.audit()
	defer d.audit()

	if !d.opt.userTristate {
		return ErrTristateUnavailable
	}
	if t > 2 {
		return ErrBadTristate
	}
	has, err := d.g.EdgeExists(u, v)
	if err != nil {
		return err
	}
	if !has {
		return ErrEdgeAbsent
	}
	d.setEdgeSlot(u, v, t)

	return nil
}
