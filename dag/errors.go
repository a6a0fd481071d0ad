package dag

import "errors"

var (
	// ErrCycle is returned by SetEdge when the insertion would close a
	// cycle; the graph is left unchanged.
	ErrCycle = errors.New("dag: edge insertion would close a cycle")

	// ErrOptionConflict is returned by New for option combinations that
	// cannot work together, such as WithUserTristate alongside
	// WithoutReachabilityCache.
	ErrOptionConflict = errors.New("dag: conflicting options")

	// ErrTristateUnavailable is returned by EdgeTristate and
	// SetEdgeTristate unless the graph was built WithUserTristate.
	ErrTristateUnavailable = errors.New("dag: per-edge tristate not enabled")

	// ErrEdgeAbsent is returned by the tristate accessors when no physical
	// edge u→v exists to carry the value.
	ErrEdgeAbsent = errors.New("dag: edge does not exist")

	// ErrBadTristate is returned by SetEdgeTristate for values above 2.
	ErrBadTristate = errors.New("dag: tristate value out of range")
)
