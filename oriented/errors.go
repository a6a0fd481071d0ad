package oriented

import "errors"

var (
	// ErrVertexExists is returned when creating a vertex that is already present.
	ErrVertexExists = errors.New("oriented: vertex already exists")

	// ErrVertexAbsent is returned when an operation names a vertex that does
	// not exist (including IDs at or beyond the current capacity).
	ErrVertexAbsent = errors.New("oriented: vertex does not exist")

	// ErrSelfLoop is returned by edge operations called with u == v; a pair
	// slot exists only for distinct vertices.
	ErrSelfLoop = errors.New("oriented: self-loops are not representable")

	// ErrEdgeConflict is returned by SetEdge when the opposite direction is
	// already present in the shared pair slot.
	ErrEdgeConflict = errors.New("oriented: opposite edge already present")

	// ErrBadCapacity is returned by capacity changes whose precondition fails
	// and by CreateVertex for IDs at or beyond the current capacity.
	ErrBadCapacity = errors.New("oriented: capacity out of range")

	// ErrBadKind is returned when a VertexKind is neither KindOne nor KindTwo.
	ErrBadKind = errors.New("oriented: invalid vertex kind")

	// ErrHasIncoming is returned by DestroySourceVertex and
	// DestroyIsolatedVertex when the vertex still has incoming edges.
	ErrHasIncoming = errors.New("oriented: vertex has incoming edges")

	// ErrHasOutgoing is returned by DestroySinkVertex and
	// DestroyIsolatedVertex when the vertex still has outgoing edges.
	ErrHasOutgoing = errors.New("oriented: vertex has outgoing edges")
)
