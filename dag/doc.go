// Package dag maintains a directed acyclic graph that rejects any edge
// insertion which would close a cycle.
//
// The facade keeps two oriented graphs in lockstep. The physical graph
// holds the edges callers insert. The canreach sidestructure holds, per
// vertex, a cached over-approximation of the transitive closure, which
// lets CanReach and InsertionWouldCauseCycle answer from slot reads
// instead of graph walks.
//
// Closure rows are kept lazily. A row is either clean (exactly the
// transitive closure) or dirty (may contain false positives but never
// false negatives). Edge removal dirties the affected rows; a dirty row
// is repaired only when it must answer a positive reachability query.
//
// Pair slots in the sidestructure do double duty. When a physical edge
// u→v exists, the {u, v} slot in the sidestructure is free, and the
// facade uses it as a per-edge ternary: by default it records whether v
// was reachable from u without the edge, which lets ClearEdge keep the
// closure clean in the common case. With WithUserTristate the slot is
// handed to the caller instead via EdgeTristate and SetEdgeTristate.
//
// Construction is configured with functional options:
//
//	g, err := dag.New(1024)                          // cached closure, edge ternary
//	g, err := dag.New(1024, dag.WithUserTristate())  // caller owns the edge ternary
//	g, err := dag.New(1024, dag.WithoutReachabilityCache()) // DFS per query
//
// Graph is not safe for concurrent use.
package dag
