// Package acyclic is a compact, in-memory directed acyclic graph that
// rejects cycle-closing edges at insertion time and answers reachability
// queries from a cached transitive closure.
//
// 🚀 What is acyclic?
//
//	A small, allocation-conscious library built from three layers:
//		• digits/   — packed radix-r digit arrays (many digits per uint64 word)
//		• oriented/ — an oriented graph over a triangular ternary layout
//		• dag/      — the acyclic facade: cycle rejection + cached reachability
//
// ✨ Why choose acyclic?
//
//   - Dense storage – a graph over N vertices costs N·(N+1)/2 ternary
//     digits, about N²/10 bytes, with no per-vertex or per-edge allocations
//   - Cheap queries – CanReach and InsertionWouldCauseCycle read cached
//     closure rows instead of walking the graph
//   - Lazy maintenance – edge removal dirties affected rows; cleanup runs
//     only when a dirty row must answer true
//   - Pure Go – no cgo, stdlib-only library surface
//
// Quick ASCII example:
//
//	    0 ──▶ 1 ──▶ 2
//
//	g, _ := dag.New(3)
//	_ = g.CreateVertex(0) // likewise 1, 2
//	g.SetEdge(0, 1)
//	g.SetEdge(1, 2)
//	g.SetEdge(2, 0) // ⇒ dag.ErrCycle: 0 already reaches 2
//
// Dive into the subpackage docs for the storage layout, the closure
// maintenance rules, and the optional per-edge user ternary.
//
//	go get github.com/katalvlaran/acyclic
package acyclic
