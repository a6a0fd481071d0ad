// Package oriented implements a dense oriented graph over a triangular
// array of ternary slots.
//
// Each unordered vertex pair {u, v} owns exactly one ternary slot, so an
// edge may point u→v or v→u but never both. A second ternary per vertex
// encodes existence plus a two-valued kind, which callers may use as a
// cheap per-vertex flag.
//
// Storage is a single packed digit array from package digits. For a
// graph with capacity N (the first invalid VertexID) the layout is the
// lower triangle of an N×N matrix, row by row:
//
//	row v: [ existence(v) | pair(v-1,v) | pair(v-2,v) | ... | pair(0,v) ]
//
// so the existence slot of v sits at index v·(v+1)/2 and the pair slot
// of s < ℓ at ℓ·(ℓ+1)/2 + (ℓ − s). Total cost is N·(N+1)/2 ternary
// digits, about N²/10 bytes at 40 ternary digits per 8-byte word.
//
// The graph imposes no acyclicity of its own; see package dag for the
// cycle-rejecting facade built on top of two oriented graphs.
package oriented
