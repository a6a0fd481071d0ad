package dag_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/acyclic/dag"
)

const benchVertices = 128

// buildLayeredDAG wires a random layered DAG so reachability queries
// have real depth to traverse.
func buildLayeredDAG(b *testing.B, opts ...dag.Option) *dag.Graph {
	b.Helper()
	g, err := dag.New(benchVertices, opts...)
	if err != nil {
		b.Fatalf("New: %v", err)
	}
	for v := dag.VertexID(0); v < benchVertices; v++ {
		if err := g.CreateVertex(v); err != nil {
			b.Fatalf("CreateVertex(%d): %v", v, err)
		}
	}
	rng := rand.New(rand.NewSource(1))
	for u := dag.VertexID(0); u < benchVertices; u++ {
		for k := 0; k < 4; k++ {
			v := u + 1 + dag.VertexID(rng.Intn(benchVertices))
			if v >= benchVertices {
				continue
			}
			if _, err := g.SetEdge(u, v); err != nil {
				b.Fatalf("SetEdge(%d,%d): %v", u, v, err)
			}
		}
	}

	return g
}

func benchmarkCanReach(b *testing.B, opts ...dag.Option) {
	g := buildLayeredDAG(b, opts...)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		u := dag.VertexID(i % benchVertices)
		v := dag.VertexID((i * 7) % benchVertices)
		_, _ = g.CanReach(u, v)
	}
}

func BenchmarkCanReach_Cached(b *testing.B) {
	benchmarkCanReach(b)
}

func BenchmarkCanReach_DFS(b *testing.B) {
	benchmarkCanReach(b, dag.WithoutReachabilityCache())
}

func BenchmarkSetClearEdge(b *testing.B) {
	g := buildLayeredDAG(b)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		u := dag.VertexID(i % (benchVertices - 1))
		_, _ = g.SetEdge(u, u+1)
		_, _ = g.ClearEdge(u, u+1)
	}
}

func BenchmarkInsertionWouldCauseCycle(b *testing.B) {
	g := buildLayeredDAG(b)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		u := dag.VertexID(i % benchVertices)
		v := dag.VertexID((i * 13) % benchVertices)
		if u == v {
			continue
		}
		_, _ = g.InsertionWouldCauseCycle(u, v)
	}
}
