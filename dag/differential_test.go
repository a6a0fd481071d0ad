package dag_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/acyclic/dag"
)

// newRNG returns a deterministic source so failures reproduce exactly.
func newRNG(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}

// modelDAG is the reference implementation: adjacency maps and DFS, no
// sidestructure, no cleverness.
type modelDAG struct {
	exists map[dag.VertexID]bool
	adj    map[dag.VertexID]map[dag.VertexID]bool
}

func newModelDAG(n int) *modelDAG {
	m := &modelDAG{
		exists: make(map[dag.VertexID]bool),
		adj:    make(map[dag.VertexID]map[dag.VertexID]bool),
	}
	for v := 0; v < n; v++ {
		m.exists[dag.VertexID(v)] = true
		m.adj[dag.VertexID(v)] = make(map[dag.VertexID]bool)
	}

	return m
}

func (m *modelDAG) reach(u, v dag.VertexID) bool {
	if u == v {
		return true
	}
	visited := map[dag.VertexID]bool{u: true}
	stack := []dag.VertexID{u}
	for len(stack) > 0 {
		a := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for w := range m.adj[a] {
			if w == v {
				return true
			}
			if !visited[w] {
				visited[w] = true
				stack = append(stack, w)
			}
		}
	}

	return false
}

// setEdge mirrors dag.SetEdge: rejects exactly when v already reaches u
// (which covers self-edges and reversed pairs).
func (m *modelDAG) setEdge(u, v dag.VertexID) (isNew, cycle bool) {
	if m.reach(v, u) {
		return false, true
	}
	if m.adj[u][v] {
		return false, false
	}
	m.adj[u][v] = true

	return true, false
}

func (m *modelDAG) clearEdge(u, v dag.VertexID) bool {
	if !m.adj[u][v] {
		return false
	}
	delete(m.adj[u], v)

	return true
}

func (m *modelDAG) destroyVertex(v dag.VertexID) {
	delete(m.adj, v)
	delete(m.exists, v)
	for _, targets := range m.adj {
		delete(targets, v)
	}
}

func (m *modelDAG) createVertex(v dag.VertexID) {
	m.exists[v] = true
	m.adj[v] = make(map[dag.VertexID]bool)
}

// compareAll checks every ordered pair for edge presence and
// reachability agreement.
func compareAll(t *testing.T, step int, g *dag.Graph, m *modelDAG, n int) {
	t.Helper()
	for u := 0; u < n; u++ {
		for v := 0; v < n; v++ {
			uu, vv := dag.VertexID(u), dag.VertexID(v)
			if !m.exists[uu] || !m.exists[vv] {
				continue
			}
			got, err := g.CanReach(uu, vv)
			require.NoErrorf(t, err, "step %d: CanReach(%d,%d)", step, u, v)
			require.Equalf(t, m.reach(uu, vv), got, "step %d: CanReach(%d,%d)", step, u, v)

			if u == v {
				continue
			}
			has, err := g.EdgeExists(uu, vv)
			require.NoErrorf(t, err, "step %d: EdgeExists(%d,%d)", step, u, v)
			require.Equalf(t, m.adj[uu][vv], has, "step %d: EdgeExists(%d,%d)", step, u, v)
		}
	}
}

// TestDifferential_RandomEdgeChurn drives random insertions, removals
// and queries against the DFS model for every option combination.
func TestDifferential_RandomEdgeChurn(t *testing.T) {
	const (
		n     = 12
		steps = 600
	)
	for ci, combo := range optionCombos {
		t.Run(combo.name, func(t *testing.T) {
			rng := newRNG(int64(7000 + ci))
			g := newDAG(t, n, n, combo.opts...)
			m := newModelDAG(n)

			for step := 0; step < steps; step++ {
				u := dag.VertexID(rng.Intn(n))
				v := dag.VertexID(rng.Intn(n))
				switch r := rng.Intn(100); {
				case r < 45:
					wantNew, wantCycle := m.setEdge(u, v)
					isNew, err := g.SetEdge(u, v)
					if wantCycle {
						require.ErrorIsf(t, err, dag.ErrCycle, "step %d: SetEdge(%d,%d)", step, u, v)
					} else {
						require.NoErrorf(t, err, "step %d: SetEdge(%d,%d)", step, u, v)
						require.Equalf(t, wantNew, isNew, "step %d: SetEdge(%d,%d)", step, u, v)
					}
				case r < 75:
					want := m.clearEdge(u, v)
					got, err := g.ClearEdge(u, v)
					if u == v {
						// The facade reports self-pairs as errors; the
						// model simply has no such edge.
						require.Error(t, err)
						require.False(t, want)
					} else {
						require.NoErrorf(t, err, "step %d: ClearEdge(%d,%d)", step, u, v)
						require.Equalf(t, want, got, "step %d: ClearEdge(%d,%d)", step, u, v)
					}
				default:
					got, err := g.CanReach(u, v)
					require.NoErrorf(t, err, "step %d: CanReach(%d,%d)", step, u, v)
					require.Equalf(t, m.reach(u, v), got, "step %d: CanReach(%d,%d)", step, u, v)
				}

				require.Truef(t, g.IsInternallyConsistent(), "step %d: inconsistent sidestructure", step)
				if step%50 == 0 {
					compareAll(t, step, g, m, n)
				}
			}
			compareAll(t, steps, g, m, n)
		})
	}
}

// TestDifferential_VertexChurn mixes vertex destruction and recreation
// into the schedule. Compaction is skipped so IDs stay comparable.
func TestDifferential_VertexChurn(t *testing.T) {
	const (
		n     = 10
		steps = 400
	)
	for ci, combo := range optionCombos {
		t.Run(combo.name, func(t *testing.T) {
			rng := newRNG(int64(9000 + ci))
			g := newDAG(t, n, n, combo.opts...)
			m := newModelDAG(n)

			for step := 0; step < steps; step++ {
				u := dag.VertexID(rng.Intn(n))
				v := dag.VertexID(rng.Intn(n))
				switch r := rng.Intn(100); {
				case r < 40:
					if !m.exists[u] || !m.exists[v] {
						_, err := g.SetEdge(u, v)
						require.Error(t, err)
						break
					}
					wantNew, wantCycle := m.setEdge(u, v)
					isNew, err := g.SetEdge(u, v)
					if wantCycle {
						require.ErrorIsf(t, err, dag.ErrCycle, "step %d: SetEdge(%d,%d)", step, u, v)
					} else {
						require.NoErrorf(t, err, "step %d: SetEdge(%d,%d)", step, u, v)
						require.Equal(t, wantNew, isNew)
					}
				case r < 60:
					if u == v || !m.exists[u] || !m.exists[v] {
						_, err := g.ClearEdge(u, v)
						require.Error(t, err)
						break
					}
					want := m.clearEdge(u, v)
					got, err := g.ClearEdge(u, v)
					require.NoErrorf(t, err, "step %d: ClearEdge(%d,%d)", step, u, v)
					require.Equal(t, want, got)
				case r < 72:
					err := g.DestroyVertexDontCompact(u)
					if !m.exists[u] {
						require.Error(t, err)
						break
					}
					require.NoErrorf(t, err, "step %d: DestroyVertex(%d)", step, u)
					m.destroyVertex(u)
				case r < 84:
					err := g.CreateVertex(u)
					if m.exists[u] {
						require.Error(t, err)
						break
					}
					require.NoErrorf(t, err, "step %d: CreateVertex(%d)", step, u)
					m.createVertex(u)
				default:
					if !m.exists[u] || !m.exists[v] {
						_, err := g.CanReach(u, v)
						require.Error(t, err)
						break
					}
					got, err := g.CanReach(u, v)
					require.NoError(t, err)
					require.Equalf(t, m.reach(u, v), got, "step %d: CanReach(%d,%d)", step, u, v)
				}

				require.Truef(t, g.IsInternallyConsistent(), "step %d: inconsistent sidestructure", step)
				if step%40 == 0 {
					compareAll(t, step, g, m, n)
				}
			}
			compareAll(t, steps, g, m, n)
		})
	}
}

// TestDifferential_WithConsistencyCheck runs a shorter churn with the
// self-auditing option armed; any closure defect panics inside the
// library instead of surfacing as a wrong answer later.
func TestDifferential_WithConsistencyCheck(t *testing.T) {
	const (
		n     = 8
		steps = 200
	)
	rng := newRNG(31)
	g := newDAG(t, n, n, dag.WithConsistencyCheck())
	m := newModelDAG(n)

	for step := 0; step < steps; step++ {
		u := dag.VertexID(rng.Intn(n))
		v := dag.VertexID(rng.Intn(n))
		if rng.Intn(100) < 60 {
			_, wantCycle := m.setEdge(u, v)
			_, err := g.SetEdge(u, v)
			if wantCycle {
				require.ErrorIs(t, err, dag.ErrCycle)
			} else {
				require.NoError(t, err)
			}
		} else if u != v {
			want := m.clearEdge(u, v)
			got, err := g.ClearEdge(u, v)
			require.NoError(t, err)
			require.Equal(t, want, got)
		}
	}
	compareAll(t, steps, g, m, n)
}
