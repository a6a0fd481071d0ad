package dag_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/acyclic/dag"
)

func TestScenario_DirectCycle(t *testing.T) {
	for _, combo := range optionCombos {
		t.Run(combo.name, func(t *testing.T) {
			g := newDAG(t, 2, 2, combo.opts...)

			isNew, err := g.SetEdge(0, 1)
			require.NoError(t, err)
			assert.True(t, isNew)

			_, err = g.SetEdge(1, 0)
			assert.ErrorIs(t, err, dag.ErrCycle)

			// The rejected insertion left nothing behind.
			has, err := g.EdgeExists(1, 0)
			require.NoError(t, err)
			assert.False(t, has)
			assert.True(t, g.IsInternallyConsistent())
		})
	}
}

func TestScenario_TransitiveCycle(t *testing.T) {
	for _, combo := range optionCombos {
		t.Run(combo.name, func(t *testing.T) {
			g := newDAG(t, 3, 3, combo.opts...)

			_, err := g.SetEdge(0, 1)
			require.NoError(t, err)
			_, err = g.SetEdge(1, 2)
			require.NoError(t, err)

			_, err = g.SetEdge(2, 0)
			assert.ErrorIs(t, err, dag.ErrCycle)
			assert.True(t, g.IsInternallyConsistent())
		})
	}
}

func TestScenario_DeletionUnblocksInsertion(t *testing.T) {
	for _, combo := range optionCombos {
		t.Run(combo.name, func(t *testing.T) {
			g := newDAG(t, 3, 3, combo.opts...)

			_, err := g.SetEdge(0, 1)
			require.NoError(t, err)
			_, err = g.SetEdge(1, 2)
			require.NoError(t, err)

			cleared, err := g.ClearEdge(1, 2)
			require.NoError(t, err)
			assert.True(t, cleared)

			isNew, err := g.SetEdge(2, 0)
			require.NoError(t, err)
			assert.True(t, isNew)
			assert.True(t, g.IsInternallyConsistent())
		})
	}
}

func TestScenario_DiamondRejectsBackEdge(t *testing.T) {
	for _, combo := range optionCombos {
		t.Run(combo.name, func(t *testing.T) {
			g := newDAG(t, 5, 5, combo.opts...)

			for _, e := range [][2]dag.VertexID{
				{0, 2}, {1, 2}, {1, 3}, {2, 3}, {4, 0}, {4, 3},
			} {
				_, err := g.SetEdge(e[0], e[1])
				require.NoError(t, err)
			}

			// 4 reaches 2 through 0, so 2→4 would close a cycle.
			_, err := g.SetEdge(2, 4)
			assert.ErrorIs(t, err, dag.ErrCycle)
			assert.True(t, g.IsInternallyConsistent())
		})
	}
}

func TestScenario_DirtyThenCleanRegression(t *testing.T) {
	for _, combo := range optionCombos {
		t.Run(combo.name, func(t *testing.T) {
			g := newDAG(t, 4, 4, combo.opts...)

			_, err := g.SetEdge(1, 2)
			require.NoError(t, err)
			cleared, err := g.ClearEdge(1, 2)
			require.NoError(t, err)
			require.True(t, cleared)

			for _, e := range [][2]dag.VertexID{{3, 1}, {0, 3}} {
				_, err = g.SetEdge(e[0], e[1])
				require.NoError(t, err)
			}

			// The removal left 1's old reach as a tolerated false
			// positive; it must not block 2→0.
			isNew, err := g.SetEdge(2, 0)
			require.NoError(t, err)
			assert.True(t, isNew)

			ok, err := g.CanReach(0, 2)
			require.NoError(t, err)
			assert.False(t, ok)

			// 0→3→1 is real, so 1→0 closes a cycle.
			_, err = g.SetEdge(1, 0)
			assert.ErrorIs(t, err, dag.ErrCycle)
			assert.True(t, g.IsInternallyConsistent())
		})
	}
}
