// Package builder_test contains functional tests for the topology
// factories, verifying agent/edge counts, intra- vs inter-cave structure,
// pool accounting against the rewiring engine, and parameter validation.
package builder_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/polarity/builder"
	"github.com/katalvlaran/polarity/core"
)

func TestCaveman_Structure(t *testing.T) {
	const nCaves, nPerCave = 4, 5
	g, err := builder.Caveman(nCaves, nPerCave)
	require.NoError(t, err)

	assert.Equal(t, nCaves*nPerCave, g.AgentCount())
	// Each cave is a clique: nCaves * C(nPerCave,2) edges.
	assert.Equal(t, nCaves*nPerCave*(nPerCave-1)/2, g.EdgeCount())

	// Intra-cave pairs connected, inter-cave pairs not.
	for u := 0; u < g.AgentCount(); u++ {
		for v := u + 1; v < g.AgentCount(); v++ {
			sameCave := u/nPerCave == v/nPerCave
			assert.Equal(t, sameCave, g.HasEdge(u, v), "edge %d-%d", u, v)
		}
	}

	// Every agent's degree equals its clique size minus one.
	for u := 0; u < g.AgentCount(); u++ {
		d, err := g.Degree(u)
		require.NoError(t, err)
		assert.Equal(t, nPerCave-1, d)
	}
}

// TestCaveman_PoolAccounting pins the reference numbers for the 4x5
// caveman graph: C(20,2) - 4*C(5,2) = 190 - 40 = 150 candidate pairs,
// and one uniform draw consumes exactly one of them.
func TestCaveman_PoolAccounting(t *testing.T) {
	g, err := builder.Caveman(4, 5)
	require.NoError(t, err)
	require.Equal(t, 150, g.NonNeighborCount())
	require.Equal(t, 40, g.EdgeCount())

	p, err := g.AddRandomConnection(rand.New(rand.NewSource(11)))
	require.NoError(t, err)
	assert.Equal(t, 149, g.NonNeighborCount())
	assert.Equal(t, 41, g.EdgeCount())
	assert.NotEqual(t, p.A, p.B, "no self edge")
	assert.NotEqual(t, p.A/5, p.B/5, "the draw can only pick a previously unconnected (inter-cave) pair")
}

func TestCaveman_Validation(t *testing.T) {
	for _, tc := range []struct{ caves, perCave int }{
		{0, 5}, {-1, 5}, {4, 0}, {4, -2},
	} {
		_, err := builder.Caveman(tc.caves, tc.perCave)
		assert.ErrorIs(t, err, builder.ErrConfiguration, "Caveman(%d,%d)", tc.caves, tc.perCave)
	}
}

func TestComplete_ExhaustsPool(t *testing.T) {
	g, err := builder.Complete(6)
	require.NoError(t, err)
	assert.Equal(t, 15, g.EdgeCount())
	assert.Zero(t, g.NonNeighborCount())

	_, err = g.AddRandomConnection(rand.New(rand.NewSource(1)))
	assert.ErrorIs(t, err, core.ErrEdgeExhausted)

	_, err = builder.Complete(0)
	assert.ErrorIs(t, err, builder.ErrConfiguration)
}

func TestRing_Structure(t *testing.T) {
	const n, k = 10, 2
	g, err := builder.Ring(n, k)
	require.NoError(t, err)

	assert.Equal(t, n, g.AgentCount())
	assert.Equal(t, n*k, g.EdgeCount())
	for i := 0; i < n; i++ {
		d, err := g.Degree(i)
		require.NoError(t, err)
		assert.Equal(t, 2*k, d, "ring must be 2k-regular")
		assert.True(t, g.HasEdge(i, (i+1)%n))
		assert.True(t, g.HasEdge(i, (i+2)%n))
		assert.False(t, g.HasEdge(i, (i+3)%n))
	}
}

func TestRing_Validation(t *testing.T) {
	for _, tc := range []struct{ n, k int }{
		{2, 1}, // too few agents
		{5, 0}, // no neighborhood
		{6, 3}, // 2k == n collapses the lattice
		{5, 4}, // 2k > n
	} {
		_, err := builder.Ring(tc.n, tc.k)
		assert.ErrorIs(t, err, builder.ErrConfiguration, "Ring(%d,%d)", tc.n, tc.k)
	}
}
