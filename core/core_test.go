// Package core_test verifies the Graph container: constructor validation,
// edge insertion, the pool/edge-set partition invariant, and the rewiring
// primitives (uniform draw and Bernoulli sweep).
package core_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/polarity/core"
)

// totalPairs returns C(n,2).
func totalPairs(n int) int { return n * (n - 1) / 2 }

// requirePartition asserts the fundamental invariant: pool and edge set
// partition the complete set of unordered pairs.
func requirePartition(t *testing.T, g *core.Graph) {
	t.Helper()
	require.Equal(t, totalPairs(g.AgentCount()), g.EdgeCount()+g.NonNeighborCount(),
		"edges + pool must cover all unordered pairs")
	for _, e := range g.Edges() {
		require.True(t, g.HasEdge(e.A, e.B))
	}
}

func TestNewGraph_Validation(t *testing.T) {
	_, err := core.NewGraph(0)
	assert.ErrorIs(t, err, core.ErrGraphSize, "zero agents must be rejected")

	_, err = core.NewGraph(-3)
	assert.ErrorIs(t, err, core.ErrGraphSize, "negative agent count must be rejected")

	g, err := core.NewGraph(1)
	require.NoError(t, err)
	assert.Equal(t, 1, g.AgentCount())
	assert.Equal(t, 0, g.NonNeighborCount(), "a single agent has no candidate pairs")
}

func TestNewPair_Normalization(t *testing.T) {
	p, err := core.NewPair(7, 2)
	require.NoError(t, err)
	assert.Equal(t, core.Pair{A: 2, B: 7}, p, "pairs normalize to A < B")

	_, err = core.NewPair(3, 3)
	assert.ErrorIs(t, err, core.ErrSelfLoop)
}

func TestAddEdge_Contract(t *testing.T) {
	g, err := core.NewGraph(4)
	require.NoError(t, err)
	require.Equal(t, totalPairs(4), g.NonNeighborCount())

	require.NoError(t, g.AddEdge(0, 1))
	assert.True(t, g.HasEdge(0, 1))
	assert.True(t, g.HasEdge(1, 0), "edges are undirected")
	assert.Equal(t, 1, g.EdgeCount())
	assert.Equal(t, totalPairs(4)-1, g.NonNeighborCount(), "pool shrinks by exactly one")

	assert.ErrorIs(t, g.AddEdge(1, 0), core.ErrDuplicateEdge, "reversed duplicate must be rejected")
	assert.ErrorIs(t, g.AddEdge(2, 2), core.ErrSelfLoop)
	assert.ErrorIs(t, g.AddEdge(0, 4), core.ErrIndexRange)
	assert.ErrorIs(t, g.AddEdge(-1, 2), core.ErrIndexRange)

	requirePartition(t, g)
}

func TestNeighbors_SortedAndCopied(t *testing.T) {
	g, err := core.NewGraph(5)
	require.NoError(t, err)
	for _, v := range []int{3, 1, 4} {
		require.NoError(t, g.AddEdge(2, v))
	}

	ns, err := g.Neighbors(2)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 3, 4}, ns, "neighbors must come back sorted ascending")

	// Mutating the returned slice must not touch graph state.
	ns[0] = 99
	again, err := g.Neighbors(2)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 3, 4}, again)

	_, err = g.Neighbors(5)
	assert.ErrorIs(t, err, core.ErrIndexRange)

	d, err := g.Degree(2)
	require.NoError(t, err)
	assert.Equal(t, 3, d)
}

func TestAddRandomConnection_DrawsFromPool(t *testing.T) {
	g, err := core.NewGraph(6)
	require.NoError(t, err)
	rng := rand.New(rand.NewSource(42))

	before := g.NonNeighborCount()
	p, err := g.AddRandomConnection(rng)
	require.NoError(t, err)
	assert.True(t, g.HasEdge(p.A, p.B))
	assert.Less(t, p.A, p.B, "returned pair is normalized")
	assert.Equal(t, before-1, g.NonNeighborCount())
	assert.Equal(t, 1, g.EdgeCount())
	requirePartition(t, g)

	_, err = g.AddRandomConnection(nil)
	assert.ErrorIs(t, err, core.ErrNeedRand)
}

func TestAddRandomConnection_Exhaustion(t *testing.T) {
	g, err := core.NewGraph(4)
	require.NoError(t, err)
	rng := rand.New(rand.NewSource(1))

	// Drain the pool completely: the graph becomes K_4.
	for i := 0; i < totalPairs(4); i++ {
		_, err = g.AddRandomConnection(rng)
		require.NoError(t, err)
	}
	assert.Equal(t, totalPairs(4), g.EdgeCount())
	assert.Equal(t, 0, g.NonNeighborCount())

	_, err = g.AddRandomConnection(rng)
	assert.ErrorIs(t, err, core.ErrEdgeExhausted, "empty pool must surface ErrEdgeExhausted")
}

func TestAddRandomConnections_BernoulliSweep(t *testing.T) {
	t.Run("p=0 adds nothing, rng optional", func(t *testing.T) {
		g, err := core.NewGraph(5)
		require.NoError(t, err)
		added, err := g.AddRandomConnections(nil, 0)
		require.NoError(t, err)
		assert.Zero(t, added)
		assert.Zero(t, g.EdgeCount())
	})

	t.Run("p=1 connects every remaining pair exactly once", func(t *testing.T) {
		g, err := core.NewGraph(5)
		require.NoError(t, err)
		require.NoError(t, g.AddEdge(0, 1)) // already-connected pair is no longer a candidate

		added, err := g.AddRandomConnections(nil, 1)
		require.NoError(t, err)
		assert.Equal(t, totalPairs(5)-1, added)
		assert.Equal(t, totalPairs(5), g.EdgeCount())
		assert.Zero(t, g.NonNeighborCount())
		requirePartition(t, g)
	})

	t.Run("rng required for true sampling", func(t *testing.T) {
		g, err := core.NewGraph(5)
		require.NoError(t, err)
		_, err = g.AddRandomConnections(nil, 0.5)
		assert.ErrorIs(t, err, core.ErrNeedRand)
	})

	t.Run("probability domain", func(t *testing.T) {
		g, err := core.NewGraph(5)
		require.NoError(t, err)
		rng := rand.New(rand.NewSource(9))
		_, err = g.AddRandomConnections(rng, -0.1)
		assert.ErrorIs(t, err, core.ErrProbability)
		_, err = g.AddRandomConnections(rng, 1.1)
		assert.ErrorIs(t, err, core.ErrProbability)
	})

	t.Run("deterministic per seed", func(t *testing.T) {
		run := func(seed int64) []core.Pair {
			g, err := core.NewGraph(12)
			require.NoError(t, err)
			_, err = g.AddRandomConnections(rand.New(rand.NewSource(seed)), 0.3)
			require.NoError(t, err)
			return g.Edges()
		}
		assert.Equal(t, run(7), run(7), "same seed must yield the same edge set")
	})
}
