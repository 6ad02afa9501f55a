// Package core defines the Graph type used by the polarity engine:
// an undirected simple graph over dense integer agent indices, maintained
// together with its complement edge set (the "non-neighbor pool") so that
// rewiring can draw candidate pairs without rescanning all C(n,2) pairs.
//
// A Graph is exclusively owned by one simulation run. There is no internal
// locking: independent runs hold independent graphs, and a single run is
// strictly sequential.
//
// This file declares Pair, Graph, the sentinel errors, and the NewGraph
// constructor. Query methods live in methods.go, rewiring primitives in
// rewire.go.
//
// Invariants maintained by every mutation:
//   - edges ∪ pool = all C(n,2) unordered pairs; edges ∩ pool = ∅;
//   - the edge set only grows — the model adds long-range connections,
//     it never prunes clustered ones;
//   - no self-loops, no parallel edges.
//
// Errors:
//
//	ErrGraphSize     - graph requested with fewer than one agent.
//	ErrIndexRange    - agent index outside [0, AgentCount).
//	ErrSelfLoop      - edge endpoints are the same agent.
//	ErrDuplicateEdge - edge already present.
//	ErrEdgeExhausted - rewiring requested on an empty non-neighbor pool.
//	ErrProbability   - probability outside the closed interval [0,1].
//	ErrNeedRand      - stochastic operation received a nil *rand.Rand.
package core

import "errors"

// Sentinel errors for core graph operations.
var (
	// ErrGraphSize indicates a graph was requested with fewer than one agent.
	ErrGraphSize = errors.New("core: graph needs at least one agent")

	// ErrIndexRange indicates an agent index outside [0, AgentCount).
	ErrIndexRange = errors.New("core: agent index out of range")

	// ErrSelfLoop indicates an edge whose endpoints are the same agent.
	ErrSelfLoop = errors.New("core: self-loop not allowed")

	// ErrDuplicateEdge indicates an attempt to add an edge that already exists.
	ErrDuplicateEdge = errors.New("core: edge already present")

	// ErrEdgeExhausted indicates rewiring was requested but every pair of
	// agents is already connected.
	ErrEdgeExhausted = errors.New("core: no non-neighbor pairs left to connect")

	// ErrProbability indicates a probability outside the closed interval [0,1].
	ErrProbability = errors.New("core: probability out of range")

	// ErrNeedRand indicates a stochastic operation received a nil *rand.Rand.
	ErrNeedRand = errors.New("core: rng is required")
)

// Pair is an unordered pair of distinct agent indices, normalized so that
// A < B. Two Pairs are equal iff they name the same unordered pair, which
// makes Pair usable as a map key for the edge set and the pool index.
type Pair struct {
	A, B int
}

// NewPair normalizes (u, v) into a Pair with A < B.
//
// Errors:
//   - ErrSelfLoop if u == v.
func NewPair(u, v int) (Pair, error) {
	if u == v {
		return Pair{}, ErrSelfLoop
	}
	if u > v {
		u, v = v, u
	}
	return Pair{A: u, B: v}, nil
}

// Graph is an undirected simple graph over agents 0..n-1 together with its
// complement edge set.
//
// adj mirrors edges for O(1) neighbor membership; pool and pIdx mirror each
// other so that a uniform draw and a removal are both O(1) (swap-remove).
type Graph struct {
	n     int                // number of agents (immutable after NewGraph)
	adj   []map[int]struct{} // adjacency sets, index = agent
	edges map[Pair]struct{}  // current edge set
	pool  []Pair             // non-neighbor pool (complement of edges)
	pIdx  map[Pair]int       // position of each pool member in pool
}

// NewGraph returns the edgeless graph over n agents. Every unordered pair
// starts in the non-neighbor pool, filled in lexicographic order so the
// initial pool layout is deterministic.
//
// Complexity: O(n²) time and space (the pool holds C(n,2) pairs).
//
// Errors:
//   - ErrGraphSize if n < 1.
func NewGraph(n int) (*Graph, error) {
	if n < 1 {
		return nil, ErrGraphSize
	}

	g := &Graph{
		n:     n,
		adj:   make([]map[int]struct{}, n),
		edges: make(map[Pair]struct{}),
		pool:  make([]Pair, 0, n*(n-1)/2),
		pIdx:  make(map[Pair]int, n*(n-1)/2),
	}
	for i := 0; i < n; i++ {
		g.adj[i] = make(map[int]struct{})
	}
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			p := Pair{A: i, B: j}
			g.pIdx[p] = len(g.pool)
			g.pool = append(g.pool, p)
		}
	}
	return g, nil
}
