// File: methods.go
// Role: Query and mutation APIs for Graph (counts, neighbor lookup, AddEdge).
// Determinism:
//   - Neighbors() returns indices sorted ascending.
//   - Edges() returns pairs sorted lexicographically (A asc, then B asc).
// Concurrency:
//   - None: a Graph is exclusively owned by one run (see package doc).

package core

import "sort"

// AgentCount returns the number of agents (nodes) in the graph.
func (g *Graph) AgentCount() int { return g.n }

// EdgeCount returns the number of edges currently present.
func (g *Graph) EdgeCount() int { return len(g.edges) }

// NonNeighborCount returns the number of unordered pairs not yet connected.
// NonNeighborCount() + EdgeCount() == C(AgentCount, 2) at all times.
func (g *Graph) NonNeighborCount() int { return len(g.pool) }

// HasEdge reports whether agents u and v are connected. Out-of-range or
// equal indices report false rather than erroring: membership queries are
// total by design of the simple-graph model (a self-pair is never an edge).
func (g *Graph) HasEdge(u, v int) bool {
	if u == v || u < 0 || v < 0 || u >= g.n || v >= g.n {
		return false
	}
	_, ok := g.adj[u][v]
	return ok
}

// Degree returns the number of neighbors of agent u.
//
// Errors:
//   - ErrIndexRange if u is outside [0, AgentCount).
func (g *Graph) Degree(u int) (int, error) {
	if u < 0 || u >= g.n {
		return 0, ErrIndexRange
	}
	return len(g.adj[u]), nil
}

// Neighbors returns the agent indices adjacent to u, sorted ascending.
// The slice is freshly allocated; callers may keep or mutate it.
//
// Deterministic order is part of the contract: the update sweep reads
// neighbor opinions in this order, and reproducible runs depend on it.
//
// Complexity: O(d log d) where d = Degree(u).
//
// Errors:
//   - ErrIndexRange if u is outside [0, AgentCount).
func (g *Graph) Neighbors(u int) ([]int, error) {
	if u < 0 || u >= g.n {
		return nil, ErrIndexRange
	}
	out := make([]int, 0, len(g.adj[u]))
	for v := range g.adj[u] {
		out = append(out, v)
	}
	sort.Ints(out)
	return out, nil
}

// Edges returns a copy of the current edge set, sorted lexicographically.
//
// Complexity: O(E log E).
func (g *Graph) Edges() []Pair {
	out := make([]Pair, 0, len(g.edges))
	for p := range g.edges {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].A != out[j].A {
			return out[i].A < out[j].A
		}
		return out[i].B < out[j].B
	})
	return out
}

// AddEdge connects agents u and v and removes the pair from the
// non-neighbor pool. The edge set only grows; there is no RemoveEdge.
//
// Errors:
//   - ErrIndexRange    if either index is outside [0, AgentCount).
//   - ErrSelfLoop      if u == v.
//   - ErrDuplicateEdge if the edge is already present.
func (g *Graph) AddEdge(u, v int) error {
	if u < 0 || v < 0 || u >= g.n || v >= g.n {
		return ErrIndexRange
	}
	p, err := NewPair(u, v)
	if err != nil {
		return err
	}
	if _, dup := g.edges[p]; dup {
		return ErrDuplicateEdge
	}
	g.connect(p)
	return nil
}

// connect commits a validated pair: inserts it into the edge set and the
// adjacency mirror, and evicts it from the pool. Callers guarantee p is
// normalized, in range, and not yet an edge.
func (g *Graph) connect(p Pair) {
	g.edges[p] = struct{}{}
	g.adj[p.A][p.B] = struct{}{}
	g.adj[p.B][p.A] = struct{}{}
	g.removeFromPool(p)
}

// removeFromPool evicts p from the pool via swap-remove, keeping pIdx
// consistent. No-op when p was already consumed (NewGraph seeds the pool
// with every pair exactly once, so this happens only for callers that
// validated against the edge set first).
func (g *Graph) removeFromPool(p Pair) {
	i, ok := g.pIdx[p]
	if !ok {
		return
	}
	last := len(g.pool) - 1
	moved := g.pool[last]
	g.pool[i] = moved
	g.pIdx[moved] = i
	g.pool = g.pool[:last]
	delete(g.pIdx, p)
}
