// File: rewire.go
// Role: Stochastic rewiring primitives over the non-neighbor pool.
//
// Contract:
//   - RNG is always injected; nil is rejected with ErrNeedRand. No global
//     randomness anywhere, so independent runs stay independent and a
//     fixed seed reproduces the exact edge sequence.
//   - Every added edge leaves the pool exactly once; the pool/edge-set
//     partition holds after every call.
//   - AddRandomConnections iterates a stable snapshot of the pool, never
//     the live slice it is mutating — removing candidates mid-iteration
//     would otherwise skip or double-process pairs.

package core

import "math/rand"

// AddRandomConnection picks one pair uniformly at random from the
// non-neighbor pool, connects it, and returns the new edge.
//
// Complexity: O(1).
//
// Errors:
//   - ErrNeedRand      if rng is nil.
//   - ErrEdgeExhausted if the pool is empty (the graph is complete).
func (g *Graph) AddRandomConnection(rng *rand.Rand) (Pair, error) {
	if rng == nil {
		return Pair{}, ErrNeedRand
	}
	if len(g.pool) == 0 {
		return Pair{}, ErrEdgeExhausted
	}
	p := g.pool[rng.Intn(len(g.pool))]
	g.connect(p)
	return p, nil
}

// AddRandomConnections runs one independent Bernoulli(prob) trial per pair
// still in the non-neighbor pool and connects every winner. This is the
// "rewire to probability p" operation: the expected number of added edges
// is prob * NonNeighborCount(), not a fixed-count sample.
//
// The trial order is the pool snapshot order, which is deterministic for a
// fixed build + seed history, so outcomes are reproducible per seed.
//
// Returns the number of edges added.
//
// Complexity: O(P) where P = NonNeighborCount() at call time.
//
// Errors:
//   - ErrProbability if prob is outside [0,1].
//   - ErrNeedRand    if rng is nil and 0 < prob < 1.
func (g *Graph) AddRandomConnections(rng *rand.Rand, prob float64) (int, error) {
	if prob < 0 || prob > 1 {
		return 0, ErrProbability
	}
	// prob==0 adds nothing and prob==1 adds everything; only true sampling
	// needs an RNG.
	if rng == nil && prob > 0 && prob < 1 {
		return 0, ErrNeedRand
	}
	if prob == 0 {
		return 0, nil
	}

	// Stable snapshot: the Bernoulli sweep must not observe its own
	// removals (see file contract).
	candidates := make([]Pair, len(g.pool))
	copy(candidates, g.pool)

	added := 0
	for _, p := range candidates {
		if prob < 1 && rng.Float64() >= prob {
			continue
		}
		g.connect(p)
		added++
	}
	return added, nil
}
