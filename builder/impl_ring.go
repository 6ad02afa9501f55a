// SPDX-License-Identifier: MIT
// Package: polarity/builder
//
// impl_ring.go - the circular-lattice factory (k-nearest-neighbor ring).
//
// Canonical model:
//   - n agents on a circle; agent i is tied to i±1, ..., i±k (mod n).
//   - The clustered-but-unclustered counterpart of the caveman graph:
//     randomizing its ties short-range yields the "random short-range"
//     condition of the small-worlds experiments.
//
// Contract:
//   - n ≥ 3, k ≥ 1, and 2k < n (else ErrConfiguration). The 2k < n bound
//     keeps the lattice simple: at 2k ≥ n the ring collapses into K_n
//     with duplicate pair emissions — callers wanting K_n use Complete.
//   - Deterministic: for i asc and offset j = 1..k, the pair
//     {i, (i+j) mod n} is emitted exactly once.
//
// Complexity:
//   - O(n·k) edge insertions.

package builder

import (
	"fmt"

	"github.com/katalvlaran/polarity/core"
)

const (
	methodRing      = "Ring"
	minRingNodes    = 3
	minRingNeighbor = 1
)

// Ring builds an n-agent circular lattice where each agent is connected
// to its k nearest neighbors on each side. The result is 2k-regular with
// exactly n·k edges.
func Ring(n, k int) (*core.Graph, error) {
	if n < minRingNodes {
		return nil, fmt.Errorf("%s: n=%d < min=%d: %w", methodRing, n, minRingNodes, ErrConfiguration)
	}
	if k < minRingNeighbor {
		return nil, fmt.Errorf("%s: k=%d < min=%d: %w", methodRing, k, minRingNeighbor, ErrConfiguration)
	}
	if 2*k >= n {
		return nil, fmt.Errorf("%s: 2k=%d must be < n=%d: %w", methodRing, 2*k, n, ErrConfiguration)
	}

	g, err := core.NewGraph(n)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodRing, err)
	}
	for i := 0; i < n; i++ {
		for j := 1; j <= k; j++ {
			if err = g.AddEdge(i, (i+j)%n); err != nil {
				return nil, fmt.Errorf("%s: AddEdge(%d,%d): %w", methodRing, i, (i+j)%n, err)
			}
		}
	}
	return g, nil
}
