// SPDX-License-Identifier: MIT
// Package: polarity/builder
//
// impl_caveman.go - the connected-component caveman factory.
//
// Canonical model (Flache & Macy 2011):
//   - nCaves disjoint cliques of nPerCave agents each.
//   - No inter-cave edges at build time; long-range ties are added later
//     by the rewiring engine, never here.
//
// Contract:
//   - nCaves ≥ 1 and nPerCave ≥ 1 (else ErrConfiguration).
//   - Agent indices are assigned cave-major: cave c owns the contiguous
//     block [c·nPerCave, (c+1)·nPerCave).
//   - Deterministic: no RNG, stable edge emission order (cave asc, then
//     pair lexicographic within the cave).
//
// Complexity:
//   - O(nCaves · nPerCave²) edge insertions.

package builder

import (
	"fmt"

	"github.com/katalvlaran/polarity/core"
)

// File-local constants (stable method tag, parameter minima).
const (
	methodCaveman = "Caveman"
	minCaves      = 1
	minPerCave    = 1
)

// Caveman builds nCaves fully-connected cliques of nPerCave agents each,
// pairwise disconnected. The resulting graph has nCaves·nPerCave agents
// and nCaves·C(nPerCave,2) edges.
func Caveman(nCaves, nPerCave int) (*core.Graph, error) {
	// Fail fast on domain violations; no partial graph is ever returned.
	if nCaves < minCaves {
		return nil, fmt.Errorf("%s: nCaves=%d < min=%d: %w", methodCaveman, nCaves, minCaves, ErrConfiguration)
	}
	if nPerCave < minPerCave {
		return nil, fmt.Errorf("%s: nPerCave=%d < min=%d: %w", methodCaveman, nPerCave, minPerCave, ErrConfiguration)
	}

	g, err := core.NewGraph(nCaves * nPerCave)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodCaveman, err)
	}

	// Wire each cave as a clique over its contiguous index block.
	for c := 0; c < nCaves; c++ {
		base := c * nPerCave
		for i := 0; i < nPerCave; i++ {
			for j := i + 1; j < nPerCave; j++ {
				if err = g.AddEdge(base+i, base+j); err != nil {
					return nil, fmt.Errorf("%s: AddEdge(%d,%d): %w", methodCaveman, base+i, base+j, err)
				}
			}
		}
	}
	return g, nil
}
