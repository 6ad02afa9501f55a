// SPDX-License-Identifier: MIT
// Package: polarity/builder
//
// impl_complete.go - the complete-graph factory K_n.
//
// Contract:
//   - n ≥ 1 (else ErrConfiguration).
//   - Deterministic: pairs emitted in lexicographic order {i,j}, i<j.
//   - K_n has an empty non-neighbor pool, which makes it the canonical
//     fixture for exercising core.ErrEdgeExhausted.
//
// Complexity:
//   - O(n²) edge insertions.

package builder

import (
	"fmt"

	"github.com/katalvlaran/polarity/core"
)

const (
	methodComplete   = "Complete"
	minCompleteNodes = 1
)

// Complete builds the complete simple graph K_n: every pair of the n
// agents connected. Equivalent to Caveman(1, n).
func Complete(n int) (*core.Graph, error) {
	if n < minCompleteNodes {
		return nil, fmt.Errorf("%s: n=%d < min=%d: %w", methodComplete, n, minCompleteNodes, ErrConfiguration)
	}

	g, err := core.NewGraph(n)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodComplete, err)
	}
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if err = g.AddEdge(i, j); err != nil {
				return nil, fmt.Errorf("%s: AddEdge(%d,%d): %w", methodComplete, i, j, err)
			}
		}
	}
	return g, nil
}
