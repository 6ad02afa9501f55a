// SPDX-License-Identifier: MIT
// Package: polarity/builder
//
// Package builder constructs the initial network topologies of the
// Flache–Macy caveman model over core.Graph:
//
//   - Caveman(nCaves, nPerCave) — disjoint fully-connected cliques
//     ("caves"), the clustered starting point of the model.
//   - Ring(n, k) — circular lattice, each agent tied to its k nearest
//     neighbors per side; the substrate of short-range-randomized runs.
//   - Complete(n) — K_n, the degenerate single-cave case (also the
//     fixture that exhausts the rewiring pool in tests).
//
// All factories are deterministic: topology construction involves no
// randomness. Randomness enters the model only through rewiring
// (core.AddRandomConnection*) and initial opinion assignment (opinion
// package), both of which take an injected *rand.Rand.
//
// Every factory validates its parameters first and returns only sentinel
// errors (branch with errors.Is); none of them panics.
package builder
