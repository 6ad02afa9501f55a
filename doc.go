// Package polarity simulates opinion dynamics on social networks to study
// cultural polarization, implementing Flache & Macy's "caveman" model
// (Small Worlds and Cultural Polarization, J. Math. Sociology 35, 2011).
//
// 🚀 What is polarity?
//
//	A self-contained simulation engine that brings together:
//		• Topologies: connected caveman, complete, ring lattice
//		• Rewiring: random long-range ties over an exact non-neighbor pool
//		• Updates: weighted bounded-confidence rule, two saturation variants,
//		  asynchronous (Gauss–Seidel) or synchronous (Jacobi) sweeps
//		• Measurement: polarization as the variance of pairwise opinion distances
//
// ✨ Why choose polarity?
//
//   - Reproducible – every stochastic choice flows through one injected,
//     seeded RNG; identical seeds give bit-identical histories
//   - Parallel-trial safe – zero shared mutable state; instantiate as many
//     independent runs as you have cores
//   - Strict contracts – sentinel errors, validated options, no panics in
//     the engine
//
// Everything is organized under five packages:
//
//	core/         — graph + non-neighbor pool primitives and rewiring
//	builder/      — deterministic topology factories
//	opinion/      — agent state, weight/distance, the update rule
//	polarization/ — the distance-variance metric
//	sim/          — the run driver: build → rewire → run → history
//
// and one binary, cmd/polarity, which executes a single run from a YAML
// config and emits a JSON record for downstream analysis.
package polarity
