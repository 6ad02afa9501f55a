// Package opinion implements the agent state and the Flache–Macy opinion
// update rule: connection weight, pairwise distance, the raw influence
// vector, and the bounded-confidence update with its two historical
// variants.
//
// All functions here are pure: they read their inputs, allocate their
// outputs, and never touch package-level state. Randomness (initial
// opinion assignment, optional per-sweep noise) always comes through an
// injected *rand.Rand.
package opinion

import "errors"

// Sentinel errors for opinion-space operations.
var (
	// ErrDimensionMismatch indicates two opinion vectors of unequal length
	// were compared.
	ErrDimensionMismatch = errors.New("opinion: vectors have different dimensions")

	// ErrNoNeighbors indicates the update rule was invoked for an isolated
	// agent; the raw update is undefined for an empty neighbor set.
	ErrNoNeighbors = errors.New("opinion: agent has no neighbors")

	// ErrDimension indicates a requested opinion dimensionality K < 1.
	ErrDimension = errors.New("opinion: dimensionality must be at least 1")

	// ErrScale indicates an initial-magnitude scale outside (0, 1].
	ErrScale = errors.New("opinion: scale must be in (0, 1]")

	// ErrNoiseLevel indicates a negative noise standard deviation.
	ErrNoiseLevel = errors.New("opinion: noise level must be nonnegative")

	// ErrNeedRand indicates a stochastic operation received a nil *rand.Rand.
	ErrNeedRand = errors.New("opinion: rng is required")
)

// Vector is a K-dimensional opinion, each component in [-1, 1].
type Vector []float64

// Clone returns an independent copy of v.
func (v Vector) Clone() Vector {
	out := make(Vector, len(v))
	copy(out, v)
	return out
}

// Agent couples a stable index with its current opinion vector. Agents are
// created at network-build time and mutated in place by the simulation
// driver; they are never destroyed during a run.
type Agent struct {
	Index    int
	Opinions Vector
}

// Variant selects the bounded-confidence saturation applied on top of the
// raw influence vector. The two variants are distinct dynamical systems;
// results obtained under different variants are not comparable, so the
// driver records the variant in run metadata.
type Variant int

const (
	// VariantSignShrink is the canonical Flache–Macy nonlinearity: the raw
	// update is shrunk by (1 - o_i) for positive components and (1 + o_i)
	// for nonpositive ones, saturating toward the nearer bound.
	VariantSignShrink Variant = iota

	// VariantSymmetric is the simpler update found in the model's lineage:
	// every component is shrunk by (1 - o_i) regardless of sign. Kept as a
	// selectable, documented alternative.
	VariantSymmetric
)

// String returns the stable metadata key for the variant.
func (v Variant) String() string {
	switch v {
	case VariantSignShrink:
		return "sign-shrink"
	case VariantSymmetric:
		return "symmetric"
	default:
		return "unknown"
	}
}

// UpdateOptions configures the bounded-confidence update.
//
// Fields:
//   - Variant     — saturation variant (VariantSignShrink canonical).
//   - Nonnegative — restrict connection weights to [0, 1] by doubling the
//     distance normalization; false permits signed (repulsive) influence
//     with weights in [-1, 1].
type UpdateOptions struct {
	Variant     Variant
	Nonnegative bool
}

// DefaultUpdateOptions returns the canonical configuration: sign-dependent
// shrink with signed influence allowed.
func DefaultUpdateOptions() UpdateOptions {
	return UpdateOptions{Variant: VariantSignShrink, Nonnegative: false}
}
