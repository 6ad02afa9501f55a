// File: update.go
// Role: Raw influence vector and the bounded-confidence update.
//
// Contract:
//   - Pure: inputs are read-only, the result is freshly allocated.
//   - |N| ≥ 1 required (ErrNoNeighbors otherwise).
//   - The shrink factors keep every component inside [-1,1] for weights
//     in the documented ranges and neighbor opinions in [-1,1]; a final
//     clamp enforces the bound against float rounding regardless.

package opinion

// opinion component bounds.
const (
	boundLo = -1.0
	boundHi = 1.0
)

// RawUpdate computes the raw influence vector for an agent with opinion
// self and the given neighbor opinions:
//
//	raw_i = (1/(2|N|)) · Σ_{n∈N} weight(self, o_n) · (o_n_i − self_i)
//
// Neighbor order does not change the result beyond float summation order;
// callers that need bit-reproducibility must present neighbors in a
// deterministic order (core.Neighbors already does).
//
// Complexity: O(|N|·K).
//
// Errors:
//   - ErrNoNeighbors       if neighbors is empty.
//   - ErrDimensionMismatch if any neighbor's length differs from self's.
func RawUpdate(self Vector, neighbors []Vector, nonnegative bool) (Vector, error) {
	if len(neighbors) == 0 {
		return nil, ErrNoNeighbors
	}

	raw := make(Vector, len(self))
	for _, nb := range neighbors {
		w, err := Weight(self, nb, nonnegative)
		if err != nil {
			return nil, err
		}
		for i := range raw {
			raw[i] += w * (nb[i] - self[i])
		}
	}

	factor := 1.0 / (2.0 * float64(len(neighbors)))
	for i := range raw {
		raw[i] *= factor
	}
	return raw, nil
}

// Update applies one bounded-confidence step and returns the new opinion
// vector. The saturation depends on opts.Variant:
//
//	sign-shrink (canonical):
//	  o_i > 0:  new_i = o_i + raw_i·(1 − o_i)
//	  o_i ≤ 0:  new_i = o_i + raw_i·(1 + o_i)
//	symmetric (lineage alternative):
//	  new_i = o_i + raw_i·(1 − o_i)
//
// Errors: as RawUpdate.
func Update(self Vector, neighbors []Vector, opts UpdateOptions) (Vector, error) {
	raw, err := RawUpdate(self, neighbors, opts.Nonnegative)
	if err != nil {
		return nil, err
	}

	out := make(Vector, len(self))
	for i, o := range self {
		shrink := 1 - o
		if opts.Variant == VariantSignShrink && o <= 0 {
			shrink = 1 + o
		}
		out[i] = clamp(o + raw[i]*shrink)
	}
	return out, nil
}

// clamp forces x into [-1,1].
func clamp(x float64) float64 {
	if x < boundLo {
		return boundLo
	}
	if x > boundHi {
		return boundHi
	}
	return x
}
