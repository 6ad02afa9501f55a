// File: random.go
// Role: Stochastic opinion initialization and optional per-sweep noise.
//
// Contract:
//   - RNG is always injected (ErrNeedRand on nil); no global randomness.
//   - Scale is the S run parameter: components are drawn uniformly from
//     [-S, +S], so S = 1 spans the whole opinion space and small S starts
//     runs near consensus.

package opinion

import "math/rand"

// Random draws a fresh k-dimensional opinion vector with components
// uniform in [-scale, +scale].
//
// Errors:
//   - ErrDimension if k < 1.
//   - ErrScale     if scale is outside (0, 1].
//   - ErrNeedRand  if rng is nil.
func Random(rng *rand.Rand, k int, scale float64) (Vector, error) {
	if k < 1 {
		return nil, ErrDimension
	}
	if scale <= 0 || scale > 1 {
		return nil, ErrScale
	}
	if rng == nil {
		return nil, ErrNeedRand
	}

	v := make(Vector, k)
	for i := range v {
		v[i] = (2*rng.Float64() - 1) * scale
	}
	return v, nil
}

// AddNoise perturbs v in place with independent Gaussian noise of standard
// deviation level per dimension, clamping each component back into [-1,1].
// level == 0 is a no-op and requires no RNG.
//
// Errors:
//   - ErrNoiseLevel if level < 0.
//   - ErrNeedRand   if rng is nil and level > 0.
func AddNoise(rng *rand.Rand, v Vector, level float64) error {
	if level < 0 {
		return ErrNoiseLevel
	}
	if level == 0 {
		return nil
	}
	if rng == nil {
		return ErrNeedRand
	}

	for i := range v {
		v[i] = clamp(v[i] + rng.NormFloat64()*level)
	}
	return nil
}
