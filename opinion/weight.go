// File: weight.go
// Role: Pairwise agreement weight and mean absolute distance (model
//       equations 1 and 2).
//
// Ranges, for opinions in [-1,1]^K:
//   - Distance(o1,o2) ∈ [0, 2].
//   - Weight(o1,o2,false) ∈ [-1, 1]   (signed / repulsive influence).
//   - Weight(o1,o2,true)  ∈ [0, 1]    (normalization doubled).
//   - Weight(o, o, ·) == 1 exactly: zero distance is maximal agreement.

package opinion

import "math"

// normalization factors for the weight denominator f·K.
const (
	signedFactor      = 1.0
	nonnegativeFactor = 2.0
)

// Weight computes the connection weight between two agents' opinions:
//
//	weight = 1 − (Σ|o1_i − o2_i|) / (f·K)
//
// with f = 2 when nonnegative is requested (weight ∈ [0,1]) and f = 1
// otherwise (weight ∈ [-1,1], negative values meaning repulsion).
//
// Errors:
//   - ErrDimensionMismatch if the vectors differ in length.
//   - ErrDimension if the vectors are empty.
func Weight(o1, o2 Vector, nonnegative bool) (float64, error) {
	if len(o1) != len(o2) {
		return 0, ErrDimensionMismatch
	}
	if len(o1) == 0 {
		return 0, ErrDimension
	}

	var sum float64
	for i := range o1 {
		sum += math.Abs(o1[i] - o2[i])
	}

	f := signedFactor
	if nonnegative {
		f = nonnegativeFactor
	}
	return 1 - sum/(f*float64(len(o1))), nil
}

// Distance computes the mean absolute per-dimension difference:
//
//	d(o1, o2) = (1/K)·Σ|o1_i − o2_i|
//
// the pairwise distance the polarization metric is built on.
//
// Errors:
//   - ErrDimensionMismatch if the vectors differ in length.
//   - ErrDimension if the vectors are empty.
func Distance(o1, o2 Vector) (float64, error) {
	if len(o1) != len(o2) {
		return 0, ErrDimensionMismatch
	}
	if len(o1) == 0 {
		return 0, ErrDimension
	}

	var sum float64
	for i := range o1 {
		sum += math.Abs(o1[i] - o2[i])
	}
	return sum / float64(len(o1)), nil
}
