// Package polarization computes the Flache–Macy polarization measure: the
// variance of pairwise opinion distances around their mean, taken over all
// ordered non-self agent pairs.
//
// The measure is 0 at full consensus (every distance equals the mean) and
// grows as the distance distribution spreads, which is exactly what
// distinguishes a polarized two-camp state from both consensus and a
// uniform opinion cloud.
//
// Observability: the metric's lineage carried debug prints inside the
// computation; here they are an optional structured trace (WithTrace),
// off by default, emitting at slog Debug level.
package polarization

import (
	"errors"
	"log/slog"

	"github.com/katalvlaran/polarity/opinion"
)

// ErrEmptyNetwork indicates polarization was requested over fewer than two
// agents; pairwise distances are undefined there.
var ErrEmptyNetwork = errors.New("polarization: need at least two agents")

// minAgents is the smallest population with a defined pairwise distance.
const minAgents = 2

// config carries resolved options.
type config struct {
	trace *slog.Logger
}

// Option customizes a metric computation.
type Option func(*config)

// WithTrace attaches a structured trace logger. Per-pair distances and the
// expected distance are emitted at Debug level. Panics on nil: option
// constructors validate, the metric itself never panics.
func WithTrace(l *slog.Logger) Option {
	if l == nil {
		panic("polarization: WithTrace(nil)")
	}
	return func(c *config) { c.trace = l }
}

// Matrix returns the L×L pairwise distance matrix over the given opinion
// vectors, d[i][j] = (1/K)·Σ|o_i − o_j|. The diagonal is zero. Exposed so
// downstream consumers and tests can cross-check the metric against an
// independent computation.
//
// Complexity: O(L²·K).
//
// Errors:
//   - ErrEmptyNetwork               if fewer than two vectors are given.
//   - opinion.ErrDimensionMismatch  on ragged input.
func Matrix(vectors []opinion.Vector) ([][]float64, error) {
	l := len(vectors)
	if l < minAgents {
		return nil, ErrEmptyNetwork
	}

	d := make([][]float64, l)
	for i := range d {
		d[i] = make([]float64, l)
	}
	// Distance is symmetric; compute each unordered pair once and mirror.
	for i := 0; i < l; i++ {
		for j := i + 1; j < l; j++ {
			dist, err := opinion.Distance(vectors[i], vectors[j])
			if err != nil {
				return nil, err
			}
			d[i][j] = dist
			d[j][i] = dist
		}
	}
	return d, nil
}

// Polarization computes the variance of pairwise distances around their
// mean over all ordered non-self pairs:
//
//	d_expected = (Σ_{i≠j} d(i,j)) / (L(L−1))
//	P          = (1/(L(L−1))) · Σ_{i≠j} (d(i,j) − d_expected)²
//
// Ordered pairs double-count each unordered pair; this is intentional and
// consistent between both sums. Diagonal terms are excluded from both.
// The result is a nonnegative scalar, 0 when every pairwise distance
// equals the mean (full consensus being the obvious case).
//
// Complexity: O(L²·K).
//
// Errors: as Matrix.
func Polarization(vectors []opinion.Vector, opts ...Option) (float64, error) {
	var cfg config
	for _, opt := range opts {
		opt(&cfg)
	}

	d, err := Matrix(vectors)
	if err != nil {
		return 0, err
	}

	l := len(d)
	pairs := float64(l * (l - 1))

	var sum float64
	for i := 0; i < l; i++ {
		for j := 0; j < l; j++ {
			if i == j {
				continue
			}
			sum += d[i][j]
			if cfg.trace != nil {
				cfg.trace.Debug("pairwise distance", "i", i, "j", j, "d", d[i][j])
			}
		}
	}
	dExpected := sum / pairs
	if cfg.trace != nil {
		cfg.trace.Debug("expected distance", "d_expected", dExpected, "agents", l)
	}

	var variance float64
	for i := 0; i < l; i++ {
		for j := 0; j < l; j++ {
			if i == j {
				continue
			}
			dev := d[i][j] - dExpected
			variance += dev * dev
		}
	}
	return variance / pairs, nil
}
