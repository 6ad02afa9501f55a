// File: history.go
// Role: Snapshot history, run metadata, and on-demand polarization.
//
// The history is the engine's output contract: iterations × agents × K,
// indexable by snapshot, plus queryable key/value metadata. Storage
// formats, cross-trial aggregation, and plotting are downstream concerns
// of an external consumer.

package sim

import (
	"fmt"

	"github.com/katalvlaran/polarity/opinion"
	"github.com/katalvlaran/polarity/polarization"
)

// Snapshot is the full opinion state after a given sweep. Iteration 0 is
// the pre-run state. Snapshots are deep copies, immutable once captured;
// callers must not mutate the vectors they expose.
type Snapshot struct {
	// Iteration is the sweep index this state was recorded after.
	Iteration int `json:"iteration"`
	// Opinions holds one K-dimensional vector per agent, agent index
	// aligned with the graph's.
	Opinions []opinion.Vector `json:"opinions"`
}

// record appends a deep copy of the current agent state to the history.
func (s *Sim) record(iteration int) {
	ops := make([]opinion.Vector, len(s.agents))
	for i, v := range s.agents {
		ops[i] = v.Clone()
	}
	s.history = append(s.history, Snapshot{Iteration: iteration, Opinions: ops})
}

// History returns the recorded snapshots in order. The returned slice is
// shared with the Sim; treat it as read-only.
func (s *Sim) History() []Snapshot { return s.history }

// Metadata returns the run parameters as queryable key/value pairs, the
// attribute set downstream analysis matches runs by.
func (s *Sim) Metadata() map[string]any {
	return map[string]any{
		"topology":           s.opts.Topology.String(),
		"k":                  s.opts.K,
		"s":                  s.opts.Scale,
		"noise_level":        s.opts.NoiseLevel,
		"rewire_probability": s.opts.RewireProbability,
		"rewire_count":       s.opts.RewireCount,
		"iterations":         s.opts.Iterations,
		"sample_interval":    s.opts.SampleInterval,
		"ordering":           s.opts.Ordering.String(),
		"variant":            s.opts.Variant.String(),
		"nonnegative":        s.opts.Nonnegative,
		"seed":               s.opts.Seed,
		"agents":             s.AgentCount(),
	}
}

// PolarizationOf computes the metric over one snapshot. Computed on
// demand, never cached.
//
// Errors:
//   - polarization.ErrEmptyNetwork for snapshots of fewer than two agents.
func (s *Sim) PolarizationOf(snap Snapshot) (float64, error) {
	return polarization.Polarization(snap.Opinions)
}

// FinalPolarization computes the metric over the most recent snapshot.
//
// Errors:
//   - ErrNoHistory if Run has not recorded anything yet.
func (s *Sim) FinalPolarization() (float64, error) {
	if len(s.history) == 0 {
		return 0, ErrNoHistory
	}
	return s.PolarizationOf(s.history[len(s.history)-1])
}

// PolarizationSeries computes the metric for every recorded snapshot, in
// history order.
//
// Errors:
//   - ErrNoHistory if Run has not recorded anything yet; metric errors
//     are wrapped with the failing snapshot's iteration.
func (s *Sim) PolarizationSeries() ([]float64, error) {
	if len(s.history) == 0 {
		return nil, ErrNoHistory
	}
	out := make([]float64, len(s.history))
	for i, snap := range s.history {
		p, err := s.PolarizationOf(snap)
		if err != nil {
			return nil, fmt.Errorf("PolarizationSeries: iteration %d: %w", snap.Iteration, err)
		}
		out[i] = p
	}
	return out, nil
}
