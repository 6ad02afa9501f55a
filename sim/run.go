// File: run.go
// Role: The iterate-and-record sweep loop.
//
// Contract:
//   - Run requires state Built or Rewired (rewiring is optional).
//   - Asynchronous sweeps shuffle the agent order each sweep and apply
//     updates immediately (Gauss–Seidel); synchronous sweeps compute from
//     the frozen previous state and commit together (Jacobi). The modes
//     are distinct dynamical systems; the choice is recorded in metadata.
//   - History always contains the pre-run state (iteration 0), then one
//     snapshot per SampleInterval sweeps, and always the final sweep.
//   - Cancellation is cooperative and between sweeps only: a sweep is the
//     atomic unit of simulation time.

package sim

import (
	"context"
	"fmt"
	"math"

	"github.com/katalvlaran/polarity/opinion"
)

// Run executes the configured number of update sweeps and returns the
// terminal state: MaxIterReached normally, or Converged when early
// stopping is enabled and a sweep moved no component beyond the
// tolerance. On error the returned state is the state at failure.
//
// Errors:
//   - ErrInvalidState      if called before Build (or called twice).
//   - opinion.ErrNoNeighbors (wrapped) if the topology left an agent
//     isolated — e.g. caveman caves of size 1 without rewiring.
//   - ctx.Err() (wrapped) on between-sweep cancellation.
func (s *Sim) Run(ctx context.Context) (State, error) {
	if s.state != Built && s.state != Rewired {
		return s.state, fmt.Errorf("Run: state=%s: %w", s.state, ErrInvalidState)
	}
	if ctx == nil {
		ctx = context.Background()
	}

	s.state = Running
	s.record(0)
	s.trace("run started",
		"iterations", s.opts.Iterations,
		"ordering", s.opts.Ordering.String(),
		"variant", s.opts.Variant.String())

	updateOpts := opinion.UpdateOptions{
		Variant:     s.opts.Variant,
		Nonnegative: s.opts.Nonnegative,
	}

	for sweep := 1; sweep <= s.opts.Iterations; sweep++ {
		select {
		case <-ctx.Done():
			return s.state, fmt.Errorf("Run: cancelled before sweep %d: %w", sweep, ctx.Err())
		default:
		}

		var (
			maxDelta float64
			err      error
		)
		if s.opts.Ordering == OrderSynchronous {
			maxDelta, err = s.sweepSynchronous(updateOpts)
		} else {
			maxDelta, err = s.sweepAsynchronous(updateOpts)
		}
		if err != nil {
			return s.state, fmt.Errorf("Run: sweep %d: %w", sweep, err)
		}

		// Noise is applied after the commit in both modes, in fixed agent
		// order, so the two orderings disagree only where they should.
		if s.opts.NoiseLevel > 0 {
			for i := range s.agents {
				if err = opinion.AddNoise(s.rng, s.agents[i], s.opts.NoiseLevel); err != nil {
					return s.state, fmt.Errorf("Run: sweep %d noise: %w", sweep, err)
				}
			}
		}

		converged := s.opts.ConvergenceTolerance > 0 && maxDelta <= s.opts.ConvergenceTolerance
		if sweep%s.opts.SampleInterval == 0 || sweep == s.opts.Iterations || converged {
			s.record(sweep)
		}
		s.trace("sweep done", "sweep", sweep, "max_delta", maxDelta)

		if converged {
			s.state = Converged
			s.trace("run converged", "sweep", sweep, "tolerance", s.opts.ConvergenceTolerance)
			return s.state, nil
		}
	}

	s.state = MaxIterReached
	s.trace("run finished", "snapshots", len(s.history))
	return s.state, nil
}

// sweepAsynchronous updates agents one at a time in a fresh random order,
// each reading its neighbors' most recent opinions. Returns the largest
// absolute per-component change of the sweep.
func (s *Sim) sweepAsynchronous(opts opinion.UpdateOptions) (float64, error) {
	var maxDelta float64
	for _, i := range s.rng.Perm(len(s.agents)) {
		next, err := s.updateAgent(i, s.agents, opts)
		if err != nil {
			return 0, err
		}
		maxDelta = math.Max(maxDelta, maxAbsDiff(s.agents[i], next))
		s.agents[i] = next
	}
	return maxDelta, nil
}

// sweepSynchronous computes every agent's update against the frozen
// pre-sweep state and commits all of them at once.
func (s *Sim) sweepSynchronous(opts opinion.UpdateOptions) (float64, error) {
	frozen := make([]opinion.Vector, len(s.agents))
	copy(frozen, s.agents)

	var maxDelta float64
	next := make([]opinion.Vector, len(s.agents))
	for i := range frozen {
		updated, err := s.updateAgent(i, frozen, opts)
		if err != nil {
			return 0, err
		}
		maxDelta = math.Max(maxDelta, maxAbsDiff(frozen[i], updated))
		next[i] = updated
	}
	s.agents = next
	return maxDelta, nil
}

// updateAgent applies the update rule to agent i, reading neighbor state
// from the given view (live for async, frozen for sync). core.Neighbors
// returns indices sorted ascending, which keeps float summation order —
// and therefore histories — reproducible.
func (s *Sim) updateAgent(i int, view []opinion.Vector, opts opinion.UpdateOptions) (opinion.Vector, error) {
	nbrs, err := s.graph.Neighbors(i)
	if err != nil {
		return nil, fmt.Errorf("agent %d: %w", i, err)
	}
	if len(nbrs) == 0 {
		return nil, fmt.Errorf("agent %d: %w", i, opinion.ErrNoNeighbors)
	}

	neighborOps := make([]opinion.Vector, len(nbrs))
	for j, nb := range nbrs {
		neighborOps[j] = view[nb]
	}
	next, err := opinion.Update(view[i], neighborOps, opts)
	if err != nil {
		return nil, fmt.Errorf("agent %d: %w", i, err)
	}
	return next, nil
}

// maxAbsDiff returns the largest absolute componentwise difference.
func maxAbsDiff(a, b opinion.Vector) float64 {
	var m float64
	for i := range a {
		m = math.Max(m, math.Abs(a[i]-b[i]))
	}
	return m
}
