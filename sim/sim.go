// File: sim.go
// Role: Sim construction, topology build, initial opinions, rewiring.
//
// Determinism:
//   - One *rand.Rand, seeded from Options.Seed in New, serves every
//     stochastic choice (initial opinions, rewiring draws, sweep
//     shuffles, noise) in a fixed program order. Identical options ⇒
//     bit-identical histories.

package sim

import (
	"fmt"
	"math/rand"

	"github.com/katalvlaran/polarity/builder"
	"github.com/katalvlaran/polarity/core"
	"github.com/katalvlaran/polarity/opinion"
)

// Sim is one simulation run: graph, agents, RNG, history. Exclusively
// owned, never shared.
type Sim struct {
	opts    Options
	rng     *rand.Rand
	state   State
	graph   *core.Graph
	agents  []opinion.Vector // index = agent, mutated in place by sweeps
	history []Snapshot
}

// New validates opts and returns a Sim in the Uninitialized state.
//
// Errors:
//   - ErrConfiguration on any domain violation (see Options.Validate).
func New(opts Options) (*Sim, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	return &Sim{
		opts:  opts,
		rng:   rand.New(rand.NewSource(opts.Seed)),
		state: Uninitialized,
	}, nil
}

// State reports the current lifecycle state.
func (s *Sim) State() State { return s.state }

// Options returns a copy of the run parameters (immutable for the run's
// lifetime; the Logger field is shared by nature).
func (s *Sim) Options() Options { return s.opts }

// AgentCount returns the population size, 0 before Build.
func (s *Sim) AgentCount() int {
	if s.graph == nil {
		return 0
	}
	return s.graph.AgentCount()
}

// EdgeCount returns the current number of ties, 0 before Build.
func (s *Sim) EdgeCount() int {
	if s.graph == nil {
		return 0
	}
	return s.graph.EdgeCount()
}

// Build constructs the configured topology and draws initial opinions
// uniformly from [-Scale, +Scale]^K. Transitions Uninitialized → Built.
//
// Errors:
//   - ErrInvalidState          if the Sim was already built.
//   - builder.ErrConfiguration propagated from the topology factory.
func (s *Sim) Build() error {
	return s.build(nil)
}

// BuildWithOpinions is Build with injected initial opinions (re-runs,
// counterfactuals over the same starting state). The slice must hold
// exactly one K-dimensional vector per agent; vectors are copied, the
// caller keeps ownership of its slice.
//
// Errors: as Build, plus ErrConfiguration when the injected opinions do
// not match the configured population or dimensionality.
func (s *Sim) BuildWithOpinions(initial []opinion.Vector) error {
	if initial == nil {
		return fmt.Errorf("BuildWithOpinions: nil opinions: %w", ErrConfiguration)
	}
	return s.build(initial)
}

func (s *Sim) build(initial []opinion.Vector) error {
	if s.state != Uninitialized {
		return fmt.Errorf("Build: state=%s: %w", s.state, ErrInvalidState)
	}

	var (
		g   *core.Graph
		err error
	)
	switch s.opts.Topology {
	case TopologyCaveman:
		g, err = builder.Caveman(s.opts.NCaves, s.opts.NPerCave)
	case TopologyComplete:
		g, err = builder.Complete(s.opts.Agents)
	case TopologyRing:
		g, err = builder.Ring(s.opts.Agents, s.opts.RingNeighbors)
	default:
		err = fmt.Errorf("unknown topology %d: %w", s.opts.Topology, ErrConfiguration)
	}
	if err != nil {
		return fmt.Errorf("Build: %w", err)
	}

	n := g.AgentCount()
	agents := make([]opinion.Vector, n)
	if initial != nil {
		if len(initial) != n {
			return fmt.Errorf("Build: got %d opinion vectors for %d agents: %w", len(initial), n, ErrConfiguration)
		}
		for i, v := range initial {
			if len(v) != s.opts.K {
				return fmt.Errorf("Build: agent %d has K=%d, want %d: %w", i, len(v), s.opts.K, ErrConfiguration)
			}
			agents[i] = v.Clone()
		}
	} else {
		for i := range agents {
			if agents[i], err = opinion.Random(s.rng, s.opts.K, s.opts.Scale); err != nil {
				return fmt.Errorf("Build: %w", err)
			}
		}
	}

	s.graph = g
	s.agents = agents
	s.state = Built
	s.trace("network built",
		"topology", s.opts.Topology.String(),
		"agents", n,
		"edges", g.EdgeCount(),
		"non_neighbors", g.NonNeighborCount())
	return nil
}

// Rewire adds random long-range ties per the configured target:
// RewireProbability runs one Bernoulli trial per non-neighbor pair,
// RewireCount draws exactly that many uniform connections. With neither
// set it is a recorded no-op. Transitions Built → Rewired.
//
// Errors:
//   - ErrInvalidState       if called before Build or after Run.
//   - core.ErrEdgeExhausted if RewireCount exceeds the available pool.
func (s *Sim) Rewire() error {
	if s.state != Built {
		return fmt.Errorf("Rewire: state=%s: %w", s.state, ErrInvalidState)
	}

	added := 0
	switch {
	case s.opts.RewireCount > 0:
		for i := 0; i < s.opts.RewireCount; i++ {
			if _, err := s.graph.AddRandomConnection(s.rng); err != nil {
				return fmt.Errorf("Rewire: connection %d of %d: %w", i+1, s.opts.RewireCount, err)
			}
			added++
		}
	case s.opts.RewireProbability > 0:
		var err error
		if added, err = s.graph.AddRandomConnections(s.rng, s.opts.RewireProbability); err != nil {
			return fmt.Errorf("Rewire: %w", err)
		}
	}

	s.state = Rewired
	s.trace("network rewired",
		"added", added,
		"edges", s.graph.EdgeCount(),
		"non_neighbors", s.graph.NonNeighborCount())
	return nil
}

// trace emits a Debug event when a logger is configured; silent otherwise.
func (s *Sim) trace(msg string, args ...any) {
	if s.opts.Logger != nil {
		s.opts.Logger.Debug(msg, args...)
	}
}

// wrapOpt and wrapOptF attach the offending field to ErrConfiguration.
func wrapOpt(msg string, v int) error {
	return fmt.Errorf("Options: %s (got %d): %w", msg, v, ErrConfiguration)
}

func wrapOptF(msg string, v float64) error {
	return fmt.Errorf("Options: %s (got %v): %w", msg, v, ErrConfiguration)
}
