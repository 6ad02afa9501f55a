// Package sim drives one Flache–Macy simulation run: topology build,
// rewiring, the iterate-and-record sweep loop, and on-demand polarization
// over the recorded history.
//
// One Sim owns its graph, its agents, its RNG, and its history outright —
// no package-level state is shared, so any number of runs can execute in
// parallel, each reproducible from its own seed. The engine itself is
// strictly sequential; between-sweep cancellation goes through the
// context handed to Run.
//
// State machine:
//
//	Uninitialized → Built → Rewired → Running → Converged | MaxIterReached
//
// Built and Rewired are equivalent preconditions for Run (rewiring is
// optional). Out-of-order calls fail with ErrInvalidState.
package sim

import (
	"errors"
	"log/slog"

	"github.com/katalvlaran/polarity/opinion"
)

// Sentinel errors for the simulation driver.
var (
	// ErrConfiguration indicates invalid run options (see Options.Validate).
	ErrConfiguration = errors.New("sim: invalid run configuration")

	// ErrInvalidState indicates an operation was invoked out of the allowed
	// state-machine order (e.g. Run before Build).
	ErrInvalidState = errors.New("sim: operation not allowed in current state")

	// ErrNoHistory indicates polarization of the final state was requested
	// before any snapshot was recorded.
	ErrNoHistory = errors.New("sim: no snapshots recorded yet")
)

// State describes where a Sim is in its lifecycle.
type State int

const (
	// Uninitialized: New has run, Build has not.
	Uninitialized State = iota
	// Built: topology and initial opinions exist.
	Built
	// Rewired: random long-range ties were added on top of the build.
	Rewired
	// Running: a sweep loop is in progress.
	Running
	// Converged: Run stopped early because a sweep moved no opinion
	// component beyond the configured tolerance.
	Converged
	// MaxIterReached: Run completed the configured number of sweeps.
	MaxIterReached
)

// String returns the stable metadata key for the state.
func (s State) String() string {
	switch s {
	case Uninitialized:
		return "uninitialized"
	case Built:
		return "built"
	case Rewired:
		return "rewired"
	case Running:
		return "running"
	case Converged:
		return "converged"
	case MaxIterReached:
		return "max-iterations-reached"
	default:
		return "unknown"
	}
}

// Topology selects the initial network shape.
type Topology int

const (
	// TopologyCaveman: NCaves disjoint cliques of NPerCave agents.
	TopologyCaveman Topology = iota
	// TopologyComplete: everyone connected to everyone (Agents nodes).
	TopologyComplete
	// TopologyRing: circular lattice, RingNeighbors ties per side.
	TopologyRing
)

// String returns the stable metadata key for the topology.
func (t Topology) String() string {
	switch t {
	case TopologyCaveman:
		return "connected caveman"
	case TopologyComplete:
		return "complete"
	case TopologyRing:
		return "ring lattice"
	default:
		return "unknown"
	}
}

// Ordering selects how updates propagate within a sweep. The two modes are
// materially different dynamical systems, never an implementation detail.
type Ordering int

const (
	// OrderAsynchronous (default): agents update one at a time in a fresh
	// random order each sweep, each seeing its neighbors' most recent
	// state — updates are visible within the same sweep (Gauss–Seidel).
	OrderAsynchronous Ordering = iota
	// OrderSynchronous: all agents compute from the prior sweep's frozen
	// state and commit simultaneously (Jacobi).
	OrderSynchronous
)

// String returns the stable metadata key for the ordering.
func (o Ordering) String() string {
	switch o {
	case OrderAsynchronous:
		return "asynchronous"
	case OrderSynchronous:
		return "synchronous"
	default:
		return "unknown"
	}
}

// Options are the immutable parameters of one run. Set once, validated by
// New, never mutated afterwards.
type Options struct {
	// K is the opinion-vector dimensionality.
	K int

	// Topology selects the initial network; the fields below feed the
	// matching builder factory and the others are ignored.
	Topology Topology
	// NCaves, NPerCave size the caveman topology.
	NCaves   int
	NPerCave int
	// Agents sizes the complete and ring topologies.
	Agents int
	// RingNeighbors is the per-side neighborhood radius of the ring.
	RingNeighbors int

	// RewireProbability triggers one Bernoulli trial per non-neighbor pair
	// during Rewire. Mutually exclusive with RewireCount.
	RewireProbability float64
	// RewireCount adds exactly this many uniform random connections during
	// Rewire. Mutually exclusive with RewireProbability.
	RewireCount int

	// Iterations is the number of update sweeps Run executes.
	Iterations int
	// SampleInterval records every m-th sweep into history (the final
	// sweep is always recorded). 1 records every sweep.
	SampleInterval int
	// ConvergenceTolerance stops Run early once a full sweep moves no
	// component by more than this amount. 0 disables early stopping.
	ConvergenceTolerance float64

	// Ordering selects asynchronous (default) or synchronous sweeps.
	Ordering Ordering
	// Variant selects the bounded-confidence saturation variant.
	Variant opinion.Variant
	// Nonnegative restricts connection weights to [0,1].
	Nonnegative bool

	// Scale is S, the initial opinion magnitude: components start uniform
	// in [-Scale, +Scale]. Must lie in (0, 1].
	Scale float64
	// NoiseLevel is the per-sweep Gaussian opinion noise stdev; 0 is off.
	NoiseLevel float64

	// Seed fully determines every stochastic choice of the run.
	Seed int64

	// Logger receives structured Debug events for build/rewire/sweep
	// milestones. nil means silent.
	Logger *slog.Logger
}

// Default run parameters.
const (
	DefaultK              = 2
	DefaultNCaves         = 4
	DefaultNPerCave       = 5
	DefaultIterations     = 100
	DefaultSampleInterval = 1
	DefaultScale          = 1.0
)

// DefaultOptions returns the canonical small-worlds setup: a 4×5 connected
// caveman graph, K=2, full initial spread, asynchronous sign-shrink
// updates, 100 sweeps, every sweep recorded.
func DefaultOptions() Options {
	return Options{
		K:              DefaultK,
		Topology:       TopologyCaveman,
		NCaves:         DefaultNCaves,
		NPerCave:       DefaultNPerCave,
		Iterations:     DefaultIterations,
		SampleInterval: DefaultSampleInterval,
		Ordering:       OrderAsynchronous,
		Variant:        opinion.VariantSignShrink,
		Scale:          DefaultScale,
	}
}

// Validate checks every parameter domain and returns ErrConfiguration
// (wrapped with the offending field) on the first violation.
func (o Options) Validate() error {
	if o.K < 1 {
		return wrapOpt("K must be at least 1", o.K)
	}
	switch o.Topology {
	case TopologyCaveman:
		if o.NCaves < 1 {
			return wrapOpt("NCaves must be at least 1", o.NCaves)
		}
		if o.NPerCave < 1 {
			return wrapOpt("NPerCave must be at least 1", o.NPerCave)
		}
	case TopologyComplete:
		if o.Agents < 1 {
			return wrapOpt("Agents must be at least 1", o.Agents)
		}
	case TopologyRing:
		if o.Agents < 3 {
			return wrapOpt("Agents must be at least 3 for a ring", o.Agents)
		}
		if o.RingNeighbors < 1 {
			return wrapOpt("RingNeighbors must be at least 1", o.RingNeighbors)
		}
	default:
		return wrapOpt("unknown topology", int(o.Topology))
	}
	if o.RewireProbability < 0 || o.RewireProbability > 1 {
		return wrapOptF("RewireProbability must be in [0,1]", o.RewireProbability)
	}
	if o.RewireCount < 0 {
		return wrapOpt("RewireCount must be nonnegative", o.RewireCount)
	}
	if o.RewireProbability > 0 && o.RewireCount > 0 {
		return wrapOpt("RewireProbability and RewireCount are mutually exclusive", o.RewireCount)
	}
	if o.Iterations < 0 {
		return wrapOpt("Iterations must be nonnegative", o.Iterations)
	}
	if o.SampleInterval < 1 {
		return wrapOpt("SampleInterval must be at least 1", o.SampleInterval)
	}
	if o.ConvergenceTolerance < 0 {
		return wrapOptF("ConvergenceTolerance must be nonnegative", o.ConvergenceTolerance)
	}
	if o.Scale <= 0 || o.Scale > 1 {
		return wrapOptF("Scale must be in (0,1]", o.Scale)
	}
	if o.NoiseLevel < 0 {
		return wrapOptF("NoiseLevel must be nonnegative", o.NoiseLevel)
	}
	return nil
}

// agentCount derives the total population from the topology parameters.
// Callers run Validate first.
func (o Options) agentCount() int {
	if o.Topology == TopologyCaveman {
		return o.NCaves * o.NPerCave
	}
	return o.Agents
}
