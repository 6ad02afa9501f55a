package sim_test

import (
	"context"
	"fmt"

	"github.com/katalvlaran/polarity/sim"
)

// ExampleSim runs the canonical 4×5 caveman setup for a handful of sweeps
// and reports the structural facts of the run, which are deterministic for
// a fixed seed.
func ExampleSim() {
	opts := sim.DefaultOptions()
	opts.Iterations = 10
	opts.RewireCount = 5
	opts.Seed = 42

	s, err := sim.New(opts)
	if err != nil {
		panic(err)
	}
	if err = s.Build(); err != nil {
		panic(err)
	}
	fmt.Println("agents:", s.AgentCount())
	fmt.Println("clique edges:", s.EdgeCount())

	if err = s.Rewire(); err != nil {
		panic(err)
	}
	fmt.Println("after rewiring:", s.EdgeCount())

	final, err := s.Run(context.Background())
	if err != nil {
		panic(err)
	}
	fmt.Println("final state:", final)
	fmt.Println("snapshots:", len(s.History()))

	// Output:
	// agents: 20
	// clique edges: 40
	// after rewiring: 45
	// final state: max-iterations-reached
	// snapshots: 11
}
