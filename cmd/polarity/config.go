package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/polarity/opinion"
	"github.com/katalvlaran/polarity/sim"
)

// RunConfig is the YAML shape of one run. Zero values fall back to the
// engine defaults, so a minimal config file can set just what it varies.
type RunConfig struct {
	Topology      string `yaml:"topology"` // caveman | complete | ring
	K             int    `yaml:"k"`
	NCaves        int    `yaml:"n_caves"`
	NPerCave      int    `yaml:"n_per_cave"`
	Agents        int    `yaml:"agents"`
	RingNeighbors int    `yaml:"ring_neighbors"`

	RewireProbability float64 `yaml:"rewire_probability"`
	RewireCount       int     `yaml:"rewire_count"`

	Iterations           int     `yaml:"iterations"`
	SampleInterval       int     `yaml:"sample_interval"`
	ConvergenceTolerance float64 `yaml:"convergence_tolerance"`

	Ordering    string  `yaml:"ordering"` // asynchronous | synchronous
	Variant     string  `yaml:"variant"`  // sign-shrink | symmetric
	Nonnegative bool    `yaml:"nonnegative"`
	Scale       float64 `yaml:"scale"`
	NoiseLevel  float64 `yaml:"noise_level"`
	Seed        int64   `yaml:"seed"`
}

// loadConfig reads and parses a YAML run config. An empty path returns the
// zero config (engine defaults).
func loadConfig(path string) (RunConfig, error) {
	var cfg RunConfig
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}

// toOptions maps the file config onto engine options, resolving string
// enums and leaving unset numerics at their engine defaults.
func (c RunConfig) toOptions() (sim.Options, error) {
	opts := sim.DefaultOptions()

	switch c.Topology {
	case "", "caveman":
		opts.Topology = sim.TopologyCaveman
	case "complete":
		opts.Topology = sim.TopologyComplete
	case "ring":
		opts.Topology = sim.TopologyRing
	default:
		return opts, fmt.Errorf("unknown topology %q (want caveman|complete|ring)", c.Topology)
	}

	switch c.Ordering {
	case "", "asynchronous":
		opts.Ordering = sim.OrderAsynchronous
	case "synchronous":
		opts.Ordering = sim.OrderSynchronous
	default:
		return opts, fmt.Errorf("unknown ordering %q (want asynchronous|synchronous)", c.Ordering)
	}

	switch c.Variant {
	case "", "sign-shrink":
		opts.Variant = opinion.VariantSignShrink
	case "symmetric":
		opts.Variant = opinion.VariantSymmetric
	default:
		return opts, fmt.Errorf("unknown variant %q (want sign-shrink|symmetric)", c.Variant)
	}

	if c.K > 0 {
		opts.K = c.K
	}
	if c.NCaves > 0 {
		opts.NCaves = c.NCaves
	}
	if c.NPerCave > 0 {
		opts.NPerCave = c.NPerCave
	}
	if c.Agents > 0 {
		opts.Agents = c.Agents
	}
	if c.RingNeighbors > 0 {
		opts.RingNeighbors = c.RingNeighbors
	}
	if c.Iterations > 0 {
		opts.Iterations = c.Iterations
	}
	if c.SampleInterval > 0 {
		opts.SampleInterval = c.SampleInterval
	}
	if c.Scale > 0 {
		opts.Scale = c.Scale
	}
	opts.RewireProbability = c.RewireProbability
	opts.RewireCount = c.RewireCount
	opts.ConvergenceTolerance = c.ConvergenceTolerance
	opts.Nonnegative = c.Nonnegative
	opts.NoiseLevel = c.NoiseLevel
	opts.Seed = c.Seed

	return opts, nil
}
