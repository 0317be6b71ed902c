// Package experiment implements functionality for running a
// knowledge-based agent against the warehouse environment
package experiment

import (
	"github.com/samuelfneumann/gowarehouse/experiment/trackers"
)

// Experiment outlines structs that can run experiments. An Experiment
// drives the agent-environment loop, sending every TimeStep the
// environment produces to its registered Trackers. Save then writes
// all tracked data to disk, usually after the experiment has run.
type Experiment interface {
	// Run runs episodes until the experiment's step limit is reached
	Run()

	// RunEpisode runs a single episode, returning whether the step
	// limit has been reached
	RunEpisode() bool

	// Save all tracked data to disk
	Save()

	// Register adds a Tracker to the (possibly already running)
	// experiment
	Register(t trackers.Tracker)
}
