package experiment

import (
	"go.uber.org/zap"

	"github.com/samuelfneumann/gowarehouse/agent"
	"github.com/samuelfneumann/gowarehouse/experiment/trackers"
	ts "github.com/samuelfneumann/gowarehouse/timestep"
	"github.com/samuelfneumann/gowarehouse/warehouse"
)

// Online is an Experiment that runs episodes of a knowledge-based
// agent in the warehouse online. Because an agent's knowledge base and
// belief sets are scoped to a single episode, Online is given an agent
// constructor rather than an agent, and builds a fresh agent for every
// episode.
type Online struct {
	env          *warehouse.Warehouse
	newAgent     func() agent.Agent
	maxSteps     uint
	currentSteps uint
	trackers     []trackers.Tracker
	log          *zap.Logger
}

// NewOnline creates and returns a new online experiment on a given
// environment. The steps parameter bounds the total number of
// environment steps taken across all episodes; the bound also stops a
// single episode whose policy fails to terminate. A nil logger
// disables logging.
func NewOnline(env *warehouse.Warehouse, newAgent func() agent.Agent,
	steps uint, logger *zap.Logger, t ...trackers.Tracker) *Online {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Online{
		env:      env,
		newAgent: newAgent,
		maxSteps: steps,
		trackers: t,
		log:      logger,
	}
}

// Register adds a Tracker to the experiment
func (o *Online) Register(t trackers.Tracker) {
	o.trackers = append(o.trackers, t)
}

// RunEpisode runs a single episode with a freshly built agent,
// returning whether the total step limit has been reached
func (o *Online) RunEpisode() bool {
	a := o.newAgent()

	step := o.env.Reset()
	a.ObserveFirst(step)
	o.track(step)

	o.log.Info("episode started",
		zap.String("position", o.env.Position().String()),
		zap.Stringer("facing", o.env.Direction()),
	)

	for !step.Last() && o.currentSteps < o.maxSteps {
		o.currentSteps++

		action := a.SelectAction(step)
		next, info, _ := o.env.Step(action)

		o.track(next)
		a.Observe(action, next, info)

		o.log.Debug("step",
			zap.Int("number", next.Number),
			zap.Stringer("action", action),
			zap.String("position", o.env.Position().String()),
			zap.Float64("reward", next.Reward),
			zap.Bool("creaking", next.Percept.Creaking),
			zap.Bool("rumbling", next.Percept.Rumbling),
			zap.Bool("beacon", next.Percept.Beacon),
			zap.Bool("bump", next.Percept.Bump),
			zap.Bool("beep", next.Percept.Beep),
		)

		step = next
	}
	a.EndEpisode()

	o.log.Info("episode ended",
		zap.Bool("terminated", o.env.Done()),
		zap.Bool("success", o.env.Success()),
		zap.Int("steps", o.env.Steps()),
		zap.Float64("return", o.env.TotalReward()),
	)

	return o.currentSteps >= o.maxSteps
}

// Run runs episodes until the total step limit is reached
func (o *Online) Run() {
	ended := false

	for !ended {
		ended = o.RunEpisode()
	}
}

// Save saves all the data cached by the Trackers to disk
func (o *Online) Save() {
	for _, t := range o.trackers {
		t.Save()
	}
}

// track sends the current timestep to each Tracker
func (o *Online) track(step ts.TimeStep) {
	for _, t := range o.trackers {
		t.Track(step)
	}
}
