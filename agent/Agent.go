// Package agent implements the knowledge-based warehouse agent: a
// belief tracker over proven-safe cells, a path planner restricted to
// them, and the priority policy that picks the next action.
package agent

import (
	"github.com/samuelfneumann/gowarehouse/grid"
	"github.com/samuelfneumann/gowarehouse/kb"
	ts "github.com/samuelfneumann/gowarehouse/timestep"
	"github.com/samuelfneumann/gowarehouse/warehouse"
)

// Agent determines the implementation details of an agent. The driver
// calls ObserveFirst with the reset timestep, then alternates
// SelectAction with Observe until the episode ends.
type Agent interface {
	// ObserveFirst records the first timestep in an episode
	ObserveFirst(t ts.TimeStep)

	// Observe records that an action led to some timestep
	Observe(action warehouse.Action, next ts.TimeStep, info warehouse.Info)

	// SelectAction chooses the next action to take
	SelectAction(t ts.TimeStep) warehouse.Action

	// EndEpisode performs cleanup at the end of an episode
	EndEpisode()
}

// KBAgent is a knowledge-based agent for the hazardous warehouse. It
// encodes percepts as propositional facts, classifies cells as safe or
// dangerous by logical entailment, and explores proven-safe territory
// until it can retrieve the package and exit.
//
// The agent tracks its own position, facing, and inventory from the
// actions it takes and the percepts it receives; it never consults the
// environment's ground truth. A KBAgent serves a single episode: build
// a fresh one, with a fresh solver, for each new episode.
type KBAgent struct {
	grid    grid.Grid
	kb      *kb.KnowledgeBase
	beliefs *Beliefs

	position  grid.Position
	direction grid.Direction

	hasPackage       bool
	shutdownUsed     bool
	forkliftDisabled bool

	queue []warehouse.Action
	steps int
}

// New creates a new KBAgent for a warehouse with the given floor
// geometry, with its knowledge base built on solver
func New(g grid.Grid, solver kb.Solver) *KBAgent {
	return &KBAgent{
		grid:      g,
		kb:        kb.New(g, solver),
		beliefs:   NewBeliefs(g),
		position:  warehouse.Start,
		direction: grid.East,
	}
}

// ObserveFirst records the initial percept, asserting it into the
// knowledge base and classifying whatever cells it already settles
func (a *KBAgent) ObserveFirst(t ts.TimeStep) {
	a.kb.Tell(a.position, t.Percept)
	a.beliefs.Update(a.kb)
}

// Observe records the outcome of an action: it advances the agent's
// dead-reckoned pose and inventory, and after every informative move
// asserts the new percept and reclassifies cells
func (a *KBAgent) Observe(action warehouse.Action, next ts.TimeStep,
	info warehouse.Info) {
	moved := false

	switch action {
	case warehouse.Forward:
		if !next.Percept.Bump {
			dx, dy := a.direction.Delta()
			a.position = a.position.Translate(dx, dy)
			a.beliefs.Visit(a.position)
			moved = true
		}
	case warehouse.TurnLeft:
		a.direction = a.direction.Left()
	case warehouse.TurnRight:
		a.direction = a.direction.Right()
	case warehouse.Grab:
		if grabbed, ok := info["grabbed"].(bool); ok && grabbed {
			a.hasPackage = true
		}
	case warehouse.Shutdown:
		a.shutdownUsed = true
	}

	if next.Percept.Beep {
		a.forkliftDisabled = true
	}

	a.steps++

	// A move onto a new cell is the only action that yields percepts
	// about an untold cell. A fatal move yields forced-false percepts,
	// which must not enter the knowledge base.
	if moved && !next.Last() {
		a.kb.Tell(a.position, next.Percept)
		a.beliefs.Update(a.kb)
	}
}

// SelectAction chooses the next action by strict priority: drain the
// current plan, fire the shutdown device at a localized forklift,
// grab a sensed package, carry a held package home, explore the
// nearest proven-safe unvisited cell, or give up and exit.
func (a *KBAgent) SelectAction(t ts.TimeStep) warehouse.Action {
	if len(a.queue) > 0 {
		action := a.queue[0]
		a.queue = a.queue[1:]
		return action
	}

	if a.forkliftInSight() {
		return warehouse.Shutdown
	}

	if t.Percept.Beacon && !a.hasPackage {
		return warehouse.Grab
	}

	if a.hasPackage {
		if a.position == warehouse.Start {
			return warehouse.Exit
		}
		return a.planTo(map[grid.Position]bool{warehouse.Start: true},
			warehouse.Exit, false)
	}

	if unvisited := a.beliefs.UnvisitedSafe(); len(unvisited) > 0 {
		goals := make(map[grid.Position]bool, len(unvisited))
		for _, pos := range unvisited {
			goals[pos] = true
		}
		if path := PlanPath(a.grid, a.beliefs.KnownSafe, a.position,
			goals); len(path) > 1 {
			return a.enqueue(path, false)
		}
	}

	// Nothing left to explore and no package found: head home and
	// exit without it
	if a.position == warehouse.Start {
		return warehouse.Exit
	}
	return a.planTo(map[grid.Position]bool{warehouse.Start: true},
		warehouse.Exit, true)
}

// EndEpisode performs cleanup at the end of an episode
func (a *KBAgent) EndEpisode() {
	a.queue = nil
}

// planTo plans a path to the goal set and starts executing it,
// returning fallback if no path through known-safe cells exists. With
// exitAfter, an EXIT is queued to follow the final move.
func (a *KBAgent) planTo(goals map[grid.Position]bool,
	fallback warehouse.Action, exitAfter bool) warehouse.Action {
	path := PlanPath(a.grid, a.beliefs.KnownSafe, a.position, goals)
	if len(path) <= 1 {
		return fallback
	}
	return a.enqueue(path, exitAfter)
}

// enqueue translates a planned path into actions, queues all but the
// first, and returns the first
func (a *KBAgent) enqueue(path []grid.Position, exitAfter bool) warehouse.Action {
	actions := PathActions(a.direction, path)
	a.queue = actions[1:]
	if exitAfter {
		a.queue = append(a.queue, warehouse.Exit)
	}
	return actions[0]
}

// forkliftInSight reports whether the shutdown device is still worth
// firing: the device is unused, the forklift has not already been
// disabled, and some cell along the ray in the current facing is a
// proven forklift position
func (a *KBAgent) forkliftInSight() bool {
	if a.forkliftDisabled || a.shutdownUsed {
		return false
	}

	entailed := a.kb.ForkliftPositions()
	if len(entailed) == 0 {
		return false
	}

	positions := make(map[grid.Position]bool, len(entailed))
	for _, pos := range entailed {
		positions[pos] = true
	}

	dx, dy := a.direction.Delta()
	pos := a.position
	for {
		pos = pos.Translate(dx, dy)
		if !a.grid.Contains(pos) {
			return false
		}
		if positions[pos] {
			return true
		}
	}
}

// Position returns the agent's dead-reckoned cell
func (a *KBAgent) Position() grid.Position {
	return a.position
}

// Direction returns the agent's dead-reckoned facing
func (a *KBAgent) Direction() grid.Direction {
	return a.direction
}

// HasPackage returns whether the agent believes it carries the package
func (a *KBAgent) HasPackage() bool {
	return a.hasPackage
}

// Beliefs returns the agent's belief tracker
func (a *KBAgent) Beliefs() *Beliefs {
	return a.beliefs
}

// Steps returns the number of actions the agent has observed
func (a *KBAgent) Steps() int {
	return a.steps
}
