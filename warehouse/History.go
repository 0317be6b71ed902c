package warehouse

import (
	"github.com/samuelfneumann/gowarehouse/grid"
	"github.com/samuelfneumann/gowarehouse/percept"
)

// Record is one entry in the episode history: a snapshot of the
// robot's visible situation immediately after a step. The record for
// step 0 is written at reset time and has an empty Action.
type Record struct {
	Step          int
	Action        string
	Position      grid.Position
	Direction     grid.Direction
	HasPackage    bool
	HasDevice     bool
	Alive         bool
	ForkliftAlive bool
	Percept       percept.Percept
	TotalReward   float64
}

// record appends the current state to the episode history. The
// history is append-only: entries are never mutated retroactively.
func (w *Warehouse) record(action string) {
	w.history = append(w.history, Record{
		Step:          w.steps,
		Action:        action,
		Position:      w.robot.Position,
		Direction:     w.robot.Direction,
		HasPackage:    w.robot.HasPackage,
		HasDevice:     w.robot.HasDevice,
		Alive:         w.robot.Alive,
		ForkliftAlive: w.forkliftAlive,
		Percept:       w.lastStep.Percept,
		TotalReward:   w.totalReward,
	})
}

// History returns a defensive copy of the episode history so far
func (w *Warehouse) History() []Record {
	history := make([]Record, len(w.history))
	copy(history, w.history)
	return history
}
