package warehouse

import (
	"github.com/samuelfneumann/gowarehouse/grid"
	"github.com/samuelfneumann/gowarehouse/percept"
)

// TrueState is a full ground-truth snapshot of the environment. It
// exists for evaluation and testing only: an agent's decision logic
// must never consult it, since the whole point of the environment is
// that hazards are hidden behind percepts.
type TrueState struct {
	Grid          grid.Grid
	Damaged       []grid.Position
	Forklift      grid.Position
	ForkliftAlive bool
	Package       grid.Position
	Robot         RobotState
	Terminated    bool
	Success       bool
}

// TrueState returns a copy of the environment's ground truth
func (w *Warehouse) TrueState() TrueState {
	damaged := make([]grid.Position, 0, len(w.damaged))
	for _, p := range w.grid.Cells() {
		if w.damaged[p] {
			damaged = append(damaged, p)
		}
	}

	return TrueState{
		Grid:          w.grid,
		Damaged:       damaged,
		Forklift:      w.forklift,
		ForkliftAlive: w.forkliftAlive,
		Package:       w.pkg,
		Robot:         w.robot,
		Terminated:    w.terminated,
		Success:       w.success,
	}
}

// PerceptFrom derives the percept for a snapshot of true state. This
// is the single percept rule: creaking iff damaged floor is adjacent
// to the robot, rumbling iff the live forklift is adjacent, beacon iff
// the robot's cell holds the uncollected package. Bump and beep come
// from the action that produced the state. A dead robot senses
// nothing, so only bump and beep survive.
//
// The environment derives every percept it emits through this
// function, so re-deriving a percept from a recorded snapshot always
// reproduces the percept returned at that step.
func PerceptFrom(s TrueState, bump, beep bool) percept.Percept {
	if !s.Robot.Alive {
		return percept.New(false, false, false, bump, beep)
	}

	damaged := make(map[grid.Position]bool, len(s.Damaged))
	for _, p := range s.Damaged {
		damaged[p] = true
	}

	creaking := false
	rumbling := false
	for _, adj := range s.Grid.Adjacent(s.Robot.Position) {
		if damaged[adj] {
			creaking = true
		}
		if s.ForkliftAlive && adj == s.Forklift {
			rumbling = true
		}
	}

	beacon := s.Robot.Position == s.Package && !s.Robot.HasPackage

	return percept.New(creaking, rumbling, beacon, bump, beep)
}
