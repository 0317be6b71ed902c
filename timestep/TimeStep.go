// Package timestep implements timesteps of the agent-environment
// interaction
package timestep

import (
	"fmt"

	"github.com/samuelfneumann/gowarehouse/percept"
)

// StepType denotes the type of step that a TimeStep can be, either the
// first environmental step, a middle step, or a last step
type StepType int

const (
	First StepType = iota
	Mid
	Last
)

func (s StepType) String() string {
	switch s {
	case First:
		return "First"
	case Last:
		return "Last"
	default:
		return "Mid"
	}
}

// TimeStep packages together a single timestep in the environment: the
// percept the environment produced, the reward for the action that
// produced it, and the position of the step in the episode. The
// percept is the full observation, so no separate observation vector
// is carried.
type TimeStep struct {
	stepType StepType
	Reward   float64
	Percept  percept.Percept
	Number   int
}

func New(t StepType, r float64, p percept.Percept, n int) TimeStep {
	return TimeStep{t, r, p, n}
}

// First returns whether a TimeStep is the first in an episode
func (t TimeStep) First() bool {
	return t.stepType == First
}

// Mid returns whether a TimeStep is a middle step in an episode
func (t TimeStep) Mid() bool {
	return t.stepType == Mid
}

// Last returns whether a TimeStep is the last step in an episode
func (t TimeStep) Last() bool {
	return t.stepType == Last
}

func (t TimeStep) String() string {
	str := "TimeStep | Type: %v  |  Reward:  %.2f  |  Step Number:  %v"

	return fmt.Sprintf(str, t.stepType, t.Reward, t.Number)
}
