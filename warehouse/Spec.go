package warehouse

import (
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/spatial/r1"

	"github.com/samuelfneumann/gowarehouse/percept"
	"github.com/samuelfneumann/gowarehouse/spec"
)

// rewardBounds is the interval containing every reward the
// environment can emit in a single step
var rewardBounds = r1.Interval{Min: DeathReward, Max: ExitReward}

// ObservationSpec returns the observation specification of the
// environment. Observations are percepts, encoded as 5-dimensional
// 0/1 vectors.
func (w *Warehouse) ObservationSpec() spec.Environment {
	shape := mat.NewVecDense(percept.Bits, nil)
	lowerBound := mat.NewVecDense(percept.Bits, nil)
	upperBound := mat.NewVecDense(percept.Bits, []float64{1, 1, 1, 1, 1})

	return spec.NewEnvironment(shape, spec.Observation, lowerBound,
		upperBound, spec.Discrete)
}

// ActionSpec returns the action specification of the environment
func (w *Warehouse) ActionSpec() spec.Environment {
	shape := mat.NewVecDense(1, nil)
	lowerBound := mat.NewVecDense(1, []float64{float64(Forward)})
	upperBound := mat.NewVecDense(1, []float64{float64(Exit)})

	return spec.NewEnvironment(shape, spec.Action, lowerBound, upperBound,
		spec.Discrete)
}

// RewardSpec returns the reward specification of the environment
func (w *Warehouse) RewardSpec() spec.Environment {
	shape := mat.NewVecDense(1, nil)
	lowerBound := mat.NewVecDense(1, []float64{rewardBounds.Min})
	upperBound := mat.NewVecDense(1, []float64{rewardBounds.Max})

	return spec.NewEnvironment(shape, spec.Reward, lowerBound, upperBound,
		spec.Continuous)
}
