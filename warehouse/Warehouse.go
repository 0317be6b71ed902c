// Package warehouse implements the hazardous warehouse environment: a
// partially observable grid world containing hidden damaged-floor
// cells, a hostile forklift, and a package the robot must retrieve.
//
// The environment owns the true world state. The robot observes it
// only through five-bit percepts, so the package is laid out for
// knowledge-based agents that infer cell safety from local evidence.
package warehouse

import (
	"fmt"

	"golang.org/x/exp/rand"

	"github.com/samuelfneumann/gowarehouse/grid"
	ts "github.com/samuelfneumann/gowarehouse/timestep"
)

const (
	// StepReward is the reward applied to every action regardless of
	// outcome
	StepReward float64 = -1.0

	// DeathReward is the reward for a step on which the robot moves
	// onto damaged floor or into the live forklift. It terminates the
	// episode in failure.
	DeathReward float64 = -1000.0

	// ExitReward is the reward for exiting at the start cell while
	// carrying the package
	ExitReward float64 = 1000.0

	// ShutdownPenalty is the extra reward penalty, beyond the step
	// cost, for firing the shutdown device
	ShutdownPenalty float64 = -9.0
)

// Start is the robot's fixed starting cell. It is never a hazard,
// forklift, or package cell.
var Start = grid.Position{X: 1, Y: 1}

// Info carries per-step outcome tags: the action name, a death cause,
// grab/shutdown/exit outcomes, or an error string for calls on an
// already terminated episode or an already spent device
type Info map[string]interface{}

// RobotState is the robot's true state within the warehouse
type RobotState struct {
	Position   grid.Position
	Direction  grid.Direction
	HasPackage bool
	HasDevice  bool
	Alive      bool
}

// Warehouse implements the hazardous warehouse environment.
//
// Grid coordinates are (x, y) with x in [1..width], y in [1..height]
// and the origin at the bottom-left. The robot always starts at (1,1)
// facing East. Layout generation is driven by an explicitly owned,
// seedable random source so that episodes are reproducible.
type Warehouse struct {
	grid       grid.Grid
	numDamaged int
	seed       uint64
	layout     *Layout

	damaged       map[grid.Position]bool
	forklift      grid.Position
	forkliftAlive bool
	pkg           grid.Position

	robot RobotState

	steps       int
	totalReward float64
	lastStep    ts.TimeStep
	terminated  bool
	success     bool
	history     []Record
}

// New creates a new Warehouse with the given dimensions and number of
// damaged-floor cells, and generates a first layout from seed. The
// environment starts ready to use.
func New(width, height, numDamaged int, seed uint64) (*Warehouse,
	ts.TimeStep, error) {
	g, err := grid.New(width, height)
	if err != nil {
		return nil, ts.TimeStep{}, fmt.Errorf("new: %v", err)
	}

	// The start cell holds the robot; the forklift and package each
	// need a cell of their own
	if numDamaged < 0 || numDamaged+2 > width*height-1 {
		return nil, ts.TimeStep{}, fmt.Errorf("new: cannot place %d "+
			"damaged cells on a %d x %d grid", numDamaged, width, height)
	}

	w := &Warehouse{grid: g, numDamaged: numDamaged, seed: seed}
	return w, w.Reset(), nil
}

// Reset regenerates the layout from the environment's seed and places
// a fresh robot at the start cell facing East. A seeded environment
// reproduces the identical layout on every Reset, and an environment
// with a loaded fixed layout keeps it. The returned timestep holds
// the initial percept.
func (w *Warehouse) Reset() ts.TimeStep {
	if w.layout != nil {
		w.install(*w.layout)
		return w.start()
	}

	rng := rand.New(rand.NewSource(w.seed))

	positions := make([]grid.Position, 0, w.grid.Width*w.grid.Height-1)
	for _, p := range w.grid.Cells() {
		if p != Start {
			positions = append(positions, p)
		}
	}
	rng.Shuffle(len(positions), func(i, j int) {
		positions[i], positions[j] = positions[j], positions[i]
	})

	damaged := make(map[grid.Position]bool, w.numDamaged)
	for _, p := range positions[:w.numDamaged] {
		damaged[p] = true
	}

	w.damaged = damaged
	w.forklift = positions[w.numDamaged]
	w.forkliftAlive = true
	w.pkg = positions[w.numDamaged+1]

	return w.start()
}

// ResetSeed installs a new seed, discards any loaded fixed layout,
// and resets the environment
func (w *Warehouse) ResetSeed(seed uint64) ts.TimeStep {
	w.seed = seed
	w.layout = nil
	return w.Reset()
}

// install sets a fixed hazard, forklift, and package placement. The
// layout must already be validated.
func (w *Warehouse) install(l Layout) {
	damaged := make(map[grid.Position]bool, len(l.Damaged))
	for _, p := range l.Damaged {
		damaged[p] = true
	}

	w.damaged = damaged
	w.forklift = l.Forklift
	w.forkliftAlive = true
	w.pkg = l.Package
	w.numDamaged = len(l.Damaged)
}

// start places a fresh robot and clears all episode bookkeeping. The
// hazard, forklift, and package placement must already be set.
func (w *Warehouse) start() ts.TimeStep {
	w.robot = RobotState{
		Position:  Start,
		Direction: grid.East,
		HasDevice: true,
		Alive:     true,
	}

	w.steps = 0
	w.totalReward = 0.0
	w.terminated = false
	w.success = false
	w.history = nil

	first := PerceptFrom(w.TrueState(), false, false)
	w.lastStep = ts.New(ts.First, 0.0, first, 0)
	w.record("")
	return w.lastStep
}

// Step applies a single action to the environment and returns the
// resulting timestep, the outcome tags for the action, and whether the
// episode has terminated.
//
// Stepping an already terminated episode mutates nothing: it returns
// the final percept again with zero reward, done equal to true, and an
// error tag in the info map.
func (w *Warehouse) Step(action Action) (ts.TimeStep, Info, bool) {
	if w.terminated {
		return ts.New(ts.Last, 0.0, w.lastStep.Percept, w.lastStep.Number),
			Info{"error": "episode already terminated"}, true
	}

	reward := StepReward
	bump := false
	beep := false
	info := Info{"action": action.String()}

	switch action {
	case Forward:
		bump = w.moveForward()
		if !bump {
			pos := w.robot.Position
			if w.damaged[pos] {
				w.robot.Alive = false
				reward = DeathReward
				w.terminated = true
				info["death"] = "damaged_floor"
			} else if pos == w.forklift && w.forkliftAlive {
				w.robot.Alive = false
				reward = DeathReward
				w.terminated = true
				info["death"] = "forklift"
			}
		}

	case TurnLeft:
		w.robot.Direction = w.robot.Direction.Left()

	case TurnRight:
		w.robot.Direction = w.robot.Direction.Right()

	case Grab:
		if w.robot.Position == w.pkg && !w.robot.HasPackage {
			w.robot.HasPackage = true
			info["grabbed"] = true
		} else {
			info["grabbed"] = false
		}

	case Shutdown:
		if w.robot.HasDevice {
			w.robot.HasDevice = false
			reward += ShutdownPenalty
			beep = w.fireShutdown()
			info["shutdown_success"] = beep
		} else {
			info["shutdown_success"] = false
			info["error"] = "no shutdown device"
		}

	case Exit:
		if w.robot.Position == Start {
			w.terminated = true
			if w.robot.HasPackage {
				reward = ExitReward
				w.success = true
				info["exit"] = "success"
			} else {
				info["exit"] = "no_package"
			}
		} else {
			info["exit"] = "wrong_location"
		}

	default:
		panic(fmt.Sprintf("step: no such action %v", action))
	}

	w.steps++
	w.totalReward += reward

	p := PerceptFrom(w.TrueState(), bump, beep)
	stepType := ts.Mid
	if w.terminated {
		stepType = ts.Last
	}
	w.lastStep = ts.New(stepType, reward, p, w.steps)
	w.record(action.String())

	return w.lastStep, info, w.terminated
}

// moveForward advances the robot one cell along its facing, returning
// true if the move was blocked by the grid boundary
func (w *Warehouse) moveForward() bool {
	dx, dy := w.robot.Direction.Delta()
	target := w.robot.Position.Translate(dx, dy)

	if !w.grid.Contains(target) {
		return true
	}

	w.robot.Position = target
	return false
}

// fireShutdown walks the disable ray one cell at a time along the
// robot's facing. It disables the forklift and returns true the first
// time the ray lands exactly on the live forklift's cell; it returns
// false if the ray exits the grid first or the forklift is already
// disabled.
func (w *Warehouse) fireShutdown() bool {
	if !w.forkliftAlive {
		return false
	}

	dx, dy := w.robot.Direction.Delta()
	pos := w.robot.Position

	for {
		pos = pos.Translate(dx, dy)
		if !w.grid.Contains(pos) {
			return false
		}
		if pos == w.forklift {
			w.forkliftAlive = false
			return true
		}
	}
}

// Grid returns the warehouse floor geometry
func (w *Warehouse) Grid() grid.Grid {
	return w.grid
}

// Position returns the robot's current cell
func (w *Warehouse) Position() grid.Position {
	return w.robot.Position
}

// Direction returns the robot's current facing
func (w *Warehouse) Direction() grid.Direction {
	return w.robot.Direction
}

// HasPackage returns whether the robot is carrying the package
func (w *Warehouse) HasPackage() bool {
	return w.robot.HasPackage
}

// HasDevice returns whether the shutdown device is still unused
func (w *Warehouse) HasDevice() bool {
	return w.robot.HasDevice
}

// Alive returns whether the robot is alive
func (w *Warehouse) Alive() bool {
	return w.robot.Alive
}

// Steps returns the number of actions applied this episode
func (w *Warehouse) Steps() int {
	return w.steps
}

// TotalReward returns the cumulative reward for the episode
func (w *Warehouse) TotalReward() float64 {
	return w.totalReward
}

// Done returns whether the episode has terminated
func (w *Warehouse) Done() bool {
	return w.terminated
}

// Success returns whether the episode terminated by exiting at the
// start cell with the package
func (w *Warehouse) Success() bool {
	return w.success
}

// CurrentTimeStep returns the last timestep the environment produced
func (w *Warehouse) CurrentTimeStep() ts.TimeStep {
	return w.lastStep
}

func (w *Warehouse) String() string {
	return fmt.Sprintf("Warehouse | At: %v  |  Facing: %v  |  "+
		"Bounds: (%d, %d)", w.robot.Position, w.robot.Direction,
		w.grid.Width, w.grid.Height)
}
