package grid

import "fmt"

// Direction is a cardinal facing on the grid. The cyclic order of the
// constants is fixed: turn operations index the lookup tables below.
type Direction int

const (
	North Direction = iota
	East
	South
	West
)

// left and right map a Direction to the facing after a single 90
// degree turn
var left = [4]Direction{West, North, East, South}
var right = [4]Direction{East, South, West, North}

// deltas maps a Direction to its unit movement vector. North increases
// Y since the origin is at the bottom-left.
var deltas = [4][2]int{
	North: {0, 1},
	East:  {1, 0},
	South: {0, -1},
	West:  {-1, 0},
}

// Left returns the facing after turning 90 degrees counter-clockwise
func (d Direction) Left() Direction {
	return left[d]
}

// Right returns the facing after turning 90 degrees clockwise
func (d Direction) Right() Direction {
	return right[d]
}

// Delta returns the unit movement vector for the facing
func (d Direction) Delta() (dx, dy int) {
	return deltas[d][0], deltas[d][1]
}

func (d Direction) String() string {
	switch d {
	case North:
		return "NORTH"
	case East:
		return "EAST"
	case South:
		return "SOUTH"
	case West:
		return "WEST"
	}
	return fmt.Sprintf("Direction(%d)", int(d))
}

// FromDelta returns the Direction whose unit vector is (dx, dy). The
// second return value is false if (dx, dy) is not a unit vector.
func FromDelta(dx, dy int) (Direction, bool) {
	for d, delta := range deltas {
		if delta[0] == dx && delta[1] == dy {
			return Direction(d), true
		}
	}
	return North, false
}
