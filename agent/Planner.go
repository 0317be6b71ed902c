package agent

import (
	"fmt"

	"github.com/samuelfneumann/gowarehouse/grid"
	"github.com/samuelfneumann/gowarehouse/warehouse"
)

// PlanPath runs a breadth-first search from start to any cell in
// goals, traversing only cells for which safe returns true. The start
// cell itself is always expandable. Neighbours are explored in the
// grid's fixed adjacency order, which fixes tie-breaking among
// equal-length paths. The returned path runs from start to the first
// goal reached, or is nil when no goal is reachable through safe
// cells.
func PlanPath(g grid.Grid, safe func(grid.Position) bool,
	start grid.Position, goals map[grid.Position]bool) []grid.Position {
	type node struct {
		pos  grid.Position
		path []grid.Position
	}

	queue := []node{{start, []grid.Position{start}}}
	seen := map[grid.Position]bool{start: true}

	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]

		if goals[current.pos] {
			return current.path
		}

		for _, next := range g.Adjacent(current.pos) {
			if seen[next] || !safe(next) {
				continue
			}
			seen[next] = true

			path := make([]grid.Position, len(current.path), len(current.path)+1)
			copy(path, current.path)
			queue = append(queue, node{next, append(path, next)})
		}
	}

	return nil
}

// PathActions translates a cell path into the action sequence that
// walks it from the given starting facing: for each hop, the minimal
// turn sequence followed by one forward move
func PathActions(facing grid.Direction, path []grid.Position) []warehouse.Action {
	var actions []warehouse.Action
	direction := facing

	for i := 1; i < len(path); i++ {
		dx := path[i].X - path[i-1].X
		dy := path[i].Y - path[i-1].Y

		target, ok := grid.FromDelta(dx, dy)
		if !ok {
			panic(fmt.Sprintf("pathactions: %v -> %v is not a unit step",
				path[i-1], path[i]))
		}

		actions = append(actions, TurnsBetween(direction, target)...)
		actions = append(actions, warehouse.Forward)
		direction = target
	}

	return actions
}

// TurnsBetween returns the shortest sequence of turn actions rotating
// current into target, preferring right turns on ties
func TurnsBetween(current, target grid.Direction) []warehouse.Action {
	if current == target {
		return nil
	}

	rightSteps := (int(target) - int(current) + 4) % 4
	leftSteps := (int(current) - int(target) + 4) % 4

	if rightSteps <= leftSteps {
		actions := make([]warehouse.Action, rightSteps)
		for i := range actions {
			actions[i] = warehouse.TurnRight
		}
		return actions
	}

	actions := make([]warehouse.Action, leftSteps)
	for i := range actions {
		actions[i] = warehouse.TurnLeft
	}
	return actions
}
