package warehouse

import (
	"strconv"
	"strings"

	"github.com/samuelfneumann/gowarehouse/grid"
)

// arrows maps a facing to the glyph drawn for a live, empty-handed
// robot
var arrows = map[grid.Direction]string{
	grid.North: "^",
	grid.East:  ">",
	grid.South: "v",
	grid.West:  "<",
}

// Render draws the warehouse as text, top row first. Without reveal,
// every cell except the robot's is hidden, which is exactly the
// agent's view of the world. With reveal, damaged floor is D, the
// forklift F (f once disabled), and the uncollected package P.
func (w *Warehouse) Render(reveal bool) string {
	var lines []string

	header := make([]string, 0, w.grid.Width+1)
	header = append(header, " ")
	for x := 1; x <= w.grid.Width; x++ {
		header = append(header, strconv.Itoa(x))
	}
	lines = append(lines, strings.Join(header, " "))

	for y := w.grid.Height; y >= 1; y-- {
		row := make([]string, 0, w.grid.Width+1)
		row = append(row, strconv.Itoa(y))
		for x := 1; x <= w.grid.Width; x++ {
			row = append(row, w.glyph(grid.Position{X: x, Y: y}, reveal))
		}
		lines = append(lines, strings.Join(row, " "))
	}

	return strings.Join(lines, "\n")
}

func (w *Warehouse) glyph(pos grid.Position, reveal bool) string {
	if pos == w.robot.Position {
		switch {
		case !w.robot.Alive:
			return "X"
		case w.robot.HasPackage:
			return "@"
		default:
			return arrows[w.robot.Direction]
		}
	}

	if !reveal {
		return "?"
	}

	switch {
	case w.damaged[pos]:
		return "D"
	case pos == w.forklift:
		if w.forkliftAlive {
			return "F"
		}
		return "f"
	case pos == w.pkg && !w.robot.HasPackage:
		return "P"
	default:
		return "."
	}
}
