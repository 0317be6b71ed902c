// Package grid implements the geometry of a rectangular warehouse
// floor: positions, bounds checking, and 4-neighbour adjacency.
//
// Coordinates are 1-based with the origin at the bottom-left, so that
// valid positions satisfy 1 <= X <= Width and 1 <= Y <= Height.
package grid

import "fmt"

// Position is a single cell on the warehouse floor
type Position struct {
	X, Y int
}

func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// Translate returns the position offset from p by (dx, dy). The
// returned position may be out of bounds for any particular Grid.
func (p Position) Translate(dx, dy int) Position {
	return Position{p.X + dx, p.Y + dy}
}

// Grid is a fixed-size rectangular warehouse floor
type Grid struct {
	Width, Height int
}

// New creates a new Grid with the given dimensions
func New(width, height int) (Grid, error) {
	if width < 1 || height < 1 {
		return Grid{}, fmt.Errorf("new: dimensions must be positive, "+
			"got %d x %d", width, height)
	}
	return Grid{Width: width, Height: height}, nil
}

// Contains returns whether p lies on the grid
func (g Grid) Contains(p Position) bool {
	return p.X >= 1 && p.X <= g.Width && p.Y >= 1 && p.Y <= g.Height
}

// Cells returns every position on the grid, column by column from
// (1,1) upward. The order is fixed and deterministic.
func (g Grid) Cells() []Position {
	cells := make([]Position, 0, g.Width*g.Height)
	for x := 1; x <= g.Width; x++ {
		for y := 1; y <= g.Height; y++ {
			cells = append(cells, Position{x, y})
		}
	}
	return cells
}

// Adjacent returns the in-bounds 4-neighbours of p in the fixed order
// left, right, down, up. The order fixes tie-breaking for any search
// that expands neighbours in sequence.
func (g Grid) Adjacent(p Position) []Position {
	candidates := [4]Position{
		{p.X - 1, p.Y},
		{p.X + 1, p.Y},
		{p.X, p.Y - 1},
		{p.X, p.Y + 1},
	}

	adjacent := make([]Position, 0, 4)
	for _, c := range candidates {
		if g.Contains(c) {
			adjacent = append(adjacent, c)
		}
	}
	return adjacent
}
