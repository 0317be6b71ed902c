package warehouse

import (
	"fmt"

	"github.com/samuelfneumann/gowarehouse/grid"
	ts "github.com/samuelfneumann/gowarehouse/timestep"
)

// Layout is a fixed hazard, forklift, and package placement. Layouts
// let demonstrations and tests pin the world instead of sampling it.
type Layout struct {
	Damaged  []grid.Position
	Forklift grid.Position
	Package  grid.Position
}

// ExampleLayout is the 4x4 layout used by the manual reasoning
// walkthrough: damaged floor at (3,1) and (3,3), the forklift at
// (1,3), and the package at (2,3)
func ExampleLayout() Layout {
	return Layout{
		Damaged:  []grid.Position{{X: 3, Y: 1}, {X: 3, Y: 3}},
		Forklift: grid.Position{X: 1, Y: 3},
		Package:  grid.Position{X: 2, Y: 3},
	}
}

// LoadLayout installs a fixed layout and restarts the episode with it,
// returning the initial timestep. The layout cells must be in bounds,
// distinct from one another, and distinct from the start cell. A
// loaded layout survives Reset; ResetSeed discards it.
func (w *Warehouse) LoadLayout(l Layout) (ts.TimeStep, error) {
	occupied := map[grid.Position]bool{Start: true}

	for _, p := range l.Damaged {
		if !w.grid.Contains(p) {
			return ts.TimeStep{}, fmt.Errorf("loadlayout: damaged cell "+
				"%v out of bounds", p)
		}
		if occupied[p] {
			return ts.TimeStep{}, fmt.Errorf("loadlayout: cell %v "+
				"occupied twice", p)
		}
		occupied[p] = true
	}

	for _, p := range []grid.Position{l.Forklift, l.Package} {
		if !w.grid.Contains(p) {
			return ts.TimeStep{}, fmt.Errorf("loadlayout: cell %v out "+
				"of bounds", p)
		}
		if occupied[p] {
			return ts.TimeStep{}, fmt.Errorf("loadlayout: cell %v "+
				"occupied twice", p)
		}
		occupied[p] = true
	}

	w.layout = &Layout{
		Damaged:  append([]grid.Position(nil), l.Damaged...),
		Forklift: l.Forklift,
		Package:  l.Package,
	}
	w.install(*w.layout)

	return w.start(), nil
}
