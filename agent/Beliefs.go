package agent

import (
	"github.com/samuelfneumann/gowarehouse/grid"
	"github.com/samuelfneumann/gowarehouse/kb"
	"github.com/samuelfneumann/gowarehouse/warehouse"
)

// Beliefs tracks the agent's derived classification of cells: which
// cells it has visited, which are proven safe, and which are proven
// dangerous. Cells in neither known set are unclassified and may stay
// that way indefinitely.
//
// The known-safe and known-dangerous sets are disjoint by
// construction: a cell enters known-dangerous only when safety could
// not be proven, and entailment from a consistent knowledge base never
// proves both a literal and its negation.
type Beliefs struct {
	grid      grid.Grid
	visited   map[grid.Position]bool
	safe      map[grid.Position]bool
	dangerous map[grid.Position]bool
}

// NewBeliefs creates belief sets for the given floor geometry. The
// start cell begins visited and known safe; nothing begins dangerous.
func NewBeliefs(g grid.Grid) *Beliefs {
	return &Beliefs{
		grid:      g,
		visited:   map[grid.Position]bool{warehouse.Start: true},
		safe:      map[grid.Position]bool{warehouse.Start: true},
		dangerous: map[grid.Position]bool{},
	}
}

// Visit marks pos as visited
func (b *Beliefs) Visit(pos grid.Position) {
	b.visited[pos] = true
}

// Update reclassifies every cell not yet in either known set by
// querying the knowledge base: first for proven safety, then for
// proven danger. The scan covers the whole grid each time, since new
// facts can retroactively settle cells that were inconclusive before.
func (b *Beliefs) Update(k *kb.KnowledgeBase) {
	for _, pos := range b.grid.Cells() {
		if b.safe[pos] || b.dangerous[pos] {
			continue
		}
		if k.EntailsSafe(pos) {
			b.safe[pos] = true
		} else if k.EntailsUnsafe(pos) {
			b.dangerous[pos] = true
		}
	}
}

// Visited returns whether pos has been visited
func (b *Beliefs) Visited(pos grid.Position) bool {
	return b.visited[pos]
}

// KnownSafe returns whether pos is proven safe
func (b *Beliefs) KnownSafe(pos grid.Position) bool {
	return b.safe[pos]
}

// KnownDangerous returns whether pos is proven dangerous
func (b *Beliefs) KnownDangerous(pos grid.Position) bool {
	return b.dangerous[pos]
}

// UnvisitedSafe returns the proven-safe cells not yet visited, in the
// grid's fixed cell order
func (b *Beliefs) UnvisitedSafe() []grid.Position {
	var unvisited []grid.Position
	for _, pos := range b.grid.Cells() {
		if b.safe[pos] && !b.visited[pos] {
			unvisited = append(unvisited, pos)
		}
	}
	return unvisited
}
