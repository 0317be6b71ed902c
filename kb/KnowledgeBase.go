package kb

import (
	"fmt"

	"github.com/samuelfneumann/gowarehouse/grid"
	"github.com/samuelfneumann/gowarehouse/percept"
)

// Role distinguishes the per-cell boolean variables in the knowledge
// base
type Role int

const (
	// Damaged: the cell contains damaged floor
	Damaged Role = iota

	// Forklift: the cell contains the forklift
	Forklift

	// Creaking: creaking was observable at the cell
	Creaking

	// Rumbling: rumbling was observable at the cell
	Rumbling

	// Safe: the cell contains neither damaged floor nor the forklift
	Safe
)

const roles int = 5

// variable identifies one propositional variable
type variable struct {
	pos  grid.Position
	role Role
}

// KnowledgeBase is the agent's propositional beliefs about the
// warehouse. One boolean variable exists per cell and Role; the
// axioms linking them are asserted once at construction and fact
// assertions only ever grow the clause set within an episode.
//
// The axioms, for every cell c with in-bounds neighbours n1..nk:
//
//	Creaking(c) <=> Damaged(n1) or ... or Damaged(nk)
//	Rumbling(c) <=> Forklift(n1) or ... or Forklift(nk)
//	Safe(c)     <=> not Damaged(c) and not Forklift(c)
//
// plus the base facts that the start cell holds neither damaged floor
// nor the forklift.
type KnowledgeBase struct {
	grid   grid.Grid
	solver Solver
	vars   map[variable]Lit
}

// New creates a knowledge base for the given grid on the given solver
// and asserts all axioms. The (cell, role) to variable mapping is
// built here once and reused for every later assertion and query.
func New(g grid.Grid, solver Solver) *KnowledgeBase {
	vars := make(map[variable]Lit, g.Width*g.Height*roles)
	next := Lit(1)
	for _, pos := range g.Cells() {
		for role := Role(0); role < Role(roles); role++ {
			vars[variable{pos, role}] = next
			next++
		}
	}

	k := &KnowledgeBase{grid: g, solver: solver, vars: vars}
	k.assertAxioms()
	return k
}

// Var returns the literal for the variable naming role at pos
func (k *KnowledgeBase) Var(pos grid.Position, role Role) Lit {
	lit, ok := k.vars[variable{pos, role}]
	if !ok {
		panic(fmt.Sprintf("var: no variable for %v role %d", pos, role))
	}
	return lit
}

func (k *KnowledgeBase) assertAxioms() {
	start := grid.Position{X: 1, Y: 1}
	k.solver.Assert(k.Var(start, Damaged).Not())
	k.solver.Assert(k.Var(start, Forklift).Not())

	for _, pos := range k.grid.Cells() {
		adjacent := k.grid.Adjacent(pos)

		k.assertIffAny(k.Var(pos, Creaking), adjacent, Damaged)
		k.assertIffAny(k.Var(pos, Rumbling), adjacent, Forklift)

		// Safe(pos) <=> not Damaged(pos) and not Forklift(pos)
		safe := k.Var(pos, Safe)
		damaged := k.Var(pos, Damaged)
		forklift := k.Var(pos, Forklift)
		k.solver.Assert(safe.Not(), damaged.Not())
		k.solver.Assert(safe.Not(), forklift.Not())
		k.solver.Assert(safe, damaged, forklift)
	}
}

// assertIffAny asserts lhs <=> (role(p1) or ... or role(pk)) in
// conjunctive normal form
func (k *KnowledgeBase) assertIffAny(lhs Lit, positions []grid.Position,
	role Role) {
	clause := make([]Lit, 0, len(positions)+1)
	clause = append(clause, lhs.Not())
	for _, p := range positions {
		clause = append(clause, k.Var(p, role))
	}
	k.solver.Assert(clause...)

	for _, p := range positions {
		k.solver.Assert(lhs, k.Var(p, role).Not())
	}
}

// Tell asserts the creaking and rumbling bits of a percept observed at
// pos as facts, matching the observed bits exactly. Telling is
// monotonic: facts are only ever added.
func (k *KnowledgeBase) Tell(pos grid.Position, p percept.Percept) {
	creaking := k.Var(pos, Creaking)
	if !p.Creaking {
		creaking = creaking.Not()
	}
	k.solver.Assert(creaking)

	rumbling := k.Var(pos, Rumbling)
	if !p.Rumbling {
		rumbling = rumbling.Not()
	}
	k.solver.Assert(rumbling)
}

// Entails reports whether the knowledge base logically forces the
// literal true. The query is by refutation: assert the negation in a
// scoped frame and check satisfiability; the literal is entailed iff
// the combination is unsatisfiable. The frame is popped regardless of
// outcome, so queries are side-effect free.
func (k *KnowledgeBase) Entails(query Lit) bool {
	k.solver.Push()
	defer k.solver.Pop()

	k.solver.Assert(query.Not())
	return k.solver.Check() == Unsat
}

// EntailsSafe reports whether pos is proven to hold neither damaged
// floor nor the forklift
func (k *KnowledgeBase) EntailsSafe(pos grid.Position) bool {
	return k.Entails(k.Var(pos, Safe))
}

// EntailsUnsafe reports whether pos is proven to hold damaged floor or
// the forklift
func (k *KnowledgeBase) EntailsUnsafe(pos grid.Position) bool {
	return k.Entails(k.Var(pos, Safe).Not())
}

// EntailsForklift reports whether the forklift is proven to occupy pos
func (k *KnowledgeBase) EntailsForklift(pos grid.Position) bool {
	return k.Entails(k.Var(pos, Forklift))
}

// ForkliftPositions returns every cell the forklift is proven to
// occupy. The set is usually empty until enough evidence accumulates
// and holds at most one cell once the true position is pinned down.
func (k *KnowledgeBase) ForkliftPositions() []grid.Position {
	var positions []grid.Position
	for _, pos := range k.grid.Cells() {
		if k.EntailsForklift(pos) {
			positions = append(positions, pos)
		}
	}
	return positions
}
