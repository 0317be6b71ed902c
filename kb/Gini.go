package kb

import (
	"fmt"

	"github.com/go-air/gini"
	"github.com/go-air/gini/z"
)

// Gini is a Solver backed by the gini SAT solver.
//
// Clauses are kept in an ordered log with frame marks for Push/Pop,
// and every Check solves the logged clauses from scratch. Rebuilding
// keeps Pop trivially correct; at the clause counts a warehouse
// knowledge base produces, the rebuild cost is dwarfed by the solve
// itself.
type Gini struct {
	clauses [][]Lit
	marks   []int
}

// NewGini creates a new, empty Gini solver
func NewGini() *Gini {
	return &Gini{}
}

// Assert adds the disjunction of the argument literals
func (g *Gini) Assert(clause ...Lit) {
	c := make([]Lit, len(clause))
	copy(c, clause)
	g.clauses = append(g.clauses, c)
}

// Push opens a scoped assumption frame
func (g *Gini) Push() {
	g.marks = append(g.marks, len(g.clauses))
}

// Pop discards every clause asserted since the matching Push. Pop
// without a matching Push is a programmer error.
func (g *Gini) Pop() {
	if len(g.marks) == 0 {
		panic("pop: no open assumption frame")
	}
	mark := g.marks[len(g.marks)-1]
	g.marks = g.marks[:len(g.marks)-1]
	g.clauses = g.clauses[:mark]
}

// Check reports whether the asserted clauses are satisfiable
func (g *Gini) Check() Result {
	solver := gini.New()
	for _, clause := range g.clauses {
		for _, lit := range clause {
			solver.Add(toZ(lit))
		}
		solver.Add(z.LitNull)
	}

	if solver.Solve() == -1 {
		return Unsat
	}
	return Sat
}

// Len returns the number of currently asserted clauses
func (g *Gini) Len() int {
	return len(g.clauses)
}

// toZ converts a signed literal to gini's literal encoding
func toZ(l Lit) z.Lit {
	switch {
	case l > 0:
		return z.Var(l).Pos()
	case l < 0:
		return z.Var(-l).Neg()
	}
	panic(fmt.Sprintf("toZ: invalid literal %d", l))
}
