// Package kb implements the agent's propositional knowledge base for
// the hazardous warehouse, together with the boolean satisfiability
// oracle it queries. The oracle sits behind the minimal Solver
// interface so any SAT backend can be substituted.
package kb

// Lit is a propositional literal: a positive variable number v, or -v
// for its negation. Variable numbers start at 1.
type Lit int

// Not returns the negation of the literal
func (l Lit) Not() Lit {
	return -l
}

// Result is the outcome of a satisfiability check
type Result int

const (
	Sat Result = iota
	Unsat
)

func (r Result) String() string {
	if r == Unsat {
		return "Unsat"
	}
	return "Sat"
}

// Solver is the satisfiability oracle the knowledge base depends on:
// assert a clause, open and close a scoped assumption frame, and check
// satisfiability of everything currently asserted.
//
// Assertions made after a Push are discarded by the matching Pop, so a
// refutation query (assert the negated goal, check, pop) leaves the
// knowledge base untouched. Check is a synchronous, potentially
// expensive call whose cost grows with the number of asserted clauses.
type Solver interface {
	// Assert adds the disjunction of the argument literals
	Assert(clause ...Lit)

	// Push opens a scoped assumption frame
	Push()

	// Pop discards every assertion made since the matching Push
	Pop()

	// Check reports whether the asserted clauses are satisfiable
	Check() Result
}
