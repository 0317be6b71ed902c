// Package percept implements the five-bit observation returned by the
// warehouse environment after every transition.
package percept

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// Bits is the number of fields in a Percept
const Bits int = 5

// Percept is a single observation. The fields are individually named
// so that derivation and comparison sites cannot transpose bits.
//
// Creaking and Rumbling report damaged floor and the live forklift in
// a grid-adjacent cell respectively. Beacon reports the uncollected
// package in the robot's own cell. Bump and Beep are action outcomes:
// a FORWARD blocked by the boundary and a successful forklift
// shutdown, carried over from the step that produced the percept.
type Percept struct {
	Creaking bool
	Rumbling bool
	Beacon   bool
	Bump     bool
	Beep     bool
}

// New creates a new Percept
func New(creaking, rumbling, beacon, bump, beep bool) Percept {
	return Percept{
		Creaking: creaking,
		Rumbling: rumbling,
		Beacon:   beacon,
		Bump:     bump,
		Beep:     beep,
	}
}

// Vector returns the percept as a 5-dimensional 0/1 vector in the
// order creaking, rumbling, beacon, bump, beep
func (p Percept) Vector() *mat.VecDense {
	v := mat.NewVecDense(Bits, nil)
	bits := [Bits]bool{p.Creaking, p.Rumbling, p.Beacon, p.Bump, p.Beep}
	for i, b := range bits {
		if b {
			v.SetVec(i, 1.0)
		}
	}
	return v
}

func (p Percept) String() string {
	return fmt.Sprintf("Percept | Creaking: %v  Rumbling: %v  Beacon: %v  "+
		"Bump: %v  Beep: %v", p.Creaking, p.Rumbling, p.Beacon, p.Bump,
		p.Beep)
}
