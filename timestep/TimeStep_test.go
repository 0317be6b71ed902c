package timestep_test

import (
	"testing"

	"github.com/samuelfneumann/gowarehouse/percept"
	ts "github.com/samuelfneumann/gowarehouse/timestep"
)

func TestStepTypePredicates(t *testing.T) {
	p := percept.New(false, false, false, false, false)

	first := ts.New(ts.First, 0.0, p, 0)
	if !first.First() || first.Mid() || first.Last() {
		t.Error("first timestep misclassified")
	}

	mid := ts.New(ts.Mid, -1.0, p, 3)
	if mid.First() || !mid.Mid() || mid.Last() {
		t.Error("mid timestep misclassified")
	}

	last := ts.New(ts.Last, 1000.0, p, 7)
	if last.First() || last.Mid() || !last.Last() {
		t.Error("last timestep misclassified")
	}
}
