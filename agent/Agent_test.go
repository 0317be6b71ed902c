package agent_test

import (
	"testing"

	"github.com/samuelfneumann/gowarehouse/agent"
	"github.com/samuelfneumann/gowarehouse/grid"
	"github.com/samuelfneumann/gowarehouse/kb"
	"github.com/samuelfneumann/gowarehouse/percept"
	"github.com/samuelfneumann/gowarehouse/warehouse"
)

// runEpisode drives a fresh agent through one episode of env and
// returns the number of actions taken. The cap guards against a policy
// that never terminates.
func runEpisode(t *testing.T, env *warehouse.Warehouse, maxSteps int) int {
	t.Helper()

	step := env.Reset()
	a := agent.New(env.Grid(), kb.NewGini())
	a.ObserveFirst(step)

	steps := 0
	for !step.Last() && steps < maxSteps {
		action := a.SelectAction(step)
		next, info, _ := env.Step(action)
		a.Observe(action, next, info)
		step = next
		steps++
	}
	a.EndEpisode()

	if !step.Last() {
		t.Fatalf("episode did not terminate within %d steps", maxSteps)
	}
	return steps
}

// TestAgentSolvesExampleLayout drives the agent through the
// manual-reasoning layout: it must localize the hazards from percepts,
// retrieve the package, and exit in the black without dying
func TestAgentSolvesExampleLayout(t *testing.T) {
	env, _, err := warehouse.New(4, 4, 2, 1)
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	if _, err := env.LoadLayout(warehouse.ExampleLayout()); err != nil {
		t.Fatalf("loadlayout: %v", err)
	}

	runEpisode(t, env, 200)

	if !env.Success() {
		t.Fatalf("agent should solve the example layout; died=%v at %v",
			!env.Alive(), env.Position())
	}
	if !env.Alive() {
		t.Error("agent should survive the example layout")
	}
	if env.TotalReward() <= 0 {
		t.Errorf("total reward: got %v, want a net positive return",
			env.TotalReward())
	}
}

// TestAgentGivesUpWhenBoxedIn checks the no-safe-path fallback:
// creaking at the start cell leaves neither neighbour provably safe,
// so the agent exits empty-handed instead of gambling
func TestAgentGivesUpWhenBoxedIn(t *testing.T) {
	env, _, err := warehouse.New(3, 3, 2, 1)
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	_, err = env.LoadLayout(warehouse.Layout{
		Damaged:  []grid.Position{{X: 2, Y: 1}, {X: 1, Y: 2}},
		Forklift: grid.Position{X: 3, Y: 3},
		Package:  grid.Position{X: 2, Y: 3},
	})
	if err != nil {
		t.Fatalf("loadlayout: %v", err)
	}

	steps := runEpisode(t, env, 200)

	if env.Success() {
		t.Error("boxed-in agent cannot succeed")
	}
	if !env.Alive() {
		t.Error("boxed-in agent should exit rather than die")
	}
	if steps != 1 {
		t.Errorf("boxed-in agent should exit immediately: took %d steps",
			steps)
	}
	if env.HasPackage() {
		t.Error("boxed-in agent cannot reach the package")
	}
}

// TestAgentSurvivesRandomLayouts drives the agent over a spread of
// generated layouts. Success is layout-dependent, but every episode
// must terminate, and while the shutdown device stays unused the agent
// only ever treads proven-safe cells and so cannot die.
func TestAgentSurvivesRandomLayouts(t *testing.T) {
	for seed := uint64(0); seed < 10; seed++ {
		env, _, err := warehouse.New(4, 4, 2, seed)
		if err != nil {
			t.Fatalf("seed %d: new: %v", seed, err)
		}

		runEpisode(t, env, 400)

		if env.HasDevice() && !env.Alive() {
			t.Errorf("seed %d: agent died at %v without firing the "+
				"shutdown device", seed, env.Position())
		}
	}
}

func TestAgentTracksPose(t *testing.T) {
	env, _, err := warehouse.New(4, 4, 2, 1)
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	step, err := env.LoadLayout(warehouse.ExampleLayout())
	if err != nil {
		t.Fatalf("loadlayout: %v", err)
	}

	a := agent.New(env.Grid(), kb.NewGini())
	a.ObserveFirst(step)

	for i := 0; i < 50 && !step.Last(); i++ {
		action := a.SelectAction(step)
		next, info, _ := env.Step(action)
		a.Observe(action, next, info)
		step = next

		if a.Position() != env.Position() {
			t.Fatalf("after %v: agent believes %v, environment says %v",
				action, a.Position(), env.Position())
		}
		if a.Direction() != env.Direction() {
			t.Fatalf("after %v: agent believes facing %v, environment "+
				"says %v", action, a.Direction(), env.Direction())
		}
		if a.HasPackage() != env.HasPackage() {
			t.Fatalf("after %v: package belief diverged", action)
		}
	}
}

func TestBeliefsClassification(t *testing.T) {
	g, err := grid.New(4, 4)
	if err != nil {
		t.Fatalf("grid: %v", err)
	}

	b := agent.NewBeliefs(g)
	if !b.Visited(warehouse.Start) || !b.KnownSafe(warehouse.Start) {
		t.Error("start cell should begin visited and known safe")
	}

	k := kb.New(g, kb.NewGini())
	k.Tell(warehouse.Start, percept.New(false, false, false, false, false))
	b.Update(k)

	for _, pos := range g.Cells() {
		if b.KnownSafe(pos) && b.KnownDangerous(pos) {
			t.Errorf("%v classified both safe and dangerous", pos)
		}
	}
	if !b.KnownSafe(grid.Position{X: 2, Y: 1}) {
		t.Error("(2,1) should be known safe after a silent start percept")
	}

	unvisited := b.UnvisitedSafe()
	want := map[grid.Position]bool{{X: 1, Y: 2}: true, {X: 2, Y: 1}: true}
	if len(unvisited) != len(want) {
		t.Fatalf("unvisited safe: got %v", unvisited)
	}
	for _, pos := range unvisited {
		if !want[pos] {
			t.Errorf("unvisited safe: unexpected %v", pos)
		}
	}

	b.Visit(grid.Position{X: 2, Y: 1})
	if len(b.UnvisitedSafe()) != 1 {
		t.Errorf("unvisited safe after visit: got %v", b.UnvisitedSafe())
	}
}
