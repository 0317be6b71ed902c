package experiment_test

import (
	"path/filepath"
	"testing"

	"github.com/samuelfneumann/gowarehouse/agent"
	"github.com/samuelfneumann/gowarehouse/experiment"
	"github.com/samuelfneumann/gowarehouse/experiment/trackers"
	"github.com/samuelfneumann/gowarehouse/kb"
	"github.com/samuelfneumann/gowarehouse/warehouse"
)

func exampleEnv(t *testing.T) *warehouse.Warehouse {
	t.Helper()

	env, _, err := warehouse.New(4, 4, 2, 1)
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	if _, err := env.LoadLayout(warehouse.ExampleLayout()); err != nil {
		t.Fatalf("loadlayout: %v", err)
	}
	return env
}

func kbAgent(env *warehouse.Warehouse) func() agent.Agent {
	return func() agent.Agent {
		return agent.New(env.Grid(), kb.NewGini())
	}
}

func TestOnlineRunEpisode(t *testing.T) {
	env := exampleEnv(t)
	e := experiment.NewOnline(env, kbAgent(env), 200, nil)

	e.RunEpisode()

	if !env.Done() {
		t.Error("episode should have terminated")
	}
	if !env.Success() {
		t.Error("episode on the example layout should succeed")
	}
}

func TestOnlineTracksAndSaves(t *testing.T) {
	dir := t.TempDir()
	returns := filepath.Join(dir, "returns.bin")
	lengths := filepath.Join(dir, "lengths.bin")

	env := exampleEnv(t)
	e := experiment.NewOnline(env, kbAgent(env), 200, nil,
		trackers.NewReturn(returns))
	e.Register(trackers.NewEpisodeLength(lengths))

	e.RunEpisode()
	e.Save()

	gotReturns := trackers.LoadFloats(returns)
	if len(gotReturns) != 1 {
		t.Fatalf("returns: got %v episodes, want 1", len(gotReturns))
	}
	if gotReturns[0] != env.TotalReward() {
		t.Errorf("returns: got %v, want %v", gotReturns[0],
			env.TotalReward())
	}

	gotLengths := trackers.LoadInts(lengths)
	if len(gotLengths) != 1 {
		t.Fatalf("lengths: got %v episodes, want 1", len(gotLengths))
	}
	if gotLengths[0] != env.Steps() {
		t.Errorf("lengths: got %v, want %v", gotLengths[0], env.Steps())
	}
}

func TestOnlineRunHonoursStepLimit(t *testing.T) {
	env := exampleEnv(t)

	// The limit is far below one episode of the example layout, so Run
	// must stop mid-episode instead of looping forever
	e := experiment.NewOnline(env, kbAgent(env), 3, nil)
	e.Run()

	if env.Done() {
		t.Error("a 3-step budget should not finish the episode")
	}
	if env.Steps() != 3 {
		t.Errorf("steps: got %v, want 3", env.Steps())
	}
}
