package main

import (
	"fmt"
	"log"

	"go.uber.org/zap"

	"github.com/samuelfneumann/gowarehouse/agent"
	"github.com/samuelfneumann/gowarehouse/experiment"
	"github.com/samuelfneumann/gowarehouse/experiment/trackers"
	"github.com/samuelfneumann/gowarehouse/kb"
	"github.com/samuelfneumann/gowarehouse/warehouse"
)

func main() {
	var seed uint64 = 42

	// Create the environment and pin it to the manual-reasoning
	// example layout
	env, _, err := warehouse.New(4, 4, 2, seed)
	if err != nil {
		log.Fatalf("could not create environment: %v", err)
	}
	if _, err := env.LoadLayout(warehouse.ExampleLayout()); err != nil {
		log.Fatalf("could not load layout: %v", err)
	}

	fmt.Println("True state (hidden from the agent):")
	fmt.Println(env.Render(true))
	fmt.Println()

	logger, err := zap.NewDevelopment()
	if err != nil {
		log.Fatalf("could not create logger: %v", err)
	}
	defer logger.Sync()

	// The agent gets a fresh knowledge base, solver, and belief sets
	// each episode
	newAgent := func() agent.Agent {
		return agent.New(env.Grid(), kb.NewGini())
	}

	var tracker trackers.Tracker = trackers.NewReturn("./returns.bin")
	e := experiment.NewOnline(env, newAgent, 200, logger, tracker,
		trackers.NewEpisodeLength("./lengths.bin"))

	e.RunEpisode()
	e.Save()

	fmt.Println()
	fmt.Println("Final state:")
	fmt.Println(env.Render(true))
	fmt.Printf("\nSuccess: %v  Steps: %d  Return: %.0f\n", env.Success(),
		env.Steps(), env.TotalReward())

	returns := trackers.LoadFloats("./returns.bin")
	fmt.Printf("Saved episodic returns: %v\n", returns)
}
