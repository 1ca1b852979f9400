/*
Package micromouse is a maze-navigation agent for grid micromouse simulations.

The agent starts at (0, 0) facing North in a maze whose walls it discovers through
local sensors, and follows the left-hand rule until it stands on one of the maze's
center candidates.

# Concept

The navigator owns its pose (heading and cell) and consults a Platform, the capability
interface of the simulator or robot, for sensing, motion and cosmetic marking. The host
drives the loop: each Tick either declares arrival or performs one wall-following step.
This Hexagonal Architecture lets the same core run against the mms simulator protocol,
an in-process simulated maze, or a test double.

# Key Features

  - Deterministic Execution: Given the same maze, the same sequence of moves is produced.
  - Strict Priority Policy: Left, then front, then right, then reverse.
  - Dead Reckoning: Position changes only after the platform confirms a move.
  - Observability: Lifecycle hooks for logging, metrics and run snapshots.

# Usage

	package main

	import (
		"log"

		"github.com/aretw0/micromouse"
		"github.com/aretw0/micromouse/pkg/adapters/sim"
		"github.com/aretw0/micromouse/pkg/domain"
	)

	func main() {
		maze := sim.Generate(16, 16, 42)
		eng, err := micromouse.New(sim.NewPlatform(maze))
		if err != nil {
			log.Fatal(err)
		}

		eng.Start()
		for eng.Tick() != domain.StatusDone {
		}
		log.Println("reached", eng.Snapshot().Position)
	}
*/
package micromouse
