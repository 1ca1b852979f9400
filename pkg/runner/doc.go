/*
Package runner implements the driving loop around the micromouse engine.

The engine itself only knows how to Start and Tick. The runner owns the loop around
it: it ticks until the mouse stands on a center cell, stops early on context
cancellation, an optional step ceiling, or a platform transport failure, and commits a
snapshot to a RunStore after every tick.

# Usage

	sm := runner.NewSignalManager(ctx)
	defer sm.Stop()

	r := runner.NewRunner(
		runner.WithStore(store),
		runner.WithStepLimit(10_000),
	)

	snap, err := r.Run(sm.Context(), engine)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println("reached", snap.Position)
*/
package runner
