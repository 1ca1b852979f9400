/*
Package ports defines the driven ports (interfaces) of the micromouse agent.

These interfaces decouple the navigator from the maze simulator, robot firmware and
storage backends, so the same control loop runs against the mms protocol, an in-process
simulated maze or a test double.

# Key Interfaces

  - Platform: The capability interface of the maze platform (sensors, motion, display).
  - Faulter: Optional transport error reporting for platforms that can fail.
  - RunStore: Responsible for persisting and loading run snapshots.
*/
package ports
