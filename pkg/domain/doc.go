/*
Package domain contains the core domain models of the micromouse agent.

It defines the vocabulary the navigator speaks: headings, grid positions, maze bounds,
wall observations and the actions the wall-following policy can choose. This package is
kept pure and free of external dependencies like I/O or persistence, following Hexagonal
Architecture principles.

# Key Entities

  - Heading: One of the four cardinal directions, cyclic under left/right turns.
  - Position: Integer grid coordinates, origin at the start cell.
  - Bounds: Maze width and height, fixed for the duration of a run.
  - WallObservation: Walls sensed ahead, left and right of the current heading.
  - Action: The single decision taken by the policy on each tick.
  - Snapshot: A serializable record of a run, used by stores and the status server.
*/
package domain
