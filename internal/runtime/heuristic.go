package runtime

import "github.com/aretw0/micromouse/pkg/domain"

// Distance returns the Manhattan distance from p to the nearer of the two
// center candidates of the maze.
//
// On even dimensions the true goal is a 2x2 block but only two of its four
// cells are candidates, so the other two never stop the loop.
func Distance(p domain.Position, b domain.Bounds) int {
	c := b.Centers()
	return min(p.Manhattan(c[0]), p.Manhattan(c[1]))
}

// AtGoal reports whether p is a center candidate.
func AtGoal(p domain.Position, b domain.Bounds) bool {
	return Distance(p, b) == 0
}
