// Package runtime implements the navigation core: the pose tracker, the
// left-hand wall-following policy, the center heuristic and the tick that drives them.
package runtime
