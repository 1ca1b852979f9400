package ports

// MazeInfo reports the maze dimensions. Queried once at startup.
type MazeInfo interface {
	MazeWidth() int
	MazeHeight() int
}

// Sensors reports walls relative to the current heading, at the current cell only.
type Sensors interface {
	WallFront() bool
	WallLeft() bool
	WallRight() bool
}

// Motion moves the mouse.
// MoveForward returns false when the move was blocked and the mouse did not move.
// Turns always succeed.
type Motion interface {
	MoveForward() bool
	TurnLeft()
	TurnRight()
}

// Display annotates cells on the platform's map. Purely cosmetic.
// The side passed to SetWall is an absolute letter: n, e, s or w.
type Display interface {
	SetText(x, y int, text string)
	SetColor(x, y int, color byte)
	SetWall(x, y int, side byte)
}

// Resetter acknowledges that the platform is ready for a new run.
type Resetter interface {
	AckReset()
}

// Platform is the full capability interface consumed by the navigator.
type Platform interface {
	MazeInfo
	Sensors
	Motion
	Display
	Resetter
}

// Faulter is implemented by platforms whose transport can fail (pipes, sockets).
// Methods of such a platform keep returning zero values after a failure; Err
// returns the first failure, or nil.
type Faulter interface {
	Err() error
}
