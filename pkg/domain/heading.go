package domain

import "fmt"

// Heading is the cardinal direction the mouse is facing.
type Heading int

const (
	North Heading = iota
	East
	South
	West
)

// Turn is a relative 90 degree rotation.
type Turn int

const (
	TurnLeft Turn = iota
	TurnRight
)

// Headings returns the four headings in clockwise order starting at North.
func Headings() []Heading {
	return []Heading{North, East, South, West}
}

// Right returns the heading after a clockwise quarter turn.
func (h Heading) Right() Heading {
	switch h {
	case North:
		return East
	case East:
		return South
	case South:
		return West
	default:
		return North
	}
}

// Left returns the heading after a counter-clockwise quarter turn.
func (h Heading) Left() Heading {
	switch h {
	case North:
		return West
	case West:
		return South
	case South:
		return East
	default:
		return North
	}
}

// Rotate applies a relative turn.
func (h Heading) Rotate(t Turn) Heading {
	if t == TurnLeft {
		return h.Left()
	}
	return h.Right()
}

// Reverse returns the opposite heading.
func (h Heading) Reverse() Heading {
	return h.Right().Right()
}

// Delta returns the unit vector of the heading. Y grows towards North.
func (h Heading) Delta() (dx, dy int) {
	switch h {
	case North:
		return 0, 1
	case East:
		return 1, 0
	case South:
		return 0, -1
	case West:
		return -1, 0
	default:
		return 0, 0
	}
}

// Letter returns the absolute wall label used by the simulator protocol.
func (h Heading) Letter() byte {
	switch h {
	case North:
		return 'n'
	case East:
		return 'e'
	case South:
		return 's'
	default:
		return 'w'
	}
}

// IsValid reports whether h is one of the four cardinal headings.
func (h Heading) IsValid() bool {
	return h >= North && h <= West
}

func (h Heading) String() string {
	switch h {
	case North:
		return "north"
	case East:
		return "east"
	case South:
		return "south"
	case West:
		return "west"
	default:
		return fmt.Sprintf("Heading(%d)", int(h))
	}
}

// ParseHeading accepts a full name ("north") or a wall letter ("n").
func ParseHeading(s string) (Heading, error) {
	switch s {
	case "north", "n", "N":
		return North, nil
	case "east", "e", "E":
		return East, nil
	case "south", "s", "S":
		return South, nil
	case "west", "w", "W":
		return West, nil
	}
	return North, fmt.Errorf("unknown heading %q", s)
}

// MarshalText encodes the heading by name so snapshots stay readable.
func (h Heading) MarshalText() ([]byte, error) {
	if !h.IsValid() {
		return nil, fmt.Errorf("invalid heading %d", int(h))
	}
	return []byte(h.String()), nil
}

// UnmarshalText is the inverse of MarshalText.
func (h *Heading) UnmarshalText(text []byte) error {
	parsed, err := ParseHeading(string(text))
	if err != nil {
		return err
	}
	*h = parsed
	return nil
}

func (t Turn) String() string {
	if t == TurnLeft {
		return "left"
	}
	return "right"
}
