package maze

// Direction is a bitmask over the four cardinal directions. Because each
// direction occupies its own bit, a plain Direction value also works as a
// direction set, which is how a room stores its walls.
type Direction uint8

const (
	North Direction = 1 << iota
	East
	South
	West
)

const (
	NoDirection   Direction = 0
	AllDirections Direction = North | East | South | West
)

// Directions lists the four cardinals in a fixed order (N, E, S, W).
// Generation depends on this order being stable for seeded determinism.
var Directions = [4]Direction{North, East, South, West}

// Valid reports whether d is exactly one cardinal direction.
func (d Direction) Valid() bool {
	return d != 0 && d&AllDirections == d && d&(d-1) == 0
}

// TurnLeft rotates a single cardinal 90° counterclockwise.
func (d Direction) TurnLeft() Direction {
	r := d >> 1
	if d&North != 0 {
		r |= West
	}
	return r
}

// TurnRight rotates a single cardinal 90° clockwise.
func (d Direction) TurnRight() Direction {
	r := (d & (North | East | South)) << 1
	if d&West != 0 {
		r |= North
	}
	return r
}

// Reverse turns a single cardinal around.
func (d Direction) Reverse() Direction {
	return d>>2 | (d&(North|East))<<2
}

// Offset returns the grid delta for one step in d. North is +y.
func (d Direction) Offset() (dx, dy int) {
	switch d {
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

// Bearing maps a cardinal to its quarter-turn index: N=0, E=1, S=2, W=3.
// Returns -1 for anything that is not a single cardinal.
func (d Direction) Bearing() int {
	switch d {
	case North:
		return 0
	case East:
		return 1
	case South:
		return 2
	case West:
		return 3
	default:
		return -1
	}
}

func (d Direction) String() string {
	if d == 0 {
		return ""
	}
	s := ""
	if d&North != 0 {
		s += "N"
	}
	if d&East != 0 {
		s += "E"
	}
	if d&South != 0 {
		s += "S"
	}
	if d&West != 0 {
		s += "W"
	}
	if d&^AllDirections != 0 {
		s += "?"
	}
	return s
}
